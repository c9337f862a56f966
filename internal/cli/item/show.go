package item

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/quadro-app/quadro/internal/cli"
	"github.com/quadro-app/quadro/internal/models"
	"github.com/spf13/cobra"
)

// ShowCmd returns the item show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <item-id>",
		Short: "Show an item's details",
		Long: `Show full details for one item.

Examples:
  quadro item show 1a2b3c4d5e6f7a8b9c0d1e2f3a4b5c6d
  quadro item show 1a2b3c4d5e6f7a8b9c0d1e2f3a4b5c6d --json
`,
		Args: cobra.ExactArgs(1),
		RunE: runShow,
	}

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	itemID := args[0]

	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		if fmtErr := formatter.Error("INITIALIZATION_ERROR", err.Error()); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		return err
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}()

	found, err := cliInstance.App.ItemService.GetItem(ctx, itemID)
	if err != nil {
		if errors.Is(err, models.ErrItemNotFound) {
			if fmtErr := formatter.ErrorWithSuggestion("ITEM_NOT_FOUND",
				fmt.Sprintf("item %s not found", itemID),
				"Use 'quadro item list' to see item IDs"); fmtErr != nil {
				slog.Error("Error formatting error message", "error", fmtErr)
			}
			os.Exit(cli.ExitNotFound)
		}
		if fmtErr := formatter.Error("ITEM_FETCH_ERROR", err.Error()); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		return err
	}

	if quietMode {
		fmt.Printf("%s\n", found.ID)
		return nil
	}

	if jsonOutput {
		return formatter.Success(found)
	}

	fmt.Printf("%s\n", found.Title)
	fmt.Printf("  ID:       %s\n", found.ID)
	fmt.Printf("  Board:    %s\n", found.Kind)
	fmt.Printf("  Status:   %s\n", found.Status)
	fmt.Printf("  Priority: %s\n", found.Priority)
	if found.Owner != "" {
		fmt.Printf("  Owner:    %s\n", found.Owner)
	}
	if found.DueDate != nil {
		fmt.Printf("  Due:      %s\n", found.DueDate.Format("2006-01-02"))
	}
	if found.Description != "" {
		fmt.Printf("\n%s\n", found.Description)
	}
	return nil
}
