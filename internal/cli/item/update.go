package item

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/quadro-app/quadro/internal/cli"
	"github.com/quadro-app/quadro/internal/models"
	itemservice "github.com/quadro-app/quadro/internal/services/item"
	"github.com/spf13/cobra"
)

// UpdateCmd returns the item update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <item-id>",
		Short: "Update an item's attributes",
		Long: `Update an item. Only the provided flags are changed; status is
changed with 'quadro item move'.

Examples:
  quadro item update 1a2b3c4d --title="Ligar de novo" --priority=high
  quadro item update 1a2b3c4d --due=2026-09-30
  quadro item update 1a2b3c4d --clear-due
`,
		Args: cobra.ExactArgs(1),
		RunE: runUpdate,
	}

	cmd.Flags().String("title", "", "New title")
	cmd.Flags().String("description", "", "New description")
	cmd.Flags().String("priority", "", "New priority: low, medium, high")
	cmd.Flags().String("owner", "", "New owner")
	cmd.Flags().String("due", "", "New due date (YYYY-MM-DD)")
	cmd.Flags().Bool("clear-due", false, "Remove the due date")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	itemID := args[0]

	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	req := itemservice.UpdateItemRequest{ItemID: itemID}

	if cmd.Flags().Changed("title") {
		title, _ := cmd.Flags().GetString("title")
		req.Title = &title
	}
	if cmd.Flags().Changed("description") {
		description, _ := cmd.Flags().GetString("description")
		req.Description = &description
	}
	if cmd.Flags().Changed("priority") {
		raw, _ := cmd.Flags().GetString("priority")
		priority, err := cli.ParsePriority(raw)
		if err != nil {
			if fmtErr := formatter.Error("VALIDATION_ERROR", err.Error()); fmtErr != nil {
				slog.Error("Error formatting error message", "error", fmtErr)
			}
			os.Exit(cli.ExitValidation)
		}
		req.Priority = &priority
	}
	if cmd.Flags().Changed("owner") {
		owner, _ := cmd.Flags().GetString("owner")
		req.Owner = &owner
	}
	if cmd.Flags().Changed("due") {
		raw, _ := cmd.Flags().GetString("due")
		due, err := cli.ParseDueDate(raw)
		if err != nil {
			if fmtErr := formatter.Error("VALIDATION_ERROR", err.Error()); fmtErr != nil {
				slog.Error("Error formatting error message", "error", fmtErr)
			}
			os.Exit(cli.ExitValidation)
		}
		req.DueDate = due
	}
	req.ClearDueDate, _ = cmd.Flags().GetBool("clear-due")

	if req.Title == nil && req.Description == nil && req.Priority == nil &&
		req.Owner == nil && req.DueDate == nil && !req.ClearDueDate {
		if fmtErr := formatter.ErrorWithSuggestion("NO_CHANGES",
			"nothing to update",
			"Pass at least one of --title, --description, --priority, --owner, --due, --clear-due"); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		os.Exit(cli.ExitUsage)
	}

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

	updated, err := cliInstance.App.ItemService.UpdateItem(ctx, req)
	if err != nil {
		if errors.Is(err, models.ErrItemNotFound) {
			if fmtErr := formatter.ErrorWithSuggestion("ITEM_NOT_FOUND",
				fmt.Sprintf("item %s not found", itemID),
				"Use 'quadro item list' to see item IDs"); fmtErr != nil {
				slog.Error("Error formatting error message", "error", fmtErr)
			}
			os.Exit(cli.ExitNotFound)
		}
		if fmtErr := formatter.Error("VALIDATION_ERROR", err.Error()); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		os.Exit(cli.ExitValidation)
	}

	if quietMode {
		fmt.Printf("%s\n", updated.ID)
		return nil
	}

	if jsonOutput {
		return formatter.Success(updated)
	}

	fmt.Printf("✅ Updated item '%s' (ID: %s)\n", updated.Title, updated.ID)
	return nil
}
