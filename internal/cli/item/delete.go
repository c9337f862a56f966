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

// DeleteCmd returns the item delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <item-id>",
		Short: "Delete an item",
		Long: `Delete an item permanently.

Examples:
  quadro item delete 1a2b3c4d5e6f7a8b9c0d1e2f3a4b5c6d
  quadro item delete 1a2b3c4d5e6f7a8b9c0d1e2f3a4b5c6d --json
`,
		Args: cobra.ExactArgs(1),
		RunE: runDelete,
	}

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
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

	if err := cliInstance.App.ItemService.DeleteItem(ctx, itemID); err != nil {
		if errors.Is(err, models.ErrItemNotFound) {
			if fmtErr := formatter.ErrorWithSuggestion("ITEM_NOT_FOUND",
				fmt.Sprintf("item %s not found", itemID),
				"Use 'quadro item list' to see item IDs"); fmtErr != nil {
				slog.Error("Error formatting error message", "error", fmtErr)
			}
			os.Exit(cli.ExitNotFound)
		}
		if fmtErr := formatter.Error("DELETE_ERROR", err.Error()); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		return err
	}

	if quietMode {
		return nil
	}

	if jsonOutput {
		return formatter.Success(map[string]interface{}{"deleted": itemID})
	}

	fmt.Printf("✅ Deleted item %s\n", itemID)
	return nil
}
