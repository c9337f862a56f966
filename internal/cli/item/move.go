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

// MoveCmd returns the item move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move <item-id>",
		Short: "Move an item to another column",
		Long: `Move an item by status or by target column.

Pass --status to set the status directly, or --column to resolve a
column id to its canonical status first.

Examples:
  # Move by status
  quadro item move 1a2b3c4d --status=completed

  # Move to a specific column on the projects board
  quadro item move 1a2b3c4d --board=projects --column=on_hold
`,
		Args: cobra.ExactArgs(1),
		RunE: runMove,
	}

	cmd.Flags().String("board", "", "Board kind: activities or projects (needed with --column)")
	cmd.Flags().String("status", "", "Target status")
	cmd.Flags().String("column", "", "Target column id (resolved to its status)")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runMove(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	itemID := args[0]

	status, _ := cmd.Flags().GetString("status")
	columnID, _ := cmd.Flags().GetString("column")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	if (status == "") == (columnID == "") {
		if fmtErr := formatter.ErrorWithSuggestion("INVALID_TARGET",
			"exactly one of --status or --column is required",
			"Use 'quadro column list' to see columns and their statuses"); fmtErr != nil {
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

	// Resolve a column id to its canonical status
	if columnID != "" {
		kind, err := cli.GetBoardKind(cmd)
		if err != nil {
			if fmtErr := formatter.Error("INVALID_BOARD", err.Error()); fmtErr != nil {
				slog.Error("Error formatting error message", "error", fmtErr)
			}
			os.Exit(cli.ExitUsage)
		}

		columnService, err := cliInstance.App.Columns(kind)
		if err != nil {
			if fmtErr := formatter.Error("BOARD_NOT_FOUND", err.Error()); fmtErr != nil {
				slog.Error("Error formatting error message", "error", fmtErr)
			}
			os.Exit(cli.ExitNotFound)
		}

		status = columnService.Mapper().StatusForColumn(columnID)
		if status == "" {
			if fmtErr := formatter.ErrorWithSuggestion("COLUMN_NOT_FOUND",
				fmt.Sprintf("column %s not found on board '%s'", columnID, kind),
				"Use 'quadro column list' to see column IDs"); fmtErr != nil {
				slog.Error("Error formatting error message", "error", fmtErr)
			}
			os.Exit(cli.ExitNotFound)
		}
	}

	moved, err := cliInstance.App.ItemService.MoveItem(ctx, itemID, status)
	if err != nil {
		if errors.Is(err, models.ErrItemNotFound) {
			if fmtErr := formatter.ErrorWithSuggestion("ITEM_NOT_FOUND",
				fmt.Sprintf("item %s not found", itemID),
				"Use 'quadro item list' to see item IDs"); fmtErr != nil {
				slog.Error("Error formatting error message", "error", fmtErr)
			}
			os.Exit(cli.ExitNotFound)
		}
		if fmtErr := formatter.Error("MOVE_ERROR", err.Error()); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		os.Exit(cli.ExitValidation)
	}

	if quietMode {
		fmt.Printf("%s\n", moved.ID)
		return nil
	}

	if jsonOutput {
		return formatter.Success(moved)
	}

	fmt.Printf("✅ Moved item '%s' to status '%s'\n", moved.Title, moved.Status)
	return nil
}
