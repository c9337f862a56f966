package column

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/quadro-app/quadro/internal/cli"
	"github.com/quadro-app/quadro/internal/models"
	"github.com/spf13/cobra"
)

// DeleteCmd returns the column delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <column-id>",
		Short: "Delete a column",
		Long: `Delete a column from a board.

The last remaining column on a board cannot be deleted. Items whose
status maps to the deleted column disappear from the board view until
their status is changed; the items themselves are untouched.

Examples:
  quadro column delete column_a1b2c3d4e5f6
  quadro column delete column_a1b2c3d4e5f6 --board=projects --json
`,
		Args: cobra.ExactArgs(1),
		RunE: runDelete,
	}

	cmd.Flags().String("board", "", "Board kind: activities or projects")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	columnID := args[0]

	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	kind, err := cli.GetBoardKind(cmd)
	if err != nil {
		if fmtErr := formatter.Error("INVALID_BOARD", err.Error()); fmtErr != nil {
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

	columnService, err := cliInstance.App.Columns(kind)
	if err != nil {
		if fmtErr := formatter.Error("BOARD_NOT_FOUND", err.Error()); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		os.Exit(cli.ExitNotFound)
	}

	if !columnExists(columnService.Columns(), columnID) {
		if fmtErr := formatter.ErrorWithSuggestion("COLUMN_NOT_FOUND",
			fmt.Sprintf("column %s not found on board '%s'", columnID, kind),
			"Use 'quadro column list' to see column IDs"); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		os.Exit(cli.ExitNotFound)
	}

	if err := columnService.RemoveColumn(columnID); err != nil {
		if errors.Is(err, models.ErrLastColumn) {
			if fmtErr := formatter.ErrorWithSuggestion("LAST_COLUMN", err.Error(),
				"Boards need at least one column; create another before deleting this one"); fmtErr != nil {
				slog.Error("Error formatting error message", "error", fmtErr)
			}
			os.Exit(cli.ExitValidation)
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
		return formatter.Success(map[string]interface{}{"deleted": columnID, "board": string(kind)})
	}

	fmt.Printf("✅ Deleted column %s from board '%s'\n", columnID, kind)
	return nil
}

// columnExists reports whether the column id is present in the slice
func columnExists(columns []models.Column, columnID string) bool {
	for _, col := range columns {
		if col.ID == columnID {
			return true
		}
	}
	return false
}
