package column

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/quadro-app/quadro/internal/cli"
	"github.com/spf13/cobra"
)

// MoveCmd returns the column move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move <column-id>",
		Short: "Move a column to a new position",
		Long: `Move a column to a different position on its board.

Positions are 1-based board order as shown by 'quadro column list'.

Examples:
  # Make a column first
  quadro column move column_a1b2c3d4e5f6 --to=1

  # Make a column last on the projects board
  quadro column move column_a1b2c3d4e5f6 --board=projects --to=5
`,
		Args: cobra.ExactArgs(1),
		RunE: runMove,
	}

	cmd.Flags().String("board", "", "Board kind: activities or projects")
	cmd.Flags().Int("to", 0, "Target position, 1-based (required)")
	if err := cmd.MarkFlagRequired("to"); err != nil {
		slog.Error("Error marking flag as required", "error", err)
	}

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")

	return cmd
}

func runMove(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	columnID := args[0]

	to, _ := cmd.Flags().GetInt("to")
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

	columns := columnService.Columns()
	from := -1
	for i, col := range columns {
		if col.ID == columnID {
			from = i
			break
		}
	}
	if from == -1 {
		if fmtErr := formatter.ErrorWithSuggestion("COLUMN_NOT_FOUND",
			fmt.Sprintf("column %s not found on board '%s'", columnID, kind),
			"Use 'quadro column list' to see column IDs"); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		os.Exit(cli.ExitNotFound)
	}

	if to < 1 || to > len(columns) {
		if fmtErr := formatter.Error("INVALID_POSITION",
			fmt.Sprintf("position %d out of range 1-%d", to, len(columns))); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		os.Exit(cli.ExitUsage)
	}

	if err := columnService.ReorderColumn(from, to-1); err != nil {
		if fmtErr := formatter.Error("MOVE_ERROR", err.Error()); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		return err
	}

	if quietMode {
		fmt.Printf("%s\n", columnID)
		return nil
	}

	if jsonOutput {
		return formatter.Success(map[string]interface{}{
			"id":       columnID,
			"board":    string(kind),
			"position": to,
		})
	}

	fmt.Printf("✅ Moved column %s to position %d\n", columnID, to)
	return nil
}
