package column

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/quadro-app/quadro/internal/cli"
	"github.com/spf13/cobra"
)

// UpdateCmd returns the column update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <column-id>",
		Short: "Update a column's name, color, or status",
		Long: `Update a column. Only the provided flags are changed.

Examples:
  # Rename a column
  quadro column update column_a1b2c3d4e5f6 --name="EM REVISÃO"

  # Change color and bound status together
  quadro column update column_a1b2c3d4e5f6 --color=#8B7355 --status=review
`,
		Args: cobra.ExactArgs(1),
		RunE: runUpdate,
	}

	cmd.Flags().String("board", "", "Board kind: activities or projects")
	cmd.Flags().String("name", "", "New column name")
	cmd.Flags().String("color", "", "New color: palette name or #RRGGBB")
	cmd.Flags().String("status", "", "Domain status this column should represent")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	columnID := args[0]

	name, _ := cmd.Flags().GetString("name")
	color, _ := cmd.Flags().GetString("color")
	status, _ := cmd.Flags().GetString("status")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	if name == "" && color == "" && status == "" {
		if fmtErr := formatter.ErrorWithSuggestion("NO_CHANGES",
			"nothing to update",
			"Pass at least one of --name, --color, --status"); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		os.Exit(cli.ExitUsage)
	}

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

	if name != "" {
		if err := columnService.RenameColumn(columnID, name); err != nil {
			if fmtErr := formatter.Error("VALIDATION_ERROR", err.Error()); fmtErr != nil {
				slog.Error("Error formatting error message", "error", fmtErr)
			}
			os.Exit(cli.ExitValidation)
		}
	}

	if color != "" {
		if err := columnService.SetColumnColor(columnID, color); err != nil {
			if fmtErr := formatter.ErrorWithSuggestion("VALIDATION_ERROR", err.Error(),
				"Use a palette name (gray, blue, green, orange, red, purple, yellow) or a #RRGGBB value"); fmtErr != nil {
				slog.Error("Error formatting error message", "error", fmtErr)
			}
			os.Exit(cli.ExitValidation)
		}
	}

	if status != "" {
		if err := columnService.SetColumnStatus(columnID, status); err != nil {
			if fmtErr := formatter.Error("VALIDATION_ERROR", err.Error()); fmtErr != nil {
				slog.Error("Error formatting error message", "error", fmtErr)
			}
			os.Exit(cli.ExitValidation)
		}
	}

	if quietMode {
		fmt.Printf("%s\n", columnID)
		return nil
	}

	for _, col := range columnService.Columns() {
		if col.ID == columnID {
			if jsonOutput {
				return formatter.Success(col)
			}
			fmt.Printf("✅ Updated column '%s' (ID: %s)\n", col.Name, col.ID)
			return nil
		}
	}
	return nil
}
