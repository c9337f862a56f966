package column

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/quadro-app/quadro/internal/cli"
	"github.com/spf13/cobra"
)

// CreateCmd returns the column create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new column",
		Long: `Create a new column at the end of a board.

New columns start with the default name and color; pass --name and
--color to override them in one step.

Examples:
  # Default column on the activities board
  quadro column create

  # Named column on the projects board
  quadro column create --board=projects --name="EM REVISÃO" --color=purple

  # Quiet mode for bash capture
  COL_ID=$(quadro column create --name="Backlog" --quiet)
`,
		RunE: runCreate,
	}

	cmd.Flags().String("board", "", "Board kind: activities or projects")
	cmd.Flags().String("name", "", "Column name (defaults to NOVA ETAPA)")
	cmd.Flags().String("color", "", "Column color: palette name or #RRGGBB")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	name, _ := cmd.Flags().GetString("name")
	color, _ := cmd.Flags().GetString("color")
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

	created := columnService.AddColumn()

	if name != "" {
		if err := columnService.RenameColumn(created.ID, name); err != nil {
			if fmtErr := formatter.Error("VALIDATION_ERROR", err.Error()); fmtErr != nil {
				slog.Error("Error formatting error message", "error", fmtErr)
			}
			os.Exit(cli.ExitValidation)
		}
		created.Name = name
	}

	if color != "" {
		if err := columnService.SetColumnColor(created.ID, color); err != nil {
			if fmtErr := formatter.ErrorWithSuggestion("VALIDATION_ERROR", err.Error(),
				"Use a palette name (gray, blue, green, orange, red, purple, yellow) or a #RRGGBB value"); fmtErr != nil {
				slog.Error("Error formatting error message", "error", fmtErr)
			}
			os.Exit(cli.ExitValidation)
		}
		created.Color = color
	}

	if quietMode {
		fmt.Printf("%s\n", created.ID)
		return nil
	}

	if jsonOutput {
		return formatter.Success(created)
	}

	fmt.Printf("✅ Created column '%s' on board '%s' (ID: %s)\n", created.Name, kind, created.ID)
	return nil
}
