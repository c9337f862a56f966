package column

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/quadro-app/quadro/internal/cli"
	"github.com/spf13/cobra"
)

// ListCmd returns the column list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List columns on a board",
		Long: `List all columns on a board (in display order).

Examples:
  # Human-readable list
  quadro column list --board=activities

  # JSON output for agents
  quadro column list --board=projects --json

  # Quiet mode (one ID per line)
  quadro column list --quiet
`,
		RunE: runList,
	}

	cmd.Flags().String("board", "", "Board kind: activities or projects (uses QUADRO_BOARD env var if not specified)")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (IDs only)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

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

	// Output based on mode
	if quietMode {
		for _, col := range columns {
			fmt.Printf("%s\n", col.ID)
		}
		return nil
	}

	if jsonOutput {
		columnList := make([]map[string]interface{}, len(columns))
		for i, col := range columns {
			columnList[i] = map[string]interface{}{
				"id":     col.ID,
				"name":   col.Name,
				"color":  col.Color,
				"status": col.Status,
			}
		}
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"board":   string(kind),
			"columns": columnList,
		})
	}

	// Human-readable output
	fmt.Printf("Columns on board '%s':\n", kind)
	for i, col := range columns {
		fmt.Printf("  %d. %s [%s] (ID: %s, status: %s)\n", i+1, col.Name, col.Color, col.ID, col.CanonicalStatus())
	}
	return nil
}
