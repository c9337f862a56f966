package item

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/quadro-app/quadro/internal/board"
	"github.com/quadro-app/quadro/internal/cli"
	"github.com/spf13/cobra"
)

// ListCmd returns the item list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List items on a board, grouped by column",
		Long: `List items on a board, grouped into the board's configured columns.

Items whose status maps to no column are hidden, exactly as on the
rendered board.

Examples:
  quadro item list
  quadro item list --board=projects --json
  quadro item list --quiet
`,
		RunE: runList,
	}

	cmd.Flags().String("board", "", "Board kind: activities or projects")

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

	items, err := cliInstance.App.ItemService.GetBoardItems(ctx, kind)
	if err != nil {
		if fmtErr := formatter.Error("ITEM_FETCH_ERROR", err.Error()); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		return err
	}

	grouped := board.Render(columnService.Columns(), columnService.Mapper(), items)

	if quietMode {
		for _, group := range grouped {
			for _, it := range group.Items {
				fmt.Printf("%s\n", it.ID)
			}
		}
		return nil
	}

	if jsonOutput {
		columnList := make([]map[string]interface{}, len(grouped))
		for i, group := range grouped {
			itemList := make([]map[string]interface{}, len(group.Items))
			for j, it := range group.Items {
				itemList[j] = map[string]interface{}{
					"id":       it.ID,
					"title":    it.Title,
					"status":   it.Status,
					"priority": it.Priority,
					"owner":    it.Owner,
				}
				if it.DueDate != nil {
					itemList[j]["due_date"] = it.DueDate.Format("2006-01-02")
				}
			}
			columnList[i] = map[string]interface{}{
				"id":    group.Column.ID,
				"name":  group.Column.Name,
				"items": itemList,
			}
		}
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"board":   string(kind),
			"columns": columnList,
		})
	}

	// Human-readable output
	fmt.Printf("Board '%s':\n", kind)
	for _, group := range grouped {
		fmt.Printf("\n%s (%d)\n", group.Column.Name, len(group.Items))
		if len(group.Items) == 0 {
			fmt.Println("  (empty)")
			continue
		}
		for _, it := range group.Items {
			line := fmt.Sprintf("  - %s [%s]", it.Title, it.Priority)
			if it.Owner != "" {
				line += " @" + it.Owner
			}
			if it.DueDate != nil {
				line += " due " + it.DueDate.Format("2006-01-02")
			}
			fmt.Printf("%s (ID: %s)\n", line, it.ID)
		}
	}
	return nil
}
