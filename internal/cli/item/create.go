package item

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/quadro-app/quadro/internal/cli"
	itemservice "github.com/quadro-app/quadro/internal/services/item"
	"github.com/spf13/cobra"
)

// CreateCmd returns the item create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new item",
		Long: `Create a new item on a board.

New items land in the board's first column unless --status is given.

Examples:
  # Simple activity (human-readable output)
  quadro item create --title="Ligar para cliente"

  # Project with attributes, JSON output for agents
  quadro item create --board=projects --title="Reforma" --priority=high --json

  # Quiet mode for bash capture
  ITEM_ID=$(quadro item create --title="Follow up" --quiet)

  # Description from stdin
  echo "## Notes" | quadro item create --title="Review" --description=-
`,
		RunE: runCreate,
	}

	// Required flags
	cmd.Flags().String("title", "", "Item title (required)")
	if err := cmd.MarkFlagRequired("title"); err != nil {
		slog.Error("Error marking flag as required", "error", err)
	}

	// Optional flags
	cmd.Flags().String("board", "", "Board kind: activities or projects")
	cmd.Flags().String("description", "", "Item description (use - for stdin)")
	cmd.Flags().String("status", "", "Initial status (defaults to the board's first column)")
	cmd.Flags().String("priority", "", "Priority: low, medium, high")
	cmd.Flags().String("owner", "", "Responsible person")
	cmd.Flags().String("due", "", "Due date (YYYY-MM-DD)")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	title, _ := cmd.Flags().GetString("title")
	description, _ := cmd.Flags().GetString("description")
	status, _ := cmd.Flags().GetString("status")
	priority, _ := cmd.Flags().GetString("priority")
	owner, _ := cmd.Flags().GetString("owner")
	due, _ := cmd.Flags().GetString("due")
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

	if priority != "" {
		priority, err = cli.ParsePriority(priority)
		if err != nil {
			if fmtErr := formatter.Error("VALIDATION_ERROR", err.Error()); fmtErr != nil {
				slog.Error("Error formatting error message", "error", fmtErr)
			}
			os.Exit(cli.ExitValidation)
		}
	}

	dueDate, err := cli.ParseDueDate(due)
	if err != nil {
		if fmtErr := formatter.Error("VALIDATION_ERROR", err.Error()); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		os.Exit(cli.ExitValidation)
	}

	// Read description from stdin when requested
	if description == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			if fmtErr := formatter.Error("STDIN_ERROR", err.Error()); fmtErr != nil {
				slog.Error("Error formatting error message", "error", fmtErr)
			}
			os.Exit(cli.ExitDataErr)
		}
		description = strings.TrimSpace(string(data))
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

	created, err := cliInstance.App.ItemService.CreateItem(ctx, itemservice.CreateItemRequest{
		Kind:        kind,
		Title:       title,
		Description: description,
		Status:      status,
		Priority:    priority,
		Owner:       owner,
		DueDate:     dueDate,
	})
	if err != nil {
		if fmtErr := formatter.Error("VALIDATION_ERROR", err.Error()); fmtErr != nil {
			slog.Error("Error formatting error message", "error", fmtErr)
		}
		os.Exit(cli.ExitValidation)
	}

	if quietMode {
		fmt.Printf("%s\n", created.ID)
		return nil
	}

	if jsonOutput {
		return formatter.Success(created)
	}

	fmt.Printf("✅ Created item '%s' on board '%s' (ID: %s)\n", created.Title, kind, created.ID)
	return nil
}
