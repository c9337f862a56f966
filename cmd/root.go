package cmd

import (
	"github.com/quadro-app/quadro/internal/cli/column"
	"github.com/quadro-app/quadro/internal/cli/item"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "quadro",
	Short: "Quadro - A terminal-based kanban board",
	Long: `Quadro is a terminal-based kanban board with two boards: day-to-day
activities and long-running projects. Run with no arguments to open the
interactive board; use the subcommands for scripting.`,
}

func init() {
	rootCmd.AddCommand(column.ColumnCmd())
	rootCmd.AddCommand(item.ItemCmd())
}

func Execute() error {
	return rootCmd.Execute()
}
