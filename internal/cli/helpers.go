package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/quadro-app/quadro/internal/models"
	"github.com/spf13/cobra"
)

// GetBoardKind resolves the target board from the --board flag or the
// QUADRO_BOARD environment variable, defaulting to the activities board.
func GetBoardKind(cmd *cobra.Command) (models.BoardKind, error) {
	board, _ := cmd.Flags().GetString("board")
	if board == "" {
		board = os.Getenv("QUADRO_BOARD")
	}
	if board == "" {
		board = string(models.BoardActivities)
	}

	kind := models.BoardKind(strings.ToLower(board))
	if !kind.Valid() {
		return "", fmt.Errorf("invalid board '%s' (must be: activities, projects)", board)
	}
	return kind, nil
}

// ParsePriority validates a priority string
func ParsePriority(priority string) (string, error) {
	p := strings.ToLower(priority)
	switch p {
	case models.PriorityLow, models.PriorityMedium, models.PriorityHigh:
		return p, nil
	}
	return "", fmt.Errorf("invalid priority '%s' (must be: low, medium, high)", priority)
}

// ParseDueDate parses a YYYY-MM-DD due date string
func ParseDueDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, fmt.Errorf("invalid due date '%s' (expected YYYY-MM-DD)", value)
	}
	return &parsed, nil
}
