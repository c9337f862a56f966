package cli

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/quadro-app/quadro/internal/app"
	"github.com/quadro-app/quadro/internal/config"
	"github.com/quadro-app/quadro/internal/database"
	"github.com/quadro-app/quadro/internal/events"
)

// CLI represents the CLI application context
type CLI struct {
	App         *app.App // Application container with services
	Config      *config.Config
	db          *sql.DB
	eventClient events.EventPublisher
	ctx         context.Context
}

// NewCLI initializes the CLI with database and optional daemon connection
func NewCLI(ctx context.Context) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize database
	db, err := database.InitDB(ctx, cfg.DBPath())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Try to connect to daemon (optional - silent fallback)
	var eventClient events.EventPublisher
	client, err := events.NewClient(cfg.SocketPath(), cfg.Events.Debounce())
	if err == nil {
		// Connect failure means the daemon isn't running (graceful degradation)
		if err := client.Connect(ctx); err == nil {
			eventClient = client
		}
	}

	application := app.New(database.NewRepository(db), cfg.BoardDir(), eventClient)

	return &CLI{
		App:         application,
		Config:      cfg,
		db:          db,
		eventClient: eventClient,
		ctx:         ctx,
	}, nil
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if c.eventClient != nil {
		c.eventClient.Close()
	}
	if c.App != nil {
		c.App.Close()
	}
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}
