package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/quadro-app/quadro/cmd"
	"github.com/quadro-app/quadro/internal/app"
	"github.com/quadro-app/quadro/internal/config"
	"github.com/quadro-app/quadro/internal/database"
	"github.com/quadro-app/quadro/internal/events"
	"github.com/quadro-app/quadro/internal/logging"
	"github.com/quadro-app/quadro/internal/tui"
)

func main() {
	// Subcommands go through cobra; no arguments opens the board
	if len(os.Args) > 1 {
		if err := cmd.Execute(); err != nil {
			os.Exit(1)
		}
		return
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := os.MkdirAll(cfg.Paths.DataDir, 0700); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}

	// The TUI owns the terminal, so logs go to a file
	if err := logging.Init(cfg.Paths.DataDir); err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}

	ctx := context.Background()

	db, err := database.InitDB(ctx, cfg.DBPath())
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Live updates degrade gracefully: without the daemon the board
	// still works, it just won't see changes from other processes
	var eventClient events.EventPublisher
	client, err := events.NewClient(cfg.SocketPath(), cfg.Events.Debounce())
	if err == nil {
		if err := client.Connect(ctx); err != nil {
			slog.Warn("Daemon not reachable, running without live updates", "error", err)
		} else {
			eventClient = client
			defer client.Close()
		}
	}

	application := app.New(database.NewRepository(db), cfg.BoardDir(), eventClient)

	model := tui.InitialModel(application, cfg)

	p := tea.NewProgram(model)
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		log.Fatal(err)
	}
}
