package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/quadro-app/quadro/internal/config"
	"github.com/quadro-app/quadro/internal/daemon"
	"github.com/quadro-app/quadro/internal/logging"
)

func main() {
	// Set up signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Ensure the data directory exists with secure permissions
	if err := os.MkdirAll(cfg.Paths.DataDir, 0700); err != nil {
		slog.Error("failed to create data directory", "error", err)
		os.Exit(1)
	}

	if err := logging.Init(cfg.Paths.DataDir); err != nil {
		slog.Error("failed to initialize logging", "error", err)
	}

	// Create and start the daemon server
	server, err := daemon.NewServer(cfg.SocketPath())
	if err != nil {
		slog.Error("failed to create daemon", "error", err)
		os.Exit(1)
	}

	slog.Info("quadro daemon starting", "socket_path", cfg.SocketPath(), "pid", os.Getpid())

	// Start the daemon (blocks until shutdown)
	if err := server.Start(ctx); err != nil {
		slog.Error("daemon error", "error", err)
		os.Exit(1)
	}

	slog.Info("quadro daemon shutting down gracefully")
}
