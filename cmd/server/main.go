package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Lixing-Zhang/storefront/internal/config"
	"github.com/Lixing-Zhang/storefront/internal/server"
	"github.com/Lixing-Zhang/storefront/pkg/logger"
)

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(log)

	log.Info("starting storefront server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"public_dir", cfg.Static.PublicDir,
		"entry_file", cfg.Static.EntryFile,
		"spa_fallback", cfg.Static.SPAFallback,
		"log_level", cfg.LogLevel,
	)

	srv, err := server.New(cfg, log)
	if err != nil {
		log.Error("failed to build server", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		log.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
}
