package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/snakearena/server/internal/api"
	"github.com/snakearena/server/internal/config"
	"github.com/snakearena/server/internal/factory"
	"github.com/snakearena/server/internal/services/session"
	redisstorage "github.com/snakearena/server/internal/storage/redis"
	"github.com/snakearena/server/internal/storage/seed"
	"github.com/snakearena/server/internal/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	}))

	ctx := context.Background()

	redisCfg := redisstorage.DefaultConfig()
	redisCfg.URL = cfg.RedisURL
	redisCfg.SessionTTL = cfg.SessionTTL

	app, err := factory.New(ctx, factory.Config{
		Logger:        logger,
		StorageType:   cfg.StorageType,
		RedisConfig:   &redisCfg,
		DatabaseURL:   cfg.DatabaseURL,
		SessionConfig: session.Config{TTL: cfg.SessionTTL},
	})
	if err != nil {
		logger.Error("failed to initialise application", "error", err)
		os.Exit(1)
	}

	if cfg.SeedDemoData {
		if err := seed.Seed(ctx, app.Storage); err != nil {
			logger.Error("failed to seed demo data", "error", err)
			os.Exit(1)
		}
	}

	apiRouter := api.NewRouter(api.RouterConfig{
		Logger:             logger,
		SessionService:     app.SessionService,
		AccountService:     app.AccountService,
		LeaderboardService: app.LeaderboardService,
		LiveService:        app.LiveService,
	})

	root := http.NewServeMux()
	root.Handle("/api/", apiRouter)
	if web.DirExists(cfg.StaticDir) {
		logger.Info("serving frontend", "dir", cfg.StaticDir)
		root.Handle("/", web.Static(cfg.StaticDir))
	}

	serverCfg := api.DefaultServerConfig()
	serverCfg.Host = cfg.Host
	serverCfg.Port = cfg.Port
	server := api.NewServer(root, serverCfg, logger)

	// Run the server in a goroutine so signals can trigger shutdown
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	case sig := <-sigCh:
		logger.Info("received signal", "signal", sig.String())
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("shutdown failed", "error", err)
			os.Exit(1)
		}
	}
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
