package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"example.com/event-planner/backend/internal/config"
	"example.com/event-planner/backend/internal/server"
)

func main() {
	ensureEnvFile()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	if cfg.AI.APIKey == "" {
		logger.Warn("ai api key is empty, estimates and advice will fail", slog.String("provider", cfg.AI.Provider))
	}

	e := server.New(cfg, logger, server.NewAIClient(cfg.AI))
	httpServer := server.NewHTTPServer(cfg.Server, e)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		logger.Info("http server started", slog.String("addr", httpServer.Addr))
		if err := e.StartServer(httpServer); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	group.Go(func() error {
		<-groupCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		return e.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil {
		logger.Error("http server failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("http server stopped")
}

func ensureEnvFile() {
	if os.Getenv("ENV_FILE") != "" {
		return
	}

	if _, err := os.Stat(".env"); err == nil {
		_ = os.Setenv("ENV_FILE", ".env")
		return
	}

	if _, err := os.Stat("../.env"); err == nil {
		_ = os.Setenv("ENV_FILE", "../.env")
	}
}
