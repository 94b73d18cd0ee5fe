package main // Entry point package

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/iliyamo/monastery360/internal/app"
	"github.com/iliyamo/monastery360/internal/config"
	"github.com/iliyamo/monastery360/internal/logger"
	"github.com/iliyamo/monastery360/internal/queue"
)

func main() {
	startedAt := time.Now() // event dates are relative to this instant

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rdb, err := config.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		log.Warn("redis unavailable; cache and rate limiting disabled", zap.Error(err))
	}
	if rdb != nil {
		defer func() { _ = rdb.Close() }()
	}

	a := app.New(cfg, log, rdb, startedAt)

	if cfg.Queue.Enabled {
		ev := queue.NewCatalogSeededEvent(a.Monasteries.Len(), a.Events.Len(), startedAt)
		pubCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		if err := queue.NewPublisher(cfg.Queue.URL, cfg.Queue.CatalogQueue).PublishCatalogSeeded(pubCtx, ev); err != nil {
			log.Warn("catalog announcement not published", zap.Error(err))
		}
		cancel()
	}

	errCh := make(chan error, 1)
	go func() { errCh <- a.Start() }()
	log.Info("Monastery360 backend started", zap.String("env", cfg.Env))

	select {
	case err := <-errCh:
		if err != nil {
			log.Fatal("http server failed", zap.Error(err))
		}
		return
	case <-ctx.Done():
		log.Info("received shutdown signal")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := a.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown failed", zap.Error(err))
	}
	log.Info("shut down complete")
}
