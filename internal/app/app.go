// Package app wires the repositories, handlers, middleware and router into
// one Echo server.  Everything is constructed explicitly in New and owned by
// the returned App; there is no package-level state.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/iliyamo/monastery360/internal/config"
	"github.com/iliyamo/monastery360/internal/handler"
	"github.com/iliyamo/monastery360/internal/metrics"
	"github.com/iliyamo/monastery360/internal/middleware"
	"github.com/iliyamo/monastery360/internal/model"
	"github.com/iliyamo/monastery360/internal/repository"
	"github.com/iliyamo/monastery360/internal/router"
)

// App is the application context.
type App struct {
	Echo        *echo.Echo
	Monasteries *repository.MonasteryRepo
	Events      *repository.EventRepo
	Metrics     *metrics.Collector

	addr   string
	logger *zap.Logger
}

// New seeds the repositories relative to startedAt and builds the HTTP
// server.  rdb may be nil, in which case caching and rate limiting are off.
func New(cfg config.Config, logger *zap.Logger, rdb *redis.Client, startedAt time.Time) *App {
	a := &App{
		Monasteries: repository.NewMonasteryRepo(),
		Events:      repository.NewEventRepo(startedAt),
		Metrics:     metrics.NewCollector(),
		addr:        cfg.Addr(),
		logger:      logger,
	}
	a.Metrics.SetCatalogSize("monasteries", a.Monasteries.Len())
	a.Metrics.SetCatalogSize("events", a.Events.Len())

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = handler.ErrorHandler(logger)
	e.Use(middleware.RequestLogger(logger))
	e.Use(middleware.Metrics(a.Metrics))
	e.Use(echomw.Recover()) // innermost, so panics still get logged and counted

	// Event dates depend on the seed day, so cached bodies from a run seeded
	// on another day must never be replayed.
	cacheCfg := cfg.Cache
	cacheCfg.Prefix = fmt.Sprintf("%s:%s", cfg.Cache.Prefix, model.DateOf(startedAt))

	catalog := handler.NewCatalogHandler(a.Monasteries, a.Events)
	routes := router.HealthRoutes()
	routes = append(routes, router.CatalogRoutes(catalog, router.CatalogMiddleware{
		CORS:      middleware.CORS(cfg.AllowedOrigins),
		RateLimit: middleware.NewTokenBucket(cfg.RateLimit, rdb, logger),
		Cache:     middleware.NewRedisCache(cacheCfg, rdb, logger),
	})...)
	routes = append(routes, router.MetricsRoute(a.Metrics.Handler()))
	router.Register(e, routes)

	a.Echo = e
	return a
}

// Start serves HTTP until Shutdown is called.  A clean shutdown returns nil.
func (a *App) Start() error {
	a.logger.Info("listening",
		zap.String("addr", a.addr),
		zap.Int("monasteries", a.Monasteries.Len()),
		zap.Int("events", a.Events.Len()))
	if err := a.Echo.Start(a.addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("start http server: %w", err)
	}
	return nil
}

// Shutdown stops accepting connections and waits for in-flight requests
// until ctx expires.
func (a *App) Shutdown(ctx context.Context) error {
	if err := a.Echo.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	return nil
}
