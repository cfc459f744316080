package app

import (
	"context"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/yungbote/tasknotes-backend/internal/data/repos"
	"github.com/yungbote/tasknotes-backend/internal/http"
	"github.com/yungbote/tasknotes-backend/internal/observability"
	"github.com/yungbote/tasknotes-backend/internal/platform/clock"
	"github.com/yungbote/tasknotes-backend/internal/platform/logger"
	"github.com/yungbote/tasknotes-backend/internal/realtime/bus"
)

type App struct {
	Log      *logger.Logger
	DB       *gorm.DB
	Cfg      Config
	Repos    repos.Set
	Services Services
	Bus      bus.Bus
	Metrics  *observability.Metrics
	Server   *http.Server

	redis        *goredis.Client
	otelShutdown func(context.Context) error
	cancel       context.CancelFunc
}

func New(ctx context.Context, cfg Config) (*App, error) {
	log, err := logger.New(cfg.LogMode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	otelShutdown := observability.InitOTel(ctx, log, cfg.Otel)
	metrics := observability.Init(log, cfg.Metrics)

	theDB, err := OpenDB(cfg, log)
	if err != nil {
		log.Sync()
		return nil, fmt.Errorf("init db: %w", err)
	}

	eventBus, rdb, err := OpenBus(ctx, cfg, log)
	if err != nil {
		closeDB(theDB)
		log.Sync()
		return nil, err
	}

	reposet := repos.NewSet(theDB, log)
	serviceset := wireServices(theDB, log, reposet, eventBus, metrics, clock.System())
	handlerset := wireHandlers(theDB, log, serviceset)
	router := wireRouter(cfg, log, metrics, handlerset)

	return &App{
		Log:          log,
		DB:           theDB,
		Cfg:          cfg,
		Repos:        reposet,
		Services:     serviceset,
		Bus:          eventBus,
		Metrics:      metrics,
		Server:       &http.Server{Engine: router},
		redis:        rdb,
		otelShutdown: otelShutdown,
	}, nil
}

// Start launches background collectors. It is a no-op when called twice.
func (a *App) Start() {
	if a == nil || a.cancel != nil {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	a.cancel = cancel

	a.Metrics.StartDBCollector(ctx, a.Log, a.DB)
	if a.redis != nil {
		a.Metrics.StartRedisCollector(ctx, a.Log, a.redis)
	}
}

func (a *App) Run() error {
	if a == nil || a.Server == nil {
		return errors.New("app not initialized")
	}
	a.Log.Info("HTTP server listening", "addr", a.Cfg.Addr())
	return a.Server.Run(a.Cfg.Addr())
}

func (a *App) Shutdown(ctx context.Context) error {
	if a == nil || a.Server == nil {
		return nil
	}
	return a.Server.Shutdown(ctx)
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if a.cancel != nil {
		a.cancel()
		a.cancel = nil
	}
	if a.Bus != nil {
		if err := a.Bus.Close(); err != nil {
			a.Log.Warn("bus close failed", "error", err)
		}
	}
	if a.otelShutdown != nil {
		if err := a.otelShutdown(context.Background()); err != nil {
			a.Log.Warn("otel shutdown failed", "error", err)
		}
	}
	closeDB(a.DB)
	if a.Log != nil {
		a.Log.Sync()
	}
}

func closeDB(gdb *gorm.DB) {
	if gdb == nil {
		return
	}
	if sqlDB, err := gdb.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
