package app

import (
	"context"
	"fmt"

	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/yungbote/tasknotes-backend/internal/data/db"
	"github.com/yungbote/tasknotes-backend/internal/platform/logger"
	"github.com/yungbote/tasknotes-backend/internal/realtime/bus"
)

// OpenDB connects to the configured driver and migrates the schema.
func OpenDB(cfg Config, log *logger.Logger) (*gorm.DB, error) {
	var (
		gdb *gorm.DB
		err error
	)
	switch cfg.DBDriver {
	case DriverSQLite:
		gdb, err = db.OpenSQLite(cfg.SQLitePath, log)
	default:
		gdb, err = db.OpenPostgres(cfg.Postgres, log)
	}
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrateAll(gdb); err != nil {
		return nil, fmt.Errorf("automigrate: %w", err)
	}
	return gdb, nil
}

// OpenBus returns the Redis bus when REDIS_ADDR is set, otherwise a bus that drops every event.
func OpenBus(ctx context.Context, cfg Config, log *logger.Logger) (bus.Bus, *goredis.Client, error) {
	if cfg.Redis.Addr == "" {
		log.Info("REDIS_ADDR not set, change events disabled")
		return bus.NewNoopBus(), nil, nil
	}
	rdb, err := bus.NewRedisClient(ctx, cfg.Redis.Addr)
	if err != nil {
		return nil, nil, fmt.Errorf("init redis: %w", err)
	}
	b, err := bus.NewRedisBus(log, rdb, cfg.Redis.Channel)
	if err != nil {
		_ = rdb.Close()
		return nil, nil, err
	}
	return b, rdb, nil
}
