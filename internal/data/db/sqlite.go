package db

import (
	"fmt"
	"strings"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/yungbote/tasknotes-backend/internal/platform/logger"
)

// MemoryDSN is a private in-memory database; each OpenSQLite call gets its own.
const MemoryDSN = "file::memory:"

// OpenSQLite opens a sqlite database at path. A single connection is used so that
// in-memory databases survive across queries and writers never contend.
func OpenSQLite(path string, logg *logger.Logger) (*gorm.DB, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		path = MemoryDSN
	}
	gl := newGormLogger()
	if path == MemoryDSN {
		gl = gormLogger.Default.LogMode(gormLogger.Silent)
	}
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gl,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite %q: %w", path, err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("sqlite handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		return nil, fmt.Errorf("sqlite pragma: %w", err)
	}
	if logg != nil {
		logg.Info("Opened sqlite database", "path", path)
	}
	return db, nil
}
