package db

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/yungbote/tasknotes-backend/internal/domain"
)

func AutoMigrateAll(db *gorm.DB) error {
	if err := db.AutoMigrate(
		// Todo aggregate
		&domain.TodoList{},
		&domain.Todo{},

		// Notes
		&domain.Note{},
	); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}
	return nil
}
