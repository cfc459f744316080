package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yungbote/tasknotes-backend/internal/app"
	"github.com/yungbote/tasknotes-backend/internal/platform/logger"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema and exit",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		log, err := logger.New(cfg.LogMode)
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		defer log.Sync()

		gdb, err := app.OpenDB(cfg, log)
		if err != nil {
			return err
		}
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
		log.Info("schema migrated", "driver", cfg.DBDriver)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
