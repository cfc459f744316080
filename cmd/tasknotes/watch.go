package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/yungbote/tasknotes-backend/internal/app"
	"github.com/yungbote/tasknotes-backend/internal/platform/logger"
	"github.com/yungbote/tasknotes-backend/internal/realtime"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Stream change events from the Redis bus as JSON lines",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cfg.Redis.Addr == "" {
			return errors.New("watch needs REDIS_ADDR (or redis.addr in the config file)")
		}
		log, err := logger.New(cfg.LogMode)
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		defer log.Sync()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		eventBus, _, err := app.OpenBus(ctx, cfg, log)
		if err != nil {
			return err
		}
		defer eventBus.Close()

		encoder := json.NewEncoder(os.Stdout)
		if err := eventBus.StartForwarder(ctx, func(ev realtime.Event) {
			if err := encoder.Encode(ev); err != nil {
				log.Warn("encode event failed", "error", err)
			}
		}); err != nil {
			return err
		}
		log.Info("watching change events", "channel", cfg.Redis.Channel)
		<-ctx.Done()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
