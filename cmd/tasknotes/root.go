package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yungbote/tasknotes-backend/internal/app"
)

var (
	configPath string
	portFlag   string
)

var rootCmd = &cobra.Command{
	Use:   "tasknotes",
	Short: "Todo lists, notes and a recency dashboard over a REST API",
	Long: `tasknotes serves todo lists and free-form notes, and merges both into a
single dashboard feed ordered by most recent update.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML config file (defaults to $TASKNOTES_CONFIG)")
	rootCmd.PersistentFlags().StringVarP(&portFlag, "port", "p", "", "HTTP port, overrides PORT")
}

// loadConfig applies flag overrides on top of file and environment settings.
func loadConfig() (app.Config, error) {
	cfg, err := app.LoadConfig(configPath)
	if err != nil {
		return app.Config{}, err
	}
	if portFlag != "" {
		cfg.Port = portFlag
	}
	return cfg, nil
}
