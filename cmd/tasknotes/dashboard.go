package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yungbote/tasknotes-backend/internal/app"
)

var dashboardLimit int

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Print the dashboard feed as JSON",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		cfg.Metrics.Enabled = false

		a, err := app.New(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer a.Close()

		items, err := a.Services.Dashboard.BuildDashboard(cmd.Context())
		if err != nil {
			return fmt.Errorf("build dashboard: %w", err)
		}
		if dashboardLimit > 0 && len(items) > dashboardLimit {
			items = items[:dashboardLimit]
		}

		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(items)
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
	dashboardCmd.Flags().IntVarP(&dashboardLimit, "limit", "n", 0, "Show at most n items (0 = all)")
}
