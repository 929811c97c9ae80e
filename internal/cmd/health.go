package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Dallionking/cashout/internal/health"
)

var (
	healthCheck    string
	healthCategory string
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Run configuration and catalog health checks",
	Long: `Run diagnostic checks against the effective configuration.

Checks are grouped into categories:
  config    - config file, log file, config values
  catalog   - catalog source, data integrity, default quote
  assets    - icon files referenced by the catalog
  terminal  - terminal capabilities

Use --category to run only a specific group, or --check to run a single
named check. The command fails when any check fails.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		checker := health.NewChecker(cfg, viper.ConfigFileUsed())
		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		var report *health.Report
		switch {
		case healthCheck != "":
			report = checker.RunCheck(ctx, healthCheck)
		case healthCategory != "":
			report = checker.RunCategory(ctx, healthCategory)
		default:
			report = checker.RunAll(ctx)
		}
		if report.Total == 0 {
			return fmt.Errorf("no checks match")
		}

		fmt.Fprint(cmd.OutOrStdout(), health.FormatReport(report))
		if !report.Healthy {
			return fmt.Errorf("%d check(s) failed", report.Failed)
		}
		return nil
	},
}

func init() {
	healthCmd.Flags().StringVar(&healthCheck, "check", "", "run a specific named check")
	healthCmd.Flags().StringVar(&healthCategory, "category", "", "run checks in a category: config, catalog, assets, or terminal")
	rootCmd.AddCommand(healthCmd)
}
