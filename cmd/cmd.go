package cmd

import (
	"fmt"
	"os"

	"github.com/frahmantamala/budget-tracker/internal"
	"github.com/frahmantamala/budget-tracker/pkg/logger"
	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "budget-tracker",
	Short: "Budget Tracker",
	Long:  `Personal budget tracking API: categories, expenses, monthly budgets and reports.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// loadConfig reads and validates the configuration and installs the process logger.
func loadConfig(path string) (*internal.Config, error) {
	cfg, err := internal.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	logger.Init(cfg.Env, logger.Options{
		Level:  cfg.Observability.Logging.Level,
		Format: cfg.Observability.Logging.Format,
	})
	return cfg, nil
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", ".", "directory holding config.yml and .env")

	rootCmd.AddCommand(httpServerCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(tokenCmd)
}
