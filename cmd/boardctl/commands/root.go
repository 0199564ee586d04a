package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/binharademo/trelloclone/internal/adapter/postgres"
	"github.com/binharademo/trelloclone/internal/app"
	"github.com/binharademo/trelloclone/internal/config"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:     "boardctl",
	Short:   "Administer the board service",
	Version: app.BuildVersion(),
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}

// Execute runs the root command. Errors are printed by the printer helpers.
func Execute() error {
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
	err := rootCmd.Execute()
	if err != nil {
		printError(err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config.yaml (defaults to CONFIG_PATH or ./config.yaml)")

	rootCmd.AddCommand(migrateCmd, userCmd, boardCmd, cardCmd)
}

// env is the shared runtime of a command that talks to the database.
type env struct {
	cfg    *config.Config
	logger *slog.Logger
	pool   *pgxpool.Pool
}

func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.LoadFrom(configPath)
	}
	return config.Load()
}

func openEnv(ctx context.Context) (*env, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger := app.NewLogger(config.LogConfig{Level: "warn", Format: cfg.Log.Format})

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	return &env{cfg: cfg, logger: logger, pool: pool}, nil
}

func (e *env) Close() {
	e.pool.Close()
}
