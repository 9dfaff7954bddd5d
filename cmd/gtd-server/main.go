package main

import (
	"fmt"
	"os"

	"github.com/avivsarig/gtd/api"
	"github.com/avivsarig/gtd/pkg/config"
	"github.com/avivsarig/gtd/pkg/logger"
	"github.com/avivsarig/gtd/pkg/repository"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "gtd-server",
		Short: "GTD backend server",
		Long:  "HTTP API server for tasks, projects, notes, contexts and inbox capture.",
	}
	root.AddCommand(serveCmd(), migrateCmd())
	return root
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run database migrations and start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			log, err := logger.New(cfg.Log.Mode)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			defer log.Sync() //nolint:errcheck

			db, err := repository.Open(cfg)
			if err != nil {
				return fmt.Errorf("open database: %w", err)
			}
			if err := repository.Migrate(db); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}

			router := api.NewRouter(db, log)
			log.Info("server starting", zap.String("addr", cfg.Server.Addr()))
			return router.Run(cfg.Server.Addr())
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			log, err := logger.New(cfg.Log.Mode)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			defer log.Sync() //nolint:errcheck

			db, err := repository.Open(cfg)
			if err != nil {
				return fmt.Errorf("open database: %w", err)
			}
			if err := repository.Migrate(db); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			log.Info("migrations applied")
			return nil
		},
	}
}
