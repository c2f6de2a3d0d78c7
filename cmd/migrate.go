package main

import (
	"file-storage-server/config"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Управление схемой БД",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Применить все миграции",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withDatabase(func(db *config.Database) error {
			return db.RunMigrations(cmd.Context())
		})
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Откатить последнюю миграцию",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withDatabase(func(db *config.Database) error {
			return db.MigrateDown(cmd.Context())
		})
	},
}

func init() {
	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd)
	rootCmd.AddCommand(migrateCmd)
}

func withDatabase(fn func(db *config.Database) error) error {
	db, err := config.SetupDatabase(&appConfig.DatabaseConfig)
	if err != nil {
		return fmt.Errorf("не удалось подключиться к БД: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Warn("ошибка при закрытии БД", "error", err)
		}
	}()

	return fn(db)
}
