package config

import (
	"context"
	"embed"
	"fmt"
	"log/slog"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

func setupGoose() error {
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	goose.SetBaseFS(migrationsFS)
	return nil
}

func (db *Database) RunMigrations(ctx context.Context) error {
	if err := setupGoose(); err != nil {
		return err
	}

	if err := goose.UpContext(ctx, db.DB.DB, "migrations"); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	slog.Info("миграции применены")
	return nil
}

func (db *Database) MigrateDown(ctx context.Context) error {
	if err := setupGoose(); err != nil {
		return err
	}

	if err := goose.DownContext(ctx, db.DB.DB, "migrations"); err != nil {
		return fmt.Errorf("rollback migration: %w", err)
	}

	slog.Info("откачена одна миграция")
	return nil
}
