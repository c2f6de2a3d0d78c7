package config

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

type Database struct {
	*sqlx.DB
}

func NewDatabaseConnection(dbDriver string, dbConnectionStr string) (*Database, error) {
	database, err := sqlx.Connect(dbDriver, dbConnectionStr)
	if err != nil {
		return nil, fmt.Errorf("database connect: %w", err)
	}

	database.SetMaxOpenConns(25)
	database.SetMaxIdleConns(5)
	database.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := database.PingContext(ctx); err != nil {
		_ = database.Close()
		return nil, fmt.Errorf("database ping: %w", err)
	}

	slog.Info("подключение к БД установлено", "driver", dbDriver)
	return &Database{
		database,
	}, nil
}

// ConnectionURL : DATABASE_URL, в котором путь заменён на DATABASE_NAME, если он задан
func (c DatabaseConfig) ConnectionURL() (string, error) {
	if c.Name == "" {
		return c.URL, nil
	}

	u, err := url.Parse(c.URL)
	if err != nil || u.Scheme == "" {
		return "", fmt.Errorf("DATABASE_NAME требует DATABASE_URL в виде URL")
	}
	u.Path = "/" + strings.TrimPrefix(c.Name, "/")
	return u.String(), nil
}

func (db *Database) Close() error {
	err := db.DB.Close()
	if err != nil {
		return fmt.Errorf("database close: %w", err)
	}

	return nil
}
