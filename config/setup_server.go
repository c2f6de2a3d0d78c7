package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Server         ServerConfig   `yaml:"server"`
	DatabaseConfig DatabaseConfig `yaml:"database"`
	RedisConfig    RedisConfig    `yaml:"redis"`
	S3Config       S3Config       `yaml:"storage"`
	JWT            JWTConfig      `yaml:"jwt"`
	Log            LogConfig      `yaml:"log"`
}

func defaultConfig() AppConfig {
	return AppConfig{
		Server: ServerConfig{
			Addr:            ":8080",
			MaxUploadSizeMB: 100,
			TmpDir:          os.TempDir(),
			AllowedOrigins:  []string{"*"},
		},
		DatabaseConfig: DatabaseConfig{Driver: "postgres"},
		S3Config: S3Config{
			Backend:     "s3",
			ServiceName: "s3",
			Region:      "us-east-1",
			LocalPath:   "./data",
		},
		JWT: JWTConfig{
			Algorithm:                "HS256",
			AccessTokenExpireMinutes: 30,
		},
		Log: LogConfig{Env: "development", Level: "info"},
	}
}

// LoadConfig : читает yaml (если есть), поверх него .env и переменные окружения, затем валидирует.
// Приоритет: env > yaml > значения по умолчанию
func LoadConfig(path string) (*AppConfig, error) {
	cfg := defaultConfig()

	if path != "" {
		file, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(file, &cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		case errors.Is(err, os.ErrNotExist):
			slog.Info("файл конфигурации не найден, используется окружение", "path", path)
		default:
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	if err := godotenv.Load(); err != nil {
		slog.Debug(".env не найден, используются переменные окружения")
	}

	if err := applyEnv(&cfg); err != nil {
		return nil, err
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

func applyEnv(cfg *AppConfig) error {
	envString("SERVER_ADDR", &cfg.Server.Addr)
	envString("TMP_DIR", &cfg.Server.TmpDir)
	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		cfg.Server.AllowedOrigins = strings.Split(v, ",")
	}

	envString("DATABASE_DRIVER", &cfg.DatabaseConfig.Driver)
	envString("DATABASE_URL", &cfg.DatabaseConfig.URL)
	envString("DATABASE_NAME", &cfg.DatabaseConfig.Name)

	envString("REDIS_ADDR", &cfg.RedisConfig.Addr)
	envString("REDIS_PASSWORD", &cfg.RedisConfig.Password)

	envString("STORAGE_BACKEND", &cfg.S3Config.Backend)
	envString("STORAGE_LOCAL_PATH", &cfg.S3Config.LocalPath)
	envString("BUCKET_SERVICE_NAME", &cfg.S3Config.ServiceName)
	envString("BUCKET_REGION", &cfg.S3Config.Region)
	envString("BUCKET_ACCESS_KEY_ID", &cfg.S3Config.AccessKeyID)
	envString("BUCKET_SECRET_ACCESS_KEY", &cfg.S3Config.SecretAccessKey)
	envString("BUCKET_ENDPOINT_URL", &cfg.S3Config.Endpoint)
	envString("BUCKET_NAME", &cfg.S3Config.Bucket)

	envString("JWT_SECRET", &cfg.JWT.SecretKey)
	envString("JWT_ALGORITHM", &cfg.JWT.Algorithm)

	envString("APP_ENV", &cfg.Log.Env)
	envString("LOG_LEVEL", &cfg.Log.Level)
	envString("SENTRY_DSN", &cfg.Log.SentryDSN)

	if err := envInt("REDIS_DB", &cfg.RedisConfig.DB); err != nil {
		return err
	}
	if err := envInt("JWT_ACCESS_TOKEN_EXPIRE_MINUTES", &cfg.JWT.AccessTokenExpireMinutes); err != nil {
		return err
	}

	var maxUpload int
	if err := envInt("MAX_UPLOAD_SIZE_MB", &maxUpload); err != nil {
		return err
	}
	if maxUpload > 0 {
		cfg.Server.MaxUploadSizeMB = int64(maxUpload)
	}

	return nil
}

func envString(key string, dst *string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func envInt(key string, dst *int) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("invalid %s=%q: %w", key, v, err)
	}
	*dst = n
	return nil
}

func SetupServer(serverAddress string) (*http.Server, *chi.Mux) {
	router := chi.NewRouter()
	server := &http.Server{
		Addr:    serverAddress,
		Handler: router,
	}

	return server, router
}

func SetupDatabase(cfg *DatabaseConfig) (*Database, error) {
	dsn, err := cfg.ConnectionURL()
	if err != nil {
		return nil, err
	}
	return NewDatabaseConnection(cfg.Driver, dsn)
}

func SetupRedis(cfg *RedisConfig) (*RedisClient, error) {
	return NewRedisClient(cfg)
}
