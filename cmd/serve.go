package main

import (
	"context"
	"errors"
	"file-storage-server/config"
	"file-storage-server/internal/handler"
	"file-storage-server/internal/logger"
	"file-storage-server/internal/ports"
	"file-storage-server/internal/repository"
	"file-storage-server/internal/security"
	"file-storage-server/internal/service"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/spf13/cobra"
	httpSwagger "github.com/swaggo/http-swagger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Запустить HTTP сервер",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().Bool("migrate", true, "применить миграции перед запуском")
	rootCmd.Flags().AddFlagSet(serveCmd.Flags())
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	cfg := appConfig

	db, err := config.SetupDatabase(&cfg.DatabaseConfig)
	if err != nil {
		return fmt.Errorf("не удалось подключиться к БД: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Warn("ошибка при закрытии БД", "error", err)
		}
	}()

	if migrate, _ := cmd.Flags().GetBool("migrate"); migrate {
		if err := db.RunMigrations(ctx); err != nil {
			return err
		}
	}

	redisClient, err := config.SetupRedis(&cfg.RedisConfig)
	if err != nil {
		return fmt.Errorf("ошибка подключения к Redis: %w", err)
	}
	if redisClient == nil {
		slog.Warn("Redis не настроен, orphan-записи будут только логироваться")
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Warn("ошибка при закрытии Redis", "error", err)
		}
	}()

	storage, closeStorage, err := setupStorage(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStorage()

	userRepo := repository.NewUserRepository(db)
	fileRepo := repository.NewFileRepository(db)
	folderRepo := repository.NewFolderRepository(db)
	orphanRepo := repository.NewOrphanRepository(redisClient)

	jwtService, err := security.NewJWTService(&cfg.JWT, userRepo)
	if err != nil {
		return err
	}

	userService := service.NewUserService(userRepo)
	authService := service.NewAuthenticationService(userRepo, jwtService)
	fileService := service.NewFileService(fileRepo, folderRepo, storage, orphanRepo)
	folderService := service.NewFolderService(folderRepo, fileRepo, fileService)

	srv, router := config.SetupServer(cfg.Server.Addr)

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(logger.RequestLogger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
		ExposedHeaders: []string{"Content-Disposition"},
		MaxAge:         300,
	}))

	router.Get("/swagger/*", httpSwagger.WrapHandler)

	handler.SetupRoutes(router, handler.Handlers{
		Auth:   handler.NewAuthenticationHandler(authService),
		User:   handler.NewUserHandler(userService),
		File:   handler.NewFileHandler(fileService, cfg.Server.MaxUploadSizeMB),
		Folder: handler.NewFolderHandler(folderService),
	}, jwtService)

	return runServer(ctx, srv)
}

// setupStorage : выбирает бэкенд объектного хранилища по storage.backend
func setupStorage(ctx context.Context, cfg *config.AppConfig) (ports.ObjectStorage, func(), error) {
	switch cfg.S3Config.Backend {
	case "local":
		local, err := service.NewLocalStorage(cfg.S3Config.LocalPath, cfg.S3Config.Bucket, cfg.Server.TmpDir)
		if err != nil {
			return nil, nil, fmt.Errorf("ошибка создания локального хранилища: %w", err)
		}
		slog.Info("используется локальное хранилище", "path", cfg.S3Config.LocalPath, "bucket", cfg.S3Config.Bucket)
		return local, func() {
			if err := local.Close(); err != nil {
				slog.Warn("ошибка при закрытии локального хранилища", "error", err)
			}
		}, nil
	default:
		s3Service, err := service.NewS3Service(ctx, &cfg.S3Config, cfg.Server.TmpDir)
		if err != nil {
			return nil, nil, fmt.Errorf("ошибка создания S3 сервиса: %w", err)
		}
		slog.Info("используется S3 хранилище", "bucket", cfg.S3Config.Bucket, "endpoint", cfg.S3Config.Endpoint)
		return s3Service, func() {}, nil
	}
}

func runServer(ctx context.Context, server *http.Server) error {
	serverErrors := make(chan error, 1)
	go func() {
		slog.Info("сервер запущен", "addr", server.Addr)
		serverErrors <- server.ListenAndServe()
	}()

	signalChannel := make(chan os.Signal, 1)
	signal.Notify(signalChannel, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signalChannel)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("ошибка работы сервера: %w", err)
		}
		return nil
	case sig := <-signalChannel:
		slog.Info("получен сигнал остановки работы сервера", "signal", sig.String())
	case <-ctx.Done():
	}

	shutDownCtx, shutDownCancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer shutDownCancel()

	if err := server.Shutdown(shutDownCtx); err != nil {
		return fmt.Errorf("ошибка при остановке сервера: %w", err)
	}

	slog.Info("сервер успешно остановлен")
	return nil
}
