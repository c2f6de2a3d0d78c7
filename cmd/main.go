package main

import (
	"file-storage-server/config"
	_ "file-storage-server/docs"
	"file-storage-server/internal/logger"
	"os"

	"github.com/spf13/cobra"
)

var appConfig *config.AppConfig

var rootCmd = &cobra.Command{
	Use:           "file-storage-server",
	Short:         "REST API для хранения файлов пользователей",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		path, err := cmd.Flags().GetString("config")
		if err != nil {
			return err
		}

		cfg, err := config.LoadConfig(path)
		if err != nil {
			return err
		}
		appConfig = cfg

		logger.Init(cfg.Log.Env, cfg.Log.Level, cfg.Log.SentryDSN)
		return nil
	},
	RunE: runServe,
}

func init() {
	rootCmd.PersistentFlags().String("config", "config.yaml", "путь к файлу конфигурации")
}

// @title File-storage-server
// @version 1.0
// @description REST API для хранения файлов и папок

// @host localhost:8080

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	err := rootCmd.Execute()
	logger.Flush()
	if err != nil {
		if logger.Log != nil {
			logger.Log.Error("команда завершилась с ошибкой", "error", err)
		} else {
			os.Stderr.WriteString(err.Error() + "\n")
		}
		os.Exit(1)
	}
}
