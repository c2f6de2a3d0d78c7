package main

import (
	"encoding/json"
	"file-storage-server/config"
	"file-storage-server/internal/repository"
	"fmt"

	"github.com/spf13/cobra"
)

var orphansCmd = &cobra.Command{
	Use:   "orphans",
	Short: "Журнал рассинхронизаций объектного хранилища и метаданных",
}

var orphansListCmd = &cobra.Command{
	Use:   "list",
	Short: "Показать последние orphan-записи",
	RunE:  runOrphansList,
}

func init() {
	orphansListCmd.Flags().Int64("limit", 100, "максимальное число записей")
	orphansCmd.AddCommand(orphansListCmd)
	rootCmd.AddCommand(orphansCmd)
}

func runOrphansList(cmd *cobra.Command, _ []string) error {
	limit, err := cmd.Flags().GetInt64("limit")
	if err != nil {
		return err
	}

	redisClient, err := config.SetupRedis(&appConfig.RedisConfig)
	if err != nil {
		return fmt.Errorf("ошибка подключения к Redis: %w", err)
	}
	defer redisClient.Close()

	orphans, err := repository.NewOrphanRepository(redisClient).List(cmd.Context(), limit)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(orphans)
}
