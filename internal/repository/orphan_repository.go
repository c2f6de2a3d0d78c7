package repository

import (
	"context"
	"encoding/json"
	"errors"
	"file-storage-server/config"
	"file-storage-server/internal/model"
	"file-storage-server/internal/util"
	"log/slog"
)

const orphansKey = "orphans"

var ErrJournalDisabled = errors.New("журнал orphan-записей отключён: redis не настроен")

// OrphanRepository : журнал рассинхронизаций в Redis-списке.
// Без Redis записи только логируются
type OrphanRepository struct {
	client *config.RedisClient
}

func NewOrphanRepository(rdb *config.RedisClient) *OrphanRepository {
	return &OrphanRepository{rdb}
}

func (r *OrphanRepository) enabled() bool {
	return r.client != nil && r.client.Client != nil
}

func (r *OrphanRepository) Report(ctx context.Context, orphan model.Orphan) error {
	slog.Error("orphan inconsistency",
		"key", orphan.StorageKey,
		"owner", orphan.Owner,
		"op", orphan.Operation,
		"reason", orphan.Reason,
	)

	if !r.enabled() {
		return nil
	}

	data, err := json.Marshal(orphan)
	if err != nil {
		return util.LogError("[OrphanRepo] ошибка сериализации записи", err)
	}

	if err := r.client.Client.LPush(ctx, orphansKey, data).Err(); err != nil {
		return util.LogError("[OrphanRepo] ошибка сохранения в Redis", err)
	}
	return nil
}

// List : последние limit записей, новые первыми
func (r *OrphanRepository) List(ctx context.Context, limit int64) ([]model.Orphan, error) {
	if !r.enabled() {
		return nil, ErrJournalDisabled
	}
	if limit <= 0 {
		limit = 100
	}

	values, err := r.client.Client.LRange(ctx, orphansKey, 0, limit-1).Result()
	if err != nil {
		return nil, util.LogError("[OrphanRepo] ошибка чтения из Redis", err)
	}

	orphans := make([]model.Orphan, 0, len(values))
	for _, value := range values {
		var orphan model.Orphan
		if err := json.Unmarshal([]byte(value), &orphan); err != nil {
			slog.Warn("[OrphanRepo] пропущена повреждённая запись", "error", err)
			continue
		}
		orphans = append(orphans, orphan)
	}
	return orphans, nil
}
