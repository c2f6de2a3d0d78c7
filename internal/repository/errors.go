package repository

import (
	"database/sql"
	"errors"
	"file-storage-server/internal/model"
	"file-storage-server/internal/util"
	"fmt"
)

// storeError : переводит ошибку драйвера в model.ErrStore, сохраняя исходную в цепочке
func storeError(message string, err error) error {
	return util.LogError(message, fmt.Errorf("%w: %w", model.ErrStore, err))
}

func notFoundOrStoreError(message string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return model.ErrNotFound
	}
	return storeError(message, err)
}
