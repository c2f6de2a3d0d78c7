package repository

import (
	"context"
	"file-storage-server/config"
	"file-storage-server/internal/model"
	"file-storage-server/internal/util"
	"fmt"
)

type FileRepository struct {
	*config.Database
}

func NewFileRepository(database *config.Database) *FileRepository {
	return &FileRepository{database}
}

const fileColumns = `id, name, owner, folder_id, storage_key, bucket_name, size_bytes, content_type, created_at`

// Create : сохраняет метаданные файла
func (r *FileRepository) Create(ctx context.Context, file *model.File) error {
	query := `
	INSERT INTO files (id, name, owner, folder_id, storage_key, bucket_name, size_bytes, content_type)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	RETURNING created_at
	`

	err := r.QueryRowxContext(ctx, query,
		file.ID,
		file.Name,
		file.Owner,
		file.FolderID,
		file.StorageKey,
		file.BucketName,
		file.SizeBytes,
		file.ContentType,
	).Scan(&file.CreatedAt)

	if util.IsUniqueViolation(err) {
		return fmt.Errorf("%w: ключ %s уже занят", model.ErrConflict, file.StorageKey)
	}
	if err != nil {
		return storeError("[FileRepo] не удалось сохранить файл", err)
	}
	return nil
}

// GetByKey : ищет файл по ключу и владельцу одним запросом
func (r *FileRepository) GetByKey(ctx context.Context, key, owner string) (*model.File, error) {
	query := `SELECT ` + fileColumns + ` FROM files WHERE storage_key = $1 AND owner = $2`

	var file model.File
	if err := r.GetContext(ctx, &file, query, key, owner); err != nil {
		return nil, notFoundOrStoreError("[FileRepo] не удалось получить файл", err)
	}
	return &file, nil
}

// ListByOwner : файлы владельца, при folderID != nil только из этой папки
func (r *FileRepository) ListByOwner(ctx context.Context, owner string, folderID *string) ([]model.File, error) {
	query := `SELECT ` + fileColumns + ` FROM files WHERE owner = $1`
	args := []any{owner}
	if folderID != nil {
		query += ` AND folder_id = $2`
		args = append(args, *folderID)
	}
	query += ` ORDER BY seq`

	files := []model.File{}
	if err := r.SelectContext(ctx, &files, query, args...); err != nil {
		return nil, storeError("[FileRepo] не удалось получить список файлов", err)
	}
	return files, nil
}

// DeleteByKey : удаляет запись о файле, чужой или отсутствующий -> model.ErrNotFound
func (r *FileRepository) DeleteByKey(ctx context.Context, key, owner string) error {
	result, err := r.ExecContext(ctx, `DELETE FROM files WHERE storage_key = $1 AND owner = $2`, key, owner)
	if err != nil {
		return storeError("[FileRepo] не удалось удалить файл", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return storeError("[FileRepo] не удалось проверить удаление", err)
	}
	if affected == 0 {
		return model.ErrNotFound
	}
	return nil
}
