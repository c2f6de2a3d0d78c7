package repository

import (
	"context"
	"file-storage-server/config"
	"file-storage-server/internal/model"
	"file-storage-server/internal/util"
	"fmt"
)

type FolderRepository struct {
	*config.Database
}

func NewFolderRepository(database *config.Database) *FolderRepository {
	return &FolderRepository{database}
}

func (r *FolderRepository) Create(ctx context.Context, folder *model.Folder) error {
	query := `
	INSERT INTO folders (id, folder_id, name, owner)
	VALUES ($1, $2, $3, $4)
	RETURNING created_at
	`

	err := r.QueryRowxContext(ctx, query, folder.ID, folder.FolderID, folder.Name, folder.Owner).
		Scan(&folder.CreatedAt)
	if util.IsUniqueViolation(err) {
		return fmt.Errorf("%w: папка %s уже существует", model.ErrConflict, folder.FolderID)
	}
	if err != nil {
		return storeError("[FolderRepo] не удалось создать папку", err)
	}
	return nil
}

func (r *FolderRepository) GetByFolderID(ctx context.Context, folderID, owner string) (*model.Folder, error) {
	query := `SELECT id, folder_id, name, owner, created_at FROM folders WHERE folder_id = $1 AND owner = $2`

	var folder model.Folder
	if err := r.GetContext(ctx, &folder, query, folderID, owner); err != nil {
		return nil, notFoundOrStoreError("[FolderRepo] не удалось получить папку", err)
	}
	return &folder, nil
}

func (r *FolderRepository) ListByOwner(ctx context.Context, owner string) ([]model.Folder, error) {
	query := `SELECT id, folder_id, name, owner, created_at FROM folders WHERE owner = $1 ORDER BY created_at, id`

	folders := []model.Folder{}
	if err := r.SelectContext(ctx, &folders, query, owner); err != nil {
		return nil, storeError("[FolderRepo] не удалось получить список папок", err)
	}
	return folders, nil
}

// Delete : удаляет только строку папки, файлы удаляет FolderService
func (r *FolderRepository) Delete(ctx context.Context, folderID, owner string) error {
	result, err := r.ExecContext(ctx, `DELETE FROM folders WHERE folder_id = $1 AND owner = $2`, folderID, owner)
	if err != nil {
		return storeError("[FolderRepo] не удалось удалить папку", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return storeError("[FolderRepo] не удалось проверить удаление", err)
	}
	if affected == 0 {
		return model.ErrNotFound
	}
	return nil
}
