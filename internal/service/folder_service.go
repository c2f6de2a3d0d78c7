package service

import (
	"context"
	"errors"
	"file-storage-server/internal/model"
	"file-storage-server/internal/ports"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
)

type FolderService struct {
	folderRepository ports.FolderRepository
	fileRepository   ports.FileRepository
	fileService      ports.FileService
}

func NewFolderService(
	folderRepository ports.FolderRepository,
	fileRepository ports.FileRepository,
	fileService ports.FileService,
) *FolderService {
	return &FolderService{
		folderRepository: folderRepository,
		fileRepository:   fileRepository,
		fileService:      fileService,
	}
}

// Create : создаёт папку и возвращает её folder_id
func (s *FolderService) Create(ctx context.Context, name, owner string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: имя папки обязательно", model.ErrValidation)
	}

	folder := &model.Folder{
		ID:       uuid.NewString(),
		FolderID: uuid.NewString(),
		Name:     name,
		Owner:    owner,
	}

	if err := s.folderRepository.Create(ctx, folder); err != nil {
		return "", fmt.Errorf("[FolderService] не удалось создать папку: %w", err)
	}
	return folder.FolderID, nil
}

func (s *FolderService) List(ctx context.Context, owner string) ([]model.Folder, error) {
	folders, err := s.folderRepository.ListByOwner(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("[FolderService] не удалось получить список папок: %w", err)
	}
	return folders, nil
}

// Delete : удаляет все файлы папки через FileService по одному, затем саму папку.
// Если хотя бы один файл не удалился, папка остаётся, а ошибки возвращаются вместе.
// Файлы, добавленные после получения списка, не удаляются
func (s *FolderService) Delete(ctx context.Context, folderID, owner string) error {
	if _, err := uuid.Parse(folderID); err != nil {
		return model.ErrNotFound
	}

	if _, err := s.folderRepository.GetByFolderID(ctx, folderID, owner); err != nil {
		return fmt.Errorf("[FolderService] папка не найдена: %w", err)
	}

	files, err := s.fileRepository.ListByOwner(ctx, owner, &folderID)
	if err != nil {
		return fmt.Errorf("[FolderService] не удалось получить файлы папки: %w", err)
	}

	var errs []error
	for _, file := range files {
		err := s.fileService.Delete(ctx, file.StorageKey, owner)
		if err == nil || errors.Is(err, model.ErrNotFound) {
			continue
		}
		slog.Error("[FolderService] не удалось удалить файл папки",
			"folder_id", folderID,
			"key", file.StorageKey,
			"owner", owner,
			"error", err,
		)
		errs = append(errs, fmt.Errorf("%s: %w", file.StorageKey, err))
	}
	if len(errs) > 0 {
		return fmt.Errorf("[FolderService] не удалось удалить %d из %d файлов: %w", len(errs), len(files), errors.Join(errs...))
	}

	if err := s.folderRepository.Delete(ctx, folderID, owner); err != nil {
		return fmt.Errorf("[FolderService] не удалось удалить папку: %w", err)
	}
	return nil
}
