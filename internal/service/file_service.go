package service

import (
	"context"
	"errors"
	"file-storage-server/internal/model"
	"file-storage-server/internal/ports"
	"file-storage-server/internal/util"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

const defaultContentType = "application/octet-stream"

type FileService struct {
	fileRepository   ports.FileRepository
	folderRepository ports.FolderRepository
	storage          ports.ObjectStorage
	orphans          ports.OrphanReporter
}

func NewFileService(
	fileRepository ports.FileRepository,
	folderRepository ports.FolderRepository,
	storage ports.ObjectStorage,
	orphans ports.OrphanReporter,
) *FileService {
	return &FileService{
		fileRepository:   fileRepository,
		folderRepository: folderRepository,
		storage:          storage,
		orphans:          orphans,
	}
}

// Upload : сначала пишет объект, потом метаданные.
// Если метаданные не сохранились, объект остаётся без записи: это фиксируется в журнале
// orphan-записей и возвращается ошибка с model.ErrOrphanInconsistency
func (s *FileService) Upload(
	ctx context.Context,
	folderID *string,
	filename string,
	body io.Reader,
	size int64,
	contentType string,
	owner string,
) (string, error) {
	if folderID != nil {
		if _, err := uuid.Parse(*folderID); err != nil {
			return "", model.ErrNotFound
		}
		if _, err := s.folderRepository.GetByFolderID(ctx, *folderID, owner); err != nil {
			return "", fmt.Errorf("[FileService] папка недоступна: %w", err)
		}
	}

	name := util.SanitizeFilename(filename)
	key := util.NewStorageKey(name)
	if contentType == "" {
		contentType = defaultContentType
	}

	if err := s.storage.PutObject(ctx, key, body, size, contentType); err != nil {
		return "", asStoreError("[FileService] не удалось загрузить объект", err)
	}

	file := &model.File{
		ID:          uuid.NewString(),
		Name:        name,
		Owner:       owner,
		FolderID:    folderID,
		StorageKey:  key,
		BucketName:  s.storage.Bucket(),
		SizeBytes:   size,
		ContentType: contentType,
	}

	if err := s.fileRepository.Create(ctx, file); err != nil {
		s.reportOrphan(ctx, key, owner, model.OrphanOnUpload, err)
		return "", fmt.Errorf("%w: объект %s сохранён без метаданных: %w", model.ErrOrphanInconsistency, key, err)
	}

	return key, nil
}

// List : файлы владельца, при folderID != nil только из указанной папки
func (s *FileService) List(ctx context.Context, owner string, folderID *string) ([]model.File, error) {
	if folderID != nil {
		if _, err := uuid.Parse(*folderID); err != nil {
			return []model.File{}, nil
		}
	}

	files, err := s.fileRepository.ListByOwner(ctx, owner, folderID)
	if err != nil {
		return nil, fmt.Errorf("[FileService] не удалось получить список файлов: %w", err)
	}
	return files, nil
}

// Download : ищет запись по ключу и владельцу, затем выгружает объект во временный файл.
// Вызывающий обязан вызвать Close у результата
func (s *FileService) Download(ctx context.Context, key, owner string) (*model.DownloadedFile, error) {
	file, err := s.fileRepository.GetByKey(ctx, key, owner)
	if err != nil {
		return nil, fmt.Errorf("[FileService] файл не найден: %w", err)
	}

	path, err := s.storage.GetObject(ctx, key)
	if errors.Is(err, model.ErrNotFound) {
		s.reportOrphan(ctx, key, owner, model.OrphanOnDownload, err)
		return nil, model.ErrNotFound
	}
	if err != nil {
		return nil, asStoreError("[FileService] не удалось получить объект", err)
	}

	return &model.DownloadedFile{File: file, Path: path}, nil
}

// Delete : проверка владельца, удаление объекта, затем удаление записи.
// Ошибка удаления записи после удаления объекта фиксируется как orphan
func (s *FileService) Delete(ctx context.Context, key, owner string) error {
	if _, err := s.fileRepository.GetByKey(ctx, key, owner); err != nil {
		return fmt.Errorf("[FileService] файл не найден: %w", err)
	}

	if err := s.storage.DeleteObject(ctx, key); err != nil {
		return asStoreError("[FileService] не удалось удалить объект", err)
	}

	err := s.fileRepository.DeleteByKey(ctx, key, owner)
	if errors.Is(err, model.ErrNotFound) {
		// запись уже удалена параллельным запросом
		return nil
	}
	if err != nil {
		s.reportOrphan(ctx, key, owner, model.OrphanOnDelete, err)
		return fmt.Errorf("%w: объект %s удалён, запись осталась: %w", model.ErrOrphanInconsistency, key, err)
	}

	return nil
}

func (s *FileService) reportOrphan(ctx context.Context, key, owner string, operation model.OrphanOperation, cause error) {
	orphan := model.Orphan{
		StorageKey: key,
		Owner:      owner,
		Operation:  operation,
		Reason:     cause.Error(),
		DetectedAt: time.Now().UTC(),
	}

	if err := s.orphans.Report(context.WithoutCancel(ctx), orphan); err != nil {
		slog.Error("[FileService] не удалось записать orphan в журнал",
			"key", key,
			"owner", owner,
			"op", operation,
			"error", err,
		)
	}
}

func asStoreError(message string, err error) error {
	if errors.Is(err, model.ErrStore) {
		return fmt.Errorf("%s: %w", message, err)
	}
	return util.LogError(message, fmt.Errorf("%w: %w", model.ErrStore, err))
}
