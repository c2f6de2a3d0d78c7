package ports

import (
	"context"
	"file-storage-server/internal/model"
	"io"
)

// FileRepository : SQL слой. Каждый запрос фильтруется по владельцу
type FileRepository interface {
	Create(ctx context.Context, file *model.File) error
	GetByKey(ctx context.Context, key, owner string) (*model.File, error)
	ListByOwner(ctx context.Context, owner string, folderID *string) ([]model.File, error)
	DeleteByKey(ctx context.Context, key, owner string) error
}

type FolderRepository interface {
	Create(ctx context.Context, folder *model.Folder) error
	GetByFolderID(ctx context.Context, folderID, owner string) (*model.Folder, error)
	ListByOwner(ctx context.Context, owner string) ([]model.Folder, error)
	Delete(ctx context.Context, folderID, owner string) error
}

// ObjectStorage : хранилище содержимого файлов (S3 или локальный диск)
type ObjectStorage interface {
	Bucket() string
	PutObject(ctx context.Context, key string, body io.Reader, size int64, contentType string) error
	// GetObject : выгружает объект во временный файл и возвращает путь к нему
	GetObject(ctx context.Context, key string) (string, error)
	DeleteObject(ctx context.Context, key string) error
}

// OrphanReporter : журнал рассинхронизации объектов и метаданных
type OrphanReporter interface {
	Report(ctx context.Context, orphan model.Orphan) error
	List(ctx context.Context, limit int64) ([]model.Orphan, error)
}

type FileService interface {
	Upload(ctx context.Context, folderID *string, filename string, body io.Reader, size int64, contentType, owner string) (string, error)
	List(ctx context.Context, owner string, folderID *string) ([]model.File, error)
	Download(ctx context.Context, key, owner string) (*model.DownloadedFile, error)
	Delete(ctx context.Context, key, owner string) error
}

type FolderService interface {
	Create(ctx context.Context, name, owner string) (string, error)
	List(ctx context.Context, owner string) ([]model.Folder, error)
	Delete(ctx context.Context, folderID, owner string) error
}
