package model

import (
	"os"
	"time"
)

type File struct {
	ID          string    `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Owner       string    `db:"owner" json:"owner"`
	FolderID    *string   `db:"folder_id" json:"folder_id"`
	StorageKey  string    `db:"storage_key" json:"key"`
	BucketName  string    `db:"bucket_name" json:"bucket"`
	SizeBytes   int64     `db:"size_bytes" json:"size_bytes"`
	ContentType string    `db:"content_type" json:"content_type"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// DownloadedFile : метаданные и объект, выгруженный во временный файл.
// Close вызывается после отправки ответа, в том числе неудачной
type DownloadedFile struct {
	File *File
	Path string
}

func (d *DownloadedFile) Open() (*os.File, error) {
	return os.Open(d.Path)
}

func (d *DownloadedFile) Close() error {
	if d == nil || d.Path == "" {
		return nil
	}
	err := os.Remove(d.Path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
