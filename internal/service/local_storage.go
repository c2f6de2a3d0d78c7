package service

import (
	"context"
	"errors"
	"file-storage-server/internal/model"
	"file-storage-server/internal/util"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// LocalStorage : хранение объектов на диске, все операции ограничены каталогом os.Root
type LocalStorage struct {
	root   *os.Root
	bucket string
	tmpDir string
}

// NewLocalStorage : объекты бакета лежат в path/bucket
func NewLocalStorage(path, bucket, tmpDir string) (*LocalStorage, error) {
	path = filepath.Join(path, bucket)
	if err := os.MkdirAll(path, 0o755); err != nil {
		return nil, util.LogError("[LocalStorage] не удалось создать каталог", err)
	}

	root, err := os.OpenRoot(path)
	if err != nil {
		return nil, util.LogError("[LocalStorage] не удалось открыть каталог", err)
	}

	return &LocalStorage{
		root:   root,
		bucket: bucket,
		tmpDir: tmpDir,
	}, nil
}

func (s *LocalStorage) Bucket() string {
	return s.bucket
}

func (s *LocalStorage) Close() error {
	return s.root.Close()
}

// PutObject : атомарная запись через временный файл и rename
func (s *LocalStorage) PutObject(ctx context.Context, key string, body io.Reader, _ int64, _ string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	tmpName := ".t" + uuid.NewString()
	tmp, err := s.root.Create(tmpName)
	if err != nil {
		return util.LogError("[LocalStorage] не удалось создать временный файл", fmt.Errorf("%w: %w", model.ErrStore, err))
	}

	success := false
	defer func() {
		if closeErr := tmp.Close(); closeErr != nil && !errors.Is(closeErr, os.ErrClosed) {
			slog.Warn("не удалось закрыть временный файл", "error", closeErr)
		}
		if !success {
			if rmErr := s.root.Remove(tmpName); rmErr != nil {
				slog.Warn("не удалось удалить временный файл", "error", rmErr)
			}
		}
	}()

	if _, err := io.Copy(tmp, &ctxReader{ctx: ctx, r: body}); err != nil {
		return util.LogError("[LocalStorage] не удалось записать объект", fmt.Errorf("%w: %w", model.ErrStore, err))
	}
	if err := tmp.Sync(); err != nil {
		return util.LogError("[LocalStorage] не удалось записать объект", fmt.Errorf("%w: %w", model.ErrStore, err))
	}
	if err := s.root.Rename(tmpName, key); err != nil {
		return util.LogError("[LocalStorage] не удалось переименовать объект", fmt.Errorf("%w: %w", model.ErrStore, err))
	}

	success = true
	return nil
}

func (s *LocalStorage) GetObject(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	f, err := s.root.Open(key)
	if errors.Is(err, os.ErrNotExist) {
		return "", model.ErrNotFound
	}
	if err != nil {
		return "", util.LogError("[LocalStorage] не удалось открыть объект", fmt.Errorf("%w: %w", model.ErrStore, err))
	}
	defer f.Close()

	path, err := writeTempFile(s.tmpDir, f)
	if err != nil {
		return "", util.LogError("[LocalStorage] не удалось сохранить объект во временный файл", fmt.Errorf("%w: %w", model.ErrStore, err))
	}
	return path, nil
}

// DeleteObject : отсутствующий объект считается удалённым, как в S3
func (s *LocalStorage) DeleteObject(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := s.root.Remove(key)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return util.LogError("[LocalStorage] не удалось удалить объект", fmt.Errorf("%w: %w", model.ErrStore, err))
	}
	return nil
}

type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (r *ctxReader) Read(p []byte) (int, error) {
	if err := r.ctx.Err(); err != nil {
		return 0, err
	}
	return r.r.Read(p)
}
