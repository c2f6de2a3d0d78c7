package service

import (
	"io"
	"log/slog"
	"os"
)

// writeTempFile : копирует содержимое в новый файл внутри dir и возвращает путь
func writeTempFile(dir string, content io.Reader) (string, error) {
	tmp, err := os.CreateTemp(dir, "download-*")
	if err != nil {
		return "", err
	}

	success := false
	defer func() {
		if !success {
			if rmErr := os.Remove(tmp.Name()); rmErr != nil {
				slog.Warn("не удалось удалить временный файл", "path", tmp.Name(), "error", rmErr)
			}
		}
	}()

	if _, err := io.Copy(tmp, content); err != nil {
		_ = tmp.Close()
		return "", err
	}
	if err := tmp.Close(); err != nil {
		return "", err
	}

	success = true
	return tmp.Name(), nil
}
