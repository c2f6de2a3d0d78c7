package util

import (
	"path"
	"strings"

	"github.com/google/uuid"
)

// SanitizeFilename : оставляет только базовое имя файла, без каталогов
func SanitizeFilename(filename string) string {
	name := strings.ReplaceAll(filename, "\\", "/")
	name = path.Base(name)
	name = strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, name)

	if name == "." || name == "/" || name == ".." || strings.TrimSpace(name) == "" {
		return "file"
	}
	return name
}

// NewStorageKey : генерирует ключ объекта вида {uuid}_{имя файла}
func NewStorageKey(filename string) string {
	return uuid.NewString() + "_" + SanitizeFilename(filename)
}
