package model

import "time"

type OrphanOperation string

const (
	OrphanOnUpload   OrphanOperation = "upload"
	OrphanOnDelete   OrphanOperation = "delete"
	OrphanOnDownload OrphanOperation = "download"
)

// Orphan : половина пары объект/метаданные, оставшаяся после сбоя, для ручной сверки
type Orphan struct {
	StorageKey string          `json:"storage_key"`
	Owner      string          `json:"owner"`
	Operation  OrphanOperation `json:"operation"`
	Reason     string          `json:"reason"`
	DetectedAt time.Time       `json:"detected_at"`
}
