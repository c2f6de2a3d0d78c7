package requestresponse

import (
	"file-storage-server/internal/model"
	"time"
)

// FileResponse : описывает файл для JSON-ответа
type FileResponse struct {
	ID          string    `json:"id" example:"b6a1e1c4-4b1d-4f1e-8b29-1234567890ab"`
	Name        string    `json:"name" example:"report.pdf"`
	Owner       string    `json:"owner" example:"alice"`
	FolderID    *string   `json:"folder_id" example:"7f2c1f0e-2d8c-4d6e-9f3a-0b1c2d3e4f50"`
	Key         string    `json:"key" example:"0c3f6d3e-5b1a-4c2e-9d7f-8a9b0c1d2e3f_report.pdf"`
	Bucket      string    `json:"bucket" example:"files"`
	SizeBytes   int64     `json:"size_bytes" example:"10240"`
	ContentType string    `json:"content_type" example:"application/pdf"`
	CreatedAt   time.Time `json:"created_at" example:"2025-08-23T12:34:56Z"`
}

func FileResponseFromModel(file *model.File) FileResponse {
	return FileResponse{
		ID:          file.ID,
		Name:        file.Name,
		Owner:       file.Owner,
		FolderID:    file.FolderID,
		Key:         file.StorageKey,
		Bucket:      file.BucketName,
		SizeBytes:   file.SizeBytes,
		ContentType: file.ContentType,
		CreatedAt:   file.CreatedAt,
	}
}

func FileResponsesFromModel(files []model.File) []FileResponse {
	response := make([]FileResponse, 0, len(files))
	for i := range files {
		response = append(response, FileResponseFromModel(&files[i]))
	}
	return response
}

// UploadFileResponse : ответ на загрузку файла
type UploadFileResponse struct {
	Message string `json:"message" example:"file report.pdf uploaded"`
	Key     string `json:"key" example:"0c3f6d3e-5b1a-4c2e-9d7f-8a9b0c1d2e3f_report.pdf"`
}

// FolderResponse : описывает папку для JSON-ответа
type FolderResponse struct {
	ID        string    `json:"id" example:"b6a1e1c4-4b1d-4f1e-8b29-1234567890ab"`
	FolderID  string    `json:"folder_id" example:"7f2c1f0e-2d8c-4d6e-9f3a-0b1c2d3e4f50"`
	Name      string    `json:"name" example:"reports"`
	Owner     string    `json:"owner" example:"alice"`
	CreatedAt time.Time `json:"created_at" example:"2025-08-23T12:34:56Z"`
}

func FolderResponsesFromModel(folders []model.Folder) []FolderResponse {
	response := make([]FolderResponse, 0, len(folders))
	for _, folder := range folders {
		response = append(response, FolderResponse{
			ID:        folder.ID,
			FolderID:  folder.FolderID,
			Name:      folder.Name,
			Owner:     folder.Owner,
			CreatedAt: folder.CreatedAt,
		})
	}
	return response
}

// CreateFolderResponse : ответ на создание папки
type CreateFolderResponse struct {
	Message  string `json:"message" example:"folder reports created"`
	FolderID string `json:"folderId" example:"7f2c1f0e-2d8c-4d6e-9f3a-0b1c2d3e4f50"`
}
