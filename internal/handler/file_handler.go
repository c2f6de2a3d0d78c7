package handler

import (
	"errors"
	"file-storage-server/internal/model/requestresponse"
	"file-storage-server/internal/ports"
	"file-storage-server/internal/util"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

const multipartMemory = 32 << 20

type FileHandler struct {
	ports.FileService
	maxUploadBytes int64
}

func NewFileHandler(fileService ports.FileService, maxUploadSizeMB int64) *FileHandler {
	return &FileHandler{fileService, maxUploadSizeMB << 20}
}

// SaveFile godoc
// @Summary Загрузка файла в корень
// @Description Загружает файл без папки. Без токена файл сохраняется анонимно и не попадает ни в один список.
// @Tags Files
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Файл"
// @Param Authorization header string false "Bearer токен" default(Bearer <access_token>)
// @Success 201 {object} requestresponse.UploadFileResponse "Файл загружен"
// @Failure 400 {object} requestresponse.ErrorResponse "Файл не найден в запросе или слишком большой"
// @Failure 401 {object} requestresponse.ErrorResponse "Невалидный токен"
// @Failure 500 {object} requestresponse.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/file/save [post]
func (h *FileHandler) SaveFile(w http.ResponseWriter, r *http.Request) {
	h.upload(w, r, nil)
}

// SaveFileToFolder godoc
// @Summary Загрузка файла в папку
// @Description Загружает файл в папку текущего пользователя
// @Tags Files
// @Accept multipart/form-data
// @Produce json
// @Param folderId path string true "ID папки"
// @Param file formData file true "Файл"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 201 {object} requestresponse.UploadFileResponse "Файл загружен"
// @Failure 400 {object} requestresponse.ErrorResponse "Файл не найден в запросе или слишком большой"
// @Failure 401 {object} requestresponse.ErrorResponse "Пользователь не авторизован"
// @Failure 404 {object} requestresponse.ErrorResponse "Папка не найдена"
// @Failure 500 {object} requestresponse.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/file/{folderId}/save [post]
func (h *FileHandler) SaveFileToFolder(w http.ResponseWriter, r *http.Request) {
	folderID := chi.URLParam(r, "folderId")
	h.upload(w, r, &folderID)
}

func (h *FileHandler) upload(w http.ResponseWriter, r *http.Request, folderID *string) {
	owner, ok := principal(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			util.HandleError(w, fmt.Sprintf("файл больше %d МБ", h.maxUploadBytes>>20), http.StatusBadRequest)
			return
		}
		util.HandleError(w, "неверный формат запроса", http.StatusBadRequest)
		return
	}
	defer func() {
		if err := r.MultipartForm.RemoveAll(); err != nil {
			slog.Warn("не удалось удалить временные файлы формы", "error", err)
		}
	}()

	file, header, err := r.FormFile("file")
	if err != nil {
		util.HandleError(w, "файл не найден в запросе", http.StatusBadRequest)
		return
	}
	defer file.Close()

	key, err := h.FileService.Upload(
		r.Context(),
		folderID,
		header.Filename,
		file,
		header.Size,
		header.Header.Get("Content-Type"),
		owner,
	)
	if err != nil {
		handleServiceError(w, err, "папка не найдена")
		return
	}

	util.WriteJSON(w, http.StatusCreated, requestresponse.UploadFileResponse{
		Message: fmt.Sprintf("файл %s загружен", header.Filename),
		Key:     key,
	})
}

// ListFiles godoc
// @Summary Список файлов пользователя
// @Tags Files
// @Produce json
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {array} requestresponse.FileResponse "Файлы пользователя"
// @Failure 401 {object} requestresponse.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} requestresponse.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/file/all [get]
func (h *FileHandler) ListFiles(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, nil)
}

// ListFolderFiles godoc
// @Summary Список файлов в папке
// @Tags Files
// @Produce json
// @Param folderId path string true "ID папки"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {array} requestresponse.FileResponse "Файлы папки"
// @Failure 401 {object} requestresponse.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} requestresponse.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/file/folder/{folderId}/all [get]
func (h *FileHandler) ListFolderFiles(w http.ResponseWriter, r *http.Request) {
	folderID := chi.URLParam(r, "folderId")
	h.list(w, r, &folderID)
}

func (h *FileHandler) list(w http.ResponseWriter, r *http.Request, folderID *string) {
	owner, ok := principal(w, r)
	if !ok {
		return
	}

	files, err := h.FileService.List(r.Context(), owner, folderID)
	if err != nil {
		handleServiceError(w, err, "файлы не найдены")
		return
	}

	util.WriteJSON(w, http.StatusOK, requestresponse.FileResponsesFromModel(files))
}

// DownloadFile godoc
// @Summary Скачать файл
// @Tags Files
// @Produce application/octet-stream
// @Param key path string true "Ключ файла"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {file} file "Содержимое файла"
// @Failure 401 {object} requestresponse.ErrorResponse "Пользователь не авторизован"
// @Failure 404 {object} requestresponse.ErrorResponse "Файл не найден"
// @Failure 500 {object} requestresponse.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/file/download/{key} [get]
func (h *FileHandler) DownloadFile(w http.ResponseWriter, r *http.Request) {
	owner, ok := principal(w, r)
	if !ok {
		return
	}
	key := chi.URLParam(r, "key")

	download, err := h.FileService.Download(r.Context(), key, owner)
	if err != nil {
		handleServiceError(w, err, "файл не найден")
		return
	}
	defer func() {
		if err := download.Close(); err != nil {
			slog.Warn("не удалось удалить временный файл", "key", key, "error", err)
		}
	}()

	content, err := download.Open()
	if err != nil {
		slog.Error("не удалось открыть временный файл", "key", key, "error", err)
		util.HandleError(w, "внутренняя ошибка сервера", http.StatusInternalServerError)
		return
	}
	defer content.Close()

	contentType := download.File.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": download.File.Name}))
	if info, err := content.Stat(); err == nil {
		w.Header().Set("Content-Length", strconv.FormatInt(info.Size(), 10))
	}
	w.WriteHeader(http.StatusOK)

	if _, err := io.Copy(w, content); err != nil {
		slog.Warn("не удалось отправить файл", "key", key, "error", err)
	}
}

// DeleteFile godoc
// @Summary Удалить файл
// @Tags Files
// @Produce json
// @Param key path string true "Ключ файла"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.MessageResponse "Файл удалён"
// @Failure 401 {object} requestresponse.ErrorResponse "Пользователь не авторизован"
// @Failure 404 {object} requestresponse.ErrorResponse "Файл не найден"
// @Failure 500 {object} requestresponse.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/file/delete/{key} [delete]
func (h *FileHandler) DeleteFile(w http.ResponseWriter, r *http.Request) {
	owner, ok := principal(w, r)
	if !ok {
		return
	}
	key := chi.URLParam(r, "key")

	if err := h.FileService.Delete(r.Context(), key, owner); err != nil {
		handleServiceError(w, err, "файл не найден")
		return
	}

	util.WriteJSON(w, http.StatusOK, requestresponse.MessageResponse{
		Message: fmt.Sprintf("файл %s удалён", key),
	})
}
