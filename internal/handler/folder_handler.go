package handler

import (
	"file-storage-server/internal/model/requestresponse"
	"file-storage-server/internal/ports"
	"file-storage-server/internal/util"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
)

type FolderHandler struct {
	ports.FolderService
}

func NewFolderHandler(folderService ports.FolderService) *FolderHandler {
	return &FolderHandler{folderService}
}

// CreateFolder godoc
// @Summary Создать папку
// @Tags Folders
// @Produce json
// @Param name query string true "Имя папки"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 201 {object} requestresponse.CreateFolderResponse "Папка создана"
// @Failure 400 {object} requestresponse.ErrorResponse "Пустое имя"
// @Failure 401 {object} requestresponse.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} requestresponse.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/folder/create [post]
func (h *FolderHandler) CreateFolder(w http.ResponseWriter, r *http.Request) {
	owner, ok := principal(w, r)
	if !ok {
		return
	}
	name := r.URL.Query().Get("name")

	folderID, err := h.FolderService.Create(r.Context(), name, owner)
	if err != nil {
		handleServiceError(w, err, "папка не найдена")
		return
	}

	util.WriteJSON(w, http.StatusCreated, requestresponse.CreateFolderResponse{
		Message:  fmt.Sprintf("папка %s создана", name),
		FolderID: folderID,
	})
}

// ListFolders godoc
// @Summary Список папок пользователя
// @Tags Folders
// @Produce json
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {array} requestresponse.FolderResponse
// @Failure 401 {object} requestresponse.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} requestresponse.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/folder/all [get]
func (h *FolderHandler) ListFolders(w http.ResponseWriter, r *http.Request) {
	owner, ok := principal(w, r)
	if !ok {
		return
	}

	folders, err := h.FolderService.List(r.Context(), owner)
	if err != nil {
		handleServiceError(w, err, "папки не найдены")
		return
	}

	util.WriteJSON(w, http.StatusOK, requestresponse.FolderResponsesFromModel(folders))
}

// DeleteFolder godoc
// @Summary Удалить папку вместе с файлами
// @Description Сначала удаляются все файлы папки, затем сама папка. При ошибке удаления любого файла папка остаётся.
// @Tags Folders
// @Produce json
// @Param folderId path string true "ID папки"
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.MessageResponse "Папка удалена"
// @Failure 401 {object} requestresponse.ErrorResponse "Пользователь не авторизован"
// @Failure 404 {object} requestresponse.ErrorResponse "Папка не найдена"
// @Failure 500 {object} requestresponse.ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/folder/delete/{folderId} [delete]
func (h *FolderHandler) DeleteFolder(w http.ResponseWriter, r *http.Request) {
	owner, ok := principal(w, r)
	if !ok {
		return
	}
	folderID := chi.URLParam(r, "folderId")

	if err := h.FolderService.Delete(r.Context(), folderID, owner); err != nil {
		handleServiceError(w, err, "папка не найдена")
		return
	}

	util.WriteJSON(w, http.StatusOK, requestresponse.MessageResponse{
		Message: fmt.Sprintf("папка %s удалена", folderID),
	})
}
