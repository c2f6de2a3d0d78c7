package handler

import (
	"errors"
	"file-storage-server/internal/model"
	"file-storage-server/internal/security"
	"file-storage-server/internal/util"
	"log/slog"
	"net/http"
)

// handleServiceError : переводит ошибки сервисов в HTTP-статус. Детали хранилищ клиенту не отдаются
func handleServiceError(w http.ResponseWriter, err error, notFoundMessage string) {
	switch {
	case errors.Is(err, model.ErrValidation):
		util.HandleError(w, "некорректный запрос", http.StatusBadRequest)
	case errors.Is(err, model.ErrInactiveUser):
		util.HandleError(w, "неактивный пользователь", http.StatusBadRequest)
	case errors.Is(err, model.ErrAuth):
		util.HandleError(w, "не удалось авторизовать пользователя", http.StatusUnauthorized)
	case errors.Is(err, model.ErrConflict):
		util.HandleError(w, "запись уже существует", http.StatusConflict)
	case errors.Is(err, model.ErrNotFound):
		util.HandleError(w, notFoundMessage, http.StatusNotFound)
	default:
		slog.Error("ошибка обработки запроса", "error", err)
		util.HandleError(w, "внутренняя ошибка сервера", http.StatusInternalServerError)
	}
}

// principal : имя пользователя из контекста, выставленное security middleware
func principal(w http.ResponseWriter, r *http.Request) (string, bool) {
	username, ok := security.PrincipalFromContext(r.Context())
	if !ok {
		util.HandleError(w, "пользователь не авторизован", http.StatusUnauthorized)
		return "", false
	}
	return username, true
}
