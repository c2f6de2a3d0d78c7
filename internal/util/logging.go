package util

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
)

// LogError : пишет ошибку в лог и возвращает её обёрнутой в message
func LogError(message string, err error) error {
	slog.Error(message, "error", err)
	return fmt.Errorf("%s: %w", message, err)
}

func HandleError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	errorResponse := struct {
		Error   string `json:"error"`
		Message string `json:"message"`
		Code    int    `json:"code"`
	}{
		Error:   http.StatusText(statusCode),
		Message: message,
		Code:    statusCode,
	}

	if err := json.NewEncoder(w).Encode(errorResponse); err != nil {
		slog.Warn("не удалось записать ответ с ошибкой", "error", err)
	}
}

// WriteJSON : отдаёт payload со статусом statusCode
func WriteJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Warn("не удалось записать ответ", "error", err)
	}
}
