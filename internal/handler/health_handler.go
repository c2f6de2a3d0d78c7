package handler

import (
	"file-storage-server/internal/model/requestresponse"
	"file-storage-server/internal/util"
	"net/http"
)

// HealthCheck godoc
// @Summary Проверка работоспособности
// @Tags Health
// @Produce json
// @Success 200 {object} requestresponse.MessageResponse
// @Router /api/healthcheck [get]
func HealthCheck(w http.ResponseWriter, _ *http.Request) {
	util.WriteJSON(w, http.StatusOK, requestresponse.MessageResponse{Message: "OK"})
}
