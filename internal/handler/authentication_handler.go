package handler

import (
	"errors"
	"file-storage-server/internal/model"
	"file-storage-server/internal/model/requestresponse"
	"file-storage-server/internal/ports"
	"file-storage-server/internal/util"
	"net/http"
)

type AuthenticationHandler struct {
	ports.AuthenticationService
}

func NewAuthenticationHandler(authenticationService ports.AuthenticationService) *AuthenticationHandler {
	return &AuthenticationHandler{authenticationService}
}

// Login godoc
// @Summary Аутентификация пользователя
// @Description Получение access токена по имени пользователя и паролю (OAuth2 password form)
// @Tags Authentication
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "Имя пользователя"
// @Param password formData string true "Пароль"
// @Success 200 {object} requestresponse.TokenResponse "Успешная аутентификация"
// @Failure 400 {object} requestresponse.ErrorResponse "Пустые поля или неактивный пользователь"
// @Failure 401 {object} requestresponse.ErrorResponse "Неверное имя пользователя или пароль"
// @Failure 500 {object} requestresponse.ErrorResponse "Внутренняя ошибка сервера"
// @Router /user/token [post]
func (h *AuthenticationHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		util.HandleError(w, "неверный формат запроса", http.StatusBadRequest)
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")
	if username == "" || password == "" {
		util.HandleError(w, "username и password обязательны", http.StatusBadRequest)
		return
	}

	token, err := h.AuthenticationService.Login(r.Context(), username, password)
	if err != nil {
		if errors.Is(err, model.ErrAuth) {
			w.Header().Set("WWW-Authenticate", "Bearer")
			util.HandleError(w, "неверное имя пользователя или пароль", http.StatusUnauthorized)
			return
		}
		handleServiceError(w, err, "пользователь не найден")
		return
	}

	util.WriteJSON(w, http.StatusOK, requestresponse.TokenResponse{
		AccessToken: token.AccessToken,
		TokenType:   token.TokenType,
	})
}
