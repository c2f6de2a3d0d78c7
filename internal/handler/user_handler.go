package handler

import (
	"encoding/json"
	"errors"
	"file-storage-server/internal/model"
	"file-storage-server/internal/model/requestresponse"
	"file-storage-server/internal/ports"
	"file-storage-server/internal/util"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
)

type UserHandler struct {
	ports.UserService
	validate *validator.Validate
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService, validator.New()}
}

// RegisterUser godoc
// @Summary Регистрация нового пользователя
// @Description Создает пользователя. Имя пользователя и email приводятся к нижнему регистру.
// @Tags Users
// @Accept json
// @Produce json
// @Param body body requestresponse.RegisterRequest true "Тело запроса"
// @Success 201 {object} requestresponse.RegisterResponse
// @Failure 400 {object} requestresponse.ErrorResponse "Некорректный JSON или поля"
// @Failure 409 {object} requestresponse.ErrorResponse "Пользователь уже существует"
// @Failure 500 {object} requestresponse.ErrorResponse "Внутренняя ошибка сервера"
// @Router /user/register [post]
func (h *UserHandler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	var req requestresponse.RegisterRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return
	}

	if err := h.validate.Struct(&req); err != nil {
		util.HandleError(w, validationMessage(err), http.StatusBadRequest)
		return
	}

	user, err := h.UserService.Register(r.Context(), req.Username, req.Password, req.Email, req.FullName)
	if err != nil {
		if errors.Is(err, model.ErrConflict) {
			util.HandleError(w, "пользователь с таким именем уже существует", http.StatusConflict)
			return
		}
		handleServiceError(w, err, "пользователь не найден")
		return
	}

	util.WriteJSON(w, http.StatusCreated, requestresponse.RegisterResponse{
		Status:  "success",
		Message: fmt.Sprintf("пользователь %s зарегистрирован", user.Username),
	})
}

// GetCurrentUser godoc
// @Summary Профиль текущего пользователя
// @Tags Users
// @Produce json
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.UserResponse
// @Failure 400 {object} requestresponse.ErrorResponse "Неактивный пользователь"
// @Failure 401 {object} requestresponse.ErrorResponse "Пользователь не авторизован"
// @Router /user/users/me [get]
func (h *UserHandler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	username, ok := principal(w, r)
	if !ok {
		return
	}

	user, err := h.UserService.GetCurrentUser(r.Context(), username)
	if errors.Is(err, model.ErrNotFound) {
		util.HandleError(w, "пользователь не авторизован", http.StatusUnauthorized)
		return
	}
	if err != nil {
		handleServiceError(w, err, "пользователь не найден")
		return
	}

	util.WriteJSON(w, http.StatusOK, requestresponse.UserResponseFromModel(user))
}

func decodeJSON(w http.ResponseWriter, r *http.Request, target interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		util.HandleError(w, "некорректный JSON", http.StatusBadRequest)
		return err
	}
	return nil
}

func validationMessage(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return "некорректный запрос"
	}

	field := validationErrors[0]
	return fmt.Sprintf("поле %s не прошло проверку %s", field.Field(), field.Tag())
}
