package requestresponse

import (
	"file-storage-server/internal/model"
	"time"
)

// RegisterRequest : тело запроса регистрации
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=64" example:"alice"`
	Email    string `json:"email" validate:"omitempty,email" example:"alice@example.com"`
	Password string `json:"password" validate:"required,min=8,max=72" example:"P@ssw0rd123"`
	FullName string `json:"full_name" validate:"max=128" example:"Alice Liddell"`
}

// RegisterResponse : успешный ответ
type RegisterResponse struct {
	Status  string `json:"status" example:"success"`
	Message string `json:"message" example:"user alice registered"`
}

// TokenResponse : ответ на успешный логин
type TokenResponse struct {
	AccessToken string `json:"access_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	TokenType   string `json:"token_type" example:"Bearer"`
}

// UserResponse : профиль текущего пользователя
type UserResponse struct {
	Username  string    `json:"username" example:"alice"`
	Email     string    `json:"email" example:"alice@example.com"`
	FullName  string    `json:"full_name" example:"Alice Liddell"`
	Disabled  bool      `json:"disabled" example:"false"`
	Verified  bool      `json:"verified" example:"false"`
	CreatedAt time.Time `json:"created_at" example:"2025-08-23T12:34:56Z"`
}

func UserResponseFromModel(user *model.User) UserResponse {
	return UserResponse{
		Username:  user.Username,
		Email:     user.Email,
		FullName:  user.FullName,
		Disabled:  user.Disabled,
		Verified:  user.Verified,
		CreatedAt: user.CreatedAt,
	}
}

// ErrorResponse : стандартная структура ошибки (см. util.HandleError)
type ErrorResponse struct {
	Error   string `json:"error" example:"Not Found"`
	Message string `json:"message" example:"файл не найден"`
	Code    int    `json:"code" example:"404"`
}

// MessageResponse : общий ответ для подтверждения действий
type MessageResponse struct {
	Message string `json:"message" example:"OK"`
}
