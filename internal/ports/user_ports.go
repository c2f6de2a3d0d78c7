package ports

import (
	"context"
	"file-storage-server/internal/model"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) error
	FindByUsername(ctx context.Context, username string) (*model.User, error)
}

type UserService interface {
	Register(ctx context.Context, username, password, email, fullName string) (*model.User, error)
	GetCurrentUser(ctx context.Context, username string) (*model.User, error)
}

type AuthenticationService interface {
	Authenticate(ctx context.Context, username, password string) (*model.User, error)
	Login(ctx context.Context, username, password string) (*model.AccessToken, error)
}

// TokenService : выпуск и проверка bearer-токенов
type TokenService interface {
	Issue(username string) (string, error)
	Validate(ctx context.Context, token string) (string, error)
}
