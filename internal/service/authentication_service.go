package service

import (
	"context"
	"errors"
	"file-storage-server/internal/model"
	"file-storage-server/internal/ports"
	"file-storage-server/internal/security"
	"fmt"
)

var errBadCredentials = fmt.Errorf("%w: неверное имя пользователя или пароль", model.ErrAuth)

type AuthenticationService struct {
	userRepository ports.UserRepository
	tokenService   ports.TokenService
}

func NewAuthenticationService(userRepository ports.UserRepository, tokenService ports.TokenService) *AuthenticationService {
	return &AuthenticationService{
		userRepository: userRepository,
		tokenService:   tokenService,
	}
}

// Authenticate проверяет имя пользователя и пароль.
// Для несуществующего пользователя и неверного пароля возвращается одна и та же ошибка,
// bcrypt выполняется в обоих случаях.
//
// Возвращает:
//   - model.User при успехе
//   - ошибку, оборачивающую model.ErrAuth, при неверных данных
func (s *AuthenticationService) Authenticate(ctx context.Context, username, password string) (*model.User, error) {
	user, err := s.userRepository.FindByUsername(ctx, normalizeUsername(username))
	if errors.Is(err, model.ErrNotFound) {
		security.CheckDummyPassword(password)
		return nil, errBadCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("[AuthenticationService] ошибка поиска пользователя: %w", err)
	}

	if !security.CheckPassword(password, user.PasswordHash) {
		return nil, errBadCredentials
	}

	return user, nil
}

// Login : аутентификация и выпуск access-токена
func (s *AuthenticationService) Login(ctx context.Context, username, password string) (*model.AccessToken, error) {
	user, err := s.Authenticate(ctx, username, password)
	if err != nil {
		return nil, err
	}

	if user.Disabled {
		return nil, model.ErrInactiveUser
	}

	token, err := s.tokenService.Issue(user.Username)
	if err != nil {
		return nil, fmt.Errorf("[AuthenticationService] ошибка генерации токена: %w", err)
	}

	return &model.AccessToken{
		AccessToken: token,
		TokenType:   "Bearer",
	}, nil
}
