package service

import (
	"context"
	"file-storage-server/internal/model"
	"file-storage-server/internal/ports"
	"file-storage-server/internal/security"
	"file-storage-server/internal/util"
	"fmt"
	"strings"
)

type UserService struct {
	userRepository ports.UserRepository
}

func NewUserService(userRepository ports.UserRepository) *UserService {
	return &UserService{
		userRepository: userRepository,
	}
}

// Register : создаёт пользователя. Имя и email приводятся к нижнему регистру,
// поэтому "Alice" и "alice" конфликтуют (model.ErrConflict)
func (s *UserService) Register(ctx context.Context, username, password, email, fullName string) (*model.User, error) {
	username = normalizeUsername(username)
	if username == "" || password == "" {
		return nil, fmt.Errorf("%w: имя пользователя и пароль обязательны", model.ErrValidation)
	}
	if len(password) > security.MaxPasswordBytes {
		return nil, fmt.Errorf("%w: пароль длиннее %d байт", model.ErrValidation, security.MaxPasswordBytes)
	}

	hash, err := security.HashPassword(password)
	if err != nil {
		return nil, util.LogError("[UserService] не удалось создать хэш пароля", err)
	}

	user := &model.User{
		Username:     username,
		Email:        strings.ToLower(strings.TrimSpace(email)),
		PasswordHash: hash,
		FullName:     strings.TrimSpace(fullName),
		Disabled:     false,
		Verified:     false,
	}

	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("[UserService] ошибка создания пользователя: %w", err)
	}

	return user, nil
}

// GetCurrentUser : профиль аутентифицированного пользователя, отключённый -> model.ErrInactiveUser
func (s *UserService) GetCurrentUser(ctx context.Context, username string) (*model.User, error) {
	user, err := s.userRepository.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("[UserService] пользователь не найден: %w", err)
	}

	if user.Disabled {
		return nil, model.ErrInactiveUser
	}

	return user, nil
}

func normalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}
