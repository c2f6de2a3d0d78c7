package repository

import (
	"context"
	"file-storage-server/config"
	"file-storage-server/internal/model"
	"file-storage-server/internal/util"
	"fmt"
)

type UserRepository struct {
	*config.Database
}

func NewUserRepository(database *config.Database) *UserRepository {
	return &UserRepository{database}
}

// CreateUser : сохраняет нового пользователя, дубликат имени -> model.ErrConflict
func (r *UserRepository) CreateUser(ctx context.Context, user *model.User) error {
	query := `
	INSERT INTO users (username, email, password_hash, full_name, disabled, verified)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING created_at, updated_at
	`

	err := r.QueryRowxContext(ctx, query,
		user.Username,
		user.Email,
		user.PasswordHash,
		user.FullName,
		user.Disabled,
		user.Verified,
	).Scan(&user.CreatedAt, &user.UpdatedAt)

	if util.IsUniqueViolation(err) {
		return fmt.Errorf("%w: пользователь %s уже существует", model.ErrConflict, user.Username)
	}
	if err != nil {
		return storeError("[UserRepo] ошибка вставки данных в БД", err)
	}

	return nil
}

// FindByUsername : ищет пользователя по имени
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	query := `
	SELECT username, email, password_hash, full_name, disabled, verified, created_at, updated_at
	FROM users
	WHERE username = $1
	`

	var user model.User
	if err := r.GetContext(ctx, &user, query, username); err != nil {
		return nil, notFoundOrStoreError("[UserRepo] не удалось найти пользователя в БД", err)
	}
	return &user, nil
}
