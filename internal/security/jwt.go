package security

import (
	"context"
	"errors"
	"file-storage-server/config"
	"file-storage-server/internal/model"
	"file-storage-server/internal/util"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// UserLookup : источник пользователей для повторной проверки subject токена
type UserLookup interface {
	FindByUsername(ctx context.Context, username string) (*model.User, error)
}

// JWTService : выпуск и проверка access-токенов {sub: username, exp}.
// Токены нигде не хранятся, валидность определяется подписью и сроком
type JWTService struct {
	secretKey []byte
	method    jwt.SigningMethod
	ttl       time.Duration
	users     UserLookup
	now       func() time.Time
}

func NewJWTService(cfg *config.JWTConfig, users UserLookup) (*JWTService, error) {
	if cfg.SecretKey == "" {
		return nil, fmt.Errorf("[JWTService] не задан секрет подписи токенов")
	}

	method := jwt.GetSigningMethod(cfg.Algorithm)
	switch method {
	case jwt.SigningMethodHS256, jwt.SigningMethodHS384, jwt.SigningMethodHS512:
	default:
		return nil, fmt.Errorf("[JWTService] неподдерживаемый алгоритм подписи: %s", cfg.Algorithm)
	}

	if cfg.AccessTokenExpireMinutes <= 0 {
		return nil, fmt.Errorf("[JWTService] время жизни токена должно быть положительным")
	}

	return &JWTService{
		secretKey: []byte(cfg.SecretKey),
		method:    method,
		ttl:       time.Duration(cfg.AccessTokenExpireMinutes) * time.Minute,
		users:     users,
		now:       time.Now,
	}, nil
}

// WithClock : подменяет источник времени (для тестов истечения срока)
func (s *JWTService) WithClock(now func() time.Time) *JWTService {
	s.now = now
	return s
}

// Issue : подписывает токен для username со сроком now + TTL
func (s *JWTService) Issue(username string) (string, error) {
	now := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   username,
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token, err := jwt.NewWithClaims(s.method, claims).SignedString(s.secretKey)
	if err != nil {
		return "", util.LogError("[JWTService] ошибка подписи токена", err)
	}
	return token, nil
}

// Validate : проверяет подпись и срок, затем что subject по-прежнему активный пользователь.
// Ошибки: model.ErrInvalidToken, model.ErrUnknownSubject (для отключённого пользователя
// дополнительно model.ErrInactiveUser)
func (s *JWTService) Validate(ctx context.Context, tokenString string) (string, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{s.method.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)

	claims := &jwt.RegisteredClaims{}
	_, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return s.secretKey, nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", model.ErrInvalidToken, err)
	}
	if claims.Subject == "" {
		return "", fmt.Errorf("%w: пустой subject", model.ErrInvalidToken)
	}

	user, err := s.users.FindByUsername(ctx, claims.Subject)
	if errors.Is(err, model.ErrNotFound) {
		return "", fmt.Errorf("%w: %s", model.ErrUnknownSubject, claims.Subject)
	}
	if err != nil {
		return "", err
	}
	if user.Disabled {
		return "", fmt.Errorf("%w: %w", model.ErrUnknownSubject, model.ErrInactiveUser)
	}

	return user.Username, nil
}
