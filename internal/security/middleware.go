package security

import (
	"context"
	"errors"
	"file-storage-server/internal/model"
	"file-storage-server/internal/ports"
	"file-storage-server/internal/util"
	"log/slog"
	"net/http"
	"strings"
)

type contextKey string

const (
	UserContextKey contextKey = "user"
)

// RequireAuth : запрос без валидного bearer-токена получает 401
func RequireAuth(tokens ports.TokenService) func(http.Handler) http.Handler {
	return authMiddleware(tokens, false)
}

// OptionalAuth : без заголовка Authorization запрос идёт анонимно (пустой владелец),
// невалидный токен всё равно отклоняется
func OptionalAuth(tokens ports.TokenService) func(http.Handler) http.Handler {
	return authMiddleware(tokens, true)
}

func authMiddleware(tokens ports.TokenService, optional bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			authorizationHeader := request.Header.Get("Authorization")
			if authorizationHeader == "" && optional {
				req := request.WithContext(context.WithValue(request.Context(), UserContextKey, ""))
				next.ServeHTTP(writer, req)
				return
			}

			token, ok := bearerToken(authorizationHeader)
			if !ok {
				writer.Header().Set("WWW-Authenticate", "Bearer")
				util.HandleError(writer, "пользователь не авторизован", http.StatusUnauthorized)
				return
			}

			username, err := tokens.Validate(request.Context(), token)
			switch {
			case err == nil:
			case errors.Is(err, model.ErrInactiveUser):
				util.HandleError(writer, "неактивный пользователь", http.StatusBadRequest)
				return
			case errors.Is(err, model.ErrAuth):
				slog.Debug("невалидный токен", "error", err)
				writer.Header().Set("WWW-Authenticate", "Bearer")
				util.HandleError(writer, "невалидный токен", http.StatusUnauthorized)
				return
			default:
				slog.Error("ошибка проверки токена", "error", err)
				util.HandleError(writer, "внутренняя ошибка сервера", http.StatusInternalServerError)
				return
			}

			req := request.WithContext(context.WithValue(request.Context(), UserContextKey, username))
			next.ServeHTTP(writer, req)
		})
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// PrincipalFromContext : имя пользователя, установленное middleware ("" для анонима)
func PrincipalFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(UserContextKey).(string)
	return username, ok
}
