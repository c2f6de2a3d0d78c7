package logger

import (
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/lmittmann/tint"
	slogmulti "github.com/samber/slog-multi"
	slogsentry "github.com/samber/slog-sentry/v2"
)

// Log : глобальный логгер, выставляется Init
var Log *slog.Logger

// Init : настраивает slog по окружению.
// development: цветной tint, production: JSON.
// При заданном sentryDSN ошибки дублируются в Sentry
func Init(env, level, sentryDSN string) {
	isProd := IsProduction(env)
	lvl := ParseLevel(level, isProd)

	handlers := []slog.Handler{consoleHandler(isProd, lvl)}

	if sentryDSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:         sentryDSN,
			Environment: env,
		})
		if err != nil {
			slog.Warn("не удалось инициализировать Sentry", "error", err)
		} else {
			handlers = append(handlers, slogsentry.Option{Level: slog.LevelError}.NewSentryHandler())
		}
	}

	var handler slog.Handler
	if len(handlers) > 1 {
		handler = slogmulti.Fanout(handlers...)
	} else {
		handler = handlers[0]
	}

	Log = slog.New(handler)
	slog.SetDefault(Log)

	log.SetFlags(0)
	log.SetOutput(slog.NewLogLogger(handler, slog.LevelInfo).Writer())
}

// Flush : отправляет накопленные события в Sentry перед выходом
func Flush() {
	sentry.Flush(2 * time.Second)
}

func consoleHandler(isProd bool, level slog.Level) slog.Handler {
	if isProd {
		return slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}
	return tint.NewHandler(os.Stdout, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05.000",
	})
}

func IsProduction(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production"
}

// ParseLevel : пустой уровень означает info в production и debug в остальных окружениях
func ParseLevel(s string, isProd bool) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	case "":
		if isProd {
			return slog.LevelInfo
		}
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}
