package holds

import "context"

// HoldRepository интерфейс репозитория holds на слоты
type HoldRepository interface {
	DeleteByToken(ctx context.Context, token string, userID int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
