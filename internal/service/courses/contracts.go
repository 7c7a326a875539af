package courses

import (
	"context"

	"github.com/m04kA/REBALL-BookingService/internal/domain"
)

// CourseRepository интерфейс репозитория курсов
type CourseRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Course, error)
	List(ctx context.Context, position *string) ([]*domain.Course, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
