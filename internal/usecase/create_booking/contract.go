package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/REBALL-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetActiveByDates(ctx context.Context, dates []string) ([]*domain.Booking, error)
}

// CourseRepository интерфейс репозитория курсов
type CourseRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Course, error)
}

// HoldRepository интерфейс репозитория holds на слоты
type HoldRepository interface {
	GetActiveByDates(ctx context.Context, dates []string, now time.Time) ([]*domain.SlotHold, error)
	DeleteByToken(ctx context.Context, token string, userID int64) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
