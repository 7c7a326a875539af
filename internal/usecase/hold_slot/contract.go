package hold_slot

import (
	"context"
	"time"

	"github.com/m04kA/REBALL-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetActiveByDates(ctx context.Context, dates []string) ([]*domain.Booking, error)
}

// HoldRepository интерфейс репозитория holds на слоты
type HoldRepository interface {
	Create(ctx context.Context, h *domain.SlotHold) (*domain.SlotHold, error)
	GetActiveByDates(ctx context.Context, dates []string, now time.Time) ([]*domain.SlotHold, error)
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
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
