package get_availability

import (
	"context"
	"time"

	"github.com/m04kA/REBALL-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetActiveByDates получает активные бронирования, затрагивающие перечисленные даты
	GetActiveByDates(ctx context.Context, dates []string) ([]*domain.Booking, error)
}

// HoldRepository интерфейс репозитория hold'ов
type HoldRepository interface {
	// GetActiveByDates получает неистёкшие hold'ы на перечисленные даты
	GetActiveByDates(ctx context.Context, dates []string, now time.Time) ([]*domain.SlotHold, error)
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
