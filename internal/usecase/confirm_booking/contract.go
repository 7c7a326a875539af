package confirm_booking

import (
	"context"

	"github.com/m04kA/REBALL-BookingService/internal/domain"
	"github.com/m04kA/REBALL-BookingService/internal/integrations/gcal"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	SetCalendarEventID(ctx context.Context, id int64, eventID string) error
}

// CourseRepository интерфейс репозитория курсов
type CourseRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Course, error)
}

// CalendarClient интерфейс клиента внешнего календаря
type CalendarClient interface {
	CreateEventWithGracefulDegradation(ctx context.Context, ev *gcal.Event) (string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
