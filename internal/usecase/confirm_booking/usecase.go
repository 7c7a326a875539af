package confirm_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/REBALL-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/REBALL-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/REBALL-BookingService/internal/integrations/gcal"
	"github.com/m04kA/REBALL-BookingService/pkg/ptr"
)

// Длительность события по умолчанию, если курс недоступен
const defaultEventDurationMinutes = 60

// UseCase use case для подтверждения бронирования (сигнал завершения оплаты)
type UseCase struct {
	bookingRepo BookingRepository
	courseRepo  CourseRepository
	calendar    CalendarClient
	logger      Logger
}

// NewUseCase создает новый экземпляр use case.
// calendar может быть nil - интеграция с календарем выключена в конфигурации.
func NewUseCase(
	bookingRepo BookingRepository,
	courseRepo CourseRepository,
	calendar CalendarClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		courseRepo:  courseRepo,
		calendar:    calendar,
		logger:      logger,
	}
}

// Execute выполняет use case подтверждения бронирования.
// Недоступность календаря не блокирует подтверждение: бронирование
// переходит в confirmed, ссылка на событие остается пустой.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ConfirmBooking: booking=%d, user=%d", req.BookingID, req.UserID)

	// 1. Валидация входных данных
	if req.BookingID <= 0 {
		return nil, fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}
	if req.UserID <= 0 {
		return nil, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	// 2. Получаем бронирование
	booking, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("ConfirmBooking: booking id=%d not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("ConfirmBooking: failed to get booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	// 3. Проверяем владельца
	if booking.UserID != req.UserID {
		uc.logger.Warn("ConfirmBooking: user=%d is not the owner of booking id=%d", req.UserID, req.BookingID)
		return nil, ErrAccessDenied
	}

	// 4. Подтверждаются только pending бронирования
	if !booking.CanBeConfirmed() {
		uc.logger.Warn("ConfirmBooking: booking id=%d has status=%s", req.BookingID, booking.Status)
		return nil, fmt.Errorf("%w: status is %s", ErrInvalidStatus, booking.Status)
	}

	// 5. Переводим в confirmed
	if err := uc.bookingRepo.UpdateStatus(ctx, req.BookingID, domain.StatusConfirmed); err != nil {
		uc.logger.Error("ConfirmBooking: failed to update status: %v", err)
		return nil, fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
	}

	// 6. Создаем событие в календаре на первый слот бронирования
	var eventID *string
	if id := uc.createCalendarEvent(ctx, booking); id != "" {
		eventID = ptr.Ptr(id)
	}

	uc.logger.Info("ConfirmBooking: booking id=%d confirmed", req.BookingID)

	return &Response{
		ID:              booking.ID,
		Status:          string(domain.StatusConfirmed),
		CalendarEventID: eventID,
		Slots:           booking.Availability,
		UpdatedAt:       booking.UpdatedAt,
	}, nil
}

// createCalendarEvent создает событие для первого слота бронирования.
// Любая ошибка здесь только логируется - подтверждение уже состоялось.
func (uc *UseCase) createCalendarEvent(ctx context.Context, booking *domain.Booking) string {
	if uc.calendar == nil {
		return ""
	}

	date, slotTime, ok := booking.Availability.FirstSlot()
	if !ok {
		uc.logger.Warn("ConfirmBooking: booking id=%d has no slots, skipping calendar event", booking.ID)
		return ""
	}

	start, err := time.ParseInLocation(
		domain.DateFormat+" "+domain.TimeFormat,
		fmt.Sprintf("%s %s", date, slotTime),
		time.UTC,
	)
	if err != nil {
		uc.logger.Error("ConfirmBooking: failed to parse slot %s: %v", domain.SlotID(date, slotTime), err)
		return ""
	}

	duration := defaultEventDurationMinutes
	course, err := uc.courseRepo.GetByID(ctx, booking.CourseID)
	if err != nil {
		uc.logger.Warn("ConfirmBooking: failed to get course id=%d, using default duration: %v", booking.CourseID, err)
	} else if course.DurationMinutes > 0 {
		duration = course.DurationMinutes
	}

	ev := &gcal.Event{
		Summary:     fmt.Sprintf("REBALL session: %s", booking.CourseName),
		Description: fmt.Sprintf("Booking #%d, %s training", booking.ID, booking.TrainingType),
		Start:       start,
		End:         start.Add(time.Duration(duration) * time.Minute),
	}

	eventID, err := uc.calendar.CreateEventWithGracefulDegradation(ctx, ev)
	if err != nil {
		uc.logger.Warn("ConfirmBooking: calendar degraded for booking id=%d: %v", booking.ID, err)
		return ""
	}

	if err := uc.bookingRepo.SetCalendarEventID(ctx, booking.ID, eventID); err != nil {
		uc.logger.Error("ConfirmBooking: failed to store calendar event id: %v", err)
		return ""
	}

	return eventID
}
