package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/REBALL-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/REBALL-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/REBALL-BookingService/internal/integrations/gcal"
	"github.com/m04kA/REBALL-BookingService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	calendar    CalendarClient
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований.
// calendar может быть nil - интеграция с календарем выключена в конфигурации.
func NewService(
	bookingRepo BookingRepository,
	calendar CalendarClient,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		calendar:    calendar,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
// Проверяет права доступа - пользователь может видеть только своё бронирование
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, userID)

	booking, err := s.getBooking(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	// Проверяем права доступа
	if booking.UserID != userID {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", userID, id)
		return nil, ErrAccessDenied
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// GetUserBookings получает историю бронирований пользователя
// Опционально фильтрует по статусу
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%d, status=%v", req.UserID, req.Status)

	// Конвертируем статус из строки в domain.BookingStatus
	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserBookings: invalid status=%s for user=%d", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByUserID(ctx, req.UserID, domainStatus)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: successfully fetched %d bookings for user=%d", len(bookings), req.UserID)
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование
// Пользователь может отменить только своё бронирование в статусе pending
// или confirmed. Для подтвержденных бронирований событие в календаре
// удаляется best effort - ошибка календаря отмену не блокирует.
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%d by user=%d", bookingID, req.UserID)

	if len(req.CancellationReason) > domain.MaxCancellationReasonLength {
		s.logger.Warn("Cancel: cancellation reason too long for booking id=%d", bookingID)
		return fmt.Errorf("%w: cancellation reason exceeds %d characters", ErrInvalidInput, domain.MaxCancellationReasonLength)
	}

	booking, err := s.getBooking(ctx, "Cancel", bookingID)
	if err != nil {
		return err
	}

	// Пользователь может отменить только своё бронирование
	if booking.UserID != req.UserID {
		s.logger.Warn("Cancel: access denied for user=%d to cancel booking id=%d", req.UserID, bookingID)
		return ErrAccessDenied
	}

	// Проверяем, можно ли отменить бронирование
	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
		return ErrCannotCancel
	}

	// Отменяем бронирование
	if err := s.bookingRepo.Cancel(ctx, bookingID, req.CancellationReason); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found during cancellation", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	// Удаляем событие из календаря, если оно было создано при подтверждении
	s.deleteCalendarEvent(ctx, booking)

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
	return nil
}

// Complete переводит подтвержденное бронирование в completed после
// проведения тренировки
func (s *Service) Complete(ctx context.Context, bookingID int64, userID int64) error {
	s.logger.Info("Complete: completing booking id=%d by user=%d", bookingID, userID)

	booking, err := s.getBooking(ctx, "Complete", bookingID)
	if err != nil {
		return err
	}

	if booking.UserID != userID {
		s.logger.Warn("Complete: access denied for user=%d to booking id=%d", userID, bookingID)
		return ErrAccessDenied
	}

	if !booking.CanBeCompleted() {
		s.logger.Warn("Complete: booking id=%d cannot be completed, status=%s", bookingID, booking.Status)
		return ErrCannotComplete
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, domain.StatusCompleted); err != nil {
		s.logger.Error("Complete: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Complete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Complete: successfully completed booking id=%d", bookingID)
	return nil
}

// Вспомогательные методы

func (s *Service) getBooking(ctx context.Context, op string, id int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%d not found", op, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return booking, nil
}

// deleteCalendarEvent удаляет событие отмененного бронирования best effort
func (s *Service) deleteCalendarEvent(ctx context.Context, booking *domain.Booking) {
	if s.calendar == nil || booking.CalendarEventID == nil {
		return
	}

	if err := s.calendar.DeleteEvent(ctx, *booking.CalendarEventID); err != nil {
		if errors.Is(err, gcal.ErrEventNotFound) {
			s.logger.Warn("Cancel: calendar event %s already gone for booking id=%d", *booking.CalendarEventID, booking.ID)
			return
		}
		s.logger.Error("Cancel: failed to delete calendar event %s for booking id=%d: %v",
			*booking.CalendarEventID, booking.ID, err)
		return
	}

	s.logger.Info("Cancel: deleted calendar event %s for booking id=%d", *booking.CalendarEventID, booking.ID)
}
