package bookings

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/REBALL-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/REBALL-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/REBALL-BookingService/internal/integrations/gcal"
	"github.com/m04kA/REBALL-BookingService/internal/service/bookings/models"
	"github.com/m04kA/REBALL-BookingService/pkg/ptr"
)

type stubBookingRepo struct {
	booking   *domain.Booking
	list      []*domain.Booking
	getErr    error
	listErr   error
	cancelErr error
	statusErr error

	cancelledID     int64
	cancelReason    string
	updatedStatus   domain.BookingStatus
	gotListStatus   *domain.BookingStatus
	statusUpdatedID int64
}

func (s *stubBookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	return s.booking, s.getErr
}

func (s *stubBookingRepo) GetByUserID(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	s.gotListStatus = status
	return s.list, s.listErr
}

func (s *stubBookingRepo) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	s.statusUpdatedID = id
	s.updatedStatus = status
	return s.statusErr
}

func (s *stubBookingRepo) Cancel(ctx context.Context, id int64, reason string) error {
	s.cancelledID = id
	s.cancelReason = reason
	return s.cancelErr
}

type stubCalendar struct {
	err     error
	deleted string
}

func (s *stubCalendar) DeleteEvent(ctx context.Context, eventID string) error {
	s.deleted = eventID
	return s.err
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func confirmedBooking() *domain.Booking {
	return &domain.Booking{
		ID:              42,
		UserID:          10,
		CourseID:        7,
		TrainingType:    domain.TrainingGroup,
		Status:          domain.StatusConfirmed,
		CourseName:      "Winger Masterclass",
		CalendarEventID: ptr.Ptr("ev-123"),
		Availability: domain.AvailabilityMap{
			"2025-07-14": {{Time: "11:00"}},
		},
	}
}

func TestGetByID_Success(t *testing.T) {
	br := &stubBookingRepo{booking: confirmedBooking()}
	svc := NewService(br, nil, nopLogger{})

	resp, err := svc.GetByID(context.Background(), 42, 10)
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, []models.SlotChoiceResponse{{Time: "11:00"}}, resp.Slots["2025-07-14"])
}

func TestGetByID_AccessDenied(t *testing.T) {
	br := &stubBookingRepo{booking: confirmedBooking()}
	svc := NewService(br, nil, nopLogger{})

	_, err := svc.GetByID(context.Background(), 42, 99)
	require.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByID_NotFound(t *testing.T) {
	br := &stubBookingRepo{getErr: bookingRepo.ErrBookingNotFound}
	svc := NewService(br, nil, nopLogger{})

	_, err := svc.GetByID(context.Background(), 42, 10)
	require.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetUserBookings_StatusFilter(t *testing.T) {
	br := &stubBookingRepo{list: []*domain.Booking{confirmedBooking()}}
	svc := NewService(br, nil, nopLogger{})

	resp, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
		UserID: 10,
		Status: ptr.Ptr("confirmed"),
	})
	require.NoError(t, err)

	assert.Len(t, resp.Bookings, 1)
	require.NotNil(t, br.gotListStatus)
	assert.Equal(t, domain.StatusConfirmed, *br.gotListStatus)
}

func TestGetUserBookings_InvalidStatus(t *testing.T) {
	svc := NewService(&stubBookingRepo{}, nil, nopLogger{})

	_, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
		UserID: 10,
		Status: ptr.Ptr("archived"),
	})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestCancel_Success_DeletesCalendarEvent(t *testing.T) {
	br := &stubBookingRepo{booking: confirmedBooking()}
	cal := &stubCalendar{}
	svc := NewService(br, cal, nopLogger{})

	err := svc.Cancel(context.Background(), 42, &models.CancelBookingRequest{
		UserID:             10,
		CancellationReason: "injury",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(42), br.cancelledID)
	assert.Equal(t, "injury", br.cancelReason)
	assert.Equal(t, "ev-123", cal.deleted)
}

func TestCancel_CalendarFailureDoesNotBlock(t *testing.T) {
	br := &stubBookingRepo{booking: confirmedBooking()}
	cal := &stubCalendar{err: gcal.ErrInternal}
	svc := NewService(br, cal, nopLogger{})

	err := svc.Cancel(context.Background(), 42, &models.CancelBookingRequest{UserID: 10})
	require.NoError(t, err, "calendar errors are best effort on cancel")
	assert.Equal(t, int64(42), br.cancelledID)
}

func TestCancel_PendingWithoutEvent(t *testing.T) {
	b := confirmedBooking()
	b.Status = domain.StatusPending
	b.CalendarEventID = nil

	br := &stubBookingRepo{booking: b}
	cal := &stubCalendar{}
	svc := NewService(br, cal, nopLogger{})

	err := svc.Cancel(context.Background(), 42, &models.CancelBookingRequest{UserID: 10})
	require.NoError(t, err)
	assert.Empty(t, cal.deleted)
}

func TestCancel_CompletedRejected(t *testing.T) {
	b := confirmedBooking()
	b.Status = domain.StatusCompleted

	svc := NewService(&stubBookingRepo{booking: b}, nil, nopLogger{})

	err := svc.Cancel(context.Background(), 42, &models.CancelBookingRequest{UserID: 10})
	require.ErrorIs(t, err, ErrCannotCancel)
}

func TestCancel_AccessDenied(t *testing.T) {
	svc := NewService(&stubBookingRepo{booking: confirmedBooking()}, nil, nopLogger{})

	err := svc.Cancel(context.Background(), 42, &models.CancelBookingRequest{UserID: 99})
	require.ErrorIs(t, err, ErrAccessDenied)
}

func TestCancel_ReasonTooLong(t *testing.T) {
	svc := NewService(&stubBookingRepo{booking: confirmedBooking()}, nil, nopLogger{})

	err := svc.Cancel(context.Background(), 42, &models.CancelBookingRequest{
		UserID:             10,
		CancellationReason: strings.Repeat("x", domain.MaxCancellationReasonLength+1),
	})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestComplete_Success(t *testing.T) {
	br := &stubBookingRepo{booking: confirmedBooking()}
	svc := NewService(br, nil, nopLogger{})

	err := svc.Complete(context.Background(), 42, 10)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, br.updatedStatus)
}

func TestComplete_PendingRejected(t *testing.T) {
	b := confirmedBooking()
	b.Status = domain.StatusPending

	svc := NewService(&stubBookingRepo{booking: b}, nil, nopLogger{})

	err := svc.Complete(context.Background(), 42, 10)
	require.ErrorIs(t, err, ErrCannotComplete)
}

func TestComplete_RepoFailure(t *testing.T) {
	br := &stubBookingRepo{booking: confirmedBooking(), statusErr: errors.New("connection refused")}
	svc := NewService(br, nil, nopLogger{})

	err := svc.Complete(context.Background(), 42, 10)
	require.ErrorIs(t, err, ErrInternal)
}
