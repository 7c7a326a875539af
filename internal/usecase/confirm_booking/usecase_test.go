package confirm_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/REBALL-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/REBALL-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/REBALL-BookingService/internal/integrations/gcal"
)

type stubBookingRepo struct {
	booking       *domain.Booking
	getErr        error
	statusErr     error
	gotStatus     domain.BookingStatus
	storedEventID string
}

func (s *stubBookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	return s.booking, s.getErr
}

func (s *stubBookingRepo) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	s.gotStatus = status
	return s.statusErr
}

func (s *stubBookingRepo) SetCalendarEventID(ctx context.Context, id int64, eventID string) error {
	s.storedEventID = eventID
	return nil
}

type stubCourseRepo struct {
	course *domain.Course
	err    error
}

func (s *stubCourseRepo) GetByID(ctx context.Context, id int64) (*domain.Course, error) {
	return s.course, s.err
}

type stubCalendar struct {
	eventID  string
	err      error
	gotEvent *gcal.Event
}

func (s *stubCalendar) CreateEventWithGracefulDegradation(ctx context.Context, ev *gcal.Event) (string, error) {
	s.gotEvent = ev
	return s.eventID, s.err
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func pendingBooking() *domain.Booking {
	return &domain.Booking{
		ID:           42,
		UserID:       10,
		CourseID:     7,
		TrainingType: domain.TrainingOneToOne,
		Status:       domain.StatusPending,
		CourseName:   "Striker Finishing",
		Availability: domain.AvailabilityMap{
			"2025-07-14": {{Time: "11:00"}},
			"2025-07-16": {{Time: "09:00"}},
		},
	}
}

func TestExecute_Success(t *testing.T) {
	br := &stubBookingRepo{booking: pendingBooking()}
	cr := &stubCourseRepo{course: &domain.Course{ID: 7, DurationMinutes: 90}}
	cal := &stubCalendar{eventID: "ev-123"}

	uc := NewUseCase(br, cr, cal, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{BookingID: 42, UserID: 10})
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Equal(t, domain.StatusConfirmed, br.gotStatus)
	require.NotNil(t, resp.CalendarEventID)
	assert.Equal(t, "ev-123", *resp.CalendarEventID)
	assert.Equal(t, "ev-123", br.storedEventID)

	// Событие создается на самый ранний слот с длительностью курса
	require.NotNil(t, cal.gotEvent)
	assert.Equal(t, time.Date(2025, time.July, 14, 11, 0, 0, 0, time.UTC), cal.gotEvent.Start)
	assert.Equal(t, time.Date(2025, time.July, 14, 12, 30, 0, 0, time.UTC), cal.gotEvent.End)
}

func TestExecute_CalendarDegradation(t *testing.T) {
	br := &stubBookingRepo{booking: pendingBooking()}
	cal := &stubCalendar{err: gcal.ErrServiceDegraded}

	uc := NewUseCase(br, &stubCourseRepo{course: &domain.Course{ID: 7, DurationMinutes: 60}}, cal, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{BookingID: 42, UserID: 10})
	require.NoError(t, err, "calendar outage must not block confirmation")

	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Nil(t, resp.CalendarEventID)
	assert.Empty(t, br.storedEventID)
}

func TestExecute_CalendarDisabled(t *testing.T) {
	br := &stubBookingRepo{booking: pendingBooking()}

	uc := NewUseCase(br, &stubCourseRepo{}, nil, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{BookingID: 42, UserID: 10})
	require.NoError(t, err)
	assert.Nil(t, resp.CalendarEventID)
}

func TestExecute_NotFound(t *testing.T) {
	br := &stubBookingRepo{getErr: bookingRepo.ErrBookingNotFound}
	uc := NewUseCase(br, &stubCourseRepo{}, nil, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{BookingID: 42, UserID: 10})
	require.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_AccessDenied(t *testing.T) {
	br := &stubBookingRepo{booking: pendingBooking()}
	uc := NewUseCase(br, &stubCourseRepo{}, nil, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{BookingID: 42, UserID: 99})
	require.ErrorIs(t, err, ErrAccessDenied)
}

func TestExecute_InvalidStatus(t *testing.T) {
	for _, status := range []domain.BookingStatus{
		domain.StatusConfirmed,
		domain.StatusCompleted,
		domain.StatusCancelled,
	} {
		t.Run(string(status), func(t *testing.T) {
			b := pendingBooking()
			b.Status = status
			br := &stubBookingRepo{booking: b}

			uc := NewUseCase(br, &stubCourseRepo{}, nil, nopLogger{})
			_, err := uc.Execute(context.Background(), &Request{BookingID: 42, UserID: 10})
			require.ErrorIs(t, err, ErrInvalidStatus)
		})
	}
}

func TestExecute_UpdateFailure(t *testing.T) {
	br := &stubBookingRepo{booking: pendingBooking(), statusErr: errors.New("connection refused")}
	uc := NewUseCase(br, &stubCourseRepo{}, nil, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{BookingID: 42, UserID: 10})
	require.ErrorIs(t, err, ErrInternal)
}
