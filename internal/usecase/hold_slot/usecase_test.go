package hold_slot

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/REBALL-BookingService/internal/domain"
	holdRepo "github.com/m04kA/REBALL-BookingService/internal/infra/storage/hold"
)

// 1 июля 2025, вторник
var fixedNow = time.Date(2025, time.July, 1, 10, 30, 0, 0, time.UTC)

type stubBookingRepo struct {
	bookings []*domain.Booking
	err      error
}

func (s *stubBookingRepo) GetActiveByDates(ctx context.Context, dates []string) ([]*domain.Booking, error) {
	return s.bookings, s.err
}

type stubHoldRepo struct {
	holds     []*domain.SlotHold
	createErr error
	created   *domain.SlotHold
	swept     bool
}

func (s *stubHoldRepo) Create(ctx context.Context, h *domain.SlotHold) (*domain.SlotHold, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	out := *h
	out.ID = 7
	out.CreatedAt = fixedNow
	s.created = &out
	return &out, nil
}

func (s *stubHoldRepo) GetActiveByDates(ctx context.Context, dates []string, now time.Time) ([]*domain.SlotHold, error) {
	return s.holds, nil
}

func (s *stubHoldRepo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	s.swept = true
	return 0, nil
}

type passthroughTxManager struct{}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type stubTimeProvider struct{ now time.Time }

func (s stubTimeProvider) Now() time.Time { return s.now }

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestUseCase(br *stubBookingRepo, hr *stubHoldRepo) *UseCase {
	uc := NewUseCase(br, hr, passthroughTxManager{}, 15*time.Minute, nopLogger{})
	uc.timeProvider = stubTimeProvider{now: fixedNow}
	return uc
}

func validRequest() *Request {
	return &Request{UserID: 10, Date: "2025-07-14", Time: "11:00"}
}

func TestExecute_Success(t *testing.T) {
	hr := &stubHoldRepo{}
	uc := newTestUseCase(&stubBookingRepo{}, hr)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, resp.HoldToken)
	assert.Equal(t, "2025-07-14-11:00", resp.SlotID)
	assert.Equal(t, fixedNow.Add(15*time.Minute), resp.ExpiresAt)
	assert.True(t, hr.swept, "expired holds must be cleaned up before insert")
	require.NotNil(t, hr.created)
	assert.Equal(t, int64(10), hr.created.UserID)
}

func TestExecute_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		req     *Request
		wantErr error
	}{
		{name: "missing user", req: &Request{UserID: 0, Date: "2025-07-14", Time: "11:00"}, wantErr: ErrInvalidInput},
		{name: "malformed date", req: &Request{UserID: 10, Date: "14.07.2025", Time: "11:00"}, wantErr: ErrInvalidDate},
		{name: "weekend", req: &Request{UserID: 10, Date: "2025-07-12", Time: "11:00"}, wantErr: ErrInvalidDate},
		{name: "past date", req: &Request{UserID: 10, Date: "2025-06-30", Time: "11:00"}, wantErr: ErrInvalidDate},
		{name: "time outside grid", req: &Request{UserID: 10, Date: "2025-07-14", Time: "12:00"}, wantErr: ErrInvalidSlotTime},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(&stubBookingRepo{}, &stubHoldRepo{})
			_, err := uc.Execute(context.Background(), tt.req)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExecute_SlotFullByBookings(t *testing.T) {
	full := make([]*domain.Booking, 0, domain.MaxSpotsPerSlot)
	for i := 0; i < domain.MaxSpotsPerSlot; i++ {
		full = append(full, &domain.Booking{
			Status:       domain.StatusConfirmed,
			Availability: domain.AvailabilityMap{"2025-07-14": {{Time: "11:00"}}},
		})
	}

	hr := &stubHoldRepo{}
	uc := newTestUseCase(&stubBookingRepo{bookings: full}, hr)

	_, err := uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Nil(t, hr.created)
}

func TestExecute_SlotFullByMixOfBookingsAndHolds(t *testing.T) {
	bookings := []*domain.Booking{
		{Status: domain.StatusPending, Availability: domain.AvailabilityMap{"2025-07-14": {{Time: "11:00"}}}},
		{Status: domain.StatusConfirmed, Availability: domain.AvailabilityMap{"2025-07-14": {{Time: "11:00"}}}},
	}
	holds := []*domain.SlotHold{
		{SlotDate: "2025-07-14", SlotTime: "11:00", UserID: 55, ExpiresAt: fixedNow.Add(5 * time.Minute)},
		{SlotDate: "2025-07-14", SlotTime: "11:00", UserID: 56, ExpiresAt: fixedNow.Add(5 * time.Minute)},
	}

	uc := newTestUseCase(&stubBookingRepo{bookings: bookings}, &stubHoldRepo{holds: holds})

	_, err := uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_CancelledBookingsAndExpiredHoldsIgnored(t *testing.T) {
	bookings := []*domain.Booking{
		{Status: domain.StatusCancelled, Availability: domain.AvailabilityMap{"2025-07-14": {{Time: "11:00"}}}},
		{Status: domain.StatusCompleted, Availability: domain.AvailabilityMap{"2025-07-14": {{Time: "11:00"}}}},
	}
	holds := []*domain.SlotHold{
		{SlotDate: "2025-07-14", SlotTime: "11:00", UserID: 55, ExpiresAt: fixedNow.Add(-time.Minute)},
	}

	uc := newTestUseCase(&stubBookingRepo{bookings: bookings}, &stubHoldRepo{holds: holds})

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
}

func TestExecute_DuplicateHold(t *testing.T) {
	hr := &stubHoldRepo{createErr: holdRepo.ErrDuplicateHold}
	uc := newTestUseCase(&stubBookingRepo{}, hr)

	_, err := uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrHoldAlreadyExists)
}

func TestExecute_RepoFailure(t *testing.T) {
	br := &stubBookingRepo{err: errors.New("connection refused")}
	uc := newTestUseCase(br, &stubHoldRepo{})

	_, err := uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrInternal)
}
