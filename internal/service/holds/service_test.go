package holds

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	holdRepo "github.com/m04kA/REBALL-BookingService/internal/infra/storage/hold"
)

type stubHoldRepo struct {
	err      error
	gotToken string
	gotUser  int64
}

func (s *stubHoldRepo) DeleteByToken(ctx context.Context, token string, userID int64) error {
	s.gotToken = token
	s.gotUser = userID
	return s.err
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestRelease_Success(t *testing.T) {
	hr := &stubHoldRepo{}
	svc := NewService(hr, nopLogger{})

	err := svc.Release(context.Background(), "tok-1", 10)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", hr.gotToken)
	assert.Equal(t, int64(10), hr.gotUser)
}

func TestRelease_EmptyToken(t *testing.T) {
	svc := NewService(&stubHoldRepo{}, nopLogger{})

	err := svc.Release(context.Background(), "", 10)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestRelease_NotFound(t *testing.T) {
	hr := &stubHoldRepo{err: holdRepo.ErrHoldNotFound}
	svc := NewService(hr, nopLogger{})

	err := svc.Release(context.Background(), "tok-unknown", 10)
	require.ErrorIs(t, err, ErrHoldNotFound)
}

func TestRelease_RepoFailure(t *testing.T) {
	hr := &stubHoldRepo{err: errors.New("connection refused")}
	svc := NewService(hr, nopLogger{})

	err := svc.Release(context.Background(), "tok-1", 10)
	require.ErrorIs(t, err, ErrInternal)
}
