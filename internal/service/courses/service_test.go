package courses

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/REBALL-BookingService/internal/domain"
	courseRepo "github.com/m04kA/REBALL-BookingService/internal/infra/storage/course"
	"github.com/m04kA/REBALL-BookingService/pkg/ptr"
)

type stubCourseRepo struct {
	course      *domain.Course
	list        []*domain.Course
	err         error
	gotPosition *string
}

func (s *stubCourseRepo) GetByID(ctx context.Context, id int64) (*domain.Course, error) {
	return s.course, s.err
}

func (s *stubCourseRepo) List(ctx context.Context, position *string) ([]*domain.Course, error) {
	s.gotPosition = position
	return s.list, s.err
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestList_PositionFilterPassedThrough(t *testing.T) {
	cr := &stubCourseRepo{list: []*domain.Course{
		{ID: 1, Name: "Striker Finishing", Position: "striker", DurationMinutes: 60, Price: 150},
	}}
	svc := NewService(cr, nopLogger{})

	resp, err := svc.List(context.Background(), ptr.Ptr("striker"))
	require.NoError(t, err)

	assert.Len(t, resp.Courses, 1)
	assert.Equal(t, "Striker Finishing", resp.Courses[0].Name)
	require.NotNil(t, cr.gotPosition)
	assert.Equal(t, "striker", *cr.gotPosition)
}

func TestList_EmptyCatalog(t *testing.T) {
	svc := NewService(&stubCourseRepo{}, nopLogger{})

	resp, err := svc.List(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, resp.Courses)
}

func TestGetByID_Success(t *testing.T) {
	cr := &stubCourseRepo{course: &domain.Course{ID: 7, Name: "Winger Masterclass", Position: "winger"}}
	svc := NewService(cr, nopLogger{})

	resp, err := svc.GetByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "winger", resp.Position)
}

func TestGetByID_NotFound(t *testing.T) {
	cr := &stubCourseRepo{err: courseRepo.ErrCourseNotFound}
	svc := NewService(cr, nopLogger{})

	_, err := svc.GetByID(context.Background(), 7)
	require.ErrorIs(t, err, ErrCourseNotFound)
}

func TestGetByID_RepoFailure(t *testing.T) {
	cr := &stubCourseRepo{err: errors.New("connection refused")}
	svc := NewService(cr, nopLogger{})

	_, err := svc.GetByID(context.Background(), 7)
	require.ErrorIs(t, err, ErrInternal)
}
