package list_courses

import (
	"context"

	"github.com/m04kA/REBALL-BookingService/internal/service/courses/models"
)

type CourseService interface {
	List(ctx context.Context, position *string) (*models.CourseListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
