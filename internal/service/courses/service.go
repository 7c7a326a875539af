package courses

import (
	"context"
	"errors"
	"fmt"

	courseRepo "github.com/m04kA/REBALL-BookingService/internal/infra/storage/course"
	"github.com/m04kA/REBALL-BookingService/internal/service/courses/models"
)

// Service сервис каталога курсов
type Service struct {
	courseRepo CourseRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса курсов
func NewService(courseRepo CourseRepository, logger Logger) *Service {
	return &Service{
		courseRepo: courseRepo,
		logger:     logger,
	}
}

// List возвращает каталог курсов, опционально фильтруя по позиции
func (s *Service) List(ctx context.Context, position *string) (*models.CourseListResponse, error) {
	s.logger.Info("List: fetching courses, position=%v", position)

	courses, err := s.courseRepo.List(ctx, position)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d courses", len(courses))
	return models.FromDomainCourseList(courses), nil
}

// GetByID возвращает курс по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.CourseResponse, error) {
	s.logger.Info("GetByID: fetching course id=%d", id)

	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, courseRepo.ErrCourseNotFound) {
			s.logger.Warn("GetByID: course id=%d not found", id)
			return nil, ErrCourseNotFound
		}
		s.logger.Error("GetByID: repository error for course id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainCourse(course), nil
}
