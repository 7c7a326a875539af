package models

import "github.com/m04kA/REBALL-BookingService/internal/domain"

// CourseResponse ответ с данными курса
type CourseResponse struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Position        string  `json:"position"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
}

// CourseListResponse ответ со списком курсов каталога
type CourseListResponse struct {
	Courses []CourseResponse `json:"courses"`
}

// FromDomainCourse конвертирует domain модель в DTO
func FromDomainCourse(c *domain.Course) *CourseResponse {
	if c == nil {
		return nil
	}
	return &CourseResponse{
		ID:              c.ID,
		Name:            c.Name,
		Position:        c.Position,
		DurationMinutes: c.DurationMinutes,
		Price:           c.Price,
	}
}

// FromDomainCourseList конвертирует список domain моделей в DTO
func FromDomainCourseList(courses []*domain.Course) *CourseListResponse {
	out := make([]CourseResponse, 0, len(courses))
	for _, c := range courses {
		out = append(out, *FromDomainCourse(c))
	}
	return &CourseListResponse{Courses: out}
}
