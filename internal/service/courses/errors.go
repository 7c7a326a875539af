package courses

import "errors"

var (
	// ErrCourseNotFound возвращается, когда курс не найден
	ErrCourseNotFound = errors.New("course not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
