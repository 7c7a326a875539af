package holds

import "errors"

var (
	// ErrHoldNotFound возвращается, когда hold не найден или принадлежит
	// другому пользователю
	ErrHoldNotFound = errors.New("hold not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
