package gcal

import "errors"

var (
	// ErrEventNotFound возвращается, когда событие не найдено в календаре
	ErrEventNotFound = errors.New("gcal client: event not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("gcal client: internal error")

	// ErrServiceDegraded возвращается при применении graceful degradation.
	// Указывает, что календарь недоступен и бронирование живёт без события.
	ErrServiceDegraded = errors.New("gcal unavailable: graceful degradation applied")
)
