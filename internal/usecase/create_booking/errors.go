package create_booking

import "errors"

var (
	// ErrCourseNotFound возвращается, когда курс не найден
	ErrCourseNotFound = errors.New("create_booking: course not found")

	// ErrInvalidDate возвращается при некорректной дате бронирования
	// (прошлое, выходной день или неверный формат)
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrInvalidSlotTime возвращается, когда время не входит в сетку слотов
	ErrInvalidSlotTime = errors.New("create_booking: invalid slot time")

	// ErrSlotNotAvailable возвращается, когда один из выбранных слотов заполнен
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
