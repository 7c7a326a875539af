package confirm_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("confirm_booking: booking not found")

	// ErrAccessDenied возвращается, когда бронирование принадлежит другому пользователю
	ErrAccessDenied = errors.New("confirm_booking: access denied")

	// ErrInvalidStatus возвращается, когда бронирование нельзя подтвердить
	// (подтверждаются только pending)
	ErrInvalidStatus = errors.New("confirm_booking: booking cannot be confirmed in its current status")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("confirm_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("confirm_booking: internal error")
)
