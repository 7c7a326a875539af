package hold_slot

import "errors"

var (
	// ErrInvalidDate возвращается при некорректной дате слота
	// (прошлое, выходной день или неверный формат)
	ErrInvalidDate = errors.New("hold_slot: invalid slot date")

	// ErrInvalidSlotTime возвращается, когда время не входит в сетку слотов
	ErrInvalidSlotTime = errors.New("hold_slot: invalid slot time")

	// ErrSlotNotAvailable возвращается, когда слот заполнен
	ErrSlotNotAvailable = errors.New("hold_slot: slot is not available")

	// ErrHoldAlreadyExists возвращается, когда у пользователя уже есть
	// активный hold на этот слот
	ErrHoldAlreadyExists = errors.New("hold_slot: active hold already exists for this slot")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("hold_slot: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("hold_slot: internal error")
)
