package get_availability

import (
	"context"
	"fmt"
)

// UseCase use case для получения таблицы доступности слотов на месяц
type UseCase struct {
	bookingRepo  BookingRepository
	holdRepo     HoldRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	holdRepo HoldRepository,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		holdRepo:     holdRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Execute выполняет use case получения доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: year=%d, month=%d", req.Year, int(req.Month))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Даты месяца, на которые возможны слоты
	dates := eligibleDates(req.Year, req.Month, now)

	// Весь месяц в прошлом - пустая таблица, не ошибка
	if len(dates) == 0 {
		uc.logger.Info("GetAvailability: no eligible dates for %d-%02d", req.Year, int(req.Month))
		return &Response{
			Year:  req.Year,
			Month: req.Month,
			Days:  map[string][]Slot{},
		}, nil
	}

	// 4. Получаем активные бронирования, затрагивающие эти даты
	bookings, err := uc.bookingRepo.GetActiveByDates(ctx, dates)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 5. Получаем неистёкшие hold'ы на эти даты
	holds, err := uc.holdRepo.GetActiveByDates(ctx, dates, now)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get holds: %v", err)
		return nil, fmt.Errorf("%w: failed to get holds: %v", ErrInternal, err)
	}

	// 6. Вычисляем таблицу доступности
	days := generateAvailabilityForMonth(req.Year, req.Month, now, bookings, holds)

	uc.logger.Info("GetAvailability: generated %d days for %d-%02d (%d bookings, %d holds)",
		len(days), req.Year, int(req.Month), len(bookings), len(holds))

	return &Response{
		Year:  req.Year,
		Month: req.Month,
		Days:  days,
	}, nil
}
