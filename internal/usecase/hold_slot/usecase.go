package hold_slot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/REBALL-BookingService/internal/domain"
	holdRepo "github.com/m04kA/REBALL-BookingService/internal/infra/storage/hold"
)

// UseCase use case для временной брони слота на время оформления заказа
type UseCase struct {
	bookingRepo  BookingRepository
	holdRepo     HoldRepository
	txManager    TransactionManager
	holdTTL      time.Duration
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	holdRepo HoldRepository,
	txManager TransactionManager,
	holdTTL time.Duration,
	logger Logger,
) *UseCase {
	if holdTTL <= 0 {
		holdTTL = domain.DefaultHoldTTLMinutes * time.Minute
	}

	return &UseCase{
		bookingRepo:  bookingRepo,
		holdRepo:     holdRepo,
		txManager:    txManager,
		holdTTL:      holdTTL,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case временной брони слота.
// Проверка вместимости и вставка выполняются в сериализуемой транзакции
// по той же схеме, что и создание бронирования.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("HoldSlot: user=%d, date=%s, time=%s", req.UserID, req.Date, req.Time)

	// 1. Получаем текущее время
	now := uc.timeProvider.Now()

	// 2. Валидация входных данных
	if err := validateRequest(req, now); err != nil {
		uc.logger.Warn("HoldSlot: validation failed: %v", err)
		return nil, err
	}

	// Переменная для хранения результата
	var result *domain.SlotHold

	// 3. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Чистим истекшие holds, чтобы просроченный hold этого же
		// пользователя не блокировал вставку по unique constraint
		if removed, err := uc.holdRepo.DeleteExpired(txCtx, now); err != nil {
			uc.logger.Error("HoldSlot: failed to delete expired holds: %v", err)
			return fmt.Errorf("%w: failed to delete expired holds: %v", ErrInternal, err)
		} else if removed > 0 {
			uc.logger.Info("HoldSlot: removed %d expired holds", removed)
		}

		// 3.2. Получаем активные бронирования на дату с блокировкой (FOR UPDATE)
		bookings, err := uc.bookingRepo.GetActiveByDates(txCtx, []string{req.Date})
		if err != nil {
			uc.logger.Error("HoldSlot: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 3.3. Получаем неистекшие holds на дату
		holds, err := uc.holdRepo.GetActiveByDates(txCtx, []string{req.Date}, now)
		if err != nil {
			uc.logger.Error("HoldSlot: failed to get holds: %v", err)
			return fmt.Errorf("%w: failed to get holds: %v", ErrInternal, err)
		}

		// 3.4. Проверяем вместимость слота
		taken := countSlotCapacity(req.Date, req.Time, bookings, holds, now, req.UserID)
		if taken >= domain.MaxSpotsPerSlot {
			uc.logger.Warn("HoldSlot: slot %s is full, %d/%d spots taken",
				domain.SlotID(req.Date, req.Time), taken, domain.MaxSpotsPerSlot)
			return fmt.Errorf("%w: %s", ErrSlotNotAvailable, domain.SlotID(req.Date, req.Time))
		}

		// 3.5. Создаем hold с уникальным токеном
		hold := &domain.SlotHold{
			SlotDate:  req.Date,
			SlotTime:  req.Time,
			UserID:    req.UserID,
			HoldToken: uuid.NewString(),
			ExpiresAt: now.Add(uc.holdTTL),
		}

		created, err := uc.holdRepo.Create(txCtx, hold)
		if err != nil {
			if errors.Is(err, holdRepo.ErrDuplicateHold) {
				uc.logger.Warn("HoldSlot: user=%d already holds slot %s",
					req.UserID, domain.SlotID(req.Date, req.Time))
				return ErrHoldAlreadyExists
			}
			uc.logger.Error("HoldSlot: failed to create hold: %v", err)
			return fmt.Errorf("%w: failed to create hold: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("HoldSlot: created hold id=%d for slot %s, expires at %s",
		result.ID, domain.SlotID(result.SlotDate, result.SlotTime), result.ExpiresAt.Format(time.RFC3339))

	return &Response{
		HoldToken: result.HoldToken,
		SlotID:    domain.SlotID(result.SlotDate, result.SlotTime),
		Date:      result.SlotDate,
		Time:      result.SlotTime,
		ExpiresAt: result.ExpiresAt,
	}, nil
}
