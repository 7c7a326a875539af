package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/REBALL-BookingService/internal/domain"
	courseRepo "github.com/m04kA/REBALL-BookingService/internal/infra/storage/course"
	holdRepo "github.com/m04kA/REBALL-BookingService/internal/infra/storage/hold"
	"github.com/m04kA/REBALL-BookingService/pkg/ptr"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	courseRepo   CourseRepository
	holdRepo     HoldRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	courseRepo CourseRepository,
	holdRepo HoldRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		courseRepo:   courseRepo,
		holdRepo:     holdRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверка вместимости и вставка выполняются в сериализуемой транзакции,
// чтобы два конкурентных запроса не заняли последнее место одного слота.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, course=%d, type=%s, days=%d",
		req.UserID, req.CourseID, req.TrainingType, len(req.Slots))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Валидация выбранных слотов (формат, будние дни, не прошлое)
	if err := validateSlots(req.Slots, now); err != nil {
		uc.logger.Warn("CreateBooking: slot validation failed: %v", err)
		return nil, err
	}

	// 4. Получаем курс для денормализации
	course, err := uc.courseRepo.GetByID(ctx, req.CourseID)
	if err != nil {
		if errors.Is(err, courseRepo.ErrCourseNotFound) {
			uc.logger.Warn("CreateBooking: course id=%d not found", req.CourseID)
			return nil, ErrCourseNotFound
		}
		uc.logger.Error("CreateBooking: failed to get course id=%d: %v", req.CourseID, err)
		return nil, fmt.Errorf("%w: failed to get course: %v", ErrInternal, err)
	}

	dates := req.Slots.Dates()

	// Переменная для хранения результата
	var result *domain.Booking

	// 5. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Получаем активные бронирования на выбранные даты с блокировкой (FOR UPDATE)
		bookings, err := uc.bookingRepo.GetActiveByDates(txCtx, dates)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 5.2. Получаем неистекшие holds на эти даты
		holds, err := uc.holdRepo.GetActiveByDates(txCtx, dates, now)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get holds: %v", err)
			return fmt.Errorf("%w: failed to get holds: %v", ErrInternal, err)
		}

		// 5.3. Проверяем вместимость каждой выбранной пары (дата, время).
		// Holds самого пользователя исключаются из подсчета.
		for _, date := range dates {
			for _, choice := range req.Slots[date] {
				taken := countSlotBookings(date, choice.Time, bookings) +
					countSlotHolds(date, choice.Time, holds, now, req.UserID)

				if taken >= domain.MaxSpotsPerSlot {
					uc.logger.Warn("CreateBooking: slot %s is full, %d/%d spots taken",
						domain.SlotID(date, choice.Time), taken, domain.MaxSpotsPerSlot)
					return fmt.Errorf("%w: %s", ErrSlotNotAvailable, domain.SlotID(date, choice.Time))
				}
			}
		}

		// 5.4. Создаем бронирование с денормализацией данных курса
		booking := &domain.Booking{
			UserID:         req.UserID,
			CourseID:       req.CourseID,
			TrainingType:   req.TrainingType,
			PackageType:    req.PackageType,
			TotalPrice:     req.TotalPrice,
			Status:         domain.StatusPending,
			Availability:   req.Slots,
			IsConsultation: req.IsConsultation,
			CourseName:     course.Name,
			CoursePosition: ptr.Ptr(course.Position),
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		// 5.5. Конвертированный hold больше не нужен, освобождаем его.
		// Отсутствие hold не ошибка: он мог истечь и быть удален sweeper'ом.
		if req.HoldToken != nil {
			if err := uc.holdRepo.DeleteByToken(txCtx, *req.HoldToken, req.UserID); err != nil {
				if !errors.Is(err, holdRepo.ErrHoldNotFound) {
					uc.logger.Error("CreateBooking: failed to release hold: %v", err)
					return fmt.Errorf("%w: failed to release hold: %v", ErrInternal, err)
				}
				uc.logger.Warn("CreateBooking: hold token not found for user=%d, likely expired", req.UserID)
			}
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d with status=%s", result.ID, result.Status)

	return toResponse(result), nil
}
