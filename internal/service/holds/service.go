package holds

import (
	"context"
	"errors"
	"fmt"

	holdRepo "github.com/m04kA/REBALL-BookingService/internal/infra/storage/hold"
)

// Service сервис для освобождения holds на слоты
type Service struct {
	holdRepo HoldRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса holds
func NewService(holdRepo HoldRepository, logger Logger) *Service {
	return &Service{
		holdRepo: holdRepo,
		logger:   logger,
	}
}

// Release освобождает hold по токену.
// Удалить hold может только его владелец: чужие и неизвестные токены
// неразличимы и дают ErrHoldNotFound.
func (s *Service) Release(ctx context.Context, token string, userID int64) error {
	s.logger.Info("Release: releasing hold for user=%d", userID)

	if token == "" {
		return fmt.Errorf("%w: hold token is required", ErrInvalidInput)
	}

	if err := s.holdRepo.DeleteByToken(ctx, token, userID); err != nil {
		if errors.Is(err, holdRepo.ErrHoldNotFound) {
			s.logger.Warn("Release: hold not found for user=%d", userID)
			return ErrHoldNotFound
		}
		s.logger.Error("Release: repository error for user=%d: %v", userID, err)
		return fmt.Errorf("%w: Release - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Release: successfully released hold for user=%d", userID)
	return nil
}
