package sweeper

import (
	"context"
	"time"
)

// HoldRepository интерфейс репозитория hold'ов
type HoldRepository interface {
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Sweeper фоновая чистка истёкших hold'ов.
// Истёкшие hold'ы не участвуют ни в одном подсчёте, чистка нужна
// только чтобы таблица не росла.
type Sweeper struct {
	holdRepo HoldRepository
	interval time.Duration
	logger   Logger
}

// New создает новый sweeper с указанным интервалом
func New(holdRepo HoldRepository, interval time.Duration, logger Logger) *Sweeper {
	return &Sweeper{
		holdRepo: holdRepo,
		interval: interval,
		logger:   logger,
	}
}

// Run запускает цикл чистки до отмены контекста.
// Запускается в отдельной горутине из main.
func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("Sweeper: started, interval=%s", s.interval)

	for {
		select {
		case <-ticker.C:
			s.sweep(ctx)
		case <-ctx.Done():
			s.logger.Info("Sweeper: stopped")
			return
		}
	}
}

// sweep выполняет один проход чистки
func (s *Sweeper) sweep(ctx context.Context) {
	deleted, err := s.holdRepo.DeleteExpired(ctx, time.Now())
	if err != nil {
		s.logger.Error("Sweeper: failed to delete expired holds: %v", err)
		return
	}

	if deleted > 0 {
		s.logger.Info("Sweeper: removed %d expired holds", deleted)
	}
}
