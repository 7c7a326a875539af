package hold

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/REBALL-BookingService/internal/domain"
	"github.com/m04kA/REBALL-BookingService/pkg/dbmetrics"
	"github.com/m04kA/REBALL-BookingService/pkg/psqlbuilder"
)

// uniqueViolation код ошибки PostgreSQL при нарушении unique constraint
const uniqueViolation = "23505"

// slot_date хранится как DATE, наружу отдаём строку YYYY-MM-DD
var holdColumns = []string{
	"id",
	"to_char(slot_date, 'YYYY-MM-DD') AS slot_date",
	"slot_time",
	"user_id",
	"hold_token",
	"expires_at",
	"created_at",
}

// Repository репозиторий временных hold'ов слотов.
// Таблица slot_holds: (slot_date, slot_time, user_id) уникальны среди
// активных hold'ов - один пользователь держит слот один раз.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория hold'ов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает hold. Вызывается только внутри сериализуемой транзакции
// вместе с проверкой вместимости слота.
func (r *Repository) Create(ctx context.Context, h *domain.SlotHold) (*domain.SlotHold, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("slot_holds").
		Columns("slot_date", "slot_time", "user_id", "hold_token", "expires_at").
		Values(h.SlotDate, h.SlotTime, h.UserID, h.HoldToken, h.ExpiresAt).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&h.ID, &createdAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return nil, ErrDuplicateHold
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	h.CreatedAt = createdAt.Time

	return h, nil
}

// GetActiveByDates получает неистёкшие hold'ы на перечисленные даты.
// Внутри транзакции строки блокируются FOR UPDATE.
func (r *Repository) GetActiveByDates(ctx context.Context, dates []string, now time.Time) ([]*domain.SlotHold, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if len(dates) == 0 {
		return []*domain.SlotHold{}, nil
	}

	selectBuilder := psqlbuilder.Select(holdColumns...).
		From("slot_holds").
		Where(squirrel.Eq{"slot_date": dates}).
		Where(squirrel.Gt{"expires_at": now}).
		OrderBy("id ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByDates - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByDates - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanHolds(rows)
}

// GetByToken получает hold по токену
func (r *Repository) GetByToken(ctx context.Context, token string) (*domain.SlotHold, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(holdColumns...).
		From("slot_holds").
		Where(squirrel.Eq{"hold_token": token}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByToken - build select query: %v", ErrBuildQuery, err)
	}

	var h domain.SlotHold
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&h.ID,
		&h.SlotDate,
		&h.SlotTime,
		&h.UserID,
		&h.HoldToken,
		&h.ExpiresAt,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrHoldNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByToken - scan hold: %v", ErrScanRow, err)
	}

	h.CreatedAt = createdAt.Time

	return &h, nil
}

// DeleteByToken удаляет hold по токену с проверкой владельца.
// Используется и для release, и для конвертации hold'а в бронирование.
func (r *Repository) DeleteByToken(ctx context.Context, token string, userID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("slot_holds").
		Where(squirrel.Eq{"hold_token": token, "user_id": userID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteByToken - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteByToken - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteByToken - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrHoldNotFound
	}

	return nil
}

// DeleteExpired удаляет истёкшие hold'ы и возвращает их количество.
// Вызывается фоновой чисткой; истёкшие hold'ы и так нигде не считаются,
// так что чистка может запаздывать без последствий.
func (r *Repository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("slot_holds").
		Where(squirrel.LtOrEq{"expires_at": now}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: DeleteExpired - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteExpired - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteExpired - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

// scanHolds сканирует результаты запроса в слайс hold'ов
func (r *Repository) scanHolds(rows *sql.Rows) ([]*domain.SlotHold, error) {
	holds := make([]*domain.SlotHold, 0)

	for rows.Next() {
		var h domain.SlotHold
		var createdAt sql.NullTime

		err := rows.Scan(
			&h.ID,
			&h.SlotDate,
			&h.SlotTime,
			&h.UserID,
			&h.HoldToken,
			&h.ExpiresAt,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanHolds - scan row: %v", ErrScanRow, err)
		}

		h.CreatedAt = createdAt.Time

		holds = append(holds, &h)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanHolds - rows error: %v", ErrScanRow, err)
	}

	return holds, nil
}
