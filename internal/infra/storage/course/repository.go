package course

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/REBALL-BookingService/internal/domain"
	"github.com/m04kA/REBALL-BookingService/pkg/dbmetrics"
	"github.com/m04kA/REBALL-BookingService/pkg/psqlbuilder"
)

var courseColumns = []string{
	"id",
	"name",
	"position",
	"duration_minutes",
	"price",
	"created_at",
	"updated_at",
}

// Repository репозиторий каталога курсов
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория курсов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает курс по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Course, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(courseColumns...).
		From("courses").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var course domain.Course
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&course.ID,
		&course.Name,
		&course.Position,
		&course.DurationMinutes,
		&course.Price,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrCourseNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan course: %v", ErrScanRow, err)
	}

	course.CreatedAt = createdAt.Time
	course.UpdatedAt = updatedAt.Time

	return &course, nil
}

// List получает каталог курсов, опционально фильтруя по позиции
func (r *Repository) List(ctx context.Context, position *string) ([]*domain.Course, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(courseColumns...).
		From("courses").
		OrderBy("position ASC, name ASC")

	if position != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"position": *position})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	courses := make([]*domain.Course, 0)
	for rows.Next() {
		var course domain.Course
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&course.ID,
			&course.Name,
			&course.Position,
			&course.DurationMinutes,
			&course.Price,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}

		course.CreatedAt = createdAt.Time
		course.UpdatedAt = updatedAt.Time

		courses = append(courses, &course)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return courses, nil
}
