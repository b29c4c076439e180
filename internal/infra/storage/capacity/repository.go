package capacity

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/maineblanc/camping-booking/internal/domain"
	"github.com/maineblanc/camping-booking/pkg/dbmetrics"
	"github.com/maineblanc/camping-booking/pkg/psqlbuilder"
)

// DBExecutor интерфейс для выполнения запросов
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий лимитов мест по категориям
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория лимитов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByCategory получает лимит мест категории
// Внутри транзакции строка блокируется FOR UPDATE: параллельные бронирования
// одной категории выстраиваются в очередь на этой блокировке
func (r *Repository) GetByCategory(ctx context.Context, category domain.Category) (*domain.CapacityLimit, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("id", "category", "max_places", "updated_at").
		From("capacity_limits").
		Where(squirrel.Eq{"category": category})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCategory - build select query: %v", ErrBuildQuery, err)
	}

	var limit domain.CapacityLimit
	var updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&limit.ID,
		&limit.Category,
		&limit.MaxPlaces,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCapacityNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCategory - scan capacity: %w", ErrScanRow, err)
	}

	limit.UpdatedAt = updatedAt.Time

	return &limit, nil
}

// GetAll получает лимиты всех категорий
func (r *Repository) GetAll(ctx context.Context) ([]*domain.CapacityLimit, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "category", "max_places", "updated_at").
		From("capacity_limits").
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	limits := make([]*domain.CapacityLimit, 0)
	for rows.Next() {
		var limit domain.CapacityLimit
		var updatedAt sql.NullTime

		if err := rows.Scan(&limit.ID, &limit.Category, &limit.MaxPlaces, &updatedAt); err != nil {
			return nil, fmt.Errorf("%w: GetAll - scan row: %w", ErrScanRow, err)
		}

		limit.UpdatedAt = updatedAt.Time
		limits = append(limits, &limit)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetAll - rows error: %w", ErrScanRow, err)
	}

	return limits, nil
}
