package tariff

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

// Repository репозиторий тарифной сетки и доплат
// Таблицы заполняются администратором, сервис их только читает
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория тарифов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetRates получает все строки тарифов (обычные и для рабочих)
// Категория опциональна
func (r *Repository) GetRates(ctx context.Context, category *domain.Category) ([]*domain.RateRow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(
		"id",
		"category",
		"season",
		"is_worker",
		"price_1_person_with_electricity",
		"price_2_persons_with_electricity",
		"price_1_person_without_electricity",
		"price_2_persons_without_electricity",
		"worker_weekday_price",
		"worker_weekend_with_electricity",
		"worker_weekend_without_electricity",
		"created_at",
		"updated_at",
	).
		From("rates").
		OrderBy("category ASC", "is_worker ASC", "id ASC")

	if category != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"category": *category})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetRates - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetRates - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	rates := make([]*domain.RateRow, 0)
	for rows.Next() {
		var rate domain.RateRow
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&rate.ID,
			&rate.Category,
			&rate.Season,
			&rate.IsWorker,
			&rate.Price1PersonWithElectricity,
			&rate.Price2PersonsWithElectricity,
			&rate.Price1PersonWithoutElectricity,
			&rate.Price2PersonsWithoutElectricity,
			&rate.WorkerWeekdayPrice,
			&rate.WorkerWeekendWithElectricity,
			&rate.WorkerWeekendWithoutElectricity,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetRates - scan row: %w", ErrScanRow, err)
		}

		rate.CreatedAt = createdAt.Time
		rate.UpdatedAt = updatedAt.Time
		rates = append(rates, &rate)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetRates - rows error: %w", ErrScanRow, err)
	}

	return rates, nil
}

// GetSupplements получает набор доплат
// Набор один на кемпинг, берется первая запись
func (r *Repository) GetSupplements(ctx context.Context) (*domain.SupplementSet, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"extra_adult_price",
		"child_over_8_price",
		"child_under_8_price",
		"pet_price",
		"extra_vehicle_price",
		"extra_tent_price",
		"visitor_price_without_pool",
		"visitor_price_with_pool",
		"deposit",
	).
		From("supplements").
		OrderBy("id ASC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetSupplements - build select query: %v", ErrBuildQuery, err)
	}

	var set domain.SupplementSet
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&set.ID,
		&set.ExtraAdultPrice,
		&set.ChildOver8Price,
		&set.ChildUnder8Price,
		&set.PetPrice,
		&set.ExtraVehiclePrice,
		&set.ExtraTentPrice,
		&set.VisitorPriceWithoutPool,
		&set.VisitorPriceWithPool,
		&set.Deposit,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSupplementsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetSupplements - scan supplements: %w", ErrScanRow, err)
	}

	return &set, nil
}
