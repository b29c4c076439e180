package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/maineblanc/camping-booking/internal/domain"
	"github.com/maineblanc/camping-booking/pkg/dbmetrics"
	"github.com/maineblanc/camping-booking/pkg/psqlbuilder"
)

const (
	tableName = "bookings"

	uniqueViolation = "23505"
)

var bookingColumns = []string{
	"id",
	"reference",
	"user_id",
	"category",
	"subtype",
	"is_worker",
	"start_date",
	"end_date",
	"electricity",
	"adults",
	"children_over_8",
	"children_under_8",
	"pets",
	"extra_vehicles",
	"extra_tents",
	"tent_width",
	"tent_length",
	"vehicle_length",
	"cable_length",
	"season",
	"nights",
	"included_people",
	"total_price",
	"deposit",
	"remaining_balance",
	"deposit_paid",
	"status",
	"contact_last_name",
	"contact_first_name",
	"contact_email",
	"contact_phone",
	"notes",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
// Ошибки драйвера оборачиваются через %w, чтобы txmanager видел коды сериализации
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Вызывается внутри сериализуемой транзакции вместе с проверкой вместимости
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableName).
		Columns(
			"reference",
			"user_id",
			"category",
			"subtype",
			"is_worker",
			"start_date",
			"end_date",
			"electricity",
			"adults",
			"children_over_8",
			"children_under_8",
			"pets",
			"extra_vehicles",
			"extra_tents",
			"tent_width",
			"tent_length",
			"vehicle_length",
			"cable_length",
			"season",
			"nights",
			"included_people",
			"total_price",
			"deposit",
			"remaining_balance",
			"deposit_paid",
			"status",
			"contact_last_name",
			"contact_first_name",
			"contact_email",
			"contact_phone",
			"notes",
		).
		Values(
			booking.Reference,
			booking.UserID,
			booking.Category,
			booking.Subtype,
			booking.IsWorker,
			booking.StartDate,
			booking.EndDate,
			booking.Electricity,
			booking.Adults,
			booking.ChildrenOver8,
			booking.ChildrenUnder8,
			booking.Pets,
			booking.ExtraVehicles,
			booking.ExtraTents,
			booking.TentWidth,
			booking.TentLength,
			booking.VehicleLength,
			booking.CableLength,
			booking.Season,
			booking.Nights,
			booking.IncludedPeople,
			booking.TotalPrice,
			booking.Deposit,
			booking.RemainingBalance,
			booking.DepositPaid,
			booking.Status,
			booking.Contact.LastName,
			booking.Contact.FirstName,
			booking.Contact.Email,
			booking.Contact.Phone,
			booking.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return nil, fmt.Errorf("%w: Create - reference=%s", ErrDuplicateReference, booking.Reference)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
// Внутри транзакции строка блокируется (FOR UPDATE) до конца транзакции
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From(tableName).
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %w", ErrScanRow, err)
	}

	return booking, nil
}

// GetByUserID получает список бронирований пользователя
// Опционально фильтрует по статусу
func (r *Repository) GetByUserID(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From(tableName).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("start_date DESC", "id DESC")

	// Фильтрация по статусу, если указан
	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// GetByFilter получает бронирования категории, которые могут пересекаться с периодом
//
// Условие в SQL шире полуоткрытого пересечения: end_date >= OverlapStart,
// чтобы захватить бронирования с заездом и выездом в один день.
// Точный подсчет делает domain.Booking.Overlaps.
func (r *Repository) GetByFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From(tableName).
		Where(squirrel.Eq{"category": filter.Category}).
		OrderBy("start_date ASC", "id ASC")

	if filter.OverlapEnd != nil {
		selectBuilder = selectBuilder.Where(squirrel.Lt{"start_date": *filter.OverlapEnd})
	}
	if filter.OverlapStart != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"end_date": *filter.OverlapStart})
	}

	if !filter.IncludeInactive {
		inactiveStatusStrings := make([]string, len(domain.InactiveStatuses))
		for i, s := range domain.InactiveStatuses {
			inactiveStatusStrings[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": inactiveStatusStrings})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByFilter - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// UpdateDates сохраняет новые даты и пересчитанные поля цены
func (r *Repository) UpdateDates(ctx context.Context, booking *domain.Booking) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableName).
		Set("start_date", booking.StartDate).
		Set("end_date", booking.EndDate).
		Set("season", booking.Season).
		Set("nights", booking.Nights).
		Set("included_people", booking.IncludedPeople).
		Set("total_price", booking.TotalPrice).
		Set("deposit", booking.Deposit).
		Set("remaining_balance", booking.RemainingBalance).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": booking.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateDates - build update query: %v", ErrBuildQuery, err)
	}

	return r.execOne(ctx, executor, "UpdateDates", query, args)
}

// MarkDepositPaid отмечает оплату задатка и подтверждает бронирование
func (r *Repository) MarkDepositPaid(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableName).
		Set("deposit_paid", true).
		Set("status", domain.StatusConfirmed).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkDepositPaid - build update query: %v", ErrBuildQuery, err)
	}

	return r.execOne(ctx, executor, "MarkDepositPaid", query, args)
}

// Cancel отменяет бронирование, место освобождается
func (r *Repository) Cancel(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableName).
		Set("status", domain.StatusCancelled).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	return r.execOne(ctx, executor, "Cancel", query, args)
}

// execOne выполняет UPDATE и проверяет, что затронута строка
func (r *Repository) execOne(ctx context.Context, executor DBExecutor, op, query string, args []interface{}) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %w", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %w", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %w", ErrScanRow, err)
	}

	return bookings, nil
}

// scanBooking порядок полей совпадает с bookingColumns
func scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.Reference,
		&booking.UserID,
		&booking.Category,
		&booking.Subtype,
		&booking.IsWorker,
		&booking.StartDate,
		&booking.EndDate,
		&booking.Electricity,
		&booking.Adults,
		&booking.ChildrenOver8,
		&booking.ChildrenUnder8,
		&booking.Pets,
		&booking.ExtraVehicles,
		&booking.ExtraTents,
		&booking.TentWidth,
		&booking.TentLength,
		&booking.VehicleLength,
		&booking.CableLength,
		&booking.Season,
		&booking.Nights,
		&booking.IncludedPeople,
		&booking.TotalPrice,
		&booking.Deposit,
		&booking.RemainingBalance,
		&booking.DepositPaid,
		&booking.Status,
		&booking.Contact.LastName,
		&booking.Contact.FirstName,
		&booking.Contact.Email,
		&booking.Contact.Phone,
		&booking.Notes,
		&booking.CancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}
