package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/a7jazili/hall-booking-service/internal/domain"
	"github.com/a7jazili/hall-booking-service/pkg/dbmetrics"
	"github.com/a7jazili/hall-booking-service/pkg/psqlbuilder"
)

// Коды ошибок postgres
const (
	pgUniqueViolation    = "23505"
	pgExclusionViolation = "23P01"
)

// bookingColumns колонки таблицы bookings в порядке сканирования
var bookingColumns = []string{
	"id",
	"booking_id",
	"hall_id",
	"user_id",
	"customer_name",
	"customer_email",
	"customer_phone",
	"event_title",
	"event_description",
	"attendees_count",
	"start_datetime",
	"end_datetime",
	"total_price",
	"status",
	"admin_notes",
	"is_admin_block",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция, использует её.
// Вставку бронирования с проверкой доступности слота нужно выполнять
// в сериализуемой транзакции, чтобы исключить гонку check-then-act.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"booking_id",
			"hall_id",
			"user_id",
			"customer_name",
			"customer_email",
			"customer_phone",
			"event_title",
			"event_description",
			"attendees_count",
			"start_datetime",
			"end_datetime",
			"total_price",
			"status",
			"admin_notes",
			"is_admin_block",
		).
		Values(
			booking.BookingID,
			booking.HallID,
			booking.UserID,
			booking.CustomerName,
			booking.CustomerEmail,
			booking.CustomerPhone,
			booking.EventTitle,
			booking.EventDescription,
			booking.AttendeesCount,
			booking.StartDatetime,
			booking.EndDatetime,
			booking.TotalPrice,
			booking.Status,
			booking.AdminNotes,
			booking.IsAdminBlock,
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

	if err != nil {
		if isPgError(err, pgExclusionViolation) {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по внутреннему ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

// GetByBookingID получает бронирование по внешнему UUID
func (r *Repository) GetByBookingID(ctx context.Context, bookingID uuid.UUID) (*domain.Booking, error) {
	return r.getOne(ctx, squirrel.Eq{"booking_id": bookingID})
}

func (r *Repository) getOne(ctx context.Context, where squirrel.Eq) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(where).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: getOne - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: getOne - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// GetOverlapping получает бронирования зала, пересекающиеся с интервалом [start, end)
// Слот удерживают только статусы pending и approved.
// Пересечение полуинтервалов: existing.start < end AND existing.end > start,
// соприкасающиеся границы пересечением не считаются.
// excludeID позволяет игнорировать собственную строку при проверке обновления.
// Внутри транзакции добавляет FOR UPDATE для блокировки строк до вставки.
func (r *Repository) GetOverlapping(ctx context.Context, hallID int64, start, end time.Time, excludeID *int64) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	blocking := make([]string, len(domain.BlockingStatuses))
	for i, s := range domain.BlockingStatuses {
		blocking[i] = string(s)
	}

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"hall_id": hallID}).
		Where(squirrel.Eq{"status": blocking}).
		Where(squirrel.Lt{"start_datetime": end}).
		Where(squirrel.Gt{"end_datetime": start}).
		OrderBy("start_datetime ASC")

	if excludeID != nil {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"id": *excludeID})
	}

	// В сериализуемой транзакции создания блокируем найденные строки
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetOverlapping - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// GetByUserID получает историю бронирований пользователя
// Опционально фильтрует по статусу
func (r *Repository) GetByUserID(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("start_datetime DESC")

	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// GetByHallWithFilter получает бронирования зала с гибкой фильтрацией
// Поддерживает фильтрацию по периоду, статусу и включению неактивных бронирований
func (r *Repository) GetByHallWithFilter(ctx context.Context, filter domain.HallBookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"hall_id": filter.HallID})

	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"start_datetime": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.Lt{"start_datetime": *filter.EndDate})
	}

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeInactive {
		inactive := make([]string, len(domain.InactiveStatuses))
		for i, s := range domain.InactiveStatuses {
			inactive[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": inactive})
	}

	selectBuilder = selectBuilder.OrderBy("start_datetime ASC")

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByHallWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByHallWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// UpdateStatus условно обновляет статус бронирования: строка меняется только если
// текущий статус равен from (оптимистическая защита от двойного перевода)
// Возвращает ErrStatusConflict, если строка не была затронута
func (r *Repository) UpdateStatus(ctx context.Context, id int64, from, to domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", to).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "status": from}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrStatusConflict
	}

	return nil
}

// SetAdminNotes обновляет административные заметки бронирования
func (r *Repository) SetAdminNotes(ctx context.Context, id int64, notes string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("admin_notes", notes).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetAdminNotes - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SetAdminNotes - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SetAdminNotes - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// AddService добавляет позицию услуги к бронированию (снимок цены на момент заказа)
func (r *Repository) AddService(ctx context.Context, item *domain.BookingService) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("booking_services").
		Columns("booking_id", "service_id", "quantity", "price", "notes").
		Values(item.BookingID, item.ServiceID, item.Quantity, item.Price, item.Notes).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: AddService - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&item.ID, &createdAt)
	if err != nil {
		if isPgError(err, pgUniqueViolation) {
			return ErrDuplicateLineItem
		}
		return fmt.Errorf("%w: AddService - execute insert: %v", ErrExecQuery, err)
	}

	item.CreatedAt = createdAt.Time
	return nil
}

// AddMeal добавляет позицию блюда к бронированию
// Итоговая цена позиции всегда пересчитывается как quantity * price_per_person
func (r *Repository) AddMeal(ctx context.Context, item *domain.BookingMeal) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	item.RecalcTotal()

	query, args, err := psqlbuilder.Insert("booking_meals").
		Columns("booking_id", "meal_id", "quantity", "price_per_person", "total_price", "serving_time", "notes").
		Values(item.BookingID, item.MealID, item.Quantity, item.PricePerPerson, item.TotalPrice, item.ServingTime, item.Notes).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: AddMeal - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&item.ID, &createdAt, &updatedAt)
	if err != nil {
		if isPgError(err, pgUniqueViolation) {
			return ErrDuplicateLineItem
		}
		return fmt.Errorf("%w: AddMeal - execute insert: %v", ErrExecQuery, err)
	}

	item.CreatedAt = createdAt.Time
	item.UpdatedAt = updatedAt.Time
	return nil
}

// GetServices получает позиции услуг бронирования
func (r *Repository) GetServices(ctx context.Context, bookingID int64) ([]*domain.BookingService, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "booking_id", "service_id", "quantity", "price", "notes", "created_at").
		From("booking_services").
		Where(squirrel.Eq{"booking_id": bookingID}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetServices - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetServices - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	items := make([]*domain.BookingService, 0)
	for rows.Next() {
		var item domain.BookingService
		var createdAt sql.NullTime
		if err := rows.Scan(&item.ID, &item.BookingID, &item.ServiceID, &item.Quantity, &item.Price, &item.Notes, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: GetServices - scan row: %v", ErrScanRow, err)
		}
		item.CreatedAt = createdAt.Time
		items = append(items, &item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetServices - rows error: %v", ErrScanRow, err)
	}

	return items, nil
}

// GetMeals получает позиции блюд бронирования
func (r *Repository) GetMeals(ctx context.Context, bookingID int64) ([]*domain.BookingMeal, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "booking_id", "meal_id", "quantity", "price_per_person", "total_price", "serving_time", "notes", "created_at", "updated_at").
		From("booking_meals").
		Where(squirrel.Eq{"booking_id": bookingID}).
		OrderBy("serving_time ASC, id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetMeals - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetMeals - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	items := make([]*domain.BookingMeal, 0)
	for rows.Next() {
		var item domain.BookingMeal
		var createdAt, updatedAt sql.NullTime
		if err := rows.Scan(&item.ID, &item.BookingID, &item.MealID, &item.Quantity, &item.PricePerPerson, &item.TotalPrice, &item.ServingTime, &item.Notes, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("%w: GetMeals - scan row: %v", ErrScanRow, err)
		}
		item.CreatedAt = createdAt.Time
		item.UpdatedAt = updatedAt.Time
		items = append(items, &item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetMeals - rows error: %v", ErrScanRow, err)
	}

	return items, nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanBooking сканирует одну строку бронирования
func scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.BookingID,
		&booking.HallID,
		&booking.UserID,
		&booking.CustomerName,
		&booking.CustomerEmail,
		&booking.CustomerPhone,
		&booking.EventTitle,
		&booking.EventDescription,
		&booking.AttendeesCount,
		&booking.StartDatetime,
		&booking.EndDatetime,
		&booking.TotalPrice,
		&booking.Status,
		&booking.AdminNotes,
		&booking.IsAdminBlock,
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

// scanBookings сканирует результаты запроса в слайс бронирований
func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// isPgError проверяет код ошибки postgres
func isPgError(err error, code string) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == code
	}
	return false
}
