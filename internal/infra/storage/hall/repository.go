package hall

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/a7jazili/hall-booking-service/internal/domain"
	"github.com/a7jazili/hall-booking-service/pkg/dbmetrics"
	"github.com/a7jazili/hall-booking-service/pkg/psqlbuilder"
)

// serviceColumns колонки таблицы hall_services в порядке сканирования
var serviceColumns = []string{
	"id", "hall_id", "name", "description", "price", "is_available", "created_at", "updated_at",
}

// mealColumns колонки таблицы hall_meals в порядке сканирования
var mealColumns = []string{
	"id", "hall_id", "name", "description", "meal_type", "price_per_person",
	"is_vegetarian", "is_available", "min_order", "created_at", "updated_at",
}

// Repository репозиторий для работы с залами и их каталогом услуг и блюд
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория залов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает зал по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Hall, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id", "name", "category_id", "governorate_id", "city_id", "address", "description",
		"capacity", "price_per_hour", "status", "features", "phone", "email",
		"latitude", "longitude", "manager_user_id", "created_at", "updated_at",
	).
		From("halls").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var hall domain.Hall
	var lat, lng decimal.NullDecimal
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&hall.ID,
		&hall.Name,
		&hall.CategoryID,
		&hall.GovernorateID,
		&hall.CityID,
		&hall.Address,
		&hall.Description,
		&hall.Capacity,
		&hall.PricePerHour,
		&hall.Status,
		pq.Array(&hall.Features),
		&hall.Phone,
		&hall.Email,
		&lat,
		&lng,
		&hall.ManagerUserID,
		&createdAt,
		&updatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrHallNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan hall: %v", ErrScanRow, err)
	}

	if lat.Valid {
		hall.Latitude = &lat.Decimal
	}
	if lng.Valid {
		hall.Longitude = &lng.Decimal
	}
	hall.CreatedAt = createdAt.Time
	hall.UpdatedAt = updatedAt.Time

	return &hall, nil
}

// GetServiceByID получает услугу каталога, проверяя принадлежность залу
func (r *Repository) GetServiceByID(ctx context.Context, hallID, serviceID int64) (*domain.HallService, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(serviceColumns...).
		From("hall_services").
		Where(squirrel.Eq{"id": serviceID, "hall_id": hallID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetServiceByID - build select query: %v", ErrBuildQuery, err)
	}

	service, err := scanService(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetServiceByID - scan service: %v", ErrScanRow, err)
	}

	return service, nil
}

// GetMealByID получает блюдо каталога, проверяя принадлежность залу
func (r *Repository) GetMealByID(ctx context.Context, hallID, mealID int64) (*domain.HallMeal, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(mealColumns...).
		From("hall_meals").
		Where(squirrel.Eq{"id": mealID, "hall_id": hallID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetMealByID - build select query: %v", ErrBuildQuery, err)
	}

	meal, err := scanMeal(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrMealNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetMealByID - scan meal: %v", ErrScanRow, err)
	}

	return meal, nil
}

// GetServicesByHall получает услуги каталога зала
// onlyAvailable оставляет только доступные для заказа
func (r *Repository) GetServicesByHall(ctx context.Context, hallID int64, onlyAvailable bool) ([]*domain.HallService, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(serviceColumns...).
		From("hall_services").
		Where(squirrel.Eq{"hall_id": hallID}).
		OrderBy("name ASC")

	if onlyAvailable {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_available": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetServicesByHall - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetServicesByHall - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]*domain.HallService, 0)
	for rows.Next() {
		service, err := scanService(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetServicesByHall - scan row: %v", ErrScanRow, err)
		}
		services = append(services, service)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetServicesByHall - rows error: %v", ErrScanRow, err)
	}

	return services, nil
}

// GetMealsByHall получает блюда каталога зала
func (r *Repository) GetMealsByHall(ctx context.Context, hallID int64, onlyAvailable bool) ([]*domain.HallMeal, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(mealColumns...).
		From("hall_meals").
		Where(squirrel.Eq{"hall_id": hallID}).
		OrderBy("meal_type ASC, name ASC")

	if onlyAvailable {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_available": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetMealsByHall - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetMealsByHall - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	meals := make([]*domain.HallMeal, 0)
	for rows.Next() {
		meal, err := scanMeal(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetMealsByHall - scan row: %v", ErrScanRow, err)
		}
		meals = append(meals, meal)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetMealsByHall - rows error: %v", ErrScanRow, err)
	}

	return meals, nil
}

// CreateService добавляет услугу в каталог зала
func (r *Repository) CreateService(ctx context.Context, service *domain.HallService) (*domain.HallService, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("hall_services").
		Columns("hall_id", "name", "description", "price", "is_available").
		Values(service.HallID, service.Name, service.Description, service.Price, service.IsAvailable).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateService - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&service.ID, &createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: CreateService - execute insert: %v", ErrExecQuery, err)
	}

	service.CreatedAt = createdAt.Time
	service.UpdatedAt = updatedAt.Time
	return service, nil
}

// UpdateService обновляет услугу каталога зала
func (r *Repository) UpdateService(ctx context.Context, service *domain.HallService) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("hall_services").
		Set("name", service.Name).
		Set("description", service.Description).
		Set("price", service.Price).
		Set("is_available", service.IsAvailable).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": service.ID, "hall_id": service.HallID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateService - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "UpdateService", ErrServiceNotFound)
}

// DeleteService удаляет услугу из каталога зала
// Исторические позиции бронирований сохраняют снимок цены и не затрагиваются
func (r *Repository) DeleteService(ctx context.Context, hallID, serviceID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("hall_services").
		Where(squirrel.Eq{"id": serviceID, "hall_id": hallID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteService - build delete query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "DeleteService", ErrServiceNotFound)
}

// CreateMeal добавляет блюдо в каталог зала
func (r *Repository) CreateMeal(ctx context.Context, meal *domain.HallMeal) (*domain.HallMeal, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("hall_meals").
		Columns("hall_id", "name", "description", "meal_type", "price_per_person", "is_vegetarian", "is_available", "min_order").
		Values(meal.HallID, meal.Name, meal.Description, meal.MealType, meal.PricePerPerson, meal.IsVegetarian, meal.IsAvailable, meal.MinOrder).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateMeal - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&meal.ID, &createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: CreateMeal - execute insert: %v", ErrExecQuery, err)
	}

	meal.CreatedAt = createdAt.Time
	meal.UpdatedAt = updatedAt.Time
	return meal, nil
}

// UpdateMeal обновляет блюдо каталога зала
func (r *Repository) UpdateMeal(ctx context.Context, meal *domain.HallMeal) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("hall_meals").
		Set("name", meal.Name).
		Set("description", meal.Description).
		Set("meal_type", meal.MealType).
		Set("price_per_person", meal.PricePerPerson).
		Set("is_vegetarian", meal.IsVegetarian).
		Set("is_available", meal.IsAvailable).
		Set("min_order", meal.MinOrder).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": meal.ID, "hall_id": meal.HallID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateMeal - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "UpdateMeal", ErrMealNotFound)
}

// DeleteMeal удаляет блюдо из каталога зала
func (r *Repository) DeleteMeal(ctx context.Context, hallID, mealID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("hall_meals").
		Where(squirrel.Eq{"id": mealID, "hall_id": hallID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: DeleteMeal - build delete query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "DeleteMeal", ErrMealNotFound)
}

// execExpectingRow выполняет запрос и возвращает notFound, если строка не была затронута
func (r *Repository) execExpectingRow(ctx context.Context, executor DBExecutor, query string, args []interface{}, method string, notFound error) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, method, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, method, err)
	}

	if rowsAffected == 0 {
		return notFound
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanService(row rowScanner) (*domain.HallService, error) {
	var service domain.HallService
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&service.ID,
		&service.HallID,
		&service.Name,
		&service.Description,
		&service.Price,
		&service.IsAvailable,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	service.CreatedAt = createdAt.Time
	service.UpdatedAt = updatedAt.Time
	return &service, nil
}

func scanMeal(row rowScanner) (*domain.HallMeal, error) {
	var meal domain.HallMeal
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&meal.ID,
		&meal.HallID,
		&meal.Name,
		&meal.Description,
		&meal.MealType,
		&meal.PricePerPerson,
		&meal.IsVegetarian,
		&meal.IsAvailable,
		&meal.MinOrder,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	meal.CreatedAt = createdAt.Time
	meal.UpdatedAt = updatedAt.Time
	return &meal, nil
}
