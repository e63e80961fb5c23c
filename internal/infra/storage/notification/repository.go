package notification

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/a7jazili/hall-booking-service/internal/domain"
	"github.com/a7jazili/hall-booking-service/pkg/dbmetrics"
	"github.com/a7jazili/hall-booking-service/pkg/psqlbuilder"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// Repository репозиторий для работы с уведомлениями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория уведомлений
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет уведомление
// Вызывается только как побочный эффект смены статуса бронирования
func (r *Repository) Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("notifications").
		Columns("user_id", "booking_id", "notification_type", "title", "message", "is_read").
		Values(n.UserID, n.BookingID, n.Type, n.Title, n.Message, n.IsRead).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&n.ID, &createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	n.CreatedAt = createdAt.Time
	return n, nil
}

// GetByUserID получает уведомления пользователя, новые первыми
// unreadOnly оставляет только непрочитанные
func (r *Repository) GetByUserID(ctx context.Context, userID int64, unreadOnly bool) ([]*domain.Notification, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("id", "user_id", "booking_id", "notification_type", "title", "message", "is_read", "created_at").
		From("notifications").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC")

	if unreadOnly {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_read": false})
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

	notifications := make([]*domain.Notification, 0)
	for rows.Next() {
		var n domain.Notification
		var createdAt sql.NullTime
		if err := rows.Scan(&n.ID, &n.UserID, &n.BookingID, &n.Type, &n.Title, &n.Message, &n.IsRead, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: GetByUserID - scan row: %v", ErrScanRow, err)
		}
		n.CreatedAt = createdAt.Time
		notifications = append(notifications, &n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - rows error: %v", ErrScanRow, err)
	}

	return notifications, nil
}

// MarkAsRead помечает уведомление пользователя прочитанным
// Фильтр по user_id не дает пометить чужое уведомление
func (r *Repository) MarkAsRead(ctx context.Context, id, userID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("notifications").
		Set("is_read", true).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkAsRead - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: MarkAsRead - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: MarkAsRead - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrNotificationNotFound
	}

	return nil
}

// CountUnread возвращает число непрочитанных уведомлений пользователя
func (r *Repository) CountUnread(ctx context.Context, userID int64) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("notifications").
		Where(squirrel.Eq{"user_id": userID, "is_read": false}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountUnread - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountUnread - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}
