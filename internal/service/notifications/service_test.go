package notifications

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/a7jazili/hall-booking-service/internal/domain"
	notificationstorage "github.com/a7jazili/hall-booking-service/internal/infra/storage/notification"
)

type fakeRepo struct {
	created     []*domain.Notification
	createErr   error
	list        []*domain.Notification
	unread      int
	markReadErr error
}

func (f *fakeRepo) Create(_ context.Context, n *domain.Notification) (*domain.Notification, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	created := *n
	created.ID = int64(len(f.created) + 1)
	f.created = append(f.created, &created)
	return &created, nil
}

func (f *fakeRepo) GetByUserID(_ context.Context, _ int64, unreadOnly bool) ([]*domain.Notification, error) {
	if !unreadOnly {
		return f.list, nil
	}
	out := make([]*domain.Notification, 0, len(f.list))
	for _, n := range f.list {
		if !n.IsRead {
			out = append(out, n)
		}
	}
	return out, nil
}

func (f *fakeRepo) MarkAsRead(_ context.Context, _, _ int64) error {
	return f.markReadErr
}

func (f *fakeRepo) CountUnread(_ context.Context, _ int64) (int, error) {
	return f.unread, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func bookingFor(userID *int64) *domain.Booking {
	return &domain.Booking{
		ID:         5,
		UserID:     userID,
		EventTitle: "Юбилей",
		Status:     domain.StatusPending,
	}
}

func TestDispatch(t *testing.T) {
	userID := int64(100)

	t.Run("approved produces notification", func(t *testing.T) {
		repo := &fakeRepo{}
		svc := NewService(repo, nopLogger{})

		n := svc.Dispatch(context.Background(), bookingFor(&userID), "Зал X", domain.StatusApproved)
		require.NotNil(t, n)

		assert.Equal(t, domain.NotificationBookingApproved, n.Type)
		assert.Equal(t, userID, n.UserID)
		require.NotNil(t, n.BookingID)
		assert.Equal(t, int64(5), *n.BookingID)
		// в тексте подставлены событие и зал
		assert.Contains(t, n.Message, "Юбилей")
		assert.Contains(t, n.Message, "Зал X")
	})

	t.Run("pending has no template", func(t *testing.T) {
		repo := &fakeRepo{}
		svc := NewService(repo, nopLogger{})

		n := svc.Dispatch(context.Background(), bookingFor(&userID), "Зал X", domain.StatusPending)
		assert.Nil(t, n)
		assert.Empty(t, repo.created)
	})

	t.Run("anonymous booking skipped", func(t *testing.T) {
		repo := &fakeRepo{}
		svc := NewService(repo, nopLogger{})

		n := svc.Dispatch(context.Background(), bookingFor(nil), "Зал X", domain.StatusApproved)
		assert.Nil(t, n)
		assert.Empty(t, repo.created)
	})

	t.Run("repository error swallowed", func(t *testing.T) {
		repo := &fakeRepo{createErr: errors.New("db down")}
		svc := NewService(repo, nopLogger{})

		n := svc.Dispatch(context.Background(), bookingFor(&userID), "Зал X", domain.StatusRejected)
		assert.Nil(t, n)
	})

	t.Run("each target status has its own type", func(t *testing.T) {
		repo := &fakeRepo{}
		svc := NewService(repo, nopLogger{})

		tests := map[domain.BookingStatus]domain.NotificationType{
			domain.StatusApproved:  domain.NotificationBookingApproved,
			domain.StatusRejected:  domain.NotificationBookingRejected,
			domain.StatusCancelled: domain.NotificationBookingCancelled,
			domain.StatusCompleted: domain.NotificationBookingCompleted,
		}
		for status, wantType := range tests {
			n := svc.Dispatch(context.Background(), bookingFor(&userID), "Зал X", status)
			require.NotNil(t, n, "status %s", status)
			assert.Equal(t, wantType, n.Type)
		}
	})
}

func TestGetUserNotifications(t *testing.T) {
	repo := &fakeRepo{
		list: []*domain.Notification{
			{ID: 1, UserID: 100, Type: domain.NotificationBookingApproved, IsRead: true},
			{ID: 2, UserID: 100, Type: domain.NotificationBookingCancelled},
		},
		unread: 1,
	}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetUserNotifications(context.Background(), 100, false)
	require.NoError(t, err)
	assert.Len(t, resp.Notifications, 2)
	assert.Equal(t, 1, resp.UnreadCount)

	t.Run("unread only", func(t *testing.T) {
		resp, err := svc.GetUserNotifications(context.Background(), 100, true)
		require.NoError(t, err)
		assert.Len(t, resp.Notifications, 1)
		assert.Equal(t, int64(2), resp.Notifications[0].ID)
	})
}

func TestMarkAsRead(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		svc := NewService(&fakeRepo{}, nopLogger{})
		assert.NoError(t, svc.MarkAsRead(context.Background(), 1, 100))
	})

	t.Run("not found", func(t *testing.T) {
		svc := NewService(&fakeRepo{markReadErr: notificationstorage.ErrNotificationNotFound}, nopLogger{})
		err := svc.MarkAsRead(context.Background(), 1, 100)
		assert.ErrorIs(t, err, ErrNotificationNotFound)
	})

	t.Run("internal error", func(t *testing.T) {
		svc := NewService(&fakeRepo{markReadErr: errors.New("db down")}, nopLogger{})
		err := svc.MarkAsRead(context.Background(), 1, 100)
		assert.ErrorIs(t, err, ErrInternal)
	})
}
