package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/a7jazili/hall-booking-service/internal/domain"
	bookingstorage "github.com/a7jazili/hall-booking-service/internal/infra/storage/booking"
	hallstorage "github.com/a7jazili/hall-booking-service/internal/infra/storage/hall"
	"github.com/a7jazili/hall-booking-service/internal/service/bookings/models"
)

// Фейки зависимостей

type fakeBookingRepo struct {
	booking  *domain.Booking
	services []*domain.BookingService
	meals    []*domain.BookingMeal

	updateStatusErr  error
	updateStatusFrom domain.BookingStatus
	updateStatusTo   domain.BookingStatus
	updateStatusN    int

	adminNotes *string
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	if f.booking == nil || f.booking.ID != id {
		return nil, bookingstorage.ErrBookingNotFound
	}
	return f.booking, nil
}

func (f *fakeBookingRepo) GetByBookingID(_ context.Context, bookingID uuid.UUID) (*domain.Booking, error) {
	if f.booking == nil || f.booking.BookingID != bookingID {
		return nil, bookingstorage.ErrBookingNotFound
	}
	return f.booking, nil
}

func (f *fakeBookingRepo) GetByUserID(_ context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	if f.booking == nil || f.booking.UserID == nil || *f.booking.UserID != userID {
		return nil, nil
	}
	if status != nil && f.booking.Status != *status {
		return nil, nil
	}
	return []*domain.Booking{f.booking}, nil
}

func (f *fakeBookingRepo) GetByHallWithFilter(_ context.Context, filter domain.HallBookingsFilter) ([]*domain.Booking, error) {
	if f.booking == nil || f.booking.HallID != filter.HallID {
		return nil, nil
	}
	return []*domain.Booking{f.booking}, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, _ int64, from, to domain.BookingStatus) error {
	f.updateStatusN++
	f.updateStatusFrom = from
	f.updateStatusTo = to
	return f.updateStatusErr
}

func (f *fakeBookingRepo) SetAdminNotes(_ context.Context, _ int64, notes string) error {
	f.adminNotes = &notes
	return nil
}

func (f *fakeBookingRepo) GetServices(_ context.Context, _ int64) ([]*domain.BookingService, error) {
	return f.services, nil
}

func (f *fakeBookingRepo) GetMeals(_ context.Context, _ int64) ([]*domain.BookingMeal, error) {
	return f.meals, nil
}

type fakeHallRepo struct {
	hall *domain.Hall
}

func (f *fakeHallRepo) GetByID(_ context.Context, id int64) (*domain.Hall, error) {
	if f.hall == nil || f.hall.ID != id {
		return nil, hallstorage.ErrHallNotFound
	}
	return f.hall, nil
}

// recordingDispatcher записывает все вызовы Dispatch
type recordingDispatcher struct {
	calls []domain.BookingStatus
}

func (d *recordingDispatcher) Dispatch(_ context.Context, _ *domain.Booking, _ string, newStatus domain.BookingStatus) *domain.Notification {
	d.calls = append(d.calls, newStatus)
	return &domain.Notification{}
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// Хелперы

const (
	ownerID   = int64(100)
	managerID = int64(200)
	otherID   = int64(300)
)

func testBooking(status domain.BookingStatus) *domain.Booking {
	owner := ownerID
	return &domain.Booking{
		ID:             1,
		BookingID:      uuid.New(),
		HallID:         10,
		UserID:         &owner,
		CustomerName:   "Иван Петров",
		CustomerEmail:  "ivan@example.com",
		CustomerPhone:  "+71234567890",
		EventTitle:     "Конференция",
		AttendeesCount: 50,
		StartDatetime:  time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC),
		EndDatetime:    time.Date(2026, 9, 10, 15, 0, 0, 0, time.UTC),
		TotalPrice:     decimal.RequireFromString("300.00"),
		Status:         status,
	}
}

func testHall() *domain.Hall {
	manager := managerID
	return &domain.Hall{ID: 10, Name: "Зал X", ManagerUserID: &manager}
}

func newTestService(b *domain.Booking) (*Service, *fakeBookingRepo, *recordingDispatcher) {
	repo := &fakeBookingRepo{booking: b}
	dispatcher := &recordingDispatcher{}
	svc := NewService(repo, &fakeHallRepo{hall: testHall()}, dispatcher, nopLogger{})
	return svc, repo, dispatcher
}

// Тесты

func TestGetByBookingID(t *testing.T) {
	b := testBooking(domain.StatusPending)

	t.Run("owner with line items", func(t *testing.T) {
		svc, repo, _ := newTestService(b)
		repo.services = []*domain.BookingService{
			{ID: 1, BookingID: 1, ServiceID: 5, Quantity: 2, Price: decimal.RequireFromString("500.00")},
		}
		repo.meals = []*domain.BookingMeal{
			{ID: 1, BookingID: 1, MealID: 7, Quantity: 40, PricePerPerson: decimal.RequireFromString("25.00"),
				TotalPrice: decimal.RequireFromString("1000.00"), ServingTime: "15:00"},
		}

		resp, err := svc.GetByBookingID(context.Background(), b.BookingID, ownerID)
		require.NoError(t, err)

		assert.Equal(t, b.BookingID.String(), resp.BookingID)
		assert.Equal(t, "300.00", resp.TotalPrice)
		assert.Len(t, resp.Services, 1)
		assert.Len(t, resp.Meals, 1)
	})

	t.Run("manager has access", func(t *testing.T) {
		svc, _, _ := newTestService(b)
		_, err := svc.GetByBookingID(context.Background(), b.BookingID, managerID)
		assert.NoError(t, err)
	})

	t.Run("stranger gets access denied", func(t *testing.T) {
		svc, _, _ := newTestService(b)
		_, err := svc.GetByBookingID(context.Background(), b.BookingID, otherID)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("not found", func(t *testing.T) {
		svc, _, _ := newTestService(b)
		_, err := svc.GetByBookingID(context.Background(), uuid.New(), ownerID)
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})
}

func TestGetUserBookings(t *testing.T) {
	b := testBooking(domain.StatusApproved)
	svc, _, _ := newTestService(b)

	resp, err := svc.GetUserBookings(context.Background(), ownerID, nil)
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 1)

	t.Run("status filter", func(t *testing.T) {
		approved := "approved"
		resp, err := svc.GetUserBookings(context.Background(), ownerID, &approved)
		require.NoError(t, err)
		assert.Len(t, resp.Bookings, 1)

		pending := "pending"
		resp, err = svc.GetUserBookings(context.Background(), ownerID, &pending)
		require.NoError(t, err)
		assert.Empty(t, resp.Bookings)
	})

	t.Run("invalid status", func(t *testing.T) {
		bad := "unknown"
		_, err := svc.GetUserBookings(context.Background(), ownerID, &bad)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestGetHallBookings(t *testing.T) {
	b := testBooking(domain.StatusApproved)

	t.Run("manager gets list", func(t *testing.T) {
		svc, _, _ := newTestService(b)
		resp, err := svc.GetHallBookings(context.Background(), &models.GetHallBookingsRequest{
			HallID: 10,
			UserID: managerID,
		})
		require.NoError(t, err)
		assert.Len(t, resp.Bookings, 1)
	})

	t.Run("non-manager denied", func(t *testing.T) {
		svc, _, _ := newTestService(b)
		_, err := svc.GetHallBookings(context.Background(), &models.GetHallBookingsRequest{
			HallID: 10,
			UserID: ownerID,
		})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("hall not found", func(t *testing.T) {
		svc, _, _ := newTestService(b)
		_, err := svc.GetHallBookings(context.Background(), &models.GetHallBookingsRequest{
			HallID: 99,
			UserID: managerID,
		})
		assert.ErrorIs(t, err, ErrHallNotFound)
	})
}

func TestUpdateStatus(t *testing.T) {
	t.Run("manager approves pending", func(t *testing.T) {
		b := testBooking(domain.StatusPending)
		svc, repo, dispatcher := newTestService(b)

		resp, err := svc.UpdateStatus(context.Background(), b.BookingID, &models.UpdateStatusRequest{
			UserID: managerID,
			Status: "approved",
		})
		require.NoError(t, err)

		assert.Equal(t, "approved", resp.Status)
		assert.Equal(t, domain.StatusPending, repo.updateStatusFrom)
		assert.Equal(t, domain.StatusApproved, repo.updateStatusTo)

		// ровно одно уведомление на переход
		require.Len(t, dispatcher.calls, 1)
		assert.Equal(t, domain.StatusApproved, dispatcher.calls[0])
	})

	t.Run("rejected is terminal", func(t *testing.T) {
		b := testBooking(domain.StatusRejected)
		svc, repo, dispatcher := newTestService(b)

		_, err := svc.UpdateStatus(context.Background(), b.BookingID, &models.UpdateStatusRequest{
			UserID: managerID,
			Status: "approved",
		})
		assert.ErrorIs(t, err, ErrInvalidTransition)
		assert.Equal(t, 0, repo.updateStatusN)
		assert.Empty(t, dispatcher.calls)
	})

	t.Run("only manager may change status", func(t *testing.T) {
		b := testBooking(domain.StatusPending)
		svc, _, _ := newTestService(b)

		_, err := svc.UpdateStatus(context.Background(), b.BookingID, &models.UpdateStatusRequest{
			UserID: ownerID,
			Status: "approved",
		})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("concurrent change maps to transition conflict", func(t *testing.T) {
		b := testBooking(domain.StatusPending)
		svc, repo, dispatcher := newTestService(b)
		repo.updateStatusErr = bookingstorage.ErrStatusConflict

		_, err := svc.UpdateStatus(context.Background(), b.BookingID, &models.UpdateStatusRequest{
			UserID: managerID,
			Status: "approved",
		})
		assert.ErrorIs(t, err, ErrTransitionConflict)
		assert.Empty(t, dispatcher.calls)
	})

	t.Run("admin notes persisted", func(t *testing.T) {
		b := testBooking(domain.StatusPending)
		svc, repo, _ := newTestService(b)

		notes := "Подтверждено по телефону"
		resp, err := svc.UpdateStatus(context.Background(), b.BookingID, &models.UpdateStatusRequest{
			UserID:     managerID,
			Status:     "approved",
			AdminNotes: &notes,
		})
		require.NoError(t, err)
		require.NotNil(t, repo.adminNotes)
		assert.Equal(t, notes, *repo.adminNotes)
		require.NotNil(t, resp.AdminNotes)
		assert.Equal(t, notes, *resp.AdminNotes)
	})

	t.Run("invalid status string", func(t *testing.T) {
		b := testBooking(domain.StatusPending)
		svc, _, _ := newTestService(b)

		_, err := svc.UpdateStatus(context.Background(), b.BookingID, &models.UpdateStatusRequest{
			UserID: managerID,
			Status: "frozen",
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("admin block transition dispatches nothing", func(t *testing.T) {
		b := testBooking(domain.StatusApproved)
		b.UserID = nil
		b.IsAdminBlock = true
		svc, _, dispatcher := newTestService(b)

		_, err := svc.UpdateStatus(context.Background(), b.BookingID, &models.UpdateStatusRequest{
			UserID: managerID,
			Status: "cancelled",
		})
		require.NoError(t, err)
		assert.Empty(t, dispatcher.calls)
	})

	t.Run("anonymous booking dispatches nothing", func(t *testing.T) {
		b := testBooking(domain.StatusPending)
		b.UserID = nil
		svc, _, dispatcher := newTestService(b)

		_, err := svc.UpdateStatus(context.Background(), b.BookingID, &models.UpdateStatusRequest{
			UserID: managerID,
			Status: "approved",
		})
		require.NoError(t, err)
		assert.Empty(t, dispatcher.calls)
	})
}

func TestCancel(t *testing.T) {
	t.Run("owner cancels pending", func(t *testing.T) {
		b := testBooking(domain.StatusPending)
		svc, _, dispatcher := newTestService(b)

		resp, err := svc.Cancel(context.Background(), b.BookingID, &models.CancelBookingRequest{UserID: ownerID})
		require.NoError(t, err)

		assert.Equal(t, "cancelled", resp.Status)
		require.Len(t, dispatcher.calls, 1)
		assert.Equal(t, domain.StatusCancelled, dispatcher.calls[0])
	})

	t.Run("owner cannot cancel approved", func(t *testing.T) {
		b := testBooking(domain.StatusApproved)
		svc, repo, _ := newTestService(b)

		_, err := svc.Cancel(context.Background(), b.BookingID, &models.CancelBookingRequest{UserID: ownerID})
		assert.ErrorIs(t, err, ErrInvalidTransition)
		assert.Equal(t, 0, repo.updateStatusN)
	})

	t.Run("manager cancels approved with reason", func(t *testing.T) {
		b := testBooking(domain.StatusApproved)
		svc, repo, _ := newTestService(b)

		resp, err := svc.Cancel(context.Background(), b.BookingID, &models.CancelBookingRequest{
			UserID: managerID,
			Reason: "Ремонт инженерных систем",
		})
		require.NoError(t, err)

		assert.Equal(t, "cancelled", resp.Status)
		require.NotNil(t, repo.adminNotes)
		assert.Equal(t, "Ремонт инженерных систем", *repo.adminNotes)
	})

	t.Run("completed cannot be cancelled", func(t *testing.T) {
		b := testBooking(domain.StatusCompleted)
		svc, _, _ := newTestService(b)

		_, err := svc.Cancel(context.Background(), b.BookingID, &models.CancelBookingRequest{UserID: managerID})
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("stranger denied", func(t *testing.T) {
		b := testBooking(domain.StatusPending)
		svc, _, _ := newTestService(b)

		_, err := svc.Cancel(context.Background(), b.BookingID, &models.CancelBookingRequest{UserID: otherID})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})
}
