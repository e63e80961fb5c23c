package create_admin_block

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/a7jazili/hall-booking-service/internal/domain"
	hallstorage "github.com/a7jazili/hall-booking-service/internal/infra/storage/hall"
)

type fakeBookingRepo struct {
	overlapping []*domain.Booking
	created     *domain.Booking
}

func (f *fakeBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	created := *b
	created.ID = 42
	created.CreatedAt = time.Now()
	f.created = &created
	return &created, nil
}

func (f *fakeBookingRepo) GetOverlapping(_ context.Context, _ int64, _, _ time.Time, _ *int64) ([]*domain.Booking, error) {
	return f.overlapping, nil
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

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const managerID = int64(200)

func managedHall() *domain.Hall {
	manager := managerID
	return &domain.Hall{ID: 1, Name: "Зал X", ManagerUserID: &manager}
}

func validRequest() *Request {
	return &Request{
		HallID:        1,
		UserID:        managerID,
		StartDatetime: time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		EndDatetime:   time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
		Reason:        "Ремонт вентиляции",
	}
}

func TestCreateAdminBlock_Success(t *testing.T) {
	bookingRepo := &fakeBookingRepo{}
	uc := NewUseCase(bookingRepo, &fakeHallRepo{hall: managedHall()}, fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusApproved), resp.Status)
	assert.Equal(t, "Ремонт вентиляции", resp.Reason)

	// блокировка: системные поля, нулевая стоимость, без пользователя
	require.NotNil(t, bookingRepo.created)
	created := bookingRepo.created
	assert.True(t, created.IsAdminBlock)
	assert.Nil(t, created.UserID)
	assert.True(t, created.TotalPrice.IsZero())
	assert.Equal(t, domain.StatusApproved, created.Status)
	assert.Equal(t, "Администрация зала", created.CustomerName)
}

func TestCreateAdminBlock_DefaultTitle(t *testing.T) {
	bookingRepo := &fakeBookingRepo{}
	uc := NewUseCase(bookingRepo, &fakeHallRepo{hall: managedHall()}, fakeTxManager{}, nopLogger{})

	req := validRequest()
	req.Reason = ""

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "Техническая блокировка", resp.Reason)
}

func TestCreateAdminBlock_AccessDenied(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, &fakeHallRepo{hall: managedHall()}, fakeTxManager{}, nopLogger{})

	req := validRequest()
	req.UserID = 300

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestCreateAdminBlock_SlotConflict(t *testing.T) {
	conflictStart := time.Date(2026, 9, 11, 12, 0, 0, 0, time.UTC)
	bookingRepo := &fakeBookingRepo{
		overlapping: []*domain.Booking{{
			ID:            7,
			StartDatetime: conflictStart,
			EndDatetime:   conflictStart.Add(3 * time.Hour),
			Status:        domain.StatusPending,
		}},
	}
	uc := NewUseCase(bookingRepo, &fakeHallRepo{hall: managedHall()}, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrSlotConflict)

	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, conflictStart, conflict.Start)
	assert.Nil(t, bookingRepo.created)
}

func TestCreateAdminBlock_HallNotFound(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, &fakeHallRepo{}, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrHallNotFound)
}

func TestCreateAdminBlock_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"zero hall id", func(r *Request) { r.HallID = 0 }},
		{"zero user id", func(r *Request) { r.UserID = 0 }},
		{"end before start", func(r *Request) { r.EndDatetime = r.StartDatetime.Add(-time.Hour) }},
		{"end equals start", func(r *Request) { r.EndDatetime = r.StartDatetime }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewUseCase(&fakeBookingRepo{}, &fakeHallRepo{hall: managedHall()}, fakeTxManager{}, nopLogger{})
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
