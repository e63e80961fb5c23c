package check_availability

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
	overlapping  []*domain.Booking
	gotHallID    int64
	gotExcludeID *int64
}

func (f *fakeBookingRepo) GetOverlapping(_ context.Context, hallID int64, _, _ time.Time, excludeID *int64) ([]*domain.Booking, error) {
	f.gotHallID = hallID
	f.gotExcludeID = excludeID
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

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func validRequest() *Request {
	return &Request{
		HallID:        1,
		StartDatetime: time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC),
		EndDatetime:   time.Date(2026, 9, 10, 15, 0, 0, 0, time.UTC),
	}
}

func TestCheckAvailability_Available(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, &fakeHallRepo{hall: &domain.Hall{ID: 1}}, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.True(t, resp.Available)
	assert.Nil(t, resp.Conflict)
}

func TestCheckAvailability_Occupied(t *testing.T) {
	conflictStart := time.Date(2026, 9, 10, 13, 0, 0, 0, time.UTC)
	conflictEnd := conflictStart.Add(2 * time.Hour)

	bookingRepo := &fakeBookingRepo{
		overlapping: []*domain.Booking{
			{ID: 1, StartDatetime: conflictStart, EndDatetime: conflictEnd, Status: domain.StatusApproved},
			{ID: 2, StartDatetime: conflictEnd, EndDatetime: conflictEnd.Add(time.Hour), Status: domain.StatusPending},
		},
	}
	uc := NewUseCase(bookingRepo, &fakeHallRepo{hall: &domain.Hall{ID: 1}}, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.False(t, resp.Available)
	// в ответе первое пересекающееся окно
	require.NotNil(t, resp.Conflict)
	assert.Equal(t, conflictStart, resp.Conflict.StartDatetime)
	assert.Equal(t, conflictEnd, resp.Conflict.EndDatetime)
}

func TestCheckAvailability_ExcludeBookingID(t *testing.T) {
	bookingRepo := &fakeBookingRepo{}
	uc := NewUseCase(bookingRepo, &fakeHallRepo{hall: &domain.Hall{ID: 1}}, nopLogger{})

	excludeID := int64(7)
	req := validRequest()
	req.ExcludeBookingID = &excludeID

	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	require.NotNil(t, bookingRepo.gotExcludeID)
	assert.Equal(t, excludeID, *bookingRepo.gotExcludeID)
	assert.Equal(t, int64(1), bookingRepo.gotHallID)
}

func TestCheckAvailability_HallNotFound(t *testing.T) {
	uc := NewUseCase(&fakeBookingRepo{}, &fakeHallRepo{}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrHallNotFound)
}

func TestCheckAvailability_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"zero hall id", func(r *Request) { r.HallID = 0 }},
		{"zero start", func(r *Request) { r.StartDatetime = time.Time{} }},
		{"zero end", func(r *Request) { r.EndDatetime = time.Time{} }},
		{"end before start", func(r *Request) { r.EndDatetime = r.StartDatetime.Add(-time.Hour) }},
		{"end equals start", func(r *Request) { r.EndDatetime = r.StartDatetime }},
		{"negative exclude id", func(r *Request) {
			bad := int64(-1)
			r.ExcludeBookingID = &bad
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewUseCase(&fakeBookingRepo{}, &fakeHallRepo{hall: &domain.Hall{ID: 1}}, nopLogger{})
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
