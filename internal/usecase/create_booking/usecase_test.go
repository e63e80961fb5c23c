package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/a7jazili/hall-booking-service/internal/domain"
	hallRepo "github.com/a7jazili/hall-booking-service/internal/infra/storage/hall"
)

// Фейки зависимостей

type fakeBookingRepo struct {
	overlapping   []*domain.Booking
	created       *domain.Booking
	addedServices []*domain.BookingService
	addedMeals    []*domain.BookingMeal
}

func (f *fakeBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	created := *b
	created.ID = 42
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	f.created = &created
	return &created, nil
}

func (f *fakeBookingRepo) GetOverlapping(_ context.Context, _ int64, _, _ time.Time, _ *int64) ([]*domain.Booking, error) {
	return f.overlapping, nil
}

func (f *fakeBookingRepo) AddService(_ context.Context, item *domain.BookingService) error {
	f.addedServices = append(f.addedServices, item)
	return nil
}

func (f *fakeBookingRepo) AddMeal(_ context.Context, item *domain.BookingMeal) error {
	f.addedMeals = append(f.addedMeals, item)
	return nil
}

type fakeHallRepo struct {
	hall     *domain.Hall
	services map[int64]*domain.HallService
	meals    map[int64]*domain.HallMeal
}

func (f *fakeHallRepo) GetByID(_ context.Context, id int64) (*domain.Hall, error) {
	if f.hall == nil || f.hall.ID != id {
		return nil, hallRepo.ErrHallNotFound
	}
	return f.hall, nil
}

func (f *fakeHallRepo) GetServiceByID(_ context.Context, hallID, serviceID int64) (*domain.HallService, error) {
	s, ok := f.services[serviceID]
	if !ok || s.HallID != hallID {
		return nil, hallRepo.ErrServiceNotFound
	}
	return s, nil
}

func (f *fakeHallRepo) GetMealByID(_ context.Context, hallID, mealID int64) (*domain.HallMeal, error) {
	m, ok := f.meals[mealID]
	if !ok || m.HallID != hallID {
		return nil, hallRepo.ErrMealNotFound
	}
	return m, nil
}

// fakeTxManager исполняет fn без настоящей транзакции
type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type fixedTimeProvider struct{ now time.Time }

func (p *fixedTimeProvider) Now() time.Time { return p.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// Хелперы

var testNow = time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

func newTestUseCase(t *testing.T, bookingRepo *fakeBookingRepo, hallRepo *fakeHallRepo, strict bool) (*UseCase, *fakeTxManager) {
	t.Helper()
	txMgr := &fakeTxManager{}
	uc := NewUseCase(bookingRepo, hallRepo, txMgr, strict, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: testNow}
	return uc, txMgr
}

func validRequest() *Request {
	return &Request{
		HallID:         1,
		CustomerName:   "Иван Петров",
		CustomerEmail:  "ivan@example.com",
		CustomerPhone:  "+71234567890",
		EventTitle:     "Свадьба",
		AttendeesCount: 80,
		StartDatetime:  testNow.Add(24 * time.Hour),
		EndDatetime:    testNow.Add(27 * time.Hour),
	}
}

func availableHall() *domain.Hall {
	return &domain.Hall{
		ID:           1,
		Name:         "Зал X",
		Capacity:     200,
		PricePerHour: decimal.RequireFromString("100.00"),
		Status:       domain.HallStatusAvailable,
	}
}

// Тесты

func TestCreateBooking_Success(t *testing.T) {
	bookingRepo := &fakeBookingRepo{}
	hallRepository := &fakeHallRepo{hall: availableHall()}
	uc, txMgr := newTestUseCase(t, bookingRepo, hallRepository, false)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// зал 100.00/час, 3 часа
	assert.Equal(t, "300.00", resp.TotalPrice)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.NotEmpty(t, resp.BookingID)
	assert.Equal(t, 1, txMgr.calls)

	require.NotNil(t, bookingRepo.created)
	assert.True(t, bookingRepo.created.TotalPrice.Equal(decimal.RequireFromString("300.00")))
	assert.False(t, bookingRepo.created.IsAdminBlock)
}

func TestCreateBooking_SlotConflict(t *testing.T) {
	conflictStart := testNow.Add(25 * time.Hour)
	bookingRepo := &fakeBookingRepo{
		overlapping: []*domain.Booking{{
			ID:            7,
			StartDatetime: conflictStart,
			EndDatetime:   conflictStart.Add(2 * time.Hour),
			Status:        domain.StatusApproved,
		}},
	}
	uc, _ := newTestUseCase(t, bookingRepo, &fakeHallRepo{hall: availableHall()}, false)

	_, err := uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrSlotConflict)

	// в ошибке первое пересекающееся окно
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, conflictStart, conflict.Start)

	// до записи дело не дошло
	assert.Nil(t, bookingRepo.created)
}

func TestCreateBooking_HallNotFound(t *testing.T) {
	uc, _ := newTestUseCase(t, &fakeBookingRepo{}, &fakeHallRepo{}, false)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrHallNotFound)
}

func TestCreateBooking_HallNotBookable(t *testing.T) {
	hall := availableHall()
	hall.Status = domain.HallStatusMaintenance
	uc, _ := newTestUseCase(t, &fakeBookingRepo{}, &fakeHallRepo{hall: hall}, false)

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrHallNotBookable)
}

func TestCreateBooking_CapacityExceeded(t *testing.T) {
	bookingRepo := &fakeBookingRepo{}
	uc, txMgr := newTestUseCase(t, bookingRepo, &fakeHallRepo{hall: availableHall()}, false)

	req := validRequest()
	req.AttendeesCount = 500

	_, err := uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrCapacityExceeded)

	// проверка вместимости срабатывает до транзакции и записей
	assert.Equal(t, 0, txMgr.calls)
	assert.Nil(t, bookingRepo.created)
}

func TestCreateBooking_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"missing customer name", func(r *Request) { r.CustomerName = "" }},
		{"missing email", func(r *Request) { r.CustomerEmail = "" }},
		{"missing event title", func(r *Request) { r.EventTitle = "" }},
		{"zero attendees", func(r *Request) { r.AttendeesCount = 0 }},
		{"end before start", func(r *Request) { r.EndDatetime = r.StartDatetime.Add(-time.Hour) }},
		{"end equals start", func(r *Request) { r.EndDatetime = r.StartDatetime }},
		{"too short", func(r *Request) { r.EndDatetime = r.StartDatetime.Add(15 * time.Minute) }},
		{"bad service quantity", func(r *Request) {
			r.Services = []ServiceSelection{{ServiceID: 1, Quantity: 0}}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, _ := newTestUseCase(t, &fakeBookingRepo{}, &fakeHallRepo{hall: availableHall()}, false)
			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestCreateBooking_StartInPast(t *testing.T) {
	uc, _ := newTestUseCase(t, &fakeBookingRepo{}, &fakeHallRepo{hall: availableHall()}, false)

	req := validRequest()
	req.StartDatetime = testNow.Add(-time.Hour)
	req.EndDatetime = testNow.Add(2 * time.Hour)

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrDateInPast)
}

func TestCreateBooking_FullDayPricing(t *testing.T) {
	bookingRepo := &fakeBookingRepo{}
	uc, _ := newTestUseCase(t, bookingRepo, &fakeHallRepo{hall: availableHall()}, false)

	req := validRequest()
	req.StartDatetime = time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	req.EndDatetime = time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	// 100.00 * 24 * 2
	assert.Equal(t, "4800.00", resp.TotalPrice)
}

func TestCreateBooking_LineItemSnapshots(t *testing.T) {
	bookingRepo := &fakeBookingRepo{}
	hallRepository := &fakeHallRepo{
		hall: availableHall(),
		services: map[int64]*domain.HallService{
			10: {ID: 10, HallID: 1, Name: "Декор", Price: decimal.RequireFromString("500.00"), IsAvailable: true},
		},
		meals: map[int64]*domain.HallMeal{
			20: {ID: 20, HallID: 1, Name: "Обед", MealType: domain.MealTypeLunch,
				PricePerPerson: decimal.RequireFromString("25.00"), IsAvailable: true, MinOrder: 1},
		},
	}
	uc, _ := newTestUseCase(t, bookingRepo, hallRepository, false)

	req := validRequest()
	req.Services = []ServiceSelection{{ServiceID: 10, Quantity: 2}}
	req.Meals = []MealSelection{{MealID: 20, Quantity: 40, ServingTime: "15:00"}}

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	// 300 аренда + 1000 услуги + 1000 блюда
	assert.Equal(t, "2300.00", resp.TotalPrice)
	assert.Equal(t, 1, resp.ServicesCount)
	assert.Equal(t, 1, resp.MealsCount)

	// снимки цен из каталога, позиции привязаны к созданному бронированию
	require.Len(t, bookingRepo.addedServices, 1)
	assert.True(t, bookingRepo.addedServices[0].Price.Equal(decimal.RequireFromString("500.00")))
	assert.Equal(t, int64(42), bookingRepo.addedServices[0].BookingID)

	require.Len(t, bookingRepo.addedMeals, 1)
	assert.True(t, bookingRepo.addedMeals[0].TotalPrice.Equal(decimal.RequireFromString("1000.00")))
	assert.Equal(t, int64(42), bookingRepo.addedMeals[0].BookingID)
}

func TestCreateBooking_SkipsUnavailableLineItems(t *testing.T) {
	bookingRepo := &fakeBookingRepo{}
	hallRepository := &fakeHallRepo{
		hall: availableHall(),
		services: map[int64]*domain.HallService{
			10: {ID: 10, HallID: 1, Price: decimal.RequireFromString("500.00"), IsAvailable: false},
		},
	}
	uc, _ := newTestUseCase(t, bookingRepo, hallRepository, false)

	req := validRequest()
	req.Services = []ServiceSelection{
		{ServiceID: 10, Quantity: 1}, // недоступна
		{ServiceID: 99, Quantity: 1}, // не существует
	}

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	// позиции пропущены, считается только аренда
	assert.Equal(t, "300.00", resp.TotalPrice)
	assert.Equal(t, 0, resp.ServicesCount)
	assert.Empty(t, bookingRepo.addedServices)
}

func TestCreateBooking_StrictLineItems(t *testing.T) {
	hallRepository := &fakeHallRepo{
		hall: availableHall(),
		services: map[int64]*domain.HallService{
			10: {ID: 10, HallID: 1, Price: decimal.RequireFromString("500.00"), IsAvailable: false},
		},
	}
	uc, _ := newTestUseCase(t, &fakeBookingRepo{}, hallRepository, true)

	req := validRequest()
	req.Services = []ServiceSelection{{ServiceID: 10, Quantity: 1}}

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrServiceNotAvailable)
}

func TestCreateBooking_MealBelowMinOrder(t *testing.T) {
	bookingRepo := &fakeBookingRepo{}
	hallRepository := &fakeHallRepo{
		hall: availableHall(),
		meals: map[int64]*domain.HallMeal{
			20: {ID: 20, HallID: 1, PricePerPerson: decimal.RequireFromString("25.00"),
				IsAvailable: true, MinOrder: 30},
		},
	}
	uc, _ := newTestUseCase(t, bookingRepo, hallRepository, false)

	req := validRequest()
	req.Meals = []MealSelection{{MealID: 20, Quantity: 10, ServingTime: "15:00"}}

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	// меньше минимального заказа: позиция пропущена
	assert.Equal(t, 0, resp.MealsCount)
	assert.Equal(t, "300.00", resp.TotalPrice)
}
