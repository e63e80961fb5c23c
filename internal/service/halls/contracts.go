package halls

import (
	"context"

	"github.com/a7jazili/hall-booking-service/internal/domain"
)

// HallRepository интерфейс репозитория залов и каталога
type HallRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Hall, error)
	GetServiceByID(ctx context.Context, hallID, serviceID int64) (*domain.HallService, error)
	GetMealByID(ctx context.Context, hallID, mealID int64) (*domain.HallMeal, error)
	GetServicesByHall(ctx context.Context, hallID int64, onlyAvailable bool) ([]*domain.HallService, error)
	GetMealsByHall(ctx context.Context, hallID int64, onlyAvailable bool) ([]*domain.HallMeal, error)
	CreateService(ctx context.Context, service *domain.HallService) (*domain.HallService, error)
	UpdateService(ctx context.Context, service *domain.HallService) error
	DeleteService(ctx context.Context, hallID, serviceID int64) error
	CreateMeal(ctx context.Context, meal *domain.HallMeal) (*domain.HallMeal, error)
	UpdateMeal(ctx context.Context, meal *domain.HallMeal) error
	DeleteMeal(ctx context.Context, hallID, mealID int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
