package manage_hall_meals

import (
	"context"

	"github.com/a7jazili/hall-booking-service/internal/service/halls/models"
)

type HallService interface {
	CreateMeal(ctx context.Context, req *models.CreateMealRequest) (*models.MealResponse, error)
	UpdateMeal(ctx context.Context, req *models.UpdateMealRequest) (*models.MealResponse, error)
	DeleteMeal(ctx context.Context, hallID, mealID, userID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
