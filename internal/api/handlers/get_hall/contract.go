package get_hall

import (
	"context"

	"github.com/a7jazili/hall-booking-service/internal/service/halls/models"
)

type HallService interface {
	GetHall(ctx context.Context, hallID int64) (*models.HallResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
