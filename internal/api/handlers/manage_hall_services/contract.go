package manage_hall_services

import (
	"context"

	"github.com/a7jazili/hall-booking-service/internal/service/halls/models"
)

type HallService interface {
	CreateService(ctx context.Context, req *models.CreateServiceRequest) (*models.ServiceResponse, error)
	UpdateService(ctx context.Context, req *models.UpdateServiceRequest) (*models.ServiceResponse, error)
	DeleteService(ctx context.Context, hallID, serviceID, userID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
