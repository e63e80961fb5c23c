package create_admin_block

import (
	"context"

	createAdminBlock "github.com/a7jazili/hall-booking-service/internal/usecase/create_admin_block"
)

type CreateAdminBlockUseCase interface {
	Execute(ctx context.Context, req *createAdminBlock.Request) (*createAdminBlock.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
