package create_admin_block

import (
	"time"

	"github.com/a7jazili/hall-booking-service/internal/domain"
	createAdminBlock "github.com/a7jazili/hall-booking-service/internal/usecase/create_admin_block"
)

// CreateAdminBlockRequest HTTP request model
type CreateAdminBlockRequest struct {
	StartDatetime string `json:"startDatetime"` // "2026-09-01T00:00:00"
	EndDatetime   string `json:"endDatetime"`
	Reason        string `json:"reason,omitempty"`
}

// AdminBlockResponse HTTP response model
type AdminBlockResponse struct {
	BookingID     string `json:"bookingId"`
	HallID        int64  `json:"hallId"`
	StartDatetime string `json:"startDatetime"`
	EndDatetime   string `json:"endDatetime"`
	Status        string `json:"status"`
	Reason        string `json:"reason"`
	CreatedAt     string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAdminBlockRequest) ToUseCaseRequest(hallID, userID int64) (*createAdminBlock.Request, error) {
	start, err := time.Parse(domain.DateTimeFormat, r.StartDatetime)
	if err != nil {
		return nil, err
	}

	end, err := time.Parse(domain.DateTimeFormat, r.EndDatetime)
	if err != nil {
		return nil, err
	}

	return &createAdminBlock.Request{
		HallID:        hallID,
		UserID:        userID,
		StartDatetime: start,
		EndDatetime:   end,
		Reason:        r.Reason,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAdminBlock.Response) *AdminBlockResponse {
	return &AdminBlockResponse{
		BookingID:     resp.BookingID,
		HallID:        resp.HallID,
		StartDatetime: resp.StartDatetime.Format(domain.DateTimeFormat),
		EndDatetime:   resp.EndDatetime.Format(domain.DateTimeFormat),
		Status:        resp.Status,
		Reason:        resp.Reason,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
	}
}
