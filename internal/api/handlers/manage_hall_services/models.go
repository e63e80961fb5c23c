package manage_hall_services

import (
	"github.com/shopspring/decimal"

	"github.com/a7jazili/hall-booking-service/internal/service/halls/models"
)

// CreateServiceRequest HTTP request model
type CreateServiceRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Price       string  `json:"price"` // десятичная строка, например "1500.00"
	IsAvailable *bool   `json:"isAvailable,omitempty"`
}

// UpdateServiceRequest HTTP request model. Nil поля не изменяются
type UpdateServiceRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Price       *string `json:"price,omitempty"`
	IsAvailable *bool   `json:"isAvailable,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateServiceRequest) ToServiceRequest(hallID, userID int64) (*models.CreateServiceRequest, error) {
	price, err := decimal.NewFromString(r.Price)
	if err != nil {
		return nil, err
	}

	return &models.CreateServiceRequest{
		UserID:      userID,
		HallID:      hallID,
		Name:        r.Name,
		Description: r.Description,
		Price:       price,
		IsAvailable: r.IsAvailable,
	}, nil
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateServiceRequest) ToServiceRequest(hallID, serviceID, userID int64) (*models.UpdateServiceRequest, error) {
	req := &models.UpdateServiceRequest{
		UserID:      userID,
		HallID:      hallID,
		ServiceID:   serviceID,
		Name:        r.Name,
		Description: r.Description,
		IsAvailable: r.IsAvailable,
	}

	if r.Price != nil {
		price, err := decimal.NewFromString(*r.Price)
		if err != nil {
			return nil, err
		}
		req.Price = &price
	}

	return req, nil
}
