package manage_hall_meals

import (
	"github.com/shopspring/decimal"

	"github.com/a7jazili/hall-booking-service/internal/service/halls/models"
)

// CreateMealRequest HTTP request model
type CreateMealRequest struct {
	Name           string  `json:"name"`
	Description    *string `json:"description,omitempty"`
	MealType       string  `json:"mealType"` // breakfast/lunch/dinner/snack/buffet
	PricePerPerson string  `json:"pricePerPerson"`
	IsVegetarian   bool    `json:"isVegetarian"`
	MinOrder       int     `json:"minOrder,omitempty"`
	IsAvailable    *bool   `json:"isAvailable,omitempty"`
}

// UpdateMealRequest HTTP request model. Nil поля не изменяются
type UpdateMealRequest struct {
	Name           *string `json:"name,omitempty"`
	Description    *string `json:"description,omitempty"`
	MealType       *string `json:"mealType,omitempty"`
	PricePerPerson *string `json:"pricePerPerson,omitempty"`
	IsVegetarian   *bool   `json:"isVegetarian,omitempty"`
	MinOrder       *int    `json:"minOrder,omitempty"`
	IsAvailable    *bool   `json:"isAvailable,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CreateMealRequest) ToServiceRequest(hallID, userID int64) (*models.CreateMealRequest, error) {
	price, err := decimal.NewFromString(r.PricePerPerson)
	if err != nil {
		return nil, err
	}

	return &models.CreateMealRequest{
		UserID:         userID,
		HallID:         hallID,
		Name:           r.Name,
		Description:    r.Description,
		MealType:       r.MealType,
		PricePerPerson: price,
		IsVegetarian:   r.IsVegetarian,
		MinOrder:       r.MinOrder,
		IsAvailable:    r.IsAvailable,
	}, nil
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateMealRequest) ToServiceRequest(hallID, mealID, userID int64) (*models.UpdateMealRequest, error) {
	req := &models.UpdateMealRequest{
		UserID:       userID,
		HallID:       hallID,
		MealID:       mealID,
		Name:         r.Name,
		Description:  r.Description,
		MealType:     r.MealType,
		IsVegetarian: r.IsVegetarian,
		MinOrder:     r.MinOrder,
		IsAvailable:  r.IsAvailable,
	}

	if r.PricePerPerson != nil {
		price, err := decimal.NewFromString(*r.PricePerPerson)
		if err != nil {
			return nil, err
		}
		req.PricePerPerson = &price
	}

	return req, nil
}
