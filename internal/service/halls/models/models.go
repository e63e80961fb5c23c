package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/a7jazili/hall-booking-service/internal/domain"
	"github.com/a7jazili/hall-booking-service/pkg/ptr"
)

// Request модели каталога

// CreateServiceRequest запрос на добавление услуги в каталог зала
type CreateServiceRequest struct {
	UserID      int64           `json:"userId"`
	HallID      int64           `json:"hallId"`
	Name        string          `json:"name"`
	Description *string         `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	IsAvailable *bool           `json:"isAvailable,omitempty"` // по умолчанию true
}

// UpdateServiceRequest запрос на изменение услуги. Nil поля не изменяются
type UpdateServiceRequest struct {
	UserID      int64            `json:"userId"`
	HallID      int64            `json:"hallId"`
	ServiceID   int64            `json:"serviceId"`
	Name        *string          `json:"name,omitempty"`
	Description *string          `json:"description,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	IsAvailable *bool            `json:"isAvailable,omitempty"`
}

// CreateMealRequest запрос на добавление блюда в каталог зала
type CreateMealRequest struct {
	UserID         int64           `json:"userId"`
	HallID         int64           `json:"hallId"`
	Name           string          `json:"name"`
	Description    *string         `json:"description,omitempty"`
	MealType       string          `json:"mealType"`
	PricePerPerson decimal.Decimal `json:"pricePerPerson"`
	IsVegetarian   bool            `json:"isVegetarian"`
	MinOrder       int             `json:"minOrder"` // 0 трактуется как 1
	IsAvailable    *bool           `json:"isAvailable,omitempty"`
}

// UpdateMealRequest запрос на изменение блюда. Nil поля не изменяются
type UpdateMealRequest struct {
	UserID         int64            `json:"userId"`
	HallID         int64            `json:"hallId"`
	MealID         int64            `json:"mealId"`
	Name           *string          `json:"name,omitempty"`
	Description    *string          `json:"description,omitempty"`
	MealType       *string          `json:"mealType,omitempty"`
	PricePerPerson *decimal.Decimal `json:"pricePerPerson,omitempty"`
	IsVegetarian   *bool            `json:"isVegetarian,omitempty"`
	MinOrder       *int             `json:"minOrder,omitempty"`
	IsAvailable    *bool            `json:"isAvailable,omitempty"`
}

// Response модели

// ServiceResponse услуга каталога
type ServiceResponse struct {
	ID          int64   `json:"id"`
	HallID      int64   `json:"hallId"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Price       string  `json:"price"`
	IsAvailable bool    `json:"isAvailable"`
}

// MealResponse блюдо каталога
type MealResponse struct {
	ID             int64   `json:"id"`
	HallID         int64   `json:"hallId"`
	Name           string  `json:"name"`
	Description    *string `json:"description,omitempty"`
	MealType       string  `json:"mealType"`
	PricePerPerson string  `json:"pricePerPerson"`
	IsVegetarian   bool    `json:"isVegetarian"`
	MinOrder       int     `json:"minOrder"`
	IsAvailable    bool    `json:"isAvailable"`
}

// HallResponse зал с каталогом доступных услуг и блюд
type HallResponse struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	CategoryID    int64    `json:"categoryId"`
	GovernorateID int64    `json:"governorateId"`
	CityID        int64    `json:"cityId"`
	Address       string   `json:"address"`
	Capacity      int      `json:"capacity"`
	PricePerHour  string   `json:"pricePerHour"`
	Features      []string `json:"features"`
	Phone         *string  `json:"phone,omitempty"`
	Email         *string  `json:"email,omitempty"`
	Latitude      *string  `json:"latitude,omitempty"`
	Longitude     *string  `json:"longitude,omitempty"`
	Status        string   `json:"status"`

	Services []ServiceResponse `json:"services"`
	Meals    []MealResponse    `json:"meals"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Методы конвертации

// FromDomainService конвертирует domain модель услуги в DTO
func FromDomainService(s *domain.HallService) *ServiceResponse {
	if s == nil {
		return nil
	}
	return &ServiceResponse{
		ID:          s.ID,
		HallID:      s.HallID,
		Name:        s.Name,
		Description: s.Description,
		Price:       s.Price.StringFixed(domain.MoneyScale),
		IsAvailable: s.IsAvailable,
	}
}

// FromDomainMeal конвертирует domain модель блюда в DTO
func FromDomainMeal(m *domain.HallMeal) *MealResponse {
	if m == nil {
		return nil
	}
	return &MealResponse{
		ID:             m.ID,
		HallID:         m.HallID,
		Name:           m.Name,
		Description:    m.Description,
		MealType:       string(m.MealType),
		PricePerPerson: m.PricePerPerson.StringFixed(domain.MoneyScale),
		IsVegetarian:   m.IsVegetarian,
		MinOrder:       m.MinOrder,
		IsAvailable:    m.IsAvailable,
	}
}

// FromDomainHall конвертирует domain модель зала в DTO с каталогом
func FromDomainHall(h *domain.Hall, services []*domain.HallService, meals []*domain.HallMeal) *HallResponse {
	if h == nil {
		return nil
	}

	resp := &HallResponse{
		ID:            h.ID,
		Name:          h.Name,
		Description:   h.Description,
		CategoryID:    h.CategoryID,
		GovernorateID: h.GovernorateID,
		CityID:        h.CityID,
		Address:       h.Address,
		Capacity:      h.Capacity,
		PricePerHour:  h.PricePerHour.StringFixed(domain.MoneyScale),
		Features:      h.Features,
		Phone:         h.Phone,
		Email:         h.Email,
		Status:        string(h.Status),
		Services:      make([]ServiceResponse, 0, len(services)),
		Meals:         make([]MealResponse, 0, len(meals)),
		CreatedAt:     h.CreatedAt,
		UpdatedAt:     h.UpdatedAt,
	}

	if h.Latitude != nil {
		resp.Latitude = ptr.Ptr(h.Latitude.String())
	}
	if h.Longitude != nil {
		resp.Longitude = ptr.Ptr(h.Longitude.String())
	}

	for _, s := range services {
		if dto := FromDomainService(s); dto != nil {
			resp.Services = append(resp.Services, *dto)
		}
	}
	for _, m := range meals {
		if dto := FromDomainMeal(m); dto != nil {
			resp.Meals = append(resp.Meals, *dto)
		}
	}

	return resp
}
