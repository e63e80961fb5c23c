package create_booking

import (
	"time"

	"github.com/a7jazili/hall-booking-service/internal/domain"
	createBooking "github.com/a7jazili/hall-booking-service/internal/usecase/create_booking"
	"github.com/a7jazili/hall-booking-service/pkg/types"
)

// ServiceItem позиция услуги в HTTP запросе
type ServiceItem struct {
	ServiceID int64   `json:"serviceId"`
	Quantity  int     `json:"quantity"`
	Notes     *string `json:"notes,omitempty"`
}

// MealItem позиция блюда в HTTP запросе
type MealItem struct {
	MealID      int64   `json:"mealId"`
	Quantity    int     `json:"quantity"`
	ServingTime string  `json:"servingTime"` // "14:30"
	Notes       *string `json:"notes,omitempty"`
}

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	HallID int64 `json:"hallId"`

	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	CustomerPhone string `json:"customerPhone"`

	EventTitle       string `json:"eventTitle"`
	EventDescription string `json:"eventDescription,omitempty"`
	AttendeesCount   int    `json:"attendeesCount"`

	StartDatetime string `json:"startDatetime"` // "2026-09-01T14:00:00"
	EndDatetime   string `json:"endDatetime"`

	Services []ServiceItem `json:"services,omitempty"`
	Meals    []MealItem    `json:"meals,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	BookingID string `json:"bookingId"`
	HallID    int64  `json:"hallId"`
	UserID    *int64 `json:"userId,omitempty"`

	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	CustomerPhone string `json:"customerPhone"`

	EventTitle       string `json:"eventTitle"`
	EventDescription string `json:"eventDescription,omitempty"`
	AttendeesCount   int    `json:"attendeesCount"`

	StartDatetime string `json:"startDatetime"`
	EndDatetime   string `json:"endDatetime"`

	TotalPrice string `json:"totalPrice"`
	Status     string `json:"status"`

	ServicesCount int `json:"servicesCount"`
	MealsCount    int `json:"mealsCount"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// userID nil для анонимных заявок.
func (r *CreateBookingRequest) ToUseCaseRequest(userID *int64) (*createBooking.Request, error) {
	start, err := time.Parse(domain.DateTimeFormat, r.StartDatetime)
	if err != nil {
		return nil, err
	}

	end, err := time.Parse(domain.DateTimeFormat, r.EndDatetime)
	if err != nil {
		return nil, err
	}

	services := make([]createBooking.ServiceSelection, 0, len(r.Services))
	for _, item := range r.Services {
		services = append(services, createBooking.ServiceSelection{
			ServiceID: item.ServiceID,
			Quantity:  item.Quantity,
			Notes:     item.Notes,
		})
	}

	meals := make([]createBooking.MealSelection, 0, len(r.Meals))
	for _, item := range r.Meals {
		servingTime, err := types.NewTimeStringFromString(item.ServingTime)
		if err != nil {
			return nil, err
		}
		meals = append(meals, createBooking.MealSelection{
			MealID:      item.MealID,
			Quantity:    item.Quantity,
			ServingTime: servingTime,
			Notes:       item.Notes,
		})
	}

	return &createBooking.Request{
		HallID:           r.HallID,
		UserID:           userID,
		CustomerName:     r.CustomerName,
		CustomerEmail:    r.CustomerEmail,
		CustomerPhone:    r.CustomerPhone,
		EventTitle:       r.EventTitle,
		EventDescription: r.EventDescription,
		AttendeesCount:   r.AttendeesCount,
		StartDatetime:    start,
		EndDatetime:      end,
		Services:         services,
		Meals:            meals,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		BookingID:        resp.BookingID,
		HallID:           resp.HallID,
		UserID:           resp.UserID,
		CustomerName:     resp.CustomerName,
		CustomerEmail:    resp.CustomerEmail,
		CustomerPhone:    resp.CustomerPhone,
		EventTitle:       resp.EventTitle,
		EventDescription: resp.EventDescription,
		AttendeesCount:   resp.AttendeesCount,
		StartDatetime:    resp.StartDatetime.Format(domain.DateTimeFormat),
		EndDatetime:      resp.EndDatetime.Format(domain.DateTimeFormat),
		TotalPrice:       resp.TotalPrice,
		Status:           resp.Status,
		ServicesCount:    resp.ServicesCount,
		MealsCount:       resp.MealsCount,
		CreatedAt:        resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        resp.UpdatedAt.Format(time.RFC3339),
	}
}
