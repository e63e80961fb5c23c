package models

import (
	"errors"
	"time"

	"github.com/a7jazili/hall-booking-service/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	UserID int64  `json:"userId"`
	Reason string `json:"reason,omitempty"`
}

// UpdateStatusRequest запрос на перевод бронирования в новый статус
type UpdateStatusRequest struct {
	UserID     int64   `json:"userId"`
	Status     string  `json:"status"`
	AdminNotes *string `json:"adminNotes,omitempty"`
}

// GetHallBookingsRequest запрос на получение бронирований зала
type GetHallBookingsRequest struct {
	UserID          int64      `json:"userId"`
	HallID          int64      `json:"hallId"`
	StartDate       *time.Time `json:"startDate,omitempty"`
	EndDate         *time.Time `json:"endDate,omitempty"`
	Status          *string    `json:"status,omitempty"`
	IncludeInactive bool       `json:"includeInactive,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetHallBookingsRequest) ToDomainFilter() (domain.HallBookingsFilter, error) {
	filter := domain.HallBookingsFilter{
		HallID:          r.HallID,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// BookingServiceItem позиция услуги в ответе
type BookingServiceItem struct {
	ServiceID  int64   `json:"serviceId"`
	Quantity   int     `json:"quantity"`
	Price      string  `json:"price"`      // снимок цены на момент заказа
	TotalPrice string  `json:"totalPrice"` // quantity * price
	Notes      *string `json:"notes,omitempty"`
}

// BookingMealItem позиция блюда в ответе
type BookingMealItem struct {
	MealID         int64   `json:"mealId"`
	Quantity       int     `json:"quantity"`
	PricePerPerson string  `json:"pricePerPerson"`
	TotalPrice     string  `json:"totalPrice"`
	ServingTime    string  `json:"servingTime"` // "HH:MM"
	Notes          *string `json:"notes,omitempty"`
}

// BookingResponse ответ с данными бронирования
// Все денежные значения сериализуются строками с двумя знаками
type BookingResponse struct {
	BookingID string `json:"bookingId"` // внешний UUID
	HallID    int64  `json:"hallId"`
	UserID    *int64 `json:"userId,omitempty"`

	CustomerName  string `json:"customerName"`
	CustomerEmail string `json:"customerEmail"`
	CustomerPhone string `json:"customerPhone"`

	EventTitle       string `json:"eventTitle"`
	EventDescription string `json:"eventDescription"`
	AttendeesCount   int    `json:"attendeesCount"`

	StartDatetime time.Time `json:"startDatetime"`
	EndDatetime   time.Time `json:"endDatetime"`

	TotalPrice   string  `json:"totalPrice"`
	Status       string  `json:"status"`
	AdminNotes   *string `json:"adminNotes,omitempty"`
	IsAdminBlock bool    `json:"isAdminBlock,omitempty"`

	Services []BookingServiceItem `json:"services,omitempty"`
	Meals    []BookingMealItem    `json:"meals,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		BookingID:        b.BookingID.String(),
		HallID:           b.HallID,
		UserID:           b.UserID,
		CustomerName:     b.CustomerName,
		CustomerEmail:    b.CustomerEmail,
		CustomerPhone:    b.CustomerPhone,
		EventTitle:       b.EventTitle,
		EventDescription: b.EventDescription,
		AttendeesCount:   b.AttendeesCount,
		StartDatetime:    b.StartDatetime,
		EndDatetime:      b.EndDatetime,
		TotalPrice:       b.TotalPrice.StringFixed(domain.MoneyScale),
		Status:           string(b.Status),
		AdminNotes:       b.AdminNotes,
		IsAdminBlock:     b.IsAdminBlock,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// AttachLineItems добавляет позиции услуг и блюд к ответу
func (r *BookingResponse) AttachLineItems(services []*domain.BookingService, meals []*domain.BookingMeal) {
	r.Services = make([]BookingServiceItem, 0, len(services))
	for _, item := range services {
		r.Services = append(r.Services, BookingServiceItem{
			ServiceID:  item.ServiceID,
			Quantity:   item.Quantity,
			Price:      item.Price.StringFixed(domain.MoneyScale),
			TotalPrice: item.TotalPrice().StringFixed(domain.MoneyScale),
			Notes:      item.Notes,
		})
	}

	r.Meals = make([]BookingMealItem, 0, len(meals))
	for _, item := range meals {
		r.Meals = append(r.Meals, BookingMealItem{
			MealID:         item.MealID,
			Quantity:       item.Quantity,
			PricePerPerson: item.PricePerPerson.StringFixed(domain.MoneyScale),
			TotalPrice:     item.TotalPrice.StringFixed(domain.MoneyScale),
			ServingTime:    item.ServingTime.String(),
			Notes:          item.Notes,
		})
	}
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)
	if !s.Valid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}
