package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// HallStatus represents the availability status of a hall
type HallStatus string

const (
	HallStatusAvailable   HallStatus = "available"
	HallStatusMaintenance HallStatus = "maintenance"
	HallStatusBooked      HallStatus = "booked"
)

// MealType represents the kind of a catalog meal
type MealType string

const (
	MealTypeBreakfast MealType = "breakfast"
	MealTypeLunch     MealType = "lunch"
	MealTypeDinner    MealType = "dinner"
	MealTypeSnack     MealType = "snack"
	MealTypeBuffet    MealType = "buffet"
)

// Valid returns true if the meal type is known
func (t MealType) Valid() bool {
	switch t {
	case MealTypeBreakfast, MealTypeLunch, MealTypeDinner, MealTypeSnack, MealTypeBuffet:
		return true
	}
	return false
}

// Hall represents a rentable event venue
type Hall struct {
	ID            int64
	Name          string
	CategoryID    int64
	GovernorateID int64
	CityID        int64
	Address       string
	Description   string
	Capacity      int
	PricePerHour  decimal.Decimal
	Status        HallStatus
	Features      []string

	Phone *string
	Email *string

	Latitude  *decimal.Decimal
	Longitude *decimal.Decimal

	// ManagerUserID is the hall's active manager, nil when unassigned.
	// Exclusive one-to-one with a user.
	ManagerUserID *int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsBookable returns true if new booking requests are accepted for the hall
func (h *Hall) IsBookable() bool {
	return h.Status == HallStatusAvailable
}

// IsManagedBy returns true if userID is the hall's active manager
func (h *Hall) IsManagedBy(userID int64) bool {
	return h.ManagerUserID != nil && *h.ManagerUserID == userID
}

// HallService is a catalog add-on service scoped to one hall
type HallService struct {
	ID          int64
	HallID      int64
	Name        string
	Description *string
	Price       decimal.Decimal
	IsAvailable bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// HallMeal is a catalog meal scoped to one hall, priced per person
type HallMeal struct {
	ID             int64
	HallID         int64
	Name           string
	Description    *string
	MealType       MealType
	PricePerPerson decimal.Decimal
	IsVegetarian   bool
	IsAvailable    bool
	MinOrder       int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Category is hall reference data (e.g. weddings, conferences)
type Category struct {
	ID          int64
	Name        string
	Description string
}

// Governorate is location reference data
type Governorate struct {
	ID   int64
	Name string
	Code string
}

// City is location reference data, scoped to a governorate
type City struct {
	ID            int64
	GovernorateID int64
	Name          string
}
