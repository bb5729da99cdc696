package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// ------------------------------
// Core Domain Entities
// ------------------------------

// Category groups services offered by the business (lawn care, pruning, ...).
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Service is a bookable gardening service.
type Service struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description,omitempty"`
	CategoryID   string          `json:"category_id"`
	CategoryName string          `json:"category_name,omitempty"`
	SupplierID   string          `json:"supplier_id,omitempty"`
	Price        decimal.Decimal `json:"price"`
	Active       bool            `json:"active"`
}

// Supplier provides materials or sub-contracted labour for services.
type Supplier struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// Employee is a staff member that can be assigned to reservations.
type Employee struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email,omitempty"`
	Role      string `json:"role,omitempty"`
}

// FullName returns the employee's display name.
func (e Employee) FullName() string {
	switch {
	case e.FirstName == "":
		return e.LastName
	case e.LastName == "":
		return e.FirstName
	default:
		return e.FirstName + " " + e.LastName
	}
}

// Reservation is a customer's booking of a service at an address.
type Reservation struct {
	ID           string          `json:"id"`
	CustomerName string          `json:"customer_name"`
	Address      string          `json:"address"`
	ServiceID    string          `json:"service_id"`
	ServiceName  string          `json:"service_name,omitempty"`
	CategoryName string          `json:"category_name,omitempty"`
	EmployeeID   string          `json:"employee_id,omitempty"`
	Status       string          `json:"status"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	ScheduledFor time.Time       `json:"scheduled_for"`
	CreatedAt    time.Time       `json:"created_at"`
}

// Reservation status values used by the backend.
const (
	ReservationPending   = "pending"
	ReservationConfirmed = "confirmed"
	ReservationPaid      = "paid"
	ReservationCompleted = "completed"
	ReservationCancelled = "cancelled"
)

// Survey is a post-service satisfaction survey response.
type Survey struct {
	ID            string    `json:"id"`
	ReservationID string    `json:"reservation_id"`
	Rating        int       `json:"rating"`
	Comments      string    `json:"comments,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// AddressSuggestion is one candidate returned by the address lookup endpoint.
type AddressSuggestion struct {
	FormattedAddress string   `json:"formatted_address"`
	City             string   `json:"city,omitempty"`
	Province         string   `json:"province,omitempty"`
	Country          string   `json:"country,omitempty"`
	PostalCode       string   `json:"postal_code,omitempty"`
	Latitude         *float64 `json:"latitude,omitempty"`
	Longitude        *float64 `json:"longitude,omitempty"`
}
