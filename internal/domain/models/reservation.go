package models

import (
	"time"

	"booststudio/internal/domain"
)

// Reservation is a booking record for a studio service.
type Reservation struct {
	ID          string                   `json:"id"`
	FullName    string                   `json:"fullName"`
	Phone       string                   `json:"phone"`
	ServiceType domain.ServiceType       `json:"serviceType"`
	Location    domain.Location          `json:"location"`
	Duration    int                      `json:"duration"`
	DateTime    string                   `json:"dateTime"`
	Comments    string                   `json:"comments"`
	Status      domain.ReservationStatus `json:"status"`
	CreatedAt   time.Time                `json:"createdAt"`
	UpdatedAt   time.Time                `json:"updatedAt"`
}
