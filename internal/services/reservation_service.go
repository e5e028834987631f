package services

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"booststudio/internal/domain"
	"booststudio/internal/domain/models"
	"booststudio/internal/repositories"
	"booststudio/internal/utils"
)

type ReservationService struct {
	Repo      repositories.ReservationRepository
	RequestID string
}

// CreateReservationInput mirrors the public booking form payload.
// Duration arrives as json.Number so "3" and 3 are both accepted.
type CreateReservationInput struct {
	FullName    string      `json:"fullName"`
	Phone       string      `json:"phone"`
	ServiceType string      `json:"serviceType"`
	Location    string      `json:"location"`
	Duration    json.Number `json:"duration"`
	DateTime    string      `json:"dateTime"`
	Comments    string      `json:"comments"`
}

// Create validates the booking, persists it as pending and returns the
// record plus its price quote.
func (s ReservationService) Create(in CreateReservationInput) (models.Reservation, domain.Quote, error) {
	if strings.TrimSpace(in.FullName) == "" ||
		strings.TrimSpace(in.Phone) == "" ||
		strings.TrimSpace(in.ServiceType) == "" ||
		strings.TrimSpace(in.Location) == "" ||
		in.Duration.String() == "" ||
		strings.TrimSpace(in.DateTime) == "" {
		return models.Reservation{}, domain.Quote{}, domain.ValidationError{Msg: "Missing required fields"}
	}

	serviceType, err := domain.ParseServiceType(in.ServiceType)
	if err != nil {
		return models.Reservation{}, domain.Quote{}, err
	}
	location, err := domain.ParseLocation(in.Location)
	if err != nil {
		return models.Reservation{}, domain.Quote{}, err
	}

	duration, derr := in.Duration.Int64()
	if derr != nil || duration <= 0 {
		return models.Reservation{}, domain.Quote{}, domain.ValidationError{
			Field: "duration",
			Msg:   fmt.Sprintf("Invalid duration: %s", in.Duration.String()),
		}
	}

	quote, err := domain.ComputeQuote(serviceType, location, int(duration))
	if err != nil {
		return models.Reservation{}, domain.Quote{}, err
	}

	now := time.Now()
	res := models.Reservation{
		ID:          fmt.Sprintf("RES-%d", now.UnixMilli()),
		FullName:    strings.TrimSpace(in.FullName),
		Phone:       strings.TrimSpace(in.Phone),
		ServiceType: serviceType,
		Location:    location,
		Duration:    int(duration),
		DateTime:    in.DateTime,
		Comments:    in.Comments,
		Status:      domain.StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.Repo.Insert(res); err != nil {
		return models.Reservation{}, domain.Quote{}, err
	}

	utils.LogEvent(s.RequestID, "reservation", "create", "id="+res.ID)
	return res, quote, nil
}

func (s ReservationService) List() ([]models.Reservation, error) {
	return s.Repo.List()
}

func (s ReservationService) Get(id string) (models.Reservation, error) {
	return s.Repo.GetByID(id)
}

// UpdateStatus moves a reservation to another lifecycle state and returns
// the updated record.
func (s ReservationService) UpdateStatus(id, rawStatus string) (models.Reservation, error) {
	status, err := domain.ParseReservationStatus(rawStatus)
	if err != nil {
		return models.Reservation{}, err
	}

	res, err := s.Repo.GetByID(id)
	if err != nil {
		return models.Reservation{}, err
	}

	if err := s.Repo.UpdateStatus(id, status); err != nil {
		return models.Reservation{}, err
	}

	res.Status = status
	res.UpdatedAt = time.Now()
	utils.LogEvent(s.RequestID, "reservation", "update_status", "id="+id+" status="+string(status))
	return res, nil
}

func (s ReservationService) Delete(id string) error {
	if err := s.Repo.Delete(id); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "reservation", "delete", "id="+id)
	return nil
}
