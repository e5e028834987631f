package services

import (
	"booststudio/internal/domain"
	"booststudio/internal/domain/models"
	"booststudio/internal/repositories"
)

type StatsService struct {
	ReservationRepo repositories.ReservationRepository
	MediaRepo       repositories.MediaRepository
}

type ReservationStats struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Confirmed int `json:"confirmed"`
	Completed int `json:"completed"`
	Cancelled int `json:"cancelled"`
}

type MediaStats struct {
	Total  int `json:"total"`
	Images int `json:"images"`
	Videos int `json:"videos"`
}

type RevenueStats struct {
	Total float64 `json:"total"`
}

type DashboardStats struct {
	Reservations       ReservationStats     `json:"reservations"`
	Media              MediaStats           `json:"media"`
	Revenue            RevenueStats         `json:"revenue"`
	RecentReservations []models.Reservation `json:"recentReservations"`
}

// Dashboard aggregates counts per status and type plus realized revenue
// (quote total of every completed reservation).
func (s StatsService) Dashboard() (DashboardStats, error) {
	var out DashboardStats
	var err error

	if out.Reservations.Total, err = s.ReservationRepo.CountAll(); err != nil {
		return DashboardStats{}, err
	}
	if out.Reservations.Pending, err = s.ReservationRepo.CountByStatus(domain.StatusPending); err != nil {
		return DashboardStats{}, err
	}
	if out.Reservations.Confirmed, err = s.ReservationRepo.CountByStatus(domain.StatusConfirmed); err != nil {
		return DashboardStats{}, err
	}
	if out.Reservations.Completed, err = s.ReservationRepo.CountByStatus(domain.StatusCompleted); err != nil {
		return DashboardStats{}, err
	}
	if out.Reservations.Cancelled, err = s.ReservationRepo.CountByStatus(domain.StatusCancelled); err != nil {
		return DashboardStats{}, err
	}

	if out.Media.Total, err = s.MediaRepo.CountAll(); err != nil {
		return DashboardStats{}, err
	}
	if out.Media.Images, err = s.MediaRepo.CountByType(domain.MediaImage); err != nil {
		return DashboardStats{}, err
	}
	if out.Media.Videos, err = s.MediaRepo.CountByType(domain.MediaVideo); err != nil {
		return DashboardStats{}, err
	}

	completed, err := s.ReservationRepo.ListByStatus(domain.StatusCompleted)
	if err != nil {
		return DashboardStats{}, err
	}
	for _, res := range completed {
		quote, qerr := domain.ComputeQuote(res.ServiceType, res.Location, res.Duration)
		if qerr != nil {
			// rows predating an enum change count for nothing instead
			// of failing the whole dashboard
			continue
		}
		out.Revenue.Total += quote.Total
	}

	if out.RecentReservations, err = s.ReservationRepo.ListRecent(5); err != nil {
		return DashboardStats{}, err
	}

	return out, nil
}
