package domain

import "fmt"

// ServiceType identifies the kind of shooting a reservation books.
type ServiceType string

const (
	ServiceStudio       ServiceType = "studio"
	ServiceClipVideo    ServiceType = "clip_video"
	ServicePhotographie ServiceType = "photographie"
	ServiceEvenement    ServiceType = "evenement"
)

// ParseServiceType validates raw input against the closed set of services.
func ParseServiceType(raw string) (ServiceType, error) {
	switch ServiceType(raw) {
	case ServiceStudio, ServiceClipVideo, ServicePhotographie, ServiceEvenement:
		return ServiceType(raw), nil
	default:
		return "", ValidationError{Field: "serviceType", Msg: fmt.Sprintf("Invalid serviceType: %s", raw)}
	}
}

// Location identifies where the shooting happens.
type Location string

const (
	LocationStudio    Location = "studio"
	LocationExterieur Location = "exterieur"
	LocationDomicile  Location = "domicile"
)

func ParseLocation(raw string) (Location, error) {
	switch Location(raw) {
	case LocationStudio, LocationExterieur, LocationDomicile:
		return Location(raw), nil
	default:
		return "", ValidationError{Field: "location", Msg: fmt.Sprintf("Invalid location: %s", raw)}
	}
}

// ReservationStatus is the lifecycle state of a reservation.
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusConfirmed ReservationStatus = "confirmed"
	StatusCompleted ReservationStatus = "completed"
	StatusCancelled ReservationStatus = "cancelled"
)

func ParseReservationStatus(raw string) (ReservationStatus, error) {
	switch ReservationStatus(raw) {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return ReservationStatus(raw), nil
	default:
		return "", ValidationError{Field: "status", Msg: "Statut invalide"}
	}
}

// AllReservationStatuses lists every status, in dashboard display order.
func AllReservationStatuses() []ReservationStatus {
	return []ReservationStatus{StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled}
}

// MediaType distinguishes catalog entries and picks the upload folder.
type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
)

func ParseMediaType(raw string) (MediaType, error) {
	switch MediaType(raw) {
	case MediaImage, MediaVideo:
		return MediaType(raw), nil
	default:
		return "", ValidationError{Field: "type", Msg: "Type invalide"}
	}
}
