package repositories

import (
	"database/sql"
	"errors"

	intconfig "booststudio/internal/config"
	"booststudio/internal/domain"
	"booststudio/internal/domain/models"
)

const reservationColumns = `
	id,
	full_name,
	phone,
	service_type,
	location,
	duration,
	date_time,
	COALESCE(comments,'') AS comments,
	status,
	created_at,
	updated_at
`

type ReservationRepository struct {
	DB *sql.DB
}

func (r ReservationRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r ReservationRepository) Insert(res models.Reservation) error {
	_, err := r.db().Exec(`
		INSERT INTO reservations
			(id, full_name, phone, service_type, location, duration, date_time, comments, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, NOW(), NOW())
	`,
		res.ID,
		res.FullName,
		res.Phone,
		string(res.ServiceType),
		string(res.Location),
		res.Duration,
		res.DateTime,
		res.Comments,
		string(res.Status),
	)
	if err != nil {
		return domain.InternalError{Msg: "échec d'insertion de la réservation", Err: err}
	}
	return nil
}

// List returns every reservation, newest first.
func (r ReservationRepository) List() ([]models.Reservation, error) {
	return r.list(`SELECT ` + reservationColumns + ` FROM reservations ORDER BY created_at DESC`)
}

// ListByStatus returns reservations in one lifecycle state, newest first.
func (r ReservationRepository) ListByStatus(status domain.ReservationStatus) ([]models.Reservation, error) {
	return r.list(`SELECT `+reservationColumns+` FROM reservations WHERE status = ? ORDER BY created_at DESC`, string(status))
}

// ListRecent returns at most limit reservations, newest first.
func (r ReservationRepository) ListRecent(limit int) ([]models.Reservation, error) {
	if limit < 1 {
		limit = 5
	}
	return r.list(`SELECT `+reservationColumns+` FROM reservations ORDER BY created_at DESC LIMIT ?`, limit)
}

func (r ReservationRepository) list(query string, args ...any) ([]models.Reservation, error) {
	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, domain.InternalError{Msg: "échec de lecture des réservations", Err: err}
	}
	defer rows.Close()

	out := []models.Reservation{}
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, domain.InternalError{Msg: "échec de scan de la réservation", Err: err}
		}
		out = append(out, res)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.InternalError{Msg: "échec d'itération des réservations", Err: err}
	}
	return out, nil
}

func (r ReservationRepository) GetByID(id string) (models.Reservation, error) {
	row := r.db().QueryRow(`SELECT `+reservationColumns+` FROM reservations WHERE id = ? LIMIT 1`, id)
	res, err := scanReservation(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Reservation{}, domain.NotFoundError{Resource: "reservation"}
		}
		return models.Reservation{}, domain.InternalError{Msg: "échec de lecture de la réservation", Err: err}
	}
	return res, nil
}

// UpdateStatus overwrites the lifecycle state. Concurrent writers race with
// last-write-wins, there is no version column.
func (r ReservationRepository) UpdateStatus(id string, status domain.ReservationStatus) error {
	// callers check existence first; zero affected rows here can simply
	// mean the status did not change
	_, err := r.db().Exec(`UPDATE reservations SET status = ?, updated_at = NOW() WHERE id = ?`, string(status), id)
	if err != nil {
		return domain.InternalError{Msg: "échec de mise à jour de la réservation", Err: err}
	}
	return nil
}

func (r ReservationRepository) Delete(id string) error {
	result, err := r.db().Exec(`DELETE FROM reservations WHERE id = ?`, id)
	if err != nil {
		return domain.InternalError{Msg: "échec de suppression de la réservation", Err: err}
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return domain.NotFoundError{Resource: "reservation"}
	}
	return nil
}

func (r ReservationRepository) CountAll() (int, error) {
	var n int
	if err := r.db().QueryRow(`SELECT COUNT(*) FROM reservations`).Scan(&n); err != nil {
		return 0, domain.InternalError{Msg: "échec de comptage des réservations", Err: err}
	}
	return n, nil
}

func (r ReservationRepository) CountByStatus(status domain.ReservationStatus) (int, error) {
	var n int
	if err := r.db().QueryRow(`SELECT COUNT(*) FROM reservations WHERE status = ?`, string(status)).Scan(&n); err != nil {
		return 0, domain.InternalError{Msg: "échec de comptage des réservations", Err: err}
	}
	return n, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReservation(row rowScanner) (models.Reservation, error) {
	var (
		res         models.Reservation
		serviceType string
		location    string
		status      string
	)
	err := row.Scan(
		&res.ID,
		&res.FullName,
		&res.Phone,
		&serviceType,
		&location,
		&res.Duration,
		&res.DateTime,
		&res.Comments,
		&status,
		&res.CreatedAt,
		&res.UpdatedAt,
	)
	if err != nil {
		return models.Reservation{}, err
	}
	res.ServiceType = domain.ServiceType(serviceType)
	res.Location = domain.Location(location)
	res.Status = domain.ReservationStatus(status)
	return res, nil
}
