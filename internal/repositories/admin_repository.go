package repositories

import (
	"database/sql"
	"errors"

	intconfig "booststudio/internal/config"
	"booststudio/internal/domain"
	"booststudio/internal/domain/models"
)

type AdminRepository struct {
	DB *sql.DB
}

func (r AdminRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r AdminRepository) GetByUsername(username string) (models.Admin, error) {
	var (
		a         models.Admin
		lastLogin sql.NullTime
	)
	err := r.db().QueryRow(`
		SELECT id, username, password_hash, last_login, created_at, updated_at
		FROM admins
		WHERE username = ?
		LIMIT 1
	`, username).Scan(&a.ID, &a.Username, &a.PasswordHash, &lastLogin, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Admin{}, domain.NotFoundError{Resource: "admin"}
		}
		return models.Admin{}, domain.InternalError{Msg: "échec de lecture de l'admin", Err: err}
	}
	if lastLogin.Valid {
		t := lastLogin.Time
		a.LastLogin = &t
	}
	return a, nil
}

// TouchLastLogin records the login instant; record-keeping only, callers may
// ignore the error.
func (r AdminRepository) TouchLastLogin(id string) error {
	_, err := r.db().Exec(`UPDATE admins SET last_login = NOW(), updated_at = NOW() WHERE id = ?`, id)
	if err != nil {
		return domain.InternalError{Msg: "échec de mise à jour du dernier login", Err: err}
	}
	return nil
}
