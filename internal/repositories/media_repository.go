package repositories

import (
	"database/sql"
	"errors"
	"strings"

	intconfig "booststudio/internal/config"
	"booststudio/internal/domain"
	"booststudio/internal/domain/models"
)

const mediaColumns = `
	id,
	type,
	url,
	title,
	COALESCE(description,'') AS description,
	category,
	is_visible,
	created_at,
	updated_at
`

type MediaRepository struct {
	DB *sql.DB
}

func (r MediaRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r MediaRepository) Insert(m models.Media) error {
	_, err := r.db().Exec(`
		INSERT INTO media
			(id, type, url, title, description, category, is_visible, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, NOW(), NOW())
	`,
		m.ID,
		string(m.Type),
		m.URL,
		m.Title,
		m.Description,
		m.Category,
		m.IsVisible,
	)
	if err != nil {
		return domain.InternalError{Msg: "échec d'insertion du média", Err: err}
	}
	return nil
}

// List returns catalog entries, newest first. With visibleOnly the hidden
// ones are filtered out (public gallery view).
func (r MediaRepository) List(visibleOnly bool) ([]models.Media, error) {
	query := `SELECT ` + mediaColumns + ` FROM media`
	if visibleOnly {
		query += ` WHERE is_visible = 1`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db().Query(query)
	if err != nil {
		return nil, domain.InternalError{Msg: "échec de lecture des médias", Err: err}
	}
	defer rows.Close()

	out := []models.Media{}
	for rows.Next() {
		m, err := scanMedia(rows)
		if err != nil {
			return nil, domain.InternalError{Msg: "échec de scan du média", Err: err}
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.InternalError{Msg: "échec d'itération des médias", Err: err}
	}
	return out, nil
}

func (r MediaRepository) GetByID(id string) (models.Media, error) {
	row := r.db().QueryRow(`SELECT `+mediaColumns+` FROM media WHERE id = ? LIMIT 1`, id)
	m, err := scanMedia(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Media{}, domain.NotFoundError{Resource: "media"}
		}
		return models.Media{}, domain.InternalError{Msg: "échec de lecture du média", Err: err}
	}
	return m, nil
}

// MediaPatch carries the partially-updatable fields; nil means "keep".
type MediaPatch struct {
	Title       *string
	Description *string
	Category    *string
	IsVisible   *bool
}

// Update applies only the provided fields and bumps updated_at.
func (r MediaRepository) Update(id string, patch MediaPatch) error {
	sets := []string{}
	args := []any{}

	if patch.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *patch.Title)
	}
	if patch.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *patch.Description)
	}
	if patch.Category != nil {
		sets = append(sets, "category = ?")
		args = append(args, *patch.Category)
	}
	if patch.IsVisible != nil {
		sets = append(sets, "is_visible = ?")
		args = append(args, *patch.IsVisible)
	}
	if len(sets) == 0 {
		return nil
	}

	sets = append(sets, "updated_at = NOW()")
	args = append(args, id)

	_, err := r.db().Exec(`UPDATE media SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...)
	if err != nil {
		return domain.InternalError{Msg: "échec de mise à jour du média", Err: err}
	}
	return nil
}

func (r MediaRepository) Delete(id string) error {
	result, err := r.db().Exec(`DELETE FROM media WHERE id = ?`, id)
	if err != nil {
		return domain.InternalError{Msg: "échec de suppression du média", Err: err}
	}
	if n, err := result.RowsAffected(); err == nil && n == 0 {
		return domain.NotFoundError{Resource: "media"}
	}
	return nil
}

func (r MediaRepository) CountAll() (int, error) {
	var n int
	if err := r.db().QueryRow(`SELECT COUNT(*) FROM media`).Scan(&n); err != nil {
		return 0, domain.InternalError{Msg: "échec de comptage des médias", Err: err}
	}
	return n, nil
}

func (r MediaRepository) CountByType(t domain.MediaType) (int, error) {
	var n int
	if err := r.db().QueryRow(`SELECT COUNT(*) FROM media WHERE type = ?`, string(t)).Scan(&n); err != nil {
		return 0, domain.InternalError{Msg: "échec de comptage des médias", Err: err}
	}
	return n, nil
}

func scanMedia(row rowScanner) (models.Media, error) {
	var (
		m         models.Media
		mediaType string
	)
	err := row.Scan(
		&m.ID,
		&mediaType,
		&m.URL,
		&m.Title,
		&m.Description,
		&m.Category,
		&m.IsVisible,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return models.Media{}, err
	}
	m.Type = domain.MediaType(mediaType)
	return m, nil
}
