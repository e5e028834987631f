package repositories

import (
	"testing"
	"time"

	"booststudio/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestGetByUsername(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	now := time.Now()
	cols := []string{"id", "username", "password_hash", "last_login", "created_at", "updated_at"}

	mock.ExpectQuery("SELECT (.+) FROM admins WHERE username").
		WithArgs("admin").
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow("ADMIN-1", "admin", "$2a$10$hash", nil, now, now))

	repo := AdminRepository{DB: db}
	a, err := repo.GetByUsername("admin")
	if err != nil {
		t.Fatalf("get error: %v", err)
	}
	if a.ID != "ADMIN-1" || a.Username != "admin" {
		t.Fatalf("unexpected admin: %+v", a)
	}
	if a.LastLogin != nil {
		t.Fatalf("NULL last_login must map to nil, got %v", a.LastLogin)
	}
}

func TestGetByUsernameMissing(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	cols := []string{"id", "username", "password_hash", "last_login", "created_at", "updated_at"}
	mock.ExpectQuery("SELECT (.+) FROM admins WHERE username").
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows(cols))

	repo := AdminRepository{DB: db}
	if _, err := repo.GetByUsername("ghost"); !domain.IsNotFound(err) {
		t.Fatalf("missing admin should be not found, got %v", err)
	}
}
