package repositories

import (
	"testing"
	"time"

	"booststudio/internal/domain"
	"booststudio/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
)

var reservationRows = []string{
	"id", "full_name", "phone", "service_type", "location",
	"duration", "date_time", "comments", "status", "created_at", "updated_at",
}

func TestReservationInsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO reservations").
		WithArgs("RES-1", "Awa Diop", "770000000", "clip_video", "domicile", 3, "2024-07-01 15:00", "", "pending").
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := ReservationRepository{DB: db}
	err = repo.Insert(models.Reservation{
		ID:          "RES-1",
		FullName:    "Awa Diop",
		Phone:       "770000000",
		ServiceType: domain.ServiceClipVideo,
		Location:    domain.LocationDomicile,
		Duration:    3,
		DateTime:    "2024-07-01 15:00",
		Status:      domain.StatusPending,
	})
	if err != nil {
		t.Fatalf("insert error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestReservationGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM reservations WHERE id").
		WithArgs("RES-404").
		WillReturnRows(sqlmock.NewRows(reservationRows))

	repo := ReservationRepository{DB: db}
	if _, err := repo.GetByID("RES-404"); !domain.IsNotFound(err) {
		t.Fatalf("missing row should map to NotFound, got %v", err)
	}
}

func TestReservationListNewestFirst(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	now := time.Now()
	rows := sqlmock.NewRows(reservationRows).
		AddRow("RES-2", "B", "2", "studio", "studio", 2, "2024-07-02", "", "pending", now, now).
		AddRow("RES-1", "A", "1", "studio", "studio", 1, "2024-07-01", "", "confirmed", now.Add(-time.Hour), now)

	mock.ExpectQuery("SELECT (.+) FROM reservations ORDER BY created_at DESC").
		WillReturnRows(rows)

	repo := ReservationRepository{DB: db}
	list, err := repo.List()
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("got %d rows, want 2", len(list))
	}
	if list[0].ID != "RES-2" || list[1].ID != "RES-1" {
		t.Fatalf("unexpected order: %s, %s", list[0].ID, list[1].ID)
	}
	if list[1].Status != domain.StatusConfirmed {
		t.Fatalf("status not mapped, got %q", list[1].Status)
	}
}

func TestReservationListEmptyIsNotAnError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM reservations ORDER BY created_at DESC").
		WillReturnRows(sqlmock.NewRows(reservationRows))

	repo := ReservationRepository{DB: db}
	list, err := repo.List()
	if err != nil {
		t.Fatalf("empty list must not error: %v", err)
	}
	if list == nil || len(list) != 0 {
		t.Fatalf("expected empty slice, got %#v", list)
	}
}

func TestReservationDeleteTwice(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("DELETE FROM reservations").
		WithArgs("RES-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM reservations").
		WithArgs("RES-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := ReservationRepository{DB: db}
	if err := repo.Delete("RES-1"); err != nil {
		t.Fatalf("first delete error: %v", err)
	}
	if err := repo.Delete("RES-1"); !domain.IsNotFound(err) {
		t.Fatalf("retry should be NotFound, got %v", err)
	}
}

func TestReservationCountByStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM reservations WHERE status`).
		WithArgs("completed").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	repo := ReservationRepository{DB: db}
	n, err := repo.CountByStatus(domain.StatusCompleted)
	if err != nil {
		t.Fatalf("count error: %v", err)
	}
	if n != 7 {
		t.Fatalf("count: got %d want 7", n)
	}
}
