package services

import (
	"testing"
	"time"

	"booststudio/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestDashboardAggregatesAndRevenue(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	count := func(n int) *sqlmock.Rows {
		return sqlmock.NewRows([]string{"count"}).AddRow(n)
	}

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM reservations`).WillReturnRows(count(10))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM reservations WHERE status`).WithArgs("pending").WillReturnRows(count(4))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM reservations WHERE status`).WithArgs("confirmed").WillReturnRows(count(3))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM reservations WHERE status`).WithArgs("completed").WillReturnRows(count(2))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM reservations WHERE status`).WithArgs("cancelled").WillReturnRows(count(1))

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM media`).WillReturnRows(count(6))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM media WHERE type`).WithArgs("image").WillReturnRows(count(5))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM media WHERE type`).WithArgs("video").WillReturnRows(count(1))

	now := time.Now()
	completedCols := []string{
		"id", "full_name", "phone", "service_type", "location",
		"duration", "date_time", "comments", "status", "created_at", "updated_at",
	}
	// 25000*2*1.0 + 35000*3*1.3 = 50000 + 136500
	mock.ExpectQuery("SELECT (.+) FROM reservations WHERE status").
		WithArgs("completed").
		WillReturnRows(sqlmock.NewRows(completedCols).
			AddRow("RES-1", "A", "1", "studio", "studio", 2, "d", "", "completed", now, now).
			AddRow("RES-2", "B", "2", "clip_video", "domicile", 3, "d", "", "completed", now, now))

	mock.ExpectQuery("SELECT (.+) FROM reservations ORDER BY created_at DESC LIMIT").
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows(completedCols).
			AddRow("RES-9", "C", "3", "evenement", "exterieur", 1, "d", "", "pending", now, now))

	svc := StatsService{
		ReservationRepo: repositories.ReservationRepository{DB: db},
		MediaRepo:       repositories.MediaRepository{DB: db},
	}

	stats, err := svc.Dashboard()
	if err != nil {
		t.Fatalf("dashboard error: %v", err)
	}

	if stats.Reservations.Total != 10 || stats.Reservations.Pending != 4 ||
		stats.Reservations.Confirmed != 3 || stats.Reservations.Completed != 2 ||
		stats.Reservations.Cancelled != 1 {
		t.Fatalf("unexpected reservation stats: %+v", stats.Reservations)
	}
	if stats.Media.Total != 6 || stats.Media.Images != 5 || stats.Media.Videos != 1 {
		t.Fatalf("unexpected media stats: %+v", stats.Media)
	}
	if stats.Revenue.Total != 186500 {
		t.Fatalf("revenue: got %v want 186500", stats.Revenue.Total)
	}
	if len(stats.RecentReservations) != 1 || stats.RecentReservations[0].ID != "RES-9" {
		t.Fatalf("unexpected recent reservations: %+v", stats.RecentReservations)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
