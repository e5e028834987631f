package db

import (
	"database/sql"
	"log"

	"golang.org/x/crypto/bcrypt"
)

// statements are idempotent so EnsureSchema can run on every boot, the same
// way the previous stack synced its models at startup.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS reservations (
		id           VARCHAR(64)  NOT NULL PRIMARY KEY,
		full_name    VARCHAR(255) NOT NULL,
		phone        VARCHAR(64)  NOT NULL,
		service_type ENUM('studio','clip_video','photographie','evenement') NOT NULL,
		location     ENUM('studio','exterieur','domicile') NOT NULL,
		duration     INT          NOT NULL,
		date_time    VARCHAR(255) NOT NULL,
		comments     TEXT,
		status       ENUM('pending','confirmed','completed','cancelled') NOT NULL DEFAULT 'pending',
		created_at   DATETIME     NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at   DATETIME     NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS media (
		id          VARCHAR(64)  NOT NULL PRIMARY KEY,
		type        ENUM('image','video') NOT NULL,
		url         VARCHAR(1024) NOT NULL,
		title       VARCHAR(255) NOT NULL DEFAULT '',
		description TEXT,
		category    VARCHAR(255) NOT NULL DEFAULT '',
		is_visible  TINYINT(1)   NOT NULL DEFAULT 1,
		created_at  DATETIME     NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at  DATETIME     NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS admins (
		id            VARCHAR(64)  NOT NULL PRIMARY KEY,
		username      VARCHAR(255) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		last_login    DATETIME     NULL,
		created_at    DATETIME     NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at    DATETIME     NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}

// EnsureSchema creates the three tables when missing.
func EnsureSchema(db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// SeedAdmin inserts the single operator account when absent. The credential
// is stored as a bcrypt hash, never in clear.
func SeedAdmin(db *sql.DB, password string) error {
	var exists int
	err := db.QueryRow(`SELECT COUNT(*) FROM admins WHERE username = ?`, "admin").Scan(&exists)
	if err != nil {
		return err
	}
	if exists > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = db.Exec(`
		INSERT INTO admins (id, username, password_hash, created_at, updated_at)
		VALUES (?, ?, ?, NOW(), NOW())
	`, "ADMIN-1", "admin", string(hash))
	if err != nil {
		return err
	}

	log.Println("compte admin initialisé")
	return nil
}
