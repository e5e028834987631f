package services

import (
	"strings"

	"booststudio/internal/auth"
	"booststudio/internal/domain"
	"booststudio/internal/repositories"
	"booststudio/internal/utils"

	"golang.org/x/crypto/bcrypt"
)

// AdminInfo is the public shape of the operator account.
type AdminInfo struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type AdminService struct {
	Sessions     *auth.SessionStore
	AdminRepo    repositories.AdminRepository
	PasswordHash []byte
	RequestID    string
}

// NewAdminService hashes the configured credential once; the login path never
// touches the database for the comparison itself.
func NewAdminService(sessions *auth.SessionStore, repo repositories.AdminRepository, password string) (*AdminService, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &AdminService{
		Sessions:     sessions,
		AdminRepo:    repo,
		PasswordHash: hash,
	}, nil
}

// Login checks the single operator credential and issues a session token.
func (s *AdminService) Login(password string) (string, AdminInfo, error) {
	if strings.TrimSpace(password) == "" {
		return "", AdminInfo{}, domain.ValidationError{Field: "password", Msg: "Mot de passe requis"}
	}

	if err := bcrypt.CompareHashAndPassword(s.PasswordHash, []byte(password)); err != nil {
		return "", AdminInfo{}, domain.UnauthorizedError{Msg: "Mot de passe incorrect"}
	}

	admin := AdminInfo{ID: "ADMIN-1", Username: "admin"}

	token, err := s.Sessions.Issue(admin.ID)
	if err != nil {
		return "", AdminInfo{}, err
	}

	// record-keeping only; a failed write must not block the login
	if err := s.AdminRepo.TouchLastLogin(admin.ID); err != nil {
		utils.LogEvent(s.RequestID, "admin", "touch_last_login_failed", err.Error())
	}

	utils.LogEvent(s.RequestID, "admin", "login", "id="+admin.ID)
	return token, admin, nil
}

// Logout revokes the session token (idempotent).
func (s *AdminService) Logout(token string) {
	s.Sessions.Revoke(token)
	utils.LogEvent(s.RequestID, "admin", "logout", "")
}
