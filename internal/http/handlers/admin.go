package handlers

import (
	"net/http"

	"booststudio/internal/http/middleware"
	"booststudio/internal/repositories"
	"booststudio/internal/services"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	Svc             *services.AdminService
	ReservationRepo repositories.ReservationRepository
	MediaRepo       repositories.MediaRepository
	Dev             bool
}

type loginRequest struct {
	Password string `json:"password"`
}

// POST /api/admin/login
func (h AdminHandler) Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	token, admin, err := h.Svc.Login(req.Password)
	if err != nil {
		RespondDomainError(c, h.Dev, err, "Erreur lors de la connexion")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Connexion réussie",
		"data": gin.H{
			"token": token,
			"admin": admin,
		},
	})
}

// POST /api/admin/logout
func (h AdminHandler) Logout(c *gin.Context) {
	h.Svc.Logout(middleware.GetSessionToken(c))

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Déconnexion réussie",
	})
}

// GET /api/admin/dashboard/stats
func (h AdminHandler) DashboardStats(c *gin.Context) {
	stats := services.StatsService{
		ReservationRepo: h.ReservationRepo,
		MediaRepo:       h.MediaRepo,
	}

	data, err := stats.Dashboard()
	if err != nil {
		RespondDomainError(c, h.Dev, err, "Erreur lors de la récupération des statistiques")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    data,
	})
}

// GET /api/admin/reservations/:id/quote-pdf
func (h AdminHandler) QuotePDF(c *gin.Context) {
	docs := services.DocsService{
		ReservationRepo: h.ReservationRepo,
		RequestID:       middleware.GetRequestID(c),
	}

	pdf, filename, err := docs.GenerateQuotePDF(c.Param("id"))
	if err != nil {
		RespondDomainError(c, h.Dev, err, "Erreur lors de la génération du devis")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
