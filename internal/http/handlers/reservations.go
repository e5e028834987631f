package handlers

import (
	"net/http"

	"booststudio/internal/http/middleware"
	"booststudio/internal/repositories"
	"booststudio/internal/services"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	Repo repositories.ReservationRepository
	Dev  bool
}

func (h ReservationHandler) svc(c *gin.Context) services.ReservationService {
	return services.ReservationService{
		Repo:      h.Repo,
		RequestID: middleware.GetRequestID(c),
	}
}

// POST /api/reservations
func (h ReservationHandler) Create(c *gin.Context) {
	var in services.CreateReservationInput
	if !BindJSONOrError(c, &in) {
		return
	}

	res, quote, err := h.svc(c).Create(in)
	if err != nil {
		RespondDomainError(c, h.Dev, err, "Erreur lors de la création de la réservation")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Réservation créée avec succès",
		"data": gin.H{
			"reservation": res,
			"pricing":     quote,
		},
	})
}

// GET /api/reservations
func (h ReservationHandler) List(c *gin.Context) {
	list, err := h.svc(c).List()
	if err != nil {
		RespondDomainError(c, h.Dev, err, "Erreur lors de la récupération des réservations")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    list,
		"count":   len(list),
	})
}

// GET /api/reservations/:id
func (h ReservationHandler) Get(c *gin.Context) {
	res, err := h.svc(c).Get(c.Param("id"))
	if err != nil {
		RespondDomainError(c, h.Dev, err, "Erreur lors de la récupération de la réservation")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    res,
	})
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// PATCH /api/reservations/:id/status
func (h ReservationHandler) UpdateStatus(c *gin.Context) {
	var req updateStatusRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	res, err := h.svc(c).UpdateStatus(c.Param("id"), req.Status)
	if err != nil {
		RespondDomainError(c, h.Dev, err, "Erreur lors de la mise à jour de la réservation")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Statut mis à jour avec succès",
		"data":    res,
	})
}

// DELETE /api/reservations/:id
func (h ReservationHandler) Delete(c *gin.Context) {
	if err := h.svc(c).Delete(c.Param("id")); err != nil {
		RespondDomainError(c, h.Dev, err, "Erreur lors de la suppression de la réservation")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Réservation supprimée avec succès",
	})
}
