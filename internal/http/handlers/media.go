package handlers

import (
	"net/http"

	"booststudio/internal/http/middleware"
	"booststudio/internal/repositories"
	"booststudio/internal/services"

	"github.com/gin-gonic/gin"
)

type MediaHandler struct {
	Repo     repositories.MediaRepository
	Uploader services.Uploader
	Dev      bool
}

func (h MediaHandler) svc(c *gin.Context) services.MediaService {
	return services.MediaService{
		Repo:      h.Repo,
		Uploader:  h.Uploader,
		RequestID: middleware.GetRequestID(c),
	}
}

// GET /api/media and GET /api/admin/media
// Public callers filter with ?visible=true; the admin view sees everything.
func (h MediaHandler) List(c *gin.Context) {
	visibleOnly := c.Query("visible") == "true"

	list, err := h.svc(c).List(visibleOnly)
	if err != nil {
		RespondDomainError(c, h.Dev, err, "Erreur lors de la récupération des médias")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    list,
		"count":   len(list),
	})
}

// POST /api/admin/media — multipart upload plus catalog metadata.
func (h MediaHandler) Upload(c *gin.Context) {
	data, ok := readUploadedFile(c, "Aucun fichier téléchargé")
	if !ok {
		return
	}

	in := services.SaveUploadInput{
		Type:        c.PostForm("type"),
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Category:    c.PostForm("category"),
	}

	m, err := h.svc(c).SaveUpload(c.Request.Context(), data, in)
	if err != nil {
		RespondDomainError(c, h.Dev, err, "Échec du téléchargement")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Média téléchargé avec succès",
		"data":    m,
	})
}

type updateMediaRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	IsVisible   *bool   `json:"isVisible"`
}

// PATCH /api/admin/media/:id — absent fields keep their value.
func (h MediaHandler) Update(c *gin.Context) {
	var req updateMediaRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	patch := repositories.MediaPatch{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		IsVisible:   req.IsVisible,
	}

	m, err := h.svc(c).Update(c.Param("id"), patch)
	if err != nil {
		RespondDomainError(c, h.Dev, err, "Erreur lors de la mise à jour du média")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Média mis à jour avec succès",
		"data":    m,
	})
}

// DELETE /api/admin/media/:id
func (h MediaHandler) Delete(c *gin.Context) {
	if err := h.svc(c).Delete(c.Param("id")); err != nil {
		RespondDomainError(c, h.Dev, err, "Erreur lors de la suppression du média")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Média supprimé avec succès",
	})
}
