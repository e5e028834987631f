package handlers

import (
	"errors"
	"net/http"

	"booststudio/internal/domain"

	"github.com/gin-gonic/gin"
)

// RespondError sends the standard {success:false, message} payload.
func RespondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"message": message,
	})
}

// RespondDomainError maps domain errors to HTTP responses. internalMsg is the
// generic message for unexpected failures; in development mode the underlying
// error text is appended for diagnostics.
func RespondDomainError(c *gin.Context, dev bool, err error, internalMsg string) {
	switch {
	case domain.IsValidation(err):
		RespondError(c, http.StatusBadRequest, err.Error())
	case domain.IsUnauthorized(err):
		RespondError(c, http.StatusUnauthorized, err.Error())
	case domain.IsNotFound(err):
		RespondError(c, http.StatusNotFound, notFoundMessage(err))
	default:
		msg := internalMsg
		if dev && err != nil {
			msg = msg + ": " + err.Error()
		}
		RespondError(c, http.StatusInternalServerError, msg)
	}
}

func notFoundMessage(err error) string {
	var nf domain.NotFoundError
	if errors.As(err, &nf) {
		switch nf.Resource {
		case "reservation":
			return "Réservation non trouvée"
		case "media":
			return "Média non trouvé"
		}
	}
	return "Ressource non trouvée"
}

// BindJSONOrError ensures the body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		RespondError(c, http.StatusBadRequest, "Missing required fields")
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondError(c, http.StatusBadRequest, "Requête invalide")
		return false
	}
	return true
}
