package handlers

import (
	"io"
	"net/http"

	"booststudio/internal/domain"
	"booststudio/internal/services"

	"github.com/gin-gonic/gin"
)

// UploadHandler serves the raw pass-through uploads: the file goes to the
// media host and only the public URL comes back, no catalog row is written.
type UploadHandler struct {
	Uploader services.Uploader
	Dev      bool
}

// POST /api/uploads/image
func (h UploadHandler) Image(c *gin.Context) {
	h.upload(c, domain.MediaImage)
}

// POST /api/uploads/video
func (h UploadHandler) Video(c *gin.Context) {
	h.upload(c, domain.MediaVideo)
}

func (h UploadHandler) upload(c *gin.Context, kind domain.MediaType) {
	data, ok := readUploadedFile(c, "No file uploaded")
	if !ok {
		return
	}

	url, err := h.Uploader.Upload(c.Request.Context(), data, kind)
	if err != nil {
		RespondDomainError(c, h.Dev, err, "Upload failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"url":     url,
	})
}

// readUploadedFile pulls the multipart "file" field into memory; on a missing
// field it answers 400 with missingMsg and returns ok=false.
func readUploadedFile(c *gin.Context, missingMsg string) ([]byte, bool) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, missingMsg)
		return nil, false
	}

	f, err := fileHeader.Open()
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "Upload failed")
		return nil, false
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		RespondError(c, http.StatusInternalServerError, "Upload failed")
		return nil, false
	}
	return data, true
}
