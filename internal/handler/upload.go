package handler

import (
	"BookShelf/internal/service"
	"BookShelf/utils"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Upload stores a PDF and registers it under the caller's identity.
func (h *Handler) Upload(c *gin.Context) {
	userID := c.MustGet("user_id").(uint64)

	fileHeader, err := c.FormFile("pdf_file")
	if err != nil {
		utils.Fail(c, service.ErrInvalidFileType)
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "open upload failed: " + err.Error()})
		return
	}
	defer file.Close()

	_, err = h.Books.UploadBook(c.Request.Context(), userID, fileHeader.Filename, file, fileHeader.Size)
	if err != nil {
		if errors.Is(err, service.ErrInvalidFileType) {
			utils.Fail(c, err)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "upload failed: " + err.Error()})
		return
	}
	c.Redirect(http.StatusFound, "/my_library")
}
