package handler

import (
	"BookShelf/internal/service"
	"BookShelf/internal/storage"
	"BookShelf/utils"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// ViewPdf streams a book's bytes. A missing row and a missing blob
// both answer 404; the route is public.
func (h *Handler) ViewPdf(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("bookID"), 10, 64)
	if err != nil {
		c.Status(http.StatusNotFound)
		return
	}
	book, err := h.Books.GetBook(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.Status(http.StatusNotFound)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "get book failed: " + err.Error()})
		return
	}
	blob, info, err := h.Books.OpenBlob(c.Request.Context(), book)
	if err != nil {
		if errors.Is(err, storage.ErrNotExist) {
			c.Status(http.StatusNotFound)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "open blob failed: " + err.Error()})
		return
	}
	defer blob.Close()

	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=\"%s\"", utils.SanitizeHeaderFilename(book.Filename)))
	c.DataFromReader(http.StatusOK, info.Size, "application/pdf", blob, nil)
}
