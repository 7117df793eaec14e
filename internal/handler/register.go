package handler

import (
	"BookShelf/internal/dto"
	"BookShelf/internal/service"
	"BookShelf/utils"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Register creates a new user and sends the client to the login page.
func (h *Handler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}
	if _, err := h.Users.Register(req.Username, req.Password); err != nil {
		if errors.Is(err, service.ErrDuplicateUsername) {
			utils.Fail(c, err)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "register failed: " + err.Error()})
		return
	}
	c.Redirect(http.StatusFound, "/login")
}
