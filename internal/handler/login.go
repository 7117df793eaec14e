package handler

import (
	"BookShelf/internal/dto"
	"BookShelf/internal/service"
	"BookShelf/utils"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Login authenticates a user and establishes a session.
func (h *Handler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}
	user, err := h.Users.Authenticate(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			utils.Fail(c, err)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed: " + err.Error()})
		return
	}
	if err := h.Sessions.Create(c, user.ID, user.Username); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create session failed: " + err.Error()})
		return
	}
	c.Redirect(http.StatusFound, "/my_library")
}

// Logout clears any active session and sends the client to the login
// page. Logging out with no session is not an error.
func (h *Handler) Logout(c *gin.Context) {
	if err := h.Sessions.Destroy(c); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "destroy session failed: " + err.Error()})
		return
	}
	c.Redirect(http.StatusFound, "/login")
}
