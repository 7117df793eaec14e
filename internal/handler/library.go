package handler

import (
	"BookShelf/internal/dto"
	"BookShelf/internal/service"
	"BookShelf/utils"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// MyLibrary returns the caller's books and the other usernames.
func (h *Handler) MyLibrary(c *gin.Context) {
	userID := c.MustGet("user_id").(uint64)
	username := c.MustGet("username").(string)

	books, err := h.Books.ListBooksForOwner(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list books failed: " + err.Error()})
		return
	}
	others, err := h.Users.ListOtherUsernames(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list users failed: " + err.Error()})
		return
	}
	utils.Success(c, dto.MyLibraryResponse{
		Username: username,
		Books:    toBookInfos(books),
		Users:    others,
	})
}

// UserLibrary returns the named user's books. The route is public.
func (h *Handler) UserLibrary(c *gin.Context) {
	username := c.Param("username")
	user, err := h.Users.FindByUsername(username)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "find user failed: " + err.Error()})
		return
	}
	books, err := h.Books.ListBooksForOwner(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "list books failed: " + err.Error()})
		return
	}
	utils.Success(c, dto.UserLibraryResponse{
		Username: user.Username,
		Books:    toBookInfos(books),
	})
}
