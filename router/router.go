package router

import (
	"BookShelf/internal/handler"
	"BookShelf/utils"

	"github.com/gin-gonic/gin"
)

// InitRouter builds the route table.
func InitRouter(h *handler.Handler, loginLimiter *utils.IPRateLimiter) *gin.Engine {
	r := gin.Default()
	r.Use(utils.CORSMiddleware())

	r.POST("/register", loginLimiter.Middleware(), h.Register)
	r.POST("/login", loginLimiter.Middleware(), h.Login)
	r.GET("/logout", h.Logout)

	// Public by design: any client that knows a username or book id may
	// browse that library or fetch that blob.
	r.GET("/library/:username", h.UserLibrary)
	r.GET("/pdf/:bookID", h.ViewPdf)

	auth := r.Group("")
	auth.Use(h.Sessions.Middleware())
	{
		auth.POST("/upload", h.Upload)
		auth.GET("/my_library", h.MyLibrary)
	}
	return r
}
