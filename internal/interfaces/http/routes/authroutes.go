package routes

import (
	"github.com/gin-gonic/gin"

	"fixmate/internal/interfaces/http/handlers"
)

// SetupAuthRoutes configures the signup and login routes.
func SetupAuthRoutes(engine *gin.Engine, handler *handlers.AuthHandler) {
	auth := engine.Group("/api/auth")
	{
		auth.POST("/signup", handler.Signup)
		auth.POST("/login", handler.Login)
	}
}
