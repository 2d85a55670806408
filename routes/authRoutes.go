package routes

import (
	"civicconnect-be/controllers"
	"civicconnect-be/middlewares"
	"civicconnect-be/repositories"

	"github.com/gin-gonic/gin"
)

// AuthRoutes sets up the authentication routes
func AuthRoutes(r *gin.Engine, ac *controllers.AuthController, sessions repositories.SessionStore) {
	auth := r.Group("/api/auth")
	{
		auth.POST("/register", ac.Register)
		auth.POST("/login", ac.Login)
		auth.POST("/admin/login", ac.AdminLogin)
		auth.POST("/logout", middlewares.AuthMiddleware(sessions), ac.Logout)
		auth.GET("/me", middlewares.AuthMiddleware(sessions), ac.Me)
	}
}
