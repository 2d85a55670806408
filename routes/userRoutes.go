package routes

import (
	"civicconnect-be/controllers"
	"civicconnect-be/middlewares"
	"civicconnect-be/models"
	"civicconnect-be/repositories"

	"github.com/gin-gonic/gin"
)

// UserRoutes sets up the admin-only user management routes
func UserRoutes(r *gin.Engine, uc *controllers.UserController, sessions repositories.SessionStore) {
	user := r.Group("/api/user",
		middlewares.AuthMiddleware(sessions),
		middlewares.RequireRole(models.RoleAdmin))
	{
		user.GET("", uc.ListUsers)
		user.DELETE("/:email", uc.DeleteUser)
	}
}
