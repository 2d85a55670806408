package routes

import (
	"civicconnect-be/controllers"
	"civicconnect-be/middlewares"
	"civicconnect-be/models"
	"civicconnect-be/repositories"

	"github.com/gin-gonic/gin"
)

// StatsRoutes sets up the statistics routes
func StatsRoutes(r *gin.Engine, sc *controllers.StatsController, sessions repositories.SessionStore) {
	st := r.Group("/api/stats", middlewares.AuthMiddleware(sessions))
	{
		st.GET("/me", middlewares.RequireRole(models.RoleUser), sc.MyStats)
		st.GET("/overview", middlewares.RequireRole(models.RoleAdmin), sc.Overview)
	}
}
