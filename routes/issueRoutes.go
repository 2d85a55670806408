package routes

import (
	"civicconnect-be/controllers"
	"civicconnect-be/middlewares"
	"civicconnect-be/models"
	"civicconnect-be/repositories"

	"github.com/gin-gonic/gin"
)

// IssueRoutes sets up the issue routes
func IssueRoutes(r *gin.Engine, ic *controllers.IssueController, sessions repositories.SessionStore, createLimit int) {
	issue := r.Group("/api/issue", middlewares.AuthMiddleware(sessions))
	{
		issue.POST("/create",
			middlewares.RequireRole(models.RoleUser),
			middlewares.IssueRateLimiter(createLimit),
			ic.Create)
		issue.GET("", ic.List)
		issue.GET("/:id", ic.Get)
		issue.PUT("/:id/status", middlewares.RequireRole(models.RoleAdmin), ic.UpdateStatus)
		issue.DELETE("/:id", ic.Delete)
	}
}
