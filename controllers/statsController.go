package controllers

import (
	"net/http"

	"civicconnect-be/middlewares"
	"civicconnect-be/repositories"
	"civicconnect-be/stats"

	"github.com/gin-gonic/gin"
)

type StatsController struct {
	issues  repositories.IssueRepository
	monitor *stats.Monitor
}

func NewStatsController(issues repositories.IssueRepository, monitor *stats.Monitor) *StatsController {
	return &StatsController{issues: issues, monitor: monitor}
}

// MyStats returns the personal dashboard numbers for the current reporter
func (sc *StatsController) MyStats(c *gin.Context) {
	session, ok := middlewares.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	counts, err := sc.issues.CountByStatus(c.Request.Context(), session.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute statistics"})
		return
	}

	c.JSON(http.StatusOK, stats.Summarize(counts))
}

// Overview returns the cached global snapshot for the admin dashboard
func (sc *StatsController) Overview(c *gin.Context) {
	overview, err := sc.monitor.Snapshot(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute statistics"})
		return
	}

	c.JSON(http.StatusOK, overview)
}
