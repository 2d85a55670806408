package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"civicconnect-be/middlewares"
	"civicconnect-be/models"
	"civicconnect-be/repositories"

	"github.com/gin-gonic/gin"
)

type IssueController struct {
	issues repositories.IssueRepository
}

func NewIssueController(issues repositories.IssueRepository) *IssueController {
	return &IssueController{issues: issues}
}

// Create handles the report form submission. The reporter is taken from the
// session, never from the payload.
func (ic *IssueController) Create(c *gin.Context) {
	session, ok := middlewares.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var input struct {
		Title        string  `json:"title" binding:"required,max=200"`
		Category     string  `json:"category" binding:"required"`
		Location     string  `json:"location" binding:"required,max=200"`
		Urgency      string  `json:"urgency" binding:"required"`
		Description  string  `json:"description" binding:"required,max=1000"`
		ImageDataURL *string `json:"imageDataURL,omitempty"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !models.ValidCategory(input.Category) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category"})
		return
	}
	if !models.ValidUrgency(input.Urgency) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid urgency"})
		return
	}

	if input.ImageDataURL != nil {
		if err := models.ValidateImageDataURL(*input.ImageDataURL); err != nil {
			if errors.Is(err, models.ErrImageTooLarge) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Image must be smaller than 2MB"})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid image attachment"})
			return
		}
	}

	issue := models.Issue{
		Title:        input.Title,
		Category:     models.IssueCategory(input.Category),
		Location:     input.Location,
		Urgency:      models.IssueUrgency(input.Urgency),
		Description:  input.Description,
		ReportedBy:   session.Email,
		ImageDataURL: input.ImageDataURL,
	}

	created, err := ic.issues.Create(c.Request.Context(), issue)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create issue"})
		return
	}

	c.JSON(http.StatusCreated, created)
}

// List retrieves issues with conjunctive filtering, newest first. Admins see
// every issue; users see only their own reports.
func (ic *IssueController) List(c *gin.Context) {
	session, ok := middlewares.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	filter := repositories.IssueFilter{
		Status:   c.Query("status"),
		Category: c.Query("category"),
		Urgency:  c.Query("urgency"),
		Search:   c.Query("search"),
	}

	if session.Role != models.RoleAdmin {
		filter.ReportedBy = session.Email
	}

	issues, err := ic.issues.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve issues"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"issues":      issues,
		"totalIssues": len(issues),
	})
}

// Get retrieves a single issue by its ID
func (ic *IssueController) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid issue ID"})
		return
	}

	issue, err := ic.issues.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Issue not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve issue"})
		}
		return
	}

	c.JSON(http.StatusOK, issue)
}

// UpdateStatus lets an admin set an issue's status and triage notes
func (ic *IssueController) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid issue ID"})
		return
	}

	var input struct {
		Status string `json:"status" binding:"required"`
		Notes  string `json:"notes"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !models.ValidStatus(input.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	err = ic.issues.UpdateStatus(c.Request.Context(), id, models.IssueStatus(input.Status), input.Notes)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Issue not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update issue"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Issue status updated successfully"})
}

// Delete removes an issue. Admins may delete any issue; users only their own.
func (ic *IssueController) Delete(c *gin.Context) {
	session, ok := middlewares.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid issue ID"})
		return
	}

	if session.Role != models.RoleAdmin {
		issue, err := ic.issues.GetByID(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, models.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Issue not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve issue"})
			}
			return
		}
		if issue.ReportedBy != session.Email {
			c.JSON(http.StatusForbidden, gin.H{"error": "You are not authorized to delete this issue"})
			return
		}
	}

	if err := ic.issues.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Issue not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete issue"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Issue deleted successfully"})
}
