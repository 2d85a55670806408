package controllers

import (
	"errors"
	"log"
	"net/http"

	"civicconnect-be/models"
	"civicconnect-be/repositories"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	users repositories.UserRepository
}

func NewUserController(users repositories.UserRepository) *UserController {
	return &UserController{users: users}
}

// ListUsers returns every registered user for the admin user table
func (uc *UserController) ListUsers(c *gin.Context) {
	users, err := uc.users.List(c.Request.Context())
	if err != nil {
		log.Println("Error listing users:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve users"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"users":      users,
		"totalUsers": len(users),
	})
}

// DeleteUser removes a user by email. The user's issues are kept and keep
// their reportedBy value as historical data.
func (uc *UserController) DeleteUser(c *gin.Context) {
	email := c.Param("email")

	err := uc.users.Delete(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		} else {
			log.Println("Error deleting user:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}
