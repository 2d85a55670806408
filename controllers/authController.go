package controllers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"civicconnect-be/middlewares"
	"civicconnect-be/models"
	"civicconnect-be/repositories"
	authUtils "civicconnect-be/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthController struct {
	users    repositories.UserRepository
	admin    repositories.AdminRepository
	sessions repositories.SessionStore
}

func NewAuthController(users repositories.UserRepository, admin repositories.AdminRepository, sessions repositories.SessionStore) *AuthController {
	return &AuthController{users: users, admin: admin, sessions: sessions}
}

// startSession records a new session and returns the token carrying it.
func (ac *AuthController) startSession(c *gin.Context, email, name, role string) (string, error) {
	session := models.Session{
		ID:    uuid.NewString(),
		Email: email,
		Name:  name,
		Role:  role,
	}

	if err := ac.sessions.Save(c.Request.Context(), session); err != nil {
		return "", err
	}

	return authUtils.GenerateSessionToken(session.ID)
}

// Register handles user signup. A successful signup logs the new user in.
func (ac *AuthController) Register(c *gin.Context) {
	var input struct {
		Name     string `json:"name" binding:"required,max=50"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=6"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := models.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
		Joined:   time.Now(),
	}

	if err := user.HashPassword(); err != nil {
		log.Println("Error hashing password:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}

	if err := ac.users.Create(c.Request.Context(), user); err != nil {
		if errors.Is(err, models.ErrDuplicateEmail) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "This email is already registered"})
			return
		}
		log.Println("Error inserting user:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}

	token, err := ac.startSession(c, user.Email, user.Name, models.RoleUser)
	if err != nil {
		log.Println("Error starting session:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"name":   user.Name,
		"email":  user.Email,
		"joined": user.Joined,
		"token":  token,
	})
}

// Login handles user login
func (ac *AuthController) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := ac.users.FindByCredentials(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		if errors.Is(err, models.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		log.Println("Error looking up user:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}

	token, err := ac.startSession(c, user.Email, user.Name, models.RoleUser)
	if err != nil {
		log.Println("Error starting session:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"name":   user.Name,
		"email":  user.Email,
		"role":   models.RoleUser,
		"joined": user.Joined,
		"token":  token,
	})
}

// AdminLogin handles administrator login against the seeded admin account
func (ac *AuthController) AdminLogin(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	account, err := ac.admin.Get(c.Request.Context())
	if err != nil {
		log.Println("Error loading admin account:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}

	if input.Email != account.Email || !account.ComparePassword(input.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := ac.startSession(c, account.Email, account.Name, models.RoleAdmin)
	if err != nil {
		log.Println("Error starting session:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"name":  account.Name,
		"email": account.Email,
		"role":  models.RoleAdmin,
		"token": token,
	})
}

// Logout destroys the current session
func (ac *AuthController) Logout(c *gin.Context) {
	session, ok := middlewares.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if err := ac.sessions.Delete(c.Request.Context(), session.ID); err != nil {
		log.Println("Error deleting session:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// Me returns the identity of the current session
func (ac *AuthController) Me(c *gin.Context) {
	session, ok := middlewares.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"email": session.Email,
		"name":  session.Name,
		"role":  session.Role,
	})
}
