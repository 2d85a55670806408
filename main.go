package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"civicconnect-be/config"
	"civicconnect-be/controllers"
	"civicconnect-be/models"
	"civicconnect-be/repositories"
	"civicconnect-be/routes"
	"civicconnect-be/stats"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

const statsRefreshInterval = 30 * time.Second

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	db := config.ConnectDB()
	config.ConnectRedis()

	if err := models.EnsureUserIndex(db.Collection("users")); err != nil {
		log.Fatalf("Failed to create user email index: %v", err)
	}

	userRepo := repositories.NewUserRepository(db)
	issueRepo := repositories.NewIssueRepository(db)
	adminRepo := repositories.NewAdminRepository(db)
	sessionStore := repositories.NewSessionStore(config.RedisClient)

	seedCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := adminRepo.Seed(seedCtx, adminAccountFromEnv()); err != nil {
		log.Fatalf("Failed to seed admin account: %v", err)
	}
	cancel()

	monitor := stats.NewMonitor(issueRepo, userRepo, config.RedisClient, statsRefreshInterval)
	go monitor.Run(context.Background())

	authController := controllers.NewAuthController(userRepo, adminRepo, sessionStore)
	issueController := controllers.NewIssueController(issueRepo)
	userController := controllers.NewUserController(userRepo)
	statsController := controllers.NewStatsController(issueRepo, monitor)

	frontendOrigin := os.Getenv("FRONTEND_ORIGIN")
	if frontendOrigin == "" {
		frontendOrigin = "http://localhost:3000"
	}

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{frontendOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	routes.AuthRoutes(r, authController, sessionStore)
	routes.IssueRoutes(r, issueController, sessionStore, issueCreateLimit())
	routes.UserRoutes(r, userController, sessionStore)
	routes.StatsRoutes(r, statsController, sessionStore)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// adminAccountFromEnv builds the seed record. The defaults mirror the demo
// credentials so a fresh environment comes up usable.
func adminAccountFromEnv() models.AdminAccount {
	account := models.AdminAccount{
		Email:    os.Getenv("ADMIN_EMAIL"),
		Password: os.Getenv("ADMIN_PASSWORD"),
		Name:     os.Getenv("ADMIN_NAME"),
	}
	if account.Email == "" {
		account.Email = "admin@civicconnect.com"
	}
	if account.Password == "" {
		account.Password = "Admin@123"
	}
	if account.Name == "" {
		account.Name = "System Administrator"
	}
	return account
}

func issueCreateLimit() int {
	limit, err := strconv.Atoi(os.Getenv("ISSUE_CREATE_LIMIT"))
	if err != nil || limit < 1 {
		return 10
	}
	return limit
}
