package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sawamura/exercise-tracker-api/internal/config"
	"github.com/sawamura/exercise-tracker-api/internal/database"
	apierrors "github.com/sawamura/exercise-tracker-api/internal/errors"
	"github.com/sawamura/exercise-tracker-api/internal/handlers"
	"github.com/sawamura/exercise-tracker-api/internal/logger"
	"github.com/sawamura/exercise-tracker-api/internal/repository"
	"github.com/sawamura/exercise-tracker-api/internal/services"
)

const landingPage = `<!DOCTYPE html>
<html>
<head><title>Exercise Tracker</title></head>
<body>
<h1>Exercise Tracker API</h1>
<ul>
<li>POST /api/exercise/new-user</li>
<li>POST /api/exercise/add</li>
<li>GET /api/exercise/log?userId=...&amp;from=...&amp;to=...&amp;limit=...</li>
</ul>
</body>
</html>`

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.New(0).Fatal("failed to load configuration", "error", err)
	}

	log := logger.New(cfg.LogLevel)

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal("failed to connect to database", "error", err)
	}

	// Run migrations
	if err := database.Migrate(db); err != nil {
		log.Fatal("failed to run migrations", "error", err)
	}

	// Initialize repositories and services
	userRepo := repository.NewUserRepository(db)
	exerciseRepo := repository.NewExerciseRepository(db)

	timeout := cfg.Database.Timeout()
	userService := services.NewUserService(userRepo, timeout)
	exerciseService := services.NewExerciseService(exerciseRepo, userService, timeout)
	logService := services.NewLogService(exerciseRepo, userService, timeout)

	// Initialize handlers
	userHandler := handlers.NewUserHandler(userService)
	exerciseHandler := handlers.NewExerciseHandler(exerciseService, logService)

	// Initialize Gin router
	r := gin.Default()

	// Landing page
	r.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(landingPage))
	})

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Exercise Tracker API is running",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		exercise := api.Group("/exercise")
		{
			exercise.POST("/new-user", userHandler.CreateUser)
			exercise.POST("/add", exerciseHandler.AddExercise)
			exercise.GET("/log", exerciseHandler.GetLog)
		}
	}

	// Unmatched routes
	r.NoRoute(func(c *gin.Context) {
		apierrors.NotFound(c, "not found")
	})

	// Start server
	log.Info("server starting", "port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("failed to start server", "error", err)
	}
}
