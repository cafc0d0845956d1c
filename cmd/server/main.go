package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/calendar-api/internal/config"
	"github.com/yukikurage/calendar-api/internal/database"
	"github.com/yukikurage/calendar-api/internal/handlers"
	"github.com/yukikurage/calendar-api/internal/middleware"
	"github.com/yukikurage/calendar-api/internal/repository"
	"github.com/yukikurage/calendar-api/internal/services"
	"github.com/yukikurage/calendar-api/internal/token"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Secondary indexes; the existence check queries pg_indexes
	if cfg.DBDriver == "postgres" {
		if err := database.AddIndexes(database.GetDB()); err != nil {
			log.Fatalf("Failed to add indexes: %v", err)
		}
	}

	// Token manager holds the signing secret for the process lifetime
	tokens := token.NewManager(cfg.JWTSecret, cfg.JWTExpiry)

	// Initialize repositories and services
	db := database.GetDB()
	userRepo := repository.NewUserRepository(db)
	eventRepo := repository.NewEventRepository(db)
	todoRepo := repository.NewTodoRepository(db)

	authService := services.NewAuthService(userRepo, tokens)
	eventService := services.NewEventService(eventRepo)
	todoService := services.NewTodoService(todoRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	eventHandler := handlers.NewEventHandler(eventService)
	todoHandler := handlers.NewTodoHandler(todoService)

	// Initialize Gin router
	r := gin.Default()

	// API routes
	api := r.Group("/api")
	{
		// Health check endpoint
		api.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"success": true,
				"message": "Server is running",
			})
		})

		// Auth routes (register/login public, profile protected)
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.GET("/profile", middleware.RequireAuth(tokens), authHandler.GetProfile)
		}

		// Event routes (protected)
		events := api.Group("/events")
		events.Use(middleware.RequireAuth(tokens))
		{
			events.GET("", eventHandler.ListEvents)
			events.GET("/range", eventHandler.ListEventsByRange)
			events.GET("/date/:eventDate", eventHandler.ListEventsByDate)
			events.POST("", eventHandler.CreateEvent)
			events.GET("/:id", eventHandler.GetEvent)
			events.PUT("/:id", eventHandler.UpdateEvent)
			events.DELETE("/:id", eventHandler.DeleteEvent)
		}

		// Todo routes (protected)
		todos := api.Group("/todos")
		todos.Use(middleware.RequireAuth(tokens))
		{
			todos.GET("", todoHandler.ListTodos)
			todos.POST("", todoHandler.CreateTodo)
			todos.GET("/:id", todoHandler.GetTodo)
			todos.PUT("/:id", todoHandler.UpdateTodo)
			todos.DELETE("/:id", todoHandler.DeleteTodo)
		}
	}

	// Unknown routes get the same JSON error shape as everything else
	r.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"success": false,
			"message": "Route not found",
		})
	})

	// Start server
	log.Printf("Server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
