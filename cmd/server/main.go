package main

import (
	"context" // context package is needed for Redis operations
	"log"     // log package is needed for logging
	"time"    // Cache TTL duration

	"lifedash/internal/api"        // Custom package for API handlers
	"lifedash/internal/config"     // Custom package for configuration
	"lifedash/internal/middleware" // Custom package for middleware

	// For loading .env files
	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
	"gorm.io/driver/mysql"         // MySQL driver for GORM
	"gorm.io/gorm"                 // GORM ORM library
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Setup Data Source Name (DSN) and connect to the database
	dsn := cfg.DBUser + ":" + cfg.DBPassword + "@tcp(" + cfg.DBHost + ":" + cfg.DBPort + ")/" + cfg.DBName + "?parseTime=true"
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}

	// Setup Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr, // Redis server address
		Password: cfg.RedisPass, // Redis password
		DB:       cfg.RedisDB,   // Redis database number
	})

	// Test Redis connection
	_, err = redisClient.Ping(context.Background()).Result()
	if err != nil {
		logrus.Fatalf("failed to connect to Redis: %v", err)
	}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin
	r := gin.Default() // Gin router instance

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	cacheTTL := time.Duration(cfg.CacheTTL) * time.Second // Derived-view cache TTL

	// Auth routes
	r.POST("/auth/register", api.RegisterHandler(db))            // Registration endpoint
	r.POST("/auth/login", api.LoginHandler(db, cfg.JWTSecret))   // Login endpoint

	// Session routes (protected by JWT)
	authGroup := r.Group("/auth")
	authGroup.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret, redisClient), middleware.RequireUserMiddleware(db))
	authGroup.GET("/me", api.MeHandler())               // Current user endpoint
	authGroup.POST("/logout", api.LogoutHandler(redisClient)) // Sign-out endpoint

	// All life-dashboard routes (protected by JWT)
	apiGroup := r.Group("/api")
	// Protect routes with JWT middleware and inject Redis client into context
	apiGroup.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret, redisClient), func(c *gin.Context) {
		c.Set("redisClient", redisClient)
		c.Next()
	})

	// Finances
	apiGroup.GET("/transactions", api.ListTransactionsHandler(db, redisClient, cacheTTL)) // List transactions endpoint
	apiGroup.POST("/transactions", api.CreateTransactionHandler(db))                      // Create transaction endpoint
	apiGroup.PUT("/transactions/:id", api.UpdateTransactionHandler(db))                   // Update transaction endpoint
	apiGroup.DELETE("/transactions/:id", api.DeleteTransactionHandler(db))                // Delete transaction endpoint
	apiGroup.GET("/finances/summary", api.FinanceSummaryHandler(db))                      // Financial rollup endpoint
	apiGroup.GET("/goals", api.ListGoalsHandler(db))                                      // List goals endpoint
	apiGroup.POST("/goals", api.CreateGoalHandler(db))                                    // Create goal endpoint
	apiGroup.PUT("/goals/:id", api.UpdateGoalHandler(db))                                 // Update goal endpoint
	apiGroup.DELETE("/goals/:id", api.DeleteGoalHandler(db))                              // Delete goal endpoint

	// Library
	apiGroup.GET("/library", api.ListLibraryHandler(db))              // List library items endpoint
	apiGroup.POST("/library", api.CreateLibraryItemHandler(db))       // Create library item endpoint
	apiGroup.PUT("/library/:id", api.UpdateLibraryItemHandler(db))    // Update library item endpoint
	apiGroup.DELETE("/library/:id", api.DeleteLibraryItemHandler(db)) // Delete library item endpoint
	apiGroup.GET("/library/summary", api.LibrarySummaryHandler(db))   // Library rollup endpoint

	// Contacts
	apiGroup.GET("/contacts", api.ListContactsHandler(db))             // List contacts endpoint
	apiGroup.GET("/contacts/upcoming", api.UpcomingContactsHandler(db)) // Upcoming follow-ups endpoint
	apiGroup.POST("/contacts", api.CreateContactHandler(db))           // Create contact endpoint
	apiGroup.PUT("/contacts/:id", api.UpdateContactHandler(db))        // Update contact endpoint
	apiGroup.DELETE("/contacts/:id", api.DeleteContactHandler(db))     // Delete contact endpoint

	// Objectives and key results
	apiGroup.GET("/objectives", api.ListObjectivesHandler(db))              // List objectives endpoint
	apiGroup.GET("/objectives/summary", api.ObjectivesSummaryHandler(db))   // At-risk rollup endpoint
	apiGroup.POST("/objectives", api.CreateObjectiveHandler(db))            // Create objective endpoint
	apiGroup.PUT("/objectives/:id", api.UpdateObjectiveHandler(db))         // Update objective endpoint
	apiGroup.DELETE("/objectives/:id", api.DeleteObjectiveHandler(db))      // Delete objective endpoint
	apiGroup.GET("/key-results", api.ListKeyResultsHandler(db))             // List key results endpoint
	apiGroup.POST("/key-results", api.CreateKeyResultHandler(db))           // Create key result endpoint
	apiGroup.PUT("/key-results/:id", api.UpdateKeyResultHandler(db))        // Update key result endpoint
	apiGroup.DELETE("/key-results/:id", api.DeleteKeyResultHandler(db))     // Delete key result endpoint

	// Projects and tasks
	apiGroup.GET("/projects", api.ListProjectsHandler(db))             // List projects endpoint
	apiGroup.GET("/projects/timeline", api.ProjectTimelineHandler(db)) // Timeline rollup endpoint
	apiGroup.POST("/projects", api.CreateProjectHandler(db))           // Create project endpoint
	apiGroup.PUT("/projects/:id", api.UpdateProjectHandler(db))        // Update project endpoint
	apiGroup.DELETE("/projects/:id", api.DeleteProjectHandler(db))     // Delete project endpoint
	apiGroup.GET("/tasks", api.ListTasksHandler(db))                   // List tasks endpoint
	apiGroup.GET("/tasks/board", api.TaskBoardHandler(db))             // Kanban view endpoint
	apiGroup.POST("/tasks", api.CreateTaskHandler(db))                 // Create task endpoint
	apiGroup.PUT("/tasks/:id", api.UpdateTaskHandler(db))              // Update task endpoint
	apiGroup.DELETE("/tasks/:id", api.DeleteTaskHandler(db))           // Delete task endpoint
	apiGroup.POST("/tasks/:id/advance", api.AdvanceTaskHandler(db))    // Move task forward endpoint
	apiGroup.POST("/tasks/:id/revert", api.RevertTaskHandler(db))      // Move task backward endpoint

	// Habits
	apiGroup.GET("/habits", api.ListHabitsHandler(db))          // List habits endpoint
	apiGroup.GET("/habits/day", api.HabitDayHandler(db))        // Day view with rollup endpoint
	apiGroup.POST("/habits", api.CreateHabitHandler(db))        // Create habit endpoint
	apiGroup.PUT("/habits/:id", api.UpdateHabitHandler(db))     // Update habit endpoint
	apiGroup.DELETE("/habits/:id", api.DeleteHabitHandler(db))  // Delete habit endpoint
	apiGroup.POST("/habits/:id/log", api.LogHabitHandler(db))   // Upsert habit log endpoint

	// Dashboard composite
	apiGroup.GET("/dashboard", api.DashboardHandler(db, redisClient, cacheTTL)) // Snapshot endpoint

	log.Println("Server running on " + cfg.AppPort) // Log server start
	r.Run(":" + cfg.AppPort)                        // Start the server on port cfg.AppPort
}
