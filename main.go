package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"clinic-triage-backend/config"
	"clinic-triage-backend/database"
	"clinic-triage-backend/routes"
	"clinic-triage-backend/session"
)

func main() {
	// Load configuration
	if err := config.Load(); err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	cfg := config.Get()

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database. Transcript persistence is optional: the triage
	// engine keeps working without it.
	if cfg.Database.Enabled {
		if err := database.Connect(cfg); err != nil {
			log.Printf("WARNING: transcript persistence disabled: %v", err)
		} else {
			defer database.Disconnect()
		}
	} else {
		log.Println("Transcript persistence disabled by configuration")
	}

	// Build the session store
	store, err := buildSessionStore(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize session store: %v", err)
	}
	defer store.Close()

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "http://localhost:3000")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		status := "ok"
		dbErr := database.HealthCheck()
		storeErr := store.Ping(c.Request.Context())
		if dbErr != nil || storeErr != nil {
			status = "degraded"
		}
		c.JSON(200, gin.H{
			"status":        status,
			"timestamp":     time.Now(),
			"session_store": cfg.Session.StoreType,
			"database_ok":   dbErr == nil,
			"store_ok":      storeErr == nil,
		})
	})

	// Setup all routes
	routes.SetupRoutes(router, store)

	// Log available endpoints
	logAvailableEndpoints(router)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Server starting on port %s", cfg.Port)
		log.Printf("Health check: http://localhost:%s/health", cfg.Port)
		log.Printf("Chat endpoint: http://localhost:%s/api/v1/chat", cfg.Port)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}

// buildSessionStore picks the configured session store backend.
func buildSessionStore(cfg *config.Config) (session.Store, error) {
	switch cfg.Session.StoreType {
	case "redis":
		return session.NewRedisStore(cfg.Session.RedisURL, cfg.Session.TTL)
	default:
		return session.NewMemoryStore(cfg.Session.TTL), nil
	}
}

// logAvailableEndpoints logs all registered routes
func logAvailableEndpoints(router *gin.Engine) {
	log.Println("\nAvailable endpoints:")
	for _, route := range router.Routes() {
		log.Printf("  %s %s", route.Method, route.Path)
	}
	log.Println("")
}
