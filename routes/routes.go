package routes

import (
	"github.com/gin-gonic/gin"

	"clinic-triage-backend/config"
	"clinic-triage-backend/controllers"
	"clinic-triage-backend/database"
	"clinic-triage-backend/middleware"
	"clinic-triage-backend/services"
	"clinic-triage-backend/session"
	"clinic-triage-backend/utils"
)

// SetupRoutes wires services and controllers onto the router. The session
// store is injected since its backend (memory or Redis) is chosen in main.
func SetupRoutes(router *gin.Engine, store session.Store) {
	cfg := config.Get()

	// Initialize services
	recognizer := utils.NewGazetteerRecognizer()
	triageService := services.NewTriageService(recognizer, cfg.Clinic.Name, cfg.Clinic.Phone)
	transcriptService := services.NewTranscriptService(database.GetMongoDB())

	// Initialize controllers
	chatController := controllers.NewChatController(store, triageService, transcriptService)
	wsController := controllers.NewWebSocketController(store, triageService, transcriptService)

	// Public routes
	public := router.Group("/api/v1")
	public.Use(middleware.SessionID(cfg.Session.TTL))
	{
		// One triage turn per request
		public.POST("/chat", chatController.HandleChat)

		// Conversation lifecycle
		public.POST("/reset", chatController.HandleReset)
		public.GET("/history", chatController.GetHistory)

		// Classification without dialogue state (legacy)
		public.GET("/classify", chatController.HandleClassify)
		public.GET("/intents", chatController.GetSupportedIntents)

		// WebSocket for real-time chat
		public.GET("/ws", wsController.HandleWebSocket)
	}

	// 404 handler
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error": "Route not found",
			"path":  c.Request.URL.Path,
		})
	})
}
