package controllers

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"clinic-triage-backend/middleware"
	"clinic-triage-backend/models"
	"clinic-triage-backend/services"
	"clinic-triage-backend/session"
)

type ChatController struct {
	store       session.Store
	triage      *services.TriageService
	transcripts *services.TranscriptService
}

func NewChatController(store session.Store, triage *services.TriageService, transcripts *services.TranscriptService) *ChatController {
	return &ChatController{
		store:       store,
		triage:      triage,
		transcripts: transcripts,
	}
}

// HandleChat runs one triage turn: load the session, process the message,
// persist the updated session and log the transcript entry.
func (cc *ChatController) HandleChat(c *gin.Context) {
	var req models.ChatRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request format",
			"details": err.Error(),
		})
		return
	}

	message := strings.TrimSpace(req.Message)
	if message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Empty message"})
		return
	}

	sessionID := cc.resolveSessionID(c, req.SessionID)
	ctx := c.Request.Context()

	sess, err := cc.store.Load(ctx, sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to load session",
			"details": err.Error(),
		})
		return
	}

	reply := cc.triage.ProcessTurn(sess, message)

	if err := cc.store.Save(ctx, sessionID, sess); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to save session",
			"details": err.Error(),
		})
		return
	}

	channel := req.Channel
	if channel == "" {
		channel = models.ChannelWeb
	}
	if err := cc.transcripts.LogTurn(ctx, &models.Message{
		SessionID:   sessionID,
		UserMessage: message,
		BotResponse: reply,
		Intent:      sess.CurrentIntent,
		State:       sess.State,
		Channel:     channel,
	}); err != nil {
		// Transcripts are best-effort; the turn already succeeded.
		log.Printf("Failed to log transcript for session %s: %v", sessionID, err)
	}

	c.JSON(http.StatusOK, models.ChatResponse{
		Response:  reply,
		Intent:    sess.CurrentIntent,
		State:     sess.State,
		Slots:     sess.Slots,
		SessionID: sessionID,
	})
}

// HandleReset clears the session so the next message starts a fresh
// conversation in the initial state.
func (cc *ChatController) HandleReset(c *gin.Context) {
	var req struct {
		SessionID string `json:"session_id"`
	}
	// Body is optional; the cookie id is used when absent.
	_ = c.ShouldBindJSON(&req)

	sessionID := cc.resolveSessionID(c, req.SessionID)
	if err := cc.store.Clear(c.Request.Context(), sessionID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to reset session",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Conversation reset",
		"session_id": sessionID,
	})
}

// HandleClassify returns the bare intent label for a piece of text without
// touching any session.
func (cc *ChatController) HandleClassify(c *gin.Context) {
	text := c.Query("text")
	if strings.TrimSpace(text) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query parameter 'text' is empty"})
		return
	}

	c.JSON(http.StatusOK, models.ClassifyResponse{
		Label:   cc.triage.Classify(text),
		Message: text,
	})
}

// GetHistory returns the persisted transcript for a session, oldest first.
func (cc *ChatController) GetHistory(c *gin.Context) {
	sessionID := cc.resolveSessionID(c, c.Query("session_id"))

	limit := int64(50)
	if limitStr := c.Query("limit"); limitStr != "" {
		if l, err := strconv.ParseInt(limitStr, 10, 64); err == nil && l > 0 {
			limit = l
		}
	}

	history, err := cc.transcripts.History(c.Request.Context(), sessionID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve chat history",
		})
		return
	}
	if history == nil {
		history = []models.Message{}
	}

	c.JSON(http.StatusOK, gin.H{
		"session_id": sessionID,
		"history":    history,
		"count":      len(history),
		"persisted":  cc.transcripts.Enabled(),
	})
}

// GetSupportedIntents returns the list of supported intents.
func (cc *ChatController) GetSupportedIntents(c *gin.Context) {
	intents := []map[string]interface{}{
		{
			"intent":      models.IntentEmergency,
			"description": "Emergency situations needing immediate escalation",
			"examples": []string{
				"emergencia, no puedo respirar",
				"I think it's a heart attack",
			},
		},
		{
			"intent":      models.IntentSymptom,
			"description": "Symptom reports that start information gathering",
			"examples": []string{
				"Tengo mucho dolor en el pecho",
				"I've had a cough for a week",
			},
		},
		{
			"intent":      models.IntentAdministrative,
			"description": "Appointments, prescriptions, invoices and other reception matters",
			"examples": []string{
				"¿cuál es el horario de la clínica?",
				"I need to renew my prescription",
			},
		},
		{
			"intent":      models.IntentGreeting,
			"description": "Salutations that open a conversation",
			"examples": []string{
				"hola",
				"good morning",
			},
		},
		{
			"intent":      models.IntentNoise,
			"description": "Anything the classifier cannot place (catch-all)",
			"examples": []string{
				"asdfgh",
			},
		},
	}

	c.JSON(http.StatusOK, gin.H{"intents": intents})
}

// resolveSessionID prefers an explicit id, then the middleware cookie id,
// then mints a new one.
func (cc *ChatController) resolveSessionID(c *gin.Context, explicit string) string {
	if explicit != "" {
		return explicit
	}
	if id := c.GetString(middleware.ContextSessionID); id != "" {
		return id
	}
	return uuid.NewString()
}
