package controllers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"clinic-triage-backend/models"
	"clinic-triage-backend/services"
	"clinic-triage-backend/session"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Configure properly for production
	},
}

type WebSocketController struct {
	store       session.Store
	triage      *services.TriageService
	transcripts *services.TranscriptService
}

func NewWebSocketController(store session.Store, triage *services.TriageService, transcripts *services.TranscriptService) *WebSocketController {
	return &WebSocketController{
		store:       store,
		triage:      triage,
		transcripts: transcripts,
	}
}

// HandleWebSocket runs the same one-turn semantics as the HTTP chat
// endpoint, one turn per frame, over a single connection. All frames on a
// connection share one session, so turns stay serialized per session.
func (wc *WebSocketController) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Println("WebSocket upgrade error:", err)
		return
	}
	defer conn.Close()

	sessionID := c.Query("session_id")
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	ctx := c.Request.Context()

	for {
		var frame map[string]string
		if err := conn.ReadJSON(&frame); err != nil {
			log.Println("Read error:", err)
			break
		}

		message := strings.TrimSpace(frame["message"])
		if message == "" {
			conn.WriteJSON(map[string]interface{}{"error": "Empty message"})
			continue
		}

		sess, err := wc.store.Load(ctx, sessionID)
		if err != nil {
			conn.WriteJSON(map[string]interface{}{"error": "Failed to load session"})
			continue
		}

		reply := wc.triage.ProcessTurn(sess, message)

		if err := wc.store.Save(ctx, sessionID, sess); err != nil {
			conn.WriteJSON(map[string]interface{}{"error": "Failed to save session"})
			continue
		}

		if err := wc.transcripts.LogTurn(ctx, &models.Message{
			SessionID:   sessionID,
			UserMessage: message,
			BotResponse: reply,
			Intent:      sess.CurrentIntent,
			State:       sess.State,
			Channel:     models.ChannelWebSocket,
		}); err != nil {
			log.Printf("Failed to log transcript for session %s: %v", sessionID, err)
		}

		conn.WriteJSON(models.ChatResponse{
			Response:  reply,
			Intent:    sess.CurrentIntent,
			State:     sess.State,
			Slots:     sess.Slots,
			SessionID: sessionID,
		})
	}
}
