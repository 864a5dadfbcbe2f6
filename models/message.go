package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Intent is the coarse-grained purpose category assigned to one message.
type Intent string

const (
	IntentEmergency      Intent = "emergency"
	IntentSymptom        Intent = "symptom"
	IntentAdministrative Intent = "administrative"
	IntentGreeting       Intent = "greeting"
	IntentNoise          Intent = "noise"
)

// MessageChannel represents the communication channel a turn arrived on.
type MessageChannel string

const (
	ChannelWeb       MessageChannel = "web"
	ChannelWebSocket MessageChannel = "websocket"
)

// Message is one persisted conversation turn: a patient message plus the
// reply the triage engine produced for it.
type Message struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SessionID   string             `bson:"session_id" json:"session_id"`
	UserMessage string             `bson:"user_message" json:"user_message"`
	BotResponse string             `bson:"bot_response" json:"bot_response"`
	Intent      Intent             `bson:"intent" json:"intent"`
	State       DialogueState      `bson:"state" json:"state"`
	Channel     MessageChannel     `bson:"channel,omitempty" json:"channel,omitempty"`
	Timestamp   time.Time          `bson:"timestamp" json:"timestamp"`
}

// ChatRequest is the inbound payload for one turn. SessionID may be empty
// when the session middleware supplies an id via cookie instead.
type ChatRequest struct {
	Message   string         `json:"message" binding:"required"`
	SessionID string         `json:"session_id"`
	Channel   MessageChannel `json:"channel,omitempty"`
}

// ChatResponse is the response envelope for one turn: the reply text plus a
// snapshot of the session after the turn, so clients can render the state
// and the slots collected so far.
type ChatResponse struct {
	Response  string        `json:"response"`
	Intent    Intent        `json:"intent"`
	State     DialogueState `json:"state"`
	Slots     SlotRecord    `json:"slots"`
	SessionID string        `json:"session_id"`
}

// ClassifyResponse is the envelope for the bare classification endpoint.
type ClassifyResponse struct {
	Label   Intent `json:"label"`
	Message string `json:"message"`
}
