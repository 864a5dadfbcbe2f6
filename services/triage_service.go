package services

import (
	"fmt"
	"strings"

	"clinic-triage-backend/models"
	"clinic-triage-backend/utils"
)

// Replies that do not depend on the turn's data.
const (
	replyEmergencyDirective = "This looks like an EMERGENCY. Please call 112 immediately. Have you called yet?"
	replyEmergencyRepeat    = "Please call 112 NOW. It is very important. Have you called?"
	replyEmergencyConfirmed = "Good, you have called 112. Stay calm, help is on the way. Do you need anything else?"
	replyAskDuration        = "How long have you had this symptom? Can you give me more details?"
	replyAskTemperature     = "What is your temperature?"
	replyAskMoreDetails     = "Can you give me more information? For example, how long have you had it?"
	replyAnythingElse       = "Is there anything else I can help you with?"
	replyRecommendClosing   = "You're welcome. If your symptoms get worse, don't hesitate to consult again. Take care!"
	replyConversationClosed = "Conversation finished. If you have more questions, I'm here."
	replyNoise              = "Hi, how can I help you? Tell me about your symptoms or questions."
	replyFallback           = "Sorry, I didn't understand that. Could you repeat it?"
)

// urgencyLabels names each urgent decision inside the escalation reply.
var urgencyLabels = map[Decision]string{
	DecisionUrgentHighFever: "a HIGH FEVER emergency",
	DecisionUrgentChestPain: "a possible HEART emergency",
	DecisionUrgentBreathing: "a RESPIRATORY emergency",
}

// recommendations holds the templated advice per non-urgent decision.
var recommendations = map[Decision]string{
	DecisionScheduleAppointment: "I recommend booking an appointment with your primary care doctor as soon as possible.",
	DecisionRestAdvice:          "Rest, drink fluids, and if you don't improve within 48 hours, see a doctor.",
	DecisionMedicationAdvice:    "You can take paracetamol if you have no contraindications. If the fever persists, see a doctor.",
	DecisionGeneralConsultation: "I suggest seeing a healthcare professional for a proper evaluation.",
}

// affirmationMarkers confirm, in the emergency state, that the patient has
// already called emergency services.
var affirmationMarkers = []string{"sí", "yes", "llamé", "llame", "called"}

// closingMarkers end a conversation from the recommending state.
var closingMarkers = []string{"gracias", "thanks", "thank you", "ok", "nada", "nothing"}

// TriageService is the dialogue controller: a finite-state machine driving
// one triage conversation per session. Each turn takes one patient message,
// mutates the given session context in place and returns exactly one reply.
// The service itself is stateless and safe to share across sessions; the
// caller serializes turns against the same session.
type TriageService struct {
	intentClassifier *utils.IntentClassifier
	entityExtractor  *utils.EntityExtractor
	inferenceEngine  *InferenceEngine
	clinicInfo       map[string]string
}

// NewTriageService wires the classifier, extractor and inference engine.
// The recognizer may be nil; area detection then relies on the body-part
// vocabulary alone.
func NewTriageService(recognizer utils.EntityRecognizer, clinicName, clinicPhone string) *TriageService {
	return &TriageService{
		intentClassifier: utils.NewIntentClassifier(),
		entityExtractor:  utils.NewEntityExtractor(recognizer),
		inferenceEngine:  NewInferenceEngine(),
		clinicInfo: map[string]string{
			"name":  clinicName,
			"phone": clinicPhone,
		},
	}
}

// Classify exposes bare intent classification for the legacy endpoint.
func (s *TriageService) Classify(message string) models.Intent {
	return s.intentClassifier.ClassifyIntent(message)
}

// ResetSession restores the session to its initial values.
func (s *TriageService) ResetSession(session *models.SessionContext) {
	session.Reset()
}

// ProcessTurn runs one dialogue turn. It always returns a non-empty reply
// and leaves the session in one of the five valid states, for any input
// string.
func (s *TriageService) ProcessTurn(session *models.SessionContext, message string) string {
	return s.processTurn(session, message, 0)
}

// processTurn carries a depth counter bounding the re-entrant dispatch from
// the recommending state to a single extra pass: after a reset the session
// is idle, and the idle branch never re-dispatches.
func (s *TriageService) processTurn(session *models.SessionContext, message string, depth int) string {
	lower := strings.ToLower(message)

	switch session.State {
	case models.StateIdle:
		intent := s.intentClassifier.ClassifyIntent(message)
		session.CurrentIntent = intent

		switch intent {
		case models.IntentEmergency:
			session.State = models.StateEmergency
			return replyEmergencyDirective
		case models.IntentSymptom:
			session.State = models.StateGatheringInfo
			session.Slots.Merge(s.entityExtractor.Extract(message))
			return replyAskDuration
		case models.IntentAdministrative:
			return fmt.Sprintf("For administrative matters, please contact %s reception at %s.",
				s.clinicInfo["name"], s.clinicInfo["phone"])
		case models.IntentGreeting:
			return fmt.Sprintf("Hello! Welcome to %s. I'm your medical assistant. How can I help you today?",
				s.clinicInfo["name"])
		default:
			return replyNoise
		}

	case models.StateGatheringInfo:
		session.Slots.Merge(s.entityExtractor.Extract(message))
		slots := session.Slots

		if slots.SymptomType != nil {
			if strings.Contains(*slots.SymptomType, "fever") && slots.Temperature == nil {
				return replyAskTemperature
			}
			if slots.Duration != nil || slots.Temperature != nil {
				decision := s.inferenceEngine.Infer(slots)
				if decision.IsUrgent() {
					session.State = models.StateEmergency
					return fmt.Sprintf("Based on your symptoms, this is %s. Please call 112 immediately.",
						urgencyLabels[decision])
				}
				session.State = models.StateRecommending
				return fmt.Sprintf("I see. %s", s.recommendationText(decision))
			}
		}
		return replyAskMoreDetails

	case models.StateEmergency:
		if containsAny(lower, affirmationMarkers) {
			session.State = models.StateClosing
			return replyEmergencyConfirmed
		}
		return replyEmergencyRepeat

	case models.StateRecommending:
		intent := s.intentClassifier.ClassifyIntent(message)
		if intent == models.IntentSymptom || intent == models.IntentEmergency {
			// New complaint: start over and handle this message as fresh.
			if depth == 0 {
				session.Reset()
				return s.processTurn(session, message, depth+1)
			}
			return replyAnythingElse
		}
		if containsAny(lower, closingMarkers) {
			session.State = models.StateClosing
			return replyRecommendClosing
		}
		return replyAnythingElse

	case models.StateClosing:
		session.Reset()
		return replyConversationClosed
	}

	// Unreachable while the state enum stays closed; kept so a corrupted
	// session still produces a reply instead of a fault.
	return replyFallback
}

func (s *TriageService) recommendationText(decision Decision) string {
	if text, ok := recommendations[decision]; ok {
		return text
	}
	return "Please consult a doctor."
}

func containsAny(message string, markers []string) bool {
	for _, marker := range markers {
		if strings.Contains(message, marker) {
			return true
		}
	}
	return false
}
