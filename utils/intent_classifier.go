package utils

import (
	"strings"

	"clinic-triage-backend/models"
)

// intentRule pairs an intent with its keyword list. Rules are evaluated in
// slice order and the first rule with any matching keyword wins, so an
// emergency keyword always outranks a symptom keyword even when both appear
// in the same message.
type intentRule struct {
	intent   models.Intent
	keywords []string
}

// IntentClassifier assigns one intent label per message using ordered
// keyword lists. Matching is case-insensitive substring containment; no
// tokenization or stemming. Keyword lists cover Spanish and English since
// patients write in either.
type IntentClassifier struct {
	rules []intentRule
}

func NewIntentClassifier() *IntentClassifier {
	return &IntentClassifier{
		rules: []intentRule{
			{models.IntentEmergency, []string{
				"emergencia", "emergency", "urgente", "urgent", "grave", "severe",
				"muerte", "death", "morir", "muriendo", "dying", "infarto",
				"heart attack", "accidente", "accident", "sangre", "bleeding",
				"desmayo", "fainting", "convulsiones", "seizures",
				"dificultad para respirar", "difficulty breathing",
				"no puedo respirar", "can't breathe",
			}},
			{models.IntentSymptom, []string{
				"dolor", "pain", "duele", "duelen", "hurts", "fiebre", "fever",
				"tos", "cough", "náuseas", "nausea", "mareo", "dizziness", "dizzy",
				"vómito", "vomit", "diarrea", "diarrhea", "cansancio", "tiredness",
				"tired", "fatiga", "fatigue", "insomnio", "insomnia",
				"dolor de cabeza", "headache", "dolor de estómago", "stomach ache",
			}},
			{models.IntentAdministrative, []string{
				"cita", "appointment", "horario", "schedule", "turno", "shift",
				"receta", "prescription", "factura", "invoice", "pago", "payment",
				"renovar", "renew",
			}},
			{models.IntentGreeting, []string{
				"hola", "hello", "buenos días", "good morning", "buenas tardes",
				"good afternoon", "buenas noches", "good evening", "buenas",
				"hey", "hi",
			}},
		},
	}
}

// ClassifyIntent returns exactly one of the five intents for any input,
// including empty or whitespace-only text (treated as noise).
func (ic *IntentClassifier) ClassifyIntent(message string) models.Intent {
	message = strings.ToLower(strings.TrimSpace(message))
	if message == "" {
		return models.IntentNoise
	}

	for _, rule := range ic.rules {
		if ic.containsAnyKeyword(message, rule.keywords) {
			return rule.intent
		}
	}

	return models.IntentNoise
}

func (ic *IntentClassifier) containsAnyKeyword(message string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(message, keyword) {
			return true
		}
	}
	return false
}
