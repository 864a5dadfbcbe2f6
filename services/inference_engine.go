package services

import (
	"strings"

	"clinic-triage-backend/models"
)

// Decision is the inference engine's output label: either an urgency
// sub-type or a recommendation category.
type Decision string

const (
	DecisionUrgentHighFever     Decision = "urgent_high_fever"
	DecisionUrgentChestPain     Decision = "urgent_chest_pain"
	DecisionUrgentBreathing     Decision = "urgent_breathing_difficulty"
	DecisionScheduleAppointment Decision = "schedule_appointment"
	DecisionRestAdvice          Decision = "rest_advice"
	DecisionMedicationAdvice    Decision = "medication_advice"
	DecisionGeneralConsultation Decision = "general_consultation"
)

// IsUrgent reports whether the decision requires emergency handling rather
// than a recommendation.
func (d Decision) IsUrgent() bool {
	switch d {
	case DecisionUrgentHighFever, DecisionUrgentChestPain, DecisionUrgentBreathing:
		return true
	}
	return false
}

// highFeverThreshold is the temperature (°C) at or above which a fever is
// treated as an emergency on its own.
const highFeverThreshold = 39.0

// InferenceEngine maps a slot record to a decision by evaluating a fixed
// rule list in order; the first satisfied rule wins. It is pure and
// deterministic: same slots, same decision.
type InferenceEngine struct{}

func NewInferenceEngine() *InferenceEngine {
	return &InferenceEngine{}
}

// Infer applies the urgency rules first, then the recommendation rules.
func (e *InferenceEngine) Infer(slots models.SlotRecord) Decision {
	symptom := ""
	if slots.SymptomType != nil {
		symptom = *slots.SymptomType
	}

	if slots.Temperature != nil && *slots.Temperature >= highFeverThreshold {
		return DecisionUrgentHighFever
	}
	if slots.AffectedArea != nil && *slots.AffectedArea == "chest" && strings.Contains(symptom, "pain") {
		return DecisionUrgentChestPain
	}
	if strings.Contains(symptom, "difficulty breathing") {
		return DecisionUrgentBreathing
	}

	if strings.Contains(symptom, "cough") {
		if slots.Duration != nil && durationSuggestsWeek(*slots.Duration) {
			return DecisionScheduleAppointment
		}
		return DecisionRestAdvice
	}
	if strings.Contains(symptom, "fever") {
		return DecisionMedicationAdvice
	}

	return DecisionGeneralConsultation
}

// durationSuggestsWeek is true when the verbatim duration span mentions a
// week (either language) or the literal digit 7.
func durationSuggestsWeek(duration string) bool {
	return strings.Contains(duration, "semana") ||
		strings.Contains(duration, "week") ||
		strings.Contains(duration, "7")
}
