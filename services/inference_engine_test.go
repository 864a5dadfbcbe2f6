package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"clinic-triage-backend/models"
)

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

func TestInfer_HighFeverOutranksEverything(t *testing.T) {
	engine := NewInferenceEngine()

	decision := engine.Infer(models.SlotRecord{
		SymptomType:  strPtr("pain in chest"),
		AffectedArea: strPtr("chest"),
		Temperature:  floatPtr(39.5),
	})

	assert.Equal(t, DecisionUrgentHighFever, decision)
}

func TestInfer_FeverThresholdIsInclusive(t *testing.T) {
	engine := NewInferenceEngine()

	assert.Equal(t, DecisionUrgentHighFever, engine.Infer(models.SlotRecord{
		Temperature: floatPtr(39.0),
	}))
	assert.NotEqual(t, DecisionUrgentHighFever, engine.Infer(models.SlotRecord{
		Temperature: floatPtr(38.9),
	}))
}

func TestInfer_ChestPain(t *testing.T) {
	engine := NewInferenceEngine()

	t.Run("pain in chest escalates", func(t *testing.T) {
		decision := engine.Infer(models.SlotRecord{
			SymptomType:  strPtr("pain in chest"),
			AffectedArea: strPtr("chest"),
		})
		assert.Equal(t, DecisionUrgentChestPain, decision)
	})

	t.Run("chest area without pain does not", func(t *testing.T) {
		decision := engine.Infer(models.SlotRecord{
			SymptomType:  strPtr("cough"),
			AffectedArea: strPtr("chest"),
		})
		assert.Equal(t, DecisionRestAdvice, decision)
	})

	t.Run("pain without chest area falls through", func(t *testing.T) {
		decision := engine.Infer(models.SlotRecord{
			SymptomType: strPtr("pain in rodilla"),
			Duration:    strPtr("desde hace 2 horas"),
		})
		assert.Equal(t, DecisionGeneralConsultation, decision)
	})
}

func TestInfer_BreathingDifficulty(t *testing.T) {
	engine := NewInferenceEngine()

	decision := engine.Infer(models.SlotRecord{
		SymptomType: strPtr("difficulty breathing"),
	})
	assert.Equal(t, DecisionUrgentBreathing, decision)
}

func TestInfer_CoughDurationRules(t *testing.T) {
	engine := NewInferenceEngine()

	cases := []struct {
		name     string
		duration *string
		want     Decision
	}{
		{"a week in Spanish", strPtr("una semana"), DecisionScheduleAppointment},
		{"a week in English", strPtr("one week"), DecisionScheduleAppointment},
		{"literal seven", strPtr("7 días"), DecisionScheduleAppointment},
		{"a few days", strPtr("3 días"), DecisionRestAdvice},
		{"no duration", nil, DecisionRestAdvice},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			decision := engine.Infer(models.SlotRecord{
				SymptomType: strPtr("cough"),
				Duration:    tc.duration,
			})
			assert.Equal(t, tc.want, decision)
		})
	}
}

func TestInfer_FeverWithoutHighTemperature(t *testing.T) {
	engine := NewInferenceEngine()

	decision := engine.Infer(models.SlotRecord{
		SymptomType: strPtr("fever"),
		Temperature: floatPtr(38.2),
	})
	assert.Equal(t, DecisionMedicationAdvice, decision)
}

func TestInfer_EmptySlotsIsGeneralConsultation(t *testing.T) {
	engine := NewInferenceEngine()

	assert.Equal(t, DecisionGeneralConsultation, engine.Infer(models.SlotRecord{}))
}

func TestDecision_IsUrgent(t *testing.T) {
	urgent := []Decision{DecisionUrgentHighFever, DecisionUrgentChestPain, DecisionUrgentBreathing}
	for _, d := range urgent {
		assert.True(t, d.IsUrgent(), "%s should be urgent", d)
	}

	calm := []Decision{
		DecisionScheduleAppointment, DecisionRestAdvice,
		DecisionMedicationAdvice, DecisionGeneralConsultation,
	}
	for _, d := range calm {
		assert.False(t, d.IsUrgent(), "%s should not be urgent", d)
	}
}
