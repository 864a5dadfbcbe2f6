package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"clinic-triage-backend/models"
)

func TestClassifyIntent_Totality(t *testing.T) {
	classifier := NewIntentClassifier()

	valid := map[models.Intent]bool{
		models.IntentEmergency:      true,
		models.IntentSymptom:        true,
		models.IntentAdministrative: true,
		models.IntentGreeting:       true,
		models.IntentNoise:          true,
	}

	inputs := []string{
		"",
		"   ",
		"!!! ??? ...",
		"asdf qwer zxcv",
		"こんにちは",
		"Tengo mucho dolor en el pecho",
		"EMERGENCIA",
	}

	for _, input := range inputs {
		intent := classifier.ClassifyIntent(input)
		assert.True(t, valid[intent], "input %q produced unknown intent %q", input, intent)
	}
}

func TestClassifyIntent_EmergencyOutranksSymptom(t *testing.T) {
	classifier := NewIntentClassifier()

	// Both an emergency and a symptom keyword present: emergency wins.
	assert.Equal(t, models.IntentEmergency, classifier.ClassifyIntent("urgente, tengo fiebre"))
	assert.Equal(t, models.IntentEmergency, classifier.ClassifyIntent("I have a fever and it's an emergency"))
	assert.Equal(t, models.IntentEmergency, classifier.ClassifyIntent("dolor en el pecho, creo que es un infarto"))
}

func TestClassifyIntent_Categories(t *testing.T) {
	classifier := NewIntentClassifier()

	cases := []struct {
		message string
		want    models.Intent
	}{
		{"emergencia, no puedo respirar", models.IntentEmergency},
		{"me duele la cabeza", models.IntentSymptom},
		{"I have a terrible headache", models.IntentSymptom},
		{"llevo dos noches con insomnio", models.IntentSymptom},
		{"¿cuál es el horario de la clínica?", models.IntentAdministrative},
		{"necesito renovar mi receta", models.IntentAdministrative},
		{"I'd like to renew my prescription", models.IntentAdministrative},
		{"hola", models.IntentGreeting},
		{"good morning", models.IntentGreeting},
		{"qwerty 12345", models.IntentNoise},
	}

	for _, tc := range cases {
		t.Run(tc.message, func(t *testing.T) {
			assert.Equal(t, tc.want, classifier.ClassifyIntent(tc.message))
		})
	}
}

func TestClassifyIntent_BlankIsNoise(t *testing.T) {
	classifier := NewIntentClassifier()

	assert.Equal(t, models.IntentNoise, classifier.ClassifyIntent(""))
	assert.Equal(t, models.IntentNoise, classifier.ClassifyIntent("   \t  "))
}

func TestClassifyIntent_CaseInsensitive(t *testing.T) {
	classifier := NewIntentClassifier()

	assert.Equal(t, models.IntentEmergency, classifier.ClassifyIntent("EMERGENCIA"))
	assert.Equal(t, models.IntentSymptom, classifier.ClassifyIntent("Me Duele La Cabeza"))
}
