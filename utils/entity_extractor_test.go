package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinic-triage-backend/models"
)

func TestExtract_PainWithLocation(t *testing.T) {
	extractor := NewEntityExtractor(nil)

	record := extractor.Extract("Tengo mucho dolor en el pecho")

	require.NotNil(t, record.SymptomType)
	assert.Equal(t, "pain in chest", *record.SymptomType)

	// The captured location cross-populates the area slot.
	require.NotNil(t, record.AffectedArea)
	assert.Equal(t, "chest", *record.AffectedArea)

	require.NotNil(t, record.PerceivedSeverity)
	assert.Equal(t, models.SeveritySevere, *record.PerceivedSeverity)

	assert.Nil(t, record.Duration)
	assert.Nil(t, record.Temperature)
}

func TestExtract_MeDuelePattern(t *testing.T) {
	extractor := NewEntityExtractor(nil)

	record := extractor.Extract("me duele la cabeza desde ayer")

	require.NotNil(t, record.SymptomType)
	assert.Equal(t, "pain in head", *record.SymptomType)

	require.NotNil(t, record.Duration)
	assert.Equal(t, "desde ayer", *record.Duration)
}

func TestExtract_EnglishPainPattern(t *testing.T) {
	extractor := NewEntityExtractor(nil)

	record := extractor.Extract("I've had pain in my chest since yesterday")

	require.NotNil(t, record.SymptomType)
	assert.Equal(t, "pain in chest", *record.SymptomType)
	require.NotNil(t, record.AffectedArea)
	assert.Equal(t, "chest", *record.AffectedArea)
	require.NotNil(t, record.Duration)
	assert.Equal(t, "since yesterday", *record.Duration)
}

func TestExtract_AilmentsNormalize(t *testing.T) {
	extractor := NewEntityExtractor(nil)

	cases := []struct {
		message string
		want    string
	}{
		{"tengo fiebre", "fever"},
		{"I think I have a fever", "fever"},
		{"tengo tos", "cough"},
		{"a dry cough", "cough"},
		{"no puedo respirar", "difficulty breathing"},
		{"dificultad para respirar", "difficulty breathing"},
		{"tengo náuseas", "nausea"},
		{"llevo días con insomnio", "insomnia"},
		{"siento mareo al levantarme", "dizziness"},
	}

	for _, tc := range cases {
		t.Run(tc.message, func(t *testing.T) {
			record := extractor.Extract(tc.message)
			require.NotNil(t, record.SymptomType)
			assert.Equal(t, tc.want, *record.SymptomType)
		})
	}
}

func TestExtract_FirstSymptomPatternWins(t *testing.T) {
	extractor := NewEntityExtractor(nil)

	// Pain patterns precede ailment patterns, so "dolor en el pecho" wins
	// over the fever mention.
	record := extractor.Extract("tengo fiebre y dolor en el pecho")

	require.NotNil(t, record.SymptomType)
	assert.Equal(t, "pain in chest", *record.SymptomType)
}

func TestExtract_Duration(t *testing.T) {
	extractor := NewEntityExtractor(nil)

	cases := []struct {
		message string
		want    string
	}{
		{"desde hace 2 horas", "desde hace 2 horas"},
		{"for about 3 days now", "3 days"},
		{"llevo una semana fatal", "una semana"},
		{"empezó anoche", "anoche"},
		{"it started an hour ago", "an hour ago"},
		{"hace dos horas", "hace dos horas"},
	}

	for _, tc := range cases {
		t.Run(tc.message, func(t *testing.T) {
			record := extractor.Extract(tc.message)
			require.NotNil(t, record.Duration)
			assert.Equal(t, tc.want, *record.Duration)
		})
	}
}

func TestExtract_Temperature(t *testing.T) {
	extractor := NewEntityExtractor(nil)

	t.Run("comma decimal separator", func(t *testing.T) {
		record := extractor.Extract("tengo 38,5 grados")
		require.NotNil(t, record.Temperature)
		assert.InDelta(t, 38.5, *record.Temperature, 0.001)
	})

	t.Run("period decimal separator", func(t *testing.T) {
		record := extractor.Extract("my temperature is 39.2 degrees")
		require.NotNil(t, record.Temperature)
		assert.InDelta(t, 39.2, *record.Temperature, 0.001)
	})

	t.Run("degree symbol", func(t *testing.T) {
		record := extractor.Extract("estoy a 40°C")
		require.NotNil(t, record.Temperature)
		assert.InDelta(t, 40.0, *record.Temperature, 0.001)
	})

	t.Run("plain number is not a temperature", func(t *testing.T) {
		record := extractor.Extract("somos 38 personas")
		assert.Nil(t, record.Temperature)
	})
}

func TestExtract_Severity(t *testing.T) {
	extractor := NewEntityExtractor(nil)

	cases := []struct {
		message string
		want    models.Severity
	}{
		{"me duele la cabeza, es leve", models.SeverityMild},
		{"un malestar moderado", models.SeverityModerate},
		{"es un dolor muy fuerte", models.SeveritySevere},
		{"it hurts a lot", models.SeveritySevere},
		{"just a little discomfort", models.SeverityMild},
	}

	for _, tc := range cases {
		t.Run(tc.message, func(t *testing.T) {
			record := extractor.Extract(tc.message)
			require.NotNil(t, record.PerceivedSeverity)
			assert.Equal(t, tc.want, *record.PerceivedSeverity)
		})
	}
}

func TestExtract_AreaVocabularyWithoutRecognizer(t *testing.T) {
	// No recognizer configured: detection degrades to the body-part
	// vocabulary with no error.
	extractor := NewEntityExtractor(nil)

	record := extractor.Extract("me molesta la espalda")
	require.NotNil(t, record.AffectedArea)
	assert.Equal(t, "back", *record.AffectedArea)
}

func TestExtract_AreaRecognizerFallback(t *testing.T) {
	extractor := NewEntityExtractor(NewGazetteerRecognizer())

	// "garganta" is outside the body-part vocabulary; only the recognizer
	// can pick it up.
	record := extractor.Extract("me duele la garganta")
	require.NotNil(t, record.AffectedArea)
	assert.Equal(t, "garganta", *record.AffectedArea)
	require.NotNil(t, record.SymptomType)
	assert.Equal(t, "pain in garganta", *record.SymptomType)
}

func TestExtract_VocabularyTakesPrecedenceOverRecognizer(t *testing.T) {
	extractor := NewEntityExtractor(NewGazetteerRecognizer())

	// Both sources match: the body-part vocabulary wins.
	record := extractor.Extract("me duele la garganta y el pecho")
	require.NotNil(t, record.AffectedArea)
	assert.Equal(t, "chest", *record.AffectedArea)
}

func TestExtract_NoMatchLeavesSlotsNil(t *testing.T) {
	extractor := NewEntityExtractor(nil)

	record := extractor.Extract("buenos días, una consulta rápida")

	assert.Nil(t, record.SymptomType)
	assert.Nil(t, record.Duration)
	assert.Nil(t, record.Temperature)
	assert.Nil(t, record.PerceivedSeverity)
	assert.Nil(t, record.AffectedArea)
}

func TestExtract_MergeIsIdempotent(t *testing.T) {
	extractor := NewEntityExtractor(nil)
	text := "tengo tos desde hace 2 días"

	var once models.SlotRecord
	once.Merge(extractor.Extract(text))

	var twice models.SlotRecord
	twice.Merge(extractor.Extract(text))
	twice.Merge(extractor.Extract(text))

	assert.Equal(t, once, twice)
}

func TestExtract_MergeIsNonDestructive(t *testing.T) {
	extractor := NewEntityExtractor(nil)

	var record models.SlotRecord
	record.Merge(extractor.Extract("tengo fiebre"))
	require.NotNil(t, record.SymptomType)

	// The follow-up mentions no symptom; the filled slot must survive.
	record.Merge(extractor.Extract("desde ayer"))

	require.NotNil(t, record.SymptomType)
	assert.Equal(t, "fever", *record.SymptomType)
	require.NotNil(t, record.Duration)
	assert.Equal(t, "desde ayer", *record.Duration)
}
