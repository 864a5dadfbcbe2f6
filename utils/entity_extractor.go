package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"clinic-triage-backend/models"
)

// symptomPattern is one entry of the ordered symptom table. Patterns with a
// capture group are "pain in <location>" patterns and compose a normalized
// label; plain ailment patterns map to a fixed canonical label.
type symptomPattern struct {
	re        *regexp.Regexp
	canonical string
}

// severityEntry maps one keyword to a severity level; entries are checked
// in table order and the first keyword present in the text wins.
type severityEntry struct {
	keyword string
	level   models.Severity
}

// EntityExtractor pulls the five triage slots (symptom, duration,
// temperature, severity, affected area) out of free text. Extraction is a
// pure function of the input: the same text always yields the same record.
// Pattern tables are bilingual (Spanish/English) and slot values normalize
// to canonical English so the inference rules match either language.
type EntityExtractor struct {
	recognizer EntityRecognizer

	symptomPatterns  []symptomPattern
	durationPatterns []*regexp.Regexp
	temperatureRe    *regexp.Regexp
	severityTable    []severityEntry
}

// bodyParts maps surface forms to the canonical area name. It doubles as
// the fixed vocabulary used when no recognizer is available.
var bodyParts = map[string]string{
	"cabeza": "head", "head": "head",
	"pecho": "chest", "chest": "chest",
	"abdomen": "abdomen",
	"pierna":  "leg", "leg": "leg",
	"brazo": "arm", "arm": "arm",
	"espalda": "back", "back": "back",
	"cuello": "neck", "neck": "neck",
	"estómago": "stomach", "estomago": "stomach", "stomach": "stomach",
}

// NewEntityExtractor builds an extractor. The recognizer may be nil, in
// which case area detection silently degrades to the body-part vocabulary.
func NewEntityExtractor(recognizer EntityRecognizer) *EntityExtractor {
	return &EntityExtractor{
		recognizer: recognizer,
		symptomPatterns: []symptomPattern{
			// Location-bearing pain patterns come first.
			{re: regexp.MustCompile(`dolor(?:es)?\s+(?:de\s+|en\s+)?(?:el\s+|la\s+|los\s+|las\s+)?(\p{L}+)`)},
			{re: regexp.MustCompile(`me\s+duele(?:n)?\s+(?:la\s+|el\s+|los\s+|las\s+)?(\p{L}+)`)},
			{re: regexp.MustCompile(`pain\s+in\s+(?:my\s+|the\s+)?(\p{L}+)`)},
			{re: regexp.MustCompile(`my\s+(\p{L}+)\s+hurts?`)},
			// Multi-word ailment before the single-word list.
			{re: regexp.MustCompile(`dificultad para respirar|no puedo respirar|difficulty breathing|can(?:no|')t breathe`), canonical: "difficulty breathing"},
			{re: regexp.MustCompile(`fiebre|fever`), canonical: "fever"},
			{re: regexp.MustCompile(`tos\b|cough`), canonical: "cough"},
			{re: regexp.MustCompile(`náuseas?|nauseas?`), canonical: "nausea"},
			{re: regexp.MustCompile(`mareos?|dizziness|dizzy`), canonical: "dizziness"},
			{re: regexp.MustCompile(`vómitos?|vomitos?|vomit`), canonical: "vomiting"},
			{re: regexp.MustCompile(`diarrea|diarrhea`), canonical: "diarrhea"},
			{re: regexp.MustCompile(`constipación|constipation|estreñimiento`), canonical: "constipation"},
			{re: regexp.MustCompile(`insomnio|insomnia`), canonical: "insomnia"},
			{re: regexp.MustCompile(`cansancio|tiredness`), canonical: "tiredness"},
			{re: regexp.MustCompile(`fatiga|fatigue`), canonical: "fatigue"},
		},
		durationPatterns: []*regexp.Regexp{
			regexp.MustCompile(`desde\s+(?:ayer|hace\s+\d+\s+(?:d[ií]as?|semanas?|meses?|horas?))|since\s+yesterday`),
			regexp.MustCompile(`\d+\s*(?:d[ií]as?|semanas?|meses?|horas?|days?|weeks?|months?|hours?)`),
			regexp.MustCompile(`una\s+semana|one\s+week`),
			regexp.MustCompile(`dos\s+semanas|two\s+weeks`),
			regexp.MustCompile(`un\s+mes|one\s+month`),
			regexp.MustCompile(`desde\s+esta\s+mañana|since\s+this\s+morning|anoche|last\s+night`),
			regexp.MustCompile(`hace\s+(?:una\s+hora|dos\s+horas|un\s+d[ií]a|dos\s+d[ií]as)|an\s+hour\s+ago|(?:one|two)\s+days?\s+ago`),
		},
		temperatureRe: regexp.MustCompile(`(\d+(?:[.,]\d+)?)\s*(?:grados?|degrees?|°\s*c?)`),
		severityTable: []severityEntry{
			{"leve", models.SeverityMild},
			{"mild", models.SeverityMild},
			{"moderado", models.SeverityModerate},
			{"moderada", models.SeverityModerate},
			{"moderate", models.SeverityModerate},
			{"grave", models.SeveritySevere},
			{"severe", models.SeveritySevere},
			{"intenso", models.SeveritySevere},
			{"intensa", models.SeveritySevere},
			{"intense", models.SeveritySevere},
			{"fuerte", models.SeveritySevere},
			{"strong", models.SeveritySevere},
			{"mucho", models.SeveritySevere},
			{"a lot", models.SeveritySevere},
			{"poco", models.SeverityMild},
			{"little", models.SeverityMild},
		},
	}
}

// Extract runs the five sub-extractions independently and returns a record
// whose nil fields mean "not mentioned". It never fails, whatever the input.
func (e *EntityExtractor) Extract(text string) models.SlotRecord {
	var record models.SlotRecord
	lower := strings.ToLower(text)

	e.extractSymptom(lower, &record)
	e.extractDuration(lower, &record)
	e.extractTemperature(lower, &record)
	e.extractSeverity(lower, &record)
	e.extractArea(lower, &record)

	return record
}

// extractSymptom scans the ordered pattern table; the first match wins. A
// pain match composes "pain in <location>" and, when the location is a
// known body part, also fills the affected-area slot so the chest-pain rule
// can fire from the symptom phrase alone.
func (e *EntityExtractor) extractSymptom(lower string, record *models.SlotRecord) {
	for _, pattern := range e.symptomPatterns {
		match := pattern.re.FindStringSubmatch(lower)
		if match == nil {
			continue
		}
		if pattern.canonical != "" {
			canonical := pattern.canonical
			record.SymptomType = &canonical
			return
		}
		location := match[1]
		if canonical, ok := bodyParts[location]; ok {
			location = canonical
			record.AffectedArea = &canonical
		}
		symptom := fmt.Sprintf("pain in %s", location)
		record.SymptomType = &symptom
		return
	}
}

func (e *EntityExtractor) extractDuration(lower string, record *models.SlotRecord) {
	for _, pattern := range e.durationPatterns {
		if match := pattern.FindString(lower); match != "" {
			span := strings.TrimSpace(match)
			record.Duration = &span
			return
		}
	}
}

func (e *EntityExtractor) extractTemperature(lower string, record *models.SlotRecord) {
	match := e.temperatureRe.FindStringSubmatch(lower)
	if match == nil {
		return
	}
	value, err := strconv.ParseFloat(strings.Replace(match[1], ",", ".", 1), 64)
	if err != nil {
		return
	}
	record.Temperature = &value
}

func (e *EntityExtractor) extractSeverity(lower string, record *models.SlotRecord) {
	for _, entry := range e.severityTable {
		if strings.Contains(lower, entry.keyword) {
			level := entry.level
			record.PerceivedSeverity = &level
			return
		}
	}
}

// extractArea asks the recognizer first (location/miscellaneous entities),
// then scans the body-part vocabulary; a vocabulary match takes precedence.
// A nil recognizer is not an error.
func (e *EntityExtractor) extractArea(lower string, record *models.SlotRecord) {
	if e.recognizer != nil {
		for _, entity := range e.recognizer.Recognize(lower) {
			if entity.Category == CategoryLocation || entity.Category == CategoryMisc {
				surface := entity.Surface
				record.AffectedArea = &surface
			}
		}
	}

	for _, token := range strings.Fields(lower) {
		token = strings.Trim(token, ".,;:!?¿¡\"'()")
		if canonical, ok := bodyParts[token]; ok {
			record.AffectedArea = &canonical
			return
		}
	}
}
