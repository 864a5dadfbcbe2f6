package utils

import "strings"

// EntityCategory labels a recognized named entity.
type EntityCategory string

const (
	CategoryLocation EntityCategory = "LOC"
	CategoryMisc     EntityCategory = "MISC"
)

// RecognizedEntity is one (span, lowercase surface form, category) triple
// produced by a named-entity recognizer.
type RecognizedEntity struct {
	Text     string
	Surface  string
	Category EntityCategory
}

// EntityRecognizer is the external collaborator the entity extractor uses
// for affected-area detection. Implementations may wrap a real NLP service;
// the extractor tolerates a nil recognizer and falls back to its fixed
// body-part vocabulary.
type EntityRecognizer interface {
	Recognize(text string) []RecognizedEntity
}

// GazetteerRecognizer is a dictionary-backed recognizer: it reports any
// token found in its word list. It stands in for a full NLP pipeline so the
// recognizer wiring works without an external service.
type GazetteerRecognizer struct {
	entries map[string]EntityCategory
}

func NewGazetteerRecognizer() *GazetteerRecognizer {
	return &GazetteerRecognizer{
		entries: map[string]EntityCategory{
			// Anatomy the body-part vocabulary does not already cover.
			"garganta": CategoryMisc, "throat": CategoryMisc,
			"rodilla": CategoryMisc, "knee": CategoryMisc,
			"hombro": CategoryMisc, "shoulder": CategoryMisc,
			"oído": CategoryMisc, "ear": CategoryMisc,
			"muñeca": CategoryMisc, "wrist": CategoryMisc,
			"tobillo": CategoryMisc, "ankle": CategoryMisc,
		},
	}
}

// Recognize scans whitespace-separated tokens against the gazetteer.
func (g *GazetteerRecognizer) Recognize(text string) []RecognizedEntity {
	var found []RecognizedEntity
	for _, token := range strings.Fields(strings.ToLower(text)) {
		token = strings.Trim(token, ".,;:!?¿¡\"'()")
		if category, ok := g.entries[token]; ok {
			found = append(found, RecognizedEntity{
				Text:     token,
				Surface:  token,
				Category: category,
			})
		}
	}
	return found
}
