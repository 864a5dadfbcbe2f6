package models

// DialogueState identifies where a triage conversation currently is.
// Exactly one state is active per session; a fresh session starts in
// StateIdle and StateClosing resets back to it on the next turn.
type DialogueState string

const (
	StateIdle          DialogueState = "idle"
	StateGatheringInfo DialogueState = "gathering_info"
	StateEmergency     DialogueState = "emergency"
	StateRecommending  DialogueState = "recommending"
	StateClosing       DialogueState = "closing"
)

// IsValid reports whether s is one of the five dialogue states.
func (s DialogueState) IsValid() bool {
	switch s {
	case StateIdle, StateGatheringInfo, StateEmergency, StateRecommending, StateClosing:
		return true
	}
	return false
}

// Severity is the patient's own assessment of how bad the symptom is.
type Severity string

const (
	SeverityMild     Severity = "mild"
	SeverityModerate Severity = "moderate"
	SeveritySevere   Severity = "severe"
)

// SlotRecord holds the structured information extracted from the patient's
// free-text messages. Every field is independently optional; nil means the
// slot has not been filled yet. Fields are not cross-validated (a
// temperature may exist without a symptom type).
type SlotRecord struct {
	SymptomType       *string   `json:"symptom_type" bson:"symptom_type,omitempty"`
	Duration          *string   `json:"duration" bson:"duration,omitempty"`
	Temperature       *float64  `json:"temperature" bson:"temperature,omitempty"`
	PerceivedSeverity *Severity `json:"perceived_severity" bson:"perceived_severity,omitempty"`
	AffectedArea      *string   `json:"affected_area" bson:"affected_area,omitempty"`
}

// Merge copies every non-nil slot from other into r. A slot that is already
// filled is only overwritten by a newer non-nil value; extraction never
// clears slots. Merging the same extraction twice is a no-op.
func (r *SlotRecord) Merge(other SlotRecord) {
	if other.SymptomType != nil {
		r.SymptomType = other.SymptomType
	}
	if other.Duration != nil {
		r.Duration = other.Duration
	}
	if other.Temperature != nil {
		r.Temperature = other.Temperature
	}
	if other.PerceivedSeverity != nil {
		r.PerceivedSeverity = other.PerceivedSeverity
	}
	if other.AffectedArea != nil {
		r.AffectedArea = other.AffectedArea
	}
}

// SessionContext is the mutable per-session state the dialogue controller
// operates on. It is owned by the caller's session store and mutated in
// place on every turn; the core never persists it.
type SessionContext struct {
	State         DialogueState `json:"state" bson:"state"`
	CurrentIntent Intent        `json:"current_intent,omitempty" bson:"current_intent,omitempty"`
	Slots         SlotRecord    `json:"slots" bson:"slots"`
}

// NewSessionContext returns a fresh context in the initial state with all
// slots unset.
func NewSessionContext() *SessionContext {
	return &SessionContext{State: StateIdle}
}

// Reset restores the context to its initial values.
func (c *SessionContext) Reset() {
	c.State = StateIdle
	c.CurrentIntent = ""
	c.Slots = SlotRecord{}
}
