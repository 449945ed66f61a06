package model

import "time"

// Urgency values the classifier is prompted to choose from. The model's answer
// is passed through as-is; these are defaults and prompt vocabulary, not an
// enforced enum.
const (
	UrgencyUrgent = "Urgent"
	UrgencyNormal = "Normal"
	UrgencyLow    = "Low"
)

const (
	DefaultResponsible = "Unknown"
	DefaultDue         = "None"
	RecordStatusOpen   = "Open"
)

// Classification is the structured verdict for one message.
// IsActionItem=false is the safe default whenever the classifier cannot
// produce a confident structured answer.
type Classification struct {
	IsActionItem bool   `json:"isActionItem"`
	Responsible  string `json:"responsible,omitempty"`
	Urgency      string `json:"urgency,omitempty"`
	Due          string `json:"due,omitempty"`
	Summary      string `json:"summary,omitempty"`
}

// NotActionItem is returned on every classifier failure path.
func NotActionItem() Classification {
	return Classification{IsActionItem: false}
}

// ActionRecord is the flat row appended to the external sheet store.
// It is built once per positively classified message, sent once and discarded;
// the service keeps no copy.
type ActionRecord struct {
	Timestamp   string `json:"timestamp"`
	Source      string `json:"source"`
	Message     string `json:"message"`
	Responsible string `json:"responsible"`
	Urgency     string `json:"urgency"`
	Due         string `json:"due"`
	Status      string `json:"status"`
	ChatID      string `json:"chatId"`
}

// NewActionRecord builds a record from a normalized message and its
// classification, filling the defaults the classifier may have omitted.
func NewActionRecord(msg *NormalizedMessage, cls Classification, now time.Time) ActionRecord {
	responsible := cls.Responsible
	if responsible == "" {
		responsible = DefaultResponsible
	}

	urgency := cls.Urgency
	if urgency == "" {
		urgency = UrgencyNormal
	}

	due := cls.Due
	if due == "" {
		due = DefaultDue
	}

	return ActionRecord{
		Timestamp:   now.UTC().Format(time.RFC3339),
		Source:      msg.SourceName,
		Message:     msg.Body,
		Responsible: responsible,
		Urgency:     urgency,
		Due:         due,
		Status:      RecordStatusOpen,
		ChatID:      msg.ChatID,
	}
}
