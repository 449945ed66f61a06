package model

// InboundEvent is the raw webhook payload as delivered by the chat platform.
// Providers and provider versions disagree on field names and nesting, so no
// schema is enforced; every field of interest is optional and read through
// fallback chains during normalization.
type InboundEvent map[string]any

// NormalizedMessage is the canonical view of one inbound message, derived once
// per request and immutable afterwards.
type NormalizedMessage struct {
	Body       string `json:"body"`
	FromMe     bool   `json:"fromMe"`
	ChatID     string `json:"chatId"`
	SourceName string `json:"sourceName"`
}

// Skip reasons reported back to the webhook sender. Skips are normal filtering
// outcomes, not errors.
const (
	SkipNonMessageEvent = "non-message event"
	SkipOutgoingMessage = "outgoing message"
	SkipSystemOrEmpty   = "system or empty message"
)
