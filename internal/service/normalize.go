package service

import (
	"strings"

	"actionlog/internal/model"
)

// Normalize extracts the canonical message tuple from a heterogeneous webhook
// payload. It returns a non-empty skip reason instead of a message when the
// event is not worth classifying.
func Normalize(event model.InboundEvent) (*model.NormalizedMessage, string) {
	tag := strings.ToLower(stringField(event, "event"))
	if tag == "" {
		tag = "message"
	}

	// Delivery receipts ("message.ack") are tagged as message events but carry
	// no user content.
	if !strings.Contains(tag, "message") || strings.Contains(tag, "ack") {
		return nil, model.SkipNonMessageEvent
	}

	// Some providers nest the message one level under "payload".
	msg := event
	if nested, ok := event["payload"].(map[string]any); ok {
		msg = nested
	}

	if boolField(msg, "fromMe", "from_me") {
		return nil, model.SkipOutgoingMessage
	}

	body := stringField(msg, "body", "text", "caption")

	chatID := stringField(msg, "chatId", "from")
	if chatID == "" {
		chatID = nestedString(msg, "chat", "id")
	}

	sourceName := firstNonEmpty(
		nestedString(msg, "_data", "notifyName"),
		stringField(msg, "notifyName", "pushName"),
		nestedString(msg, "chat", "name"),
		chatLocalPart(chatID),
	)
	if sourceName == "" {
		sourceName = model.DefaultResponsible
	}

	if IsSystemMessage(body) {
		return nil, model.SkipSystemOrEmpty
	}

	return &model.NormalizedMessage{
		Body:       body,
		FromMe:     false,
		ChatID:     chatID,
		SourceName: sourceName,
	}, ""
}

// stringField returns the first key holding a non-empty string value.
func stringField(m map[string]any, keys ...string) string {
	for _, key := range keys {
		if s, ok := m[key].(string); ok && s != "" {
			return s
		}
	}

	return ""
}

// nestedString walks one nesting level: path is a map key followed by a
// string key inside it.
func nestedString(m map[string]any, outer, inner string) string {
	nested, ok := m[outer].(map[string]any)
	if !ok {
		return ""
	}

	s, _ := nested[inner].(string)

	return s
}

// boolField returns the first defined boolean among keys, false when none is
// present.
func boolField(m map[string]any, keys ...string) bool {
	for _, key := range keys {
		if b, ok := m[key].(bool); ok {
			return b
		}
	}

	return false
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}

// chatLocalPart extracts the part of a chat id before the first "@",
// e.g. "1234" from "1234@g.us".
func chatLocalPart(chatID string) string {
	if chatID == "" {
		return ""
	}

	if i := strings.Index(chatID, "@"); i >= 0 {
		return chatID[:i]
	}

	return chatID
}
