package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"actionlog/internal/model"
)

func TestNormalize_NonMessageEvent(t *testing.T) {
	for _, tag := range []string{"message.ack", "session.status", "presence.update"} {
		msg, reason := Normalize(model.InboundEvent{"event": tag})

		assert.Nil(t, msg, "tag %q", tag)
		assert.Equal(t, model.SkipNonMessageEvent, reason, "tag %q", tag)
	}
}

func TestNormalize_OutgoingMessage(t *testing.T) {
	events := []model.InboundEvent{
		{"event": "message", "fromMe": true, "body": "on my way"},
		{"event": "message", "payload": map[string]any{"from_me": true, "body": "on my way"}},
	}

	for _, event := range events {
		msg, reason := Normalize(event)

		assert.Nil(t, msg)
		assert.Equal(t, model.SkipOutgoingMessage, reason)
	}
}

func TestNormalize_MissingEventTagDefaultsToMessage(t *testing.T) {
	msg, reason := Normalize(model.InboundEvent{"body": "please review the proposal"})

	require.Empty(t, reason)
	assert.Equal(t, "please review the proposal", msg.Body)
}

func TestNormalize_BodyFallbackChain(t *testing.T) {
	cases := []struct {
		name  string
		event model.InboundEvent
		body  string
	}{
		{"body", model.InboundEvent{"body": "from body"}, "from body"},
		{"text", model.InboundEvent{"text": "from text"}, "from text"},
		{"caption", model.InboundEvent{"caption": "from caption"}, "from caption"},
		{"body wins", model.InboundEvent{"body": "from body", "text": "from text"}, "from body"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			msg, reason := Normalize(tc.event)

			require.Empty(t, reason)
			assert.Equal(t, tc.body, msg.Body)
		})
	}
}

func TestNormalize_SystemOrEmptyBody(t *testing.T) {
	events := []model.InboundEvent{
		{"event": "message", "body": ""},
		{"event": "message"},
		{"event": "message", "body": "This message was deleted"},
	}

	for _, event := range events {
		msg, reason := Normalize(event)

		assert.Nil(t, msg)
		assert.Equal(t, model.SkipSystemOrEmpty, reason)
	}
}

func TestNormalize_SourceNameFallbacks(t *testing.T) {
	cases := []struct {
		name   string
		event  model.InboundEvent
		source string
	}{
		{
			"provider internal notifyName",
			model.InboundEvent{"body": "hi there", "_data": map[string]any{"notifyName": "Alice"}, "notifyName": "Bob"},
			"Alice",
		},
		{
			"notifyName",
			model.InboundEvent{"body": "hi there", "notifyName": "Bob", "pushName": "Carol"},
			"Bob",
		},
		{
			"pushName",
			model.InboundEvent{"body": "hi there", "pushName": "Carol"},
			"Carol",
		},
		{
			"chat name",
			model.InboundEvent{"body": "hi there", "chat": map[string]any{"id": "55@c.us", "name": "Team"}},
			"Team",
		},
		{
			"chat id local part",
			model.InboundEvent{"body": "hi there", "chatId": "1234@g.us"},
			"1234",
		},
		{
			"unknown",
			model.InboundEvent{"body": "hi there"},
			"Unknown",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			msg, reason := Normalize(tc.event)

			require.Empty(t, reason)
			assert.Equal(t, tc.source, msg.SourceName)
		})
	}
}

func TestNormalize_ChatIDFallbackChain(t *testing.T) {
	cases := []struct {
		name   string
		event  model.InboundEvent
		chatID string
	}{
		{"chatId", model.InboundEvent{"body": "x y z", "chatId": "1@c.us", "from": "2@c.us"}, "1@c.us"},
		{"from", model.InboundEvent{"body": "x y z", "from": "2@c.us"}, "2@c.us"},
		{"nested chat id", model.InboundEvent{"body": "x y z", "chat": map[string]any{"id": "3@c.us"}}, "3@c.us"},
		{"absent", model.InboundEvent{"body": "x y z"}, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			msg, reason := Normalize(tc.event)

			require.Empty(t, reason)
			assert.Equal(t, tc.chatID, msg.ChatID)
		})
	}
}

func TestNormalize_UnwrapsPayload(t *testing.T) {
	event := model.InboundEvent{
		"event": "message",
		"payload": map[string]any{
			"body":       "Please send the contract by Monday, urgent!",
			"fromMe":     false,
			"chatId":     "999@c.us",
			"notifyName": "Alice",
		},
	}

	msg, reason := Normalize(event)

	require.Empty(t, reason)
	assert.Equal(t, "Please send the contract by Monday, urgent!", msg.Body)
	assert.Equal(t, "999@c.us", msg.ChatID)
	assert.Equal(t, "Alice", msg.SourceName)
	assert.False(t, msg.FromMe)
}
