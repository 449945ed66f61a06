package notify

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"actionlog/internal/apperrors"
	"actionlog/internal/model"
)

type fakeProducer struct {
	topic   string
	key     []byte
	payload []byte
	err     error
	calls   int
}

func (p *fakeProducer) PushMessage(_ context.Context, key, payload []byte, topic string) (int32, int64, error) {
	p.calls++
	p.key = key
	p.payload = payload
	p.topic = topic

	if p.err != nil {
		return 0, 0, p.err
	}

	return 0, 1, nil
}

func (p *fakeProducer) Close() error { return nil }

func testRecord() model.ActionRecord {
	return model.ActionRecord{
		Timestamp:   "2026-08-31T12:00:00Z",
		Source:      "Alice",
		Message:     "Please send the contract",
		Responsible: "Alice",
		Urgency:     "Urgent",
		Due:         "Monday",
		Status:      "Open",
		ChatID:      "999@c.us",
	}
}

func TestNotify_Disabled(t *testing.T) {
	notifier := NewNotifier(zap.NewNop(), Config{Enabled: false, Topic: "action-items"}, nil)

	err := notifier.Notify(context.Background(), testRecord())

	assert.ErrorIs(t, err, apperrors.ErrNotifierDisabled)
}

func TestNotify_PushesRecord(t *testing.T) {
	producer := &fakeProducer{}
	notifier := NewNotifier(zap.NewNop(), Config{Enabled: true, Topic: "action-items"}, producer)

	err := notifier.Notify(context.Background(), testRecord())

	require.NoError(t, err)
	assert.Equal(t, 1, producer.calls)
	assert.Equal(t, "action-items", producer.topic)
	assert.Len(t, producer.key, 16)

	var record model.ActionRecord
	require.NoError(t, json.Unmarshal(producer.payload, &record))
	assert.Equal(t, testRecord(), record)
}

func TestNotify_ProducerFailure(t *testing.T) {
	producer := &fakeProducer{err: errors.New("broker unavailable")}
	notifier := NewNotifier(zap.NewNop(), Config{Enabled: true, Topic: "action-items"}, producer)

	err := notifier.Notify(context.Background(), testRecord())

	assert.Error(t, err)
	assert.NotErrorIs(t, err, apperrors.ErrNotifierDisabled)
}
