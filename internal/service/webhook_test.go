package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"actionlog/internal/apperrors"
	"actionlog/internal/model"
)

type stubClassifier struct {
	result model.Classification
	calls  int
}

func (s *stubClassifier) Classify(_ context.Context, _, _ string) model.Classification {
	s.calls++
	return s.result
}

type recordingSink struct {
	rows  []any
	err   error
	calls int
}

func (s *recordingSink) Append(_ context.Context, row any) error {
	s.calls++
	s.rows = append(s.rows, row)
	return s.err
}

type recordingNotifier struct {
	records []model.ActionRecord
	err     error
}

func (n *recordingNotifier) Notify(_ context.Context, record model.ActionRecord) error {
	n.records = append(n.records, record)
	return n.err
}

func newTestService(classifier *stubClassifier, sink *recordingSink, notifier *recordingNotifier) *WebhookService {
	return NewWebhookService(zap.NewNop(), classifier, sink, notifier)
}

func TestProcess_SkipsWithoutUpstreamCalls(t *testing.T) {
	classifier := &stubClassifier{}
	sink := &recordingSink{}
	svc := newTestService(classifier, sink, &recordingNotifier{})

	events := []struct {
		event  model.InboundEvent
		reason string
	}{
		{model.InboundEvent{"event": "message.ack"}, model.SkipNonMessageEvent},
		{model.InboundEvent{"event": "message", "fromMe": true, "body": "ok"}, model.SkipOutgoingMessage},
		{model.InboundEvent{"event": "message", "body": ""}, model.SkipSystemOrEmpty},
	}

	for _, tc := range events {
		result, err := svc.Process(context.Background(), tc.event)

		require.NoError(t, err)
		assert.Equal(t, model.ResultSkipped, result.Status)
		assert.Equal(t, tc.reason, result.Reason)
	}

	assert.Zero(t, classifier.calls, "classifier must not be called for skipped events")
	assert.Zero(t, sink.calls, "sink must not be called for skipped events")
}

func TestProcess_NotActionItem(t *testing.T) {
	classifier := &stubClassifier{result: model.NotActionItem()}
	sink := &recordingSink{}
	svc := newTestService(classifier, sink, &recordingNotifier{})

	result, err := svc.Process(context.Background(), model.InboundEvent{
		"event": "message",
		"body":  "good morning everyone",
	})

	require.NoError(t, err)
	assert.Equal(t, model.ResultProcessed, result.Status)
	require.NotNil(t, result.IsActionItem)
	assert.False(t, *result.IsActionItem)
	assert.Nil(t, result.Classification)
	assert.Zero(t, sink.calls, "sink must not be called for non action items")
}

func TestProcess_ActionItemBuildsRecord(t *testing.T) {
	classifier := &stubClassifier{result: model.Classification{
		IsActionItem: true,
		Responsible:  "Alice",
		Urgency:      "Urgent",
		Due:          "Monday",
		Summary:      "Send contract",
	}}
	sink := &recordingSink{}
	notifier := &recordingNotifier{}
	svc := newTestService(classifier, sink, notifier)

	before := time.Now().UTC()
	result, err := svc.Process(context.Background(), model.InboundEvent{
		"event": "message",
		"payload": map[string]any{
			"body":       "Please send the contract by Monday, urgent!",
			"fromMe":     false,
			"chatId":     "999@c.us",
			"notifyName": "Alice",
		},
	})

	require.NoError(t, err)
	assert.Equal(t, model.ResultProcessed, result.Status)
	require.NotNil(t, result.IsActionItem)
	assert.True(t, *result.IsActionItem)
	require.NotNil(t, result.Saved)
	assert.True(t, *result.Saved)

	require.Len(t, sink.rows, 1)
	record, ok := sink.rows[0].(model.ActionRecord)
	require.True(t, ok)

	assert.Equal(t, "Alice", record.Source)
	assert.Equal(t, "Please send the contract by Monday, urgent!", record.Message)
	assert.Equal(t, "Alice", record.Responsible)
	assert.Equal(t, "Urgent", record.Urgency)
	assert.Equal(t, "Monday", record.Due)
	assert.Equal(t, model.RecordStatusOpen, record.Status)
	assert.Equal(t, "999@c.us", record.ChatID)

	ts, parseErr := time.Parse(time.RFC3339, record.Timestamp)
	require.NoError(t, parseErr)
	assert.WithinDuration(t, before, ts, 5*time.Second)

	require.Len(t, notifier.records, 1)
	assert.Equal(t, record, notifier.records[0])
}

func TestProcess_DefaultsMissingClassificationFields(t *testing.T) {
	classifier := &stubClassifier{result: model.Classification{IsActionItem: true}}
	sink := &recordingSink{}
	svc := newTestService(classifier, sink, &recordingNotifier{})

	_, err := svc.Process(context.Background(), model.InboundEvent{
		"event": "message",
		"body":  "Could you check the pricing?",
	})

	require.NoError(t, err)
	require.Len(t, sink.rows, 1)

	record := sink.rows[0].(model.ActionRecord)
	assert.Equal(t, model.DefaultResponsible, record.Responsible)
	assert.Equal(t, model.UrgencyNormal, record.Urgency)
	assert.Equal(t, model.DefaultDue, record.Due)
}

func TestProcess_SinkFailureStillSucceeds(t *testing.T) {
	classifier := &stubClassifier{result: model.Classification{IsActionItem: true}}
	sink := &recordingSink{err: errors.New("sink responded 500")}
	svc := newTestService(classifier, sink, &recordingNotifier{})

	result, err := svc.Process(context.Background(), model.InboundEvent{
		"event": "message",
		"body":  "Please follow up with the supplier",
	})

	require.NoError(t, err)
	require.NotNil(t, result.Saved)
	assert.False(t, *result.Saved)
	assert.Equal(t, model.ResultProcessed, result.Status)
}

func TestProcess_DisabledNotifierIsSilent(t *testing.T) {
	classifier := &stubClassifier{result: model.Classification{IsActionItem: true}}
	sink := &recordingSink{}
	notifier := &recordingNotifier{err: apperrors.ErrNotifierDisabled}
	svc := newTestService(classifier, sink, notifier)

	result, err := svc.Process(context.Background(), model.InboundEvent{
		"event": "message",
		"body":  "Please follow up with the supplier",
	})

	require.NoError(t, err)
	require.NotNil(t, result.Saved)
	assert.True(t, *result.Saved)
}
