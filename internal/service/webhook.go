package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"actionlog/internal/apperrors"
	"actionlog/internal/model"
)

type Classifier interface {
	Classify(ctx context.Context, body, sourceName string) model.Classification
}

type Sink interface {
	Append(ctx context.Context, row any) error
}

type Notifier interface {
	Notify(ctx context.Context, record model.ActionRecord) error
}

type WebhookService struct {
	log        *zap.Logger
	classifier Classifier
	sink       Sink
	notifier   Notifier
}

func NewWebhookService(log *zap.Logger, classifier Classifier, sink Sink, notifier Notifier) *WebhookService {
	return &WebhookService{
		log:        log,
		classifier: classifier,
		sink:       sink,
		notifier:   notifier,
	}
}

// Process runs one inbound event through the pipeline:
// normalize -> filter -> classify -> emit record. All state is request-scoped.
func (s *WebhookService) Process(ctx context.Context, event model.InboundEvent) (*model.ProcessResult, error) {
	msg, skipReason := Normalize(event)
	if skipReason != "" {
		s.log.Debug("Event skipped", zap.String("reason", skipReason))

		return model.Skipped(skipReason), nil
	}

	cls := s.classifier.Classify(ctx, msg.Body, msg.SourceName)
	if !cls.IsActionItem {
		return model.Processed(cls, false), nil
	}

	record := model.NewActionRecord(msg, cls, time.Now())

	saved := true
	if err := s.sink.Append(ctx, record); err != nil {
		s.log.Error("Failed to append action record",
			zap.Error(err),
			zap.String("chat_id", record.ChatID),
			zap.String("source", record.Source),
		)

		saved = false
	}

	if err := s.notifier.Notify(ctx, record); err != nil && !errors.Is(err, apperrors.ErrNotifierDisabled) {
		s.log.Warn("Failed to notify about action record", zap.Error(err))
	}

	s.log.Info("Action item captured",
		zap.String("source", record.Source),
		zap.String("urgency", record.Urgency),
		zap.String("due", record.Due),
		zap.Bool("saved", saved),
	)

	return model.Processed(cls, saved), nil
}
