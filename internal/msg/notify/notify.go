package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"actionlog/internal/apperrors"
	"actionlog/internal/model"
	"actionlog/pkg/kafka"
)

type Config struct {
	Enabled bool
	Topic   string
}

// Notifier mirrors every emitted action record to a Kafka topic, best-effort.
// A failed push is the caller's to log; nothing is queued or retried.
type Notifier struct {
	l        *zap.Logger
	cfg      Config
	producer kafka.Producer
}

func NewNotifier(l *zap.Logger, cfg Config, producer kafka.Producer) *Notifier {
	return &Notifier{
		l:        l,
		cfg:      cfg,
		producer: producer,
	}
}

func (n *Notifier) Notify(ctx context.Context, record model.ActionRecord) error {
	if !n.cfg.Enabled || n.producer == nil {
		return apperrors.ErrNotifierDisabled
	}

	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	key, err := uuid.New().MarshalBinary()
	if err != nil {
		return fmt.Errorf("failed to marshal record key: %w", err)
	}

	partition, offset, err := n.producer.PushMessage(ctx, key, payload, n.cfg.Topic)
	if err != nil {
		return fmt.Errorf("failed to push record: %w", err)
	}

	n.l.Debug("Record mirrored",
		zap.String("topic", n.cfg.Topic),
		zap.Int32("partition", partition),
		zap.Int64("offset", offset),
	)

	return nil
}
