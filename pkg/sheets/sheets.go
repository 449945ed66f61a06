package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Appender posts JSON rows to a pre-authorized append-only webhook, e.g. a
// Google Apps Script bound to a spreadsheet.
type Appender interface {
	Append(ctx context.Context, row any) error
}

type Config struct {
	WebhookURL string
	Timeout    time.Duration
}

type appender struct {
	cfg    *Config
	client *http.Client
}

func New(cfg *Config) Appender {
	return &appender{
		cfg: cfg,
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

func (a *appender) Append(ctx context.Context, row any) error {
	payload, err := json.Marshal(row)
	if err != nil {
		return fmt.Errorf("failed to marshal row: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.cfg.WebhookURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to post row: %w", err)
	}

	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("sink responded %d", resp.StatusCode)
	}

	return nil
}
