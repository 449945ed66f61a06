package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"actionlog/internal/model"
)

const promptTemplate = `You review chat messages and detect action items.

Message from %s:
"%s"

Decide whether this message is an action item: a task, a question, a request, a pricing discussion, a commitment, or something requiring follow-up.
If it is, extract:
- responsible: name of the responsible party, or "Unknown"
- urgency: one of Urgent, Normal, Low
- due: the due date if mentioned, or "None"
- summary: a one-line summary of the action item

Return ONLY a JSON object with the keys isActionItem, responsible, urgency, due, summary.`

// Completer is the text-completion transport, implemented by pkg/llm.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type ClassifierService struct {
	log       *zap.Logger
	completer Completer
}

func NewClassifierService(log *zap.Logger, completer Completer) *ClassifierService {
	return &ClassifierService{
		log:       log,
		completer: completer,
	}
}

// Classify asks the model for a verdict on one message. Every failure
// (transport, missing JSON, parse error) degrades to "not an action item"
// and is logged, never returned.
func (s *ClassifierService) Classify(ctx context.Context, body, sourceName string) model.Classification {
	prompt := fmt.Sprintf(promptTemplate, sourceName, body)

	raw, err := s.completer.Complete(ctx, prompt)
	if err != nil {
		s.log.Error("Classification request failed", zap.Error(err))

		return model.NotActionItem()
	}

	cls, err := ParseClassification(raw)
	if err != nil {
		s.log.Error("Failed to parse classification", zap.Error(err), zap.String("completion", raw))

		return model.NotActionItem()
	}

	return cls
}

// ParseClassification locates the first JSON object in the completion text and
// decodes it permissively: field values of the wrong JSON type are coerced
// rather than rejected, matching how loosely models follow format instructions.
func ParseClassification(text string) (model.Classification, error) {
	obj, ok := ExtractJSON(text)
	if !ok {
		return model.NotActionItem(), fmt.Errorf("no JSON object in %q", text)
	}

	var fields map[string]any
	if err := json.Unmarshal([]byte(obj), &fields); err != nil {
		return model.NotActionItem(), fmt.Errorf("failed to unmarshal classification: %w", err)
	}

	return model.Classification{
		IsActionItem: coerceBool(fields["isActionItem"]),
		Responsible:  coerceString(fields["responsible"]),
		Urgency:      coerceString(fields["urgency"]),
		Due:          coerceString(fields["due"]),
		Summary:      coerceString(fields["summary"]),
	}, nil
}

// ExtractJSON returns the first balanced {...} substring of text, tolerating
// surrounding prose and code-fence markers.
func ExtractJSON(text string) (string, bool) {
	start := strings.IndexByte(text, '{')
	if start < 0 {
		return "", false
	}

	depth := 0
	inString := false
	escaped := false

	for i := start; i < len(text); i++ {
		ch := text[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}

			continue
		}

		switch ch {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start : i+1], true
			}
		}
	}

	return "", false
}

func coerceBool(v any) bool {
	switch val := v.(type) {
	case bool:
		return val
	case string:
		return strings.EqualFold(strings.TrimSpace(val), "true")
	case float64:
		return val != 0
	default:
		return false
	}
}

func coerceString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case nil:
		return ""
	case float64, bool:
		return fmt.Sprintf("%v", val)
	default:
		return ""
	}
}
