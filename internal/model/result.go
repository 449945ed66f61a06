package model

// Processing statuses reported on the webhook response.
const (
	ResultProcessed = "processed"
	ResultSkipped   = "skipped"
)

// ProcessResult is the outcome of one webhook invocation, mapped by the HTTP
// layer onto the response body.
type ProcessResult struct {
	Status         string          `json:"status"`
	Reason         string          `json:"reason,omitempty"`
	IsActionItem   *bool           `json:"isActionItem,omitempty"`
	Classification *Classification `json:"classification,omitempty"`
	Saved          *bool           `json:"saved,omitempty"`
}

// Skipped builds the result for a filtered-out event.
func Skipped(reason string) *ProcessResult {
	return &ProcessResult{
		Status: ResultSkipped,
		Reason: reason,
	}
}

// Processed builds the result for a classified message. classification and
// saved are only attached for positive verdicts.
func Processed(cls Classification, saved bool) *ProcessResult {
	res := &ProcessResult{
		Status:       ResultProcessed,
		IsActionItem: &cls.IsActionItem,
	}

	if cls.IsActionItem {
		res.Classification = &cls
		res.Saved = &saved
	}

	return res
}
