package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"
	// TaskReportsWarmup pre-populates the report cache for every period.
	TaskReportsWarmup = "reports:warmup"
	// TaskQuoteIntegrity rechecks stored quote totals against their factors.
	TaskQuoteIntegrity = "quotes:integrity"
)

// ReportsWarmupPayload scopes a warmup run; an empty Periods slice means
// every period.
type ReportsWarmupPayload struct {
	Periods []string `json:"periods,omitempty"`
}

// NewReportsWarmupTask constructs an Asynq task for report warmup.
func NewReportsWarmupTask(payload ReportsWarmupPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskReportsWarmup, data), nil
}

// QuoteIntegrityPayload configures a totals integrity scan. Repair controls
// whether drifted quotes are rewritten or only reported.
type QuoteIntegrityPayload struct {
	Repair bool `json:"repair"`
}

// NewQuoteIntegrityTask constructs an Asynq task for the integrity scan.
func NewQuoteIntegrityTask(payload QuoteIntegrityPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskQuoteIntegrity, data), nil
}
