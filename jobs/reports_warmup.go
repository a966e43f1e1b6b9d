package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	"github.com/printdesk/printdesk/internal/reports"
)

// ReportsWarmupJob pre-populates the report cache so the first dashboard
// view after an invalidation does not pay the recompute cost.
type ReportsWarmupJob struct {
	Reports *reports.Service
	Logger  *slog.Logger
	clock   func() time.Time
}

// NewReportsWarmupJob wires dependencies for the warmup handler.
func NewReportsWarmupJob(reportsSvc *reports.Service, logger *slog.Logger) *ReportsWarmupJob {
	return &ReportsWarmupJob{
		Reports: reportsSvc,
		Logger:  logger,
		clock: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// Handle processes report warmup tasks.
func (j *ReportsWarmupJob) Handle(ctx context.Context, t *asynq.Task) error {
	if j == nil || j.Reports == nil {
		return errors.New("reports warmup: handler not configured")
	}
	var payload ReportsWarmupPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return asynq.SkipRetry
	}

	periods := make([]reports.Period, 0, len(payload.Periods))
	for _, p := range payload.Periods {
		periods = append(periods, reports.Period(p))
	}
	if len(periods) == 0 {
		periods = reports.Periods()
	}

	logger := j.logger()
	started := j.clock()
	logger.Info("starting reports warmup", slog.Int("periods", len(periods)))

	for _, period := range periods {
		if _, err := j.Reports.Build(ctx, period); err != nil {
			logger.Error("warm report", slog.String("period", string(period)), slog.Any("error", err))
			return err
		}
	}
	if _, err := j.Reports.Dashboard(ctx); err != nil {
		logger.Error("warm dashboard", slog.Any("error", err))
		return err
	}

	logger.Info("completed reports warmup", slog.Duration("duration", time.Since(started)))
	return nil
}

func (j *ReportsWarmupJob) logger() *slog.Logger {
	if j.Logger != nil {
		return j.Logger
	}
	return slog.Default()
}
