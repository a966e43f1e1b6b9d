package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"math"

	"github.com/hibiken/asynq"

	"github.com/printdesk/printdesk/internal/quotes"
	"github.com/printdesk/printdesk/internal/shared"
)

// driftTolerance absorbs float rounding noise when comparing stored totals
// against recomputed ones.
const driftTolerance = 1e-9

// QuoteIntegrityJob rechecks every stored quote against the pricing rules.
// Stored totals that drift from their factors are a correctness bug; the
// scan surfaces them and can optionally rewrite the drifted quotes.
type QuoteIntegrityJob struct {
	Repo       quotes.Repository
	Invalidate shared.Invalidator
	Logger     *slog.Logger
}

// NewQuoteIntegrityJob wires dependencies for the integrity handler.
func NewQuoteIntegrityJob(repo quotes.Repository, invalidate shared.Invalidator, logger *slog.Logger) *QuoteIntegrityJob {
	return &QuoteIntegrityJob{Repo: repo, Invalidate: invalidate, Logger: logger}
}

// Handle processes quote integrity tasks.
func (j *QuoteIntegrityJob) Handle(ctx context.Context, t *asynq.Task) error {
	if j == nil || j.Repo == nil {
		return errors.New("quote integrity: handler not configured")
	}
	var payload QuoteIntegrityPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return asynq.SkipRetry
	}

	logger := j.logger()
	collection, err := j.Repo.List(ctx)
	if err != nil {
		logger.Error("load quotes", slog.Any("error", err))
		return err
	}

	drifted := 0
	repaired := 0
	for _, quote := range collection {
		fixed := quote
		fixed.Items = quotes.NormalizeItems(quote.Items)
		fixed.Total = quotes.QuoteTotal(fixed.Items, fixed.Discount)
		if !quoteDrifted(quote, fixed) {
			continue
		}
		drifted++
		logger.Warn("quote totals drifted",
			slog.String("quote_id", quote.ID),
			slog.Float64("stored_total", quote.Total),
			slog.Float64("derived_total", fixed.Total),
		)
		if !payload.Repair {
			continue
		}
		if err := j.Repo.Replace(ctx, fixed); err != nil {
			logger.Error("repair quote", slog.String("quote_id", quote.ID), slog.Any("error", err))
			return err
		}
		repaired++
	}

	if repaired > 0 && j.Invalidate != nil {
		_ = j.Invalidate.Bump(ctx)
	}

	logger.Info("quote integrity scan finished",
		slog.Int("scanned", len(collection)),
		slog.Int("drifted", drifted),
		slog.Int("repaired", repaired),
	)
	return nil
}

func quoteDrifted(stored, derived quotes.Quote) bool {
	if math.Abs(stored.Total-derived.Total) > driftTolerance {
		return true
	}
	for i := range stored.Items {
		if math.Abs(stored.Items[i].Total-derived.Items[i].Total) > driftTolerance {
			return true
		}
	}
	return false
}

func (j *QuoteIntegrityJob) logger() *slog.Logger {
	if j.Logger != nil {
		return j.Logger
	}
	return slog.Default()
}
