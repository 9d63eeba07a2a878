package parsing

import (
	"context"
	"errors"

	"career-scout/internal/jobs"

	"go.uber.org/zap"
)

// WithFallback wraps a primary strategy with a deterministic retry. When the
// primary fails on an item, that single item is re-parsed by the fallback
// instead of failing the batch. Skipped non-listing items pass through as-is.
type WithFallback struct {
	primary  Strategy
	fallback Strategy
	logger   *zap.Logger
}

func NewWithFallback(primary, fallback Strategy, logger *zap.Logger) *WithFallback {
	return &WithFallback{
		primary:  primary,
		fallback: fallback,
		logger:   logger,
	}
}

func (w *WithFallback) Name() string { return w.primary.Name() }

func (w *WithFallback) Extract(ctx context.Context, item Item) (*jobs.Record, error) {
	record, err := w.primary.Extract(ctx, item)
	if err == nil {
		return record, nil
	}

	if errors.Is(err, ErrNotListing) {
		return nil, err
	}

	w.logger.Warn("extraction failed, falling back",
		zap.String("strategy", w.primary.Name()),
		zap.String("fallback", w.fallback.Name()),
		zap.String("url", item.Link),
		zap.Error(err),
	)

	return w.fallback.Extract(ctx, item)
}
