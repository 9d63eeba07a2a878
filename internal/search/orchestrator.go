package search

import (
	"context"
	"errors"
	"strings"
	"time"

	"career-scout/internal/jobs"
	"career-scout/internal/parsing"
	"career-scout/internal/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// sitePrefix scopes every query to the job-listing site.
	sitePrefix = "site:linkedin.com/jobs"

	// defaultDelay is the pause between paginated provider calls.
	defaultDelay = 100 * time.Millisecond

	// maxStart keeps start+batch within the provider's 100-result ceiling.
	maxStart = MaxTotalResults - MaxBatchSize + 1
)

// Config carries the orchestrator's explicit configuration. There is no
// process-global state: changing the configuration means constructing a new
// orchestrator.
type Config struct {
	// Delay between paginated provider calls. Zero means defaultDelay.
	Delay time.Duration
}

// Orchestrator runs the search pipeline: query building, pagination,
// per-item extraction and result assembly.
type Orchestrator struct {
	provider Provider
	manual   parsing.Strategy
	model    parsing.Strategy
	delay    time.Duration
	logger   *zap.Logger
}

// New builds an orchestrator. model may be nil when no model provider is
// configured; model-based requests are then downgraded to deterministic
// parsing. A non-nil model strategy is wrapped with a per-item deterministic
// fallback.
func New(provider Provider, model parsing.Strategy, cfg *Config, logger *zap.Logger) *Orchestrator {
	delay := defaultDelay
	if cfg != nil && cfg.Delay > 0 {
		delay = cfg.Delay
	}

	manual := parsing.NewManual()

	var wrapped parsing.Strategy
	if model != nil {
		wrapped = parsing.NewWithFallback(model, manual, logger)
	}

	return &Orchestrator{
		provider: provider,
		manual:   manual,
		model:    wrapped,
		delay:    delay,
		logger:   logger,
	}
}

// Search returns up to filters.NumResults job records plus query metadata.
// It never returns a raw fault: transport failures come back as a result
// with Success=false, per-item extraction failures are absorbed locally.
func (o *Orchestrator) Search(ctx context.Context, filters *jobs.FilterSet, method string) *jobs.Result {
	requestID := uuid.NewString()

	if err := filters.Validate(); err != nil {
		return jobs.Failure(requestID, "", method, err)
	}

	filters.Normalize()

	strategy := o.selectStrategy(method)
	query := o.buildQuery(filters)

	o.logger.Info("starting job search",
		zap.String("request_id", requestID),
		zap.String("query", query),
		zap.String("parsing_method", strategy.Name()),
		zap.Int("num_results", filters.NumResults),
	)

	applied := filters.Applied()

	records, err := o.paginate(ctx, query, filters, strategy)
	if err != nil {
		o.logger.Error("search provider request failed",
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		failure := jobs.Failure(requestID, query, strategy.Name(), err)
		failure.AppliedFilters = &applied
		return failure
	}

	records.Truncate(filters.NumResults)

	return &jobs.Result{
		Success:        true,
		Jobs:           records.Items,
		TotalFound:     records.Len(),
		Query:          query,
		ParsingMethod:  strategy.Name(),
		AppliedFilters: &applied,
		RequestID:      requestID,
	}
}

// selectStrategy resolves the requested parsing method. The model strategy
// runs only on an exact name match; anything else, including unrecognized or
// case-variant method strings, runs the deterministic parser.
func (o *Orchestrator) selectStrategy(method string) parsing.Strategy {
	if o.model != nil && method == o.model.Name() {
		return o.model
	}

	if method != "" && method != parsing.ManualName {
		o.logger.Warn("parsing method is unrecognized or unavailable, using manual parsing",
			zap.String("method", method),
		)
	}

	return o.manual
}

// buildQuery renders the filter set as a provider query string. Unset
// filters contribute nothing: absence means no constraint.
func (o *Orchestrator) buildQuery(filters *jobs.FilterSet) string {
	parts := []string{filters.Keyword}

	if filters.Company != "" {
		company := filters.Company
		if filters.ExactMatchCompany {
			company = quote(company)
		}
		parts = append(parts, company)
	}

	for _, term := range []string{
		filters.Location,
		filters.JobType,
		filters.ExperienceLevel,
		filters.Industry,
		filters.SalaryRange,
		filters.WorkArrangement,
		filters.JobFunction,
	} {
		if term != "" {
			parts = append(parts, term)
		}
	}

	return sitePrefix + " " + strings.Join(parts, " ")
}

// paginate accumulates extracted records across provider batches until
// enough records are collected, a batch comes back empty or the provider's
// result ceiling is reached.
func (o *Orchestrator) paginate(ctx context.Context, query string, filters *jobs.FilterSet, strategy parsing.Strategy) (*jobs.Records, error) {
	records := &jobs.Records{}
	start := 1

	for records.Len() < filters.NumResults && start <= maxStart {
		batchSize := filters.NumResults - records.Len()
		if batchSize > MaxBatchSize {
			batchSize = MaxBatchSize
		}

		items, err := o.provider.Fetch(ctx, Query{
			Text:         query,
			Num:          batchSize,
			Start:        start,
			DateRestrict: filters.DateRestrict(),
		})
		if err != nil {
			return nil, err
		}

		if len(items) == 0 {
			o.logger.Debug("provider returned empty batch, stopping pagination", zap.Int("start", start))
			break
		}

		for _, item := range items {
			record, err := strategy.Extract(ctx, item)
			if err != nil {
				if !errors.Is(err, parsing.ErrNotListing) {
					o.logger.Warn("dropping unparseable item", zap.String("url", item.Link), zap.Error(err))
				}
				continue
			}
			records.Append(record)
		}

		start += MaxBatchSize

		if records.Len() < filters.NumResults && start <= maxStart {
			if err := utils.WaitFor(ctx, o.delay); err != nil {
				return nil, err
			}
		}
	}

	return records, nil
}

func quote(s string) string {
	return `"` + s + `"`
}
