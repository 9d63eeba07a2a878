// Package parsing turns raw search result items into normalized job records.
// Two interchangeable strategies exist: the deterministic rule-based parser
// and the model-based extractor, with a per-item fallback from the second to
// the first.
package parsing

import (
	"context"
	"errors"

	"career-scout/internal/jobs"
)

// Item is one raw search result as the search provider returns it.
type Item struct {
	Title       string `json:"title"`
	Link        string `json:"link"`
	Snippet     string `json:"snippet"`
	DisplayLink string `json:"displayLink"`
}

// ErrNotListing marks items whose URL does not belong to the job-listing
// domain. Such items are skipped, not treated as failures.
var ErrNotListing = errors.New("not a job listing url")

// Strategy extracts a job record from one raw item.
type Strategy interface {
	Name() string
	Extract(ctx context.Context, item Item) (*jobs.Record, error)
}
