package parsing

import (
	"context"
	"regexp"
	"strings"

	"career-scout/internal/extract"
	"career-scout/internal/jobs"
)

const (
	// ManualName identifies the deterministic strategy in result metadata.
	ManualName = "manual"

	// listingPath is the URL fragment every job-view link carries.
	listingPath = "linkedin.com/jobs"
)

var jobIDPattern = regexp.MustCompile(`/jobs/view/(\d+)`)

// Manual is the deterministic, rule-based extraction strategy. It never
// calls external services and is a pure function of the item text.
type Manual struct{}

func NewManual() *Manual {
	return &Manual{}
}

func (m *Manual) Name() string { return ManualName }

// Extract builds a job record from the item using the field extractors.
// Items outside the job-listing domain yield ErrNotListing.
func (m *Manual) Extract(_ context.Context, item Item) (*jobs.Record, error) {
	if !IsListing(item) {
		return nil, ErrNotListing
	}

	title := extract.CleanTitle(item.Title)

	record := &jobs.Record{
		JobID:       JobID(item.Link),
		Title:       title,
		Location:    extract.Location(item.Snippet),
		JobType:     extract.JobType(item.Snippet),
		PostedDate:  extract.PostedDate(item.Snippet),
		Description: item.Snippet,
		URL:         item.Link,
		Source:      jobs.SourceLinkedIn,
	}
	record.Company.Name = extract.Company(title, item.Snippet)
	record.Salary = extract.Salary(item.Snippet)

	record.Normalize()

	return record, nil
}

// IsListing reports whether the item's URL belongs to the job-listing domain.
func IsListing(item Item) bool {
	return strings.Contains(item.Link, listingPath)
}

// JobID extracts the numeric job identifier from a job-view URL. It returns
// an empty string when the URL carries no identifier.
func JobID(link string) string {
	if m := jobIDPattern.FindStringSubmatch(link); m != nil {
		return m[1]
	}
	return ""
}
