package search

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"career-scout/internal/jobs"
	"career-scout/internal/parsing"

	"go.uber.org/zap"
)

type fakeProvider struct {
	batches [][]parsing.Item
	err     error
	calls   []Query
}

func (f *fakeProvider) Fetch(_ context.Context, q Query) ([]parsing.Item, error) {
	f.calls = append(f.calls, q)
	if f.err != nil {
		return nil, f.err
	}
	if len(f.batches) == 0 {
		return nil, nil
	}
	batch := f.batches[0]
	f.batches = f.batches[1:]
	return batch, nil
}

func listingItems(n int) []parsing.Item {
	items := make([]parsing.Item, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, parsing.Item{
			Title:   fmt.Sprintf("Go Developer %d at Acme - LinkedIn", i),
			Link:    fmt.Sprintf("https://www.linkedin.com/jobs/view/%d", 1000+i),
			Snippet: "Full-time. Location: Berlin",
		})
	}
	return items
}

func newTestOrchestrator(provider Provider, model parsing.Strategy) *Orchestrator {
	return New(provider, model, &Config{Delay: time.Nanosecond}, zap.NewNop())
}

func TestSearchPaginatesUntilEnoughRecords(t *testing.T) {
	provider := &fakeProvider{
		batches: [][]parsing.Item{listingItems(10), listingItems(10), listingItems(10)},
	}
	o := newTestOrchestrator(provider, nil)

	result := o.Search(context.Background(), &jobs.FilterSet{Keyword: "golang", NumResults: 25}, parsing.ManualName)

	if !result.Success {
		t.Fatalf("unexpected failure: %s", result.Error)
	}
	if len(provider.calls) != 3 {
		t.Fatalf("expected 3 paginated calls, got %d", len(provider.calls))
	}
	if result.TotalFound != 25 || len(result.Jobs) != 25 {
		t.Fatalf("expected exactly 25 records, got %d", len(result.Jobs))
	}

	wantNums := []int{10, 10, 5}
	wantStarts := []int{1, 11, 21}
	for i, call := range provider.calls {
		if call.Num != wantNums[i] {
			t.Fatalf("call %d: expected num %d, got %d", i, wantNums[i], call.Num)
		}
		if call.Start != wantStarts[i] {
			t.Fatalf("call %d: expected start %d, got %d", i, wantStarts[i], call.Start)
		}
	}
}

func TestSearchSingleBatchWithNonListingItems(t *testing.T) {
	batch := listingItems(5)
	batch = append(batch,
		parsing.Item{Title: "Careers", Link: "https://example.com/careers"},
		parsing.Item{Title: "Blog", Link: "https://example.com/blog"},
	)
	provider := &fakeProvider{batches: [][]parsing.Item{batch}}
	o := newTestOrchestrator(provider, nil)

	filters := &jobs.FilterSet{Keyword: "Python Developer", NumResults: 5}
	result := o.Search(context.Background(), filters, parsing.ManualName)

	if !result.Success {
		t.Fatalf("unexpected failure: %s", result.Error)
	}
	if len(provider.calls) != 1 {
		t.Fatalf("expected a single provider call, got %d", len(provider.calls))
	}
	if result.TotalFound != 5 || len(result.Jobs) != 5 {
		t.Fatalf("expected 5 records, got %d", len(result.Jobs))
	}
	for _, job := range result.Jobs {
		if job.Company.Name == "" || job.Location == "" {
			t.Fatalf("record not populated: %#v", job)
		}
	}
	if result.ParsingMethod != parsing.ManualName {
		t.Fatalf("unexpected parsing method: %q", result.ParsingMethod)
	}
}

func TestSearchStopsOnEmptyBatch(t *testing.T) {
	provider := &fakeProvider{batches: [][]parsing.Item{listingItems(10)}}
	o := newTestOrchestrator(provider, nil)

	result := o.Search(context.Background(), &jobs.FilterSet{Keyword: "golang", NumResults: 30}, parsing.ManualName)

	if !result.Success {
		t.Fatalf("unexpected failure: %s", result.Error)
	}
	if len(provider.calls) != 2 {
		t.Fatalf("expected 2 calls (second batch empty), got %d", len(provider.calls))
	}
	if result.TotalFound != 10 {
		t.Fatalf("expected 10 records, got %d", result.TotalFound)
	}
}

func TestSearchTransportFailureAbortsWholeCall(t *testing.T) {
	provider := &fakeProvider{err: errors.New("connection refused")}
	o := newTestOrchestrator(provider, nil)

	result := o.Search(context.Background(), &jobs.FilterSet{Keyword: "golang", NumResults: 5}, parsing.ManualName)

	if result.Success {
		t.Fatal("expected failure result")
	}
	if len(result.Jobs) != 0 {
		t.Fatalf("expected empty job list, got %d", len(result.Jobs))
	}
	if !strings.Contains(result.Error, "connection refused") {
		t.Fatalf("unexpected error message: %q", result.Error)
	}
	if result.Query == "" {
		t.Fatal("failure result must still echo the query")
	}
	if result.AppliedFilters == nil {
		t.Fatal("post-validation failure must echo the applied filters")
	}
	if result.AppliedFilters.Location != "all locations" {
		t.Fatalf("expected placeholder in failure envelope, got %q", result.AppliedFilters.Location)
	}
}

func TestSearchRequiresKeyword(t *testing.T) {
	provider := &fakeProvider{}
	o := newTestOrchestrator(provider, nil)

	result := o.Search(context.Background(), &jobs.FilterSet{Keyword: "  "}, parsing.ManualName)

	if result.Success {
		t.Fatal("expected failure result")
	}
	if len(provider.calls) != 0 {
		t.Fatal("input errors must not reach the provider")
	}
	if result.AppliedFilters != nil {
		t.Fatal("rejected input must not carry applied filters")
	}
}

func TestSearchAppliedFiltersPlaceholders(t *testing.T) {
	provider := &fakeProvider{batches: [][]parsing.Item{listingItems(1)}}
	o := newTestOrchestrator(provider, nil)

	filters := &jobs.FilterSet{Keyword: "golang", Location: "Berlin", NumResults: 1}
	result := o.Search(context.Background(), filters, parsing.ManualName)

	applied := result.AppliedFilters
	if applied == nil {
		t.Fatal("successful result must carry applied filters")
	}
	if applied.Location != "Berlin" {
		t.Fatalf("expected echoed location, got %q", applied.Location)
	}
	if applied.Company != "all companies" {
		t.Fatalf("expected placeholder, got %q", applied.Company)
	}
	if applied.JobType != "all job types" {
		t.Fatalf("expected placeholder, got %q", applied.JobType)
	}
	if applied.WorkArrangement != "all work arrangements" {
		t.Fatalf("expected placeholder, got %q", applied.WorkArrangement)
	}
	if applied.DateRange != jobs.DateRangePastMonth {
		t.Fatalf("expected defaulted date range, got %q", applied.DateRange)
	}
}

func TestSearchClampsAndDefaults(t *testing.T) {
	provider := &fakeProvider{batches: [][]parsing.Item{listingItems(10)}}
	o := newTestOrchestrator(provider, nil)

	filters := &jobs.FilterSet{Keyword: "golang", NumResults: 500, DateRange: "since-forever"}
	result := o.Search(context.Background(), filters, parsing.ManualName)

	if filters.NumResults != jobs.MaxResults {
		t.Fatalf("expected clamp to %d, got %d", jobs.MaxResults, filters.NumResults)
	}
	if provider.calls[0].DateRestrict != "m1" {
		t.Fatalf("expected m1 date restrict, got %q", provider.calls[0].DateRestrict)
	}
	if !result.Success {
		t.Fatalf("unexpected failure: %s", result.Error)
	}
}

func TestSearchQueryBuilding(t *testing.T) {
	provider := &fakeProvider{batches: [][]parsing.Item{listingItems(1)}}
	o := newTestOrchestrator(provider, nil)

	filters := &jobs.FilterSet{
		Keyword:           "Software Engineer",
		Company:           "Acme Corp",
		ExactMatchCompany: true,
		Location:          "Berlin",
		WorkArrangement:   "remote",
		NumResults:        1,
	}
	o.Search(context.Background(), filters, parsing.ManualName)

	query := provider.calls[0].Text
	if !strings.HasPrefix(query, "site:linkedin.com/jobs ") {
		t.Fatalf("query must be site-scoped: %q", query)
	}
	if !strings.Contains(query, `"Acme Corp"`) {
		t.Fatalf("exact-match company must be quoted: %q", query)
	}
	if !strings.Contains(query, "Berlin") || !strings.Contains(query, "remote") {
		t.Fatalf("set filters must appear in the query: %q", query)
	}
	if strings.Contains(query, "all ") {
		t.Fatalf("placeholders must never leak into the query: %q", query)
	}
}

func TestSearchDowngradesWhenModelUnavailable(t *testing.T) {
	provider := &fakeProvider{batches: [][]parsing.Item{listingItems(1)}}
	o := newTestOrchestrator(provider, nil)

	result := o.Search(context.Background(), &jobs.FilterSet{Keyword: "golang", NumResults: 1}, "llm")

	if !result.Success {
		t.Fatalf("unexpected failure: %s", result.Error)
	}
	if result.ParsingMethod != parsing.ManualName {
		t.Fatalf("expected downgrade to manual, got %q", result.ParsingMethod)
	}
}

func TestSearchUnknownMethodSelectsManual(t *testing.T) {
	for _, method := range []string{"MANUAL", "LLM", "turbo"} {
		provider := &fakeProvider{batches: [][]parsing.Item{listingItems(1)}}
		o := newTestOrchestrator(provider, &failingModel{})

		result := o.Search(context.Background(), &jobs.FilterSet{Keyword: "golang", NumResults: 1}, method)

		if !result.Success {
			t.Fatalf("method %q: unexpected failure: %s", method, result.Error)
		}
		if result.ParsingMethod != parsing.ManualName {
			t.Fatalf("method %q resolved to %q, want %q", method, result.ParsingMethod, parsing.ManualName)
		}
	}
}

type failingModel struct{}

func (f *failingModel) Name() string { return "llm" }

func (f *failingModel) Extract(context.Context, parsing.Item) (*jobs.Record, error) {
	return nil, errors.New("schema violation")
}

func TestSearchModelFailuresFallBackPerItem(t *testing.T) {
	provider := &fakeProvider{batches: [][]parsing.Item{listingItems(3)}}
	o := newTestOrchestrator(provider, &failingModel{})

	result := o.Search(context.Background(), &jobs.FilterSet{Keyword: "golang", NumResults: 3}, "llm")

	if !result.Success {
		t.Fatalf("unexpected failure: %s", result.Error)
	}
	if result.TotalFound != 3 {
		t.Fatalf("fallback must keep all items, got %d", result.TotalFound)
	}
	if result.ParsingMethod != "llm" {
		t.Fatalf("expected llm method in metadata, got %q", result.ParsingMethod)
	}
	for _, job := range result.Jobs {
		if job.Company.Name != "Acme" {
			t.Fatalf("expected deterministic extraction via fallback, got %q", job.Company.Name)
		}
	}
}
