// Package search queries an external web search provider scoped to the
// job-listing site and orchestrates extraction over the returned items.
package search

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"career-scout/internal/parsing"

	"go.uber.org/zap"
)

const (
	apiURL = "https://www.googleapis.com/customsearch/v1"

	// The provider returns at most 10 items per call and enforces a hard
	// ceiling of 100 results per query.
	MaxBatchSize    = 10
	MaxTotalResults = 100

	safeSearch = "medium"
	itemFields = "items(title,link,snippet,displayLink)"
)

// Query is one paginated request to the search provider.
type Query struct {
	Text         string
	Num          int
	Start        int
	DateRestrict string
}

// Provider returns one batch of ranked search results.
type Provider interface {
	Fetch(ctx context.Context, q Query) ([]parsing.Item, error)
}

// GoogleCSE talks to the Google Custom Search Engine API.
type GoogleCSE struct {
	apiKey   string
	engineID string
	logger   *zap.Logger

	HTTPClient *http.Client
	APIURL     string
}

// NewGoogleCSE builds the provider client. Missing credentials fail here,
// before any network call is attempted.
func NewGoogleCSE(apiKey, engineID string, logger *zap.Logger) (*GoogleCSE, error) {
	if apiKey == "" {
		return nil, errors.New("google api key is required")
	}
	if engineID == "" {
		return nil, errors.New("google search engine id is required")
	}

	return &GoogleCSE{
		apiKey:   apiKey,
		engineID: engineID,
		logger:   logger,
		APIURL:   apiURL,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

func (c *GoogleCSE) Fetch(ctx context.Context, q Query) ([]parsing.Item, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.APIURL, nil)
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("key", c.apiKey)
	params.Set("cx", c.engineID)
	params.Set("q", q.Text)
	params.Set("num", strconv.Itoa(q.Num))
	params.Set("start", strconv.Itoa(q.Start))
	params.Set("dateRestrict", q.DateRestrict)
	params.Set("safe", safeSearch)
	params.Set("fields", itemFields)
	req.URL.RawQuery = params.Encode()

	c.logger.Debug("make search request",
		zap.String("query", q.Text),
		zap.Int("num", q.Num),
		zap.Int("start", q.Start),
	)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("bad status: %s", resp.Status)
	}

	var response struct {
		Items []parsing.Item `json:"items"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, err
	}

	return response.Items, nil
}
