package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"unicode/utf8"

	_ "embed"

	"career-scout/internal/jobs"
	"career-scout/internal/logger"
	"career-scout/internal/parsing"

	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"
)

//go:embed job_prompt.md
var jobPrompt string

// ModelBasedName identifies the model-based strategy in result metadata.
const ModelBasedName = "llm"

const defaultMaxLogLength = 200

type jsonGenerator interface {
	GenerateJSON(ctx context.Context, system, prompt string) (string, error)
	Model() string
}

// JobExtractor is the model-based extraction strategy: it sends one raw item
// per invocation to the model provider and decodes the schema-constrained
// JSON answer into a job record.
type JobExtractor struct {
	generator jsonGenerator
	logger    *zap.Logger
	maxLogLen int
}

func NewJobExtractor(generator jsonGenerator, log *zap.Logger, maxLogLength int) *JobExtractor {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}

	return &JobExtractor{
		generator: generator,
		logger:    logger.WithProvider(log, "gemini", generator.Model()),
		maxLogLen: maxLogLength,
	}
}

func (e *JobExtractor) Name() string { return ModelBasedName }

// Extract implements parsing.Strategy. Any provider or conformance error is
// returned to the caller, which retries the item deterministically.
func (e *JobExtractor) Extract(ctx context.Context, item parsing.Item) (*jobs.Record, error) {
	if !parsing.IsListing(item) {
		return nil, parsing.ErrNotListing
	}

	prompt := fmt.Sprintf("Title: %s\nURL: %s\nSnippet: %s", item.Title, item.Link, item.Snippet)

	e.logger.Debug("gemini job extraction request",
		zap.String("url", item.Link),
		zap.Int("prompt_length", utf8.RuneCountInString(prompt)),
	)

	raw, err := e.generator.GenerateJSON(ctx, jobPrompt, prompt)
	if err != nil {
		return nil, err
	}

	e.logger.Debug("gemini job extraction response",
		zap.String("url", item.Link),
		zap.String("response_preview", logger.TruncateForLog(raw, e.maxLogLen)),
	)

	record, err := decodeRecord(raw)
	if err != nil {
		return nil, err
	}

	record.JobID = parsing.JobID(item.Link)
	record.URL = item.Link
	record.Source = jobs.SourceLinkedIn

	if err := record.Validate(); err != nil {
		return nil, fmt.Errorf("model output does not conform to the job schema: %w", err)
	}

	record.Normalize()

	return record, nil
}

// decodeRecord parses the model response into a record. The intermediate
// map plus weakly-typed decode tolerates the model emitting numbers where
// strings belong.
func decodeRecord(raw string) (*jobs.Record, error) {
	cleaned := extractJSON(raw)

	var data map[string]any
	if err := json.Unmarshal([]byte(cleaned), &data); err != nil {
		return nil, fmt.Errorf("parse gemini response: %w", err)
	}

	var record jobs.Record
	cfg := &mapstructure.DecoderConfig{
		Result:           &record,
		TagName:          "json",
		WeaklyTypedInput: true,
	}
	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(data); err != nil {
		return nil, fmt.Errorf("decode gemini response: %w", err)
	}

	return &record, nil
}
