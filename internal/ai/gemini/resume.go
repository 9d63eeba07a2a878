package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	_ "embed"

	"career-scout/internal/logger"
	"career-scout/internal/resume"

	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"
)

//go:embed resume_prompt.md
var resumePrompt string

// ResumeExtractor turns raw résumé text into a structured candidate profile
// via the model provider.
type ResumeExtractor struct {
	generator jsonGenerator
	logger    *zap.Logger
	maxLogLen int
}

func NewResumeExtractor(generator jsonGenerator, log *zap.Logger, maxLogLength int) *ResumeExtractor {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}

	return &ResumeExtractor{
		generator: generator,
		logger:    logger.WithProvider(log, "gemini", generator.Model()),
		maxLogLen: maxLogLength,
	}
}

func (e *ResumeExtractor) Extract(ctx context.Context, text string) (*resume.Record, error) {
	if strings.TrimSpace(text) == "" {
		return nil, errors.New("resume text is empty")
	}

	e.logger.Debug("gemini resume extraction request",
		zap.Int("text_length", utf8.RuneCountInString(text)),
	)

	raw, err := e.generator.GenerateJSON(ctx, resumePrompt, "Resume/CV Content:\n"+text)
	if err != nil {
		return nil, err
	}

	e.logger.Debug("gemini resume extraction response",
		zap.String("response_preview", logger.TruncateForLog(raw, e.maxLogLen)),
	)

	cleaned := extractJSON(raw)

	var data map[string]any
	if err := json.Unmarshal([]byte(cleaned), &data); err != nil {
		return nil, fmt.Errorf("parse gemini response: %w", err)
	}

	var record resume.Record
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

	record.Normalize()

	return &record, nil
}
