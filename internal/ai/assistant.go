package ai

import (
	"context"

	"career-scout/internal/resume"
)

// ResumeExtractor turns raw résumé text into a structured candidate profile.
// Job extraction is expressed as a parsing.Strategy instead, since it
// competes with the deterministic parser per item.
type ResumeExtractor interface {
	Extract(ctx context.Context, text string) (*resume.Record, error)
}
