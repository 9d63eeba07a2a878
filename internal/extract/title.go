// Package extract holds the rule-based field extractors used by the
// deterministic parsing strategy. Each extractor is a pure function of its
// text input: it walks an ordered list of patterns, keeps the first match
// that passes a plausibility filter and falls back to a fixed absence value.
// Pattern order encodes confidence: labeled fields outrank inferred ones.
package extract

import (
	"regexp"
	"strings"
)

// Search engines decorate result titles with a trailing site attribution.
// Both the plain hyphen and the en-dash variant show up in the wild.
var titleSuffixes = []*regexp.Regexp{
	regexp.MustCompile(`\s*-\s*LinkedIn.*$`),
	regexp.MustCompile(`\s*\|\s*LinkedIn.*$`),
	regexp.MustCompile(`\s*–\s*LinkedIn.*$`),
}

// CleanTitle strips trailing site-attribution suffixes from a search result
// title. The rest of the title is preserved verbatim.
func CleanTitle(title string) string {
	for _, re := range titleSuffixes {
		title = re.ReplaceAllString(title, "")
	}
	return strings.TrimSpace(title)
}
