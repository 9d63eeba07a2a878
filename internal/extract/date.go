package extract

import (
	"regexp"
	"strings"
)

// DateNotSpecified is returned when no posting date pattern matches.
const DateNotSpecified = "Date not specified"

// Labeled dates outrank relative-time phrases, which outrank absolute dates.
var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)Posted:\s*([^\n.,]+)`),
	regexp.MustCompile(`(?i)Published:\s*([^\n.,]+)`),
	regexp.MustCompile(`(?i)(\d+\s+(?:days?|hours?|weeks?|months?)\s+ago)`),
	regexp.MustCompile(`(\d{1,2}/\d{1,2}/\d{4})`),
	regexp.MustCompile(`(\d{4}-\d{2}-\d{2})`),
}

// PostedDate pulls the posting date out of the snippet as free text.
func PostedDate(snippet string) string {
	for _, re := range datePatterns {
		if m := re.FindStringSubmatch(snippet); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return DateNotSpecified
}
