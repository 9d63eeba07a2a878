package extract

import (
	"regexp"
	"strings"
)

// NotSpecified is the absence value shared by the job type and salary extractors.
const NotSpecified = "Not specified"

var jobTypePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(Full[- ]time|Part[- ]time|Contract|Freelance|Internship|Temporary|Permanent)\b`),
	regexp.MustCompile(`(?i)Employment Type:\s*([^\n.,]+)`),
	regexp.MustCompile(`(?i)Job Type:\s*([^\n.,]+)`),
	regexp.MustCompile(`(?i)Position Type:\s*([^\n.,]+)`),
}

// JobType pulls an employment category out of the snippet: either a canonical
// token or a labeled field.
func JobType(snippet string) string {
	for _, re := range jobTypePatterns {
		if m := re.FindStringSubmatch(snippet); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return NotSpecified
}
