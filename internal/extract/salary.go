package extract

import (
	"regexp"
	"strings"
)

// For the numeric forms the whole match is the value; for labeled fields only
// the text after the label is.
var salaryNumericPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\$[\d,]+(?:\s*-\s*\$[\d,]+)?(?:\s*(?:per\s+)?(?:year|month|hour|annually))?`),
	regexp.MustCompile(`(?i)[\d,]+\s*-\s*[\d,]+\s*(?:USD|VND|EUR|GBP)`),
}

var salaryLabeledPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)Salary:\s*([^\n.,]+)`),
	regexp.MustCompile(`(?i)Compensation:\s*([^\n.,]+)`),
	regexp.MustCompile(`(?i)Pay:\s*([^\n.,]+)`),
}

// Salary pulls compensation text out of the snippet. The value stays free
// text; no numeric parsing is attempted.
func Salary(snippet string) string {
	for _, re := range salaryNumericPatterns {
		if m := re.FindString(snippet); m != "" {
			return m
		}
	}
	for _, re := range salaryLabeledPatterns {
		if m := re.FindStringSubmatch(snippet); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return NotSpecified
}
