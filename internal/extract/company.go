package extract

import (
	"regexp"
	"strings"
)

// UnknownCompany is returned when no company pattern matches.
const UnknownCompany = "Unknown Company"

// Title-embedded company patterns. LinkedIn titles separate the company with
// "at", a middle dot, a dash or a pipe.
var companyTitlePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)at\s+([^·\-|]+?)(?:\s*[·\-|]|\s*$)`),
	regexp.MustCompile(`(?i)·\s*([^·\-|]+?)(?:\s*[·\-|]|\s*$)`),
	regexp.MustCompile(`(?i)-\s*([^·\-|]+?)(?:\s*[·\-|]|\s*$)`),
	regexp.MustCompile(`(?i)\|\s*([^·\-|]+?)(?:\s*[·\-|]|\s*$)`),
}

// Label-prefixed company patterns looked up in the snippet.
var companySnippetPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)Company:\s*([^\n.,]+)`),
	regexp.MustCompile(`(?i)Organization:\s*([^\n.,]+)`),
	regexp.MustCompile(`(?i)Employer:\s*([^\n.,]+)`),
	regexp.MustCompile(`(?i)Job at\s+([^\n.,]+)`),
	regexp.MustCompile(`(?i)Position at\s+([^\n.,]+)`),
}

var companyNoiseWords = []string{"job", "career", "hiring", "posted"}

// Company pulls the hiring company name out of the title or the snippet.
// Matches shorter than 3 characters or containing generic noise words are
// rejected so separators inside plain prose do not produce garbage values.
func Company(title, snippet string) string {
	for _, re := range companyTitlePatterns {
		if m := re.FindStringSubmatch(title); m != nil {
			company := strings.TrimSpace(m[1])
			if len(company) > 2 && !containsAny(company, companyNoiseWords) {
				return company
			}
		}
	}

	for _, re := range companySnippetPatterns {
		if m := re.FindStringSubmatch(snippet); m != nil {
			company := strings.TrimSpace(m[1])
			if len(company) > 2 {
				return company
			}
		}
	}

	return UnknownCompany
}

func containsAny(s string, words []string) bool {
	lower := strings.ToLower(s)
	for _, word := range words {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}
