package extract

import (
	"regexp"
	"strings"
)

// LocationNotSpecified is returned when no location pattern matches.
const LocationNotSpecified = "Location not specified"

var locationPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)Location:\s*([^\n.,]+)`),
	regexp.MustCompile(`(?i)Based in:\s*([^\n.,]+)`),
	regexp.MustCompile(`(?i)Office location:\s*([^\n.,]+)`),
	// Generic "City, State" or "City, State, Country" shape.
	regexp.MustCompile(`([A-Za-z\s]+,\s*[A-Za-z\s]+(?:,\s*[A-Za-z\s]+)?)`),
	regexp.MustCompile(`(?i)Remote\s*-\s*([^\n.,]+)`),
	regexp.MustCompile(`(?i)Hybrid\s*-\s*([^\n.,]+)`),
}

var locationNoiseWords = []string{"experience", "years", "apply", "job", "position", "role"}

var (
	remoteKeywords = regexp.MustCompile(`(?i)\b(remote|work from home|wfh)\b`)
	hybridKeyword  = regexp.MustCompile(`(?i)\bhybrid\b`)
)

// Location pulls a work location out of the snippet. Structured patterns win;
// a bare remote/hybrid keyword is the last resort before the absence value.
func Location(snippet string) string {
	for _, re := range locationPatterns {
		for _, m := range re.FindAllStringSubmatch(snippet, -1) {
			location := strings.TrimSpace(m[1])
			if len(location) > 2 && !containsAny(location, locationNoiseWords) {
				return location
			}
		}
	}

	if remoteKeywords.MatchString(snippet) {
		return "Remote"
	}
	if hybridKeyword.MatchString(snippet) {
		return "Hybrid"
	}

	return LocationNotSpecified
}
