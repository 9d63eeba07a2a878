package jobs

import (
	"fmt"
	"strings"
)

const (
	// Bounds for the number of requested results.
	MinResults = 1
	MaxResults = 50

	defaultDateRange = DateRangePastMonth
)

// Recognized posting-recency ranges and their provider dateRestrict codes.
const (
	DateRangePastDay     = "past-day"
	DateRangePastWeek    = "past-week"
	DateRangePastMonth   = "past-month"
	DateRangePast2Months = "past-2-months"
	DateRangePast3Months = "past-3-months"
	DateRangePast6Months = "past-6-months"
	DateRangePastYear    = "past-year"
)

var dateRestricts = map[string]string{
	DateRangePastDay:     "d1",
	DateRangePastWeek:    "w1",
	DateRangePastMonth:   "m1",
	DateRangePast2Months: "m2",
	DateRangePast3Months: "m3",
	DateRangePast6Months: "m6",
	DateRangePastYear:    "y1",
}

// FilterSet is the structured collection of search constraints supplied by a
// caller. Keyword is required; every other filter is optional and an unset
// filter means "no constraint" and is never guessed or defaulted to a value.
type FilterSet struct {
	Keyword         string `mapstructure:"keyword"`
	Location        string `mapstructure:"location"`
	JobType         string `mapstructure:"job_type"`
	ExperienceLevel string `mapstructure:"experience_level"`
	Company         string `mapstructure:"company"`
	Industry        string `mapstructure:"industry"`
	DateRange       string `mapstructure:"date_range"`
	SalaryRange     string `mapstructure:"salary_range"`
	WorkArrangement string `mapstructure:"work_arrangement"`
	JobFunction     string `mapstructure:"job_function"`

	NumResults        int  `mapstructure:"num_results"`
	ExactMatchCompany bool `mapstructure:"exact_match_company"`
	IncludeSimilar    bool `mapstructure:"include_similar"`
}

// Normalize clamps NumResults into [MinResults, MaxResults] and replaces an
// unrecognized DateRange with the past-month default. Optional filters are
// left untouched: absence must survive normalization.
func (f *FilterSet) Normalize() {
	if f.NumResults < MinResults {
		f.NumResults = MinResults
	}
	if f.NumResults > MaxResults {
		f.NumResults = MaxResults
	}

	if _, ok := dateRestricts[f.DateRange]; !ok {
		f.DateRange = defaultDateRange
	}
}

// Validate checks the caller-supplied inputs that cannot be repaired.
func (f *FilterSet) Validate() error {
	if strings.TrimSpace(f.Keyword) == "" {
		return fmt.Errorf("search keyword is required")
	}
	return nil
}

// DateRestrict returns the provider recency code for the filter's date range.
func (f *FilterSet) DateRestrict() string {
	if code, ok := dateRestricts[f.DateRange]; ok {
		return code
	}
	return dateRestricts[defaultDateRange]
}

// AppliedFilters echoes the filter values back to the caller. Unset
// dimensions are rendered as the literal "all <dimension>" placeholder,
// never as an empty string and never omitted.
type AppliedFilters struct {
	Location        string `json:"location"`
	JobType         string `json:"job_type"`
	ExperienceLevel string `json:"experience_level"`
	Company         string `json:"company"`
	Industry        string `json:"industry"`
	DateRange       string `json:"date_range"`
	SalaryRange     string `json:"salary_range"`
	WorkArrangement string `json:"work_arrangement"`
	JobFunction     string `json:"job_function"`
}

func (f *FilterSet) Applied() AppliedFilters {
	return AppliedFilters{
		Location:        orAll(f.Location, "locations"),
		JobType:         orAll(f.JobType, "job types"),
		ExperienceLevel: orAll(f.ExperienceLevel, "experience levels"),
		Company:         orAll(f.Company, "companies"),
		Industry:        orAll(f.Industry, "industries"),
		DateRange:       f.DateRange,
		SalaryRange:     orAll(f.SalaryRange, "salary ranges"),
		WorkArrangement: orAll(f.WorkArrangement, "work arrangements"),
		JobFunction:     orAll(f.JobFunction, "job functions"),
	}
}

func orAll(value, dimension string) string {
	if strings.TrimSpace(value) == "" {
		return "all " + dimension
	}
	return value
}
