package jobs

import "testing"

func TestNormalizeClampsNumResults(t *testing.T) {
	cases := []struct {
		in   int
		want int
	}{
		{0, MinResults},
		{-3, MinResults},
		{1, 1},
		{50, 50},
		{500, MaxResults},
	}

	for _, tc := range cases {
		f := &FilterSet{NumResults: tc.in}
		f.Normalize()
		if f.NumResults != tc.want {
			t.Fatalf("NumResults %d: expected clamp to %d, got %d", tc.in, tc.want, f.NumResults)
		}
	}
}

func TestNormalizeDefaultsDateRange(t *testing.T) {
	for _, invalid := range []string{"", "last-decade", "PAST-WEEK"} {
		f := &FilterSet{DateRange: invalid}
		f.Normalize()
		if f.DateRange != DateRangePastMonth {
			t.Fatalf("date range %q: expected past-month default, got %q", invalid, f.DateRange)
		}
	}

	f := &FilterSet{DateRange: DateRangePastWeek}
	f.Normalize()
	if f.DateRange != DateRangePastWeek {
		t.Fatalf("valid date range must survive normalization, got %q", f.DateRange)
	}
}

func TestDateRestrictCodes(t *testing.T) {
	cases := map[string]string{
		DateRangePastDay:     "d1",
		DateRangePastWeek:    "w1",
		DateRangePastMonth:   "m1",
		DateRangePast2Months: "m2",
		DateRangePast3Months: "m3",
		DateRangePast6Months: "m6",
		DateRangePastYear:    "y1",
	}

	for in, want := range cases {
		f := &FilterSet{DateRange: in}
		if got := f.DateRestrict(); got != want {
			t.Fatalf("%s: expected %s, got %s", in, want, got)
		}
	}
}

func TestAppliedPlaceholders(t *testing.T) {
	f := &FilterSet{Keyword: "golang", Location: "Hanoi", DateRange: DateRangePastMonth}
	applied := f.Applied()

	if applied.Location != "Hanoi" {
		t.Fatalf("set filters must be echoed, got %q", applied.Location)
	}
	if applied.JobType != "all job types" {
		t.Fatalf("unset job type: got %q", applied.JobType)
	}
	if applied.ExperienceLevel != "all experience levels" {
		t.Fatalf("unset experience level: got %q", applied.ExperienceLevel)
	}
	if applied.Industry != "all industries" {
		t.Fatalf("unset industry: got %q", applied.Industry)
	}
	if applied.DateRange != DateRangePastMonth {
		t.Fatalf("date range is echoed verbatim, got %q", applied.DateRange)
	}
}
