package resume

import (
	"testing"

	"career-scout/internal/jobs"
)

func TestDeriveKeywordPrefersProfessionalTitle(t *testing.T) {
	rec := &Record{
		ProfessionalTitle: "Data Engineer",
		Experiences:       []Experience{{JobTitle: "Backend Developer"}},
	}

	filters := DeriveFilters(rec, Overrides{})
	if filters.Keyword != "Data Engineer" {
		t.Fatalf("unexpected keyword: %q", filters.Keyword)
	}
}

func TestDeriveKeywordFallsBackToRecentExperience(t *testing.T) {
	rec := &Record{
		ProfessionalTitle: jobs.Unknown,
		Experiences:       []Experience{{JobTitle: "Backend Developer"}, {JobTitle: "Intern"}},
	}

	filters := DeriveFilters(rec, Overrides{})
	if filters.Keyword != "Backend Developer" {
		t.Fatalf("unexpected keyword: %q", filters.Keyword)
	}
}

func TestDeriveKeywordFallsBackToTopSkill(t *testing.T) {
	rec := &Record{
		ProfessionalTitle: jobs.Unknown,
		TechnicalSkills:   []Skill{{Name: "Kubernetes"}},
	}

	filters := DeriveFilters(rec, Overrides{})
	if filters.Keyword != "Kubernetes" {
		t.Fatalf("unexpected keyword: %q", filters.Keyword)
	}
}

func TestDeriveKeywordDefault(t *testing.T) {
	filters := DeriveFilters(&Record{}, Overrides{})
	if filters.Keyword != defaultKeyword {
		t.Fatalf("unexpected keyword: %q", filters.Keyword)
	}
}

func TestDeriveLocationFromContact(t *testing.T) {
	rec := &Record{Contact: ContactInfo{City: "Austin", State: "TX"}}

	filters := DeriveFilters(rec, Overrides{})
	if filters.Location != "Austin, TX" {
		t.Fatalf("unexpected location: %q", filters.Location)
	}
}

func TestDeriveLocationOverrideWins(t *testing.T) {
	rec := &Record{Contact: ContactInfo{City: "Austin", State: "TX"}}

	filters := DeriveFilters(rec, Overrides{Location: "Remote"})
	if filters.Location != "Remote" {
		t.Fatalf("unexpected location: %q", filters.Location)
	}
}

func TestDeriveNeverFabricatesLocation(t *testing.T) {
	rec := &Record{Contact: ContactInfo{City: jobs.Unknown, State: jobs.Unknown}}

	filters := DeriveFilters(rec, Overrides{})
	if filters.Location != "" {
		t.Fatalf("expected empty location, got %q", filters.Location)
	}
}

func TestDeriveExperienceLevelBuckets(t *testing.T) {
	cases := map[string]string{
		"1 year":          LevelEntry,
		"2":               LevelEntry,
		"4 years":         LevelMid,
		"7 years":         LevelSenior,
		"about 12 years":  LevelLead,
		"unknown":         "",
		"many many years": "",
		// Every digit in the value is read, not just the first run.
		"7 years (2015-2022)": LevelLead,
	}

	for years, want := range cases {
		rec := &Record{TotalYearsExperience: years}
		filters := DeriveFilters(rec, Overrides{})
		if filters.ExperienceLevel != want {
			t.Fatalf("level for %q = %q, want %q", years, filters.ExperienceLevel, want)
		}
	}
}

func TestDeriveIncludeEntryLevelOverride(t *testing.T) {
	rec := &Record{TotalYearsExperience: "12 years"}

	filters := DeriveFilters(rec, Overrides{IncludeEntryLevel: true})
	if filters.ExperienceLevel != LevelEntry {
		t.Fatalf("expected entry, got %q", filters.ExperienceLevel)
	}
}

func TestDeriveWorkArrangementFromPreference(t *testing.T) {
	rec := &Record{PreferredWorkType: "Remote"}

	filters := DeriveFilters(rec, Overrides{})
	if filters.WorkArrangement != "remote" {
		t.Fatalf("unexpected work arrangement: %q", filters.WorkArrangement)
	}
}
