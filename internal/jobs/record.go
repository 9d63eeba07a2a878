package jobs

import (
	"encoding/json"
	"fmt"
	"os"
)

const (
	// Unknown is the sentinel stored in any scalar field with no extracted
	// value. Scalars are never empty and never null; list fields are never
	// Unknown and default to an empty slice instead. Downstream consumers
	// branch on this asymmetry.
	Unknown = "unknown"

	SourceLinkedIn = "linkedin"
)

// Record is a normalized job posting assembled from one raw search result.
type Record struct {
	JobID          string `json:"job_id"`
	Title          string `json:"title"`
	SeniorityLevel string `json:"seniority_level"`

	Company CompanyInfo `json:"company_info"`

	Location        string `json:"location"`
	WorkArrangement string `json:"work_arrangement"`
	JobType         string `json:"job_type"`
	Department      string `json:"department"`

	// Salary keeps the free-text compensation capture from the rule-based
	// extractor; the min/max/currency/period split is only filled by the
	// model-based strategy. All stay free text, never parsed into numbers.
	Salary         string   `json:"salary"`
	SalaryMin      string   `json:"salary_min"`
	SalaryMax      string   `json:"salary_max"`
	SalaryCurrency string   `json:"salary_currency"`
	SalaryPeriod   string   `json:"salary_period"`
	Equity         string   `json:"equity"`
	Benefits       []string `json:"benefits"`

	Description      string   `json:"description"`
	Responsibilities []string `json:"responsibilities"`

	RequiredSkills  []string `json:"required_skills"`
	PreferredSkills []string `json:"preferred_skills"`
	SoftSkills      []string `json:"soft_skills"`

	EducationRequirements  []string `json:"education_requirements"`
	ExperienceRequirements []string `json:"experience_requirements"`
	CertificationsRequired []string `json:"certifications_required"`
	LanguagesRequired      []string `json:"languages_required"`
	Technologies           []string `json:"technologies"`
	ProgrammingLanguages   []string `json:"programming_languages"`

	PostedDate          string `json:"posted_date"`
	ApplicationDeadline string `json:"application_deadline"`
	ApplicationURL      string `json:"application_url"`
	RecruiterContact    string `json:"recruiter_contact"`

	TravelRequirements string `json:"travel_requirements"`
	SecurityClearance  string `json:"security_clearance"`
	VisaSponsorship    string `json:"visa_sponsorship"`

	URL         string `json:"url"`
	Source      string `json:"source"`
	JobFunction string `json:"job_function"`
}

// CompanyInfo describes the hiring company as far as the snippet reveals it.
type CompanyInfo struct {
	Name         string `json:"name"`
	Industry     string `json:"industry"`
	Size         string `json:"size"`
	Description  string `json:"description"`
	Website      string `json:"website"`
	Headquarters string `json:"headquarters"`
}

// Normalize enforces the absence conventions on a freshly built record:
// every empty scalar becomes the Unknown sentinel and every nil list becomes
// an empty slice. It is safe to call on records from any extraction strategy.
func (r *Record) Normalize() {
	for _, field := range []*string{
		&r.JobID, &r.Title, &r.SeniorityLevel,
		&r.Company.Name, &r.Company.Industry, &r.Company.Size,
		&r.Company.Description, &r.Company.Website, &r.Company.Headquarters,
		&r.Location, &r.WorkArrangement, &r.JobType, &r.Department,
		&r.Salary, &r.SalaryMin, &r.SalaryMax, &r.SalaryCurrency, &r.SalaryPeriod, &r.Equity,
		&r.Description,
		&r.PostedDate, &r.ApplicationDeadline, &r.ApplicationURL, &r.RecruiterContact,
		&r.TravelRequirements, &r.SecurityClearance, &r.VisaSponsorship,
		&r.URL, &r.JobFunction,
	} {
		if *field == "" {
			*field = Unknown
		}
	}

	if r.Source == "" {
		r.Source = SourceLinkedIn
	}

	for _, list := range []*[]string{
		&r.Benefits, &r.Responsibilities,
		&r.RequiredSkills, &r.PreferredSkills, &r.SoftSkills,
		&r.EducationRequirements, &r.ExperienceRequirements,
		&r.CertificationsRequired, &r.LanguagesRequired,
		&r.Technologies, &r.ProgrammingLanguages,
	} {
		if *list == nil {
			*list = []string{}
		}
	}
}

// Validate reports records that break the absence conventions. Normalize
// always produces a valid record; Validate exists for output coming from the
// model provider, which is the one source that gets this wrong. A failing
// record is not repaired: the caller falls back to deterministic extraction.
func (r *Record) Validate() error {
	if r.Title == "" {
		return fmt.Errorf("scalar field title is empty instead of %q", Unknown)
	}
	for name, list := range map[string][]string{
		"benefits":                r.Benefits,
		"responsibilities":        r.Responsibilities,
		"required_skills":         r.RequiredSkills,
		"preferred_skills":        r.PreferredSkills,
		"soft_skills":             r.SoftSkills,
		"education_requirements":  r.EducationRequirements,
		"experience_requirements": r.ExperienceRequirements,
		"certifications_required": r.CertificationsRequired,
		"languages_required":      r.LanguagesRequired,
		"technologies":            r.Technologies,
		"programming_languages":   r.ProgrammingLanguages,
	} {
		for _, v := range list {
			if v == Unknown {
				return fmt.Errorf("list field %s carries the %q sentinel", name, Unknown)
			}
		}
	}
	return nil
}

// Records is a list of parsed job postings.
type Records struct {
	Items []*Record
}

func (r *Records) Len() int {
	return len(r.Items)
}

func (r *Records) Append(rec *Record) {
	r.Items = append(r.Items, rec)
}

// Truncate keeps at most n records, preserving order.
func (r *Records) Truncate(n int) {
	if n >= 0 && len(r.Items) > n {
		r.Items = r.Items[:n]
	}
}

// ReportByCompany groups the records by hiring company for a compact
// terminal summary.
func (r *Records) ReportByCompany() map[string][]map[string]string {
	report := make(map[string][]map[string]string)
	for _, record := range r.Items {
		key := record.Company.Name
		report[key] = append(report[key], map[string]string{
			"title":    record.Title,
			"url":      record.URL,
			"location": record.Location,
			"job type": record.JobType,
			"posted":   record.PostedDate,
		})
	}
	return report
}

// DumpToTmpFile writes the records to a temporary JSON file and returns its name.
func (r *Records) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "jobs_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return "", err
	}
	return file.Name(), nil
}
