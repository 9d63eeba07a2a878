// Package resume models structured candidate profiles and derives job search
// filters from them.
package resume

import "career-scout/internal/jobs"

// Record is a normalized candidate profile extracted from a résumé document.
// It follows the same absence conventions as jobs.Record: scalars carry the
// "unknown" sentinel when missing, collections default to empty slices.
type Record struct {
	FullName          string      `json:"full_name"`
	ProfessionalTitle string      `json:"professional_title"`
	Contact           ContactInfo `json:"contact_info"`
	Summary           string      `json:"summary"`

	Experiences []Experience `json:"experiences"`
	Education   []Education  `json:"education"`

	TechnicalSkills []Skill  `json:"technical_skills"`
	SoftSkills      []string `json:"soft_skills"`

	Languages      []Language      `json:"languages"`
	Certifications []Certification `json:"certifications"`
	Projects       []Project       `json:"projects"`

	Awards              []string `json:"awards"`
	Publications        []string `json:"publications"`
	VolunteerExperience []string `json:"volunteer_experience"`
	Interests           []string `json:"interests"`

	TotalYearsExperience string `json:"total_years_experience"`
	CurrentSalary        string `json:"current_salary"`
	ExpectedSalary       string `json:"expected_salary"`
	Availability         string `json:"availability"`
	PreferredWorkType    string `json:"preferred_work_type"`
}

type ContactInfo struct {
	Email         string   `json:"email"`
	Phone         string   `json:"phone"`
	Address       string   `json:"address"`
	City          string   `json:"city"`
	State         string   `json:"state"`
	Country       string   `json:"country"`
	PostalCode    string   `json:"postal_code"`
	LinkedIn      string   `json:"linkedin"`
	GitHub        string   `json:"github"`
	Portfolio     string   `json:"portfolio"`
	OtherProfiles []string `json:"other_profiles"`
}

type Experience struct {
	JobTitle         string   `json:"job_title"`
	Company          string   `json:"company"`
	Location         string   `json:"location"`
	StartDate        string   `json:"start_date"`
	EndDate          string   `json:"end_date"`
	Duration         string   `json:"duration"`
	EmploymentType   string   `json:"employment_type"`
	Description      string   `json:"description"`
	Achievements     []string `json:"achievements"`
	TechnologiesUsed []string `json:"technologies_used"`
	Industry         string   `json:"industry"`
}

type Education struct {
	Institution        string   `json:"institution"`
	Degree             string   `json:"degree"`
	Major              string   `json:"major"`
	Minor              string   `json:"minor"`
	GPA                string   `json:"gpa"`
	StartDate          string   `json:"start_date"`
	EndDate            string   `json:"end_date"`
	Location           string   `json:"location"`
	Honors             []string `json:"honors"`
	RelevantCoursework []string `json:"relevant_coursework"`
	ThesisProject      string   `json:"thesis_project"`
}

type Skill struct {
	Name              string `json:"name"`
	Category          string `json:"category"`
	ProficiencyLevel  string `json:"proficiency_level"`
	YearsOfExperience string `json:"years_of_experience"`
}

type Language struct {
	Language      string `json:"language"`
	Proficiency   string `json:"proficiency"`
	Certification string `json:"certification"`
}

type Certification struct {
	Name                string `json:"name"`
	IssuingOrganization string `json:"issuing_organization"`
	IssueDate           string `json:"issue_date"`
	ExpirationDate      string `json:"expiration_date"`
	CredentialID        string `json:"credential_id"`
	VerificationURL     string `json:"verification_url"`
}

type Project struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Role         string   `json:"role"`
	StartDate    string   `json:"start_date"`
	EndDate      string   `json:"end_date"`
	Technologies []string `json:"technologies"`
	URL          string   `json:"url"`
	Repository   string   `json:"repository"`
	Achievements []string `json:"achievements"`
}

// Normalize enforces the scalar/collection absence asymmetry on the record
// and its nested entries.
func (r *Record) Normalize() {
	for _, field := range []*string{
		&r.FullName, &r.ProfessionalTitle, &r.Summary,
		&r.Contact.Email, &r.Contact.Phone, &r.Contact.Address,
		&r.Contact.City, &r.Contact.State, &r.Contact.Country,
		&r.Contact.PostalCode, &r.Contact.LinkedIn, &r.Contact.GitHub, &r.Contact.Portfolio,
		&r.TotalYearsExperience, &r.CurrentSalary, &r.ExpectedSalary,
		&r.Availability, &r.PreferredWorkType,
	} {
		if *field == "" {
			*field = jobs.Unknown
		}
	}

	for _, list := range []*[]string{
		&r.Contact.OtherProfiles, &r.SoftSkills,
		&r.Awards, &r.Publications, &r.VolunteerExperience, &r.Interests,
	} {
		if *list == nil {
			*list = []string{}
		}
	}

	if r.Experiences == nil {
		r.Experiences = []Experience{}
	}
	for i := range r.Experiences {
		r.Experiences[i].normalize()
	}
	if r.Education == nil {
		r.Education = []Education{}
	}
	if r.TechnicalSkills == nil {
		r.TechnicalSkills = []Skill{}
	}
	if r.Languages == nil {
		r.Languages = []Language{}
	}
	if r.Certifications == nil {
		r.Certifications = []Certification{}
	}
	if r.Projects == nil {
		r.Projects = []Project{}
	}
}

func (e *Experience) normalize() {
	for _, field := range []*string{
		&e.JobTitle, &e.Company, &e.Location, &e.StartDate, &e.EndDate,
		&e.Duration, &e.EmploymentType, &e.Description, &e.Industry,
	} {
		if *field == "" {
			*field = jobs.Unknown
		}
	}
	if e.Achievements == nil {
		e.Achievements = []string{}
	}
	if e.TechnologiesUsed == nil {
		e.TechnologiesUsed = []string{}
	}
}
