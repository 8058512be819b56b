// Package careers holds the job-intelligence core: provider clients for the
// external job/salary/search APIs and the matching logic layered on top of them.
package careers

import (
	"context"
	"net/url"
	"strconv"

	"github.com/careerscout/careerscout/internal/engine"
)

// JobPosting is a raw JSearch job record. Externally owned, read-only; nothing
// here is persisted.
type JobPosting struct {
	JobID             string   `json:"job_id"`
	JobTitle          string   `json:"job_title"`
	EmployerName      string   `json:"employer_name"`
	EmployerWebsite   string   `json:"employer_website,omitempty"`
	EmployerType      string   `json:"employer_company_type,omitempty"`
	EmployerLogo      string   `json:"employer_logo,omitempty"`
	JobPublisher      string   `json:"job_publisher,omitempty"`
	JobCity           string   `json:"job_city"`
	JobState          string   `json:"job_state"`
	JobCountry        string   `json:"job_country"`
	JobIsRemote       bool     `json:"job_is_remote,omitempty"`
	JobEmploymentType string   `json:"job_employment_type"`
	JobSalary         string   `json:"job_salary"`
	JobSalaryCurrency string   `json:"job_salary_currency,omitempty"`
	JobSalaryPeriod   string   `json:"job_salary_period,omitempty"`
	JobMinSalary      float64  `json:"job_min_salary,omitempty"`
	JobMaxSalary      float64  `json:"job_max_salary,omitempty"`
	JobDescription    string   `json:"job_description"`
	JobApplyLink      string   `json:"job_apply_link"`
	JobApplyIsDirect  bool     `json:"job_apply_is_direct,omitempty"`
	JobBenefits       []string `json:"job_benefits,omitempty"`
	JobRequiredSkills []string `json:"job_required_skills,omitempty"`
	JobPostedAt       string   `json:"job_posted_at_datetime_utc"`
	JobExpiresAt      string   `json:"job_offer_expiration_datetime_utc,omitempty"`

	JobRequiredExperience *RequiredExperience `json:"job_required_experience,omitempty"`
	JobRequiredEducation  *RequiredEducation  `json:"job_required_education,omitempty"`
}

type RequiredExperience struct {
	NoExperienceRequired         bool `json:"no_experience_required,omitempty"`
	RequiredExperienceInMonths   int  `json:"required_experience_in_months,omitempty"`
	ExperienceMentioned          bool `json:"experience_mentioned,omitempty"`
	ExperiencePreferred          bool `json:"experience_preferred,omitempty"`
}

type RequiredEducation struct {
	PostgraduateDegree        bool `json:"postgraduate_degree,omitempty"`
	ProfessionalCertification bool `json:"professional_certification,omitempty"`
	HighSchool                bool `json:"high_school,omitempty"`
	AssociatesDegree          bool `json:"associates_degree,omitempty"`
	BachelorsDegree           bool `json:"bachelors_degree,omitempty"`
	DegreeMentioned           bool `json:"degree_mentioned,omitempty"`
}

// SalaryRow is a single salary estimate from JSearch.
type SalaryRow struct {
	JobTitle       string  `json:"job_title"`
	CompanyName    string  `json:"company_name,omitempty"`
	Location       string  `json:"location"`
	SalaryCurrency string  `json:"salary_currency"`
	MinSalary      float64 `json:"min_salary"`
	MaxSalary      float64 `json:"max_salary"`
	MedianSalary   float64 `json:"median_salary"`
	SalaryPeriod   string  `json:"salary_period"`
	PublisherName  string  `json:"publisher_name"`
	PublisherLink  string  `json:"publisher_link"`
}

type jsearchSearchResponse struct {
	Status string       `json:"status"`
	Data   []JobPosting `json:"data"`
}

type jsearchSalaryResponse struct {
	Status string      `json:"status"`
	Data   []SalaryRow `json:"data"`
}

// SearchOpts are optional JSearch search parameters.
type SearchOpts struct {
	Page            int
	NumPages        int
	Country         string
	DatePosted      string
	EmploymentTypes string
}

func jsearchHeaders() map[string]string {
	return map[string]string{
		"X-RapidAPI-Key":  engine.Cfg.JSearchAPIKey,
		"X-RapidAPI-Host": "jsearch.p.rapidapi.com",
	}
}

// SearchJobs queries the JSearch search endpoint.
func SearchJobs(ctx context.Context, query string, opts SearchOpts) ([]JobPosting, error) {
	if opts.Page <= 0 {
		opts.Page = 1
	}
	if opts.NumPages <= 0 {
		opts.NumPages = 1
	}

	q := url.Values{}
	q.Set("query", query)
	q.Set("page", strconv.Itoa(opts.Page))
	q.Set("num_pages", strconv.Itoa(opts.NumPages))
	if opts.Country != "" {
		q.Set("country", engine.NormCountry(opts.Country))
	}
	if opts.DatePosted != "" {
		q.Set("date_posted", opts.DatePosted)
	}
	if opts.EmploymentTypes != "" {
		q.Set("employment_types", opts.EmploymentTypes)
	}

	var resp jsearchSearchResponse
	if err := engine.DoJSON(ctx, engine.ProviderJSearch, "GET",
		engine.Cfg.JSearchBaseURL+"/search?"+q.Encode(), jsearchHeaders(), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// JobDetails fetches full details for one job ID. An empty slice means the job
// was not found upstream.
func JobDetails(ctx context.Context, jobID string) ([]JobPosting, error) {
	q := url.Values{}
	q.Set("job_id", jobID)

	var resp jsearchSearchResponse
	if err := engine.DoJSON(ctx, engine.ProviderJSearch, "GET",
		engine.Cfg.JSearchBaseURL+"/job-details?"+q.Encode(), jsearchHeaders(), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// EstimatedSalary fetches salary estimates for a job title + location.
func EstimatedSalary(ctx context.Context, jobTitle, location, locationType string, yearsOfExperience *int) ([]SalaryRow, error) {
	q := url.Values{}
	q.Set("job_title", jobTitle)
	q.Set("location", location)
	if locationType == "" {
		locationType = "city"
	}
	q.Set("location_type", locationType)
	if yearsOfExperience != nil {
		q.Set("years_of_experience", strconv.Itoa(*yearsOfExperience))
	}

	var resp jsearchSalaryResponse
	if err := engine.DoJSON(ctx, engine.ProviderJSearch, "GET",
		engine.Cfg.JSearchBaseURL+"/estimated-salary?"+q.Encode(), jsearchHeaders(), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// CompanyJobSalary fetches salary data for a specific role at a company.
func CompanyJobSalary(ctx context.Context, company, jobTitle, locationType string, yearsOfExperience *int) ([]SalaryRow, error) {
	q := url.Values{}
	q.Set("company", company)
	q.Set("job_title", jobTitle)
	if locationType == "" {
		locationType = "city"
	}
	q.Set("location_type", locationType)
	if yearsOfExperience != nil {
		q.Set("years_of_experience", strconv.Itoa(*yearsOfExperience))
	}

	var resp jsearchSalaryResponse
	if err := engine.DoJSON(ctx, engine.ProviderJSearch, "GET",
		engine.Cfg.JSearchBaseURL+"/company-job-salary?"+q.Encode(), jsearchHeaders(), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}
