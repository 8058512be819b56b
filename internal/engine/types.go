package engine

// Tool input types shared by the MCP surface and the dispatch layer.

type SearchJobsInput struct {
	Query      string `json:"query" jsonschema:"Job search query (e.g. 'developer jobs in Chicago')"`
	Page       int    `json:"page,omitempty" jsonschema:"Page number for pagination (default: 1)"`
	NumPages   int    `json:"num_pages,omitempty" jsonschema:"Number of pages to retrieve (default: 1)"`
	Country    string `json:"country,omitempty" jsonschema:"Country code (e.g. us, uk, ca; default: us)"`
	DatePosted string `json:"date_posted,omitempty" jsonschema:"Filter by date posted: all, today, 3days, week, month (default: all)"`
}

type JobDetailsInput struct {
	JobID string `json:"job_id" jsonschema:"The unique job ID from job search results"`
}

type EstimatedSalaryInput struct {
	JobTitle          string `json:"job_title" jsonschema:"Job title (e.g. 'Software Engineer', 'Data Scientist')"`
	Location          string `json:"location" jsonschema:"Location (e.g. 'New York, NY', 'San Francisco, CA')"`
	LocationType      string `json:"location_type,omitempty" jsonschema:"Type of location: city, state, country (default: city)"`
	YearsOfExperience *int   `json:"years_of_experience,omitempty" jsonschema:"Years of experience (0-20+)"`
}

type CompanySalaryInput struct {
	Company           string `json:"company" jsonschema:"Company name (e.g. 'Google', 'Microsoft')"`
	JobTitle          string `json:"job_title" jsonschema:"Job title at the company"`
	LocationType      string `json:"location_type,omitempty" jsonschema:"Type of location: city, state, country (default: city)"`
	YearsOfExperience *int   `json:"years_of_experience,omitempty" jsonschema:"Years of experience (0-20+)"`
}

type MarketInsightInput struct {
	Query   string `json:"q" jsonschema:"Search query for market insights (e.g. 'remote hiring trends for designers')"`
	Country string `json:"gl,omitempty" jsonschema:"Country code for search results (e.g. us, uk; default: us)"`
	Num     int    `json:"num,omitempty" jsonschema:"Number of search results to return (default: 10, max: 100)"`
}

type IntelligentSearchInput struct {
	UserSkills      []string `json:"user_skills" jsonschema:"Array of user skills"`
	JobRole         string   `json:"job_role" jsonschema:"Primary job role/title the user is looking for"`
	Location        string   `json:"location" jsonschema:"Preferred job location"`
	ExperienceLevel string   `json:"experience_level,omitempty" jsonschema:"Experience level: entry, mid, senior, executive (default: mid)"`
	EmploymentType  string   `json:"employment_type,omitempty" jsonschema:"Employment type: FULLTIME, PARTTIME, CONTRACTOR, INTERN (default: FULLTIME)"`
}

type AnalyzeCompanyInput struct {
	CompanyName string `json:"company_name" jsonschema:"Company name to analyze"`
	IncludeJobs *bool  `json:"include_jobs,omitempty" jsonschema:"Whether to include current job openings (default: false)"`
}

type WebSearchInput struct {
	SearchQuery string `json:"search_query" jsonschema:"Search query to look up on the web"`
}

type SendEmailInput struct {
	To      string `json:"to" jsonschema:"Recipient email address"`
	Subject string `json:"subject" jsonschema:"Email subject line"`
	HTML    string `json:"html" jsonschema:"HTML body of the email"`
}
