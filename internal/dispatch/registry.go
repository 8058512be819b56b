package dispatch

// ToolDescriptor advertises one callable tool in the function-calling format
// consumed by voice and chat clients.
type ToolDescriptor struct {
	ID       string   `json:"id"`
	Type     string   `json:"type"`
	Function Function `json:"function"`
}

type Function struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Parameters  Schema `json:"parameters"`
}

type Schema struct {
	Type       string              `json:"type"`
	Properties map[string]Property `json:"properties"`
	Required   []string            `json:"required,omitempty"`
}

type Property struct {
	Type        string    `json:"type"`
	Description string    `json:"description,omitempty"`
	Default     any       `json:"default,omitempty"`
	Enum        []string  `json:"enum,omitempty"`
	Minimum     *float64  `json:"minimum,omitempty"`
	Maximum     *float64  `json:"maximum,omitempty"`
	Items       *Property `json:"items,omitempty"`
}

func fptr(f float64) *float64 { return &f }

// Registry returns the advertised tool catalog in a fixed order.
func Registry() []ToolDescriptor {
	return []ToolDescriptor{
		{
			ID:   "search-jobs",
			Type: "function",
			Function: Function{
				Name:        "search-jobs",
				Description: "Search for job listings by keywords, location, and filters. Returns a paginated list of matching jobs.",
				Parameters: Schema{
					Type: "object",
					Properties: map[string]Property{
						"query":       {Type: "string", Description: "Search query combining job title, keywords, and optionally location (e.g. 'software engineer in new york')"},
						"page":        {Type: "number", Description: "Page number to return", Default: 1, Minimum: fptr(1)},
						"num_pages":   {Type: "number", Description: "Number of pages to fetch", Default: 1, Minimum: fptr(1), Maximum: fptr(10)},
						"country":     {Type: "string", Description: "Two-letter country code", Default: "us"},
						"date_posted": {Type: "string", Description: "Posting recency filter", Default: "all", Enum: []string{"all", "today", "3days", "week", "month"}},
					},
					Required: []string{"query"},
				},
			},
		},
		{
			ID:   "job-details",
			Type: "function",
			Function: Function{
				Name:        "job-details",
				Description: "Get full details for a specific job posting, including description, requirements, salary, and application link.",
				Parameters: Schema{
					Type: "object",
					Properties: map[string]Property{
						"job_id": {Type: "string", Description: "The job ID returned by search-jobs"},
					},
					Required: []string{"job_id"},
				},
			},
		},
		{
			ID:   "estimated-salary",
			Type: "function",
			Function: Function{
				Name:        "estimated-salary",
				Description: "Get estimated salary ranges for a job title in a given location.",
				Parameters: Schema{
					Type: "object",
					Properties: map[string]Property{
						"job_title":           {Type: "string", Description: "Job title to estimate salary for"},
						"location":            {Type: "string", Description: "Location to estimate salary in"},
						"location_type":       {Type: "string", Description: "Granularity of the location", Default: "city", Enum: []string{"city", "state", "country"}},
						"years_of_experience": {Type: "number", Description: "Years of professional experience"},
					},
					Required: []string{"job_title", "location"},
				},
			},
		},
		{
			ID:   "company-job-salary",
			Type: "function",
			Function: Function{
				Name:        "company-job-salary",
				Description: "Get salary data for a specific job title at a specific company.",
				Parameters: Schema{
					Type: "object",
					Properties: map[string]Property{
						"company":             {Type: "string", Description: "Company name"},
						"job_title":           {Type: "string", Description: "Job title at the company"},
						"location_type":       {Type: "string", Description: "Granularity of the location", Default: "city", Enum: []string{"city", "state", "country"}},
						"years_of_experience": {Type: "number", Description: "Years of professional experience"},
					},
					Required: []string{"company", "job_title"},
				},
			},
		},
		{
			ID:   "market-insight-tool",
			Type: "function",
			Function: Function{
				Name:        "market-insight-tool",
				Description: "Search the web for job market trends, industry news, and hiring insights.",
				Parameters: Schema{
					Type: "object",
					Properties: map[string]Property{
						"q":   {Type: "string", Description: "Search query for market insights"},
						"gl":  {Type: "string", Description: "Two-letter country code", Default: "us"},
						"num": {Type: "number", Description: "Number of results to return", Default: 10, Minimum: fptr(1), Maximum: fptr(20)},
					},
					Required: []string{"q"},
				},
			},
		},
		{
			ID:   "intelligent-job-search",
			Type: "function",
			Function: Function{
				Name:        "intelligent-job-search",
				Description: "Classify the user's skills into a career domain, search for matching jobs, rank them by skill fit, and return career insights.",
				Parameters: Schema{
					Type: "object",
					Properties: map[string]Property{
						"user_skills":      {Type: "array", Description: "The user's skills", Items: &Property{Type: "string"}},
						"job_role":         {Type: "string", Description: "Desired job role"},
						"location":         {Type: "string", Description: "Desired job location"},
						"experience_level": {Type: "string", Description: "Experience level", Default: "mid", Enum: []string{"entry", "mid", "senior", "executive"}},
						"employment_type":  {Type: "string", Description: "Employment type", Default: "FULLTIME", Enum: []string{"FULLTIME", "PARTTIME", "CONTRACTOR", "INTERN"}},
					},
					Required: []string{"user_skills", "job_role", "location"},
				},
			},
		},
		{
			ID:   "analyze-company",
			Type: "function",
			Function: Function{
				Name:        "analyze-company",
				Description: "Research a company: web presence, recent news, and current job openings.",
				Parameters: Schema{
					Type: "object",
					Properties: map[string]Property{
						"company_name": {Type: "string", Description: "Name of the company to analyze"},
						"include_jobs": {Type: "boolean", Description: "Whether to include current job openings", Default: false},
					},
					Required: []string{"company_name"},
				},
			},
		},
		{
			ID:   "web-search",
			Type: "function",
			Function: Function{
				Name:        "web-search",
				Description: "Run a general web search and return the raw results.",
				Parameters: Schema{
					Type: "object",
					Properties: map[string]Property{
						"search_query": {Type: "string", Description: "Query to search the web for"},
					},
					Required: []string{"search_query"},
				},
			},
		},
		{
			ID:   "send-email",
			Type: "function",
			Function: Function{
				Name:        "send-email",
				Description: "Send an HTML email to a recipient.",
				Parameters: Schema{
					Type: "object",
					Properties: map[string]Property{
						"to":      {Type: "string", Description: "Recipient email address"},
						"subject": {Type: "string", Description: "Email subject line"},
						"html":    {Type: "string", Description: "HTML body of the email"},
					},
					Required: []string{"to", "subject", "html"},
				},
			},
		},
	}
}
