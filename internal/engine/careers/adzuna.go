package careers

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/careerscout/careerscout/internal/engine"
)

type adzunaJob struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Company struct {
		DisplayName string `json:"display_name"`
	} `json:"company"`
	Location struct {
		DisplayName string   `json:"display_name"`
		Area        []string `json:"area"`
	} `json:"location"`
	Description  string  `json:"description"`
	RedirectURL  string  `json:"redirect_url"`
	Created      string  `json:"created"`
	SalaryMin    float64 `json:"salary_min"`
	SalaryMax    float64 `json:"salary_max"`
	ContractTime string  `json:"contract_time"`
}

type adzunaResponse struct {
	Results []adzunaJob `json:"results"`
}

// AdzunaEnabled reports whether Adzuna credentials are configured. The source
// is optional and only joins the search fan-out when enabled.
func AdzunaEnabled() bool {
	return engine.Cfg.AdzunaAppID != "" && engine.Cfg.AdzunaAppKey != ""
}

// AdzunaSearch queries the Adzuna search endpoint for one page of results and
// maps them onto the common posting shape.
func AdzunaSearch(ctx context.Context, query, location, country string, resultsPerPage int) ([]JobPosting, error) {
	if resultsPerPage <= 0 || resultsPerPage > 50 {
		resultsPerPage = 20
	}

	q := url.Values{}
	q.Set("app_id", engine.Cfg.AdzunaAppID)
	q.Set("app_key", engine.Cfg.AdzunaAppKey)
	q.Set("what", query)
	if location != "" {
		q.Set("where", location)
	}
	q.Set("results_per_page", strconv.Itoa(resultsPerPage))
	q.Set("content-type", "application/json")

	endpoint := fmt.Sprintf("%s/jobs/%s/search/1?%s", engine.Cfg.AdzunaBaseURL, engine.NormCountry(country), q.Encode())

	var resp adzunaResponse
	if err := engine.DoJSON(ctx, engine.ProviderAdzuna, "GET", endpoint, nil, nil, &resp); err != nil {
		return nil, err
	}

	jobs := make([]JobPosting, 0, len(resp.Results))
	for _, a := range resp.Results {
		city, state := splitAdzunaArea(a.Location.Area)
		jobs = append(jobs, JobPosting{
			JobID:             "adzuna:" + a.ID,
			JobTitle:          a.Title,
			EmployerName:      a.Company.DisplayName,
			JobCity:           city,
			JobState:          state,
			JobCountry:        engine.NormCountry(country),
			JobEmploymentType: a.ContractTime,
			JobSalary:         formatAdzunaSalary(a.SalaryMin, a.SalaryMax),
			JobMinSalary:      a.SalaryMin,
			JobMaxSalary:      a.SalaryMax,
			JobDescription:    a.Description,
			JobApplyLink:      a.RedirectURL,
			JobPostedAt:       a.Created,
			JobPublisher:      "Adzuna",
		})
	}
	return jobs, nil
}

// splitAdzunaArea maps Adzuna's area hierarchy (country, region, city, ...)
// onto city/state fields.
func splitAdzunaArea(area []string) (city, state string) {
	switch {
	case len(area) >= 3:
		return area[len(area)-1], area[1]
	case len(area) == 2:
		return area[1], ""
	}
	return "", ""
}

func formatAdzunaSalary(min, max float64) string {
	if min == 0 && max == 0 {
		return ""
	}
	if max == 0 || min == max {
		return engine.FormatMoney(min)
	}
	return engine.FormatMoney(min) + " - " + engine.FormatMoney(max)
}
