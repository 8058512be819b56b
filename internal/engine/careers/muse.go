package careers

import (
	"context"
	"net/url"

	"github.com/careerscout/careerscout/internal/engine"
)

// MuseJob is a raw job record from The Muse public API.
type MuseJob struct {
	Name    string `json:"name"`
	Company struct {
		Name string `json:"name"`
	} `json:"company"`
	Locations []struct {
		Name string `json:"name"`
	} `json:"locations"`
	Levels []struct {
		Name string `json:"name"`
	} `json:"levels"`
	Categories []struct {
		Name string `json:"name"`
	} `json:"categories"`
	PublicationDate string `json:"publication_date"`
	ShortName       string `json:"short_name"`
}

// JobSummary is the pruned Muse job shape returned by POST /jobs.
type JobSummary struct {
	Title           string   `json:"title"`
	Company         string   `json:"company"`
	Locations       []string `json:"locations"`
	Levels          []string `json:"levels"`
	Categories      []string `json:"categories"`
	PublicationDate string   `json:"publication_date"`
	ShortName       string   `json:"short_name"`
}

type museResponse struct {
	Results []MuseJob `json:"results"`
}

// MuseSearch queries The Muse public jobs API. Only category is required;
// empty filters are omitted.
func MuseSearch(ctx context.Context, category, level, location, company string) ([]MuseJob, error) {
	q := url.Values{}
	q.Set("category", category)
	if level != "" {
		q.Set("level", level)
	}
	if location != "" {
		q.Set("location", location)
	}
	if company != "" {
		q.Set("company", company)
	}
	q.Set("page", "1")
	q.Set("page_size", "20")

	headers := map[string]string{}
	if engine.Cfg.MuseAPIKey != "" {
		headers["Authorization"] = "Bearer " + engine.Cfg.MuseAPIKey
	}

	var resp museResponse
	if err := engine.DoJSON(ctx, engine.ProviderMuse, "GET",
		engine.Cfg.MuseBaseURL+"/jobs?"+q.Encode(), headers, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

// PruneMuseJobs strips raw Muse records down to the summary fields callers need.
func PruneMuseJobs(raw []MuseJob) []JobSummary {
	out := make([]JobSummary, 0, len(raw))
	for _, j := range raw {
		s := JobSummary{
			Title:           j.Name,
			Company:         j.Company.Name,
			Locations:       []string{},
			Levels:          []string{},
			Categories:      []string{},
			PublicationDate: j.PublicationDate,
			ShortName:       j.ShortName,
		}
		for _, l := range j.Locations {
			s.Locations = append(s.Locations, l.Name)
		}
		for _, l := range j.Levels {
			s.Levels = append(s.Levels, l.Name)
		}
		for _, c := range j.Categories {
			s.Categories = append(s.Categories, c.Name)
		}
		out = append(out, s)
	}
	return out
}
