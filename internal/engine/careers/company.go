package careers

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// CompanyInfo is the combined research result for a single employer.
type CompanyInfo struct {
	CompanyName     string               `json:"company_name"`
	SearchResults   []SerperSearchResult `json:"search_results"`
	News            []SerperNewsResult   `json:"news"`
	CurrentOpenings int                  `json:"current_openings"`
	Jobs            []JobPosting         `json:"jobs"`
	AnalysisSummary string               `json:"analysis_summary"`
}

// AnalyzeCompany fans out web search, news search and (optionally) a job
// lookup for one company and merges the results. Web and news failures fail
// the whole analysis; a failed job lookup degrades to zero openings.
func AnalyzeCompany(ctx context.Context, name string, includeJobs bool) (*CompanyInfo, error) {
	info := &CompanyInfo{
		CompanyName:   name,
		SearchResults: []SerperSearchResult{},
		News:          []SerperNewsResult{},
		Jobs:          []JobPosting{},
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		query := fmt.Sprintf("%q company profile business model revenue employees culture", name)
		resp, err := WebSearch(gctx, query, "", 5)
		if err != nil {
			return err
		}
		if resp.Organic != nil {
			info.SearchResults = resp.Organic
		}
		return nil
	})

	g.Go(func() error {
		resp, err := NewsSearch(gctx, name)
		if err != nil {
			return err
		}
		if resp.News != nil {
			info.News = resp.News
		}
		return nil
	})

	var jobs []JobPosting
	if includeJobs {
		g.Go(func() error {
			found, err := SearchJobs(gctx, name, SearchOpts{Page: 1, NumPages: 1})
			if err != nil {
				slog.Warn("company job lookup failed", "company", name, "error", err)
				return nil
			}
			jobs = found
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	info.CurrentOpenings = len(jobs)
	if len(jobs) > 5 {
		jobs = jobs[:5]
	}
	if jobs != nil {
		info.Jobs = jobs
	}

	info.AnalysisSummary = fmt.Sprintf("Found %d relevant search results, %d news articles, and %d current job openings",
		len(info.SearchResults), len(info.News), info.CurrentOpenings)
	return info, nil
}
