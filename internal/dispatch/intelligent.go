package dispatch

import (
	"context"
	"fmt"
	"time"

	"github.com/careerscout/careerscout/internal/engine"
	"github.com/careerscout/careerscout/internal/engine/careers"
)

// IntelligentSearch is the full pipeline: classify the user's skills into a
// career domain, search for matching postings, rank them by skill fit, and
// summarize the market.
func IntelligentSearch(ctx context.Context, in engine.IntelligentSearchInput) Envelope {
	if len(in.UserSkills) == 0 || in.JobRole == "" || in.Location == "" {
		return fail("user_skills, job_role, and location are required",
			"user_skills, job_role, and location are required")
	}
	if in.ExperienceLevel == "" {
		in.ExperienceLevel = "mid"
	}
	if in.EmploymentType == "" {
		in.EmploymentType = "FULLTIME"
	}

	domain := careers.Classify(in.UserSkills, in.JobRole)

	query := in.JobRole + " " + in.Location
	jobs, err := careers.SearchJobs(ctx, query, careers.SearchOpts{
		Page:            1,
		NumPages:        3,
		EmploymentTypes: in.EmploymentType,
	})
	if err != nil {
		return upstreamFail(err, "Intelligent job search failed")
	}

	ranked := careers.Rank(jobs, in.UserSkills, domain)
	top := ranked
	if len(top) > 10 {
		top = top[:10]
	}
	insights := careers.BuildInsights(ranked, in.UserSkills, domain)

	return ok(map[string]any{
		"domain_classification": domain,
		"total_jobs_found":      len(jobs),
		"top_matches":           top,
		"career_insights":       insights,
		"search_metadata": map[string]any{
			"query":           query,
			"location":        in.Location,
			"employment_type": in.EmploymentType,
			"searched_at":     time.Now().UTC().Format(time.RFC3339),
		},
	}, fmt.Sprintf("Found %d matching jobs in %s for your skill set", len(jobs), domain.SelectedDomain))
}
