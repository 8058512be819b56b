package dispatch

import (
	"context"
	"fmt"
	"time"

	"github.com/careerscout/careerscout/internal/engine"
	"github.com/careerscout/careerscout/internal/engine/careers"
)

// AnalyzeCompany researches a company across web, news, and job listings.
func AnalyzeCompany(ctx context.Context, in engine.AnalyzeCompanyInput) Envelope {
	if in.CompanyName == "" {
		return fail("Company name is required", "Company name is required")
	}
	includeJobs := in.IncludeJobs != nil && *in.IncludeJobs

	info, err := careers.AnalyzeCompany(ctx, in.CompanyName, includeJobs)
	if err != nil {
		return upstreamFail(err, fmt.Sprintf("Company analysis failed for %q", in.CompanyName))
	}

	return ok(map[string]any{
		"company_analysis": info,
		"analyzed_at":      time.Now().UTC().Format(time.RFC3339),
	}, fmt.Sprintf("Company analysis completed for %q", in.CompanyName))
}
