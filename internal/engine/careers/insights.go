package careers

import (
	"math"
	"strings"
)

// CareerInsights aggregates the ranked matches into a short market report.
type CareerInsights struct {
	SkillAnalysis   SkillAnalysis   `json:"skill_analysis"`
	MarketTrends    MarketTrends    `json:"market_trends"`
	Recommendations Recommendations `json:"recommendations"`
}

type SkillAnalysis struct {
	TotalSkills int      `json:"total_skills"`
	TopSkills   []string `json:"top_skills"`
	DomainMatch string   `json:"domain_match"`
	Confidence  int      `json:"confidence"`
}

type MarketTrends struct {
	AvgMatchScore   int      `json:"avg_match_score"`
	TopEmployers    []string `json:"top_employers"`
	CommonLocations []string `json:"common_locations"`
}

type Recommendations struct {
	SkillGaps           []string `json:"skill_gaps"`
	GrowthOpportunities []string `json:"growth_opportunities"`
	NextSteps           []string `json:"next_steps"`
}

var trendingSkills = []string{
	"javascript", "python", "react", "aws", "docker",
	"kubernetes", "sql", "mongodb", "api", "microservices",
}

var defaultNextSteps = []string{
	"Focus on roles with 70%+ skill match",
	"Consider companies in your domain area",
	"Strengthen skills mentioned in top job descriptions",
}

// BuildInsights summarizes ranked matches for the user: which skills carried
// the search, who is hiring, where, and which gaps to close.
func BuildInsights(ranked []JobMatch, skills []string, domain DomainClassification) CareerInsights {
	topSkills := skills
	if len(topSkills) > 5 {
		topSkills = topSkills[:5]
	}

	avg := 0
	if len(ranked) > 0 {
		sum := 0
		for _, m := range ranked {
			sum += m.SkillMatchScore
		}
		avg = int(math.Round(float64(sum) / float64(len(ranked))))
	}

	top := ranked
	if len(top) > 10 {
		top = top[:10]
	}

	employers := make([]string, 0, 5)
	seenEmployer := map[string]bool{}
	for _, m := range top {
		name := m.EmployerName
		if name == "" || seenEmployer[name] {
			continue
		}
		seenEmployer[name] = true
		employers = append(employers, name)
		if len(employers) == 5 {
			break
		}
	}

	locations := make([]string, 0, 5)
	seenLocation := map[string]bool{}
	for _, m := range top {
		if m.JobCity == "" || m.JobState == "" {
			continue
		}
		loc := m.JobCity + ", " + m.JobState
		if seenLocation[loc] {
			continue
		}
		seenLocation[loc] = true
		locations = append(locations, loc)
		if len(locations) == 5 {
			break
		}
	}

	return CareerInsights{
		SkillAnalysis: SkillAnalysis{
			TotalSkills: len(skills),
			TopSkills:   topSkills,
			DomainMatch: domain.SelectedDomain,
			Confidence:  domain.ConfidenceScore,
		},
		MarketTrends: MarketTrends{
			AvgMatchScore:   avg,
			TopEmployers:    employers,
			CommonLocations: locations,
		},
		Recommendations: Recommendations{
			SkillGaps:           identifySkillGaps(ranked, skills),
			GrowthOpportunities: domain.RecommendedJobTitles,
			NextSteps:           defaultNextSteps,
		},
	}
}

// identifySkillGaps scans the top five job descriptions for trending skills
// the user does not already have.
func identifySkillGaps(ranked []JobMatch, skills []string) []string {
	lowered := make([]string, len(skills))
	for i, s := range skills {
		lowered[i] = strings.ToLower(s)
	}

	top := ranked
	if len(top) > 5 {
		top = top[:5]
	}

	gaps := make([]string, 0, 5)
	for _, kw := range trendingSkills {
		has := false
		for _, skill := range lowered {
			if strings.Contains(skill, kw) {
				has = true
				break
			}
		}
		if has {
			continue
		}

		for _, m := range top {
			if strings.Contains(strings.ToLower(m.JobDescription), kw) {
				gaps = append(gaps, kw)
				break
			}
		}
		if len(gaps) == 5 {
			break
		}
	}
	return gaps
}
