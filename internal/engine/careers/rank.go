package careers

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// JobMatch is a posting annotated with how well it fits the user's skills.
type JobMatch struct {
	JobPosting
	SkillMatchScore int      `json:"skill_match_score"`
	MatchReasons    []string `json:"match_reasons"`
}

// Rank scores every posting against the user's skills and returns them sorted
// by score, best first. Sorting is stable so equally scored postings keep
// their upstream order.
func Rank(jobs []JobPosting, skills []string, domain DomainClassification) []JobMatch {
	lowered := make([]string, len(skills))
	for i, s := range skills {
		lowered[i] = strings.ToLower(strings.TrimSpace(s))
	}

	matches := make([]JobMatch, 0, len(jobs))
	for _, job := range jobs {
		haystack := strings.ToLower(job.JobTitle + " " + job.JobDescription)

		var matched []string
		for _, skill := range lowered {
			if skill != "" && strings.Contains(haystack, skill) {
				matched = append(matched, skill)
			}
		}

		score := 0
		if len(skills) > 0 {
			score = int(math.Round(float64(len(matched)) / float64(len(skills)) * 100))
		}

		skillReason := "Role aligns with your domain expertise"
		if len(matched) > 0 {
			shown := matched
			if len(shown) > 3 {
				shown = shown[:3]
			}
			skillReason = "Matched skills: " + strings.Join(shown, ", ")
		}

		matches = append(matches, JobMatch{
			JobPosting:      job,
			SkillMatchScore: score,
			MatchReasons: []string{
				fmt.Sprintf("%d of your skills match this role", len(matched)),
				skillReason,
				fmt.Sprintf("%d%% confidence in domain match", domain.ConfidenceScore),
			},
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].SkillMatchScore > matches[j].SkillMatchScore
	})
	return matches
}
