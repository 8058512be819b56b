package careers

import (
	"fmt"
	"math"
	"strings"
)

// domainTable is ordered; on tied scores the earlier domain wins.
var domainTable = []struct {
	name     string
	keywords []string
}{
	{"Software Engineering", []string{"javascript", "python", "react", "node", "aws", "git", "api", "database", "programming", "development"}},
	{"Design & UI/UX", []string{"figma", "sketch", "photoshop", "ui", "ux", "design", "prototyping", "wireframe", "user experience"}},
	{"Product Management", []string{"product", "roadmap", "strategy", "analytics", "stakeholder", "requirements", "agile", "scrum"}},
	{"Marketing", []string{"marketing", "seo", "content", "social media", "campaigns", "brand", "advertising", "growth"}},
	{"Sales", []string{"sales", "crm", "lead generation", "negotiation", "business development", "client relations"}},
	{"Data Science", []string{"python", "sql", "machine learning", "statistics", "data analysis", "pandas", "numpy", "visualization"}},
}

var recommendedTitles = map[string][]string{
	"Software Engineering": {"Software Engineer", "Full Stack Developer", "Backend Developer", "Frontend Developer", "DevOps Engineer"},
	"Design & UI/UX":       {"UX Designer", "UI Designer", "Product Designer", "Visual Designer", "Design Lead"},
	"Product Management":   {"Product Manager", "Senior Product Manager", "Product Owner", "Product Lead", "VP of Product"},
	"Marketing":            {"Marketing Manager", "Growth Manager", "Content Manager", "Digital Marketing Specialist", "Marketing Lead"},
	"Sales":                {"Sales Manager", "Account Executive", "Business Development Manager", "Sales Director", "Customer Success Manager"},
	"Data Science":         {"Data Scientist", "Data Analyst", "Machine Learning Engineer", "Research Scientist", "Analytics Manager"},
}

var fallbackTitles = []string{"Software Engineer", "Product Manager", "Data Analyst"}

// DomainClassification describes which career domain a skill set belongs to.
type DomainClassification struct {
	SelectedDomain       string   `json:"selected_domain"`
	ConfidenceScore      int      `json:"confidence_score"`
	SelectionReason      string   `json:"selection_reason"`
	RecommendedJobTitles []string `json:"recommended_job_titles"`
}

// Classify picks the domain whose keyword table overlaps the user's skills
// the most. Matching is case-insensitive and bidirectional: a skill counts
// when it contains a keyword or a keyword contains the skill. jobRole is
// accepted for API symmetry but does not influence the score.
func Classify(skills []string, jobRole string) DomainClassification {
	_ = jobRole

	lowered := make([]string, len(skills))
	for i, s := range skills {
		lowered[i] = strings.ToLower(strings.TrimSpace(s))
	}

	best := "Software Engineering"
	highest := 0
	var bestMatched []string

	for _, d := range domainTable {
		var matched []string
		for i, skill := range lowered {
			if skill == "" {
				continue
			}
			for _, kw := range d.keywords {
				if strings.Contains(skill, kw) || strings.Contains(kw, skill) {
					// Reason text echoes the caller's original casing.
					matched = append(matched, skills[i])
					break
				}
			}
		}
		if len(matched) > highest {
			highest = len(matched)
			best = d.name
			bestMatched = matched
		}
	}

	confidence := 0
	if len(skills) > 0 {
		confidence = int(math.Round(float64(highest) / float64(len(skills)) * 100))
		if confidence > 100 {
			confidence = 100
		}
	}

	titles := recommendedTitles[best]
	if len(titles) == 0 {
		titles = fallbackTitles
	}

	return DomainClassification{
		SelectedDomain:       best,
		ConfidenceScore:      confidence,
		SelectionReason:      fmt.Sprintf("Matched %d skills: %s", highest, strings.Join(bestMatched, ", ")),
		RecommendedJobTitles: titles,
	}
}
