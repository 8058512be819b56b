package dispatch

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sync"

	"github.com/careerscout/careerscout/internal/engine"
	"github.com/careerscout/careerscout/internal/engine/careers"
)

// JobView is the compact posting shape returned by search-jobs.
type JobView struct {
	ID                 string `json:"id"`
	Title              string `json:"title"`
	Company            string `json:"company"`
	Location           string `json:"location"`
	EmploymentType     string `json:"employment_type"`
	PostedDate         string `json:"posted_date"`
	Salary             string `json:"salary"`
	ApplyLink          string `json:"apply_link"`
	DescriptionSnippet string `json:"description_snippet"`
}

// SearchJobs runs the primary posting search, optionally merging in the
// secondary source when it is configured. A failing secondary source never
// fails the search.
func SearchJobs(ctx context.Context, in engine.SearchJobsInput) Envelope {
	if in.Query == "" {
		return fail("Search query is required", "Search query is required")
	}
	if in.Page <= 0 {
		in.Page = 1
	}
	if in.NumPages <= 0 {
		in.NumPages = 1
	}
	if in.Country == "" {
		in.Country = "us"
	}
	if in.DatePosted == "" {
		in.DatePosted = "all"
	}

	var (
		extra []careers.JobPosting
		wg    sync.WaitGroup
	)
	if careers.AdzunaEnabled() {
		wg.Add(1)
		go func() {
			defer wg.Done()
			found, err := careers.AdzunaSearch(ctx, in.Query, "", in.Country, 10)
			if err != nil {
				slog.Warn("secondary job source failed", "error", err)
				return
			}
			extra = found
		}()
	}

	jobs, err := careers.SearchJobs(ctx, in.Query, careers.SearchOpts{
		Page:       in.Page,
		NumPages:   in.NumPages,
		Country:    in.Country,
		DatePosted: in.DatePosted,
	})
	wg.Wait()
	if err != nil {
		return upstreamFail(err, "Job search failed")
	}
	jobs = append(jobs, extra...)

	views := make([]JobView, 0, len(jobs))
	for _, job := range jobs {
		views = append(views, jobView(job))
	}

	return ok(map[string]any{
		"total_jobs":   len(views),
		"current_page": in.Page,
		"jobs":         views,
		"query_info": map[string]any{
			"search_query": in.Query,
			"country":      in.Country,
			"date_filter":  in.DatePosted,
		},
	}, fmt.Sprintf("Found %d jobs for %q", len(views), in.Query))
}

// JobDetails returns the full record for one posting.
func JobDetails(ctx context.Context, in engine.JobDetailsInput) Envelope {
	if in.JobID == "" {
		return fail("Job ID is required", "Job ID is required")
	}

	jobs, err := careers.JobDetails(ctx, in.JobID)
	if err != nil {
		return upstreamFail(err, "Job details lookup failed")
	}
	if len(jobs) == 0 {
		return fail("Job not found", "Job not found")
	}
	job := jobs[0]

	experience := "Not specified"
	if job.JobRequiredExperience != nil && job.JobRequiredExperience.RequiredExperienceInMonths > 0 {
		years := int(math.Round(float64(job.JobRequiredExperience.RequiredExperienceInMonths) / 12))
		experience = fmt.Sprintf("%d years", years)
	}

	education := "Not specified"
	if re := job.JobRequiredEducation; re != nil {
		switch {
		case re.PostgraduateDegree:
			education = "Postgraduate"
		case re.ProfessionalCertification:
			education = "Professional Certification"
		case re.HighSchool:
			education = "High School"
		}
	}

	skills := job.JobRequiredSkills
	if skills == nil {
		skills = []string{}
	}
	benefits := job.JobBenefits
	if benefits == nil {
		benefits = []string{}
	}

	data := map[string]any{
		"id":    job.JobID,
		"title": job.JobTitle,
		"company": map[string]any{
			"name":         job.EmployerName,
			"website":      job.EmployerWebsite,
			"company_type": job.EmployerType,
			"logo":         job.EmployerLogo,
		},
		"location": map[string]any{
			"city":          job.JobCity,
			"state":         job.JobState,
			"country":       job.JobCountry,
			"is_remote":     job.JobIsRemote,
			"full_location": engine.JoinLocation(job.JobCity, job.JobState, job.JobCountry),
		},
		"employment_details": map[string]any{
			"type":             job.JobEmploymentType,
			"posted_date":      job.JobPostedAt,
			"expires_date":     job.JobExpiresAt,
			"experience_level": experience,
		},
		"salary": map[string]any{
			"currency":  job.JobSalaryCurrency,
			"min":       job.JobMinSalary,
			"max":       job.JobMaxSalary,
			"period":    job.JobSalaryPeriod,
			"formatted": detailSalary(job),
		},
		"description": job.JobDescription,
		"requirements": map[string]any{
			"education":  education,
			"skills":     skills,
			"experience": job.JobRequiredExperience,
		},
		"benefits": benefits,
		"application": map[string]any{
			"apply_link":      job.JobApplyLink,
			"apply_is_direct": job.JobApplyIsDirect,
			"publisher":       job.JobPublisher,
		},
	}

	return ok(data, fmt.Sprintf("Retrieved details for job: %s at %s", job.JobTitle, job.EmployerName))
}

func jobView(job careers.JobPosting) JobView {
	snippet := "No description available"
	if job.JobDescription != "" {
		snippet = engine.TruncateRunes(job.JobDescription, 200, "...")
	}
	return JobView{
		ID:                 job.JobID,
		Title:              job.JobTitle,
		Company:            job.EmployerName,
		Location:           engine.JoinLocation(job.JobCity, job.JobState, job.JobCountry),
		EmploymentType:     job.JobEmploymentType,
		PostedDate:         job.JobPostedAt,
		Salary:             listSalary(job),
		ApplyLink:          job.JobApplyLink,
		DescriptionSnippet: snippet,
	}
}

func listSalary(job careers.JobPosting) string {
	if job.JobSalaryCurrency == "" || job.JobMinSalary == 0 {
		return "Not specified"
	}
	s := fmt.Sprintf("%s %s", job.JobSalaryCurrency, engine.FormatMoney(job.JobMinSalary))
	if job.JobMaxSalary != 0 {
		s += " - " + engine.FormatMoney(job.JobMaxSalary)
	}
	return s
}

func detailSalary(job careers.JobPosting) string {
	if job.JobSalaryCurrency == "" || job.JobMinSalary == 0 {
		return "Not specified"
	}
	s := listSalary(job)
	if job.JobSalaryPeriod != "" {
		s += " " + job.JobSalaryPeriod
	}
	return s
}
