package dispatch

import (
	"context"
	"fmt"

	"github.com/careerscout/careerscout/internal/engine"
	"github.com/careerscout/careerscout/internal/engine/careers"
)

type salaryRange struct {
	Currency  string            `json:"currency"`
	Min       float64           `json:"min"`
	Max       float64           `json:"max"`
	Median    float64           `json:"median"`
	Formatted map[string]string `json:"formatted"`
}

func buildSalaryRange(row careers.SalaryRow) salaryRange {
	formatted := map[string]string{
		"min":    "Not available",
		"max":    "Not available",
		"median": "Not available",
		"range":  "Range not available",
	}
	if row.SalaryCurrency != "" {
		if row.MinSalary != 0 {
			formatted["min"] = fmt.Sprintf("%s %s", row.SalaryCurrency, engine.FormatMoney(row.MinSalary))
		}
		if row.MaxSalary != 0 {
			formatted["max"] = fmt.Sprintf("%s %s", row.SalaryCurrency, engine.FormatMoney(row.MaxSalary))
		}
		if row.MedianSalary != 0 {
			formatted["median"] = fmt.Sprintf("%s %s", row.SalaryCurrency, engine.FormatMoney(row.MedianSalary))
		}
		if row.MinSalary != 0 && row.MaxSalary != 0 {
			formatted["range"] = fmt.Sprintf("%s %s - %s", row.SalaryCurrency,
				engine.FormatMoney(row.MinSalary), engine.FormatMoney(row.MaxSalary))
		}
	}
	return salaryRange{
		Currency:  row.SalaryCurrency,
		Min:       row.MinSalary,
		Max:       row.MaxSalary,
		Median:    row.MedianSalary,
		Formatted: formatted,
	}
}

func experienceLabel(years *int) string {
	if years == nil {
		return "Not specified"
	}
	return fmt.Sprintf("%d years", *years)
}

func periodOrDefault(period string) string {
	if period == "" {
		return "per year"
	}
	return period
}

// EstimatedSalary returns salary estimates for a job title in a location.
func EstimatedSalary(ctx context.Context, in engine.EstimatedSalaryInput) Envelope {
	if in.JobTitle == "" || in.Location == "" {
		return fail("Job title and location are required", "Job title and location are required")
	}
	if in.LocationType == "" {
		in.LocationType = "city"
	}

	rows, err := careers.EstimatedSalary(ctx, in.JobTitle, in.Location, in.LocationType, in.YearsOfExperience)
	if err != nil {
		return upstreamFail(err, "Salary estimate lookup failed")
	}
	if len(rows) == 0 {
		return fail("No salary data found for the specified criteria", "No salary data found for the specified criteria")
	}
	row := rows[0]

	data := map[string]any{
		"job_title": row.JobTitle,
		"location": map[string]any{
			"name": row.Location,
			"type": in.LocationType,
		},
		"experience_level": experienceLabel(in.YearsOfExperience),
		"salary_range":     buildSalaryRange(row),
		"salary_period":    periodOrDefault(row.SalaryPeriod),
		"publisher_name":   row.PublisherName,
		"publisher_link":   row.PublisherLink,
	}

	message := fmt.Sprintf("Found salary data for %s in %s, but specific range not available", in.JobTitle, in.Location)
	if row.SalaryCurrency != "" && row.MinSalary != 0 && row.MaxSalary != 0 {
		message = fmt.Sprintf("Estimated salary for %s in %s: %s %s - %s %s",
			in.JobTitle, in.Location, row.SalaryCurrency,
			engine.FormatMoney(row.MinSalary), engine.FormatMoney(row.MaxSalary),
			periodOrDefault(row.SalaryPeriod))
	}
	return ok(data, message)
}

// CompanyJobSalary returns salary data for a role at a specific company.
func CompanyJobSalary(ctx context.Context, in engine.CompanySalaryInput) Envelope {
	if in.Company == "" || in.JobTitle == "" {
		return fail("Company and job title are required", "Company and job title are required")
	}
	if in.LocationType == "" {
		in.LocationType = "city"
	}

	rows, err := careers.CompanyJobSalary(ctx, in.Company, in.JobTitle, in.LocationType, in.YearsOfExperience)
	if err != nil {
		return upstreamFail(err, "Company salary lookup failed")
	}
	if len(rows) == 0 {
		msg := fmt.Sprintf("No salary data found for %s at %s", in.JobTitle, in.Company)
		return fail(msg, msg)
	}

	type companySalaryView struct {
		Company         string      `json:"company"`
		JobTitle        string      `json:"job_title"`
		Location        string      `json:"location"`
		ExperienceLevel string      `json:"experience_level"`
		SalaryRange     salaryRange `json:"salary_range"`
		SalaryPeriod    string      `json:"salary_period"`
		PublisherName   string      `json:"publisher_name"`
		PublisherLink   string      `json:"publisher_link"`
	}

	views := make([]companySalaryView, 0, len(rows))
	for _, row := range rows {
		company := row.CompanyName
		if company == "" {
			company = in.Company
		}
		title := row.JobTitle
		if title == "" {
			title = in.JobTitle
		}
		views = append(views, companySalaryView{
			Company:         company,
			JobTitle:        title,
			Location:        row.Location,
			ExperienceLevel: experienceLabel(in.YearsOfExperience),
			SalaryRange:     buildSalaryRange(row),
			SalaryPeriod:    periodOrDefault(row.SalaryPeriod),
			PublisherName:   row.PublisherName,
			PublisherLink:   row.PublisherLink,
		})
	}

	var summary any
	if len(views) > 1 {
		type rangePair struct {
			Min float64 `json:"min"`
			Max float64 `json:"max"`
		}
		ranges := make([]rangePair, 0, len(views))
		for _, v := range views {
			if v.SalaryRange.Min != 0 && v.SalaryRange.Max != 0 {
				ranges = append(ranges, rangePair{Min: v.SalaryRange.Min, Max: v.SalaryRange.Max})
			}
		}
		summary = map[string]any{
			"total_entries": len(views),
			"salary_ranges": ranges,
		}
	}

	primary := views[0]
	message := fmt.Sprintf("Found salary data for %s at %s, but specific range not available", in.JobTitle, in.Company)
	if primary.SalaryRange.Min != 0 && primary.SalaryRange.Max != 0 {
		message = fmt.Sprintf("Salary for %s at %s: %s %s",
			in.JobTitle, in.Company, primary.SalaryRange.Formatted["range"], primary.SalaryPeriod)
	}

	return ok(map[string]any{
		"primary_result": primary,
		"all_results":    views,
		"summary":        summary,
		"search_criteria": map[string]any{
			"company":             in.Company,
			"job_title":           in.JobTitle,
			"location_type":       in.LocationType,
			"years_of_experience": in.YearsOfExperience,
		},
	}, message)
}
