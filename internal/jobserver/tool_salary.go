package jobserver

import (
	"context"
	"strconv"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/careerscout/careerscout/internal/dispatch"
	"github.com/careerscout/careerscout/internal/engine"
)

func yearsKey(years *int) string {
	if years == nil {
		return ""
	}
	return strconv.Itoa(*years)
}

func registerEstimatedSalary(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "estimated-salary",
		Description: "Get estimated salary ranges (min, max, median) for a job title in a given location. Optionally filtered by years of experience.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input engine.EstimatedSalaryInput) (*mcp.CallToolResult, dispatch.Envelope, error) {
		cacheKey := engine.CacheKey("estimated-salary", input.JobTitle, input.Location,
			input.LocationType, yearsKey(input.YearsOfExperience))
		if out, ok := engine.CacheLoadJSON[dispatch.Envelope](ctx, cacheKey); ok {
			return nil, out, nil
		}

		env := dispatch.EstimatedSalary(ctx, input)
		if env.Success {
			engine.CacheStoreJSON(ctx, cacheKey, env)
		}
		return nil, env, nil
	})
}

func registerCompanyJobSalary(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "company-job-salary",
		Description: "Get salary data for a specific job title at a specific company, including per-publisher ranges and a summary across entries.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input engine.CompanySalaryInput) (*mcp.CallToolResult, dispatch.Envelope, error) {
		cacheKey := engine.CacheKey("company-job-salary", input.Company, input.JobTitle,
			input.LocationType, yearsKey(input.YearsOfExperience))
		if out, ok := engine.CacheLoadJSON[dispatch.Envelope](ctx, cacheKey); ok {
			return nil, out, nil
		}

		env := dispatch.CompanyJobSalary(ctx, input)
		if env.Success {
			engine.CacheStoreJSON(ctx, cacheKey, env)
		}
		return nil, env, nil
	})
}
