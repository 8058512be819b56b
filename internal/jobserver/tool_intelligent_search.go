package jobserver

import (
	"context"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/careerscout/careerscout/internal/dispatch"
	"github.com/careerscout/careerscout/internal/engine"
)

func registerIntelligentSearch(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "intelligent-job-search",
		Description: "Classify the user's skills into a career domain, search for matching jobs, rank them by skill fit, and return career insights: skill gaps, top employers, and recommended next steps.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input engine.IntelligentSearchInput) (*mcp.CallToolResult, dispatch.Envelope, error) {
		cacheKey := engine.CacheKey("intelligent-job-search",
			strings.Join(input.UserSkills, "|"), input.JobRole, input.Location,
			input.ExperienceLevel, input.EmploymentType)
		if out, ok := engine.CacheLoadJSON[dispatch.Envelope](ctx, cacheKey); ok {
			return nil, out, nil
		}

		env := dispatch.IntelligentSearch(ctx, input)
		if env.Success {
			engine.CacheStoreJSON(ctx, cacheKey, env)
		}
		return nil, env, nil
	})
}
