package jobserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/careerscout/careerscout/internal/dispatch"
	"github.com/careerscout/careerscout/internal/engine"
)

func registerJobDetails(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "job-details",
		Description: "Get full details for a specific job posting: description, requirements, salary, benefits, and application link. Takes the job ID returned by search-jobs.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input engine.JobDetailsInput) (*mcp.CallToolResult, dispatch.Envelope, error) {
		cacheKey := engine.CacheKey("job-details", input.JobID)
		if out, ok := engine.CacheLoadJSON[dispatch.Envelope](ctx, cacheKey); ok {
			return nil, out, nil
		}

		env := dispatch.JobDetails(ctx, input)
		if env.Success {
			engine.CacheStoreJSON(ctx, cacheKey, env)
		}
		return nil, env, nil
	})
}
