package jobserver

import (
	"context"
	"strconv"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/careerscout/careerscout/internal/dispatch"
	"github.com/careerscout/careerscout/internal/engine"
)

func registerSearchJobs(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "search-jobs",
		Description: "Search for job listings by keywords and filters. Returns structured JSON with job details (title, company, location, salary, apply link). Supports pagination, country, and posting-date filters.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input engine.SearchJobsInput) (*mcp.CallToolResult, dispatch.Envelope, error) {
		cacheKey := engine.CacheKey("search-jobs", input.Query,
			strconv.Itoa(input.Page), strconv.Itoa(input.NumPages), input.Country, input.DatePosted)
		if out, ok := engine.CacheLoadJSON[dispatch.Envelope](ctx, cacheKey); ok {
			return nil, out, nil
		}

		env := dispatch.SearchJobs(ctx, input)
		if env.Success {
			engine.CacheStoreJSON(ctx, cacheKey, env)
		}
		return nil, env, nil
	})
}
