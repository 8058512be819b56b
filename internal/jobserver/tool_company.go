package jobserver

import (
	"context"
	"strconv"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/careerscout/careerscout/internal/dispatch"
	"github.com/careerscout/careerscout/internal/engine"
)

func registerAnalyzeCompany(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "analyze-company",
		Description: "Research a company: web presence, recent news, and current job openings, merged into a single analysis.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input engine.AnalyzeCompanyInput) (*mcp.CallToolResult, dispatch.Envelope, error) {
		includeJobs := input.IncludeJobs != nil && *input.IncludeJobs
		cacheKey := engine.CacheKey("analyze-company", input.CompanyName, strconv.FormatBool(includeJobs))
		if out, ok := engine.CacheLoadJSON[dispatch.Envelope](ctx, cacheKey); ok {
			return nil, out, nil
		}

		env := dispatch.AnalyzeCompany(ctx, input)
		if env.Success {
			engine.CacheStoreJSON(ctx, cacheKey, env)
		}
		return nil, env, nil
	})
}
