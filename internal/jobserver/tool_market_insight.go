package jobserver

import (
	"context"
	"strconv"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/careerscout/careerscout/internal/dispatch"
	"github.com/careerscout/careerscout/internal/engine"
)

func registerMarketInsight(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "market-insight-tool",
		Description: "Search the web for job market trends, industry news, and hiring insights. Returns organic results, knowledge graph data, related questions, and recent news.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input engine.MarketInsightInput) (*mcp.CallToolResult, dispatch.Envelope, error) {
		cacheKey := engine.CacheKey("market-insight", input.Query, input.Country, strconv.Itoa(input.Num))
		if out, ok := engine.CacheLoadJSON[dispatch.Envelope](ctx, cacheKey); ok {
			return nil, out, nil
		}

		env := dispatch.MarketInsight(ctx, input)
		if env.Success {
			engine.CacheStoreJSON(ctx, cacheKey, env)
		}
		return nil, env, nil
	})
}

func registerWebSearch(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "web-search",
		Description: "Run a general web search and return the raw results: organic hits, knowledge graph, related searches, and news.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input engine.WebSearchInput) (*mcp.CallToolResult, dispatch.Envelope, error) {
		cacheKey := engine.CacheKey("web-search", input.SearchQuery)
		if out, ok := engine.CacheLoadJSON[dispatch.Envelope](ctx, cacheKey); ok {
			return nil, out, nil
		}

		env := dispatch.WebSearch(ctx, input)
		if env.Success {
			engine.CacheStoreJSON(ctx, cacheKey, env)
		}
		return nil, env, nil
	})
}
