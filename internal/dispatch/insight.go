package dispatch

import (
	"context"
	"fmt"
	"strings"

	"github.com/careerscout/careerscout/internal/engine"
	"github.com/careerscout/careerscout/internal/engine/careers"
)

// MarketInsight runs a web search and distills the results into a labor-market
// summary.
func MarketInsight(ctx context.Context, in engine.MarketInsightInput) Envelope {
	if in.Query == "" {
		return fail("Search query is required", "Search query is required")
	}
	if in.Country == "" {
		in.Country = "us"
	}
	if in.Num <= 0 {
		in.Num = 10
	}

	resp, err := careers.WebSearch(ctx, in.Query, in.Country, in.Num)
	if err != nil {
		return upstreamFail(err, "Market insight search failed")
	}

	totalResults := "Unknown"
	searchTime := "Unknown"
	if si := resp.SearchInformation; si != nil {
		if si.TotalResults != "" {
			totalResults = si.TotalResults.String()
		}
		if si.SearchTime != "" {
			searchTime = si.SearchTime.String()
		}
	}

	organic := resp.Organic
	if organic == nil {
		organic = []careers.SerperSearchResult{}
	}
	questions := resp.PeopleAlsoAsk
	if questions == nil {
		questions = []careers.SerperQuestion{}
	}

	related := make([]string, 0, len(resp.RelatedSearches))
	for _, r := range resp.RelatedSearches {
		related = append(related, r.Query)
	}

	news := resp.News
	if len(news) > 3 {
		news = news[:3]
	}
	if news == nil {
		news = []careers.SerperNewsResult{}
	}

	var insights []string
	if len(organic) > 0 {
		insights = append(insights, fmt.Sprintf("Found %d relevant search results", len(organic)))
	}
	if resp.KnowledgeGraph != nil {
		insights = append(insights, fmt.Sprintf("Knowledge graph available: %s", resp.KnowledgeGraph.Title))
	}
	if len(questions) > 0 {
		insights = append(insights, fmt.Sprintf("%d related questions found", len(questions)))
	}
	if len(news) > 0 {
		insights = append(insights, fmt.Sprintf("%d recent news articles found", len(news)))
	}
	if insights == nil {
		insights = []string{}
	}

	message := fmt.Sprintf("Search completed for %q but limited results found", in.Query)
	if len(insights) > 0 {
		message = fmt.Sprintf("Market insights for %q: %s", in.Query, strings.Join(insights, ", "))
	}

	return ok(map[string]any{
		"search_metadata": map[string]any{
			"query":         in.Query,
			"country":       in.Country,
			"total_results": totalResults,
			"search_time":   searchTime,
		},
		"organic_results":  organic,
		"knowledge_graph":  resp.KnowledgeGraph,
		"people_also_ask":  questions,
		"related_searches": related,
		"news_results":     news,
		"insights":         insights,
	}, message)
}

// WebSearch returns raw web-search results without reshaping.
func WebSearch(ctx context.Context, in engine.WebSearchInput) Envelope {
	if in.SearchQuery == "" {
		return fail("Search query is required", "Search query is required")
	}

	resp, err := careers.WebSearch(ctx, in.SearchQuery, "", 0)
	if err != nil {
		return upstreamFail(err, "Web search failed")
	}
	return ok(resp, fmt.Sprintf("Web search completed for %q", in.SearchQuery))
}
