package careers

import (
	"context"
	"encoding/json"

	"github.com/careerscout/careerscout/internal/engine"
)

// SerperSearchResult is one organic web-search result.
type SerperSearchResult struct {
	Title         string            `json:"title"`
	Link          string            `json:"link"`
	Snippet       string            `json:"snippet"`
	Date          string            `json:"date,omitempty"`
	DisplayedLink string            `json:"displayedLink,omitempty"`
	Attributes    map[string]string `json:"attributes,omitempty"`
	Position      int               `json:"position,omitempty"`
}

// SerperNewsResult is one news-search result.
type SerperNewsResult struct {
	Title    string `json:"title"`
	Link     string `json:"link"`
	Snippet  string `json:"snippet"`
	Date     string `json:"date"`
	Source   string `json:"source"`
	ImageURL string `json:"imageUrl,omitempty"`
	Position int    `json:"position"`
}

type SerperKnowledgeGraph struct {
	Title       string            `json:"title"`
	Type        string            `json:"type"`
	Description string            `json:"description"`
	Website     string            `json:"website"`
	Attributes  map[string]string `json:"attributes"`
}

type SerperQuestion struct {
	Question string `json:"question"`
	Snippet  string `json:"snippet"`
	Link     string `json:"link"`
}

type SerperSearchResponse struct {
	SearchInformation *struct {
		TotalResults json.Number `json:"totalResults"`
		SearchTime   json.Number `json:"searchTime"`
	} `json:"searchInformation,omitempty"`
	Organic        []SerperSearchResult  `json:"organic,omitempty"`
	KnowledgeGraph *SerperKnowledgeGraph `json:"knowledgeGraph,omitempty"`
	PeopleAlsoAsk  []SerperQuestion      `json:"peopleAlsoAsk,omitempty"`
	RelatedSearches []struct {
		Query string `json:"query"`
	} `json:"relatedSearches,omitempty"`
	News []SerperNewsResult `json:"news,omitempty"`
}

type SerperNewsResponse struct {
	News []SerperNewsResult `json:"news,omitempty"`
}

func serperHeaders() map[string]string {
	return map[string]string{
		"X-API-KEY": engine.Cfg.SerperAPIKey,
	}
}

// WebSearch runs a Serper web search. gl and num are optional; zero values are
// omitted from the request.
func WebSearch(ctx context.Context, query, gl string, num int) (*SerperSearchResponse, error) {
	body := map[string]any{"q": query}
	if gl != "" {
		body["gl"] = gl
	}
	if num > 0 {
		body["num"] = num
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	var resp SerperSearchResponse
	if err := engine.DoJSON(ctx, engine.ProviderSerper, "POST",
		engine.Cfg.SerperBaseURL+"/search", serperHeaders(), payload, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// NewsSearch runs a Serper news search.
func NewsSearch(ctx context.Context, query string) (*SerperNewsResponse, error) {
	payload, err := json.Marshal(map[string]any{"q": query})
	if err != nil {
		return nil, err
	}

	var resp SerperNewsResponse
	if err := engine.DoJSON(ctx, engine.ProviderSerper, "POST",
		engine.Cfg.SerperBaseURL+"/news", serperHeaders(), payload, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
