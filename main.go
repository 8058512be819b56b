// careerscout is the Career Scout job-intelligence tool server.
//
// Exposes career tools (job search, salary data, market insight, company
// analysis, intelligent matching, email) over two surfaces: an MCP server for
// assistant clients and a REST/JSON-RPC API for web clients. Both surfaces
// share one dispatch layer, so a tool behaves the same no matter how it is
// called.
package main

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/anatolykoptev/go-kit/env"
	"github.com/anatolykoptev/go-mcpserver"
	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/careerscout/careerscout/internal/engine"
	"github.com/careerscout/careerscout/internal/httpapi"
	"github.com/careerscout/careerscout/internal/jobserver"
)

var (
	version = "dev"
	apiPort = env.Str("API_PORT", "8080")
	mcpPort = env.Str("MCP_PORT", "8891")
)

func main() {
	// Optional .env for local development; real deployments set env directly.
	_ = godotenv.Load()

	initEngine()

	slog.Info("starting careerscout",
		slog.String("api_port", apiPort),
		slog.String("mcp_port", mcpPort),
	)

	app := httpapi.New(version)
	go func() {
		if err := app.Listen(":" + apiPort); err != nil {
			slog.Error("http server failed", slog.Any("error", err))
		}
	}()

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "careerscout",
		Version: version,
	}, nil)

	jobserver.RegisterTools(server)
	slog.Info("tools registered", slog.Int("count", 9))

	if err := mcpserver.Run(server, mcpserver.Config{
		Name:         "careerscout",
		Version:      version,
		Port:         mcpPort,
		WriteTimeout: 600 * time.Second,
		Metrics:      engine.FormatMetrics,
	}); err != nil {
		slog.Error("server failed", slog.Any("error", err))
	}
}

func initEngine() {
	engine.Init(engine.Config{
		JSearchAPIKey: env.Str("JSEARCH_API_KEY", ""),
		SerperAPIKey:  env.Str("SERPER_API_KEY", ""),
		MuseAPIKey:    env.Str("MUSE_API_KEY", ""),
		AdzunaAppID:   env.Str("ADZUNA_APP_ID", ""),
		AdzunaAppKey:  env.Str("ADZUNA_APP_KEY", ""),
		ResendAPIKey:  env.Str("RESEND_API_KEY", ""),
		EmailFrom:     env.Str("EMAIL_FROM", ""),

		ProviderTimeout: env.Duration("PROVIDER_TIMEOUT", 10*time.Second),
		ProviderRPS:     env.Float("PROVIDER_RPS", 5),

		CacheMaxEntries:      env.Int("CACHE_MAX_ENTRIES", 1000),
		CacheCleanupInterval: env.Duration("CACHE_CLEANUP_INTERVAL", 300*time.Second),

		HTTPClient: &http.Client{
			Timeout: 15 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        20,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     60 * time.Second,
			},
		},
	})

	engine.InitCache(
		env.Str("REDIS_URL", ""),
		env.Duration("CACHE_TTL", 15*time.Minute),
		env.Int("CACHE_MAX_ENTRIES", 1000),
		env.Duration("CACHE_CLEANUP_INTERVAL", 300*time.Second),
	)
}
