package engine

import (
	"net/http"
	"time"
)

// Default provider endpoints. Overridable in Config for tests.
const (
	DefaultJSearchBaseURL = "https://jsearch.p.rapidapi.com"
	DefaultSerperBaseURL  = "https://google.serper.dev"
	DefaultMuseBaseURL    = "https://www.themuse.com/api/public"
	DefaultAdzunaBaseURL  = "https://api.adzuna.com/v1/api"
	DefaultResendBaseURL  = "https://api.resend.com"
)

// Config holds all engine configuration, injected from main.
// Provider API keys live here, never in package globals.
type Config struct {
	JSearchAPIKey string
	SerperAPIKey  string
	MuseAPIKey    string // optional; The Muse public API works without one
	AdzunaAppID   string
	AdzunaAppKey  string
	ResendAPIKey  string
	EmailFrom     string

	JSearchBaseURL string
	SerperBaseURL  string
	MuseBaseURL    string
	AdzunaBaseURL  string
	ResendBaseURL  string

	ProviderTimeout time.Duration // per external call
	ProviderRPS     float64       // outbound rate limit, per provider

	CacheMaxEntries      int
	CacheCleanupInterval time.Duration

	HTTPClient *http.Client
}

var cfg Config

// Cfg exposes the engine configuration for sub-packages (careers, dispatch).
// Always points to the current cfg value.
var Cfg = &cfg

// Init initializes the engine with the given configuration.
func Init(c Config) {
	if c.JSearchBaseURL == "" {
		c.JSearchBaseURL = DefaultJSearchBaseURL
	}
	if c.SerperBaseURL == "" {
		c.SerperBaseURL = DefaultSerperBaseURL
	}
	if c.MuseBaseURL == "" {
		c.MuseBaseURL = DefaultMuseBaseURL
	}
	if c.AdzunaBaseURL == "" {
		c.AdzunaBaseURL = DefaultAdzunaBaseURL
	}
	if c.ResendBaseURL == "" {
		c.ResendBaseURL = DefaultResendBaseURL
	}
	if c.ProviderTimeout <= 0 {
		c.ProviderTimeout = 10 * time.Second
	}
	if c.ProviderRPS <= 0 {
		c.ProviderRPS = 5
	}
	if c.EmailFrom == "" {
		c.EmailFrom = "Career Scout <no-reply@ai-job-prep.com>"
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: 15 * time.Second}
	}
	cfg = c
	Cfg = &cfg
	resetLimiters()
}
