package careers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/careerscout/careerscout/internal/engine"
)

// newProviderServer points every provider base URL at one fake server so
// tests can route by path.
func newProviderServer(t *testing.T, handler http.Handler) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	engine.Init(engine.Config{
		JSearchAPIKey:   "test-key",
		SerperAPIKey:    "test-key",
		AdzunaAppID:     "test-id",
		AdzunaAppKey:    "test-key",
		ResendAPIKey:    "test-key",
		JSearchBaseURL:  srv.URL,
		SerperBaseURL:   srv.URL,
		MuseBaseURL:     srv.URL,
		AdzunaBaseURL:   srv.URL,
		ResendBaseURL:   srv.URL,
		ProviderTimeout: 2 * time.Second,
		ProviderRPS:     1000,
		HTTPClient:      &http.Client{Timeout: 2 * time.Second},
	})
	return srv
}
