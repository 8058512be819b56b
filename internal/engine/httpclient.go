package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"

	"golang.org/x/time/rate"
)

// UserAgent is sent on every outbound provider request.
const UserAgent = "CareerScout/2.0"

// StatusError is a non-2xx response from an upstream provider. Handlers use it
// to propagate the upstream status into the tool envelope.
type StatusError struct {
	Provider string // display name, e.g. "JSearch", "Serper"
	Status   int
	Body     string // truncated upstream body, safe to echo to callers
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s API error: %d %s", e.Provider, e.Status, http.StatusText(e.Status))
}

var (
	limiterMu sync.Mutex
	limiters  = map[string]*rate.Limiter{}
)

func limiterFor(provider string) *rate.Limiter {
	limiterMu.Lock()
	defer limiterMu.Unlock()
	l, ok := limiters[provider]
	if !ok {
		burst := int(cfg.ProviderRPS)
		if burst < 1 {
			burst = 1
		}
		l = rate.NewLimiter(rate.Limit(cfg.ProviderRPS), burst)
		limiters[provider] = l
	}
	return l
}

func resetLimiters() {
	limiterMu.Lock()
	defer limiterMu.Unlock()
	limiters = map[string]*rate.Limiter{}
}

// DoJSON issues an outbound provider request and decodes the JSON response into out.
// It applies the per-provider rate limit, the per-call timeout from Config, and
// retries transient failures. A non-2xx final response becomes a *StatusError.
func DoJSON(ctx context.Context, provider, method, rawURL string, headers map[string]string, payload []byte, out any) error {
	if err := limiterFor(provider).Wait(ctx); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.ProviderTimeout)
	defer cancel()

	IncrProviderRequest(provider)

	resp, err := RetryHTTP(ctx, DefaultRetryConfig, provider, func() (*http.Response, error) {
		var body io.Reader
		if payload != nil {
			body = bytes.NewReader(payload)
		}
		req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
		if err != nil {
			return nil, err
		}
		req.Header.Set("User-Agent", UserAgent)
		req.Header.Set("Accept", "application/json")
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		for k, v := range headers {
			req.Header.Set(k, v)
		}
		return cfg.HTTPClient.Do(req)
	})
	if err != nil {
		IncrProviderError(provider)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		IncrProviderError(provider)
		return &StatusError{Provider: provider, Status: resp.StatusCode, Body: strings.TrimSpace(string(b))}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, 2<<20))
	if err != nil {
		IncrProviderError(provider)
		return fmt.Errorf("%s: read response: %w", provider, err)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		IncrProviderError(provider)
		return fmt.Errorf("%s: decode response: %w", provider, err)
	}
	return nil
}
