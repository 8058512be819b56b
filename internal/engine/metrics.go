package engine

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Metrics tracks operational counters across the engine.
var metrics struct {
	JSearchRequests atomic.Int64
	JSearchErrors   atomic.Int64
	SerperRequests  atomic.Int64
	SerperErrors    atomic.Int64
	MuseRequests    atomic.Int64
	MuseErrors      atomic.Int64
	AdzunaRequests  atomic.Int64
	AdzunaErrors    atomic.Int64
	ResendRequests  atomic.Int64
	ResendErrors    atomic.Int64
	ToolCalls       atomic.Int64
	ToolErrors      atomic.Int64
}

// Provider display names used across metrics and error reporting.
const (
	ProviderJSearch = "JSearch"
	ProviderSerper  = "Serper"
	ProviderMuse    = "The Muse"
	ProviderAdzuna  = "Adzuna"
	ProviderResend  = "Resend"
)

// IncrProviderRequest increments the request counter for the given provider.
func IncrProviderRequest(provider string) {
	switch provider {
	case ProviderJSearch:
		metrics.JSearchRequests.Add(1)
	case ProviderSerper:
		metrics.SerperRequests.Add(1)
	case ProviderMuse:
		metrics.MuseRequests.Add(1)
	case ProviderAdzuna:
		metrics.AdzunaRequests.Add(1)
	case ProviderResend:
		metrics.ResendRequests.Add(1)
	}
}

// IncrProviderError increments the error counter for the given provider.
func IncrProviderError(provider string) {
	switch provider {
	case ProviderJSearch:
		metrics.JSearchErrors.Add(1)
	case ProviderSerper:
		metrics.SerperErrors.Add(1)
	case ProviderMuse:
		metrics.MuseErrors.Add(1)
	case ProviderAdzuna:
		metrics.AdzunaErrors.Add(1)
	case ProviderResend:
		metrics.ResendErrors.Add(1)
	}
}

// Incrementors for the dispatch layer.
func IncrToolCalls()  { metrics.ToolCalls.Add(1) }
func IncrToolErrors() { metrics.ToolErrors.Add(1) }

// GetMetrics returns a snapshot of all metrics including cache stats.
func GetMetrics() map[string]int64 {
	hits, misses := CacheStats()
	return map[string]int64{
		"jsearch_requests": metrics.JSearchRequests.Load(),
		"jsearch_errors":   metrics.JSearchErrors.Load(),
		"serper_requests":  metrics.SerperRequests.Load(),
		"serper_errors":    metrics.SerperErrors.Load(),
		"muse_requests":    metrics.MuseRequests.Load(),
		"muse_errors":      metrics.MuseErrors.Load(),
		"adzuna_requests":  metrics.AdzunaRequests.Load(),
		"adzuna_errors":    metrics.AdzunaErrors.Load(),
		"resend_requests":  metrics.ResendRequests.Load(),
		"resend_errors":    metrics.ResendErrors.Load(),
		"tool_calls":       metrics.ToolCalls.Load(),
		"tool_errors":      metrics.ToolErrors.Load(),
		"cache_hits":       hits,
		"cache_misses":     misses,
	}
}

// FormatMetrics returns metrics as a simple text format for HTTP endpoints.
func FormatMetrics() string {
	m := GetMetrics()
	var sb strings.Builder
	keys := []string{
		"jsearch_requests", "jsearch_errors",
		"serper_requests", "serper_errors",
		"muse_requests", "muse_errors",
		"adzuna_requests", "adzuna_errors",
		"resend_requests", "resend_errors",
		"tool_calls", "tool_errors",
		"cache_hits", "cache_misses",
	}
	for _, k := range keys {
		fmt.Fprintf(&sb, "%s %d\n", k, m[k])
	}
	return sb.String()
}
