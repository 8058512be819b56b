package dispatch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/careerscout/careerscout/internal/engine"
)

// ErrUnknownTool is returned when the requested tool name is not registered.
var ErrUnknownTool = errors.New("unknown tool")

type handlerFunc func(ctx context.Context, params json.RawMessage) Envelope

var handlers = map[string]handlerFunc{
	"search-jobs":            wrap(SearchJobs),
	"job-details":            wrap(JobDetails),
	"estimated-salary":       wrap(EstimatedSalary),
	"company-job-salary":     wrap(CompanyJobSalary),
	"market-insight-tool":    wrap(MarketInsight),
	"intelligent-job-search": wrap(IntelligentSearch),
	"analyze-company":        wrap(AnalyzeCompany),
	"web-search":             wrap(WebSearch),
	"send-email":             wrap(SendEmail),
}

// wrap adapts a typed handler to the raw-params signature. Malformed JSON
// yields a failure envelope without touching any provider.
func wrap[T any](fn func(ctx context.Context, input T) Envelope) handlerFunc {
	return func(ctx context.Context, params json.RawMessage) Envelope {
		var input T
		if len(params) > 0 {
			if err := json.Unmarshal(params, &input); err != nil {
				return fail("Invalid parameters: "+err.Error(), "Could not parse tool parameters")
			}
		}
		return fn(ctx, input)
	}
}

// Dispatch runs one named tool. The error return is non-nil only for unknown
// tool names; every handler outcome, including failures, arrives as an
// envelope.
func Dispatch(ctx context.Context, tool string, params json.RawMessage) (Envelope, error) {
	handler, found := handlers[tool]
	if !found {
		return Envelope{}, fmt.Errorf("%w: %s", ErrUnknownTool, tool)
	}

	callID := uuid.NewString()[:8]
	engine.IncrToolCalls()
	slog.Info("tool call", "tool", tool, "call_id", callID)

	env := safeCall(ctx, tool, callID, handler, params)
	if !env.Success {
		engine.IncrToolErrors()
		slog.Warn("tool call failed", "tool", tool, "call_id", callID, "message", env.Message)
	} else {
		slog.Info("tool call done", "tool", tool, "call_id", callID)
	}
	return env, nil
}

// safeCall converts a handler panic into a sanitized failure envelope so one
// bad call cannot take down the server.
func safeCall(ctx context.Context, tool, callID string, handler handlerFunc, params json.RawMessage) (env Envelope) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("tool handler panic", "tool", tool, "call_id", callID, "panic", r)
			env = fail("Internal server error", "Internal server error")
		}
	}()
	return handler(ctx, params)
}

// upstreamFail maps a provider error onto a failure envelope. Upstream HTTP
// status errors keep their provider-facing text.
func upstreamFail(err error, message string) Envelope {
	var se *engine.StatusError
	if errors.As(err, &se) {
		return fail(se.Error(), message)
	}
	return fail(err.Error(), message)
}
