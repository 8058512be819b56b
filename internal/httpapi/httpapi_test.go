package httpapi

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/careerscout/careerscout/internal/engine"
)

func newTestApp(t *testing.T, providers http.Handler) *fiber.App {
	t.Helper()

	var baseURL string
	if providers != nil {
		srv := httptest.NewServer(providers)
		t.Cleanup(srv.Close)
		baseURL = srv.URL
	} else {
		// Unreachable address so any provider call fails fast.
		baseURL = "http://127.0.0.1:1"
	}

	engine.Init(engine.Config{
		JSearchAPIKey:   "test-key",
		SerperAPIKey:    "test-key",
		ResendAPIKey:    "test-key",
		JSearchBaseURL:  baseURL,
		SerperBaseURL:   baseURL,
		MuseBaseURL:     baseURL,
		AdzunaBaseURL:   baseURL,
		ResendBaseURL:   baseURL,
		ProviderTimeout: 2 * time.Second,
		ProviderRPS:     1000,
		HTTPClient:      &http.Client{Timeout: 2 * time.Second},
	})

	return New("test")
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m), "body: %s", raw)
	return m
}

func TestHealthz(t *testing.T) {
	app := newTestApp(t, nil)
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	require.Equal(t, "ok", body["status"])
	require.NotEmpty(t, body["endpoints"])
}

func TestMetricsEndpoint(t *testing.T) {
	app := newTestApp(t, nil)
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Contains(t, string(raw), "tool_calls ")
	require.Contains(t, string(raw), "cache_hits ")
}

func TestMuseJobsRoute(t *testing.T) {
	t.Run("missing category", func(t *testing.T) {
		app := newTestApp(t, nil)
		resp := postJSON(t, app, "/jobs", `{"level":"Senior Level"}`)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		require.Equal(t, "Job category is required", decodeBody(t, resp)["error"])
	})

	t.Run("no jobs found", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/jobs", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"results":[]}`))
		})
		app := newTestApp(t, mux)

		resp := postJSON(t, app, "/jobs", `{"category":"Engineering"}`)
		require.Equal(t, http.StatusNotFound, resp.StatusCode)
		body := decodeBody(t, resp)
		require.Equal(t, "No jobs found matching the criteria", body["error"])
		require.NotNil(t, body["searchParams"])
	})

	t.Run("upstream status propagates", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/jobs", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})
		app := newTestApp(t, mux)

		resp := postJSON(t, app, "/jobs", `{"category":"Engineering"}`)
		require.Equal(t, http.StatusBadGateway, resp.StatusCode)
		require.Equal(t, "Error from external API", decodeBody(t, resp)["error"])
	})

	t.Run("network failure returns 503", func(t *testing.T) {
		app := newTestApp(t, nil)
		resp := postJSON(t, app, "/jobs", `{"category":"Engineering"}`)
		require.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
		require.Equal(t, "No response from external API", decodeBody(t, resp)["error"])
	})

	t.Run("success returns pruned jobs", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/jobs", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"results":[{"name":"Engineer","company":{"name":"Acme"},
				"locations":[{"name":"Remote"}],"publication_date":"2026-08-01","short_name":"engineer"}]}`))
		})
		app := newTestApp(t, mux)

		resp := postJSON(t, app, "/jobs", `{"category":"Engineering"}`)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		jobs := body["response"].([]any)
		require.Len(t, jobs, 1)
		first := jobs[0].(map[string]any)
		require.Equal(t, "Engineer", first["title"])
		require.Equal(t, "Acme", first["company"])
	})
}

func TestActionsRoute(t *testing.T) {
	t.Run("GET lists tools", func(t *testing.T) {
		app := newTestApp(t, nil)
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/mcp/actions", nil))
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		raw, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		var tools []map[string]any
		require.NoError(t, json.Unmarshal(raw, &tools))
		require.Len(t, tools, 9)
	})

	t.Run("missing tool or parameters", func(t *testing.T) {
		app := newTestApp(t, nil)
		resp := postJSON(t, app, "/mcp/actions", `{"tool":"search-jobs"}`)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		require.Equal(t, "Missing tool or parameters", decodeBody(t, resp)["error"])
	})

	t.Run("unknown tool", func(t *testing.T) {
		app := newTestApp(t, nil)
		resp := postJSON(t, app, "/mcp/actions", `{"tool":"make-coffee","parameters":{}}`)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		require.Equal(t, "Unknown tool: make-coffee", decodeBody(t, resp)["error"])
	})

	t.Run("executes tool and returns envelope", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/search", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status":"OK","data":[{"job_id":"1","job_title":"Go Developer","employer_name":"Acme","job_apply_link":"https://apply.example/1"}]}`))
		})
		app := newTestApp(t, mux)

		resp := postJSON(t, app, "/mcp/actions", `{"tool":"search-jobs","parameters":{"query":"golang"}}`)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		require.Equal(t, true, body["success"])
		require.Equal(t, `Found 1 jobs for "golang"`, body["message"])
		require.Contains(t, body, "data")
		require.Contains(t, body, "error")
	})

	t.Run("tool failure still returns 200 envelope", func(t *testing.T) {
		app := newTestApp(t, nil)
		resp := postJSON(t, app, "/mcp/actions", `{"tool":"job-details","parameters":{"job_id":""}}`)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		require.Equal(t, false, body["success"])
		require.Equal(t, "Job ID is required", body["error"])
	})
}

func TestJSONRPCRoute(t *testing.T) {
	t.Run("invalid version", func(t *testing.T) {
		app := newTestApp(t, nil)
		resp := postJSON(t, app, "/mcp", `{"jsonrpc":"1.0","id":1,"method":"tools/list"}`)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		rpcErr := body["error"].(map[string]any)
		require.Equal(t, float64(-32600), rpcErr["code"])
	})

	t.Run("tools list", func(t *testing.T) {
		app := newTestApp(t, nil)
		resp := postJSON(t, app, "/mcp", `{"jsonrpc":"2.0","id":1,"method":"tools/list"}`)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		result := body["result"].(map[string]any)
		require.Len(t, result["tools"].([]any), 9)
	})

	t.Run("unknown method", func(t *testing.T) {
		app := newTestApp(t, nil)
		resp := postJSON(t, app, "/mcp", `{"jsonrpc":"2.0","id":2,"method":"resources/list"}`)
		body := decodeBody(t, resp)
		rpcErr := body["error"].(map[string]any)
		require.Equal(t, float64(-32601), rpcErr["code"])
	})

	t.Run("unknown tool call", func(t *testing.T) {
		app := newTestApp(t, nil)
		resp := postJSON(t, app, "/mcp", `{"jsonrpc":"2.0","id":3,"method":"tools/call","params":{"name":"make-coffee","arguments":{}}}`)
		body := decodeBody(t, resp)
		rpcErr := body["error"].(map[string]any)
		require.Equal(t, float64(-32601), rpcErr["code"])
		require.True(t, strings.Contains(rpcErr["message"].(string), "make-coffee"))
	})

	t.Run("tools call returns envelope result", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/search", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status":"OK","data":[]}`))
		})
		app := newTestApp(t, mux)

		resp := postJSON(t, app, "/mcp", `{"jsonrpc":"2.0","id":4,"method":"tools/call","params":{"name":"search-jobs","arguments":{"query":"golang"}}}`)
		body := decodeBody(t, resp)
		result := body["result"].(map[string]any)
		require.Equal(t, true, result["success"])
	})
}

func TestSendEmailRoute(t *testing.T) {
	t.Run("missing fields", func(t *testing.T) {
		app := newTestApp(t, nil)
		resp := postJSON(t, app, "/send-email", `{"to":"a@b.c","subject":"hi"}`)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		require.Equal(t, "Missing required fields: to, subject, or html", decodeBody(t, resp)["error"])
	})

	t.Run("success", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/emails", func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
			w.Write([]byte(`{"id":"msg_123"}`))
		})
		app := newTestApp(t, mux)

		resp := postJSON(t, app, "/send-email", `{"to":"a@b.c","subject":"hi","html":"<b>hello</b>"}`)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		body := decodeBody(t, resp)
		require.Equal(t, true, body["success"])
		data := body["data"].(map[string]any)
		require.Equal(t, "msg_123", data["id"])
	})

	t.Run("upstream status propagates", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/emails", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
		})
		app := newTestApp(t, mux)

		resp := postJSON(t, app, "/send-email", `{"to":"bad","subject":"hi","html":"x"}`)
		require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	})
}
