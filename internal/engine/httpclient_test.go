package engine

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func testInit(overrides func(*Config)) {
	c := Config{
		ProviderTimeout: 2 * time.Second,
		ProviderRPS:     1000, // no throttling in tests
		HTTPClient:      &http.Client{Timeout: 2 * time.Second},
	}
	if overrides != nil {
		overrides(&c)
	}
	Init(c)
}

func TestDoJSON(t *testing.T) {
	t.Run("decodes success response", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("User-Agent") != UserAgent {
				t.Errorf("missing user agent, got %q", r.Header.Get("User-Agent"))
			}
			w.Write([]byte(`{"status":"OK","value":7}`))
		}))
		defer srv.Close()
		testInit(nil)

		var out struct {
			Status string `json:"status"`
			Value  int    `json:"value"`
		}
		if err := DoJSON(context.Background(), ProviderJSearch, "GET", srv.URL, nil, nil, &out); err != nil {
			t.Fatalf("DoJSON: %v", err)
		}
		if out.Status != "OK" || out.Value != 7 {
			t.Errorf("got %+v", out)
		}
	})

	t.Run("non-2xx becomes StatusError", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			w.Write([]byte("no credentials"))
		}))
		defer srv.Close()
		testInit(nil)

		err := DoJSON(context.Background(), ProviderSerper, "GET", srv.URL, nil, nil, nil)
		var se *StatusError
		if !errors.As(err, &se) {
			t.Fatalf("expected StatusError, got %v", err)
		}
		if se.Status != 403 || se.Provider != ProviderSerper {
			t.Errorf("got %+v", se)
		}
		if se.Body != "no credentials" {
			t.Errorf("body not captured: %q", se.Body)
		}
	})

	t.Run("retries 500 then succeeds", func(t *testing.T) {
		var calls atomic.Int64
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if calls.Add(1) == 1 {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			w.Write([]byte(`{"ok":true}`))
		}))
		defer srv.Close()
		testInit(nil)

		var out struct {
			OK bool `json:"ok"`
		}
		if err := DoJSON(context.Background(), ProviderMuse, "GET", srv.URL, nil, nil, &out); err != nil {
			t.Fatalf("DoJSON: %v", err)
		}
		if !out.OK {
			t.Error("expected decoded retry result")
		}
		if calls.Load() != 2 {
			t.Errorf("expected 2 calls, got %d", calls.Load())
		}
	})

	t.Run("sends payload and headers", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				t.Errorf("method = %s", r.Method)
			}
			if r.Header.Get("X-API-KEY") != "secret" {
				t.Error("custom header missing")
			}
			if r.Header.Get("Content-Type") != "application/json" {
				t.Error("content type missing")
			}
			w.Write([]byte(`{}`))
		}))
		defer srv.Close()
		testInit(nil)

		err := DoJSON(context.Background(), ProviderSerper, "POST", srv.URL,
			map[string]string{"X-API-KEY": "secret"}, []byte(`{"q":"test"}`), nil)
		if err != nil {
			t.Fatalf("DoJSON: %v", err)
		}
	})
}
