package careers

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"
)

func companyMux(t *testing.T, jobsStatus int, jobsCalled *atomic.Bool) *http.ServeMux {
	t.Helper()
	mux := http.NewServeMux()
	// Serper web search and JSearch job search share the /search path; route
	// by method since Serper is POST and JSearch is GET.
	mux.HandleFunc("/search", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			w.Write([]byte(`{"organic":[
				{"title":"Acme Corp - About","link":"https://acme.example","position":1},
				{"title":"Acme revenue 2026","link":"https://news.example","position":2}
			]}`))
			return
		}
		if jobsCalled != nil {
			jobsCalled.Store(true)
		}
		if jobsStatus != http.StatusOK {
			w.WriteHeader(jobsStatus)
			return
		}
		w.Write([]byte(`{"status":"OK","data":[
			{"job_id":"1","job_title":"Engineer","employer_name":"Acme"},
			{"job_id":"2","job_title":"Designer","employer_name":"Acme"},
			{"job_id":"3","job_title":"PM","employer_name":"Acme"},
			{"job_id":"4","job_title":"Analyst","employer_name":"Acme"},
			{"job_id":"5","job_title":"SRE","employer_name":"Acme"},
			{"job_id":"6","job_title":"Writer","employer_name":"Acme"}
		]}`))
	})
	mux.HandleFunc("/news", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"news":[{"title":"Acme raises Series C","source":"TechCrunch"}]}`))
	})
	return mux
}

func TestAnalyzeCompany(t *testing.T) {
	newProviderServer(t, companyMux(t, http.StatusOK, nil))

	info, err := AnalyzeCompany(context.Background(), "Acme", true)
	if err != nil {
		t.Fatalf("AnalyzeCompany: %v", err)
	}
	if info.CompanyName != "Acme" {
		t.Errorf("name = %q", info.CompanyName)
	}
	if len(info.SearchResults) != 2 || len(info.News) != 1 {
		t.Errorf("results = %d search, %d news", len(info.SearchResults), len(info.News))
	}
	if info.CurrentOpenings != 6 {
		t.Errorf("openings = %d, want 6", info.CurrentOpenings)
	}
	if len(info.Jobs) != 5 {
		t.Errorf("jobs capped at 5, got %d", len(info.Jobs))
	}
	want := "Found 2 relevant search results, 1 news articles, and 6 current job openings"
	if info.AnalysisSummary != want {
		t.Errorf("summary = %q", info.AnalysisSummary)
	}
}

func TestAnalyzeCompanyJobsDegrade(t *testing.T) {
	// A failing job lookup must not fail the analysis.
	newProviderServer(t, companyMux(t, http.StatusForbidden, nil))

	info, err := AnalyzeCompany(context.Background(), "Acme", true)
	if err != nil {
		t.Fatalf("AnalyzeCompany: %v", err)
	}
	if info.CurrentOpenings != 0 {
		t.Errorf("openings = %d, want 0", info.CurrentOpenings)
	}
	if info.Jobs == nil || len(info.Jobs) != 0 {
		t.Errorf("jobs = %v, want empty non-nil", info.Jobs)
	}
	if len(info.SearchResults) != 2 {
		t.Errorf("web results lost: %d", len(info.SearchResults))
	}
}

func TestAnalyzeCompanySkipsJobs(t *testing.T) {
	var jobsCalled atomic.Bool
	newProviderServer(t, companyMux(t, http.StatusOK, &jobsCalled))

	info, err := AnalyzeCompany(context.Background(), "Acme", false)
	if err != nil {
		t.Fatalf("AnalyzeCompany: %v", err)
	}
	if jobsCalled.Load() {
		t.Error("job search called despite includeJobs=false")
	}
	if info.CurrentOpenings != 0 || len(info.Jobs) != 0 {
		t.Errorf("openings = %d jobs = %v", info.CurrentOpenings, info.Jobs)
	}
}

func TestAnalyzeCompanyWebFailureFails(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/search", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})
	mux.HandleFunc("/news", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"news":[]}`))
	})
	newProviderServer(t, mux)

	if _, err := AnalyzeCompany(context.Background(), "Acme", false); err == nil {
		t.Fatal("expected error when web search fails")
	}
}
