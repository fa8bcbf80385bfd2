//go:build e2e && unix

package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
)

// FakeBackend is an in-process stand-in for the job market API
type FakeBackend struct {
	*httptest.Server

	mu       sync.Mutex
	queries  []url.Values
	suggests []string
	toggles  []int
	crawl    int
}

type fakeJob struct {
	ID        int      `json:"id"`
	Title     string   `json:"title"`
	Company   string   `json:"company"`
	Level     string   `json:"level"`
	SalaryRaw string   `json:"salary_raw"`
	AvgSalary *float64 `json:"avg_salary_mil_vnd"`
	Location  string   `json:"location"`
	Skills    string   `json:"skills"`
	Source    string   `json:"source"`
	CrawledAt string   `json:"crawled_at"`
}

func salary(v float64) *float64 { return &v }

var fakeJobs = []fakeJob{
	{ID: 1, Title: "Golang Developer", Company: "Acme", Level: "Senior", SalaryRaw: "40-50 triệu", AvgSalary: salary(45), Location: "Ha Noi", Skills: "Go, Docker", Source: "topcv", CrawledAt: "2026-10-17T08:00:00"},
	{ID: 2, Title: "Frontend Engineer", Company: "Globex", Level: "Junior", SalaryRaw: "Thỏa thuận", Location: "Da Nang", Skills: "React", Source: "itviec", CrawledAt: "2026-10-16T08:00:00"},
	{ID: 3, Title: "Data Engineer", Company: "Initech", Level: "Middle", SalaryRaw: "25 triệu", AvgSalary: salary(25), Location: "Ho Chi Minh", Skills: "Python, SQL", Source: "topcv", CrawledAt: "2026-10-15T08:00:00"},
}

// NewFakeBackend starts a server that answers every endpoint the TUI calls
func NewFakeBackend(t *testing.T) *FakeBackend {
	t.Helper()
	fb := &FakeBackend{crawl: 1}
	mux := http.NewServeMux()

	mux.HandleFunc("/api/jobs", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		fb.mu.Lock()
		fb.queries = append(fb.queries, q)
		fb.mu.Unlock()

		title := strings.ToLower(q.Get("title"))
		items := []fakeJob{}
		for _, j := range fakeJobs {
			if title == "" || strings.Contains(strings.ToLower(j.Title), title) {
				items = append(items, j)
			}
		}
		writeJSON(w, map[string]any{"items": items, "total": len(items), "page": 1, "per_page": 20})
	})

	mux.HandleFunc("/api/suggestions/", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("q")
		fb.mu.Lock()
		fb.suggests = append(fb.suggests, q)
		fb.mu.Unlock()

		var out []string
		for _, j := range fakeJobs {
			if strings.Contains(strings.ToLower(j.Title), strings.ToLower(q)) {
				out = append(out, j.Title)
			}
		}
		writeJSON(w, map[string]any{"suggestions": out})
	})

	mux.HandleFunc("/api/analytics/salary_distribution", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{"values": []float64{12, 18, 25, 25, 31, 45, 60}})
	})
	mux.HandleFunc("/api/analytics/by_location", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{"data": []map[string]any{
			{"location": "Ha Noi", "avg_salary": 32.5},
			{"location": "Ho Chi Minh", "avg_salary": 30.1},
		}})
	})
	mux.HandleFunc("/api/analytics/by_level", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{"data": []map[string]any{
			{"level": "Senior", "avg_salary": 48},
			{"level": "Junior", "avg_salary": 14},
		}})
	})
	mux.HandleFunc("/api/analytics/top-30-jobs", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, []map[string]any{
			{"id": 1, "title": "Golang Developer", "company": "Acme", "salary": 45, "location": "Ha Noi"},
		})
	})

	mux.HandleFunc("/api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil || r.PostForm.Get("password") != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			writeJSON(w, map[string]any{"detail": "Incorrect username or password"})
			return
		}
		writeJSON(w, map[string]any{"access_token": "e2e-token", "token_type": "bearer"})
	})
	mux.HandleFunc("/api/admin/settings", fb.admin(func(w http.ResponseWriter, r *http.Request) {
		fb.mu.Lock()
		defer fb.mu.Unlock()
		writeJSON(w, map[string]any{"crawl_enabled": fb.crawl})
	}))
	mux.HandleFunc("/api/admin/toggle_crawl", fb.admin(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Enabled int `json:"enabled"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		fb.mu.Lock()
		defer fb.mu.Unlock()
		fb.toggles = append(fb.toggles, body.Enabled)
		fb.crawl = body.Enabled
		writeJSON(w, map[string]any{"crawl_enabled": fb.crawl})
	}))
	mux.HandleFunc("/api/admin/logs", fb.admin(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{"logs": []string{"crawler idle", "import finished: 3 jobs"}})
	}))

	// Everything else the dashboard asks for answers with an empty body of the right shape
	mux.HandleFunc("/api/analytics/", func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/analytics/salary-stats", "/api/analytics/market-overview":
			writeJSON(w, map[string]any{})
		default:
			writeJSON(w, []any{})
		}
	})

	fb.Server = httptest.NewServer(mux)
	t.Cleanup(fb.Close)
	return fb
}

func (fb *FakeBackend) admin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer e2e-token" {
			w.WriteHeader(http.StatusUnauthorized)
			writeJSON(w, map[string]any{"detail": "Could not validate credentials"})
			return
		}
		next(w, r)
	}
}

// Queries returns the /api/jobs query strings seen so far
func (fb *FakeBackend) Queries() []url.Values {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return append([]url.Values(nil), fb.queries...)
}

// Suggests returns the autocomplete prefixes seen so far
func (fb *FakeBackend) Suggests() []string {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return append([]string(nil), fb.suggests...)
}

// Toggles returns the enabled flags sent to toggle_crawl
func (fb *FakeBackend) Toggles() []int {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return append([]int(nil), fb.toggles...)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
