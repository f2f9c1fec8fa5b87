package probe

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pathoracle/pathoracle/pkg/score"
)

func testServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/users", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/admin", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	mux.HandleFunc("/internal", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestRunClassification(t *testing.T) {
	srv := testServer(t)
	p := New(Config{})
	candidates := []score.Scored{
		{Path: "/api/users", Probability: 0.9},
		{Path: "/admin", Probability: 0.5},
		{Path: "/internal", Probability: 0.3},
		{Path: "/nope", Probability: 0.1},
	}
	results, err := p.Run(context.Background(), srv.URL, candidates)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if len(results) != 4 {
		t.Fatalf("got %d results, want 4", len(results))
	}
	wantValid := []bool{true, true, true, false}
	wantStatus := []int{200, 401, 403, 404}
	for i, r := range results {
		if r.Valid != wantValid[i] {
			t.Errorf("result %d (%s) Valid = %v, want %v", i, r.Path, r.Valid, wantValid[i])
		}
		if r.StatusCode != wantStatus[i] {
			t.Errorf("result %d (%s) StatusCode = %d, want %d", i, r.Path, r.StatusCode, wantStatus[i])
		}
	}
}

func TestRunUnreachableTarget(t *testing.T) {
	p := New(Config{Timeout: 500 * time.Millisecond})
	results, err := p.Run(context.Background(), "http://127.0.0.1:1", []score.Scored{{Path: "/x", Probability: 1}})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	if results[0].Valid || results[0].StatusCode != 0 {
		t.Errorf("unreachable probe = %+v, want invalid with status 0", results[0])
	}
}

func TestRunThrottlePacing(t *testing.T) {
	srv := testServer(t)
	p := New(Config{Throttle: 50 * time.Millisecond})
	candidates := []score.Scored{
		{Path: "/api/users"}, {Path: "/admin"}, {Path: "/internal"},
	}
	start := time.Now()
	if _, err := p.Run(context.Background(), srv.URL, candidates); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 100*time.Millisecond {
		t.Errorf("3 throttled probes took %v, want at least 100ms", elapsed)
	}
}

func TestRunCancellation(t *testing.T) {
	srv := testServer(t)
	p := New(Config{Throttle: time.Hour})
	ctx, cancel := context.WithCancel(context.Background())

	var got []Result
	done := make(chan struct{})
	go func() {
		defer close(done)
		got, _ = p.Run(ctx, srv.URL, []score.Scored{
			{Path: "/api/users"}, {Path: "/admin"},
		})
	}()
	time.Sleep(100 * time.Millisecond)
	cancel()
	<-done

	// first probe fires immediately, the second blocks on the limiter
	if len(got) != 1 {
		t.Fatalf("got %d results after cancel, want 1", len(got))
	}
}

func TestRunStaticSuffix(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
	}))
	defer srv.Close()

	p := New(Config{StaticSuffix: ".json"})
	results, err := p.Run(context.Background(), srv.URL, []score.Scored{{Path: "/api/users"}})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if gotPath != "/api/users.json" {
		t.Errorf("requested path = %q, want /api/users.json", gotPath)
	}
	// the reported path stays suffix-free
	if results[0].Path != "/api/users" {
		t.Errorf("result path = %q, want /api/users", results[0].Path)
	}
}

func TestRunOnResultOrder(t *testing.T) {
	srv := testServer(t)
	var seen []string
	p := New(Config{OnResult: func(r Result) { seen = append(seen, r.Path) }})
	candidates := []score.Scored{
		{Path: "/api/users", Probability: 0.9},
		{Path: "/admin", Probability: 0.5},
	}
	if _, err := p.Run(context.Background(), srv.URL, candidates); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if len(seen) != 2 || seen[0] != "/api/users" || seen[1] != "/admin" {
		t.Errorf("OnResult order = %v", seen)
	}
}
