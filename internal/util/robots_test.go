package util

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestCanFetchAllowed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			_, _ = w.Write([]byte("User-agent: *\nDisallow: /private/\n"))
			return
		}
		http.NotFound(w, r)
	}))
	defer server.Close()

	checker := NewRobotsChecker("textorigin-test", 5*time.Second)

	allowed, _, err := checker.CanFetch(context.Background(), server.URL+"/public/page")
	if err != nil {
		t.Fatalf("CanFetch failed: %v", err)
	}
	if !allowed {
		t.Error("Expected /public/page to be allowed")
	}

	allowed, _, err = checker.CanFetch(context.Background(), server.URL+"/private/page")
	if err != nil {
		t.Fatalf("CanFetch failed: %v", err)
	}
	if allowed {
		t.Error("Expected /private/page to be disallowed")
	}
}

func TestCanFetchMissingRobotsAllows(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	checker := NewRobotsChecker("textorigin-test", 5*time.Second)

	allowed, _, err := checker.CanFetch(context.Background(), server.URL+"/anything")
	if err != nil {
		t.Fatalf("CanFetch failed: %v", err)
	}
	if !allowed {
		t.Error("A missing robots.txt should allow everything")
	}
}

func TestCanFetchUnreachableHostAllows(t *testing.T) {
	checker := NewRobotsChecker("textorigin-test", 200*time.Millisecond)

	allowed, _, err := checker.CanFetch(context.Background(), "http://127.0.0.1:1/page")
	if err != nil {
		t.Fatalf("CanFetch failed: %v", err)
	}
	if !allowed {
		t.Error("An unreachable robots.txt should allow by default")
	}
}

func TestRobotsCached(t *testing.T) {
	var hits int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			atomic.AddInt64(&hits, 1)
			_, _ = w.Write([]byte("User-agent: *\nAllow: /\n"))
		}
	}))
	defer server.Close()

	checker := NewRobotsChecker("textorigin-test", 5*time.Second)

	for i := 0; i < 3; i++ {
		if !checker.IsAllowed(context.Background(), server.URL+"/page") {
			t.Fatal("Expected fetch to be allowed")
		}
	}

	if got := atomic.LoadInt64(&hits); got != 1 {
		t.Errorf("Expected 1 robots.txt fetch, got %d", got)
	}

	checker.Clear()
	checker.IsAllowed(context.Background(), server.URL+"/page")
	if got := atomic.LoadInt64(&hits); got != 2 {
		t.Errorf("Expected a refetch after Clear, got %d hits", got)
	}
}

func TestCanFetchCrawlDelay(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/robots.txt" {
			_, _ = w.Write([]byte("User-agent: *\nCrawl-delay: 2\n"))
		}
	}))
	defer server.Close()

	checker := NewRobotsChecker("textorigin-test", 5*time.Second)

	_, delay, err := checker.CanFetch(context.Background(), server.URL+"/page")
	if err != nil {
		t.Fatalf("CanFetch failed: %v", err)
	}
	if delay != 2*time.Second {
		t.Errorf("Expected 2s crawl delay, got %v", delay)
	}
}
