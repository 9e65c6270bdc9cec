package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

func TestDetectSource(t *testing.T) {
	tests := []struct {
		in   string
		want Source
	}{
		{"https://example.com/game", SourceURL},
		{"http://example.com/game", SourceURL},
		{"game.html", SourceFile},
		{"/tmp/saved/game.html", SourceFile},
		{"<!DOCTYPE html><html></html>", SourceMarkup},
		{"  <html><body></body></html>", SourceMarkup},
		{"<?xml version=\"1.0\"?><html/>", SourceMarkup},
		{"", SourceFile},
	}

	for _, tt := range tests {
		if got := DetectSource(tt.in); got != tt.want {
			t.Errorf("DetectSource(%.30q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSource_String(t *testing.T) {
	if SourceURL.String() != "url" || SourceFile.String() != "file" || SourceMarkup.String() != "markup" {
		t.Error("Source.String() mismatch")
	}
}

func TestClient_FetchMarkupPassthrough(t *testing.T) {
	c := NewClient()
	src := "<html><body>inline</body></html>"

	got, err := c.Fetch(context.Background(), src)
	if err != nil {
		t.Fatalf("Fetch() failed: %v", err)
	}
	if got != src {
		t.Errorf("Fetch() = %q, want passthrough", got)
	}
}

func TestClient_FetchFile(t *testing.T) {
	tmpFile, err := os.CreateTemp("", "feed-*.html")
	if err != nil {
		t.Fatalf("temp file: %v", err)
	}
	defer os.Remove(tmpFile.Name())
	tmpFile.WriteString("<p>saved feed</p>")
	tmpFile.Close()

	got, err := NewClient().Fetch(context.Background(), tmpFile.Name())
	if err != nil {
		t.Fatalf("Fetch() failed: %v", err)
	}
	if got != "<p>saved feed</p>" {
		t.Errorf("Fetch() = %q", got)
	}
}

func TestClient_FetchFileMissing(t *testing.T) {
	_, err := NewClient().Fetch(context.Background(), "/nonexistent/feed.html")
	if err == nil {
		t.Error("expected error for missing file")
	}
}

func TestClient_FetchURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") == "" {
			t.Error("request missing User-Agent header")
		}
		w.Write([]byte("<html>feed</html>"))
	}))
	defer srv.Close()

	got, err := NewClient().Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Fetch() failed: %v", err)
	}
	if got != "<html>feed</html>" {
		t.Errorf("Fetch() = %q", got)
	}
}

func TestClient_ForbiddenThenOK(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		// The follow-up carries the tweaked headers.
		if r.Header.Get("Pragma") != "no-cache" {
			t.Error("follow-up request missing tweaked headers")
		}
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	got, err := NewClient().Fetch(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Fetch() failed: %v", err)
	}
	if got != "ok" {
		t.Errorf("Fetch() = %q, want ok", got)
	}
	if atomic.LoadInt32(&calls) != 2 {
		t.Errorf("server saw %d calls, want 2", calls)
	}
}

func TestClient_RetriesExhausted(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClientWithOptions(ClientOptions{
		Retries: 2,
		Backoff: time.Millisecond,
	})
	_, err := c.Fetch(context.Background(), srv.URL)
	if err == nil {
		t.Fatal("expected error after retries exhausted")
	}
	if !strings.Contains(err.Error(), "unexpected status 500") {
		t.Errorf("err = %v, want status in message", err)
	}
}

func TestClient_ContextCancellation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewClientWithOptions(ClientOptions{Retries: 3, Backoff: time.Minute})
	_, err := c.Fetch(ctx, srv.URL)
	if err == nil {
		t.Fatal("expected error from canceled context")
	}
}

func TestNewClientWithOptions_Defaults(t *testing.T) {
	c := NewClientWithOptions(ClientOptions{})
	if c.opts.UserAgent != DefaultUserAgent {
		t.Error("empty UserAgent should fall back to default")
	}
	if c.opts.Retries != DefaultClientOptions().Retries {
		t.Error("zero Retries should fall back to default")
	}
}

func TestNewRendererWithOptions_Defaults(t *testing.T) {
	r := NewRendererWithOptions(RenderOptions{})
	if r.opts.ScrollPasses != DefaultRenderOptions().ScrollPasses {
		t.Error("zero ScrollPasses should fall back to default")
	}
	if r.opts.Timeout != DefaultRenderOptions().Timeout {
		t.Error("zero Timeout should fall back to default")
	}
}
