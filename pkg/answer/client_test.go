package answer

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func testConfig(baseURL string) Config {
	return Config{
		BaseURL:        baseURL,
		RequestTimeout: 2 * time.Second,
		RetryAttempts:  3,
		RetryBaseDelay: time.Millisecond,
	}
}

func TestAskNormalizesOmittedCollections(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/query" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"answer":"42","chat_name":"Numbers"}`))
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL))
	res, err := client.Ask(context.Background(), &Request{Query: "what", OrgQuery: "what", ChatId: "abc"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Answer != "42" {
		t.Errorf("answer = %q, want %q", res.Answer, "42")
	}
	if res.PdfReferences == nil || res.OnlineImages == nil || res.OnlineVideos == nil ||
		res.OnlineLinks == nil || res.RelatedQueries == nil || res.SimilarImages == nil {
		t.Error("omitted collections should be empty slices, not nil")
	}
}

func TestAskRetriesTransportFailures(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(&calls, 1)
		if n < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(`{"answer":"ok","chat_name":"n"}`))
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL))
	res, err := client.Ask(context.Background(), &Request{Query: "q", OrgQuery: "q", ChatId: "x"})
	if err != nil {
		t.Fatalf("expected success after retries, got %v", err)
	}
	if res.Answer != "ok" {
		t.Errorf("answer = %q, want %q", res.Answer, "ok")
	}
	if got := atomic.LoadInt32(&calls); got != 3 {
		t.Errorf("calls = %d, want 3", got)
	}
}

func TestAskGivesUpAfterAttempts(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL))
	_, err := client.Ask(context.Background(), &Request{Query: "q", OrgQuery: "q", ChatId: "x"})
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
	if got := atomic.LoadInt32(&calls); got != 3 {
		t.Errorf("calls = %d, want 3", got)
	}
}

func TestAskDoesNotRetryRejection(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"error":"query too long"}`))
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL))
	_, err := client.Ask(context.Background(), &Request{Query: "q", OrgQuery: "q", ChatId: "x"})
	if !errors.Is(err, ErrRejected) {
		t.Fatalf("expected ErrRejected, got %v", err)
	}
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Errorf("calls = %d, want 1 (no retry on rejection)", got)
	}
}

func TestAskMalformedBodyIsRetryable(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := atomic.AddInt32(&calls, 1)
		if n == 1 {
			w.Write([]byte(`{"answer": `))
			return
		}
		w.Write([]byte(`{"answer":"fine","chat_name":"n"}`))
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL))
	res, err := client.Ask(context.Background(), &Request{Query: "q", OrgQuery: "q", ChatId: "x"})
	if err != nil {
		t.Fatalf("expected recovery on second attempt, got %v", err)
	}
	if res.Answer != "fine" {
		t.Errorf("answer = %q, want %q", res.Answer, "fine")
	}
}

func TestSummarize(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/memory" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"summary":"talked about widgets"}`))
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL))
	res, err := client.Summarize(context.Background(), &MemoryRequest{ChatId: "x", Query: "q", Answer: "a"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Summary != "talked about widgets" {
		t.Errorf("summary = %q", res.Summary)
	}
	if res.KeyPoints == nil {
		t.Error("key points should be an empty slice, not nil")
	}
}
