package adminapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestReadRetriesTransientFailures(t *testing.T) {
	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) < 3 {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	c := New(srv.URL, 2*time.Second)
	var out struct {
		OK bool `json:"ok"`
	}
	if err := c.getJSON(context.Background(), "/x", "", &out); err != nil {
		t.Fatalf("expected retry to recover, got %v", err)
	}
	if !out.OK {
		t.Fatalf("expected decoded body")
	}
	if got := hits.Load(); got != 3 {
		t.Fatalf("expected 3 attempts, got %d", got)
	}
}

func TestReadNeverRetries404(t *testing.T) {
	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		http.Error(w, "no cart", http.StatusNotFound)
	}))
	defer srv.Close()

	c := New(srv.URL, 2*time.Second)
	err := c.getJSON(context.Background(), "/x", "", &struct{}{})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if got := hits.Load(); got != 1 {
		t.Fatalf("404 must not be retried, got %d attempts", got)
	}
}

func TestAPIErrorCarriesStatusAndBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"email already registered"}`, http.StatusConflict)
	}))
	defer srv.Close()

	c := New(srv.URL, 2*time.Second)
	err := c.do(context.Background(), http.MethodPost, "/x", "", map[string]string{"a": "b"}, nil)

	apiErr, ok := AsAPIError(err)
	if !ok {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Status != http.StatusConflict {
		t.Fatalf("expected 409, got %d", apiErr.Status)
	}
	if apiErr.Body == "" {
		t.Fatalf("expected body to be captured")
	}
	if !IsStatus(err, http.StatusConflict) {
		t.Fatalf("IsStatus should match 409")
	}
	if errors.Is(err, ErrNotFound) {
		t.Fatalf("409 must not unwrap to ErrNotFound")
	}
}

func TestNetworkErrorIsNotAPIError(t *testing.T) {
	// unroutable port
	c := New("http://127.0.0.1:1", 200*time.Millisecond)
	err := c.do(context.Background(), http.MethodGet, "/x", "", nil, nil)
	if err == nil {
		t.Fatalf("expected transport error")
	}
	if _, ok := AsAPIError(err); ok {
		t.Fatalf("transport failure must not be an APIError")
	}
}

func TestAuthorizationHeader(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := New(srv.URL, 2*time.Second)
	if err := c.do(context.Background(), http.MethodGet, "/x", "token-123", nil, &struct{}{}); err != nil {
		t.Fatalf("do: %v", err)
	}
	if gotAuth != "Bearer token-123" {
		t.Fatalf("expected bearer header, got %q", gotAuth)
	}
}
