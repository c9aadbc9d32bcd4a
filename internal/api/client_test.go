package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-logr/logr"

	"github.com/promptlab-io/labhub/internal/logging"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, "", 5*time.Second, logging.New(logr.Discard())), srv
}

func TestListSessions(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/sessions" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"s1","name":"demo","status":"active"}]`))
	}))

	sessions, err := client.ListSessions(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sessions) != 1 || sessions[0].ID != "s1" {
		t.Fatalf("unexpected sessions %+v", sessions)
	}
}

func TestGetSession_NotFound(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"session not found"}`))
	}))

	_, err := client.GetSession(context.Background(), "missing")
	if err == nil {
		t.Fatalf("expected error")
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %T: %v", err, err)
	}
	if apiErr.StatusCode != http.StatusNotFound || apiErr.Message != "session not found" {
		t.Fatalf("unexpected APIError %+v", apiErr)
	}
}

func TestBearerTokenAttached(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "secret-token", 5*time.Second, logging.New(logr.Discard()))
	if _, err := client.ListSessions(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAuth != "Bearer secret-token" {
		t.Fatalf("expected bearer header, got %q", gotAuth)
	}
}

func TestCreatePromptVersion(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("unexpected method %s", r.Method)
		}
		if r.Header.Get("Content-Type") != "application/json" {
			t.Fatalf("missing content type")
		}
		_, _ = w.Write([]byte(`{"id":"v2","lab_id":"lab1","version":2,"content":"updated"}`))
	}))

	pv, err := client.CreatePromptVersion(context.Background(), "lab1", "updated")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pv.Version != 2 || pv.Content != "updated" {
		t.Fatalf("unexpected version %+v", pv)
	}
}

func TestGetProgress_TopLevelArray(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"iteration":1,"score":0.4},{"iteration":2,"score":0.7},{"iteration":3,"score":0.6}]`))
	}))

	points, err := client.GetProgress(context.Background(), "lab1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(points) != 3 {
		t.Fatalf("expected 3 points, got %d", len(points))
	}
	if points[2].BestScore != 0.7 {
		t.Fatalf("expected running best 0.7, got %v", points[2].BestScore)
	}
}

func TestGetProgress_NestedHistory(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"history":[{"step":1,"value":0.5,"best":0.5}]}`))
	}))

	points, err := client.GetProgress(context.Background(), "lab1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(points) != 1 || points[0].Iteration != 1 || points[0].Score != 0.5 {
		t.Fatalf("unexpected points %+v", points)
	}
}

func TestGetProgress_BadShape(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"unexpected":true}`))
	}))

	if _, err := client.GetProgress(context.Background(), "lab1"); err == nil {
		t.Fatalf("expected error for unrecognized payload")
	}
}
