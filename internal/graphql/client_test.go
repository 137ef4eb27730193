package graphql

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestDoSendsTokenAndDecodesData(t *testing.T) {
	var gotToken string
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/graphql" || r.Method != http.MethodPost {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		gotToken = r.Header.Get("x-access-token")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"job":{"_id":"j1","jobNumber":42,"stage":"LEAD"}}}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	job, err := c.Job(context.Background(), "tok-123", "j1")
	if err != nil {
		t.Fatalf("Job: %v", err)
	}
	if gotToken != "tok-123" {
		t.Fatalf("expected token header, got %q", gotToken)
	}
	if gotBody["query"] == "" || gotBody["variables"] == nil {
		t.Fatalf("request body missing query/variables: %#v", gotBody)
	}
	if job.ID != "j1" || job.JobNumber != 42 {
		t.Fatalf("unexpected job: %#v", job)
	}
}

func TestDoSurfacesFirstGraphQLError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"errors":[{"message":"job not found"},{"message":"second"}]}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.Job(context.Background(), "tok", "missing")
	if err == nil || err.Error() != "job not found" {
		t.Fatalf("expected first error message, got %v", err)
	}
}

func TestDoReturnsErrUnauthorizedOn401(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := New(srv.URL)
	err := c.Do(context.Background(), "stale", JobsQuery, nil, nil)
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestLoginReturnsTokenAndProfile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if tok := r.Header.Get("x-access-token"); tok != "" {
			t.Errorf("login must not send a token, got %q", tok)
		}
		_, _ = w.Write([]byte(`{"data":{"login":{"token":"t1","me":{"_id":"u1","name":"Sam","email":"sam@insulmax.co.nz","role":"SALES"}}}}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	token, me, err := c.Login(context.Background(), "sam@insulmax.co.nz", "pw")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if token != "t1" || me.ID != "u1" || me.Role != "SALES" {
		t.Fatalf("unexpected login payload: %q %#v", token, me)
	}
}
