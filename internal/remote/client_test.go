package remote_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"wellnesshub/internal/remote"
)

func TestClient_LoginDecodesResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/login" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"token":"abc","user":{"id":"9","username":"kim"}}`))
	}))
	defer srv.Close()

	c := remote.New(srv.URL, nil)
	res, err := c.Login(context.Background(), "kim", "pw")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if res.Token != "abc" || res.User.ID != "9" {
		t.Errorf("res = %+v", res)
	}
}

func TestClient_AttachesBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"issues":[]}`))
	}))
	defer srv.Close()

	c := remote.New(srv.URL, func() string { return "tok-123" })
	if _, err := c.ListIssues(context.Background()); err != nil {
		t.Fatalf("ListIssues: %v", err)
	}
	if gotAuth != "Bearer tok-123" {
		t.Errorf("Authorization = %q, want Bearer tok-123", gotAuth)
	}
}

func TestClient_NoTokenNoHeader(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"issues":[]}`))
	}))
	defer srv.Close()

	c := remote.New(srv.URL, func() string { return "" })
	if _, err := c.ListIssues(context.Background()); err != nil {
		t.Fatalf("ListIssues: %v", err)
	}
	if gotAuth != "" {
		t.Errorf("Authorization = %q, want none when signed out", gotAuth)
	}
}

func TestClient_FailuresAreUnavailable(t *testing.T) {
	bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusServiceUnavailable)
	}))
	defer bad.Close()

	garbled := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer garbled.Close()

	tests := []struct {
		name string
		base string
	}{
		{"non-2xx status", bad.URL},
		{"malformed body", garbled.URL},
		{"unreachable host", "http://127.0.0.1:1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := remote.New(tt.base, nil)
			_, err := c.ListIssues(context.Background())
			if !errors.Is(err, remote.ErrUnavailable) {
				t.Errorf("err = %v, want ErrUnavailable", err)
			}
		})
	}
}

func TestClient_CreateIssueReturnsServerRecord(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/issues" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"issue":{"id":"i-1","title":"Wifi down","status":"submitted"}}`))
	}))
	defer srv.Close()

	c := remote.New(srv.URL, nil)
	iss, err := c.CreateIssue(context.Background(), "Wifi down", "Library floor 2")
	if err != nil {
		t.Fatalf("CreateIssue: %v", err)
	}
	if iss.ID != "i-1" || iss.Title != "Wifi down" {
		t.Errorf("issue = %+v", iss)
	}
}
