package app_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"wellnesshub/internal/adapter/memory"
	"wellnesshub/internal/app"
	"wellnesshub/internal/domain"
	"wellnesshub/internal/remote"
)

func TestIssueService_ReportRequiresBothFields(t *testing.T) {
	ctx := context.Background()
	svc := app.NewIssueService(ctx, memory.New(), nil)

	if _, err := svc.Report(ctx, "", "details", "sam"); !errors.Is(err, app.ErrIssueFields) {
		t.Errorf("missing title: err = %v", err)
	}
	if _, err := svc.Report(ctx, "title", "", "sam"); !errors.Is(err, app.ErrIssueFields) {
		t.Errorf("missing details: err = %v", err)
	}
	if len(svc.List()) != 0 {
		t.Error("rejected reports must not be stored")
	}
}

func TestIssueService_ReportWithoutBackendStoresPendingSync(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	svc := app.NewIssueService(ctx, store, nil)

	iss, err := svc.Report(ctx, "Broken treadmill", "Belt slips at the gym", "sam")
	if err != nil {
		t.Fatalf("Report: %v", err)
	}
	if iss.Status != domain.IssuePendingSync {
		t.Errorf("Status = %q, want %q", iss.Status, domain.IssuePendingSync)
	}
	if iss.ID == "" || iss.CreatedAt.IsZero() {
		t.Errorf("defaults not filled: %+v", iss)
	}

	// The report survives a reload of the cache.
	again := app.NewIssueService(ctx, store, nil)
	if got := again.List(); len(got) != 1 || got[0].ID != iss.ID {
		t.Errorf("pending-sync report lost: %+v", got)
	}
}

func TestIssueService_ReportUnreachableBackendStoresPendingSync(t *testing.T) {
	ctx := context.Background()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	svc := app.NewIssueService(ctx, memory.New(), remote.New(srv.URL, nil))
	iss, err := svc.Report(ctx, "Leaky faucet", "Dorm B second floor", "sam")
	if err != nil {
		t.Fatalf("Report must not fail when the backend is down: %v", err)
	}
	if iss.Status != domain.IssuePendingSync {
		t.Errorf("Status = %q, want %q", iss.Status, domain.IssuePendingSync)
	}
}

func TestIssueService_ReportMirrorsServerRecord(t *testing.T) {
	ctx := context.Background()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/issues" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"issue":{"id":"srv-42","title":"Leaky faucet","details":"Dorm B","status":"submitted","username":"sam"}}`))
	}))
	defer srv.Close()

	svc := app.NewIssueService(ctx, memory.New(), remote.New(srv.URL, nil))
	iss, err := svc.Report(ctx, "Leaky faucet", "Dorm B", "sam")
	if err != nil {
		t.Fatalf("Report: %v", err)
	}
	if iss.ID != "srv-42" {
		t.Errorf("ID = %q, want the server-assigned id", iss.ID)
	}
	if iss.Status != domain.IssueSubmitted {
		t.Errorf("Status = %q, want %q", iss.Status, domain.IssueSubmitted)
	}
}

func TestIssueService_RefreshWithoutBackendKeepsCache(t *testing.T) {
	ctx := context.Background()
	svc := app.NewIssueService(ctx, memory.New(), nil)
	svc.Add(ctx, domain.Issue{Title: "cached"})

	got, err := svc.Refresh(ctx)
	if !errors.Is(err, remote.ErrUnavailable) {
		t.Errorf("err = %v, want ErrUnavailable", err)
	}
	if len(got) != 1 || got[0].Title != "cached" {
		t.Errorf("cache must be returned untouched, got %+v", got)
	}
}

func TestIssueService_RefreshReplacesCache(t *testing.T) {
	ctx := context.Background()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"issues":[{"id":"a","title":"Server copy","status":"submitted"}]}`))
	}))
	defer srv.Close()

	svc := app.NewIssueService(ctx, memory.New(), remote.New(srv.URL, nil))
	svc.Add(ctx, domain.Issue{Title: "stale local"})

	got, err := svc.Refresh(ctx)
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if len(got) != 1 || got[0].ID != "a" {
		t.Errorf("server list should replace the cache, got %+v", got)
	}
}

func TestIssueService_AddFillsDefaults(t *testing.T) {
	ctx := context.Background()
	svc := app.NewIssueService(ctx, memory.New(), nil)

	iss := svc.Add(ctx, domain.Issue{})
	if iss.Title != "Untitled issue" || iss.Details != "No details provided" {
		t.Errorf("placeholders missing: %+v", iss)
	}
	if iss.Status != domain.IssueSubmitted || iss.Username != "anonymous" {
		t.Errorf("defaults missing: %+v", iss)
	}
}
