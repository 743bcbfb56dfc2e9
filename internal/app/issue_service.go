package app

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"wellnesshub/internal/domain"
	"wellnesshub/internal/remote"
)

const issuesNamespace = "wellnessLocalIssues"

// ErrIssueFields indicates a report missing its title or details.
var ErrIssueFields = errors.New("please provide both title and details")

// IssueService owns the locally mirrored issue list and syncs it with the
// backend opportunistically. The local copy stays authoritative whenever the
// backend is unreachable.
type IssueService struct {
	mu     sync.Mutex
	store  domain.SnapshotStore
	remote *remote.Client // nil when no backend is configured
	items  []domain.Issue
}

// NewIssueService loads the locally cached issues. The list starts empty
// when no snapshot exists.
func NewIssueService(ctx context.Context, store domain.SnapshotStore, rc *remote.Client) *IssueService {
	s := &IssueService{store: store, remote: rc}
	if !loadSnapshot(ctx, store, issuesNamespace, &s.items) {
		s.items = []domain.Issue{}
	}
	return s
}

// List returns the cached issues, most recent first.
func (s *IssueService) List() []domain.Issue {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Issue, len(s.items))
	copy(out, s.items)
	return out
}

// Report validates and submits an issue. When the backend accepts it the
// persisted server record is mirrored locally; otherwise the report is
// stored with status pending-sync and the caller can surface a non-blocking
// notice.
func (s *IssueService) Report(ctx context.Context, title, details, username string) (domain.Issue, error) {
	if title == "" || details == "" {
		return domain.Issue{}, ErrIssueFields
	}

	if s.remote != nil {
		iss, err := s.remote.CreateIssue(ctx, title, details)
		if err == nil {
			if iss.Username == "" {
				iss.Username = username
			}
			return s.Add(ctx, *iss), nil
		}
		log.Printf("issue submission failed, storing locally: %v", err)
	}

	return s.Add(ctx, domain.Issue{
		Title:    title,
		Details:  details,
		Status:   domain.IssuePendingSync,
		Username: username,
	}), nil
}

// Add inserts an issue at the front, filling in defaults for any missing
// fields.
func (s *IssueService) Add(ctx context.Context, iss domain.Issue) domain.Issue {
	s.mu.Lock()
	defer s.mu.Unlock()

	if iss.ID == "" {
		iss.ID = uuid.NewString()
	}
	if iss.Title == "" {
		iss.Title = "Untitled issue"
	}
	if iss.Details == "" {
		iss.Details = "No details provided"
	}
	if iss.Status == "" {
		iss.Status = domain.IssueSubmitted
	}
	if iss.CreatedAt.IsZero() {
		iss.CreatedAt = time.Now().UTC()
	}
	if iss.Username == "" {
		iss.Username = "anonymous"
	}
	s.items = append([]domain.Issue{iss}, s.items...)
	saveSnapshot(ctx, s.store, issuesNamespace, s.items)
	return iss
}

// Remove deletes the issue with the given id. An unknown id is a no-op.
func (s *IssueService) Remove(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			saveSnapshot(ctx, s.store, issuesNamespace, s.items)
			return true
		}
	}
	return false
}

// ReplaceAll overwrites the cached list with a fetched server state.
func (s *IssueService) ReplaceAll(ctx context.Context, items []domain.Issue) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if items == nil {
		items = []domain.Issue{}
	}
	s.items = items
	saveSnapshot(ctx, s.store, issuesNamespace, s.items)
}

// Refresh fetches the server's issue list and makes it the local truth. On
// any backend failure the cached list is returned together with the error;
// nothing is lost.
func (s *IssueService) Refresh(ctx context.Context) ([]domain.Issue, error) {
	if s.remote == nil {
		return s.List(), remote.ErrUnavailable
	}
	items, err := s.remote.ListIssues(ctx)
	if err != nil {
		return s.List(), err
	}
	s.ReplaceAll(ctx, items)
	return s.List(), nil
}
