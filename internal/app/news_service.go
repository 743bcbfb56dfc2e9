package app

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"wellnesshub/internal/domain"
)

const newsNamespace = "whub:news-articles"

// NewsService owns the campus news collection. The ordered in-memory list is
// authoritative; every mutation is persisted as a whole snapshot.
type NewsService struct {
	mu       sync.Mutex
	store    domain.SnapshotStore
	articles []domain.NewsArticle
}

// NewNewsService loads the persisted articles, seeding the defaults when no
// snapshot exists.
func NewNewsService(ctx context.Context, store domain.SnapshotStore) *NewsService {
	s := &NewsService{store: store}
	if !loadSnapshot(ctx, store, newsNamespace, &s.articles) {
		s.articles = domain.DefaultNewsArticles()
	}
	return s
}

// List returns the articles, most recent first.
func (s *NewsService) List() []domain.NewsArticle {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.NewsArticle, len(s.articles))
	copy(out, s.articles)
	return out
}

// Add inserts an article at the front, assigning an id and creation
// timestamp when absent.
func (s *NewsService) Add(ctx context.Context, a domain.NewsArticle) domain.NewsArticle {
	s.mu.Lock()
	defer s.mu.Unlock()

	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	s.articles = append([]domain.NewsArticle{a}, s.articles...)
	saveSnapshot(ctx, s.store, newsNamespace, s.articles)
	return a
}

// Update replaces the article with a matching id. An unknown id is a no-op.
func (s *NewsService) Update(ctx context.Context, a domain.NewsArticle) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.articles {
		if s.articles[i].ID == a.ID {
			s.articles[i] = a
			saveSnapshot(ctx, s.store, newsNamespace, s.articles)
			return true
		}
	}
	return false
}

// Remove deletes the article with the given id. An unknown id is a no-op.
func (s *NewsService) Remove(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.articles {
		if s.articles[i].ID == id {
			s.articles = append(s.articles[:i], s.articles[i+1:]...)
			saveSnapshot(ctx, s.store, newsNamespace, s.articles)
			return true
		}
	}
	return false
}

// ReplaceAll overwrites the collection, used when a remote source of truth
// has been fetched.
func (s *NewsService) ReplaceAll(ctx context.Context, items []domain.NewsArticle) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if items == nil {
		items = []domain.NewsArticle{}
	}
	s.articles = items
	saveSnapshot(ctx, s.store, newsNamespace, s.articles)
}
