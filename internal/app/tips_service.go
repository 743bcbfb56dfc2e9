package app

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"wellnesshub/internal/domain"
)

const tipsNamespace = "mental_tips_state_v1"

// tipsSnapshot matches the persisted shape, which wraps the list.
type tipsSnapshot struct {
	Tips []domain.Tip `json:"tips"`
}

// TipsService owns the mental-health tip collection.
type TipsService struct {
	mu    sync.Mutex
	store domain.SnapshotStore
	tips  []domain.Tip
}

// NewTipsService loads the persisted tips, seeding the defaults when the
// snapshot is absent or empty.
func NewTipsService(ctx context.Context, store domain.SnapshotStore) *TipsService {
	s := &TipsService{store: store}
	var snap tipsSnapshot
	if loadSnapshot(ctx, store, tipsNamespace, &snap) && len(snap.Tips) > 0 {
		s.tips = snap.Tips
	} else {
		s.tips = domain.DefaultTips(time.Now().UTC())
	}
	return s
}

// List returns the tips, most recent first.
func (s *TipsService) List() []domain.Tip {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Tip, len(s.tips))
	copy(out, s.tips)
	return out
}

// Add creates a tip at the front of the list. An empty author defaults to
// "Campus Admin".
func (s *TipsService) Add(ctx context.Context, text, author string) domain.Tip {
	s.mu.Lock()
	defer s.mu.Unlock()

	if author == "" {
		author = "Campus Admin"
	}
	tip := domain.Tip{
		ID:        uuid.NewString(),
		Text:      text,
		Author:    author,
		CreatedAt: time.Now().UTC(),
	}
	s.tips = append([]domain.Tip{tip}, s.tips...)
	saveSnapshot(ctx, s.store, tipsNamespace, tipsSnapshot{Tips: s.tips})
	return tip
}

// Update replaces the tip with a matching id. An unknown id is a no-op.
func (s *TipsService) Update(ctx context.Context, tip domain.Tip) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tips {
		if s.tips[i].ID == tip.ID {
			s.tips[i] = tip
			saveSnapshot(ctx, s.store, tipsNamespace, tipsSnapshot{Tips: s.tips})
			return true
		}
	}
	return false
}

// Remove deletes the tip with the given id. An unknown id is a no-op.
func (s *TipsService) Remove(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tips {
		if s.tips[i].ID == id {
			s.tips = append(s.tips[:i], s.tips[i+1:]...)
			saveSnapshot(ctx, s.store, tipsNamespace, tipsSnapshot{Tips: s.tips})
			return true
		}
	}
	return false
}

// ReplaceAll overwrites the collection.
func (s *TipsService) ReplaceAll(ctx context.Context, tips []domain.Tip) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if tips == nil {
		tips = []domain.Tip{}
	}
	s.tips = tips
	saveSnapshot(ctx, s.store, tipsNamespace, tipsSnapshot{Tips: s.tips})
}
