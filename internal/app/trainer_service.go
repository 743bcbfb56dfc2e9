package app

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"wellnesshub/internal/domain"
)

const trainersNamespace = "wellness:trainerWorkouts"

// TrainerService owns the trainer workout collection.
type TrainerService struct {
	mu    sync.Mutex
	store domain.SnapshotStore
	items []domain.Trainer
}

// NewTrainerService loads the persisted workouts, seeding the defaults when
// no snapshot exists.
func NewTrainerService(ctx context.Context, store domain.SnapshotStore) *TrainerService {
	s := &TrainerService{store: store}
	if !loadSnapshot(ctx, store, trainersNamespace, &s.items) {
		s.items = domain.DefaultTrainers()
	}
	return s
}

// List returns the workouts, most recent first.
func (s *TrainerService) List() []domain.Trainer {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Trainer, len(s.items))
	copy(out, s.items)
	return out
}

// Add inserts a workout at the front, assigning an id and creation
// timestamp when absent.
func (s *TrainerService) Add(ctx context.Context, t domain.Trainer) domain.Trainer {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}
	s.items = append([]domain.Trainer{t}, s.items...)
	saveSnapshot(ctx, s.store, trainersNamespace, s.items)
	return t
}

// Update replaces the workout with a matching id. An unknown id is a no-op.
func (s *TrainerService) Update(ctx context.Context, t domain.Trainer) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == t.ID {
			s.items[i] = t
			saveSnapshot(ctx, s.store, trainersNamespace, s.items)
			return true
		}
	}
	return false
}

// Remove deletes the workout with the given id. An unknown id is a no-op.
func (s *TrainerService) Remove(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			saveSnapshot(ctx, s.store, trainersNamespace, s.items)
			return true
		}
	}
	return false
}

// ReplaceAll overwrites the collection.
func (s *TrainerService) ReplaceAll(ctx context.Context, items []domain.Trainer) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if items == nil {
		items = []domain.Trainer{}
	}
	s.items = items
	saveSnapshot(ctx, s.store, trainersNamespace, s.items)
}
