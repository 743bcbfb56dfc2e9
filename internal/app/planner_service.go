package app

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"

	"wellnesshub/internal/domain"
)

const plannerNamespace = "focus_planner_state_v1"

// ErrEmptyTaskTitle indicates an attempt to add a task without a title.
var ErrEmptyTaskTitle = errors.New("task title is required")

// PlannerService owns the focus-planner state: tasks with their logged
// Pomodoro minutes plus a running total.
type PlannerService struct {
	mu    sync.Mutex
	store domain.SnapshotStore
	state domain.PlannerState
}

// NewPlannerService loads the persisted planner state; it starts empty when
// no snapshot exists.
func NewPlannerService(ctx context.Context, store domain.SnapshotStore) *PlannerService {
	s := &PlannerService{store: store}
	if !loadSnapshot(ctx, store, plannerNamespace, &s.state) {
		s.state = domain.PlannerState{Tasks: []domain.PlannerTask{}}
	}
	return s
}

// State returns a copy of the planner state.
func (s *PlannerService) State() domain.PlannerState {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := s.state
	out.Tasks = make([]domain.PlannerTask, len(s.state.Tasks))
	copy(out.Tasks, s.state.Tasks)
	return out
}

// AddTask creates a task at the front of the list.
func (s *PlannerService) AddTask(ctx context.Context, title string) (domain.PlannerTask, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return domain.PlannerTask{}, ErrEmptyTaskTitle
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	task := domain.PlannerTask{ID: uuid.NewString(), Title: title}
	s.state.Tasks = append([]domain.PlannerTask{task}, s.state.Tasks...)
	s.persist(ctx)
	return task, nil
}

// ToggleTask flips a task's completion flag. An unknown id is a no-op.
func (s *PlannerService) ToggleTask(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Tasks {
		if s.state.Tasks[i].ID == id {
			s.state.Tasks[i].Completed = !s.state.Tasks[i].Completed
			s.persist(ctx)
			return true
		}
	}
	return false
}

// LogFocus credits a finished focus session to a task and to the running
// total. Non-positive minutes and unknown ids are no-ops.
func (s *PlannerService) LogFocus(ctx context.Context, id string, minutes int) bool {
	if minutes <= 0 {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Tasks {
		if s.state.Tasks[i].ID == id {
			s.state.Tasks[i].FocusMinutes += minutes
			s.state.TotalFocusMinutes += minutes
			s.persist(ctx)
			return true
		}
	}
	return false
}

// RemoveTask deletes a task. Logged minutes stay in the running total. An
// unknown id is a no-op.
func (s *PlannerService) RemoveTask(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Tasks {
		if s.state.Tasks[i].ID == id {
			s.state.Tasks = append(s.state.Tasks[:i], s.state.Tasks[i+1:]...)
			s.persist(ctx)
			return true
		}
	}
	return false
}

func (s *PlannerService) persist(ctx context.Context) {
	saveSnapshot(ctx, s.store, plannerNamespace, s.state)
}
