package app

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"wellnesshub/internal/domain"
)

const communityNamespace = "community_state_v1"

// CommunityService owns the community feature: published events, the
// pending-request queue and the append-only discussion boards. The whole
// state is persisted as one combined snapshot after every mutation.
//
// A request id is never in both lists: approval moves it, rejection drops
// it, and neither transition can be undone.
type CommunityService struct {
	mu    sync.Mutex
	store domain.SnapshotStore
	state domain.CommunityState
}

// NewCommunityService loads the persisted community state, seeding the
// default events and discussion topics when no snapshot exists.
func NewCommunityService(ctx context.Context, store domain.SnapshotStore) *CommunityService {
	s := &CommunityService{store: store}
	if !loadSnapshot(ctx, store, communityNamespace, &s.state) {
		s.state = domain.DefaultCommunityState(time.Now().UTC())
	}
	if s.state.Discussions == nil {
		s.state.Discussions = make(map[string]*domain.Discussion)
	}
	return s
}

// Events returns the published events, most recent first.
func (s *CommunityService) Events() []domain.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Event, len(s.state.Events))
	copy(out, s.state.Events)
	return out
}

// PendingRequests returns the requests awaiting review, most recent first.
func (s *CommunityService) PendingRequests() []domain.PendingRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.PendingRequest, len(s.state.PendingRequests))
	copy(out, s.state.PendingRequests)
	return out
}

// Discussions returns a copy of every discussion topic.
func (s *CommunityService) Discussions() map[string]domain.Discussion {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]domain.Discussion, len(s.state.Discussions))
	for id, d := range s.state.Discussions {
		copied := *d
		copied.Messages = make([]domain.Message, len(d.Messages))
		copy(copied.Messages, d.Messages)
		out[id] = copied
	}
	return out
}

// Submit queues a student event request for admin review. An empty
// submitter defaults to "Student Host".
func (s *CommunityService) Submit(ctx context.Context, details domain.EventDetails, submittedBy string) domain.PendingRequest {
	s.mu.Lock()
	defer s.mu.Unlock()

	if submittedBy == "" {
		submittedBy = "Student Host"
	}
	req := domain.PendingRequest{
		EventDetails: details,
		ID:           uuid.NewString(),
		SubmittedBy:  submittedBy,
		SubmittedAt:  time.Now().UTC(),
		Status:       domain.RequestPending,
	}
	s.state.PendingRequests = append([]domain.PendingRequest{req}, s.state.PendingRequests...)
	s.persist(ctx)
	return req
}

// Approve promotes a pending request into the published list, crediting the
// original submitter. An unknown id is a no-op, so a repeated approval
// cannot duplicate the event.
func (s *CommunityService) Approve(ctx context.Context, id string) (*domain.Event, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.findPending(id)
	if idx == -1 {
		return nil, false
	}
	req := s.state.PendingRequests[idx]
	s.state.PendingRequests = append(s.state.PendingRequests[:idx], s.state.PendingRequests[idx+1:]...)

	event := domain.Event{
		EventDetails: req.EventDetails,
		ID:           req.ID,
		CreatedBy:    req.SubmittedBy,
		ApprovedAt:   time.Now().UTC(),
	}
	s.state.Events = append([]domain.Event{event}, s.state.Events...)
	s.persist(ctx)
	return &event, true
}

// Reject removes a pending request with no trace kept. An unknown id is a
// no-op.
func (s *CommunityService) Reject(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.findPending(id)
	if idx == -1 {
		return false
	}
	s.state.PendingRequests = append(s.state.PendingRequests[:idx], s.state.PendingRequests[idx+1:]...)
	s.persist(ctx)
	return true
}

// PublishDirect inserts an admin-authored event, skipping the pending
// stage. An empty author defaults to "Campus Admin".
func (s *CommunityService) PublishDirect(ctx context.Context, details domain.EventDetails, createdBy string) domain.Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	if createdBy == "" {
		createdBy = "Campus Admin"
	}
	event := domain.Event{
		EventDetails: details,
		ID:           uuid.NewString(),
		CreatedBy:    createdBy,
		ApprovedAt:   time.Now().UTC(),
	}
	s.state.Events = append([]domain.Event{event}, s.state.Events...)
	s.persist(ctx)
	return event
}

// AddMessage appends a post to a discussion topic. Messages are never
// edited or deleted. An unknown topic is a no-op; an empty author defaults
// to "Anonymous".
func (s *CommunityService) AddMessage(ctx context.Context, topicID, author, content string) (*domain.Message, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	topic, ok := s.state.Discussions[topicID]
	if !ok {
		return nil, false
	}
	if author == "" {
		author = "Anonymous"
	}
	msg := domain.Message{
		ID:        uuid.NewString(),
		Author:    author,
		Content:   content,
		Timestamp: time.Now().UTC(),
	}
	topic.Messages = append(topic.Messages, msg)
	s.persist(ctx)
	return &msg, true
}

func (s *CommunityService) findPending(id string) int {
	for i := range s.state.PendingRequests {
		if s.state.PendingRequests[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *CommunityService) persist(ctx context.Context) {
	saveSnapshot(ctx, s.store, communityNamespace, s.state)
}
