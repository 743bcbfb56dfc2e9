package app

import (
	"context"
	"time"

	"wellnesshub/internal/bus"
	"wellnesshub/internal/domain"
)

// Per-user wellness namespaces.
const (
	bmiNamespace     = "wellness:lastBmi"
	journalNamespace = "wellness:lastJournalEntry"
)

// BMISnapshot is the explicitly saved calculator outcome, scoped per user.
type BMISnapshot struct {
	Value     float64          `json:"value"`
	Status    domain.BMIStatus `json:"status"`
	UpdatedAt time.Time        `json:"updatedAt"`
}

// JournalSnapshot is the latest journal entry, scoped per user.
type JournalSnapshot struct {
	Text      string    `json:"text"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// WellnessService encapsulates the BMI calculator and journaling use cases.
// Calculation is pure; persistence happens only on an explicit save, which
// also notifies interested features through the bus.
type WellnessService struct {
	store domain.SnapshotStore
	bus   *bus.Bus
}

// NewWellnessService creates a WellnessService backed by the given store
// and notification bus.
func NewWellnessService(store domain.SnapshotStore, b *bus.Bus) *WellnessService {
	return &WellnessService{store: store, bus: b}
}

// Calculate derives a metrics result without persisting anything.
func (s *WellnessService) Calculate(in domain.MetricsInput) (*domain.MetricsResult, error) {
	return domain.ComputeBMI(in)
}

// SaveBMI persists the chosen result for userKey and publishes a
// bmi-updated notification.
func (s *WellnessService) SaveBMI(ctx context.Context, userKey string, value float64, status domain.BMIStatus) BMISnapshot {
	snap := BMISnapshot{Value: value, Status: status, UpdatedAt: time.Now().UTC()}
	saveSnapshot(ctx, s.store, domain.SnapshotKey(bmiNamespace, userKey), snap)
	s.bus.Publish(bus.TopicBMIUpdated, bus.Notification{UserKey: userKey, Data: snap})
	return snap
}

// LoadBMI returns the saved result for userKey, or nil when none exists.
func (s *WellnessService) LoadBMI(ctx context.Context, userKey string) *BMISnapshot {
	var snap BMISnapshot
	if !loadSnapshot(ctx, s.store, domain.SnapshotKey(bmiNamespace, userKey), &snap) {
		return nil
	}
	return &snap
}

// SaveJournal persists the latest journal text for userKey and publishes a
// journal-updated notification.
func (s *WellnessService) SaveJournal(ctx context.Context, userKey, text string) JournalSnapshot {
	snap := JournalSnapshot{Text: text, UpdatedAt: time.Now().UTC()}
	saveSnapshot(ctx, s.store, domain.SnapshotKey(journalNamespace, userKey), snap)
	s.bus.Publish(bus.TopicJournalUpdated, bus.Notification{UserKey: userKey, Data: snap})
	return snap
}

// LoadJournal returns the saved journal entry for userKey, or nil when none
// exists.
func (s *WellnessService) LoadJournal(ctx context.Context, userKey string) *JournalSnapshot {
	var snap JournalSnapshot
	if !loadSnapshot(ctx, s.store, domain.SnapshotKey(journalNamespace, userKey), &snap) {
		return nil
	}
	return &snap
}
