// Package app holds the application services and business logic.
package app

import (
	"context"
	"encoding/json"
	"log"

	"wellnesshub/internal/domain"
)

// loadSnapshot reads and unmarshals the snapshot at key into dst. A missing
// snapshot, a storage failure or malformed JSON all report false; the error
// is logged and never propagated, so callers fall back to defaults.
func loadSnapshot(ctx context.Context, store domain.SnapshotStore, key string, dst any) bool {
	raw, err := store.Load(ctx, key)
	if err != nil {
		log.Printf("snapshot load %s: %v", key, err)
		return false
	}
	if len(raw) == 0 {
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		log.Printf("snapshot %s is corrupt, treating as absent: %v", key, err)
		return false
	}
	return true
}

// saveSnapshot marshals v and writes it under key. Failures are logged and
// swallowed; the in-memory mutation that triggered the save stands.
func saveSnapshot(ctx context.Context, store domain.SnapshotStore, key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		log.Printf("snapshot marshal %s: %v", key, err)
		return
	}
	if err := store.Save(ctx, key, raw); err != nil {
		log.Printf("snapshot save %s: %v", key, err)
	}
}
