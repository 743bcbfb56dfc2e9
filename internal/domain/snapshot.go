package domain

import "context"

// SnapshotStore is the port for keyed JSON snapshot persistence. Values are
// opaque to the store; each caller defines its own shape. A nil value with a
// nil error from Load means the snapshot is absent.
type SnapshotStore interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// SnapshotKey joins a namespace with an optional user key, producing
// "namespace:userKey" when userKey is non-empty and the bare namespace
// otherwise.
func SnapshotKey(namespace, userKey string) string {
	if userKey == "" {
		return namespace
	}
	return namespace + ":" + userKey
}
