package domain

import "time"

// Issue sync status values. "submitted" means the backend accepted the
// report; "pending-sync" means it was stored locally because the backend
// was unavailable.
const (
	IssueSubmitted   = "submitted"
	IssuePendingSync = "pending-sync"
)

// Issue is a user-reported problem, mirrored locally and optionally synced
// with the backend.
type Issue struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Details   string    `json:"details"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	Username  string    `json:"username"`
}
