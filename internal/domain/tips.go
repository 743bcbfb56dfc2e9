package domain

import "time"

// Tip is a short mental-health suggestion shown on the dashboard.
type Tip struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"createdAt"`
}

// DefaultTips returns the seed tips used when no snapshot exists.
func DefaultTips(now time.Time) []Tip {
	return []Tip{
		{
			ID:        "seed-grayscale",
			Text:      "Switch devices to grayscale after 10pm—your nervous system will wind down faster.",
			Author:    "Campus Admin",
			CreatedAt: now,
		},
		{
			ID:        "seed-breath-ladder",
			Text:      "Stack a 5-minute breath ladder before every study sprint to keep cortisol steady.",
			Author:    "Wellness Desk",
			CreatedAt: now,
		},
	}
}
