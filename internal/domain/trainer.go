package domain

import "time"

// Trainer is a workout entry curated by campus trainers.
type Trainer struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Specialty   string    `json:"specialty,omitempty"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	YouTubeLink string    `json:"youtubeLink,omitempty"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
}

// DefaultTrainers returns the seed workouts used when no snapshot exists.
func DefaultTrainers() []Trainer {
	return []Trainer{
		{
			ID:          "1",
			Name:        "Sadhguru Wellness Team",
			Specialty:   "Yoga & Breath Reset",
			ImageURL:    "https://images.unsplash.com/photo-1506126613408-eca07ce68773?auto=format&fit=crop&w=800&q=80",
			YouTubeLink: "https://www.youtube.com/watch?v=EwQkfoKxRvo",
		},
		{
			ID:          "2",
			Name:        "Caroline Jordan",
			Specialty:   "Stress Relief Workouts",
			ImageURL:    "https://images.unsplash.com/photo-1521572267360-ee0c2909d518?auto=format&fit=crop&w=800&q=80",
			YouTubeLink: "https://www.youtube.com/watch?v=ah4PAK18Rtg",
		},
	}
}
