package domain

import "time"

// Pending request status values. A request is created pending and leaves the
// list on approval or rejection; neither transition can be undone.
const RequestPending = "pending"

// EventDetails carries the submitter-provided fields shared by published
// events and pending requests.
type EventDetails struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Location    string `json:"location,omitempty"`
	Date        string `json:"date,omitempty"`
	Time        string `json:"time,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

// Event is a published community event.
type Event struct {
	EventDetails
	ID         string    `json:"id"`
	CreatedBy  string    `json:"createdBy"`
	ApprovedAt time.Time `json:"approvedAt"`
}

// PendingRequest is a student-submitted event awaiting admin review.
type PendingRequest struct {
	EventDetails
	ID          string    `json:"id"`
	SubmittedBy string    `json:"submittedBy"`
	SubmittedAt time.Time `json:"submittedAt"`
	Status      string    `json:"status"`
}

// Message is a single append-only discussion post.
type Message struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Discussion is a topic with its ordered message list. Messages are only
// ever appended.
type Discussion struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Tag         string    `json:"tag,omitempty"`
	Description string    `json:"description,omitempty"`
	Messages    []Message `json:"messages"`
}

// CommunityState is the combined snapshot persisted for the community
// feature: published events, the pending queue and the discussion boards.
type CommunityState struct {
	Events          []Event                `json:"events"`
	PendingRequests []PendingRequest       `json:"pendingRequests"`
	Discussions     map[string]*Discussion `json:"discussions"`
}

// DefaultCommunityState returns the seeded events and discussion topics used
// when no snapshot exists.
func DefaultCommunityState(now time.Time) CommunityState {
	return CommunityState{
		Events: []Event{
			{
				ID: "seed-rajmachi-trek",
				EventDetails: EventDetails{
					Title:       "Rajmachi Midnight Trek",
					Description: "Sunrise hike with student fitness club guides, complete with campfire journaling.",
					Location:    "Rajmachi Fort, Lonavla, Maharashtra",
					Date:        "2025-12-06",
					Time:        "21:30",
					ImageURL:    "https://images.unsplash.com/photo-1470246973918-29a93221c455?auto=format&fit=crop&w=1200&q=80",
				},
				CreatedBy:  "Campus Admin",
				ApprovedAt: now,
			},
			{
				ID: "seed-lakeside-marathon",
				EventDetails: EventDetails{
					Title:       "Hyderabad Lakeside Marathon",
					Description: "10K run around Hussain Sagar with hydration pods every 2 km.",
					Location:    "People's Plaza, Hyderabad, Telangana",
					Date:        "2026-01-12",
					Time:        "06:00",
					ImageURL:    "https://images.unsplash.com/photo-1508609349937-5ec4ae374ebf?auto=format&fit=crop&w=1200&q=80",
				},
				CreatedBy:  "Campus Admin",
				ApprovedAt: now,
			},
		},
		PendingRequests: []PendingRequest{},
		Discussions: map[string]*Discussion{
			"mentalWellness": {
				ID:          "mentalWellness",
				Title:       "Mindful Breathers Circle",
				Tag:         "Mental Health",
				Description: "Talk journaling cues, mindful breaks, and SOS resources when the semester spikes.",
				Messages: []Message{
					{
						ID:        "seed-breath-ladders",
						Author:    "Counsellor Diya",
						Content:   "Stack your day with 5-minute breath ladders before every lecture block. It changes the tone.",
						Timestamp: now,
					},
				},
			},
			"enduranceCrew": {
				ID:          "enduranceCrew",
				Title:       "Endurance Crew",
				Tag:         "Physical Health",
				Description: "Marathon prep, trek hydration plans, and accountability check-ins.",
				Messages: []Message{
					{
						ID:        "seed-lsd-runs",
						Author:    "Coach Imran",
						Content:   "Alternate long LSD runs with strength days. Knees will thank you in Bengaluru elevation.",
						Timestamp: now,
					},
				},
			},
			"nutritionNook": {
				ID:          "nutritionNook",
				Title:       "Nutrition Nook",
				Tag:         "Food & Recovery",
				Description: "Share dorm-friendly recipes and campus mess hacks that actually taste good.",
				Messages: []Message{
					{
						ID:        "seed-millets",
						Author:    "Ananya",
						Content:   "Switching to millets before night labs kept me awake without jittery coffee crashes.",
						Timestamp: now,
					},
				},
			},
		},
	}
}
