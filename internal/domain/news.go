package domain

import "time"

// NewsArticle is an item on the campus news board.
type NewsArticle struct {
	ID          string    `json:"id"`
	Category    string    `json:"category,omitempty"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	ReadTime    string    `json:"readTime,omitempty"`
	Views       int       `json:"views,omitempty"`
	Date        string    `json:"date,omitempty"`
	Image       string    `json:"image,omitempty"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
}

// DefaultNewsArticles returns the seed articles used when no snapshot exists.
func DefaultNewsArticles() []NewsArticle {
	return []NewsArticle{
		{
			ID:          "1",
			Category:    "Technology",
			Title:       "The Future of AI Technology in 2025",
			Description: "Exploring the latest advancements in artificial intelligence and machine learning that are shaping our future.",
			ReadTime:    "5 min read",
			Views:       12450,
			Date:        "Nov 28, 2025",
			Image:       "https://images.unsplash.com/photo-1519681393784-d120267933ba?auto=format&fit=crop&w=1640&q=80",
		},
		{
			ID:          "2",
			Category:    "Health",
			Title:       "Complete Guide to Wellness and Mental Health",
			Description: "Discover essential tips for maintaining your mental and physical wellness in the middle of a busy semester.",
			ReadTime:    "7 min read",
			Views:       9870,
			Date:        "Nov 27, 2025",
			Image:       "https://images.unsplash.com/photo-1466978913421-dad2ebd01d17?auto=format&fit=crop&w=1640&q=80",
		},
		{
			ID:          "3",
			Category:    "Business",
			Title:       "Modern Business Strategies for Success",
			Description: "Learn the key strategies that successful businesses are implementing in today's fast-paced markets.",
			ReadTime:    "4 min read",
			Views:       8920,
			Date:        "Nov 26, 2025",
			Image:       "https://images.unsplash.com/photo-1529333166437-7750a6dd5a70?auto=format&fit=crop&w=1640&q=80",
		},
	}
}
