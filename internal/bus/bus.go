// Package bus implements the in-process notification registry used to fan
// out save events between otherwise independent features.
package bus

import "sync"

// Topics published by the wellness feature.
const (
	TopicBMIUpdated     = "wellness:bmi-updated"
	TopicJournalUpdated = "wellness:journal-updated"
)

// Notification carries the user key and the just-saved payload.
type Notification struct {
	UserKey string `json:"userKey"`
	Data    any    `json:"data"`
}

// Handler receives a notification synchronously during Publish.
type Handler func(Notification)

// Bus is a synchronous observer registry. Delivery is at-most-once to the
// handlers registered at publish time; handlers registered afterwards do not
// see earlier notifications.
type Bus struct {
	mu   sync.Mutex
	subs map[string][]Handler
}

// New creates an empty Bus.
func New() *Bus {
	return &Bus{subs: make(map[string][]Handler)}
}

// Subscribe registers a handler for a topic.
func (b *Bus) Subscribe(topic string, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subs[topic] = append(b.subs[topic], h)
}

// Publish invokes every handler currently registered for the topic before
// returning. There is no buffering and no delivery acknowledgment.
func (b *Bus) Publish(topic string, n Notification) {
	b.mu.Lock()
	handlers := make([]Handler, len(b.subs[topic]))
	copy(handlers, b.subs[topic])
	b.mu.Unlock()

	for _, h := range handlers {
		h(n)
	}
}
