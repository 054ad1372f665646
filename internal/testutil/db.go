package testutil

import (
	"context"
	"sync"
	"testing"

	"gorm.io/gorm"

	"github.com/Skotchmaster/shopping_cart/internal/db"
)

// OpenDB returns a migrated in-memory SQLite database that lives until the
// test ends.
func OpenDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := db.Open(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("failed to open in-memory db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close(gdb) })
	return gdb
}

type Event struct {
	Topic string
	Key   string
	Body  map[string]any
}

// RecordingPublisher keeps every published event in memory.
type RecordingPublisher struct {
	mu     sync.Mutex
	events []Event
	Err    error
}

func (p *RecordingPublisher) PublishEvent(_ context.Context, topic, key string, event any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	body, _ := event.(map[string]any)
	p.events = append(p.events, Event{Topic: topic, Key: key, Body: body})
	return p.Err
}

func (p *RecordingPublisher) Events() []Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]Event, len(p.events))
	copy(out, p.events)
	return out
}

func (p *RecordingPublisher) Last() (Event, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.events) == 0 {
		return Event{}, false
	}
	return p.events[len(p.events)-1], true
}
