// Package events delivers lifecycle notifications emitted by the knowledge
// base service. Delivery is fire-and-forget: events are published after the
// surrounding database transaction commits, subscribers receive them
// synchronously, and subscriber failures are isolated from the caller (no
// acknowledgement, no retry).
package events

import (
	"context"
	"sync"

	"github.com/jeffersongoncalves/go-knowledge-base/internal/domain"
)

// Event is implemented by every notification payload.
type Event interface {
	// Name is a stable dotted identifier, e.g. "article.published".
	Name() string
}

// ArticleCreated is emitted after an article (and, when versioning is on,
// its initial version row) has been committed.
type ArticleCreated struct {
	Article *domain.Article
}

// Name implements Event.
func (ArticleCreated) Name() string { return "article.created" }

// ArticlePublished is emitted after every publish call, including
// republishing an already-published article.
type ArticlePublished struct {
	Article *domain.Article
}

// Name implements Event.
func (ArticlePublished) Name() string { return "article.published" }

// ArticleFeedbackReceived is emitted after a feedback entry and its counter
// increment have been committed. It carries both references so observers
// can correlate without extra queries.
type ArticleFeedbackReceived struct {
	Article  *domain.Article
	Feedback *domain.ArticleFeedback
}

// Name implements Event.
func (ArticleFeedbackReceived) Name() string { return "article.feedback_received" }

// Handler consumes a published event. Handlers must not assume they run
// before the HTTP response is written; they run on the publishing goroutine
// but their outcome is ignored.
type Handler func(ctx context.Context, e Event)

// Bus is a minimal in-process fan-out publisher. Safe for concurrent use.
type Bus struct {
	mu       sync.RWMutex
	handlers []Handler
}

// NewBus returns an empty bus.
func NewBus() *Bus { return &Bus{} }

// Subscribe registers a handler for all subsequent events. There is no
// unsubscribe; buses are wired once at startup.
func (b *Bus) Subscribe(h Handler) {
	if h == nil {
		return
	}
	b.mu.Lock()
	b.handlers = append(b.handlers, h)
	b.mu.Unlock()
}

// Publish fans the event out to all subscribers. A panicking subscriber is
// recovered and skipped so one observer cannot break another or the caller.
func (b *Bus) Publish(ctx context.Context, e Event) {
	b.mu.RLock()
	handlers := b.handlers
	b.mu.RUnlock()

	for _, h := range handlers {
		func() {
			defer func() { _ = recover() }()
			h(ctx, e)
		}()
	}
}
