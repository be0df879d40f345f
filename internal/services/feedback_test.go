package services

import (
	"context"
	"errors"
	"testing"

	"github.com/jeffersongoncalves/go-knowledge-base/internal/domain"
	"github.com/jeffersongoncalves/go-knowledge-base/internal/events"
	"github.com/jeffersongoncalves/go-knowledge-base/internal/search"
)

func TestAddFeedback_CountersAndEvent(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()
	cat := mustCategory(t, s, "Guides")
	a := mustArticle(t, s, cat.ID, "Rated")

	var received []*domain.Article
	s.Bus.Subscribe(func(_ context.Context, e events.Event) {
		if fb, ok := e.(events.ArticleFeedbackReceived); ok {
			received = append(received, fb.Article)
		}
	})

	const helpful, notHelpful = 3, 2
	for i := 0; i < helpful; i++ {
		if _, err := s.AddFeedback(ctx, a.ID, FeedbackInput{IsHelpful: true, User: &testAuthor}); err != nil {
			t.Fatalf("AddFeedback helpful: %v", err)
		}
	}
	for i := 0; i < notHelpful; i++ {
		if _, err := s.AddFeedback(ctx, a.ID, FeedbackInput{IsHelpful: false}); err != nil {
			t.Fatalf("AddFeedback not helpful: %v", err)
		}
	}

	got, err := s.GetArticle(ctx, a.ID)
	if err != nil {
		t.Fatalf("GetArticle: %v", err)
	}
	if got.HelpfulCount != helpful || got.NotHelpfulCount != notHelpful {
		t.Fatalf("counters = %d/%d, want %d/%d", got.HelpfulCount, got.NotHelpfulCount, helpful, notHelpful)
	}

	entries, err := s.ListFeedback(ctx, a.ID)
	if err != nil || len(entries) != helpful+notHelpful {
		t.Fatalf("ListFeedback: %v (%d)", err, len(entries))
	}

	if len(received) != helpful+notHelpful {
		t.Fatalf("expected one event per entry, got %d", len(received))
	}
	// The event article carries post-increment counters.
	last := received[len(received)-1]
	if last.HelpfulCount != helpful || last.NotHelpfulCount != notHelpful {
		t.Fatalf("event article counters stale: %d/%d", last.HelpfulCount, last.NotHelpfulCount)
	}
}

func TestAddFeedback_AnonymousAndAttributed(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()
	cat := mustCategory(t, s, "Guides")
	a := mustArticle(t, s, cat.ID, "Rated")

	anon, err := s.AddFeedback(ctx, a.ID, FeedbackInput{IsHelpful: true})
	if err != nil {
		t.Fatalf("anonymous: %v", err)
	}
	if anon.User() != nil {
		t.Fatalf("anonymous entry should have no user: %+v", anon)
	}

	comment := "very clear"
	named, err := s.AddFeedback(ctx, a.ID, FeedbackInput{IsHelpful: false, User: &testAuthor, Comment: &comment})
	if err != nil {
		t.Fatalf("attributed: %v", err)
	}
	u := named.User()
	if u == nil || u.Type != testAuthor.Type || u.ID != testAuthor.ID {
		t.Fatalf("user reference lost: %+v", named)
	}
	if named.Comment == nil || *named.Comment != comment {
		t.Fatalf("comment lost: %+v", named)
	}
}

func TestAddFeedback_DisabledAndMissingArticle(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()
	cat := mustCategory(t, s, "Guides")
	a := mustArticle(t, s, cat.ID, "Rated")

	if _, err := s.AddFeedback(ctx, 9999, FeedbackInput{IsHelpful: true}); !errors.Is(err, ErrArticleNotFound) {
		t.Fatalf("missing article: got %v", err)
	}

	s.KB.FeedbackEnabled = false
	if _, err := s.AddFeedback(ctx, a.ID, FeedbackInput{IsHelpful: true}); !errors.Is(err, ErrFeedbackDisabled) {
		t.Fatalf("disabled flag: got %v", err)
	}
}

func TestSearch_ThroughService(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()
	cat := mustCategory(t, s, "Guides")
	other := mustCategory(t, s, "Billing")

	a := mustArticle(t, s, cat.ID, "Payment troubleshooting")
	b := mustArticle(t, s, other.ID, "Payment methods")
	draft := mustArticle(t, s, cat.ID, "Payment drafts")
	_ = draft

	for _, id := range []uint{a.ID, b.ID} {
		if _, err := s.PublishArticle(ctx, id); err != nil {
			t.Fatalf("publish: %v", err)
		}
	}
	// Make b the most viewed.
	for i := 0; i < 5; i++ {
		if err := s.RecordView(ctx, b.ID); err != nil {
			t.Fatalf("view: %v", err)
		}
	}

	got, err := s.Search(ctx, "payment", search.Options{})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(got) != 2 || got[0].ID != b.ID {
		t.Fatalf("search results wrong: %+v", got)
	}

	scoped, err := s.Search(ctx, "payment", search.Options{CategoryID: &other.ID})
	if err != nil || len(scoped) != 1 || scoped[0].ID != b.ID {
		t.Fatalf("category filter wrong: %v (%d)", err, len(scoped))
	}

	empty, err := s.Search(ctx, "   ", search.Options{})
	if err != nil || len(empty) != 0 {
		t.Fatalf("blank query: %v (%d)", err, len(empty))
	}

	s.Engine = nil
	if _, err := s.Search(ctx, "payment", search.Options{}); !errors.Is(err, search.ErrUnknownEngine) {
		t.Fatalf("nil engine: got %v", err)
	}
}
