// Package services – KnowledgeBaseService (feedback and search)
//
// This file implements feedback aggregation and query-side search. A
// feedback submission writes the log entry and bumps exactly one of the
// article's helpful counters in the same transaction, so the counters stay
// consistent incremental aggregates of the log. Search delegates to the
// configured search.Engine.

package services

import (
	"context"
	"errors"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/jeffersongoncalves/go-knowledge-base/internal/domain"
	"github.com/jeffersongoncalves/go-knowledge-base/internal/events"
	"github.com/jeffersongoncalves/go-knowledge-base/internal/repo"
	"github.com/jeffersongoncalves/go-knowledge-base/internal/search"
)

// FeedbackInput carries a single helpful/not-helpful rating. User is nil
// for anonymous feedback; Comment and IPAddress are optional.
type FeedbackInput struct {
	IsHelpful bool
	User      *domain.ActorRef
	Comment   *string
	IPAddress *string
}

// AddFeedback records a rating for an article and increments the matching
// counter atomically with the insert. Returns ErrFeedbackDisabled when the
// feature flag is off. Emits events.ArticleFeedbackReceived after commit,
// carrying the article with refreshed counters.
func (s *KnowledgeBaseService) AddFeedback(ctx context.Context, articleID uint, in FeedbackInput) (*domain.ArticleFeedback, error) {
	tr := otel.Tracer("services/KnowledgeBaseService")
	ctx, span := tr.Start(ctx, "AddFeedback",
		trace.WithAttributes(
			attribute.Int("article.id", int(articleID)),
			attribute.Bool("feedback.helpful", in.IsHelpful),
		),
	)
	defer span.End()

	if !s.KB.FeedbackEnabled {
		return nil, ErrFeedbackDisabled
	}

	if _, err := repo.GetArticle(ctx, s.DB, articleID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}

	fb := &domain.ArticleFeedback{
		ArticleID: articleID,
		IsHelpful: in.IsHelpful,
		Comment:   in.Comment,
		IPAddress: in.IPAddress,
	}
	if in.User != nil {
		fb.UserType = &in.User.Type
		fb.UserID = &in.User.ID
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := repo.CreateFeedback(ctx, tx, fb); err != nil {
			return err
		}
		return repo.IncrementFeedbackCounter(ctx, tx, articleID, in.IsHelpful)
	})
	if err != nil {
		return nil, err
	}

	a, err := repo.GetArticle(ctx, s.DB, articleID)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, events.ArticleFeedbackReceived{Article: a, Feedback: fb})
	return fb, nil
}

// ListFeedback returns all feedback entries for an article, newest first.
// Feedback survives article soft-deletion, so the lookup uses the
// include-deleted mode.
func (s *KnowledgeBaseService) ListFeedback(ctx context.Context, articleID uint) ([]domain.ArticleFeedback, error) {
	if _, err := repo.GetArticleIncludeDeleted(ctx, s.DB, articleID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}
	return repo.ListFeedback(ctx, s.DB, articleID)
}

// Search returns published articles matching the query through the
// configured engine. The query is trimmed; a blank query yields an empty
// result set.
func (s *KnowledgeBaseService) Search(ctx context.Context, query string, opts search.Options) ([]domain.Article, error) {
	tr := otel.Tracer("services/KnowledgeBaseService")
	ctx, span := tr.Start(ctx, "Search",
		trace.WithAttributes(attribute.String("search.query", query)),
	)
	defer span.End()

	if s.Engine == nil {
		return nil, search.ErrUnknownEngine
	}
	return s.Engine.Search(ctx, s.DB, strings.TrimSpace(query), opts)
}
