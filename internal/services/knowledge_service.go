// Package services – KnowledgeBaseService (articles)
//
// This file implements the article side of KnowledgeBaseService: creation
// with an initial version snapshot, updates that append to the version
// history, publish/archive transitions, soft deletion, view tracking, and
// the related-article graph.
//
// Transactional guarantees: every multi-row mutation (create + initial
// version, update + snapshot + current_version bump) runs inside a single
// gorm transaction. Lifecycle events are published only after the
// transaction has committed, so subscribers never observe uncommitted
// state.
//
// Observability: the mutating methods are OpenTelemetry-instrumented; spans
// carry article identifiers where applicable.

package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/jeffersongoncalves/go-knowledge-base/internal/config"
	"github.com/jeffersongoncalves/go-knowledge-base/internal/domain"
	"github.com/jeffersongoncalves/go-knowledge-base/internal/events"
	"github.com/jeffersongoncalves/go-knowledge-base/internal/repo"
	"github.com/jeffersongoncalves/go-knowledge-base/internal/search"
	"github.com/jeffersongoncalves/go-knowledge-base/internal/utils"
)

// initialChangeNotes annotates the version row written at article creation.
const initialChangeNotes = "Initial version"

// KnowledgeBaseService orchestrates articles, categories, versions,
// feedback, relations, and search. Behavior flags (versioning, feedback,
// view tracking, default visibility) come from KB; Bus and Engine may be
// nil-free wired at startup (a nil Bus silently drops events, a nil Engine
// makes Search fail).
type KnowledgeBaseService struct {
	DB     *gorm.DB
	KB     config.KnowledgeBaseConfig
	Bus    *events.Bus
	Engine search.Engine
}

// ArticleInput carries the caller-supplied fields for article creation.
// Slug is optional and derived from Title when empty; Visibility falls back
// to the configured default when empty.
type ArticleInput struct {
	CategoryID     uint
	Title          string
	Slug           string
	Content        string
	Excerpt        *string
	Visibility     domain.ArticleVisibility
	SEOTitle       *string
	SEODescription *string
	SEOKeywords    *string
	Metadata       domain.Metadata
}

// ArticleUpdate carries partial updates; nil fields are left unchanged.
type ArticleUpdate struct {
	CategoryID     *uint
	Title          *string
	Slug           *string
	Content        *string
	Excerpt        *string
	Visibility     *domain.ArticleVisibility
	SEOTitle       *string
	SEODescription *string
	SEOKeywords    *string
	Metadata       domain.Metadata
}

// CreateArticle validates input, derives missing defaults, and atomically
// inserts the article together with version 1 when versioning is enabled.
// New articles always start as drafts. Emits events.ArticleCreated after
// commit.
func (s *KnowledgeBaseService) CreateArticle(ctx context.Context, in ArticleInput, author domain.ActorRef) (*domain.Article, error) {
	tr := otel.Tracer("services/KnowledgeBaseService")
	ctx, span := tr.Start(ctx, "CreateArticle",
		trace.WithAttributes(attribute.Int("category.id", int(in.CategoryID))),
	)
	defer span.End()

	title := strings.TrimSpace(in.Title)
	content := strings.TrimSpace(in.Content)
	switch {
	case author.Type == "" || author.ID == "":
		return nil, ErrMissingAuthor
	case in.CategoryID == 0:
		return nil, ErrMissingCategory
	case title == "":
		return nil, ErrMissingTitle
	case content == "":
		return nil, ErrMissingContent
	}

	visibility := in.Visibility
	if visibility == "" {
		visibility = domain.ArticleVisibility(s.KB.DefaultVisibility)
	}
	if !visibility.Valid() {
		return nil, ErrInvalidVisibility
	}

	slug := strings.TrimSpace(in.Slug)
	if slug == "" {
		slug = utils.Slugify(title)
	}
	if slug == "" {
		return nil, ErrMissingTitle
	}

	if _, err := repo.GetCategory(ctx, s.DB, in.CategoryID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUnknownCategory
		}
		return nil, err
	}

	a := &domain.Article{
		UUID:           uuid.NewString(),
		CategoryID:     in.CategoryID,
		Title:          title,
		Slug:           slug,
		Content:        content,
		Excerpt:        in.Excerpt,
		AuthorType:     author.Type,
		AuthorID:       author.ID,
		Status:         domain.StatusDraft,
		Visibility:     visibility,
		SEOTitle:       in.SEOTitle,
		SEODescription: in.SEODescription,
		SEOKeywords:    in.SEOKeywords,
		CurrentVersion: 1,
		Metadata:       in.Metadata,
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := repo.CreateArticle(ctx, tx, a); err != nil {
			return err
		}
		if !s.KB.VersioningEnabled {
			return nil
		}
		notes := initialChangeNotes
		v := &domain.ArticleVersion{
			ArticleID:     a.ID,
			VersionNumber: 1,
			Title:         a.Title,
			Content:       a.Content,
			Excerpt:       a.Excerpt,
			EditorType:    author.Type,
			EditorID:      author.ID,
			ChangeNotes:   &notes,
		}
		return repo.CreateVersion(ctx, tx, v)
	})
	if err != nil {
		if isDuplicate(err) {
			return nil, ErrDuplicateSlug
		}
		return nil, err
	}

	created, err := repo.GetArticle(ctx, s.DB, a.ID)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, events.ArticleCreated{Article: created})
	return created, nil
}

// UpdateArticle applies the non-nil fields of in and, when versioning is
// enabled, appends a snapshot of the post-update content as version
// current+1 and advances current_version, all in one transaction. A
// snapshot is written even when no field changed, so change notes alone can
// be recorded in history.
func (s *KnowledgeBaseService) UpdateArticle(ctx context.Context, id uint, in ArticleUpdate, editor domain.ActorRef, changeNotes *string) (*domain.Article, error) {
	tr := otel.Tracer("services/KnowledgeBaseService")
	ctx, span := tr.Start(ctx, "UpdateArticle",
		trace.WithAttributes(attribute.Int("article.id", int(id))),
	)
	defer span.End()

	if editor.Type == "" || editor.ID == "" {
		return nil, ErrMissingAuthor
	}

	a, err := repo.GetArticle(ctx, s.DB, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}

	cols := map[string]any{}

	if in.Title != nil {
		t := strings.TrimSpace(*in.Title)
		if t == "" {
			return nil, ErrMissingTitle
		}
		cols["title"] = t
		a.Title = t
	}
	if in.Content != nil {
		c := strings.TrimSpace(*in.Content)
		if c == "" {
			return nil, ErrMissingContent
		}
		cols["content"] = c
		a.Content = c
	}
	if in.Slug != nil {
		sl := strings.TrimSpace(*in.Slug)
		if sl == "" {
			return nil, ErrMissingTitle
		}
		cols["slug"] = sl
	}
	if in.Visibility != nil {
		if !in.Visibility.Valid() {
			return nil, ErrInvalidVisibility
		}
		cols["visibility"] = *in.Visibility
	}
	if in.CategoryID != nil {
		if *in.CategoryID == 0 {
			return nil, ErrMissingCategory
		}
		if _, err := repo.GetCategory(ctx, s.DB, *in.CategoryID); err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return nil, ErrUnknownCategory
			}
			return nil, err
		}
		cols["category_id"] = *in.CategoryID
	}
	if in.Excerpt != nil {
		cols["excerpt"] = *in.Excerpt
		a.Excerpt = in.Excerpt
	}
	if in.SEOTitle != nil {
		cols["seo_title"] = *in.SEOTitle
	}
	if in.SEODescription != nil {
		cols["seo_description"] = *in.SEODescription
	}
	if in.SEOKeywords != nil {
		cols["seo_keywords"] = *in.SEOKeywords
	}
	if in.Metadata != nil {
		cols["metadata"] = in.Metadata
	}

	newVersion := a.CurrentVersion
	if s.KB.VersioningEnabled {
		newVersion = a.CurrentVersion + 1
		cols["current_version"] = newVersion
	}

	if len(cols) == 0 {
		// Versioning disabled and nothing to change.
		return a, nil
	}

	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := repo.UpdateArticleColumns(ctx, tx, id, cols); err != nil {
			return err
		}
		if !s.KB.VersioningEnabled {
			return nil
		}
		v := &domain.ArticleVersion{
			ArticleID:     id,
			VersionNumber: newVersion,
			Title:         a.Title,
			Content:       a.Content,
			Excerpt:       a.Excerpt,
			EditorType:    editor.Type,
			EditorID:      editor.ID,
			ChangeNotes:   changeNotes,
		}
		return repo.CreateVersion(ctx, tx, v)
	})
	if err != nil {
		if isDuplicate(err) {
			return nil, ErrDuplicateSlug
		}
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}

	return repo.GetArticle(ctx, s.DB, id)
}

// PublishArticle transitions an article to published and stamps
// published_at with the current time. Republishing an already-published
// article refreshes the timestamp. Emits events.ArticlePublished on every
// call.
func (s *KnowledgeBaseService) PublishArticle(ctx context.Context, id uint) (*domain.Article, error) {
	tr := otel.Tracer("services/KnowledgeBaseService")
	ctx, span := tr.Start(ctx, "PublishArticle",
		trace.WithAttributes(attribute.Int("article.id", int(id))),
	)
	defer span.End()

	now := time.Now().UTC()
	err := repo.UpdateArticleColumns(ctx, s.DB, id, map[string]any{
		"status":       domain.StatusPublished,
		"published_at": now,
	})
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}

	a, err := repo.GetArticle(ctx, s.DB, id)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, events.ArticlePublished{Article: a})
	return a, nil
}

// ArchiveArticle transitions an article to archived. PublishedAt is kept as
// a record of the last publication.
func (s *KnowledgeBaseService) ArchiveArticle(ctx context.Context, id uint) (*domain.Article, error) {
	err := repo.UpdateArticleColumns(ctx, s.DB, id, map[string]any{
		"status": domain.StatusArchived,
	})
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}
	return repo.GetArticle(ctx, s.DB, id)
}

// DeleteArticle soft-deletes an article. Version history and feedback rows
// are retained for audit.
func (s *KnowledgeBaseService) DeleteArticle(ctx context.Context, id uint) error {
	if err := repo.SoftDeleteArticle(ctx, s.DB, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrArticleNotFound
		}
		return err
	}
	return nil
}

// GetArticle returns a live article by ID.
func (s *KnowledgeBaseService) GetArticle(ctx context.Context, id uint) (*domain.Article, error) {
	a, err := repo.GetArticle(ctx, s.DB, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}
	return a, nil
}

// GetArticleBySlug returns a live article by slug and, when view tracking
// is enabled, counts the lookup as a view. The returned copy reflects the
// pre-increment counter; counters are never read back in the same call.
func (s *KnowledgeBaseService) GetArticleBySlug(ctx context.Context, slug string) (*domain.Article, error) {
	a, err := repo.GetArticleBySlug(ctx, s.DB, slug)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}
	if s.KB.TrackViews {
		if err := repo.IncrementViewCount(ctx, s.DB, a.ID); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// GetArticleByUUID returns a live article by its external identifier.
func (s *KnowledgeBaseService) GetArticleByUUID(ctx context.Context, id string) (*domain.Article, error) {
	a, err := repo.GetArticleByUUID(ctx, s.DB, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}
	return a, nil
}

// RecordView counts one view of the article. A no-op returning nil when
// view tracking is disabled.
func (s *KnowledgeBaseService) RecordView(ctx context.Context, id uint) error {
	if !s.KB.TrackViews {
		return nil
	}
	if err := repo.IncrementViewCount(ctx, s.DB, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrArticleNotFound
		}
		return err
	}
	return nil
}

// ListArticlesByStatus returns live articles with the given status.
func (s *KnowledgeBaseService) ListArticlesByStatus(ctx context.Context, status domain.ArticleStatus) ([]domain.Article, error) {
	if !status.Valid() {
		return nil, ErrValidation
	}
	return repo.ListArticlesByStatus(ctx, s.DB, status)
}

// ListArticlesByCategory returns live articles in the given category.
func (s *KnowledgeBaseService) ListArticlesByCategory(ctx context.Context, categoryID uint) ([]domain.Article, error) {
	if _, err := repo.GetCategory(ctx, s.DB, categoryID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return repo.ListArticlesByCategory(ctx, s.DB, categoryID)
}

// ListVersions returns the full version history of an article, oldest
// first. History survives article soft-deletion, so the article lookup uses
// the include-deleted mode.
func (s *KnowledgeBaseService) ListVersions(ctx context.Context, articleID uint) ([]domain.ArticleVersion, error) {
	if _, err := repo.GetArticleIncludeDeleted(ctx, s.DB, articleID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}
	return repo.ListVersions(ctx, s.DB, articleID)
}

// GetVersion returns a single version snapshot by number.
func (s *KnowledgeBaseService) GetVersion(ctx context.Context, articleID uint, number int) (*domain.ArticleVersion, error) {
	v, err := repo.GetVersion(ctx, s.DB, articleID, number)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}
	return v, nil
}

// RelateArticles creates a directional related-article edge. Both endpoints
// must be live articles and self-edges are rejected. The reverse edge is
// never created implicitly.
func (s *KnowledgeBaseService) RelateArticles(ctx context.Context, articleID, relatedID uint, sortOrder int) (*domain.ArticleRelation, error) {
	if articleID == relatedID {
		return nil, ErrSelfRelation
	}
	for _, id := range []uint{articleID, relatedID} {
		if _, err := repo.GetArticle(ctx, s.DB, id); err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return nil, ErrArticleNotFound
			}
			return nil, err
		}
	}

	rel := &domain.ArticleRelation{
		ArticleID:        articleID,
		RelatedArticleID: relatedID,
		SortOrder:        sortOrder,
	}
	if err := repo.CreateRelation(ctx, s.DB, rel); err != nil {
		if isDuplicate(err) {
			return nil, ErrDuplicateRelation
		}
		return nil, err
	}
	return rel, nil
}

// UnrelateArticles removes a directional edge.
func (s *KnowledgeBaseService) UnrelateArticles(ctx context.Context, articleID, relatedID uint) error {
	if err := repo.DeleteRelation(ctx, s.DB, articleID, relatedID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrArticleNotFound
		}
		return err
	}
	return nil
}

// RelatedArticles returns the live articles linked from the given article,
// ordered by the edge sort order.
func (s *KnowledgeBaseService) RelatedArticles(ctx context.Context, articleID uint) ([]domain.Article, error) {
	if _, err := repo.GetArticle(ctx, s.DB, articleID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}
	return repo.ListRelatedArticles(ctx, s.DB, articleID)
}

// publish delivers an event when a bus is wired.
func (s *KnowledgeBaseService) publish(ctx context.Context, e events.Event) {
	if s.Bus != nil {
		s.Bus.Publish(ctx, e)
	}
}

// isDuplicate reports whether err looks like a unique-constraint violation.
// Driver-agnostic string check; sqlite and postgres phrase these
// differently.
func isDuplicate(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "constraint failed")
}
