package repo

import (
	"context"
	"errors"
	"testing"

	"github.com/jeffersongoncalves/go-knowledge-base/internal/domain"
)

func TestArticle_CreateAndLookups(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	cat := seedCategory(t, db, "Guides", "guides")
	a := seedArticle(t, db, cat.ID, "Getting Started", "getting-started")

	byID, err := GetArticle(ctx, db, a.ID)
	if err != nil {
		t.Fatalf("GetArticle: %v", err)
	}
	if byID.Title != "Getting Started" {
		t.Fatalf("unexpected title %q", byID.Title)
	}

	bySlug, err := GetArticleBySlug(ctx, db, "getting-started")
	if err != nil || bySlug.ID != a.ID {
		t.Fatalf("GetArticleBySlug: %v (%+v)", err, bySlug)
	}

	byUUID, err := GetArticleByUUID(ctx, db, a.UUID)
	if err != nil || byUUID.ID != a.ID {
		t.Fatalf("GetArticleByUUID: %v", err)
	}
}

func TestArticle_DuplicateSlugFails(t *testing.T) {
	db := newTestDB(t)
	cat := seedCategory(t, db, "Guides", "guides")
	seedArticle(t, db, cat.ID, "One", "same-slug")

	dup := &domain.Article{
		UUID:       "11111111-2222-3333-4444-555555555555",
		CategoryID: cat.ID,
		Title:      "Two",
		Slug:       "same-slug",
		Content:    "x",
		AuthorType: "user", AuthorID: "1",
		Status: domain.StatusDraft, Visibility: domain.VisibilityPublic,
		CurrentVersion: 1,
	}
	if err := CreateArticle(context.Background(), db, dup); err == nil {
		t.Fatal("expected unique violation for duplicate slug")
	}
}

func TestArticle_SoftDeleteAndIncludeDeleted(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	cat := seedCategory(t, db, "Guides", "guides")
	a := seedArticle(t, db, cat.ID, "Doomed", "doomed")

	if err := SoftDeleteArticle(ctx, db, a.ID); err != nil {
		t.Fatalf("SoftDeleteArticle: %v", err)
	}

	if _, err := GetArticle(ctx, db, a.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("deleted article should be absent from default queries, got %v", err)
	}

	got, err := GetArticleIncludeDeleted(ctx, db, a.ID)
	if err != nil {
		t.Fatalf("GetArticleIncludeDeleted: %v", err)
	}
	if !got.DeletedAt.Valid {
		t.Fatal("include-deleted fetch should carry the deletion marker")
	}

	// Deleting again affects no rows.
	if err := SoftDeleteArticle(ctx, db, a.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second delete should report not found, got %v", err)
	}
}

func TestArticle_AtomicCounters(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	cat := seedCategory(t, db, "Guides", "guides")
	a := seedArticle(t, db, cat.ID, "Counted", "counted")

	for i := 0; i < 3; i++ {
		if err := IncrementViewCount(ctx, db, a.ID); err != nil {
			t.Fatalf("IncrementViewCount: %v", err)
		}
	}
	if err := IncrementFeedbackCounter(ctx, db, a.ID, true); err != nil {
		t.Fatalf("IncrementFeedbackCounter(helpful): %v", err)
	}
	if err := IncrementFeedbackCounter(ctx, db, a.ID, false); err != nil {
		t.Fatalf("IncrementFeedbackCounter(not helpful): %v", err)
	}
	if err := IncrementFeedbackCounter(ctx, db, a.ID, false); err != nil {
		t.Fatalf("IncrementFeedbackCounter(not helpful): %v", err)
	}

	got, err := GetArticle(ctx, db, a.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.ViewCount != 3 || got.HelpfulCount != 1 || got.NotHelpfulCount != 2 {
		t.Fatalf("counters = %d/%d/%d, want 3/1/2", got.ViewCount, got.HelpfulCount, got.NotHelpfulCount)
	}

	if err := IncrementViewCount(ctx, db, 9999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("increment on missing article should report not found, got %v", err)
	}
}

func TestSearchArticles_FiltersAndOrdering(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	guides := seedCategory(t, db, "Guides", "guides")
	faq := seedCategory(t, db, "FAQ", "faq")

	mk := func(cat uint, title, slug string, status domain.ArticleStatus, vis domain.ArticleVisibility, views int64) {
		a := seedArticle(t, db, cat, title, slug)
		cols := map[string]any{"status": status, "visibility": vis, "view_count": views}
		if err := UpdateArticleColumns(ctx, db, a.ID, cols); err != nil {
			t.Fatalf("update %s: %v", slug, err)
		}
	}

	mk(guides.ID, "Install guide", "install", domain.StatusPublished, domain.VisibilityPublic, 10)
	mk(guides.ID, "Upgrade guide", "upgrade", domain.StatusPublished, domain.VisibilityPublic, 50)
	mk(guides.ID, "Draft guide", "draft-guide", domain.StatusDraft, domain.VisibilityPublic, 999)
	mk(faq.ID, "Billing guide", "billing", domain.StatusPublished, domain.VisibilityInternal, 5)

	// Published only, ordered by views descending.
	got, err := SearchArticles(ctx, db, "guide", nil, nil, 20)
	if err != nil {
		t.Fatalf("SearchArticles: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d results, want 3 (draft excluded)", len(got))
	}
	if got[0].Slug != "upgrade" || got[1].Slug != "install" {
		t.Fatalf("ordering by view_count broken: %s, %s", got[0].Slug, got[1].Slug)
	}

	// Case-insensitive substring over title OR content.
	got, err = SearchArticles(ctx, db, "UPGRADE", nil, nil, 20)
	if err != nil || len(got) != 1 || got[0].Slug != "upgrade" {
		t.Fatalf("case-insensitive match failed: %v (%d)", err, len(got))
	}

	// Category filter.
	got, err = SearchArticles(ctx, db, "guide", &faq.ID, nil, 20)
	if err != nil || len(got) != 1 || got[0].Slug != "billing" {
		t.Fatalf("category filter failed: %v (%d)", err, len(got))
	}

	// Visibility filter.
	vis := domain.VisibilityInternal
	got, err = SearchArticles(ctx, db, "guide", nil, &vis, 20)
	if err != nil || len(got) != 1 || got[0].Slug != "billing" {
		t.Fatalf("visibility filter failed: %v (%d)", err, len(got))
	}

	// Limit.
	got, err = SearchArticles(ctx, db, "guide", nil, nil, 2)
	if err != nil || len(got) != 2 {
		t.Fatalf("limit failed: %v (%d)", err, len(got))
	}
}

func TestListArticles_ByStatusAndCategory(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	cat := seedCategory(t, db, "Guides", "guides")
	a := seedArticle(t, db, cat.ID, "A", "a")
	seedArticle(t, db, cat.ID, "B", "b")

	if err := UpdateArticleColumns(ctx, db, a.ID, map[string]any{"status": domain.StatusPublished}); err != nil {
		t.Fatalf("publish: %v", err)
	}

	published, err := ListArticlesByStatus(ctx, db, domain.StatusPublished)
	if err != nil || len(published) != 1 {
		t.Fatalf("ListArticlesByStatus: %v (%d)", err, len(published))
	}

	inCat, err := ListArticlesByCategory(ctx, db, cat.ID)
	if err != nil || len(inCat) != 2 {
		t.Fatalf("ListArticlesByCategory: %v (%d)", err, len(inCat))
	}
}
