package services

import (
	"context"
	"errors"
	"testing"

	"github.com/jeffersongoncalves/go-knowledge-base/internal/domain"
	"github.com/jeffersongoncalves/go-knowledge-base/internal/repo"
)

func TestCreateCategory_DefaultsAndValidation(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	c, err := s.CreateCategory(ctx, CategoryInput{Name: "Frequently Asked Questions"})
	if err != nil {
		t.Fatalf("CreateCategory: %v", err)
	}
	if c.Slug != "frequently-asked-questions" {
		t.Fatalf("slug not derived: %q", c.Slug)
	}
	if c.Visibility != "public" || !c.IsActive {
		t.Fatalf("defaults not applied: %+v", c)
	}

	if _, err := s.CreateCategory(ctx, CategoryInput{Name: "  "}); !errors.Is(err, ErrMissingName) {
		t.Fatalf("blank name: got %v", err)
	}
	if _, err := s.CreateCategory(ctx, CategoryInput{Name: "X", Visibility: "secret"}); !errors.Is(err, ErrInvalidVisibility) {
		t.Fatalf("bad visibility: got %v", err)
	}
	bad := uint(9999)
	if _, err := s.CreateCategory(ctx, CategoryInput{Name: "Y", ParentID: &bad}); !errors.Is(err, ErrUnknownCategory) {
		t.Fatalf("unknown parent: got %v", err)
	}
	if _, err := s.CreateCategory(ctx, CategoryInput{Name: "Other", Slug: c.Slug}); !errors.Is(err, ErrDuplicateSlug) {
		t.Fatalf("duplicate slug: got %v", err)
	}
}

func TestUpdateCategory(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()
	c := mustCategory(t, s, "Guides")

	name := "Handbooks"
	order := 7
	inactive := false
	got, err := s.UpdateCategory(ctx, c.ID, CategoryUpdate{Name: &name, SortOrder: &order, IsActive: &inactive})
	if err != nil {
		t.Fatalf("UpdateCategory: %v", err)
	}
	if got.Name != name || got.SortOrder != order || got.IsActive {
		t.Fatalf("update not applied: %+v", got)
	}

	self := c.ID
	if _, err := s.UpdateCategory(ctx, c.ID, CategoryUpdate{ParentID: &self}); !errors.Is(err, ErrSelfRelation) {
		t.Fatalf("self parent: got %v", err)
	}
	if _, err := s.UpdateCategory(ctx, 9999, CategoryUpdate{Name: &name}); !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("missing category: got %v", err)
	}
}

func TestDeleteCategory_NoCascade(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()
	parent := mustCategory(t, s, "Parent")
	child, err := s.CreateCategory(ctx, CategoryInput{Name: "Child", ParentID: &parent.ID})
	if err != nil {
		t.Fatalf("child: %v", err)
	}
	a := mustArticle(t, s, parent.ID, "Orphaned soon")

	if err := s.DeleteCategory(ctx, parent.ID); err != nil {
		t.Fatalf("DeleteCategory: %v", err)
	}
	if _, err := s.GetCategory(ctx, parent.ID); !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("deleted category visible: %v", err)
	}

	// Children and articles keep their references.
	gotChild, err := s.GetCategory(ctx, child.ID)
	if err != nil || gotChild.ParentID == nil || *gotChild.ParentID != parent.ID {
		t.Fatalf("child lost its parent reference: %v (%+v)", err, gotChild)
	}
	gotArticle, err := s.GetArticle(ctx, a.ID)
	if err != nil || gotArticle.CategoryID != parent.ID {
		t.Fatalf("article lost its category reference: %v", err)
	}
	// The deleted row remains reachable for audit.
	if _, err := repo.GetCategoryIncludeDeleted(ctx, s.DB, parent.ID); err != nil {
		t.Fatalf("include-deleted lookup: %v", err)
	}

	if err := s.DeleteCategory(ctx, parent.ID); !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("second delete: got %v", err)
	}
}

func TestCategoryTree(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	second, err := s.CreateCategory(ctx, CategoryInput{Name: "Second root", SortOrder: 2})
	if err != nil {
		t.Fatalf("root: %v", err)
	}
	first, err := s.CreateCategory(ctx, CategoryInput{Name: "First root", SortOrder: 1})
	if err != nil {
		t.Fatalf("root: %v", err)
	}
	off := false
	if _, err := s.CreateCategory(ctx, CategoryInput{Name: "Hidden root", IsActive: &off}); err != nil {
		t.Fatalf("root: %v", err)
	}

	childB, err := s.CreateCategory(ctx, CategoryInput{Name: "B child", ParentID: &first.ID, SortOrder: 2})
	if err != nil {
		t.Fatalf("child: %v", err)
	}
	childA, err := s.CreateCategory(ctx, CategoryInput{Name: "A child", ParentID: &first.ID, SortOrder: 1})
	if err != nil {
		t.Fatalf("child: %v", err)
	}

	roots, err := s.RootCategories(ctx, true)
	if err != nil {
		t.Fatalf("RootCategories: %v", err)
	}
	if len(roots) != 2 || roots[0].ID != first.ID || roots[1].ID != second.ID {
		t.Fatalf("active roots wrong: %+v", roots)
	}
	all, err := s.RootCategories(ctx, false)
	if err != nil || len(all) != 3 {
		t.Fatalf("all roots: %v (%d)", err, len(all))
	}

	children, err := s.ChildCategories(ctx, first.ID, true)
	if err != nil {
		t.Fatalf("ChildCategories: %v", err)
	}
	if len(children) != 2 || children[0].ID != childA.ID || children[1].ID != childB.ID {
		t.Fatalf("children ordering wrong: %+v", children)
	}

	if _, err := s.ChildCategories(ctx, 9999, true); !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("missing parent: got %v", err)
	}
}

func TestGetCategoryBySlug(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()
	c := mustCategory(t, s, "Billing")

	got, err := s.GetCategoryBySlug(ctx, c.Slug)
	if err != nil || got.ID != c.ID {
		t.Fatalf("GetCategoryBySlug: %v", err)
	}
	if _, err := s.GetCategoryBySlug(ctx, "nope"); !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("missing slug: got %v", err)
	}
}

func TestListArticlesByCategoryAndStatus(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()
	cat := mustCategory(t, s, "Guides")
	a := mustArticle(t, s, cat.ID, "One")
	mustArticle(t, s, cat.ID, "Two")

	if _, err := s.PublishArticle(ctx, a.ID); err != nil {
		t.Fatalf("publish: %v", err)
	}

	drafts, err := s.ListArticlesByStatus(ctx, domain.StatusDraft)
	if err != nil || len(drafts) != 1 {
		t.Fatalf("drafts: %v (%d)", err, len(drafts))
	}
	published, err := s.ListArticlesByStatus(ctx, domain.StatusPublished)
	if err != nil || len(published) != 1 || published[0].ID != a.ID {
		t.Fatalf("published: %v (%d)", err, len(published))
	}
	if _, err := s.ListArticlesByStatus(ctx, "bogus"); !errors.Is(err, ErrValidation) {
		t.Fatalf("bad status: got %v", err)
	}

	inCat, err := s.ListArticlesByCategory(ctx, cat.ID)
	if err != nil || len(inCat) != 2 {
		t.Fatalf("by category: %v (%d)", err, len(inCat))
	}
	if _, err := s.ListArticlesByCategory(ctx, 9999); !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("missing category: got %v", err)
	}
}
