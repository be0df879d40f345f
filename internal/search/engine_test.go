package search

import (
	"context"
	"errors"
	"fmt"
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/jeffersongoncalves/go-knowledge-base/internal/domain"
	"github.com/jeffersongoncalves/go-knowledge-base/internal/repo"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:search_%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := repo.AutoMigrate(db); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	return db
}

func seedPublished(t *testing.T, db *gorm.DB, title, slug string, views int64) {
	t.Helper()
	cat := &domain.Category{Name: "c-" + slug, Slug: "c-" + slug, Visibility: "public", IsActive: true}
	if err := db.Create(cat).Error; err != nil {
		t.Fatalf("seed category: %v", err)
	}
	a := &domain.Article{
		UUID:       uuid.NewString(),
		CategoryID: cat.ID,
		Title:      title,
		Slug:       slug,
		Content:    "body for " + title,
		AuthorType: "user", AuthorID: "1",
		Status:     domain.StatusPublished,
		Visibility: domain.VisibilityPublic,
		ViewCount:  views, CurrentVersion: 1,
	}
	if err := db.Create(a).Error; err != nil {
		t.Fatalf("seed article: %v", err)
	}
}

func TestNew_UnknownEngine(t *testing.T) {
	if _, err := New("scout", 20); !errors.Is(err, ErrUnknownEngine) {
		t.Fatalf("expected ErrUnknownEngine, got %v", err)
	}
}

func TestNew_DatabaseEngine(t *testing.T) {
	eng, err := New(EngineDatabase, 20)
	if err != nil || eng == nil {
		t.Fatalf("New(database): %v", err)
	}
}

func TestDatabaseEngine_EmptyQueryPolicy(t *testing.T) {
	db := newTestDB(t)
	seedPublished(t, db, "Something", "something", 1)

	eng, _ := New(EngineDatabase, 20)
	got, err := eng.Search(context.Background(), db, "", Options{})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("empty query must return an empty result set, got %d", len(got))
	}
}

func TestDatabaseEngine_DefaultLimit(t *testing.T) {
	db := newTestDB(t)
	for i := 0; i < 5; i++ {
		seedPublished(t, db, fmt.Sprintf("Topic %d", i), fmt.Sprintf("topic-%d", i), int64(i))
	}

	eng, _ := New(EngineDatabase, 3)
	got, err := eng.Search(context.Background(), db, "Topic", Options{})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("default limit not applied: %d", len(got))
	}
	// Most viewed first.
	if got[0].Slug != "topic-4" {
		t.Fatalf("expected most-viewed first, got %s", got[0].Slug)
	}

	got, err = eng.Search(context.Background(), db, "Topic", Options{Limit: 1})
	if err != nil || len(got) != 1 {
		t.Fatalf("explicit limit failed: %v (%d)", err, len(got))
	}
}
