// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Article
// model.
//
// All functions are context-aware and accept a *gorm.DB handle, making them
// safe for use within transactions or connection-scoped operations.
// They follow the "thin repository" approach: no business logic, only CRUD
// persistence and query composition.
//
// Error semantics:
//   - When an article is not found, functions return gorm.ErrRecordNotFound
//     (also exported here as ErrNotFound for convenience).
//   - On DB errors (constraint violations, connectivity issues, etc.),
//     the raw gorm error is propagated. The service layer translates
//     uniqueness failures into domain constraint errors.
//
// Counter columns (view_count, helpful_count, not_helpful_count) are only
// ever modified through atomic SQL expressions, never read-modify-write, so
// concurrent increments cannot lose updates.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/jeffersongoncalves/go-knowledge-base/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
// It aliases gorm.ErrRecordNotFound for convenience and consistency
// across the service layer and handlers.
var ErrNotFound = gorm.ErrRecordNotFound

// CreateArticle inserts the given article row. The caller is responsible
// for populating UUID, slug, author reference, and defaults beforehand.
// On failure, the raw DB error is returned (including unique violations on
// slug or uuid).
func CreateArticle(ctx context.Context, db *gorm.DB, a *domain.Article) error {
	return db.WithContext(ctx).Create(a).Error
}

// GetArticle fetches a single live (non-deleted) article by ID. If the
// record does not exist, it returns ErrNotFound.
func GetArticle(ctx context.Context, db *gorm.DB, id uint) (*domain.Article, error) {
	var a domain.Article
	if err := db.WithContext(ctx).First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// GetArticleBySlug fetches a live article by its slug.
func GetArticleBySlug(ctx context.Context, db *gorm.DB, slug string) (*domain.Article, error) {
	var a domain.Article
	if err := db.WithContext(ctx).Where("slug = ?", slug).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// GetArticleByUUID fetches a live article by its external identifier.
func GetArticleByUUID(ctx context.Context, db *gorm.DB, uuid string) (*domain.Article, error) {
	var a domain.Article
	if err := db.WithContext(ctx).Where("uuid = ?", uuid).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// GetArticleIncludeDeleted fetches an article by ID regardless of its
// soft-deletion state ("include deleted" query mode).
func GetArticleIncludeDeleted(ctx context.Context, db *gorm.DB, id uint) (*domain.Article, error) {
	var a domain.Article
	if err := db.WithContext(ctx).Unscoped().First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// UpdateArticleColumns applies the given column map to an article row.
// Returns ErrNotFound when no live row matched.
func UpdateArticleColumns(ctx context.Context, db *gorm.DB, id uint, cols map[string]any) error {
	res := db.WithContext(ctx).
		Model(&domain.Article{}).
		Where("id = ?", id).
		Updates(cols)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SoftDeleteArticle marks an article as deleted. The row is retained and
// excluded from default queries. Returns ErrNotFound when the article does
// not exist or is already deleted.
func SoftDeleteArticle(ctx context.Context, db *gorm.DB, id uint) error {
	res := db.WithContext(ctx).Delete(&domain.Article{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// IncrementViewCount bumps view_count by one using an atomic SQL
// expression, safe against concurrent increments.
func IncrementViewCount(ctx context.Context, db *gorm.DB, id uint) error {
	res := db.WithContext(ctx).
		Model(&domain.Article{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + 1"))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// IncrementFeedbackCounter bumps exactly one of helpful_count or
// not_helpful_count depending on helpful, using an atomic SQL expression.
// UpdateColumn skips the gorm UpdatedAt hook so feedback does not count as
// an article edit.
func IncrementFeedbackCounter(ctx context.Context, db *gorm.DB, id uint, helpful bool) error {
	col := "not_helpful_count"
	if helpful {
		col = "helpful_count"
	}
	res := db.WithContext(ctx).
		Model(&domain.Article{}).
		Where("id = ?", id).
		UpdateColumn(col, gorm.Expr(col+" + 1"))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// SearchArticles returns published articles whose title or content contains
// the query substring, optionally filtered by category and visibility,
// ordered by view_count descending and capped at limit. Matching is
// case-insensitive per SQLite's LIKE semantics for ASCII.
func SearchArticles(ctx context.Context, db *gorm.DB, query string, categoryID *uint, visibility *domain.ArticleVisibility, limit int) ([]domain.Article, error) {
	pattern := "%" + query + "%"
	q := db.WithContext(ctx).
		Where("status = ?", domain.StatusPublished).
		Where(db.Where("title LIKE ?", pattern).Or("content LIKE ?", pattern))

	if categoryID != nil {
		q = q.Where("category_id = ?", *categoryID)
	}
	if visibility != nil {
		q = q.Where("visibility = ?", *visibility)
	}

	var out []domain.Article
	err := q.Order("view_count DESC").Limit(limit).Find(&out).Error
	return out, err
}

// ListArticlesByStatus returns live articles with the given status, most
// recently updated first.
func ListArticlesByStatus(ctx context.Context, db *gorm.DB, status domain.ArticleStatus) ([]domain.Article, error) {
	var out []domain.Article
	err := db.WithContext(ctx).
		Where("status = ?", status).
		Order("updated_at DESC").
		Find(&out).Error
	return out, err
}

// ListArticlesByCategory returns live articles in the given category,
// most recently updated first.
func ListArticlesByCategory(ctx context.Context, db *gorm.DB, categoryID uint) ([]domain.Article, error) {
	var out []domain.Article
	err := db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Order("updated_at DESC").
		Find(&out).Error
	return out, err
}
