// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the Category
// model: CRUD persistence plus the tree queries (roots, children) used by
// the hierarchy.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/jeffersongoncalves/go-knowledge-base/internal/domain"
)

// CreateCategory inserts the given category row. On failure (including
// slug uniqueness violations), the raw DB error is returned.
func CreateCategory(ctx context.Context, db *gorm.DB, c *domain.Category) error {
	return db.WithContext(ctx).Create(c).Error
}

// GetCategory fetches a single live category by ID, or ErrNotFound.
func GetCategory(ctx context.Context, db *gorm.DB, id uint) (*domain.Category, error) {
	var c domain.Category
	if err := db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// GetCategoryBySlug fetches a live category by its slug.
func GetCategoryBySlug(ctx context.Context, db *gorm.DB, slug string) (*domain.Category, error) {
	var c domain.Category
	if err := db.WithContext(ctx).Where("slug = ?", slug).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// GetCategoryIncludeDeleted fetches a category by ID regardless of its
// soft-deletion state.
func GetCategoryIncludeDeleted(ctx context.Context, db *gorm.DB, id uint) (*domain.Category, error) {
	var c domain.Category
	if err := db.WithContext(ctx).Unscoped().First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// UpdateCategoryColumns applies the given column map to a category row.
// Returns ErrNotFound when no live row matched.
func UpdateCategoryColumns(ctx context.Context, db *gorm.DB, id uint, cols map[string]any) error {
	res := db.WithContext(ctx).
		Model(&domain.Category{}).
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

// SoftDeleteCategory marks a category as deleted. Children keep their
// parent_id; no cascade is applied (caller policy).
func SoftDeleteCategory(ctx context.Context, db *gorm.DB, id uint) error {
	res := db.WithContext(ctx).Delete(&domain.Category{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListRootCategories returns categories without a parent, ordered by
// sort_order ascending. When activeOnly is set, inactive nodes are
// filtered out.
func ListRootCategories(ctx context.Context, db *gorm.DB, activeOnly bool) ([]domain.Category, error) {
	q := db.WithContext(ctx).Where("parent_id IS NULL")
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	var out []domain.Category
	err := q.Order("sort_order ASC").Find(&out).Error
	return out, err
}

// ListChildCategories returns the direct children of parentID, ordered by
// sort_order ascending, optionally restricted to active nodes.
func ListChildCategories(ctx context.Context, db *gorm.DB, parentID uint, activeOnly bool) ([]domain.Category, error) {
	q := db.WithContext(ctx).Where("parent_id = ?", parentID)
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}
	var out []domain.Category
	err := q.Order("sort_order ASC").Find(&out).Error
	return out, err
}
