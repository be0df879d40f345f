// Package services – KnowledgeBaseService (categories)
//
// This file implements category management: creation with slug derivation,
// partial updates, soft deletion, and the hierarchy queries. Deleting a
// category does not cascade; child categories keep their parent reference
// and articles keep their category reference, so "include deleted" lookups
// can still resolve the row for audit purposes.

package services

import (
	"context"
	"errors"
	"strings"

	"github.com/jeffersongoncalves/go-knowledge-base/internal/domain"
	"github.com/jeffersongoncalves/go-knowledge-base/internal/repo"
	"github.com/jeffersongoncalves/go-knowledge-base/internal/utils"
)

// CategoryInput carries the caller-supplied fields for category creation.
// Slug is derived from Name when empty; Visibility falls back to the
// configured default; IsActive defaults to true when nil.
type CategoryInput struct {
	ParentID    *uint
	Name        string
	Slug        string
	Description *string
	Icon        *string
	Visibility  string
	IsActive    *bool
	SortOrder   int
}

// CategoryUpdate carries partial updates; nil fields are left unchanged.
type CategoryUpdate struct {
	ParentID    *uint
	Name        *string
	Slug        *string
	Description *string
	Icon        *string
	Visibility  *string
	IsActive    *bool
	SortOrder   *int
}

// CreateCategory validates input and inserts a category. A nil ParentID
// creates a root node; a non-nil one must reference a live category.
func (s *KnowledgeBaseService) CreateCategory(ctx context.Context, in CategoryInput) (*domain.Category, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, ErrMissingName
	}

	visibility := strings.TrimSpace(in.Visibility)
	if visibility == "" {
		visibility = s.KB.DefaultVisibility
	}
	if !domain.ArticleVisibility(visibility).Valid() {
		return nil, ErrInvalidVisibility
	}

	slug := strings.TrimSpace(in.Slug)
	if slug == "" {
		slug = utils.Slugify(name)
	}
	if slug == "" {
		return nil, ErrMissingName
	}

	if in.ParentID != nil {
		if _, err := repo.GetCategory(ctx, s.DB, *in.ParentID); err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return nil, ErrUnknownCategory
			}
			return nil, err
		}
	}

	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}

	c := &domain.Category{
		ParentID:    in.ParentID,
		Name:        name,
		Slug:        slug,
		Description: in.Description,
		Icon:        in.Icon,
		Visibility:  visibility,
		IsActive:    active,
		SortOrder:   in.SortOrder,
	}
	if err := repo.CreateCategory(ctx, s.DB, c); err != nil {
		if isDuplicate(err) {
			return nil, ErrDuplicateSlug
		}
		return nil, err
	}
	return c, nil
}

// UpdateCategory applies the non-nil fields of in to an existing category.
func (s *KnowledgeBaseService) UpdateCategory(ctx context.Context, id uint, in CategoryUpdate) (*domain.Category, error) {
	cols := map[string]any{}

	if in.Name != nil {
		n := strings.TrimSpace(*in.Name)
		if n == "" {
			return nil, ErrMissingName
		}
		cols["name"] = n
	}
	if in.Slug != nil {
		sl := strings.TrimSpace(*in.Slug)
		if sl == "" {
			return nil, ErrMissingName
		}
		cols["slug"] = sl
	}
	if in.Visibility != nil {
		if !domain.ArticleVisibility(*in.Visibility).Valid() {
			return nil, ErrInvalidVisibility
		}
		cols["visibility"] = *in.Visibility
	}
	if in.ParentID != nil {
		if *in.ParentID == id {
			return nil, ErrSelfRelation
		}
		if _, err := repo.GetCategory(ctx, s.DB, *in.ParentID); err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return nil, ErrUnknownCategory
			}
			return nil, err
		}
		cols["parent_id"] = *in.ParentID
	}
	if in.Description != nil {
		cols["description"] = *in.Description
	}
	if in.Icon != nil {
		cols["icon"] = *in.Icon
	}
	if in.IsActive != nil {
		cols["is_active"] = *in.IsActive
	}
	if in.SortOrder != nil {
		cols["sort_order"] = *in.SortOrder
	}

	if len(cols) > 0 {
		if err := repo.UpdateCategoryColumns(ctx, s.DB, id, cols); err != nil {
			if isDuplicate(err) {
				return nil, ErrDuplicateSlug
			}
			if errors.Is(err, repo.ErrNotFound) {
				return nil, ErrCategoryNotFound
			}
			return nil, err
		}
	}

	c, err := repo.GetCategory(ctx, s.DB, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return c, nil
}

// DeleteCategory soft-deletes a category. Children are not reparented or
// deleted; they simply no longer resolve a live parent.
func (s *KnowledgeBaseService) DeleteCategory(ctx context.Context, id uint) error {
	if err := repo.SoftDeleteCategory(ctx, s.DB, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrCategoryNotFound
		}
		return err
	}
	return nil
}

// GetCategory returns a live category by ID.
func (s *KnowledgeBaseService) GetCategory(ctx context.Context, id uint) (*domain.Category, error) {
	c, err := repo.GetCategory(ctx, s.DB, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return c, nil
}

// GetCategoryBySlug returns a live category by slug.
func (s *KnowledgeBaseService) GetCategoryBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	c, err := repo.GetCategoryBySlug(ctx, s.DB, slug)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return c, nil
}

// RootCategories lists the top-level categories ordered by sort_order.
func (s *KnowledgeBaseService) RootCategories(ctx context.Context, activeOnly bool) ([]domain.Category, error) {
	return repo.ListRootCategories(ctx, s.DB, activeOnly)
}

// ChildCategories lists the direct children of a category ordered by
// sort_order. The parent must be a live category.
func (s *KnowledgeBaseService) ChildCategories(ctx context.Context, parentID uint, activeOnly bool) ([]domain.Category, error) {
	if _, err := repo.GetCategory(ctx, s.DB, parentID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return repo.ListChildCategories(ctx, s.DB, parentID, activeOnly)
}
