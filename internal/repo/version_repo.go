// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the
// append-only ArticleVersion history. There are intentionally no update or
// delete functions: past versions are immutable for audit integrity.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/jeffersongoncalves/go-knowledge-base/internal/domain"
)

// CreateVersion appends a version snapshot. The version number is assigned
// by the service layer; this function only persists the row.
func CreateVersion(ctx context.Context, db *gorm.DB, v *domain.ArticleVersion) error {
	return db.WithContext(ctx).Create(v).Error
}

// ListVersions returns all version snapshots for an article, ordered by
// version number ascending.
func ListVersions(ctx context.Context, db *gorm.DB, articleID uint) ([]domain.ArticleVersion, error) {
	var out []domain.ArticleVersion
	err := db.WithContext(ctx).
		Where("article_id = ?", articleID).
		Order("version_number ASC").
		Find(&out).Error
	return out, err
}

// GetVersion fetches a single snapshot by article and version number, or
// ErrNotFound.
func GetVersion(ctx context.Context, db *gorm.DB, articleID uint, number int) (*domain.ArticleVersion, error) {
	var v domain.ArticleVersion
	err := db.WithContext(ctx).
		Where("article_id = ? AND version_number = ?", articleID, number).
		First(&v).Error
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// CountVersions returns the number of history rows for an article.
func CountVersions(ctx context.Context, db *gorm.DB, articleID uint) (int64, error) {
	var total int64
	err := db.WithContext(ctx).
		Model(&domain.ArticleVersion{}).
		Where("article_id = ?", articleID).
		Count(&total).Error
	return total, err
}
