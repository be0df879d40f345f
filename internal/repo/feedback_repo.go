// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the
// append-only ArticleFeedback log. Counter maintenance on the article row
// lives in article_repo.go (IncrementFeedbackCounter); the service layer
// combines both in one transaction.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/jeffersongoncalves/go-knowledge-base/internal/domain"
)

// CreateFeedback appends a feedback row. User fields may be nil for
// anonymous feedback.
func CreateFeedback(ctx context.Context, db *gorm.DB, f *domain.ArticleFeedback) error {
	return db.WithContext(ctx).Create(f).Error
}

// ListFeedback returns all feedback rows for an article, newest first.
func ListFeedback(ctx context.Context, db *gorm.DB, articleID uint) ([]domain.ArticleFeedback, error) {
	var out []domain.ArticleFeedback
	err := db.WithContext(ctx).
		Where("article_id = ?", articleID).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

// CountFeedback returns the total number of feedback rows for an article.
func CountFeedback(ctx context.Context, db *gorm.DB, articleID uint) (int64, error) {
	var total int64
	err := db.WithContext(ctx).
		Model(&domain.ArticleFeedback{}).
		Where("article_id = ?", articleID).
		Count(&total).Error
	return total, err
}
