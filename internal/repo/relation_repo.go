// Package repo implements the data persistence layer for domain entities,
// backed by GORM. This file provides repository functions for the
// ArticleRelation edge table ("related articles"). Edges are directional;
// symmetry is the caller's responsibility.
package repo

import (
	"context"

	"gorm.io/gorm"

	"github.com/jeffersongoncalves/go-knowledge-base/internal/domain"
)

// CreateRelation inserts a directed related-article edge. Duplicate edges
// (same source and target) violate the unique index and surface as a raw
// DB error for the service layer to translate.
func CreateRelation(ctx context.Context, db *gorm.DB, r *domain.ArticleRelation) error {
	return db.WithContext(ctx).Create(r).Error
}

// ListRelatedArticles returns the live articles related to articleID,
// ordered by the edge sort_order ascending.
func ListRelatedArticles(ctx context.Context, db *gorm.DB, articleID uint) ([]domain.Article, error) {
	relTable := domain.ArticleRelation{}.TableName()
	artTable := domain.Article{}.TableName()

	var out []domain.Article
	err := db.WithContext(ctx).
		Joins("JOIN "+relTable+" ON "+relTable+".related_article_id = "+artTable+".id").
		Where(relTable+".article_id = ?", articleID).
		Order(relTable + ".sort_order ASC").
		Find(&out).Error
	return out, err
}

// DeleteRelation removes the edge from articleID to relatedID. Returns
// ErrNotFound when no such edge exists.
func DeleteRelation(ctx context.Context, db *gorm.DB, articleID, relatedID uint) error {
	res := db.WithContext(ctx).
		Where("article_id = ? AND related_article_id = ?", articleID, relatedID).
		Delete(&domain.ArticleRelation{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
