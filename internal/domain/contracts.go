// Contract interfaces for host-supplied model overrides.
//
// Applications embedding this module may substitute their own model types
// (for extra columns, different table names, and so on) by registering them
// with the registry package. A replacement must satisfy the contract for its
// entity; embedding the corresponding base model satisfies it automatically.
package domain

// CategoryContract is satisfied by Category and any type embedding it.
type CategoryContract interface {
	TableName() string
	CategoryRecord() *Category
}

// ArticleContract is satisfied by Article and any type embedding it.
type ArticleContract interface {
	TableName() string
	ArticleRecord() *Article
}

// ArticleVersionContract is satisfied by ArticleVersion and embedders.
type ArticleVersionContract interface {
	TableName() string
	ArticleVersionRecord() *ArticleVersion
}

// ArticleFeedbackContract is satisfied by ArticleFeedback and embedders.
type ArticleFeedbackContract interface {
	TableName() string
	ArticleFeedbackRecord() *ArticleFeedback
}

// ArticleRelationContract is satisfied by ArticleRelation and embedders.
type ArticleRelationContract interface {
	TableName() string
	ArticleRelationRecord() *ArticleRelation
}

// CategoryRecord returns the base category record.
func (c *Category) CategoryRecord() *Category { return c }

// ArticleRecord returns the base article record.
func (a *Article) ArticleRecord() *Article { return a }

// ArticleVersionRecord returns the base version record.
func (v *ArticleVersion) ArticleVersionRecord() *ArticleVersion { return v }

// ArticleFeedbackRecord returns the base feedback record.
func (f *ArticleFeedback) ArticleFeedbackRecord() *ArticleFeedback { return f }

// ArticleRelationRecord returns the base relation record.
func (r *ArticleRelation) ArticleRelationRecord() *ArticleRelation { return r }
