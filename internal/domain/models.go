// Package domain defines the persistence models for the knowledge base:
// categories, articles, version snapshots, feedback entries, and related
// article links. These types are mapped with GORM and form the core data
// layer of the application.
package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
)

// tablePrefix is prepended to every table name. It is configured once at
// startup via SetTablePrefix and read from the TableName methods below.
var tablePrefix = "kb_"

// SetTablePrefix configures the prefix applied to all knowledge-base tables.
// Call it before opening the database / running migrations. Intended to be
// set once during process bootstrap; it is not synchronized.
func SetTablePrefix(prefix string) { tablePrefix = prefix }

// TablePrefix returns the currently configured table prefix.
func TablePrefix() string { return tablePrefix }

// ActorRef is a polymorphic reference to an external identity (author,
// editor, or feedback user). The pair is carried through to audit rows and
// notifications; it is never dereferenced by this module.
type ActorRef struct {
	// Type tags the identity kind as understood by the host application
	// (e.g. "user", "admin", "service").
	Type string `json:"type"`
	// ID is the identity key, kept as a string so hosts may use numeric
	// or UUID keys interchangeably.
	ID string `json:"id"`
}

// Metadata is a free-form key/value map stored as a JSON column.
type Metadata map[string]any

// Value serializes the map for storage. A nil map is stored as SQL NULL.
func (m Metadata) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan deserializes a JSON column back into the map.
func (m *Metadata) Scan(src any) error {
	if src == nil {
		*m = nil
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	default:
		return errors.New("domain: unsupported metadata source type")
	}
}

// Category groups articles into a self-referencing hierarchy of arbitrary
// depth. A nil ParentID marks a root node. Categories are soft-deleted so
// that "include deleted" queries can still retrieve them.
//
// Fields:
//   - ParentID: optional reference to the parent category (nil = root).
//   - Slug: URL-unique identifier, derived from Name when not supplied.
//   - Visibility: audience label (public/internal); not an enforced ACL.
//   - IsActive: soft toggle used by active-only listings.
//   - SortOrder: ascending ordering key among siblings.
type Category struct {
	ID          uint           `json:"id"          gorm:"primaryKey"`
	ParentID    *uint          `json:"parent_id"   gorm:"index"`
	Name        string         `json:"name"        gorm:"type:varchar(255);not null"`
	Slug        string         `json:"slug"        gorm:"type:varchar(255);not null;uniqueIndex"`
	Description *string        `json:"description,omitempty" gorm:"type:text"`
	Icon        *string        `json:"icon,omitempty" gorm:"type:varchar(255)"`
	Visibility  string         `json:"visibility"  gorm:"type:varchar(16);not null;default:'public'"`
	IsActive    bool           `json:"is_active"   gorm:"not null;default:true"`
	SortOrder   int            `json:"sort_order"  gorm:"not null;default:0"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-"           gorm:"index"`
}

// TableName returns the database table name for Category.
func (Category) TableName() string { return tablePrefix + "categories" }

// Article is the central entity of the knowledge base.
//
// Fields:
//   - UUID: globally unique external identifier, generated once at creation
//     and immutable thereafter.
//   - CategoryID: required reference to the owning category.
//   - Slug: unique human/URL-facing identifier.
//   - AuthorType/AuthorID: morph-style reference to the external author.
//   - Status: draft, published, or archived (see enums.go).
//   - Visibility: public or internal audience label.
//   - ViewCount/HelpfulCount/NotHelpfulCount: monotonically increasing
//     counters, only ever bumped with atomic SQL expressions.
//   - PublishedAt: refreshed on every publish call, including republishing.
//   - CurrentVersion: matches the number of version rows when versioning is
//     enabled; stays at 1 otherwise.
type Article struct {
	ID              uint              `json:"id"               gorm:"primaryKey"`
	UUID            string            `json:"uuid"             gorm:"type:char(36);not null;uniqueIndex"`
	CategoryID      uint              `json:"category_id"      gorm:"not null;index"`
	Title           string            `json:"title"            gorm:"type:varchar(255);not null"`
	Slug            string            `json:"slug"             gorm:"type:varchar(255);not null;uniqueIndex"`
	Content         string            `json:"content"          gorm:"type:text;not null"`
	Excerpt         *string           `json:"excerpt,omitempty" gorm:"type:text"`
	AuthorType      string            `json:"author_type"      gorm:"type:varchar(64);not null"`
	AuthorID        string            `json:"author_id"        gorm:"type:varchar(64);not null;index"`
	Status          ArticleStatus     `json:"status"           gorm:"type:varchar(16);not null;default:'draft';index"`
	Visibility      ArticleVisibility `json:"visibility"       gorm:"type:varchar(16);not null;default:'public'"`
	SEOTitle        *string           `json:"seo_title,omitempty" gorm:"type:varchar(255)"`
	SEODescription  *string           `json:"seo_description,omitempty" gorm:"type:text"`
	SEOKeywords     *string           `json:"seo_keywords,omitempty" gorm:"type:text"`
	ViewCount       int64             `json:"view_count"       gorm:"not null;default:0"`
	HelpfulCount    int64             `json:"helpful_count"    gorm:"not null;default:0"`
	NotHelpfulCount int64             `json:"not_helpful_count" gorm:"not null;default:0"`
	PublishedAt     *time.Time        `json:"published_at,omitempty"`
	CurrentVersion  int               `json:"current_version"  gorm:"not null;default:1"`
	Metadata        Metadata          `json:"metadata,omitempty" gorm:"type:text"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
	DeletedAt       gorm.DeletedAt    `json:"-"               gorm:"index"`

	// Category is the owning category. Articles reference categories but do
	// not own them; category removal does not cascade here.
	Category *Category `json:"-" gorm:"foreignKey:CategoryID;references:ID"`
}

// TableName returns the database table name for Article.
func (Article) TableName() string { return tablePrefix + "articles" }

// Author returns the article author as an ActorRef.
func (a *Article) Author() ActorRef { return ActorRef{Type: a.AuthorType, ID: a.AuthorID} }

// ArticleVersion is an immutable snapshot of an article's editable content
// at a point in time. Rows are append-only: version numbers are assigned by
// the service layer, contiguous per article and starting at 1. There is no
// UpdatedAt or DeletedAt; history is never edited or removed.
type ArticleVersion struct {
	ID            uint      `json:"id"             gorm:"primaryKey"`
	ArticleID     uint      `json:"article_id"     gorm:"not null;index:idx_article_versions,priority:1"`
	VersionNumber int       `json:"version_number" gorm:"not null;index:idx_article_versions,priority:2"`
	Title         string    `json:"title"          gorm:"type:varchar(255);not null"`
	Content       string    `json:"content"        gorm:"type:text;not null"`
	Excerpt       *string   `json:"excerpt,omitempty" gorm:"type:text"`
	EditorType    string    `json:"editor_type"    gorm:"type:varchar(64);not null"`
	EditorID      string    `json:"editor_id"      gorm:"type:varchar(64);not null"`
	ChangeNotes   *string   `json:"change_notes,omitempty" gorm:"type:text"`
	CreatedAt     time.Time `json:"created_at"`

	// Article is the parent article. History survives article soft-deletion
	// for audit purposes, so no cascade constraint is declared.
	Article *Article `json:"-" gorm:"foreignKey:ArticleID;references:ID"`
}

// TableName returns the database table name for ArticleVersion.
func (ArticleVersion) TableName() string { return tablePrefix + "article_versions" }

// Editor returns the snapshot editor as an ActorRef.
func (v *ArticleVersion) Editor() ActorRef { return ActorRef{Type: v.EditorType, ID: v.EditorID} }

// ArticleFeedback records a single helpful/not-helpful rating on an article.
// Entries are append-only and may be anonymous (nil user fields). The
// helpful/not-helpful counters on Article are incremental aggregates of this
// log, maintained in the same transaction as the insert.
type ArticleFeedback struct {
	ID        uint      `json:"id"         gorm:"primaryKey"`
	ArticleID uint      `json:"article_id" gorm:"not null;index"`
	UserType  *string   `json:"user_type,omitempty" gorm:"type:varchar(64)"`
	UserID    *string   `json:"user_id,omitempty"   gorm:"type:varchar(64);index"`
	IsHelpful bool      `json:"is_helpful" gorm:"not null"`
	Comment   *string   `json:"comment,omitempty"   gorm:"type:text"`
	IPAddress *string   `json:"ip_address,omitempty" gorm:"type:varchar(45)"`
	CreatedAt time.Time `json:"created_at"`

	// Article is the rated article. Feedback rows persist after article
	// soft-deletion, matching the audit semantics of version history.
	Article *Article `json:"-" gorm:"foreignKey:ArticleID;references:ID"`
}

// TableName returns the database table name for ArticleFeedback.
func (ArticleFeedback) TableName() string { return tablePrefix + "article_feedback" }

// User returns the feedback author, or nil for anonymous entries.
func (f *ArticleFeedback) User() *ActorRef {
	if f.UserType == nil || f.UserID == nil {
		return nil
	}
	return &ActorRef{Type: *f.UserType, ID: *f.UserID}
}

// ArticleRelation is a directional "related article" edge with an explicit
// ordering attribute. Symmetric relations require an independent reverse
// edge created by the application.
type ArticleRelation struct {
	ID               uint      `json:"id"                 gorm:"primaryKey"`
	ArticleID        uint      `json:"article_id"         gorm:"not null;uniqueIndex:ux_article_relation,priority:1"`
	RelatedArticleID uint      `json:"related_article_id" gorm:"not null;uniqueIndex:ux_article_relation,priority:2"`
	SortOrder        int       `json:"sort_order"         gorm:"not null;default:0"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`

	// Article and RelatedArticle anchor the edge endpoints.
	Article        *Article `json:"-" gorm:"foreignKey:ArticleID;references:ID"`
	RelatedArticle *Article `json:"-" gorm:"foreignKey:RelatedArticleID;references:ID"`
}

// TableName returns the database table name for ArticleRelation.
func (ArticleRelation) TableName() string { return tablePrefix + "article_relations" }
