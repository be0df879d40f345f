package domain

// ArticleStatus is the lifecycle state of an article. The defined
// transitions are draft → published → archived; archiving is also reachable
// directly from draft, and archived is terminal.
type ArticleStatus string

const (
	StatusDraft     ArticleStatus = "draft"
	StatusPublished ArticleStatus = "published"
	StatusArchived  ArticleStatus = "archived"
)

// Valid reports whether s is one of the defined statuses.
func (s ArticleStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusPublished, StatusArchived:
		return true
	}
	return false
}

// ArticleVisibility labels the intended audience of an article or category.
// It is informational only; enforcement is left to the host application.
type ArticleVisibility string

const (
	VisibilityPublic   ArticleVisibility = "public"
	VisibilityInternal ArticleVisibility = "internal"
)

// Valid reports whether v is one of the defined visibility labels.
func (v ArticleVisibility) Valid() bool {
	return v == VisibilityPublic || v == VisibilityInternal
}
