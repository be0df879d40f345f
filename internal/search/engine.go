// Package search defines the pluggable search engine used by the knowledge
// base service and its only built-in implementation, the database substring
// engine. The engine name is configured (KB_SEARCH_ENGINE); unknown names
// fail at construction time so misconfiguration is caught at startup.
//
// Full-text engines with real relevance ranking are an extension point:
// implement Engine and register a new name in New. The built-in engine
// deliberately does plain substring matching ordered by popularity.
package search

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/jeffersongoncalves/go-knowledge-base/internal/domain"
	"github.com/jeffersongoncalves/go-knowledge-base/internal/repo"
)

// EngineDatabase is the name of the built-in substring engine.
const EngineDatabase = "database"

// ErrUnknownEngine is returned by New for unrecognized engine names.
var ErrUnknownEngine = errors.New("unknown search engine")

// Options narrows a search beyond the query string. The zero value applies
// no extra filters and uses the engine's default limit.
type Options struct {
	// CategoryID restricts results to one category when non-nil.
	CategoryID *uint
	// Visibility restricts results to one audience label when non-nil.
	Visibility *domain.ArticleVisibility
	// Limit caps the result count; 0 means the engine default.
	Limit int
}

// Engine finds published articles matching a query.
type Engine interface {
	// Search returns matching published articles ordered by relevance
	// (for the database engine: view_count descending). An empty query
	// yields an empty result set by policy, not an error.
	Search(ctx context.Context, db *gorm.DB, query string, opts Options) ([]domain.Article, error)
}

// New constructs the engine selected by name. Only EngineDatabase is
// implemented; any other name is a configuration error.
func New(name string, defaultLimit int) (Engine, error) {
	switch name {
	case EngineDatabase:
		if defaultLimit < 1 {
			defaultLimit = 20
		}
		return &databaseEngine{defaultLimit: defaultLimit}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownEngine, name)
	}
}

// databaseEngine matches by substring over title and content using the
// store's LIKE operator (case-insensitive for ASCII under SQLite).
type databaseEngine struct {
	defaultLimit int
}

// Search implements Engine.
func (e *databaseEngine) Search(ctx context.Context, db *gorm.DB, query string, opts Options) ([]domain.Article, error) {
	if query == "" {
		// Empty queries do not mean "match all".
		return []domain.Article{}, nil
	}
	limit := opts.Limit
	if limit <= 0 {
		limit = e.defaultLimit
	}
	return repo.SearchArticles(ctx, db, query, opts.CategoryID, opts.Visibility, limit)
}
