// Package registry resolves the concrete model implementation for each
// knowledge-base entity. Host applications may override the defaults with
// their own types (for extra columns or different table names) as long as
// the replacement satisfies the entity's contract interface in the domain
// package.
//
// Resolution is validated once and memoized; Flush clears the cache for
// tests or reconfiguration. Configuration is expected to happen during
// process bootstrap, before concurrent use.
package registry

import (
	"errors"
	"fmt"
	"sync"

	"github.com/jeffersongoncalves/go-knowledge-base/internal/domain"
)

// Key identifies a logical entity whose implementation can be overridden.
type Key string

const (
	KeyArticle         Key = "article"
	KeyCategory        Key = "category"
	KeyArticleVersion  Key = "article_version"
	KeyArticleFeedback Key = "article_feedback"
	KeyArticleRelation Key = "article_relation"
)

// ErrConfiguration is wrapped by every resolution failure: unknown entity
// keys, missing registrations, and implementations that do not satisfy the
// required contract. It surfaces at resolve time so misconfiguration is
// caught at startup rather than mid-operation.
var ErrConfiguration = errors.New("invalid model configuration")

// contractCheck validates that a registered value satisfies the contract
// for its entity key.
type contractCheck func(any) bool

var contracts = map[Key]contractCheck{
	KeyArticle:         func(v any) bool { _, ok := v.(domain.ArticleContract); return ok },
	KeyCategory:        func(v any) bool { _, ok := v.(domain.CategoryContract); return ok },
	KeyArticleVersion:  func(v any) bool { _, ok := v.(domain.ArticleVersionContract); return ok },
	KeyArticleFeedback: func(v any) bool { _, ok := v.(domain.ArticleFeedbackContract); return ok },
	KeyArticleRelation: func(v any) bool { _, ok := v.(domain.ArticleRelationContract); return ok },
}

// Resolver maps entity keys to registered prototype values. The zero value
// is not usable; construct with NewResolver.
type Resolver struct {
	mu         sync.RWMutex
	registered map[Key]any
	cache      map[Key]any
}

// NewResolver returns a resolver pre-populated with the default domain
// models for every entity key.
func NewResolver() *Resolver {
	r := &Resolver{
		registered: make(map[Key]any, len(contracts)),
		cache:      make(map[Key]any, len(contracts)),
	}
	r.registered[KeyArticle] = &domain.Article{}
	r.registered[KeyCategory] = &domain.Category{}
	r.registered[KeyArticleVersion] = &domain.ArticleVersion{}
	r.registered[KeyArticleFeedback] = &domain.ArticleFeedback{}
	r.registered[KeyArticleRelation] = &domain.ArticleRelation{}
	return r
}

// Register replaces the implementation for key. The value is validated on
// the next Resolve call, not here, so registration order never matters.
func (r *Resolver) Register(key Key, model any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.registered[key] = model
	delete(r.cache, key)
}

// Resolve returns the registered prototype for key after validating it
// against the entity contract. Successful resolutions are memoized.
func (r *Resolver) Resolve(key Key) (any, error) {
	r.mu.RLock()
	if v, ok := r.cache[key]; ok {
		r.mu.RUnlock()
		return v, nil
	}
	r.mu.RUnlock()

	check, ok := contracts[key]
	if !ok {
		return nil, fmt.Errorf("%w: unknown entity key %q", ErrConfiguration, key)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	model, ok := r.registered[key]
	if !ok || model == nil {
		return nil, fmt.Errorf("%w: no model registered for %q", ErrConfiguration, key)
	}
	if !check(model) {
		return nil, fmt.Errorf("%w: model %T does not satisfy the %q contract", ErrConfiguration, model, key)
	}
	r.cache[key] = model
	return model, nil
}

// Models resolves every entity key and returns the prototypes in a stable
// order, suitable for schema migration.
func (r *Resolver) Models() ([]any, error) {
	keys := []Key{KeyCategory, KeyArticle, KeyArticleVersion, KeyArticleFeedback, KeyArticleRelation}
	out := make([]any, 0, len(keys))
	for _, k := range keys {
		m, err := r.Resolve(k)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

// Flush clears the memoization cache. Registered implementations are kept;
// the next Resolve re-validates them.
func (r *Resolver) Flush() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cache = make(map[Key]any, len(contracts))
}

// Default is the process-wide resolver used when no explicit resolver is
// injected. Overrides should be registered during bootstrap.
var Default = NewResolver()
