// Package services implements the knowledge-base orchestrator: article
// lifecycle and versioning, category management, feedback aggregation, and
// search. This file centralizes the service-level error values so that they
// can be consistently returned by service methods and checked by callers
// with errors.Is.
//
// The taxonomy has four families:
//   - validation errors (wrap ErrValidation): required field missing or
//     malformed input;
//   - constraint violations (wrap ErrConstraint): uniqueness conflicts and
//     referential integrity failures;
//   - not-found errors: the referenced row does not exist or is
//     soft-deleted;
//   - configuration errors: surfaced by the registry and search packages
//     at resolution/startup time, not defined here.
//
// Translation into user-facing messages or HTTP status codes is performed
// at the handler layer.
package services

import (
	"errors"
	"fmt"
)

// Error families. Concrete errors below wrap one of these so callers can
// branch on the class without enumerating every case.
var (
	// ErrValidation is the base class for missing/malformed input.
	ErrValidation = errors.New("validation failed")

	// ErrConstraint is the base class for uniqueness and referential
	// integrity violations.
	ErrConstraint = errors.New("constraint violation")
)

// Validation errors.
var (
	// ErrMissingCategory is returned when an article is created without a
	// category reference.
	ErrMissingCategory = fmt.Errorf("%w: article category is required", ErrValidation)

	// ErrMissingTitle is returned when an article is created or updated
	// with an empty title.
	ErrMissingTitle = fmt.Errorf("%w: article title is required", ErrValidation)

	// ErrMissingContent is returned when an article is created or updated
	// with an empty content body.
	ErrMissingContent = fmt.Errorf("%w: article content is required", ErrValidation)

	// ErrMissingAuthor is returned when the acting identity reference is
	// incomplete (empty type or id).
	ErrMissingAuthor = fmt.Errorf("%w: actor reference is required", ErrValidation)

	// ErrMissingName is returned when a category is created without a name.
	ErrMissingName = fmt.Errorf("%w: category name is required", ErrValidation)

	// ErrInvalidVisibility is returned for visibility labels outside
	// {public, internal}.
	ErrInvalidVisibility = fmt.Errorf("%w: visibility must be public or internal", ErrValidation)

	// ErrFeedbackDisabled is returned when feedback submission is attempted
	// while the feedback feature flag is off.
	ErrFeedbackDisabled = fmt.Errorf("%w: feedback is disabled", ErrValidation)

	// ErrSelfRelation is returned when relating an article to itself.
	ErrSelfRelation = fmt.Errorf("%w: an article cannot relate to itself", ErrValidation)
)

// Constraint violations.
var (
	// ErrDuplicateSlug is returned when an article or category slug (or an
	// article external UUID) collides with an existing row.
	ErrDuplicateSlug = fmt.Errorf("%w: slug already exists", ErrConstraint)

	// ErrUnknownCategory is returned when an article references a category
	// that does not resolve to a live row.
	ErrUnknownCategory = fmt.Errorf("%w: referenced category does not exist", ErrConstraint)

	// ErrDuplicateRelation is returned when the same related-article edge
	// is created twice.
	ErrDuplicateRelation = fmt.Errorf("%w: relation already exists", ErrConstraint)
)

// Not-found errors.
var (
	// ErrArticleNotFound indicates the referenced article does not exist
	// or is soft-deleted.
	ErrArticleNotFound = errors.New("article not found")

	// ErrCategoryNotFound indicates the referenced category does not exist
	// or is soft-deleted.
	ErrCategoryNotFound = errors.New("category not found")
)
