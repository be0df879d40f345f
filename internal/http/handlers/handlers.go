// Package handlers provides HTTP handler implementations for the public API.
//
// This file wires the handler group and shared request helpers. Handlers
// are transport-thin: they validate and parse input, delegate to the
// knowledge base service, and translate results into HTTP responses.
//
// Actor identification: mutating endpoints attribute changes to the acting
// identity carried in the X-Actor-Type / X-Actor-ID headers. Authentication
// is the host application's concern; these headers are trusted as-is, the
// way a reverse proxy or API gateway would inject them.
package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jeffersongoncalves/go-knowledge-base/internal/domain"
	"github.com/jeffersongoncalves/go-knowledge-base/internal/services"
	"github.com/jeffersongoncalves/go-knowledge-base/internal/utils"
)

const (
	headerActorType = "X-Actor-Type"
	headerActorID   = "X-Actor-ID"
)

// Handlers groups the HTTP endpoints for categories, articles, versions,
// feedback, relations, and search.
type Handlers struct {
	svc *services.KnowledgeBaseService
}

// New constructs a Handlers instance bound to the given service.
func New(svc *services.KnowledgeBaseService) *Handlers {
	return &Handlers{svc: svc}
}

// actor extracts the acting identity from the request headers. Missing
// headers yield a zero ActorRef, which the service rejects on mutations
// that require attribution.
func actor(c *gin.Context) domain.ActorRef {
	return domain.ActorRef{
		Type: strings.TrimSpace(c.GetHeader(headerActorType)),
		ID:   strings.TrimSpace(c.GetHeader(headerActorID)),
	}
}

// pathID parses the named numeric path parameter. The second return is
// false when the parameter is absent or not a positive integer.
func pathID(c *gin.Context, name string) (uint, bool) {
	id, ok := utils.ParseUint(c.Param(name))
	if !ok || id == 0 {
		return 0, false
	}
	return id, true
}

// boolQuery reads a boolean query parameter, defaulting when absent.
func boolQuery(c *gin.Context, name string, def bool) bool {
	switch strings.ToLower(c.Query(name)) {
	case "1", "true", "yes":
		return true
	case "0", "false", "no":
		return false
	}
	return def
}
