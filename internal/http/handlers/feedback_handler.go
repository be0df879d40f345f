// Feedback and search HTTP handlers.
//
// This file exposes the endpoints for rating articles and searching the
// published corpus:
//   - POST /articles/:id/feedback  (submit a rating)
//   - GET  /articles/:id/feedback  (list ratings)
//   - GET  /search                 (substring search over published articles)
//
// Feedback may be anonymous: the actor headers are optional here, and the
// client IP is recorded for abuse analysis.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jeffersongoncalves/go-knowledge-base/internal/domain"
	"github.com/jeffersongoncalves/go-knowledge-base/internal/search"
	"github.com/jeffersongoncalves/go-knowledge-base/internal/services"
	"github.com/jeffersongoncalves/go-knowledge-base/internal/utils"
)

// AddFeedbackRequest is the JSON payload for rating an article.
type AddFeedbackRequest struct {
	// IsHelpful is required; use a pointer so "false" survives binding.
	IsHelpful *bool   `json:"is_helpful" binding:"required" example:"true"`
	Comment   *string `json:"comment,omitempty" example:"Solved my problem"`
}

// AddFeedback godoc
// @ID          addFeedback
// @Summary     Rate an article
// @Description Records a helpful/not-helpful rating and updates the article counters atomically.
// @Tags        Feedback
// @Accept      json
// @Produce     json
//
// @Param       X-Actor-Type  header  string  false  "Actor type (omit for anonymous)"  example(user)
// @Param       X-Actor-ID    header  string  false  "Actor ID (omit for anonymous)"    example(42)
// @Param       id            path    int     true   "Article ID"
// @Param       body          body    handlers.AddFeedbackRequest  true  "Feedback payload"
//
// @Success     201  {object}  domain.ArticleFeedback
// @Failure     400  {object}  handlers.ErrorResponse "Invalid payload"
// @Failure     403  {object}  handlers.ErrorResponse "Feedback is disabled"
// @Failure     404  {object}  handlers.ErrorResponse "Article not found"
// @Router      /articles/{id}/feedback [post]
func (h *Handlers) AddFeedback(c *gin.Context) {
	id, okID := pathID(c, "id")
	if !okID {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "article id must be a positive integer")
		return
	}
	var req AddFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.IsHelpful == nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "is_helpful is required")
		return
	}

	in := services.FeedbackInput{
		IsHelpful: *req.IsHelpful,
		Comment:   req.Comment,
	}
	if a := actor(c); a.Type != "" && a.ID != "" {
		in.User = &a
	}
	if ip := c.ClientIP(); ip != "" {
		in.IPAddress = &ip
	}

	fb, err := h.svc.AddFeedback(c.Request.Context(), id, in)
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusCreated, fb)
}

// ListFeedback godoc
// @ID          listFeedback
// @Summary     List the feedback entries of an article
// @Tags        Feedback
// @Produce     json
//
// @Param       id  path  int  true  "Article ID"
//
// @Success     200  {array}   domain.ArticleFeedback
// @Failure     404  {object}  handlers.ErrorResponse "Article not found"
// @Router      /articles/{id}/feedback [get]
func (h *Handlers) ListFeedback(c *gin.Context) {
	id, okID := pathID(c, "id")
	if !okID {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "article id must be a positive integer")
		return
	}
	entries, err := h.svc.ListFeedback(c.Request.Context(), id)
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusOK, entries)
}

// SearchArticles godoc
// @ID          searchArticles
// @Summary     Search published articles
// @Description Substring search over title and content, most viewed first. A blank query returns an empty list.
// @Tags        Search
// @Produce     json
//
// @Param       q            query  string  true   "Query string"
// @Param       category_id  query  int     false  "Restrict to a category"
// @Param       visibility   query  string  false  "Audience label"  Enums(public, internal)
// @Param       limit        query  int     false  "Maximum results"  minimum(1)
//
// @Success     200  {array}   domain.Article
// @Failure     400  {object}  handlers.ErrorResponse "Invalid filters"
// @Router      /search [get]
func (h *Handlers) SearchArticles(c *gin.Context) {
	opts := search.Options{
		Limit: utils.AtoiDefault(c.Query("limit"), 0),
	}
	if raw := c.Query("category_id"); raw != "" {
		id, okID := utils.ParseUint(raw)
		if !okID || id == 0 {
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "category_id must be a positive integer")
			return
		}
		opts.CategoryID = &id
	}
	if raw := c.Query("visibility"); raw != "" {
		v := domain.ArticleVisibility(raw)
		if !v.Valid() {
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "visibility must be public or internal")
			return
		}
		opts.Visibility = &v
	}

	items, err := h.svc.Search(c.Request.Context(), c.Query("q"), opts)
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusOK, items)
}
