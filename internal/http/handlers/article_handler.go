// Article HTTP handlers.
//
// This file exposes REST endpoints for article resources:
//   - POST   /articles                         (create as draft)
//   - GET    /articles                         (list by status)
//   - GET    /articles/:id                     (fetch)
//   - GET    /articles/slug/:slug              (fetch by slug, counts a view)
//   - PUT    /articles/:id                     (update, appends a version)
//   - DELETE /articles/:id                     (soft delete)
//   - POST   /articles/:id/publish             (publish / republish)
//   - POST   /articles/:id/archive             (archive)
//   - GET    /articles/:id/versions            (version history)
//   - GET    /articles/:id/versions/:number    (single snapshot)
//   - GET    /articles/:id/related             (related articles)
//   - POST   /articles/:id/related             (add relation)
//   - DELETE /articles/:id/related/:relatedID  (remove relation)
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jeffersongoncalves/go-knowledge-base/internal/domain"
	"github.com/jeffersongoncalves/go-knowledge-base/internal/services"
	"github.com/jeffersongoncalves/go-knowledge-base/internal/utils"
)

// CreateArticleRequest is the JSON payload for creating an article.
type CreateArticleRequest struct {
	CategoryID uint   `json:"category_id" binding:"required" example:"1"`
	Title      string `json:"title" binding:"required,min=1,max=255" example:"Getting started"`
	Content    string `json:"content" binding:"required" example:"Step one..."`
	// Slug is optional; derived from the title when empty.
	Slug           string          `json:"slug,omitempty" example:"getting-started"`
	Excerpt        *string         `json:"excerpt,omitempty"`
	Visibility     string          `json:"visibility,omitempty" example:"public"`
	SEOTitle       *string         `json:"seo_title,omitempty"`
	SEODescription *string         `json:"seo_description,omitempty"`
	SEOKeywords    *string         `json:"seo_keywords,omitempty"`
	Metadata       domain.Metadata `json:"metadata,omitempty"`
}

// UpdateArticleRequest is the JSON payload for updating an article. Absent
// fields are left unchanged; ChangeNotes annotates the version snapshot.
type UpdateArticleRequest struct {
	CategoryID     *uint           `json:"category_id,omitempty"`
	Title          *string         `json:"title,omitempty"`
	Slug           *string         `json:"slug,omitempty"`
	Content        *string         `json:"content,omitempty"`
	Excerpt        *string         `json:"excerpt,omitempty"`
	Visibility     *string         `json:"visibility,omitempty"`
	SEOTitle       *string         `json:"seo_title,omitempty"`
	SEODescription *string         `json:"seo_description,omitempty"`
	SEOKeywords    *string         `json:"seo_keywords,omitempty"`
	Metadata       domain.Metadata `json:"metadata,omitempty"`
	ChangeNotes    *string         `json:"change_notes,omitempty" example:"fixed typos"`
}

// RelateArticlesRequest is the JSON payload for adding a related article.
type RelateArticlesRequest struct {
	RelatedArticleID uint `json:"related_article_id" binding:"required" example:"2"`
	SortOrder        int  `json:"sort_order" example:"1"`
}

// CreateArticle godoc
// @ID          createArticle
// @Summary     Create an article
// @Description Creates a draft article in a category, attributed to the acting identity. Writes version 1 when versioning is enabled.
// @Tags        Articles
// @Accept      json
// @Produce     json
//
// @Param       X-Actor-Type  header  string  true  "Actor type"  example(user)
// @Param       X-Actor-ID    header  string  true  "Actor ID"    example(42)
// @Param       body          body    handlers.CreateArticleRequest  true  "Article payload"
//
// @Success     201  {object}  domain.Article
// @Failure     400  {object}  handlers.ErrorResponse "Invalid payload"
// @Failure     409  {object}  handlers.ErrorResponse "Slug already exists or unknown category"
// @Failure     500  {object}  handlers.ErrorResponse "Internal error"
// @Router      /articles [post]
func (h *Handlers) CreateArticle(c *gin.Context) {
	var req CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	a, err := h.svc.CreateArticle(c.Request.Context(), services.ArticleInput{
		CategoryID:     req.CategoryID,
		Title:          req.Title,
		Slug:           req.Slug,
		Content:        req.Content,
		Excerpt:        req.Excerpt,
		Visibility:     domain.ArticleVisibility(req.Visibility),
		SEOTitle:       req.SEOTitle,
		SEODescription: req.SEODescription,
		SEOKeywords:    req.SEOKeywords,
		Metadata:       req.Metadata,
	}, actor(c))
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusCreated, a)
}

// ListArticles godoc
// @ID          listArticles
// @Summary     List articles by status
// @Tags        Articles
// @Produce     json
//
// @Param       status  query  string  false  "Lifecycle status"  Enums(draft, published, archived)  default(published)
//
// @Success     200  {array}   domain.Article
// @Failure     400  {object}  handlers.ErrorResponse "Unknown status"
// @Failure     500  {object}  handlers.ErrorResponse "Internal error"
// @Router      /articles [get]
func (h *Handlers) ListArticles(c *gin.Context) {
	status := domain.ArticleStatus(c.DefaultQuery("status", string(domain.StatusPublished)))
	items, err := h.svc.ListArticlesByStatus(c.Request.Context(), status)
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusOK, items)
}

// GetArticle godoc
// @ID          getArticle
// @Summary     Fetch an article by ID
// @Tags        Articles
// @Produce     json
//
// @Param       id  path  int  true  "Article ID"
//
// @Success     200  {object}  domain.Article
// @Failure     404  {object}  handlers.ErrorResponse "Article not found"
// @Router      /articles/{id} [get]
func (h *Handlers) GetArticle(c *gin.Context) {
	id, okID := pathID(c, "id")
	if !okID {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "article id must be a positive integer")
		return
	}
	a, err := h.svc.GetArticle(c.Request.Context(), id)
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusOK, a)
}

// GetArticleBySlug godoc
// @ID          getArticleBySlug
// @Summary     Fetch an article by slug
// @Description Returns the article and, when view tracking is enabled, counts the lookup as a view.
// @Tags        Articles
// @Produce     json
//
// @Param       slug  path  string  true  "Article slug"  example(getting-started)
//
// @Success     200  {object}  domain.Article
// @Failure     404  {object}  handlers.ErrorResponse "Article not found"
// @Router      /articles/slug/{slug} [get]
func (h *Handlers) GetArticleBySlug(c *gin.Context) {
	a, err := h.svc.GetArticleBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusOK, a)
}

// UpdateArticle godoc
// @ID          updateArticle
// @Summary     Update an article
// @Description Applies the provided fields and appends a version snapshot when versioning is enabled.
// @Tags        Articles
// @Accept      json
// @Produce     json
//
// @Param       X-Actor-Type  header  string  true  "Actor type"  example(user)
// @Param       X-Actor-ID    header  string  true  "Actor ID"    example(42)
// @Param       id            path    int     true  "Article ID"
// @Param       body          body    handlers.UpdateArticleRequest  true  "Fields to update"
//
// @Success     200  {object}  domain.Article
// @Failure     400  {object}  handlers.ErrorResponse "Invalid payload"
// @Failure     404  {object}  handlers.ErrorResponse "Article not found"
// @Failure     409  {object}  handlers.ErrorResponse "Slug already exists"
// @Router      /articles/{id} [put]
func (h *Handlers) UpdateArticle(c *gin.Context) {
	id, okID := pathID(c, "id")
	if !okID {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "article id must be a positive integer")
		return
	}
	var req UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}

	var visibility *domain.ArticleVisibility
	if req.Visibility != nil {
		v := domain.ArticleVisibility(*req.Visibility)
		visibility = &v
	}

	a, err := h.svc.UpdateArticle(c.Request.Context(), id, services.ArticleUpdate{
		CategoryID:     req.CategoryID,
		Title:          req.Title,
		Slug:           req.Slug,
		Content:        req.Content,
		Excerpt:        req.Excerpt,
		Visibility:     visibility,
		SEOTitle:       req.SEOTitle,
		SEODescription: req.SEODescription,
		SEOKeywords:    req.SEOKeywords,
		Metadata:       req.Metadata,
	}, actor(c), req.ChangeNotes)
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusOK, a)
}

// DeleteArticle godoc
// @ID          deleteArticle
// @Summary     Soft-delete an article
// @Description The row is retained; version history and feedback remain queryable.
// @Tags        Articles
// @Produce     json
//
// @Param       id  path  int  true  "Article ID"
//
// @Success     204  {string}  string "No Content"
// @Failure     404  {object}  handlers.ErrorResponse "Article not found"
// @Router      /articles/{id} [delete]
func (h *Handlers) DeleteArticle(c *gin.Context) {
	id, okID := pathID(c, "id")
	if !okID {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "article id must be a positive integer")
		return
	}
	if err := h.svc.DeleteArticle(c.Request.Context(), id); err != nil {
		failService(c, err)
		return
	}
	noContent(c)
}

// PublishArticle godoc
// @ID          publishArticle
// @Summary     Publish an article
// @Description Sets status to published and refreshes the publication timestamp, also on republish.
// @Tags        Articles
// @Produce     json
//
// @Param       id  path  int  true  "Article ID"
//
// @Success     200  {object}  domain.Article
// @Failure     404  {object}  handlers.ErrorResponse "Article not found"
// @Router      /articles/{id}/publish [post]
func (h *Handlers) PublishArticle(c *gin.Context) {
	id, okID := pathID(c, "id")
	if !okID {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "article id must be a positive integer")
		return
	}
	a, err := h.svc.PublishArticle(c.Request.Context(), id)
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusOK, a)
}

// ArchiveArticle godoc
// @ID          archiveArticle
// @Summary     Archive an article
// @Tags        Articles
// @Produce     json
//
// @Param       id  path  int  true  "Article ID"
//
// @Success     200  {object}  domain.Article
// @Failure     404  {object}  handlers.ErrorResponse "Article not found"
// @Router      /articles/{id}/archive [post]
func (h *Handlers) ArchiveArticle(c *gin.Context) {
	id, okID := pathID(c, "id")
	if !okID {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "article id must be a positive integer")
		return
	}
	a, err := h.svc.ArchiveArticle(c.Request.Context(), id)
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusOK, a)
}

// ListVersions godoc
// @ID          listArticleVersions
// @Summary     List the version history of an article
// @Tags        Versions
// @Produce     json
//
// @Param       id  path  int  true  "Article ID"
//
// @Success     200  {array}   domain.ArticleVersion
// @Failure     404  {object}  handlers.ErrorResponse "Article not found"
// @Router      /articles/{id}/versions [get]
func (h *Handlers) ListVersions(c *gin.Context) {
	id, okID := pathID(c, "id")
	if !okID {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "article id must be a positive integer")
		return
	}
	versions, err := h.svc.ListVersions(c.Request.Context(), id)
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusOK, versions)
}

// GetVersion godoc
// @ID          getArticleVersion
// @Summary     Fetch a single version snapshot
// @Tags        Versions
// @Produce     json
//
// @Param       id      path  int  true  "Article ID"
// @Param       number  path  int  true  "Version number"
//
// @Success     200  {object}  domain.ArticleVersion
// @Failure     404  {object}  handlers.ErrorResponse "Version not found"
// @Router      /articles/{id}/versions/{number} [get]
func (h *Handlers) GetVersion(c *gin.Context) {
	id, okID := pathID(c, "id")
	if !okID {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "article id must be a positive integer")
		return
	}
	number, okNum := utils.ParseUint(c.Param("number"))
	if !okNum || number == 0 {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "version number must be a positive integer")
		return
	}
	v, err := h.svc.GetVersion(c.Request.Context(), id, int(number))
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusOK, v)
}

// ListRelated godoc
// @ID          listRelatedArticles
// @Summary     List the related articles of an article
// @Tags        Relations
// @Produce     json
//
// @Param       id  path  int  true  "Article ID"
//
// @Success     200  {array}   domain.Article
// @Failure     404  {object}  handlers.ErrorResponse "Article not found"
// @Router      /articles/{id}/related [get]
func (h *Handlers) ListRelated(c *gin.Context) {
	id, okID := pathID(c, "id")
	if !okID {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "article id must be a positive integer")
		return
	}
	related, err := h.svc.RelatedArticles(c.Request.Context(), id)
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusOK, related)
}

// RelateArticles godoc
// @ID          relateArticles
// @Summary     Add a related article
// @Description Creates a directional edge; the reverse direction is never implied.
// @Tags        Relations
// @Accept      json
// @Produce     json
//
// @Param       id    path  int  true  "Article ID"
// @Param       body  body  handlers.RelateArticlesRequest  true  "Relation payload"
//
// @Success     201  {object}  domain.ArticleRelation
// @Failure     400  {object}  handlers.ErrorResponse "Invalid payload or self relation"
// @Failure     404  {object}  handlers.ErrorResponse "Article not found"
// @Failure     409  {object}  handlers.ErrorResponse "Relation already exists"
// @Router      /articles/{id}/related [post]
func (h *Handlers) RelateArticles(c *gin.Context) {
	id, okID := pathID(c, "id")
	if !okID {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "article id must be a positive integer")
		return
	}
	var req RelateArticlesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}
	rel, err := h.svc.RelateArticles(c.Request.Context(), id, req.RelatedArticleID, req.SortOrder)
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusCreated, rel)
}

// UnrelateArticles godoc
// @ID          unrelateArticles
// @Summary     Remove a related article
// @Tags        Relations
// @Produce     json
//
// @Param       id         path  int  true  "Article ID"
// @Param       relatedID  path  int  true  "Related article ID"
//
// @Success     204  {string}  string "No Content"
// @Failure     404  {object}  handlers.ErrorResponse "Relation not found"
// @Router      /articles/{id}/related/{relatedID} [delete]
func (h *Handlers) UnrelateArticles(c *gin.Context) {
	id, okID := pathID(c, "id")
	if !okID {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "article id must be a positive integer")
		return
	}
	relatedID, okRel := pathID(c, "relatedID")
	if !okRel {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "related article id must be a positive integer")
		return
	}
	if err := h.svc.UnrelateArticles(c.Request.Context(), id, relatedID); err != nil {
		failService(c, err)
		return
	}
	noContent(c)
}
