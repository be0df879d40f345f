// Category HTTP handlers.
//
// This file exposes REST endpoints for the category hierarchy:
//   - POST   /categories                 (create)
//   - GET    /categories                 (list roots)
//   - GET    /categories/:id             (fetch)
//   - GET    /categories/slug/:slug      (fetch by slug)
//   - PUT    /categories/:id             (update)
//   - DELETE /categories/:id             (soft delete, no cascade)
//   - GET    /categories/:id/children    (direct children)
//   - GET    /categories/:id/articles    (articles in category)
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jeffersongoncalves/go-knowledge-base/internal/services"
)

// CreateCategoryRequest is the JSON payload for creating a category.
type CreateCategoryRequest struct {
	ParentID *uint  `json:"parent_id,omitempty" example:"1"`
	Name     string `json:"name" binding:"required,min=1,max=255" example:"Billing"`
	// Slug is optional; derived from the name when empty.
	Slug        string  `json:"slug,omitempty" example:"billing"`
	Description *string `json:"description,omitempty"`
	Icon        *string `json:"icon,omitempty"`
	Visibility  string  `json:"visibility,omitempty" example:"public"`
	IsActive    *bool   `json:"is_active,omitempty"`
	SortOrder   int     `json:"sort_order" example:"0"`
}

// UpdateCategoryRequest is the JSON payload for updating a category.
// Absent fields are left unchanged.
type UpdateCategoryRequest struct {
	ParentID    *uint   `json:"parent_id,omitempty"`
	Name        *string `json:"name,omitempty"`
	Slug        *string `json:"slug,omitempty"`
	Description *string `json:"description,omitempty"`
	Icon        *string `json:"icon,omitempty"`
	Visibility  *string `json:"visibility,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
	SortOrder   *int    `json:"sort_order,omitempty"`
}

// CreateCategory godoc
// @ID          createCategory
// @Summary     Create a category
// @Tags        Categories
// @Accept      json
// @Produce     json
//
// @Param       body  body  handlers.CreateCategoryRequest  true  "Category payload"
//
// @Success     201  {object}  domain.Category
// @Failure     400  {object}  handlers.ErrorResponse "Invalid payload"
// @Failure     409  {object}  handlers.ErrorResponse "Slug already exists or unknown parent"
// @Router      /categories [post]
func (h *Handlers) CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}
	cat, err := h.svc.CreateCategory(c.Request.Context(), services.CategoryInput{
		ParentID:    req.ParentID,
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		Icon:        req.Icon,
		Visibility:  req.Visibility,
		IsActive:    req.IsActive,
		SortOrder:   req.SortOrder,
	})
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusCreated, cat)
}

// ListCategories godoc
// @ID          listCategories
// @Summary     List root categories
// @Tags        Categories
// @Produce     json
//
// @Param       active  query  bool  false  "Only active categories"  default(true)
//
// @Success     200  {array}  domain.Category
// @Router      /categories [get]
func (h *Handlers) ListCategories(c *gin.Context) {
	roots, err := h.svc.RootCategories(c.Request.Context(), boolQuery(c, "active", true))
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusOK, roots)
}

// GetCategory godoc
// @ID          getCategory
// @Summary     Fetch a category by ID
// @Tags        Categories
// @Produce     json
//
// @Param       id  path  int  true  "Category ID"
//
// @Success     200  {object}  domain.Category
// @Failure     404  {object}  handlers.ErrorResponse "Category not found"
// @Router      /categories/{id} [get]
func (h *Handlers) GetCategory(c *gin.Context) {
	id, okID := pathID(c, "id")
	if !okID {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "category id must be a positive integer")
		return
	}
	cat, err := h.svc.GetCategory(c.Request.Context(), id)
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusOK, cat)
}

// GetCategoryBySlug godoc
// @ID          getCategoryBySlug
// @Summary     Fetch a category by slug
// @Tags        Categories
// @Produce     json
//
// @Param       slug  path  string  true  "Category slug"  example(billing)
//
// @Success     200  {object}  domain.Category
// @Failure     404  {object}  handlers.ErrorResponse "Category not found"
// @Router      /categories/slug/{slug} [get]
func (h *Handlers) GetCategoryBySlug(c *gin.Context) {
	cat, err := h.svc.GetCategoryBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusOK, cat)
}

// UpdateCategory godoc
// @ID          updateCategory
// @Summary     Update a category
// @Tags        Categories
// @Accept      json
// @Produce     json
//
// @Param       id    path  int  true  "Category ID"
// @Param       body  body  handlers.UpdateCategoryRequest  true  "Fields to update"
//
// @Success     200  {object}  domain.Category
// @Failure     400  {object}  handlers.ErrorResponse "Invalid payload"
// @Failure     404  {object}  handlers.ErrorResponse "Category not found"
// @Failure     409  {object}  handlers.ErrorResponse "Slug already exists"
// @Router      /categories/{id} [put]
func (h *Handlers) UpdateCategory(c *gin.Context) {
	id, okID := pathID(c, "id")
	if !okID {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "category id must be a positive integer")
		return
	}
	var req UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}
	cat, err := h.svc.UpdateCategory(c.Request.Context(), id, services.CategoryUpdate{
		ParentID:    req.ParentID,
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		Icon:        req.Icon,
		Visibility:  req.Visibility,
		IsActive:    req.IsActive,
		SortOrder:   req.SortOrder,
	})
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusOK, cat)
}

// DeleteCategory godoc
// @ID          deleteCategory
// @Summary     Soft-delete a category
// @Description Children and articles keep their references; nothing cascades.
// @Tags        Categories
// @Produce     json
//
// @Param       id  path  int  true  "Category ID"
//
// @Success     204  {string}  string "No Content"
// @Failure     404  {object}  handlers.ErrorResponse "Category not found"
// @Router      /categories/{id} [delete]
func (h *Handlers) DeleteCategory(c *gin.Context) {
	id, okID := pathID(c, "id")
	if !okID {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "category id must be a positive integer")
		return
	}
	if err := h.svc.DeleteCategory(c.Request.Context(), id); err != nil {
		failService(c, err)
		return
	}
	noContent(c)
}

// ListChildCategories godoc
// @ID          listChildCategories
// @Summary     List the direct children of a category
// @Tags        Categories
// @Produce     json
//
// @Param       id      path   int   true   "Category ID"
// @Param       active  query  bool  false  "Only active categories"  default(true)
//
// @Success     200  {array}   domain.Category
// @Failure     404  {object}  handlers.ErrorResponse "Category not found"
// @Router      /categories/{id}/children [get]
func (h *Handlers) ListChildCategories(c *gin.Context) {
	id, okID := pathID(c, "id")
	if !okID {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "category id must be a positive integer")
		return
	}
	children, err := h.svc.ChildCategories(c.Request.Context(), id, boolQuery(c, "active", true))
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusOK, children)
}

// ListCategoryArticles godoc
// @ID          listCategoryArticles
// @Summary     List the articles in a category
// @Tags        Categories
// @Produce     json
//
// @Param       id  path  int  true  "Category ID"
//
// @Success     200  {array}   domain.Article
// @Failure     404  {object}  handlers.ErrorResponse "Category not found"
// @Router      /categories/{id}/articles [get]
func (h *Handlers) ListCategoryArticles(c *gin.Context) {
	id, okID := pathID(c, "id")
	if !okID {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "category id must be a positive integer")
		return
	}
	items, err := h.svc.ListArticlesByCategory(c.Request.Context(), id)
	if err != nil {
		failService(c, err)
		return
	}
	ok(c, http.StatusOK, items)
}
