package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/belajarhosting/platform/internal/api/dto"
	"github.com/belajarhosting/platform/internal/api/middleware"
	"github.com/belajarhosting/platform/internal/domain/blog"
	"github.com/belajarhosting/platform/internal/pkg/errors"
	"github.com/belajarhosting/platform/internal/pkg/logger"
	"github.com/belajarhosting/platform/internal/pkg/utils"
	"github.com/belajarhosting/platform/internal/pkg/validator"
)

// BlogHandler handles public blog reads and admin CMS operations
type BlogHandler struct {
	service   blog.Service
	logger    *logger.Logger
	validator *validator.Validator
}

// NewBlogHandler creates a new blog handler
func NewBlogHandler(service blog.Service, log *logger.Logger, val *validator.Validator) *BlogHandler {
	return &BlogHandler{service: service, logger: log, validator: val}
}

// List returns published posts for the public site
// @Summary List published posts
// @Tags Blogs
// @Produce json
// @Param page query int false "Page number"
// @Param category query string false "Filter by category"
// @Param search query string false "Search title and content"
// @Success 200 {object} utils.PaginatedResponse
// @Router /blogs [get]
func (h *BlogHandler) List(w http.ResponseWriter, r *http.Request) {
	p := utils.ParsePaginationParams(r)
	q := r.URL.Query()

	posts, total, err := h.service.ListPublished(r.Context(), blog.Filter{
		Category: q.Get("category"),
		Search:   q.Get("search"),
	}, p.PageSize, p.Offset)
	if err != nil {
		utils.WriteAppError(w, err, "Failed to list posts")
		return
	}

	writePage(w, posts, p, total)
}

// GetBySlug returns one published post
// @Summary Get published post by slug
// @Tags Blogs
// @Produce json
// @Param slug path string true "Post slug"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse "Unknown slug or unpublished draft"
// @Router /blogs/{slug} [get]
func (h *BlogHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	post, err := h.service.GetPublishedBySlug(r.Context(), slug)
	if err != nil {
		utils.WriteAppError(w, err, "Failed to get post")
		return
	}

	utils.WriteSuccess(w, http.StatusOK, post)
}

// AdminList returns all posts, drafts included
// @Summary List all posts
// @Tags Admin
// @Produce json
// @Success 200 {object} utils.PaginatedResponse
// @Security BearerAuth
// @Router /admin/blogs [get]
func (h *BlogHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	p := utils.ParsePaginationParams(r)
	q := r.URL.Query()

	posts, total, err := h.service.ListAll(r.Context(), blog.Filter{
		Category: q.Get("category"),
		Search:   q.Get("search"),
	}, p.PageSize, p.Offset)
	if err != nil {
		utils.WriteAppError(w, err, "Failed to list posts")
		return
	}

	writePage(w, posts, p, total)
}

// AdminGet returns one post by id, drafts included
// @Summary Get post
// @Tags Admin
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} utils.SuccessResponse
// @Security BearerAuth
// @Router /admin/blogs/{id} [get]
func (h *BlogHandler) AdminGet(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		utils.WriteAppError(w, err, "Invalid id")
		return
	}

	post, err := h.service.Get(r.Context(), id)
	if err != nil {
		utils.WriteAppError(w, err, "Failed to get post")
		return
	}

	utils.WriteSuccess(w, http.StatusOK, post)
}

// Create creates a post, deriving its slug from the title
// @Summary Create post
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body dto.BlogCreateRequest true "Post content"
// @Success 201 {object} utils.SuccessResponse
// @Failure 409 {object} utils.ErrorResponse "Duplicate slug"
// @Security BearerAuth
// @Router /admin/blogs [post]
func (h *BlogHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r)

	var req dto.BlogCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}

	if validationErrs := h.validator.Validate(req); len(validationErrs) > 0 {
		utils.WriteError(w, errors.ValidationError("Validation failed", validationErrs))
		return
	}

	post, err := h.service.Create(r.Context(), userID, &blog.Post{
		Title:     req.Title,
		Category:  req.Category,
		Excerpt:   req.Excerpt,
		Content:   req.Content,
		Published: req.Published,
	})
	if err != nil {
		utils.WriteAppError(w, err, "Failed to create post")
		return
	}

	utils.WriteSuccess(w, http.StatusCreated, post)
}

// Update updates a post's fields; empty fields are left unchanged
// @Summary Update post
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path int true "Post ID"
// @Param request body dto.BlogUpdateRequest true "Fields to change"
// @Success 200 {object} utils.SuccessResponse
// @Security BearerAuth
// @Router /admin/blogs/{id} [put]
func (h *BlogHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		utils.WriteAppError(w, err, "Invalid id")
		return
	}

	var req dto.BlogUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}

	post := &blog.Post{
		ID:       id,
		Title:    req.Title,
		Category: req.Category,
		Excerpt:  req.Excerpt,
		Content:  req.Content,
	}
	if err := h.service.Update(r.Context(), post); err != nil {
		utils.WriteAppError(w, err, "Failed to update post")
		return
	}

	utils.WriteSuccessWithMessage(w, http.StatusOK, "Post updated", nil)
}

// SetPublished toggles a post's published flag
// @Summary Publish or unpublish post
// @Tags Admin
// @Accept json
// @Param id path int true "Post ID"
// @Param request body dto.PublishRequest true "Published flag"
// @Success 200 {object} utils.SuccessResponse
// @Security BearerAuth
// @Router /admin/blogs/{id}/publish [patch]
func (h *BlogHandler) SetPublished(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		utils.WriteAppError(w, err, "Invalid id")
		return
	}

	var req dto.PublishRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}

	if validationErrs := h.validator.Validate(req); len(validationErrs) > 0 {
		utils.WriteError(w, errors.ValidationError("Validation failed", validationErrs))
		return
	}

	if err := h.service.SetPublished(r.Context(), id, *req.Published); err != nil {
		utils.WriteAppError(w, err, "Failed to update post")
		return
	}

	utils.WriteSuccessWithMessage(w, http.StatusOK, "Post updated", nil)
}

// Delete removes a post
// @Summary Delete post
// @Tags Admin
// @Param id path int true "Post ID"
// @Success 200 {object} utils.SuccessResponse
// @Security BearerAuth
// @Router /admin/blogs/{id} [delete]
func (h *BlogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		utils.WriteAppError(w, err, "Invalid id")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		utils.WriteAppError(w, err, "Failed to delete post")
		return
	}

	utils.WriteSuccessWithMessage(w, http.StatusOK, "Post deleted", nil)
}
