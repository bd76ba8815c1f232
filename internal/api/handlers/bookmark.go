package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/belajarhosting/platform/internal/api/dto"
	"github.com/belajarhosting/platform/internal/api/middleware"
	"github.com/belajarhosting/platform/internal/domain/bookmark"
	"github.com/belajarhosting/platform/internal/pkg/errors"
	"github.com/belajarhosting/platform/internal/pkg/logger"
	"github.com/belajarhosting/platform/internal/pkg/utils"
	"github.com/belajarhosting/platform/internal/pkg/validator"
)

// BookmarkHandler handles per-user bookmark requests
type BookmarkHandler struct {
	service   bookmark.Service
	logger    *logger.Logger
	validator *validator.Validator
}

// NewBookmarkHandler creates a new bookmark handler
func NewBookmarkHandler(service bookmark.Service, log *logger.Logger, val *validator.Validator) *BookmarkHandler {
	return &BookmarkHandler{service: service, logger: log, validator: val}
}

// List returns the user's bookmarks
// @Summary List bookmarks
// @Tags Bookmarks
// @Produce json
// @Success 200 {object} utils.PaginatedResponse
// @Security BearerAuth
// @Router /bookmarks [get]
func (h *BookmarkHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r)
	p := utils.ParsePaginationParams(r)

	bookmarks, total, err := h.service.List(r.Context(), userID, p.PageSize, p.Offset)
	if err != nil {
		utils.WriteAppError(w, err, "Failed to list bookmarks")
		return
	}

	writePage(w, bookmarks, p, total)
}

// Create saves a new bookmark
// @Summary Create bookmark
// @Tags Bookmarks
// @Accept json
// @Produce json
// @Param request body dto.BookmarkRequest true "Bookmark"
// @Success 201 {object} utils.SuccessResponse
// @Security BearerAuth
// @Router /bookmarks [post]
func (h *BookmarkHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r)

	var req dto.BookmarkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}

	if validationErrs := h.validator.Validate(req); len(validationErrs) > 0 {
		utils.WriteError(w, errors.ValidationError("Validation failed", validationErrs))
		return
	}

	b, err := h.service.Create(r.Context(), userID, req.Title, req.URL, req.Category)
	if err != nil {
		utils.WriteAppError(w, err, "Failed to create bookmark")
		return
	}

	utils.WriteSuccess(w, http.StatusCreated, b)
}

// Update updates a bookmark
// @Summary Update bookmark
// @Tags Bookmarks
// @Accept json
// @Param id path int true "Bookmark ID"
// @Param request body dto.BookmarkRequest true "Bookmark"
// @Success 200 {object} utils.SuccessResponse
// @Security BearerAuth
// @Router /bookmarks/{id} [put]
func (h *BookmarkHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r)
	id, err := idParam(r)
	if err != nil {
		utils.WriteAppError(w, err, "Invalid id")
		return
	}

	var req dto.BookmarkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}

	if validationErrs := h.validator.Validate(req); len(validationErrs) > 0 {
		utils.WriteError(w, errors.ValidationError("Validation failed", validationErrs))
		return
	}

	b := &bookmark.Bookmark{
		ID:       id,
		Title:    req.Title,
		URL:      req.URL,
		Category: req.Category,
	}
	if err := h.service.Update(r.Context(), userID, b); err != nil {
		utils.WriteAppError(w, err, "Failed to update bookmark")
		return
	}

	utils.WriteSuccessWithMessage(w, http.StatusOK, "Bookmark updated", nil)
}

// Delete removes a bookmark
// @Summary Delete bookmark
// @Tags Bookmarks
// @Param id path int true "Bookmark ID"
// @Success 200 {object} utils.SuccessResponse
// @Security BearerAuth
// @Router /bookmarks/{id} [delete]
func (h *BookmarkHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r)
	id, err := idParam(r)
	if err != nil {
		utils.WriteAppError(w, err, "Invalid id")
		return
	}

	if err := h.service.Delete(r.Context(), userID, id); err != nil {
		utils.WriteAppError(w, err, "Failed to delete bookmark")
		return
	}

	utils.WriteSuccessWithMessage(w, http.StatusOK, "Bookmark deleted", nil)
}
