package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/belajarhosting/platform/internal/api/dto"
	"github.com/belajarhosting/platform/internal/domain/class"
	"github.com/belajarhosting/platform/internal/pkg/errors"
	"github.com/belajarhosting/platform/internal/pkg/logger"
	"github.com/belajarhosting/platform/internal/pkg/utils"
	"github.com/belajarhosting/platform/internal/pkg/validator"
)

// ClassHandler handles the education side's class catalog
type ClassHandler struct {
	service   class.Service
	logger    *logger.Logger
	validator *validator.Validator
}

// NewClassHandler creates a new class handler
func NewClassHandler(service class.Service, log *logger.Logger, val *validator.Validator) *ClassHandler {
	return &ClassHandler{service: service, logger: log, validator: val}
}

// List returns published classes for the public catalog
// @Summary List published classes
// @Tags Classes
// @Produce json
// @Success 200 {object} utils.PaginatedResponse
// @Router /classes [get]
func (h *ClassHandler) List(w http.ResponseWriter, r *http.Request) {
	p := utils.ParsePaginationParams(r)

	classes, total, err := h.service.ListPublished(r.Context(), p.PageSize, p.Offset)
	if err != nil {
		utils.WriteAppError(w, err, "Failed to list classes")
		return
	}

	writePage(w, classes, p, total)
}

// AdminList returns all classes, unpublished included
// @Summary List all classes
// @Tags Admin
// @Produce json
// @Success 200 {object} utils.PaginatedResponse
// @Security BearerAuth
// @Router /admin/classes [get]
func (h *ClassHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	p := utils.ParsePaginationParams(r)

	classes, total, err := h.service.ListAll(r.Context(), p.PageSize, p.Offset)
	if err != nil {
		utils.WriteAppError(w, err, "Failed to list classes")
		return
	}

	writePage(w, classes, p, total)
}

// Create creates a class
// @Summary Create class
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body dto.ClassRequest true "Class"
// @Success 201 {object} utils.SuccessResponse
// @Security BearerAuth
// @Router /admin/classes [post]
func (h *ClassHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.ClassRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}

	if validationErrs := h.validator.Validate(req); len(validationErrs) > 0 {
		utils.WriteError(w, errors.ValidationError("Validation failed", validationErrs))
		return
	}

	c, err := h.service.Create(r.Context(), &class.Class{
		Title:       req.Title,
		Description: req.Description,
		Level:       req.Level,
		PriceIDR:    req.PriceIDR,
		Published:   req.Published,
	})
	if err != nil {
		utils.WriteAppError(w, err, "Failed to create class")
		return
	}

	utils.WriteSuccess(w, http.StatusCreated, c)
}

// Update updates a class
// @Summary Update class
// @Tags Admin
// @Accept json
// @Param id path int true "Class ID"
// @Param request body dto.ClassRequest true "Class"
// @Success 200 {object} utils.SuccessResponse
// @Security BearerAuth
// @Router /admin/classes/{id} [put]
func (h *ClassHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		utils.WriteAppError(w, err, "Invalid id")
		return
	}

	var req dto.ClassRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}

	if validationErrs := h.validator.Validate(req); len(validationErrs) > 0 {
		utils.WriteError(w, errors.ValidationError("Validation failed", validationErrs))
		return
	}

	c := &class.Class{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Level:       req.Level,
		PriceIDR:    req.PriceIDR,
		Published:   req.Published,
	}
	if err := h.service.Update(r.Context(), c); err != nil {
		utils.WriteAppError(w, err, "Failed to update class")
		return
	}

	utils.WriteSuccessWithMessage(w, http.StatusOK, "Class updated", nil)
}

// Delete removes a class
// @Summary Delete class
// @Tags Admin
// @Param id path int true "Class ID"
// @Success 200 {object} utils.SuccessResponse
// @Security BearerAuth
// @Router /admin/classes/{id} [delete]
func (h *ClassHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		utils.WriteAppError(w, err, "Invalid id")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		utils.WriteAppError(w, err, "Failed to delete class")
		return
	}

	utils.WriteSuccessWithMessage(w, http.StatusOK, "Class deleted", nil)
}
