package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/belajarhosting/platform/internal/api/dto"
	"github.com/belajarhosting/platform/internal/api/middleware"
	"github.com/belajarhosting/platform/internal/catalog"
	"github.com/belajarhosting/platform/internal/domain/automation"
	"github.com/belajarhosting/platform/internal/pkg/errors"
	"github.com/belajarhosting/platform/internal/pkg/logger"
	"github.com/belajarhosting/platform/internal/pkg/utils"
	"github.com/belajarhosting/platform/internal/pkg/validator"
)

// AutomationHandler handles n8n automation instance requests
type AutomationHandler struct {
	service   automation.Service
	logger    *logger.Logger
	validator *validator.Validator
}

// NewAutomationHandler creates a new automation handler
func NewAutomationHandler(service automation.Service, log *logger.Logger, val *validator.Validator) *AutomationHandler {
	return &AutomationHandler{service: service, logger: log, validator: val}
}

// List returns the user's automation instances
// @Summary List automation instances
// @Tags Automation
// @Produce json
// @Success 200 {object} utils.PaginatedResponse
// @Security BearerAuth
// @Router /automation [get]
func (h *AutomationHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r)
	p := utils.ParsePaginationParams(r)

	instances, total, err := h.service.List(r.Context(), userID, p.PageSize, p.Offset)
	if err != nil {
		utils.WriteAppError(w, err, "Failed to list automation instances")
		return
	}

	writePage(w, instances, p, total)
}

// Get returns one automation instance
// @Summary Get automation instance
// @Tags Automation
// @Produce json
// @Param id path int true "Instance ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /automation/{id} [get]
func (h *AutomationHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r)
	id, err := idParam(r)
	if err != nil {
		utils.WriteAppError(w, err, "Invalid id")
		return
	}

	instance, err := h.service.Get(r.Context(), userID, id)
	if err != nil {
		utils.WriteAppError(w, err, "Failed to get automation instance")
		return
	}

	utils.WriteSuccess(w, http.StatusOK, instance)
}

// Deploy creates a pending automation instance and its order
// @Summary Deploy automation instance
// @Tags Automation
// @Accept json
// @Produce json
// @Param request body dto.AutomationDeployRequest true "Order form"
// @Success 201 {object} dto.DeployResponse
// @Failure 400 {object} utils.ErrorResponse "Validation failed"
// @Failure 402 {object} utils.ErrorResponse "Insufficient credit"
// @Failure 409 {object} utils.ErrorResponse "Subdomain taken"
// @Security BearerAuth
// @Router /automation [post]
func (h *AutomationHandler) Deploy(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r)

	var req dto.AutomationDeployRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}

	if validationErrs := h.validator.Validate(req); len(validationErrs) > 0 {
		utils.WriteError(w, errors.ValidationError("Validation failed", validationErrs))
		return
	}

	instance, ord, err := h.service.Deploy(r.Context(), userID, automation.DeployInput{
		Name:          req.Name,
		Subdomain:     req.Subdomain,
		PlanID:        req.PlanID,
		LocationID:    req.LocationID,
		AdminEmail:    req.AdminEmail,
		AdminPassword: req.AdminPassword,
		BillingCycle:  catalog.BillingCycle(req.BillingCycle),
	})
	if err != nil {
		utils.WriteAppError(w, err, "Failed to deploy automation instance")
		return
	}

	utils.WriteSuccess(w, http.StatusCreated, dto.DeployResponse{Instance: instance, Order: ord})
}

// Delete removes an automation instance
// @Summary Delete automation instance
// @Tags Automation
// @Param id path int true "Instance ID"
// @Success 200 {object} utils.SuccessResponse
// @Security BearerAuth
// @Router /automation/{id} [delete]
func (h *AutomationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r)
	id, err := idParam(r)
	if err != nil {
		utils.WriteAppError(w, err, "Invalid id")
		return
	}

	if err := h.service.Delete(r.Context(), userID, id); err != nil {
		utils.WriteAppError(w, err, "Failed to delete automation instance")
		return
	}

	utils.WriteSuccessWithMessage(w, http.StatusOK, "Automation instance deleted", nil)
}
