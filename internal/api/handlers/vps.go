package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/belajarhosting/platform/internal/api/dto"
	"github.com/belajarhosting/platform/internal/api/middleware"
	"github.com/belajarhosting/platform/internal/catalog"
	"github.com/belajarhosting/platform/internal/domain/vps"
	"github.com/belajarhosting/platform/internal/pkg/errors"
	"github.com/belajarhosting/platform/internal/pkg/logger"
	"github.com/belajarhosting/platform/internal/pkg/utils"
	"github.com/belajarhosting/platform/internal/pkg/validator"
)

// VPSHandler handles VPS instance requests
type VPSHandler struct {
	service   vps.Service
	logger    *logger.Logger
	validator *validator.Validator
}

// NewVPSHandler creates a new VPS handler
func NewVPSHandler(service vps.Service, log *logger.Logger, val *validator.Validator) *VPSHandler {
	return &VPSHandler{service: service, logger: log, validator: val}
}

// List returns the user's VPS instances
// @Summary List VPS instances
// @Tags VPS
// @Produce json
// @Param page query int false "Page number"
// @Param page_size query int false "Items per page"
// @Success 200 {object} utils.PaginatedResponse
// @Security BearerAuth
// @Router /vps [get]
func (h *VPSHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r)
	p := utils.ParsePaginationParams(r)

	instances, total, err := h.service.List(r.Context(), userID, p.PageSize, p.Offset)
	if err != nil {
		utils.WriteAppError(w, err, "Failed to list instances")
		return
	}

	writePage(w, instances, p, total)
}

// Get returns one VPS instance
// @Summary Get VPS instance
// @Tags VPS
// @Produce json
// @Param id path int true "Instance ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /vps/{id} [get]
func (h *VPSHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r)
	id, err := idParam(r)
	if err != nil {
		utils.WriteAppError(w, err, "Invalid id")
		return
	}

	instance, err := h.service.Get(r.Context(), userID, id)
	if err != nil {
		utils.WriteAppError(w, err, "Failed to get instance")
		return
	}

	utils.WriteSuccess(w, http.StatusOK, instance)
}

// Deploy creates a pending VPS instance and its order
// @Summary Deploy a VPS
// @Description Validates the order form, charges credits and creates a pending instance plus order
// @Tags VPS
// @Accept json
// @Produce json
// @Param request body dto.VPSDeployRequest true "Order form"
// @Success 201 {object} dto.DeployResponse
// @Failure 400 {object} utils.ErrorResponse "Validation failed"
// @Failure 402 {object} utils.ErrorResponse "Insufficient credit"
// @Security BearerAuth
// @Router /vps [post]
func (h *VPSHandler) Deploy(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r)

	var req dto.VPSDeployRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}

	if validationErrs := h.validator.Validate(req); len(validationErrs) > 0 {
		utils.WriteError(w, errors.ValidationError("Validation failed", validationErrs))
		return
	}

	instance, ord, err := h.service.Deploy(r.Context(), userID, vps.DeployInput{
		Hostname:     req.Hostname,
		PlanID:       req.PlanID,
		LocationID:   req.LocationID,
		ImageID:      req.ImageID,
		RootPassword: req.RootPassword,
		BillingCycle: catalog.BillingCycle(req.BillingCycle),
	})
	if err != nil {
		utils.WriteAppError(w, err, "Failed to deploy instance")
		return
	}

	utils.WriteSuccess(w, http.StatusCreated, dto.DeployResponse{Instance: instance, Order: ord})
}

// Start starts a stopped instance
// @Summary Start VPS
// @Tags VPS
// @Param id path int true "Instance ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 409 {object} utils.ErrorResponse "Not startable in current state"
// @Security BearerAuth
// @Router /vps/{id}/start [post]
func (h *VPSHandler) Start(w http.ResponseWriter, r *http.Request) {
	h.lifecycle(w, r, "start", h.service.Start)
}

// Stop stops a running instance
// @Summary Stop VPS
// @Tags VPS
// @Param id path int true "Instance ID"
// @Success 200 {object} utils.SuccessResponse
// @Security BearerAuth
// @Router /vps/{id}/stop [post]
func (h *VPSHandler) Stop(w http.ResponseWriter, r *http.Request) {
	h.lifecycle(w, r, "stop", h.service.Stop)
}

// Restart restarts a running instance
// @Summary Restart VPS
// @Tags VPS
// @Param id path int true "Instance ID"
// @Success 200 {object} utils.SuccessResponse
// @Security BearerAuth
// @Router /vps/{id}/restart [post]
func (h *VPSHandler) Restart(w http.ResponseWriter, r *http.Request) {
	h.lifecycle(w, r, "restart", h.service.Restart)
}

func (h *VPSHandler) lifecycle(
	w http.ResponseWriter,
	r *http.Request,
	action string,
	fn func(ctx context.Context, userID, id int64) error,
) {
	userID, _ := middleware.GetUserID(r)
	id, err := idParam(r)
	if err != nil {
		utils.WriteAppError(w, err, "Invalid id")
		return
	}

	if err := fn(r.Context(), userID, id); err != nil {
		utils.WriteAppError(w, err, "Failed to "+action+" instance")
		return
	}

	h.logger.WithFields(map[string]interface{}{
		"user_id":     userID,
		"instance_id": id,
		"action":      action,
	}).Info("VPS lifecycle action")

	utils.WriteSuccessWithMessage(w, http.StatusOK, "Instance "+action+" requested", nil)
}

// Reinstall wipes an instance with a fresh image
// @Summary Reinstall VPS
// @Tags VPS
// @Accept json
// @Param id path int true "Instance ID"
// @Param request body dto.VPSReinstallRequest true "Image and root password"
// @Success 200 {object} utils.SuccessResponse
// @Security BearerAuth
// @Router /vps/{id}/reinstall [post]
func (h *VPSHandler) Reinstall(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r)
	id, err := idParam(r)
	if err != nil {
		utils.WriteAppError(w, err, "Invalid id")
		return
	}

	var req dto.VPSReinstallRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}

	if validationErrs := h.validator.Validate(req); len(validationErrs) > 0 {
		utils.WriteError(w, errors.ValidationError("Validation failed", validationErrs))
		return
	}

	err = h.service.Reinstall(r.Context(), userID, id, vps.ReinstallInput{
		ImageID:      req.ImageID,
		RootPassword: req.RootPassword,
	})
	if err != nil {
		utils.WriteAppError(w, err, "Failed to reinstall instance")
		return
	}

	utils.WriteSuccessWithMessage(w, http.StatusOK, "Reinstall started", nil)
}

// Delete terminates an instance
// @Summary Terminate VPS
// @Tags VPS
// @Param id path int true "Instance ID"
// @Success 200 {object} utils.SuccessResponse
// @Security BearerAuth
// @Router /vps/{id} [delete]
func (h *VPSHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r)
	id, err := idParam(r)
	if err != nil {
		utils.WriteAppError(w, err, "Invalid id")
		return
	}

	if err := h.service.Terminate(r.Context(), userID, id); err != nil {
		utils.WriteAppError(w, err, "Failed to terminate instance")
		return
	}

	utils.WriteSuccessWithMessage(w, http.StatusOK, "Instance terminated", nil)
}
