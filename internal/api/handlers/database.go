package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/belajarhosting/platform/internal/api/dto"
	"github.com/belajarhosting/platform/internal/api/middleware"
	"github.com/belajarhosting/platform/internal/catalog"
	"github.com/belajarhosting/platform/internal/domain/database"
	"github.com/belajarhosting/platform/internal/pkg/errors"
	"github.com/belajarhosting/platform/internal/pkg/logger"
	"github.com/belajarhosting/platform/internal/pkg/utils"
	"github.com/belajarhosting/platform/internal/pkg/validator"
)

// DatabaseHandler handles managed database requests
type DatabaseHandler struct {
	service   database.Service
	logger    *logger.Logger
	validator *validator.Validator
}

// NewDatabaseHandler creates a new database handler
func NewDatabaseHandler(service database.Service, log *logger.Logger, val *validator.Validator) *DatabaseHandler {
	return &DatabaseHandler{service: service, logger: log, validator: val}
}

// List returns the user's database instances
// @Summary List databases
// @Tags Databases
// @Produce json
// @Success 200 {object} utils.PaginatedResponse
// @Security BearerAuth
// @Router /databases [get]
func (h *DatabaseHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r)
	p := utils.ParsePaginationParams(r)

	instances, total, err := h.service.List(r.Context(), userID, p.PageSize, p.Offset)
	if err != nil {
		utils.WriteAppError(w, err, "Failed to list databases")
		return
	}

	writePage(w, instances, p, total)
}

// Get returns one database instance
// @Summary Get database
// @Tags Databases
// @Produce json
// @Param id path int true "Instance ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /databases/{id} [get]
func (h *DatabaseHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r)
	id, err := idParam(r)
	if err != nil {
		utils.WriteAppError(w, err, "Invalid id")
		return
	}

	instance, err := h.service.Get(r.Context(), userID, id)
	if err != nil {
		utils.WriteAppError(w, err, "Failed to get database")
		return
	}

	utils.WriteSuccess(w, http.StatusOK, instance)
}

// Deploy creates a pending database instance and its order
// @Summary Deploy database
// @Tags Databases
// @Accept json
// @Produce json
// @Param request body dto.DatabaseDeployRequest true "Order form"
// @Success 201 {object} dto.DeployResponse
// @Failure 400 {object} utils.ErrorResponse "Validation failed"
// @Failure 402 {object} utils.ErrorResponse "Insufficient credit"
// @Security BearerAuth
// @Router /databases [post]
func (h *DatabaseHandler) Deploy(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r)

	var req dto.DatabaseDeployRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}

	if validationErrs := h.validator.Validate(req); len(validationErrs) > 0 {
		utils.WriteError(w, errors.ValidationError("Validation failed", validationErrs))
		return
	}

	instance, ord, err := h.service.Deploy(r.Context(), userID, database.DeployInput{
		Name:         req.Name,
		EngineID:     req.EngineID,
		Version:      req.Version,
		PlanID:       req.PlanID,
		LocationID:   req.LocationID,
		DatabaseName: req.DatabaseName,
		DatabaseUser: req.DatabaseUser,
		Password:     req.Password,
		BillingCycle: catalog.BillingCycle(req.BillingCycle),
	})
	if err != nil {
		utils.WriteAppError(w, err, "Failed to deploy database")
		return
	}

	utils.WriteSuccess(w, http.StatusCreated, dto.DeployResponse{Instance: instance, Order: ord})
}

// Delete removes a database instance
// @Summary Delete database
// @Tags Databases
// @Param id path int true "Instance ID"
// @Success 200 {object} utils.SuccessResponse
// @Security BearerAuth
// @Router /databases/{id} [delete]
func (h *DatabaseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r)
	id, err := idParam(r)
	if err != nil {
		utils.WriteAppError(w, err, "Invalid id")
		return
	}

	if err := h.service.Delete(r.Context(), userID, id); err != nil {
		utils.WriteAppError(w, err, "Failed to delete database")
		return
	}

	utils.WriteSuccessWithMessage(w, http.StatusOK, "Database deleted", nil)
}
