package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/belajarhosting/platform/internal/api/dto"
	"github.com/belajarhosting/platform/internal/api/middleware"
	"github.com/belajarhosting/platform/internal/catalog"
	"github.com/belajarhosting/platform/internal/domain/hosting"
	"github.com/belajarhosting/platform/internal/pkg/errors"
	"github.com/belajarhosting/platform/internal/pkg/logger"
	"github.com/belajarhosting/platform/internal/pkg/utils"
	"github.com/belajarhosting/platform/internal/pkg/validator"
)

// HostingHandler handles managed hosting requests
type HostingHandler struct {
	service   hosting.Service
	logger    *logger.Logger
	validator *validator.Validator
}

// NewHostingHandler creates a new hosting handler
func NewHostingHandler(service hosting.Service, log *logger.Logger, val *validator.Validator) *HostingHandler {
	return &HostingHandler{service: service, logger: log, validator: val}
}

// List returns the user's hosting sites
// @Summary List hosting sites
// @Tags Hosting
// @Produce json
// @Success 200 {object} utils.PaginatedResponse
// @Security BearerAuth
// @Router /hosting [get]
func (h *HostingHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r)
	p := utils.ParsePaginationParams(r)

	sites, total, err := h.service.List(r.Context(), userID, p.PageSize, p.Offset)
	if err != nil {
		utils.WriteAppError(w, err, "Failed to list hosting sites")
		return
	}

	writePage(w, sites, p, total)
}

// Get returns one hosting site
// @Summary Get hosting site
// @Tags Hosting
// @Produce json
// @Param id path int true "Site ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /hosting/{id} [get]
func (h *HostingHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r)
	id, err := idParam(r)
	if err != nil {
		utils.WriteAppError(w, err, "Invalid id")
		return
	}

	site, err := h.service.Get(r.Context(), userID, id)
	if err != nil {
		utils.WriteAppError(w, err, "Failed to get hosting site")
		return
	}

	utils.WriteSuccess(w, http.StatusOK, site)
}

// Deploy creates a pending hosting site and its order
// @Summary Deploy hosting
// @Tags Hosting
// @Accept json
// @Produce json
// @Param request body dto.HostingDeployRequest true "Order form"
// @Success 201 {object} dto.DeployResponse
// @Failure 400 {object} utils.ErrorResponse "Validation failed"
// @Failure 402 {object} utils.ErrorResponse "Insufficient credit"
// @Security BearerAuth
// @Router /hosting [post]
func (h *HostingHandler) Deploy(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r)

	var req dto.HostingDeployRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}

	if validationErrs := h.validator.Validate(req); len(validationErrs) > 0 {
		utils.WriteError(w, errors.ValidationError("Validation failed", validationErrs))
		return
	}

	site, ord, err := h.service.Deploy(r.Context(), userID, hosting.DeployInput{
		DomainName:    req.DomainName,
		PlanID:        req.PlanID,
		LocationID:    req.LocationID,
		Subdomains:    req.Subdomains,
		AdminEmail:    req.AdminEmail,
		AdminPassword: req.AdminPassword,
		BillingCycle:  catalog.BillingCycle(req.BillingCycle),
	})
	if err != nil {
		utils.WriteAppError(w, err, "Failed to deploy hosting site")
		return
	}

	utils.WriteSuccess(w, http.StatusCreated, dto.DeployResponse{Instance: site, Order: ord})
}

// SetSubdomains replaces a site's subdomain list within the plan limit
// @Summary Update subdomains
// @Tags Hosting
// @Accept json
// @Produce json
// @Param id path int true "Site ID"
// @Param request body dto.SubdomainsRequest true "Subdomain list"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse "Over plan limit"
// @Security BearerAuth
// @Router /hosting/{id}/subdomains [put]
func (h *HostingHandler) SetSubdomains(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r)
	id, err := idParam(r)
	if err != nil {
		utils.WriteAppError(w, err, "Invalid id")
		return
	}

	var req dto.SubdomainsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}

	site, err := h.service.SetSubdomains(r.Context(), userID, id, req.Subdomains)
	if err != nil {
		utils.WriteAppError(w, err, "Failed to update subdomains")
		return
	}

	utils.WriteSuccess(w, http.StatusOK, site)
}

// Delete removes a hosting site
// @Summary Delete hosting site
// @Tags Hosting
// @Param id path int true "Site ID"
// @Success 200 {object} utils.SuccessResponse
// @Security BearerAuth
// @Router /hosting/{id} [delete]
func (h *HostingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r)
	id, err := idParam(r)
	if err != nil {
		utils.WriteAppError(w, err, "Invalid id")
		return
	}

	if err := h.service.Delete(r.Context(), userID, id); err != nil {
		utils.WriteAppError(w, err, "Failed to delete hosting site")
		return
	}

	utils.WriteSuccessWithMessage(w, http.StatusOK, "Hosting site deleted", nil)
}
