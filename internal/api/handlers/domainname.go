package handlers

import (
	"net/http"

	"github.com/belajarhosting/platform/internal/domain/domainname"
	"github.com/belajarhosting/platform/internal/pkg/errors"
	"github.com/belajarhosting/platform/internal/pkg/logger"
	"github.com/belajarhosting/platform/internal/pkg/utils"
)

// DomainHandler handles domain availability checks
type DomainHandler struct {
	service domainname.Service
	logger  *logger.Logger
}

// NewDomainHandler creates a new domain handler
func NewDomainHandler(service domainname.Service, log *logger.Logger) *DomainHandler {
	return &DomainHandler{service: service, logger: log}
}

// Check checks one fully qualified domain
// @Summary Check domain availability
// @Tags Domains
// @Produce json
// @Param domain query string true "Fully qualified domain, e.g. belajar.id"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse "Unsupported TLD or malformed name"
// @Security BearerAuth
// @Router /domains/check [get]
func (h *DomainHandler) Check(w http.ResponseWriter, r *http.Request) {
	domain := r.URL.Query().Get("domain")
	if domain == "" {
		utils.WriteError(w, errors.BadRequest("domain query parameter is required"))
		return
	}

	result, err := h.service.Check(r.Context(), domain)
	if err != nil {
		utils.WriteAppError(w, err, "Failed to check domain")
		return
	}

	utils.WriteSuccess(w, http.StatusOK, result)
}

// CheckAll checks a bare name against every supported TLD
// @Summary Check a name across all TLDs
// @Tags Domains
// @Produce json
// @Param name query string true "Bare name without TLD, e.g. belajar"
// @Success 200 {object} utils.SuccessResponse
// @Security BearerAuth
// @Router /domains/check-all [get]
func (h *DomainHandler) CheckAll(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		utils.WriteError(w, errors.BadRequest("name query parameter is required"))
		return
	}

	results, err := h.service.CheckAll(r.Context(), name)
	if err != nil {
		utils.WriteAppError(w, err, "Failed to check domains")
		return
	}

	utils.WriteSuccess(w, http.StatusOK, results)
}
