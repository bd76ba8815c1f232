package handlers

import (
	"net/http"

	"github.com/belajarhosting/platform/internal/catalog"
	"github.com/belajarhosting/platform/internal/pkg/utils"
)

// CatalogHandler serves the hard-coded sales catalog
type CatalogHandler struct{}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// Full returns the complete catalog the order forms render from
// @Summary Full sales catalog
// @Tags Catalog
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /catalog [get]
func (h *CatalogHandler) Full(w http.ResponseWriter, r *http.Request) {
	utils.WriteSuccess(w, http.StatusOK, map[string]interface{}{
		"locations":        catalog.Locations,
		"images":           catalog.Images,
		"vps_plans":        catalog.VPSPlans,
		"hosting_plans":    catalog.HostingPlans,
		"database_engines": catalog.DatabaseEngines,
		"database_plans":   catalog.DatabasePlans,
		"automation_plans": catalog.AutomationPlans,
		"tld_prices":       catalog.TLDPrices,
	})
}

// Locations returns available deployment regions
// @Summary Deployment locations
// @Tags Catalog
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /catalog/locations [get]
func (h *CatalogHandler) Locations(w http.ResponseWriter, r *http.Request) {
	utils.WriteSuccess(w, http.StatusOK, catalog.Locations)
}

// VPSPlans returns the VPS plan table
// @Summary VPS plans
// @Tags Catalog
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /catalog/vps-plans [get]
func (h *CatalogHandler) VPSPlans(w http.ResponseWriter, r *http.Request) {
	utils.WriteSuccess(w, http.StatusOK, catalog.VPSPlans)
}

// HostingPlans returns the hosting plan table
// @Summary Hosting plans
// @Tags Catalog
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /catalog/hosting-plans [get]
func (h *CatalogHandler) HostingPlans(w http.ResponseWriter, r *http.Request) {
	utils.WriteSuccess(w, http.StatusOK, catalog.HostingPlans)
}

// DatabaseEngines returns supported engines with their version lists
// @Summary Database engines
// @Tags Catalog
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /catalog/database-engines [get]
func (h *CatalogHandler) DatabaseEngines(w http.ResponseWriter, r *http.Request) {
	utils.WriteSuccess(w, http.StatusOK, catalog.DatabaseEngines)
}
