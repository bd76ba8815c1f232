package client

import (
	"context"
	"net/http"
)

// CatalogService fetches the sales catalog. The catalog is static per server
// release, so callers can cache responses for the process lifetime.
type CatalogService struct {
	client *Client
}

// Location is a datacenter region
type Location struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	City    string `json:"city"`
	Country string `json:"country"`
}

// Image is an OS image offered for VPS deploys
type Image struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// VPSPlan is a priced VPS tier
type VPSPlan struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	CPU             int    `json:"cpu"`
	MemoryGB        int    `json:"memory_gb"`
	StorageGB       int    `json:"storage_gb"`
	MonthlyPriceIDR int64  `json:"monthly_price_idr"`
}

// HostingPlan is a priced managed hosting tier
type HostingPlan struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	StorageGB       int    `json:"storage_gb"`
	SubdomainLimit  int    `json:"subdomain_limit"`
	MonthlyPriceIDR int64  `json:"monthly_price_idr"`
}

// DatabaseEngine is a managed database engine with its offered versions
type DatabaseEngine struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Versions []string `json:"versions"`
}

// DatabasePlan is a priced managed database tier
type DatabasePlan struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	CPU             int    `json:"cpu"`
	MemoryGB        int    `json:"memory_gb"`
	StorageGB       int    `json:"storage_gb"`
	MonthlyPriceIDR int64  `json:"monthly_price_idr"`
}

// AutomationPlan is a priced n8n tier
type AutomationPlan struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	ActiveWorkflows  int    `json:"active_workflows"`
	ExecutionsPerDay int    `json:"executions_per_day"`
	MonthlyPriceIDR  int64  `json:"monthly_price_idr"`
}

// TLDPrice is the yearly registration price for one TLD
type TLDPrice struct {
	TLD            string `json:"tld"`
	YearlyPriceIDR int64  `json:"yearly_price_idr"`
}

// Catalog is the full sales catalog
type Catalog struct {
	Locations       []Location       `json:"locations"`
	Images          []Image          `json:"images"`
	VPSPlans        []VPSPlan        `json:"vps_plans"`
	HostingPlans    []HostingPlan    `json:"hosting_plans"`
	DatabaseEngines []DatabaseEngine `json:"database_engines"`
	DatabasePlans   []DatabasePlan   `json:"database_plans"`
	AutomationPlans []AutomationPlan `json:"automation_plans"`
	TLDPrices       []TLDPrice       `json:"tld_prices"`
}

// Get fetches the full catalog
func (s *CatalogService) Get(ctx context.Context) (*Catalog, error) {
	var c Catalog
	if err := s.client.doRequest(ctx, http.MethodGet, "/catalog", scopeNone, nil, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Locations fetches the datacenter regions
func (s *CatalogService) Locations(ctx context.Context) ([]Location, error) {
	var out []Location
	if err := s.client.doRequest(ctx, http.MethodGet, "/catalog/locations", scopeNone, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// VPSPlans fetches the VPS plan table
func (s *CatalogService) VPSPlans(ctx context.Context) ([]VPSPlan, error) {
	var out []VPSPlan
	if err := s.client.doRequest(ctx, http.MethodGet, "/catalog/vps-plans", scopeNone, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// HostingPlans fetches the hosting plan table
func (s *CatalogService) HostingPlans(ctx context.Context) ([]HostingPlan, error) {
	var out []HostingPlan
	if err := s.client.doRequest(ctx, http.MethodGet, "/catalog/hosting-plans", scopeNone, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DatabaseEngines fetches the supported engines with their version lists
func (s *CatalogService) DatabaseEngines(ctx context.Context) ([]DatabaseEngine, error) {
	var out []DatabaseEngine
	if err := s.client.doRequest(ctx, http.MethodGet, "/catalog/database-engines", scopeNone, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
