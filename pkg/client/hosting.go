package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// HostingService manages customer hosting sites
type HostingService struct {
	client *Client
}

// HostingDeployRequest is the managed hosting order form
type HostingDeployRequest struct {
	DomainName    string   `json:"domain_name"`
	PlanID        string   `json:"plan_id"`
	LocationID    string   `json:"location_id"`
	Subdomains    []string `json:"subdomains,omitempty"`
	AdminEmail    string   `json:"admin_email"`
	AdminPassword string   `json:"admin_password,omitempty"`
	BillingCycle  string   `json:"billing_cycle"`
}

// HostingPage is one page of hosting sites
type HostingPage struct {
	Data []HostingSite `json:"data"`
	Pagination
}

// HostingDeployResult pairs the created site with its order
type HostingDeployResult struct {
	Instance HostingSite `json:"instance"`
	Order    Order       `json:"order"`
}

// List returns the authenticated user's hosting sites
func (s *HostingService) List(ctx context.Context, opts ListOptions) (*HostingPage, error) {
	path := "/hosting"
	query := url.Values{}
	if opts.Page > 0 {
		query.Set("page", strconv.Itoa(opts.Page))
	}
	if opts.Limit > 0 {
		query.Set("limit", strconv.Itoa(opts.Limit))
	}
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	var page HostingPage
	if err := s.client.doRequest(ctx, http.MethodGet, path, scopeUser, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Get returns one hosting site
func (s *HostingService) Get(ctx context.Context, id int64) (*HostingSite, error) {
	var site HostingSite
	path := fmt.Sprintf("/hosting/%d", id)
	if err := s.client.doRequest(ctx, http.MethodGet, path, scopeUser, nil, &site); err != nil {
		return nil, err
	}
	return &site, nil
}

// Deploy charges credits and creates a pending site plus its order
func (s *HostingService) Deploy(ctx context.Context, req HostingDeployRequest) (*HostingDeployResult, error) {
	var result HostingDeployResult
	if err := s.client.doRequest(ctx, http.MethodPost, "/hosting", scopeUser, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// SetSubdomains replaces the site's subdomain list. Entries beyond the plan
// limit are truncated server-side.
func (s *HostingService) SetSubdomains(ctx context.Context, id int64, subdomains []string) error {
	body := map[string][]string{"subdomains": subdomains}
	return s.client.doRequest(ctx, http.MethodPut, fmt.Sprintf("/hosting/%d/subdomains", id), scopeUser, body, nil)
}

// Delete removes the hosting site
func (s *HostingService) Delete(ctx context.Context, id int64) error {
	return s.client.doRequest(ctx, http.MethodDelete, fmt.Sprintf("/hosting/%d", id), scopeUser, nil, nil)
}
