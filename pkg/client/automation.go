package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// AutomationService manages customer n8n instances
type AutomationService struct {
	client *Client
}

// AutomationDeployRequest is the n8n order form
type AutomationDeployRequest struct {
	Name          string `json:"name"`
	Subdomain     string `json:"subdomain"`
	PlanID        string `json:"plan_id"`
	LocationID    string `json:"location_id"`
	AdminEmail    string `json:"admin_email"`
	AdminPassword string `json:"admin_password,omitempty"`
	BillingCycle  string `json:"billing_cycle"`
}

// AutomationPage is one page of n8n instances
type AutomationPage struct {
	Data []AutomationInstance `json:"data"`
	Pagination
}

// AutomationDeployResult pairs the created instance with its order
type AutomationDeployResult struct {
	Instance AutomationInstance `json:"instance"`
	Order    Order              `json:"order"`
}

// List returns the authenticated user's n8n instances
func (s *AutomationService) List(ctx context.Context, opts ListOptions) (*AutomationPage, error) {
	path := "/automation"
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

	var page AutomationPage
	if err := s.client.doRequest(ctx, http.MethodGet, path, scopeUser, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Get returns one n8n instance
func (s *AutomationService) Get(ctx context.Context, id int64) (*AutomationInstance, error) {
	var inst AutomationInstance
	path := fmt.Sprintf("/automation/%d", id)
	if err := s.client.doRequest(ctx, http.MethodGet, path, scopeUser, nil, &inst); err != nil {
		return nil, err
	}
	return &inst, nil
}

// Deploy charges credits and creates a pending instance plus its order
func (s *AutomationService) Deploy(ctx context.Context, req AutomationDeployRequest) (*AutomationDeployResult, error) {
	var result AutomationDeployResult
	if err := s.client.doRequest(ctx, http.MethodPost, "/automation", scopeUser, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Delete removes the n8n instance
func (s *AutomationService) Delete(ctx context.Context, id int64) error {
	return s.client.doRequest(ctx, http.MethodDelete, fmt.Sprintf("/automation/%d", id), scopeUser, nil, nil)
}
