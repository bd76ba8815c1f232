package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// DatabaseService manages customer managed databases
type DatabaseService struct {
	client *Client
}

// DatabaseDeployRequest is the managed database order form. Version may be
// empty; the engine's default version is used.
type DatabaseDeployRequest struct {
	Name         string `json:"name"`
	EngineID     string `json:"engine_id"`
	Version      string `json:"version,omitempty"`
	PlanID       string `json:"plan_id"`
	LocationID   string `json:"location_id"`
	DatabaseName string `json:"database_name"`
	DatabaseUser string `json:"database_user"`
	Password     string `json:"password,omitempty"`
	BillingCycle string `json:"billing_cycle"`
}

// DatabasePage is one page of managed databases
type DatabasePage struct {
	Data []DatabaseInstance `json:"data"`
	Pagination
}

// DatabaseDeployResult pairs the created database with its order
type DatabaseDeployResult struct {
	Instance DatabaseInstance `json:"instance"`
	Order    Order            `json:"order"`
}

// List returns the authenticated user's managed databases
func (s *DatabaseService) List(ctx context.Context, opts ListOptions) (*DatabasePage, error) {
	path := "/databases"
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

	var page DatabasePage
	if err := s.client.doRequest(ctx, http.MethodGet, path, scopeUser, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Get returns one managed database
func (s *DatabaseService) Get(ctx context.Context, id int64) (*DatabaseInstance, error) {
	var inst DatabaseInstance
	path := fmt.Sprintf("/databases/%d", id)
	if err := s.client.doRequest(ctx, http.MethodGet, path, scopeUser, nil, &inst); err != nil {
		return nil, err
	}
	return &inst, nil
}

// Deploy charges credits and creates a pending database plus its order
func (s *DatabaseService) Deploy(ctx context.Context, req DatabaseDeployRequest) (*DatabaseDeployResult, error) {
	var result DatabaseDeployResult
	if err := s.client.doRequest(ctx, http.MethodPost, "/databases", scopeUser, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Delete removes the managed database
func (s *DatabaseService) Delete(ctx context.Context, id int64) error {
	return s.client.doRequest(ctx, http.MethodDelete, fmt.Sprintf("/databases/%d", id), scopeUser, nil, nil)
}
