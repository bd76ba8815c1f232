package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// VPSService manages customer VPS instances
type VPSService struct {
	client *Client
}

// VPSDeployRequest is the VPS order form
type VPSDeployRequest struct {
	Hostname     string `json:"hostname"`
	PlanID       string `json:"plan_id"`
	LocationID   string `json:"location_id"`
	ImageID      string `json:"image_id"`
	RootPassword string `json:"root_password,omitempty"`
	BillingCycle string `json:"billing_cycle"`
}

// VPSReinstallRequest wipes an instance with a fresh image
type VPSReinstallRequest struct {
	ImageID      string `json:"image_id"`
	RootPassword string `json:"root_password,omitempty"`
}

// VPSPage is one page of VPS instances
type VPSPage struct {
	Data []VPSInstance `json:"data"`
	Pagination
}

// VPSDeployResult pairs the created instance with its order
type VPSDeployResult struct {
	Instance VPSInstance `json:"instance"`
	Order    Order       `json:"order"`
}

// List returns the authenticated user's VPS instances
func (s *VPSService) List(ctx context.Context, opts ListOptions) (*VPSPage, error) {
	path := "/vps"
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

	var page VPSPage
	if err := s.client.doRequest(ctx, http.MethodGet, path, scopeUser, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Get returns one VPS instance
func (s *VPSService) Get(ctx context.Context, id int64) (*VPSInstance, error) {
	var inst VPSInstance
	path := fmt.Sprintf("/vps/%d", id)
	if err := s.client.doRequest(ctx, http.MethodGet, path, scopeUser, nil, &inst); err != nil {
		return nil, err
	}
	return &inst, nil
}

// Deploy charges credits and creates a pending instance plus its order
func (s *VPSService) Deploy(ctx context.Context, req VPSDeployRequest) (*VPSDeployResult, error) {
	var result VPSDeployResult
	if err := s.client.doRequest(ctx, http.MethodPost, "/vps", scopeUser, req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Start boots a stopped instance
func (s *VPSService) Start(ctx context.Context, id int64) error {
	return s.client.doRequest(ctx, http.MethodPost, fmt.Sprintf("/vps/%d/start", id), scopeUser, nil, nil)
}

// Stop shuts an active instance down
func (s *VPSService) Stop(ctx context.Context, id int64) error {
	return s.client.doRequest(ctx, http.MethodPost, fmt.Sprintf("/vps/%d/stop", id), scopeUser, nil, nil)
}

// Restart reboots an active instance
func (s *VPSService) Restart(ctx context.Context, id int64) error {
	return s.client.doRequest(ctx, http.MethodPost, fmt.Sprintf("/vps/%d/restart", id), scopeUser, nil, nil)
}

// Reinstall wipes the instance with a fresh image
func (s *VPSService) Reinstall(ctx context.Context, id int64, req VPSReinstallRequest) error {
	return s.client.doRequest(ctx, http.MethodPost, fmt.Sprintf("/vps/%d/reinstall", id), scopeUser, req, nil)
}

// Delete terminates the instance
func (s *VPSService) Delete(ctx context.Context, id int64) error {
	return s.client.doRequest(ctx, http.MethodDelete, fmt.Sprintf("/vps/%d", id), scopeUser, nil, nil)
}
