// Package client provides a typed Go client for the BelajarHosting API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// authScope selects which token a request carries. Customer and back-office
// sessions are separate namespaces; requests never fall back from one to the
// other.
type authScope int

const (
	scopeNone authScope = iota
	scopeUser
	scopeAdmin
)

// DefaultBaseURL is the development server's API root
const DefaultBaseURL = "http://localhost:3000/api"

// Client is the main BelajarHosting API client
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string // user session JWT
	adminToken string // back-office session JWT
}

// Config holds the client configuration
type Config struct {
	BaseURL    string        // API base URL, defaults to DefaultBaseURL
	Timeout    time.Duration // HTTP client timeout (default: 30s)
	HTTPClient *http.Client  // Optional custom HTTP client
}

// NewClient creates a new BelajarHosting API client
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: cfg.Timeout,
		}
	}

	return &Client{
		baseURL:    cfg.BaseURL,
		httpClient: httpClient,
	}
}

// SetToken sets the user session JWT
func (c *Client) SetToken(token string) {
	c.token = token
}

// Token returns the current user session JWT
func (c *Client) Token() string {
	return c.token
}

// SetAdminToken sets the back-office session JWT
func (c *Client) SetAdminToken(token string) {
	c.adminToken = token
}

// AdminToken returns the current back-office session JWT
func (c *Client) AdminToken() string {
	return c.adminToken
}

// successEnvelope is the server's response wrapper
type successEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

// doRequest performs an HTTP request under the given auth scope and decodes
// the success envelope into result.
func (c *Client) doRequest(ctx context.Context, method, path string, scope authScope, body interface{}, result interface{}) error {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	url := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	switch scope {
	case scopeUser:
		if c.token != "" {
			req.Header.Set("Authorization", "Bearer "+c.token)
		}
	case scopeAdmin:
		if c.adminToken != "" {
			req.Header.Set("Authorization", "Bearer "+c.adminToken)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return parseAPIError(resp.StatusCode, respBody)
	}

	if result != nil && len(respBody) > 0 {
		// Unwrap the success envelope when present
		var envelope successEnvelope
		if err := json.Unmarshal(respBody, &envelope); err == nil && envelope.Data != nil {
			return json.Unmarshal(envelope.Data, result)
		}
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to parse response: %w", err)
		}
	}

	return nil
}

// Auth returns the authentication service
func (c *Client) Auth() *AuthService {
	return &AuthService{client: c}
}

// Catalog returns the sales catalog service
func (c *Client) Catalog() *CatalogService {
	return &CatalogService{client: c}
}

// VPS returns the VPS instance service
func (c *Client) VPS() *VPSService {
	return &VPSService{client: c}
}

// Hosting returns the managed hosting service
func (c *Client) Hosting() *HostingService {
	return &HostingService{client: c}
}

// Databases returns the managed database service
func (c *Client) Databases() *DatabaseService {
	return &DatabaseService{client: c}
}

// Automation returns the n8n automation service
func (c *Client) Automation() *AutomationService {
	return &AutomationService{client: c}
}

// Domains returns the domain availability service
func (c *Client) Domains() *DomainService {
	return &DomainService{client: c}
}

// Credits returns the credit balance service
func (c *Client) Credits() *CreditService {
	return &CreditService{client: c}
}

// Bookmarks returns the bookmark service
func (c *Client) Bookmarks() *BookmarkService {
	return &BookmarkService{client: c}
}

// Blogs returns the public blog service
func (c *Client) Blogs() *BlogService {
	return &BlogService{client: c}
}

// Classes returns the public class catalog service
func (c *Client) Classes() *ClassService {
	return &ClassService{client: c}
}

// Admin returns the back-office service; its calls use the admin token
func (c *Client) Admin() *AdminService {
	return &AdminService{client: c}
}
