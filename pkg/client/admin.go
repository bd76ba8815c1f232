package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// AdminService drives the back-office. Every call here carries the admin
// token; customer tokens are rejected by the server with a 403.
type AdminService struct {
	client *Client
}

// DashboardSummary is the back-office landing page counters
type DashboardSummary struct {
	TotalUsers          int64 `json:"total_users"`
	PendingOrders       int64 `json:"pending_orders"`
	ActiveOrders        int64 `json:"active_orders"`
	PendingTransactions int64 `json:"pending_transactions"`
}

// UserListOptions narrow account listings
type UserListOptions struct {
	Page     int
	Limit    int
	Search   string
	Role     string
	Verified *bool
}

// UserPage is one page of accounts
type UserPage struct {
	Data []User `json:"data"`
	Pagination
}

// OrderListOptions narrow order listings
type OrderListOptions struct {
	Page   int
	Limit  int
	UserID int64
	Type   string
	Status string
}

// OrderPage is one page of orders
type OrderPage struct {
	Data []Order `json:"data"`
	Pagination
}

// AdminTransactionListOptions narrow ledger listings across all users
type AdminTransactionListOptions struct {
	Page   int
	Limit  int
	UserID int64
	Type   string
	Status string
}

// FulfillRequest carries the provisioning result for a pending order.
// IPAddress applies to VPS, Host and Port to databases, URL to hosting
// and automation.
type FulfillRequest struct {
	IPAddress string `json:"ip_address,omitempty"`
	Host      string `json:"host,omitempty"`
	Port      int    `json:"port,omitempty"`
	URL       string `json:"url,omitempty"`
}

// BlogCreateRequest creates a post
type BlogCreateRequest struct {
	Title     string `json:"title"`
	Category  string `json:"category,omitempty"`
	Excerpt   string `json:"excerpt,omitempty"`
	Content   string `json:"content"`
	Published bool   `json:"published"`
}

// BlogUpdateRequest updates a post's fields; empty fields are left unchanged
type BlogUpdateRequest struct {
	Title    string `json:"title,omitempty"`
	Category string `json:"category,omitempty"`
	Excerpt  string `json:"excerpt,omitempty"`
	Content  string `json:"content,omitempty"`
}

// ClassRequest creates or updates a class listing
type ClassRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Level       string `json:"level"`
	PriceIDR    int64  `json:"price_idr"`
	Published   bool   `json:"published"`
}

// Dashboard returns the back-office counters
func (s *AdminService) Dashboard(ctx context.Context) (*DashboardSummary, error) {
	var summary DashboardSummary
	if err := s.client.doRequest(ctx, http.MethodGet, "/admin/dashboard", scopeAdmin, nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// ListUsers returns accounts matching the filter
func (s *AdminService) ListUsers(ctx context.Context, opts UserListOptions) (*UserPage, error) {
	path := "/admin/users"
	query := url.Values{}
	if opts.Page > 0 {
		query.Set("page", strconv.Itoa(opts.Page))
	}
	if opts.Limit > 0 {
		query.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.Search != "" {
		query.Set("search", opts.Search)
	}
	if opts.Role != "" {
		query.Set("role", opts.Role)
	}
	if opts.Verified != nil {
		query.Set("verified", strconv.FormatBool(*opts.Verified))
	}
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	var page UserPage
	if err := s.client.doRequest(ctx, http.MethodGet, path, scopeAdmin, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// UpdateUserRole promotes or demotes an account
func (s *AdminService) UpdateUserRole(ctx context.Context, id int64, role string) error {
	body := map[string]string{"role": role}
	return s.client.doRequest(ctx, http.MethodPatch, fmt.Sprintf("/admin/users/%d/role", id), scopeAdmin, body, nil)
}

// SetUserVerified flips an account's verification flag
func (s *AdminService) SetUserVerified(ctx context.Context, id int64, verified bool) error {
	body := map[string]bool{"verified": verified}
	return s.client.doRequest(ctx, http.MethodPatch, fmt.Sprintf("/admin/users/%d/verify", id), scopeAdmin, body, nil)
}

// DeleteUser removes an account
func (s *AdminService) DeleteUser(ctx context.Context, id int64) error {
	return s.client.doRequest(ctx, http.MethodDelete, fmt.Sprintf("/admin/users/%d", id), scopeAdmin, nil, nil)
}

// ListOrders returns orders matching the filter across all users
func (s *AdminService) ListOrders(ctx context.Context, opts OrderListOptions) (*OrderPage, error) {
	path := "/admin/orders"
	query := url.Values{}
	if opts.Page > 0 {
		query.Set("page", strconv.Itoa(opts.Page))
	}
	if opts.Limit > 0 {
		query.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.UserID > 0 {
		query.Set("user_id", strconv.FormatInt(opts.UserID, 10))
	}
	if opts.Type != "" {
		query.Set("type", opts.Type)
	}
	if opts.Status != "" {
		query.Set("status", opts.Status)
	}
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	var page OrderPage
	if err := s.client.doRequest(ctx, http.MethodGet, path, scopeAdmin, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetOrder returns one order
func (s *AdminService) GetOrder(ctx context.Context, id int64) (*Order, error) {
	var o Order
	if err := s.client.doRequest(ctx, http.MethodGet, fmt.Sprintf("/admin/orders/%d", id), scopeAdmin, nil, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

// UpdateOrderStatus moves an order to the given status
func (s *AdminService) UpdateOrderStatus(ctx context.Context, id int64, status string) error {
	body := map[string]string{"status": status}
	return s.client.doRequest(ctx, http.MethodPatch, fmt.Sprintf("/admin/orders/%d/status", id), scopeAdmin, body, nil)
}

// FulfillOrder records the provisioning result and activates the order
func (s *AdminService) FulfillOrder(ctx context.Context, id int64, req FulfillRequest) error {
	return s.client.doRequest(ctx, http.MethodPost, fmt.Sprintf("/admin/orders/%d/fulfill", id), scopeAdmin, req, nil)
}

// ListTransactions returns ledger entries matching the filter across
// all users
func (s *AdminService) ListTransactions(ctx context.Context, opts AdminTransactionListOptions) (*TransactionPage, error) {
	path := "/admin/transactions"
	query := url.Values{}
	if opts.Page > 0 {
		query.Set("page", strconv.Itoa(opts.Page))
	}
	if opts.Limit > 0 {
		query.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.UserID > 0 {
		query.Set("user_id", strconv.FormatInt(opts.UserID, 10))
	}
	if opts.Type != "" {
		query.Set("type", opts.Type)
	}
	if opts.Status != "" {
		query.Set("status", opts.Status)
	}
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	var page TransactionPage
	if err := s.client.doRequest(ctx, http.MethodGet, path, scopeAdmin, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// SettleTransaction marks a pending top-up paid and credits the balance
func (s *AdminService) SettleTransaction(ctx context.Context, id int64) error {
	return s.client.doRequest(ctx, http.MethodPost, fmt.Sprintf("/admin/transactions/%d/settle", id), scopeAdmin, nil, nil)
}

// RejectTransaction declines a pending top-up
func (s *AdminService) RejectTransaction(ctx context.Context, id int64) error {
	return s.client.doRequest(ctx, http.MethodPost, fmt.Sprintf("/admin/transactions/%d/reject", id), scopeAdmin, nil, nil)
}

// ListPosts returns all posts, drafts included
func (s *AdminService) ListPosts(ctx context.Context, opts BlogListOptions) (*PostPage, error) {
	path := "/admin/blogs"
	query := url.Values{}
	if opts.Page > 0 {
		query.Set("page", strconv.Itoa(opts.Page))
	}
	if opts.Limit > 0 {
		query.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.Category != "" {
		query.Set("category", opts.Category)
	}
	if opts.Search != "" {
		query.Set("search", opts.Search)
	}
	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	var page PostPage
	if err := s.client.doRequest(ctx, http.MethodGet, path, scopeAdmin, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetPost returns one post by id, draft or published
func (s *AdminService) GetPost(ctx context.Context, id int64) (*Post, error) {
	var post Post
	if err := s.client.doRequest(ctx, http.MethodGet, fmt.Sprintf("/admin/blogs/%d", id), scopeAdmin, nil, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// CreatePost creates a post authored by the admin
func (s *AdminService) CreatePost(ctx context.Context, req BlogCreateRequest) (*Post, error) {
	var post Post
	if err := s.client.doRequest(ctx, http.MethodPost, "/admin/blogs", scopeAdmin, req, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// UpdatePost updates a post's fields
func (s *AdminService) UpdatePost(ctx context.Context, id int64, req BlogUpdateRequest) error {
	return s.client.doRequest(ctx, http.MethodPut, fmt.Sprintf("/admin/blogs/%d", id), scopeAdmin, req, nil)
}

// SetPostPublished publishes or unpublishes a post
func (s *AdminService) SetPostPublished(ctx context.Context, id int64, published bool) error {
	body := map[string]bool{"published": published}
	return s.client.doRequest(ctx, http.MethodPatch, fmt.Sprintf("/admin/blogs/%d/publish", id), scopeAdmin, body, nil)
}

// DeletePost removes a post
func (s *AdminService) DeletePost(ctx context.Context, id int64) error {
	return s.client.doRequest(ctx, http.MethodDelete, fmt.Sprintf("/admin/blogs/%d", id), scopeAdmin, nil, nil)
}

// ListClasses returns all classes, unpublished included
func (s *AdminService) ListClasses(ctx context.Context, opts ListOptions) (*ClassPage, error) {
	path := "/admin/classes"
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

	var page ClassPage
	if err := s.client.doRequest(ctx, http.MethodGet, path, scopeAdmin, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// CreateClass creates a class listing
func (s *AdminService) CreateClass(ctx context.Context, req ClassRequest) (*Class, error) {
	var c Class
	if err := s.client.doRequest(ctx, http.MethodPost, "/admin/classes", scopeAdmin, req, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// UpdateClass replaces a class listing's fields
func (s *AdminService) UpdateClass(ctx context.Context, id int64, req ClassRequest) error {
	return s.client.doRequest(ctx, http.MethodPut, fmt.Sprintf("/admin/classes/%d", id), scopeAdmin, req, nil)
}

// DeleteClass removes a class listing
func (s *AdminService) DeleteClass(ctx context.Context, id int64) error {
	return s.client.doRequest(ctx, http.MethodDelete, fmt.Sprintf("/admin/classes/%d", id), scopeAdmin, nil, nil)
}
