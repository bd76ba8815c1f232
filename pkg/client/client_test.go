package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClient_UserRequestHeaders(t *testing.T) {
	var gotAuth, gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data":    map[string]interface{}{"data": []interface{}{}, "page": 1, "page_size": 20, "total_items": 0, "total_pages": 0},
		})
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL})
	c.SetToken("user-jwt")

	if _, err := c.VPS().List(context.Background(), ListOptions{}); err != nil {
		t.Fatalf("List() error = %v", err)
	}

	if gotAuth != "Bearer user-jwt" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "Bearer user-jwt")
	}
	if gotContentType != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", gotContentType)
	}
}

func TestClient_UnauthenticatedRequestOmitsAuthorization(t *testing.T) {
	var gotAuth string
	var hasAuth bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, hasAuth = r.Header["Authorization"]
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data":    map[string]interface{}{"data": []interface{}{}, "page": 1, "page_size": 20, "total_items": 0, "total_pages": 0},
		})
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL})
	c.SetToken("user-jwt")
	c.SetAdminToken("admin-jwt")

	// Public endpoint: neither token may leak onto the request
	if _, err := c.Blogs().List(context.Background(), BlogListOptions{}); err != nil {
		t.Fatalf("List() error = %v", err)
	}

	if hasAuth {
		t.Errorf("public request carried Authorization = %q, want none", gotAuth)
	}
}

func TestClient_TokenNamespaces(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data":    map[string]interface{}{"total_users": 0},
		})
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL})
	c.SetToken("user-jwt")
	c.SetAdminToken("admin-jwt")

	if _, err := c.Admin().Dashboard(context.Background()); err != nil {
		t.Fatalf("Dashboard() error = %v", err)
	}

	if gotAuth != "Bearer admin-jwt" {
		t.Errorf("admin request Authorization = %q, want admin token", gotAuth)
	}
}

func TestClient_NotFoundError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"Not found"}`))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL})
	c.SetToken("user-jwt")

	_, err := c.VPS().Get(context.Background(), 42)
	if err == nil {
		t.Fatal("Get() on missing instance should fail")
	}

	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("error type = %T, want *APIError", err)
	}
	if apiErr.StatusCode != 404 {
		t.Errorf("StatusCode = %d, want 404", apiErr.StatusCode)
	}
	if apiErr.Message != "Not found" {
		t.Errorf("Message = %q, want %q", apiErr.Message, "Not found")
	}
	if !apiErr.IsNotFound() {
		t.Error("IsNotFound() = false, want true")
	}
}

func TestClient_ErrorEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusPaymentRequired)
		w.Write([]byte(`{"success":false,"error":{"code":"INSUFFICIENT_CREDIT","message":"Insufficient credit balance"}}`))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL})
	c.SetToken("user-jwt")

	_, err := c.VPS().Deploy(context.Background(), VPSDeployRequest{
		Hostname:     "web-1",
		PlanID:       "vps-basic",
		LocationID:   "sg",
		ImageID:      "ubuntu-22",
		BillingCycle: "monthly",
	})

	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("error type = %T, want *APIError", err)
	}
	if apiErr.Code != "INSUFFICIENT_CREDIT" {
		t.Errorf("Code = %q, want INSUFFICIENT_CREDIT", apiErr.Code)
	}
	if apiErr.Message != "Insufficient credit balance" {
		t.Errorf("Message = %q, want the error detail message", apiErr.Message)
	}
	if !apiErr.IsInsufficientCredit() {
		t.Error("IsInsufficientCredit() = false, want true")
	}
}

func TestClient_ErrorMessageFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream timeout"))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL})

	_, err := c.Blogs().Get(context.Background(), "go-hosting-101")
	apiErr, ok := err.(*APIError)
	if !ok {
		t.Fatalf("error type = %T, want *APIError", err)
	}
	if apiErr.Message != "request failed" {
		t.Errorf("Message = %q, want fallback %q", apiErr.Message, "request failed")
	}
	if !apiErr.IsServerError() {
		t.Error("IsServerError() = false, want true")
	}
}

func TestBlogService_ListQuery(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.RequestURI()
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data":    map[string]interface{}{"data": []interface{}{}, "page": 2, "page_size": 20, "total_items": 0, "total_pages": 0},
		})
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL})

	if _, err := c.Blogs().List(context.Background(), BlogListOptions{Page: 2, Category: "tech"}); err != nil {
		t.Fatalf("List() error = %v", err)
	}

	// url.Values encodes keys in sorted order; unset options stay out
	if gotPath != "/blogs?category=tech&page=2" {
		t.Errorf("request path = %q, want /blogs?category=tech&page=2", gotPath)
	}
}

func TestBlogService_ListDecodesPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"success": true,
			"data": {
				"data": [
					{"id": 1, "title": "Deploying n8n", "slug": "deploying-n8n", "category": "tech", "published": true},
					{"id": 2, "title": "DNS basics", "slug": "dns-basics", "category": "tutorial", "published": true}
				],
				"page": 1, "page_size": 20, "total_items": 2, "total_pages": 1
			}
		}`))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL})

	page, err := c.Blogs().List(context.Background(), BlogListOptions{})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	if len(page.Data) != 2 {
		t.Fatalf("len(Data) = %d, want 2", len(page.Data))
	}
	if page.Data[0].Slug != "deploying-n8n" {
		t.Errorf("Data[0].Slug = %q, want deploying-n8n", page.Data[0].Slug)
	}
	if page.TotalItems != 2 {
		t.Errorf("TotalItems = %d, want 2", page.TotalItems)
	}
}

func TestAuthService_LoginStoresToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"success": true,
			"data": {
				"accessToken": "fresh-jwt",
				"refreshToken": "refresh-jwt",
				"user": {"id": 1, "email": "budi@example.com", "role": "user", "is_verified": true}
			}
		}`))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL})

	resp, err := c.Auth().Login(context.Background(), LoginRequest{Email: "budi@example.com", Password: "secret123"})
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	if resp.User.Email != "budi@example.com" {
		t.Errorf("User.Email = %q", resp.User.Email)
	}
	if c.Token() != "fresh-jwt" {
		t.Errorf("Token() = %q, want fresh-jwt", c.Token())
	}
	if c.AdminToken() != "" {
		t.Errorf("AdminToken() = %q, want empty", c.AdminToken())
	}
}

func TestNewClient_Defaults(t *testing.T) {
	c := NewClient(Config{})
	if c.baseURL != DefaultBaseURL {
		t.Errorf("baseURL = %q, want %q", c.baseURL, DefaultBaseURL)
	}
	if c.httpClient == nil {
		t.Fatal("httpClient is nil")
	}
}
