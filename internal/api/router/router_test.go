package router_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/belajarhosting/platform/internal/api/handlers"
	"github.com/belajarhosting/platform/internal/api/router"
	"github.com/belajarhosting/platform/internal/config"
	"github.com/belajarhosting/platform/internal/domain/user"
	"github.com/belajarhosting/platform/internal/pkg/logger"
	"github.com/belajarhosting/platform/internal/pkg/validator"
	"github.com/belajarhosting/platform/internal/services"
	"github.com/belajarhosting/platform/internal/testutil"
	"github.com/belajarhosting/platform/pkg/client"
)

type apiFixture struct {
	server *httptest.Server
	client *client.Client
	users  *testutil.MockUserRepository
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()

	cfg := &config.Config{
		Server: config.ServerConfig{
			BasePath:    "/api",
			FrontendURL: "http://localhost:5173",
			Environment: "test",
		},
		Auth: config.AuthConfig{
			JWTSecret:          "test-secret",
			AccessTokenExpiry:  time.Hour,
			RefreshTokenExpiry: 24 * time.Hour,
			BCryptCost:         4,
			OTPExpiry:          10 * time.Minute,
		},
		Billing: config.BillingConfig{
			MonthlyTerm: 30 * 24 * time.Hour,
			YearlyTerm:  360 * 24 * time.Hour,
			MinTopupIDR: 10000,
		},
	}
	log := logger.New(logger.Config{Level: "error", Format: "json"})

	userRepo := testutil.NewMockUserRepository()
	vpsRepo := testutil.NewMockVPSRepository()
	hostingRepo := testutil.NewMockHostingRepository()
	dbRepo := testutil.NewMockDatabaseRepository()
	autoRepo := testutil.NewMockAutomationRepository()
	orderRepo := testutil.NewMockOrderRepository()
	creditRepo := testutil.NewMockCreditRepository()
	blogRepo := testutil.NewMockBlogRepository()
	bookmarkRepo := testutil.NewMockBookmarkRepository()
	classRepo := testutil.NewMockClassRepository()
	domainRepo := testutil.NewMockDomainRepository()

	userSvc := services.NewUserService(userRepo, cfg.Auth.BCryptCost, cfg.Auth.OTPExpiry, log)
	vpsSvc := services.NewVPSService(vpsRepo, orderRepo, creditRepo, log)
	hostingSvc := services.NewHostingService(hostingRepo, orderRepo, creditRepo, log)
	dbSvc := services.NewDatabaseService(dbRepo, orderRepo, creditRepo, log)
	autoSvc := services.NewAutomationService(autoRepo, orderRepo, creditRepo, log)
	orderSvc := services.NewOrderService(orderRepo, vpsRepo, hostingRepo, dbRepo, autoRepo,
		cfg.Billing.MonthlyTerm, cfg.Billing.YearlyTerm, log)
	creditSvc := services.NewCreditService(creditRepo, cfg.Billing.MinTopupIDR, log)
	domainSvc := services.NewDomainService(domainRepo, log)
	blogSvc := services.NewBlogService(blogRepo, log)
	bookmarkSvc := services.NewBookmarkService(bookmarkRepo, log)
	classSvc := services.NewClassService(classRepo, log)

	val := validator.New()
	db := testutil.NewTestDB(t)
	t.Cleanup(func() { db.Close() })

	h := &router.Handlers{
		Health:     handlers.NewHealthHandler(db),
		Auth:       handlers.NewAuthHandler(userSvc, cfg, log, val),
		Catalog:    handlers.NewCatalogHandler(),
		VPS:        handlers.NewVPSHandler(vpsSvc, log, val),
		Hosting:    handlers.NewHostingHandler(hostingSvc, log, val),
		Database:   handlers.NewDatabaseHandler(dbSvc, log, val),
		Automation: handlers.NewAutomationHandler(autoSvc, log, val),
		Domain:     handlers.NewDomainHandler(domainSvc, log),
		Credit:     handlers.NewCreditHandler(creditSvc, log, val),
		Blog:       handlers.NewBlogHandler(blogSvc, log, val),
		Bookmark:   handlers.NewBookmarkHandler(bookmarkSvc, log, val),
		Class:      handlers.NewClassHandler(classSvc, log, val),
		Admin:      handlers.NewAdminHandler(userSvc, orderSvc, creditSvc, log, val),
	}

	srv := httptest.NewServer(router.New(cfg, log, h))
	t.Cleanup(srv.Close)

	return &apiFixture{
		server: srv,
		client: client.NewClient(client.Config{BaseURL: srv.URL + "/api"}),
		users:  userRepo,
	}
}

// otpFor digs the issued verification code out of the user store
func (f *apiFixture) otpFor(t *testing.T, email string) string {
	t.Helper()
	for _, u := range f.users.Users {
		if u.Email == email {
			return u.OTPCode
		}
	}
	t.Fatalf("no user stored for %s", email)
	return ""
}

// loginUser registers and verifies a fresh customer account
func (f *apiFixture) loginUser(t *testing.T, email string) *client.Client {
	t.Helper()
	ctx := context.Background()

	if _, err := f.client.Auth().Register(ctx, client.RegisterRequest{
		Email:    email,
		Password: "secret-password",
		FullName: "Budi Santoso",
	}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	c := client.NewClient(client.Config{BaseURL: f.server.URL + "/api"})
	if err := c.Auth().VerifyOTP(ctx, client.VerifyOTPRequest{
		Email: email,
		Code:  f.otpFor(t, email),
	}); err != nil {
		t.Fatalf("VerifyOTP() error = %v", err)
	}
	if _, err := c.Auth().Login(ctx, client.LoginRequest{
		Email:    email,
		Password: "secret-password",
	}); err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	return c
}

// loginAdmin registers a user and promotes it before opening an admin session
func (f *apiFixture) loginAdmin(t *testing.T, email string) *client.Client {
	t.Helper()
	ctx := context.Background()

	c := f.loginUser(t, email)
	for _, u := range f.users.Users {
		if u.Email == email {
			u.Role = user.RoleAdmin
		}
	}

	if _, err := c.Auth().AdminLogin(ctx, client.LoginRequest{
		Email:    email,
		Password: "secret-password",
	}); err != nil {
		t.Fatalf("AdminLogin() error = %v", err)
	}
	return c
}

func TestRouter_RegisterVerifyLoginFlow(t *testing.T) {
	f := newAPIFixture(t)
	ctx := context.Background()

	c := f.loginUser(t, "budi@example.com")

	me, err := c.Auth().Me(ctx)
	if err != nil {
		t.Fatalf("Me() error = %v", err)
	}
	if me.Email != "budi@example.com" {
		t.Errorf("Me().Email = %q", me.Email)
	}
	if !me.IsVerified {
		t.Error("account should be verified after OTP confirmation")
	}
}

func TestRouter_LoginRejectsUnverifiedAccount(t *testing.T) {
	f := newAPIFixture(t)
	ctx := context.Background()

	if _, err := f.client.Auth().Register(ctx, client.RegisterRequest{
		Email:    "eka@example.com",
		Password: "secret-password",
	}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	_, err := f.client.Auth().Login(ctx, client.LoginRequest{
		Email:    "eka@example.com",
		Password: "secret-password",
	})
	if err == nil {
		t.Fatal("Login() before verification should fail")
	}
}

func TestRouter_UserTokenRejectedOnAdminRoutes(t *testing.T) {
	f := newAPIFixture(t)
	ctx := context.Background()

	c := f.loginUser(t, "budi@example.com")
	// Route the user token into the admin namespace
	c.SetAdminToken(c.Token())

	_, err := c.Admin().Dashboard(ctx)
	apiErr, ok := err.(*client.APIError)
	if !ok {
		t.Fatalf("error type = %T, want *client.APIError", err)
	}
	if !apiErr.IsForbidden() {
		t.Errorf("StatusCode = %d, want 403", apiErr.StatusCode)
	}
}

func TestRouter_AdminTokenRejectedOnUserRoutes(t *testing.T) {
	f := newAPIFixture(t)
	ctx := context.Background()

	c := f.loginAdmin(t, "admin@example.com")

	if _, err := c.Admin().Dashboard(ctx); err != nil {
		t.Fatalf("Dashboard() with admin session error = %v", err)
	}

	// Route the admin token into the user namespace
	c.SetToken(c.AdminToken())
	_, err := c.VPS().List(ctx, client.ListOptions{})
	apiErr, ok := err.(*client.APIError)
	if !ok {
		t.Fatalf("error type = %T, want *client.APIError", err)
	}
	if !apiErr.IsForbidden() {
		t.Errorf("StatusCode = %d, want 403", apiErr.StatusCode)
	}
}

func TestRouter_MissingTokenUnauthorized(t *testing.T) {
	f := newAPIFixture(t)

	_, err := f.client.VPS().List(context.Background(), client.ListOptions{})
	apiErr, ok := err.(*client.APIError)
	if !ok {
		t.Fatalf("error type = %T, want *client.APIError", err)
	}
	if !apiErr.IsUnauthorized() {
		t.Errorf("StatusCode = %d, want 401", apiErr.StatusCode)
	}
}

func TestRouter_UnknownRouteShape(t *testing.T) {
	f := newAPIFixture(t)

	resp, err := http.Get(f.server.URL + "/api/nope")
	if err != nil {
		t.Fatalf("GET error = %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}

	body, _ := io.ReadAll(resp.Body)
	var payload map[string]string
	if err := json.Unmarshal(body, &payload); err != nil {
		t.Fatalf("body %q is not JSON: %v", body, err)
	}
	if payload["message"] != "Not found" {
		t.Errorf(`body = %s, want {"message":"Not found"}`, body)
	}
}

func TestRouter_DeployRequiresCredit(t *testing.T) {
	f := newAPIFixture(t)
	ctx := context.Background()

	c := f.loginUser(t, "budi@example.com")

	_, err := c.VPS().Deploy(ctx, client.VPSDeployRequest{
		Hostname:     "web-1",
		PlanID:       "vps-basic",
		LocationID:   "idn-jkt",
		ImageID:      "ubuntu-24.04",
		BillingCycle: "monthly",
	})
	apiErr, ok := err.(*client.APIError)
	if !ok {
		t.Fatalf("error type = %T, want *client.APIError", err)
	}
	if !apiErr.IsInsufficientCredit() {
		t.Errorf("StatusCode = %d, want 402", apiErr.StatusCode)
	}
}

func TestRouter_CatalogIsPublic(t *testing.T) {
	f := newAPIFixture(t)

	catalog, err := f.client.Catalog().Get(context.Background())
	if err != nil {
		t.Fatalf("Catalog().Get() error = %v", err)
	}

	if len(catalog.VPSPlans) == 0 {
		t.Error("catalog has no VPS plans")
	}
	if len(catalog.TLDPrices) == 0 {
		t.Error("catalog has no TLD prices")
	}
}
