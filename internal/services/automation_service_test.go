package services

import (
	"context"
	"testing"

	"github.com/belajarhosting/platform/internal/catalog"
	"github.com/belajarhosting/platform/internal/domain/automation"
	"github.com/belajarhosting/platform/internal/pkg/errors"
	"github.com/belajarhosting/platform/internal/pkg/logger"
	"github.com/belajarhosting/platform/internal/testutil"
)

func newAutomationFixture() (*testutil.MockAutomationRepository, *testutil.MockCreditRepository, automation.Service) {
	repo := testutil.NewMockAutomationRepository()
	orderRepo := testutil.NewMockOrderRepository()
	creditRepo := testutil.NewMockCreditRepository()
	log := logger.New(logger.Config{Level: "error", Format: "json"})
	svc := NewAutomationService(repo, orderRepo, creditRepo, log)
	return repo, creditRepo, svc
}

func TestAutomationService_Deploy(t *testing.T) {
	_, creditRepo, svc := newAutomationFixture()
	ctx := context.Background()
	creditRepo.Balances[1] = 1000000
	creditRepo.Balances[2] = 1000000

	input := automation.DeployInput{
		Name:         "Workflows",
		Subdomain:    "Acme",
		PlanID:       "n8n-starter",
		LocationID:   "idn-jkt",
		AdminEmail:   "ops@acme.id",
		BillingCycle: catalog.BillingMonthly,
	}

	inst, o, err := svc.Deploy(ctx, 1, input)
	if err != nil {
		t.Fatalf("Deploy() error = %v", err)
	}
	if inst.Subdomain != "acme" {
		t.Errorf("Deploy() subdomain = %v, want lowercased acme", inst.Subdomain)
	}
	if o.TotalIDR != 40000 {
		t.Errorf("Deploy() total = %v, want 40000", o.TotalIDR)
	}

	// A second instance on the same subdomain must be rejected, regardless of
	// owner.
	_, _, err = svc.Deploy(ctx, 2, input)
	if err == nil {
		t.Fatal("Deploy() duplicate subdomain should fail")
	}
	appErr, ok := err.(*errors.AppError)
	if !ok || appErr.Code != errors.ErrCodeConflict {
		t.Errorf("Deploy() error = %v, want conflict", err)
	}
}

func TestAutomationService_Deploy_AdminPasswordDisclosure(t *testing.T) {
	_, creditRepo, svc := newAutomationFixture()
	ctx := context.Background()
	creditRepo.Balances[1] = 1000000

	inst, _, err := svc.Deploy(ctx, 1, automation.DeployInput{
		Name:         "Workflows",
		Subdomain:    "flows-a",
		PlanID:       "n8n-starter",
		LocationID:   "idn-jkt",
		AdminEmail:   "ops@acme.id",
		BillingCycle: catalog.BillingMonthly,
	})
	if err != nil {
		t.Fatalf("Deploy() error = %v", err)
	}
	if len(inst.AdminPassword) != 16 {
		t.Errorf("Deploy() admin password length = %d, want 16", len(inst.AdminPassword))
	}

	inst, _, err = svc.Deploy(ctx, 1, automation.DeployInput{
		Name:          "Workflows",
		Subdomain:     "flows-b",
		PlanID:        "n8n-starter",
		LocationID:    "idn-jkt",
		AdminEmail:    "ops@acme.id",
		AdminPassword: "chosen-by-ops!",
		BillingCycle:  catalog.BillingMonthly,
	})
	if err != nil {
		t.Fatalf("Deploy() error = %v", err)
	}
	if inst.AdminPassword != "" {
		t.Errorf("Deploy() echoed the supplied password")
	}
}

func TestAutomationService_Deploy_MissingFields(t *testing.T) {
	_, creditRepo, svc := newAutomationFixture()
	creditRepo.Balances[1] = 1000000

	_, _, err := svc.Deploy(context.Background(), 1, automation.DeployInput{
		PlanID:       "n8n-starter",
		LocationID:   "idn-jkt",
		BillingCycle: catalog.BillingMonthly,
	})
	if err == nil {
		t.Fatal("Deploy() expected validation error")
	}
	appErr, ok := err.(*errors.AppError)
	if !ok || appErr.Code != errors.ErrCodeValidation {
		t.Errorf("Deploy() error = %v, want validation error", err)
	}
}
