package services

import (
	"context"
	"testing"

	"github.com/belajarhosting/platform/internal/catalog"
	"github.com/belajarhosting/platform/internal/domain/hosting"
	"github.com/belajarhosting/platform/internal/pkg/logger"
	"github.com/belajarhosting/platform/internal/testutil"
)

func newHostingFixture() (*testutil.MockHostingRepository, *testutil.MockOrderRepository, *testutil.MockCreditRepository, hosting.Service) {
	repo := testutil.NewMockHostingRepository()
	orderRepo := testutil.NewMockOrderRepository()
	creditRepo := testutil.NewMockCreditRepository()
	log := logger.New(logger.Config{Level: "error", Format: "json"})
	svc := NewHostingService(repo, orderRepo, creditRepo, log)
	return repo, orderRepo, creditRepo, svc
}

func TestHostingService_Deploy(t *testing.T) {
	tests := []struct {
		name           string
		input          hosting.DeployInput
		wantErr        bool
		wantSubdomains []string
	}{
		{
			name: "subdomains within the plan limit are kept",
			input: hosting.DeployInput{
				DomainName:   "contoh.id",
				PlanID:       "business",
				LocationID:   "idn-jkt",
				Subdomains:   []string{"blog", "shop"},
				AdminEmail:   "admin@contoh.id",
				BillingCycle: catalog.BillingMonthly,
			},
			wantSubdomains: []string{"blog", "shop"},
		},
		{
			name: "subdomains beyond the plan limit are truncated",
			input: hosting.DeployInput{
				DomainName:   "contoh.id",
				PlanID:       "starter",
				LocationID:   "idn-jkt",
				Subdomains:   []string{"blog", "shop", "mail", "dev"},
				AdminEmail:   "admin@contoh.id",
				BillingCycle: catalog.BillingMonthly,
			},
			wantSubdomains: []string{"blog"},
		},
		{
			name: "missing domain is rejected",
			input: hosting.DeployInput{
				PlanID:       "starter",
				LocationID:   "idn-jkt",
				AdminEmail:   "admin@contoh.id",
				BillingCycle: catalog.BillingMonthly,
			},
			wantErr: true,
		},
		{
			name: "missing admin email is rejected",
			input: hosting.DeployInput{
				DomainName:   "contoh.id",
				PlanID:       "starter",
				LocationID:   "idn-jkt",
				BillingCycle: catalog.BillingMonthly,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, creditRepo, svc := newHostingFixture()
			creditRepo.Balances[1] = 1000000

			site, _, err := svc.Deploy(context.Background(), 1, tt.input)

			if (err != nil) != tt.wantErr {
				t.Fatalf("Deploy() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}

			if len(site.Subdomains) != len(tt.wantSubdomains) {
				t.Fatalf("Deploy() subdomains = %v, want %v", site.Subdomains, tt.wantSubdomains)
			}
			for i, sub := range tt.wantSubdomains {
				if site.Subdomains[i] != sub {
					t.Errorf("Deploy() subdomains[%d] = %v, want %v", i, site.Subdomains[i], sub)
				}
			}
			if site.Status != hosting.StatusPending {
				t.Errorf("Deploy() status = %v, want pending", site.Status)
			}
		})
	}
}

func TestHostingService_Deploy_AdminPasswordDisclosure(t *testing.T) {
	_, _, creditRepo, svc := newHostingFixture()
	ctx := context.Background()
	creditRepo.Balances[1] = 1000000

	site, _, err := svc.Deploy(ctx, 1, hosting.DeployInput{
		DomainName:   "contoh.id",
		PlanID:       "starter",
		LocationID:   "idn-jkt",
		AdminEmail:   "admin@contoh.id",
		BillingCycle: catalog.BillingMonthly,
	})
	if err != nil {
		t.Fatalf("Deploy() error = %v", err)
	}
	if len(site.AdminPassword) != 16 {
		t.Errorf("Deploy() admin password length = %d, want 16", len(site.AdminPassword))
	}

	site, _, err = svc.Deploy(ctx, 1, hosting.DeployInput{
		DomainName:    "lain.id",
		PlanID:        "starter",
		LocationID:    "idn-jkt",
		AdminEmail:    "admin@lain.id",
		AdminPassword: "chosen-by-admin",
		BillingCycle:  catalog.BillingMonthly,
	})
	if err != nil {
		t.Fatalf("Deploy() error = %v", err)
	}
	if site.AdminPassword != "" {
		t.Errorf("Deploy() echoed the supplied password")
	}
}

func TestHostingService_SetSubdomains(t *testing.T) {
	_, _, creditRepo, svc := newHostingFixture()
	ctx := context.Background()
	creditRepo.Balances[1] = 1000000

	site, _, err := svc.Deploy(ctx, 1, hosting.DeployInput{
		DomainName:   "contoh.id",
		PlanID:       "starter",
		LocationID:   "idn-jkt",
		AdminEmail:   "admin@contoh.id",
		BillingCycle: catalog.BillingMonthly,
	})
	if err != nil {
		t.Fatalf("Deploy() error = %v", err)
	}

	updated, err := svc.SetSubdomains(ctx, 1, site.ID, []string{"blog"})
	if err != nil {
		t.Fatalf("SetSubdomains() error = %v", err)
	}
	if len(updated.Subdomains) != 1 || updated.Subdomains[0] != "blog" {
		t.Errorf("SetSubdomains() = %v, want [blog]", updated.Subdomains)
	}

	// Starter allows a single subdomain
	if _, err := svc.SetSubdomains(ctx, 1, site.ID, []string{"blog", "shop"}); err == nil {
		t.Error("SetSubdomains() over the plan limit should fail")
	}
}
