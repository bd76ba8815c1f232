package services

import (
	"context"
	"testing"

	"github.com/belajarhosting/platform/internal/catalog"
	"github.com/belajarhosting/platform/internal/domain/order"
	"github.com/belajarhosting/platform/internal/domain/vps"
	"github.com/belajarhosting/platform/internal/pkg/errors"
	"github.com/belajarhosting/platform/internal/pkg/logger"
	"github.com/belajarhosting/platform/internal/testutil"
)

func newVPSFixture() (*testutil.MockVPSRepository, *testutil.MockOrderRepository, *testutil.MockCreditRepository, vps.Service) {
	vpsRepo := testutil.NewMockVPSRepository()
	orderRepo := testutil.NewMockOrderRepository()
	creditRepo := testutil.NewMockCreditRepository()
	log := logger.New(logger.Config{Level: "error", Format: "json"})
	svc := NewVPSService(vpsRepo, orderRepo, creditRepo, log)
	return vpsRepo, orderRepo, creditRepo, svc
}

func TestVPSService_Deploy(t *testing.T) {
	tests := []struct {
		name      string
		balance   int64
		input     vps.DeployInput
		wantErr   bool
		wantCode  string
		wantTotal int64
	}{
		{
			name:    "monthly deploy charges the plan price",
			balance: 100000,
			input: vps.DeployInput{
				Hostname:     "web-01",
				PlanID:       "vps-basic",
				LocationID:   "idn-jkt",
				ImageID:      "ubuntu-24.04",
				BillingCycle: catalog.BillingMonthly,
			},
			wantTotal: 50000,
		},
		{
			name:    "yearly deploy charges ten months",
			balance: 600000,
			input: vps.DeployInput{
				Hostname:     "web-02",
				PlanID:       "vps-basic",
				LocationID:   "idn-jkt",
				ImageID:      "ubuntu-24.04",
				BillingCycle: catalog.BillingYearly,
			},
			wantTotal: 500000,
		},
		{
			name:    "insufficient balance is rejected",
			balance: 10000,
			input: vps.DeployInput{
				Hostname:     "web-03",
				PlanID:       "vps-basic",
				LocationID:   "idn-jkt",
				ImageID:      "ubuntu-24.04",
				BillingCycle: catalog.BillingMonthly,
			},
			wantErr:  true,
			wantCode: errors.ErrCodeInsufficientCredit,
		},
		{
			name:    "unknown plan is rejected",
			balance: 100000,
			input: vps.DeployInput{
				Hostname:     "web-04",
				PlanID:       "vps-unreal",
				LocationID:   "idn-jkt",
				ImageID:      "ubuntu-24.04",
				BillingCycle: catalog.BillingMonthly,
			},
			wantErr:  true,
			wantCode: errors.ErrCodeBadRequest,
		},
		{
			name:    "short root password is rejected",
			balance: 100000,
			input: vps.DeployInput{
				Hostname:     "web-05",
				PlanID:       "vps-basic",
				LocationID:   "idn-jkt",
				ImageID:      "ubuntu-24.04",
				RootPassword: "short",
				BillingCycle: catalog.BillingMonthly,
			},
			wantErr:  true,
			wantCode: errors.ErrCodeValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, orderRepo, creditRepo, svc := newVPSFixture()
			ctx := context.Background()
			userID := int64(1)
			creditRepo.Balances[userID] = tt.balance

			inst, o, err := svc.Deploy(ctx, userID, tt.input)

			if (err != nil) != tt.wantErr {
				t.Fatalf("Deploy() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				appErr, ok := err.(*errors.AppError)
				if !ok {
					t.Fatalf("Deploy() error type = %T, want *AppError", err)
				}
				if appErr.Code != tt.wantCode {
					t.Errorf("Deploy() code = %v, want %v", appErr.Code, tt.wantCode)
				}
				return
			}

			if inst.Status != vps.StatusPending {
				t.Errorf("Deploy() instance status = %v, want pending", inst.Status)
			}
			if o.TotalIDR != tt.wantTotal {
				t.Errorf("Deploy() total = %v, want %v", o.TotalIDR, tt.wantTotal)
			}
			if o.Status != order.StatusPending {
				t.Errorf("Deploy() order status = %v, want pending", o.Status)
			}
			if got := creditRepo.Balances[userID]; got != tt.balance-tt.wantTotal {
				t.Errorf("Deploy() remaining balance = %v, want %v", got, tt.balance-tt.wantTotal)
			}
			if len(orderRepo.Orders) != 1 {
				t.Errorf("Deploy() created %d orders, want 1", len(orderRepo.Orders))
			}
		})
	}
}

func TestVPSService_Deploy_EmptyHostnameShortCircuits(t *testing.T) {
	vpsRepo, orderRepo, creditRepo, svc := newVPSFixture()
	creditRepo.Balances[1] = 100000

	_, _, err := svc.Deploy(context.Background(), 1, vps.DeployInput{
		Hostname:     "   ",
		PlanID:       "vps-basic",
		LocationID:   "idn-jkt",
		ImageID:      "ubuntu-24.04",
		BillingCycle: catalog.BillingMonthly,
	})
	if err == nil {
		t.Fatal("Deploy() expected validation error")
	}

	if len(vpsRepo.Instances) != 0 {
		t.Errorf("Deploy() created %d instances, want 0", len(vpsRepo.Instances))
	}
	if len(orderRepo.Orders) != 0 {
		t.Errorf("Deploy() created %d orders, want 0", len(orderRepo.Orders))
	}
	if creditRepo.Balances[1] != 100000 {
		t.Errorf("Deploy() balance = %v, want untouched", creditRepo.Balances[1])
	}
}

func TestVPSService_Deploy_YearlyReferencePrice(t *testing.T) {
	_, _, creditRepo, svc := newVPSFixture()
	creditRepo.Balances[1] = 2000000

	_, o, err := svc.Deploy(context.Background(), 1, vps.DeployInput{
		Hostname:     "ref-check",
		PlanID:       "vps-basic",
		LocationID:   "idn-jkt",
		ImageID:      "ubuntu-24.04",
		BillingCycle: catalog.BillingYearly,
	})
	if err != nil {
		t.Fatalf("Deploy() error = %v", err)
	}
	if o.ReferenceIDR != 600000 {
		t.Errorf("Deploy() reference = %v, want 600000", o.ReferenceIDR)
	}
}

func TestVPSService_Lifecycle(t *testing.T) {
	vpsRepo, _, creditRepo, svc := newVPSFixture()
	ctx := context.Background()
	creditRepo.Balances[1] = 100000

	inst, _, err := svc.Deploy(ctx, 1, vps.DeployInput{
		Hostname:     "life-01",
		PlanID:       "vps-basic",
		LocationID:   "idn-jkt",
		ImageID:      "ubuntu-24.04",
		BillingCycle: catalog.BillingMonthly,
	})
	if err != nil {
		t.Fatalf("Deploy() error = %v", err)
	}

	// Start from pending is not a valid transition
	if err := svc.Start(ctx, 1, inst.ID); err == nil {
		t.Error("Start() on pending instance should fail")
	}

	// Simulate fulfillment
	inst.Status = vps.StatusActive
	vpsRepo.Instances[inst.ID] = inst

	if err := svc.Stop(ctx, 1, inst.ID); err != nil {
		t.Fatalf("Stop() error = %v", err)
	}
	if vpsRepo.Instances[inst.ID].Status != vps.StatusStopped {
		t.Errorf("Stop() status = %v, want stopped", vpsRepo.Instances[inst.ID].Status)
	}

	if err := svc.Restart(ctx, 1, inst.ID); err == nil {
		t.Error("Restart() on stopped instance should fail")
	}

	if err := svc.Start(ctx, 1, inst.ID); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if vpsRepo.Instances[inst.ID].Status != vps.StatusActive {
		t.Errorf("Start() status = %v, want active", vpsRepo.Instances[inst.ID].Status)
	}

	if err := svc.Restart(ctx, 1, inst.ID); err != nil {
		t.Errorf("Restart() error = %v", err)
	}

	if err := svc.Reinstall(ctx, 1, inst.ID, vps.ReinstallInput{ImageID: "debian-12"}); err != nil {
		t.Fatalf("Reinstall() error = %v", err)
	}
	if vpsRepo.Instances[inst.ID].ImageID != "debian-12" {
		t.Errorf("Reinstall() image = %v, want debian-12", vpsRepo.Instances[inst.ID].ImageID)
	}

	if err := svc.Terminate(ctx, 1, inst.ID); err != nil {
		t.Fatalf("Terminate() error = %v", err)
	}
	if len(vpsRepo.Instances) != 0 {
		t.Error("Terminate() instance still present")
	}
}

func TestVPSService_Deploy_RootPasswordDisclosure(t *testing.T) {
	_, _, creditRepo, svc := newVPSFixture()
	ctx := context.Background()
	creditRepo.Balances[1] = 200000

	// Leaving the password empty gets a generated one back, exactly once,
	// on the deploy response.
	inst, _, err := svc.Deploy(ctx, 1, vps.DeployInput{
		Hostname:     "gen-01",
		PlanID:       "vps-basic",
		LocationID:   "idn-jkt",
		ImageID:      "ubuntu-24.04",
		BillingCycle: catalog.BillingMonthly,
	})
	if err != nil {
		t.Fatalf("Deploy() error = %v", err)
	}
	if len(inst.RootPassword) != 16 {
		t.Errorf("Deploy() root password length = %d, want 16", len(inst.RootPassword))
	}

	// A caller-supplied password is never echoed back
	inst, _, err = svc.Deploy(ctx, 1, vps.DeployInput{
		Hostname:     "gen-02",
		PlanID:       "vps-basic",
		LocationID:   "idn-jkt",
		ImageID:      "ubuntu-24.04",
		RootPassword: "correct-horse-42",
		BillingCycle: catalog.BillingMonthly,
	})
	if err != nil {
		t.Fatalf("Deploy() error = %v", err)
	}
	if inst.RootPassword != "" {
		t.Errorf("Deploy() echoed the supplied password")
	}
}

func TestVPSService_OwnerIsolation(t *testing.T) {
	_, _, creditRepo, svc := newVPSFixture()
	ctx := context.Background()
	creditRepo.Balances[1] = 100000

	inst, _, err := svc.Deploy(ctx, 1, vps.DeployInput{
		Hostname:     "mine",
		PlanID:       "vps-basic",
		LocationID:   "idn-jkt",
		ImageID:      "ubuntu-24.04",
		BillingCycle: catalog.BillingMonthly,
	})
	if err != nil {
		t.Fatalf("Deploy() error = %v", err)
	}

	if _, err := svc.Get(ctx, 2, inst.ID); err == nil {
		t.Error("Get() by another user should fail")
	}
}
