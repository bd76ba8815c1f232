package services

import (
	"context"
	"testing"

	"github.com/belajarhosting/platform/internal/catalog"
	"github.com/belajarhosting/platform/internal/domain/database"
	"github.com/belajarhosting/platform/internal/pkg/logger"
	"github.com/belajarhosting/platform/internal/testutil"
)

func newDatabaseFixture() (*testutil.MockDatabaseRepository, *testutil.MockCreditRepository, database.Service) {
	repo := testutil.NewMockDatabaseRepository()
	orderRepo := testutil.NewMockOrderRepository()
	creditRepo := testutil.NewMockCreditRepository()
	log := logger.New(logger.Config{Level: "error", Format: "json"})
	svc := NewDatabaseService(repo, orderRepo, creditRepo, log)
	return repo, creditRepo, svc
}

func TestDatabaseService_Deploy(t *testing.T) {
	tests := []struct {
		name        string
		input       database.DeployInput
		wantErr     bool
		wantVersion string
	}{
		{
			name: "valid engine version is kept",
			input: database.DeployInput{
				Name:         "appdb",
				EngineID:     "postgresql",
				Version:      "14",
				PlanID:       "db-small",
				LocationID:   "idn-jkt",
				DatabaseName: "app",
				DatabaseUser: "app",
				BillingCycle: catalog.BillingMonthly,
			},
			wantVersion: "14",
		},
		{
			name: "version from another engine resets to the default",
			input: database.DeployInput{
				Name:         "appdb",
				EngineID:     "postgresql",
				Version:      "8.0",
				PlanID:       "db-small",
				LocationID:   "idn-jkt",
				DatabaseName: "app",
				DatabaseUser: "app",
				BillingCycle: catalog.BillingMonthly,
			},
			wantVersion: "15",
		},
		{
			name: "empty version picks the default",
			input: database.DeployInput{
				Name:         "appdb",
				EngineID:     "mysql",
				PlanID:       "db-small",
				LocationID:   "idn-jkt",
				DatabaseName: "app",
				DatabaseUser: "app",
				BillingCycle: catalog.BillingMonthly,
			},
			wantVersion: "8.0",
		},
		{
			name: "unknown engine is rejected",
			input: database.DeployInput{
				Name:         "appdb",
				EngineID:     "oracle",
				PlanID:       "db-small",
				LocationID:   "idn-jkt",
				DatabaseName: "app",
				DatabaseUser: "app",
				BillingCycle: catalog.BillingMonthly,
			},
			wantErr: true,
		},
		{
			name: "missing database user is rejected",
			input: database.DeployInput{
				Name:         "appdb",
				EngineID:     "mysql",
				PlanID:       "db-small",
				LocationID:   "idn-jkt",
				DatabaseName: "app",
				BillingCycle: catalog.BillingMonthly,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, creditRepo, svc := newDatabaseFixture()
			creditRepo.Balances[1] = 1000000

			inst, _, err := svc.Deploy(context.Background(), 1, tt.input)

			if (err != nil) != tt.wantErr {
				t.Fatalf("Deploy() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}

			if inst.Version != tt.wantVersion {
				t.Errorf("Deploy() version = %v, want %v", inst.Version, tt.wantVersion)
			}
			if inst.Status != database.StatusPending {
				t.Errorf("Deploy() status = %v, want pending", inst.Status)
			}
		})
	}
}

func TestDatabaseService_Deploy_PasswordDisclosure(t *testing.T) {
	_, creditRepo, svc := newDatabaseFixture()
	ctx := context.Background()
	creditRepo.Balances[1] = 1000000

	inst, _, err := svc.Deploy(ctx, 1, database.DeployInput{
		Name:         "appdb",
		EngineID:     "postgresql",
		PlanID:       "db-small",
		LocationID:   "idn-jkt",
		DatabaseName: "app",
		DatabaseUser: "app",
		BillingCycle: catalog.BillingMonthly,
	})
	if err != nil {
		t.Fatalf("Deploy() error = %v", err)
	}
	if len(inst.Password) != 16 {
		t.Errorf("Deploy() password length = %d, want 16", len(inst.Password))
	}

	inst, _, err = svc.Deploy(ctx, 1, database.DeployInput{
		Name:         "otherdb",
		EngineID:     "postgresql",
		PlanID:       "db-small",
		LocationID:   "idn-jkt",
		DatabaseName: "other",
		DatabaseUser: "other",
		Password:     "chosen-by-owner",
		BillingCycle: catalog.BillingMonthly,
	})
	if err != nil {
		t.Fatalf("Deploy() error = %v", err)
	}
	if inst.Password != "" {
		t.Errorf("Deploy() echoed the supplied password")
	}
}
