package services

import (
	"context"
	"testing"

	"github.com/belajarhosting/platform/internal/domain/credit"
	"github.com/belajarhosting/platform/internal/pkg/errors"
	"github.com/belajarhosting/platform/internal/pkg/logger"
	"github.com/belajarhosting/platform/internal/testutil"
)

func newCreditFixture() (*testutil.MockCreditRepository, credit.Service) {
	repo := testutil.NewMockCreditRepository()
	log := logger.New(logger.Config{Level: "error", Format: "json"})
	svc := NewCreditService(repo, 10000, log)
	return repo, svc
}

func TestCreditService_TopUp(t *testing.T) {
	tests := []struct {
		name    string
		amount  int64
		method  string
		wantErr bool
	}{
		{
			name:   "valid top-up stays pending",
			amount: 50000,
			method: "bank_transfer",
		},
		{
			name:    "below minimum is rejected",
			amount:  5000,
			method:  "bank_transfer",
			wantErr: true,
		},
		{
			name:    "missing method is rejected",
			amount:  50000,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, svc := newCreditFixture()

			tx, err := svc.TopUp(context.Background(), 1, tt.amount, tt.method)

			if (err != nil) != tt.wantErr {
				t.Fatalf("TopUp() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}

			if tx.Status != credit.StatusPending {
				t.Errorf("TopUp() status = %v, want pending", tx.Status)
			}
			// The balance is only credited at settlement
			if repo.Balances[1] != 0 {
				t.Errorf("TopUp() balance = %v, want 0 before settlement", repo.Balances[1])
			}
		})
	}
}

func TestCreditService_SettleAndReject(t *testing.T) {
	repo, svc := newCreditFixture()
	ctx := context.Background()

	tx, err := svc.TopUp(ctx, 1, 50000, "bank_transfer")
	if err != nil {
		t.Fatalf("TopUp() error = %v", err)
	}

	if err := svc.Settle(ctx, tx.ID); err != nil {
		t.Fatalf("Settle() error = %v", err)
	}
	if repo.Balances[1] != 50000 {
		t.Errorf("Settle() balance = %v, want 50000", repo.Balances[1])
	}
	got, _ := repo.GetTransaction(ctx, tx.ID)
	if got.Status != credit.StatusPaid {
		t.Errorf("Settle() status = %v, want paid", got.Status)
	}

	// Settling twice must not double-credit
	if err := svc.Settle(ctx, tx.ID); err == nil {
		t.Error("Settle() on a paid transaction should fail")
	}
	if repo.Balances[1] != 50000 {
		t.Errorf("Settle() balance after retry = %v, want 50000", repo.Balances[1])
	}

	tx2, _ := svc.TopUp(ctx, 1, 30000, "ewallet")
	if err := svc.Reject(ctx, tx2.ID); err != nil {
		t.Fatalf("Reject() error = %v", err)
	}
	if repo.Balances[1] != 50000 {
		t.Errorf("Reject() balance = %v, want unchanged 50000", repo.Balances[1])
	}
}

func TestCreditService_Cancel(t *testing.T) {
	_, svc := newCreditFixture()
	ctx := context.Background()

	tx, err := svc.TopUp(ctx, 1, 50000, "bank_transfer")
	if err != nil {
		t.Fatalf("TopUp() error = %v", err)
	}

	// Another user cannot cancel it
	err = svc.Cancel(ctx, 2, tx.ID)
	if err == nil {
		t.Fatal("Cancel() by another user should fail")
	}
	appErr, ok := err.(*errors.AppError)
	if !ok || appErr.Code != errors.ErrCodeNotFound {
		t.Errorf("Cancel() error = %v, want not found", err)
	}

	if err := svc.Cancel(ctx, 1, tx.ID); err != nil {
		t.Fatalf("Cancel() error = %v", err)
	}

	// A cancelled top-up cannot be settled
	if err := svc.Settle(ctx, tx.ID); err == nil {
		t.Error("Settle() on a cancelled transaction should fail")
	}
}
