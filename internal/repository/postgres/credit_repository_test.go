package postgres

import (
	"context"
	"testing"

	"github.com/belajarhosting/platform/internal/domain/credit"
	"github.com/belajarhosting/platform/internal/pkg/errors"
	"github.com/belajarhosting/platform/internal/testutil"
)

func TestCreditRepository_Balance(t *testing.T) {
	db := testutil.NewTestDB(t)
	defer testutil.CleanupDB(db)

	repo := NewCreditRepository(db)
	ctx := context.Background()

	// A user without a balance row reads zero
	balance, err := repo.GetBalance(ctx, 1)
	if err != nil {
		t.Fatalf("GetBalance() error = %v", err)
	}
	if balance != 0 {
		t.Errorf("GetBalance() = %v, want 0", balance)
	}

	if err := repo.AddBalance(ctx, 1, 100000); err != nil {
		t.Fatalf("AddBalance() error = %v", err)
	}
	if err := repo.AddBalance(ctx, 1, -30000); err != nil {
		t.Fatalf("AddBalance() error = %v", err)
	}

	balance, err = repo.GetBalance(ctx, 1)
	if err != nil {
		t.Fatalf("GetBalance() error = %v", err)
	}
	if balance != 70000 {
		t.Errorf("GetBalance() = %v, want 70000", balance)
	}
}

func TestCreditRepository_Transactions(t *testing.T) {
	db := testutil.NewTestDB(t)
	defer testutil.CleanupDB(db)

	repo := NewCreditRepository(db)
	ctx := context.Background()

	tx := &credit.Transaction{
		UserID:    1,
		Type:      credit.TypeTopup,
		AmountIDR: 50000,
		Method:    "bank_transfer",
		Status:    credit.StatusPending,
	}
	if err := repo.CreateTransaction(ctx, tx); err != nil {
		t.Fatalf("CreateTransaction() error = %v", err)
	}
	if tx.ID == 0 {
		t.Fatal("CreateTransaction() did not set ID")
	}

	tx.Status = credit.StatusPaid
	if err := repo.UpdateTransaction(ctx, tx); err != nil {
		t.Fatalf("UpdateTransaction() error = %v", err)
	}

	got, err := repo.GetTransaction(ctx, tx.ID)
	if err != nil {
		t.Fatalf("GetTransaction() error = %v", err)
	}
	if got.Status != credit.StatusPaid || got.Method != "bank_transfer" {
		t.Errorf("GetTransaction() = %+v", got)
	}

	list, total, err := repo.ListTransactions(ctx, credit.Filter{UserID: 1, Status: credit.StatusPaid}, 20, 0)
	if err != nil {
		t.Fatalf("ListTransactions() error = %v", err)
	}
	if total != 1 || len(list) != 1 {
		t.Errorf("ListTransactions() total = %v, want 1", total)
	}
}

func TestCreditRepository_DeductBalance(t *testing.T) {
	db := testutil.NewTestDB(t)
	defer testutil.CleanupDB(db)

	repo := NewCreditRepository(db)
	ctx := context.Background()

	if err := repo.AddBalance(ctx, 1, 50000); err != nil {
		t.Fatalf("AddBalance() error = %v", err)
	}

	if err := repo.DeductBalance(ctx, 1, 40000); err != nil {
		t.Fatalf("DeductBalance() error = %v", err)
	}

	// A second deduction of the same size exceeds what is left; the balance
	// must stay where the first deduction put it, never go negative.
	err := repo.DeductBalance(ctx, 1, 40000)
	if err == nil {
		t.Fatal("DeductBalance() beyond the balance should fail")
	}
	appErr, ok := err.(*errors.AppError)
	if !ok || appErr.Code != errors.ErrCodeInsufficientCredit {
		t.Errorf("DeductBalance() error = %v, want insufficient credit", err)
	}

	balance, err := repo.GetBalance(ctx, 1)
	if err != nil {
		t.Fatalf("GetBalance() error = %v", err)
	}
	if balance != 10000 {
		t.Errorf("GetBalance() = %v, want 10000", balance)
	}

	// A user with no balance row cannot be deducted at all
	if err := repo.DeductBalance(ctx, 2, 1000); err == nil {
		t.Error("DeductBalance() without a balance row should fail")
	}
}

func TestCreditRepository_SettleTopup(t *testing.T) {
	db := testutil.NewTestDB(t)
	defer testutil.CleanupDB(db)

	repo := NewCreditRepository(db)
	ctx := context.Background()

	tx := &credit.Transaction{
		UserID:    7,
		Type:      credit.TypeTopup,
		AmountIDR: 50000,
		Method:    "bank_transfer",
		Status:    credit.StatusPending,
	}
	if err := repo.CreateTransaction(ctx, tx); err != nil {
		t.Fatalf("CreateTransaction() error = %v", err)
	}

	if err := repo.SettleTopup(ctx, tx); err != nil {
		t.Fatalf("SettleTopup() error = %v", err)
	}
	if tx.Status != credit.StatusPaid {
		t.Errorf("SettleTopup() status = %v, want paid", tx.Status)
	}

	got, err := repo.GetTransaction(ctx, tx.ID)
	if err != nil {
		t.Fatalf("GetTransaction() error = %v", err)
	}
	if got.Status != credit.StatusPaid {
		t.Errorf("GetTransaction() status = %v, want paid", got.Status)
	}

	balance, err := repo.GetBalance(ctx, 7)
	if err != nil {
		t.Fatalf("GetBalance() error = %v", err)
	}
	if balance != 50000 {
		t.Errorf("GetBalance() = %v, want 50000", balance)
	}

	// A retry against the already-settled transaction must not credit the
	// balance a second time.
	retry := &credit.Transaction{ID: tx.ID, UserID: 7, AmountIDR: 50000, Status: credit.StatusPending}
	err = repo.SettleTopup(ctx, retry)
	if err == nil {
		t.Fatal("SettleTopup() on a settled transaction should fail")
	}
	appErr, ok := err.(*errors.AppError)
	if !ok || appErr.Code != errors.ErrCodeInvalidState {
		t.Errorf("SettleTopup() error = %v, want invalid state", err)
	}

	balance, err = repo.GetBalance(ctx, 7)
	if err != nil {
		t.Fatalf("GetBalance() error = %v", err)
	}
	if balance != 50000 {
		t.Errorf("GetBalance() after retry = %v, want 50000", balance)
	}
}
