package services

import (
	"context"

	"github.com/belajarhosting/platform/internal/domain/credit"
	"github.com/belajarhosting/platform/internal/pkg/errors"
)

// chargeCredits deducts amountIDR from the user's balance and records a
// settled deduct transaction. Every deploy flow pays through this helper.
// The deduction is guarded at the repository, so two orders racing for the
// same funds cannot both be accepted.
func chargeCredits(ctx context.Context, credits credit.Repository, userID, amountIDR int64) error {
	if err := credits.DeductBalance(ctx, userID, amountIDR); err != nil {
		return err
	}
	tx := &credit.Transaction{
		UserID:    userID,
		Type:      credit.TypeDeduct,
		AmountIDR: amountIDR,
		Status:    credit.StatusPaid,
	}
	if err := credits.CreateTransaction(ctx, tx); err != nil {
		return errors.DatabaseError("Failed to record deduction", err)
	}
	return nil
}
