package services

import (
	"context"

	"github.com/belajarhosting/platform/internal/domain/credit"
	"github.com/belajarhosting/platform/internal/pkg/errors"
	"github.com/belajarhosting/platform/internal/pkg/logger"
	"github.com/belajarhosting/platform/internal/pkg/metrics"
)

// CreditService implements credit.Service
type CreditService struct {
	repo        credit.Repository
	minTopupIDR int64
	logger      *logger.Logger
}

// NewCreditService creates a new credit service
func NewCreditService(repo credit.Repository, minTopupIDR int64, log *logger.Logger) credit.Service {
	return &CreditService{
		repo:        repo,
		minTopupIDR: minTopupIDR,
		logger:      log,
	}
}

// Balance returns the user's credit balance in IDR
func (s *CreditService) Balance(ctx context.Context, userID int64) (int64, error) {
	return s.repo.GetBalance(ctx, userID)
}

// TopUp creates a pending top-up. The balance is only credited once an admin
// settles the transaction; payment confirmation happens out of band.
func (s *CreditService) TopUp(ctx context.Context, userID, amountIDR int64, method string) (*credit.Transaction, error) {
	if amountIDR < s.minTopupIDR {
		return nil, errors.BadRequest("Top-up amount is below the minimum")
	}
	if method == "" {
		return nil, errors.ValidationError("Validation failed", []string{"payment method is required"})
	}

	tx := &credit.Transaction{
		UserID:    userID,
		Type:      credit.TypeTopup,
		AmountIDR: amountIDR,
		Method:    method,
		Status:    credit.StatusPending,
	}
	if err := s.repo.CreateTransaction(ctx, tx); err != nil {
		s.logger.ErrorWithErr(err, "Failed to create top-up")
		return nil, err
	}

	metrics.TopupRecorded(credit.StatusPending, amountIDR)
	s.logger.WithFields(map[string]interface{}{
		"user_id": userID,
		"tx_id":   tx.ID,
		"amount":  amountIDR,
		"method":  method,
	}).Info("Top-up created")
	return tx, nil
}

// Cancel cancels a pending top-up owned by the user
func (s *CreditService) Cancel(ctx context.Context, userID, txID int64) error {
	tx, err := s.repo.GetTransaction(ctx, txID)
	if err != nil {
		return err
	}
	if tx.UserID != userID {
		return errors.NotFound("Transaction")
	}
	if tx.Type != credit.TypeTopup || tx.Status != credit.StatusPending {
		return errors.InvalidState("Only pending top-ups can be cancelled")
	}

	tx.Status = credit.StatusCancelled
	if err := s.repo.UpdateTransaction(ctx, tx); err != nil {
		s.logger.ErrorWithErr(err, "Failed to cancel top-up")
		return err
	}
	s.logger.WithFields(map[string]interface{}{"tx_id": txID}).Info("Top-up cancelled")
	return nil
}

// List retrieves the user's transactions
func (s *CreditService) List(ctx context.Context, userID int64, limit, offset int) ([]*credit.Transaction, int64, error) {
	return s.repo.ListTransactions(ctx, credit.Filter{UserID: userID}, limit, offset)
}

// ListAll retrieves transactions across users
func (s *CreditService) ListAll(ctx context.Context, filter credit.Filter, limit, offset int) ([]*credit.Transaction, int64, error) {
	return s.repo.ListTransactions(ctx, filter, limit, offset)
}

// Settle marks a pending top-up paid and credits the user's balance
func (s *CreditService) Settle(ctx context.Context, txID int64) error {
	tx, err := s.repo.GetTransaction(ctx, txID)
	if err != nil {
		return err
	}
	if tx.Type != credit.TypeTopup || tx.Status != credit.StatusPending {
		return errors.InvalidState("Only pending top-ups can be settled")
	}

	// Status flip and balance credit commit together; a paid top-up that
	// never credited the balance cannot be left behind.
	if err := s.repo.SettleTopup(ctx, tx); err != nil {
		s.logger.ErrorWithErr(err, "Failed to settle top-up")
		return err
	}

	metrics.TopupRecorded(credit.StatusPaid, tx.AmountIDR)
	s.logger.WithFields(map[string]interface{}{
		"tx_id":   txID,
		"user_id": tx.UserID,
		"amount":  tx.AmountIDR,
	}).Info("Top-up settled")
	return nil
}

// Reject marks a pending top-up rejected without touching the balance
func (s *CreditService) Reject(ctx context.Context, txID int64) error {
	tx, err := s.repo.GetTransaction(ctx, txID)
	if err != nil {
		return err
	}
	if tx.Type != credit.TypeTopup || tx.Status != credit.StatusPending {
		return errors.InvalidState("Only pending top-ups can be rejected")
	}

	tx.Status = credit.StatusRejected
	if err := s.repo.UpdateTransaction(ctx, tx); err != nil {
		s.logger.ErrorWithErr(err, "Failed to reject top-up")
		return err
	}

	metrics.TopupRecorded(credit.StatusRejected, tx.AmountIDR)
	s.logger.WithFields(map[string]interface{}{"tx_id": txID}).Info("Top-up rejected")
	return nil
}
