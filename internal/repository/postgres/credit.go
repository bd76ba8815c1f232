package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/belajarhosting/platform/internal/domain/credit"
	"github.com/belajarhosting/platform/internal/pkg/errors"
)

// CreditRepository implements credit.Repository
type CreditRepository struct {
	db *sql.DB
}

// NewCreditRepository creates a new credit repository
func NewCreditRepository(db *sql.DB) credit.Repository {
	return &CreditRepository{db: db}
}

// execer covers *sql.DB and *sql.Tx so balance writes can run standalone or
// inside a transaction.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// GetBalance returns the user's current balance in IDR, zero if absent
func (r *CreditRepository) GetBalance(ctx context.Context, userID int64) (int64, error) {
	var balance int64
	err := r.db.QueryRowContext(ctx,
		"SELECT balance_idr FROM credit_balances WHERE user_id = $1", userID,
	).Scan(&balance)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, errors.DatabaseError("Failed to get balance", err)
	}
	return balance, nil
}

// AddBalance adjusts the user's balance by delta, creating the row on first use
func (r *CreditRepository) AddBalance(ctx context.Context, userID, delta int64) error {
	return addBalance(ctx, r.db, userID, delta)
}

func addBalance(ctx context.Context, ex execer, userID, delta int64) error {
	now := time.Now().Unix()
	result, err := ex.ExecContext(ctx,
		"UPDATE credit_balances SET balance_idr = balance_idr + $1, updated_at = $2 WHERE user_id = $3",
		delta, now, userID,
	)
	if err != nil {
		return errors.DatabaseError("Failed to update balance", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return errors.DatabaseError("Failed to get affected rows", err)
	}
	if rows == 0 {
		_, err = ex.ExecContext(ctx,
			"INSERT INTO credit_balances (user_id, balance_idr, updated_at) VALUES ($1, $2, $3)",
			userID, delta, now,
		)
		if err != nil {
			return errors.DatabaseError("Failed to create balance", err)
		}
	}
	return nil
}

// DeductBalance subtracts amountIDR only when the balance covers it. The
// balance check lives in the WHERE clause, so two concurrent deductions can
// never both pass against funds that cover only one of them.
func (r *CreditRepository) DeductBalance(ctx context.Context, userID, amountIDR int64) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE credit_balances SET balance_idr = balance_idr - $1, updated_at = $2 WHERE user_id = $3 AND balance_idr >= $4",
		amountIDR, time.Now().Unix(), userID, amountIDR,
	)
	if err != nil {
		return errors.DatabaseError("Failed to deduct balance", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return errors.DatabaseError("Failed to get affected rows", err)
	}
	if rows == 0 {
		return errors.InsufficientCredit("Credit balance is too low for this order")
	}
	return nil
}

const transactionColumns = "id, user_id, type, amount_idr, method, status, created_at, updated_at"

func scanTransaction(scan func(dest ...interface{}) error) (*credit.Transaction, error) {
	var tx credit.Transaction
	var method sql.NullString
	var createdAt, updatedAt int64

	err := scan(&tx.ID, &tx.UserID, &tx.Type, &tx.AmountIDR, &method, &tx.Status, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	if method.Valid {
		tx.Method = method.String
	}
	tx.CreatedAt = time.Unix(createdAt, 0)
	tx.UpdatedAt = time.Unix(updatedAt, 0)
	return &tx, nil
}

// CreateTransaction records a ledger entry
func (r *CreditRepository) CreateTransaction(ctx context.Context, tx *credit.Transaction) error {
	now := time.Now()
	tx.CreatedAt = now
	tx.UpdatedAt = now

	query := `
		INSERT INTO credit_transactions (user_id, type, amount_idr, method, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	err := r.db.QueryRowContext(ctx, query,
		tx.UserID, tx.Type, tx.AmountIDR, tx.Method, tx.Status, now.Unix(), now.Unix(),
	).Scan(&tx.ID)
	if err != nil {
		return errors.DatabaseError("Failed to create transaction", err)
	}
	return nil
}

// GetTransaction retrieves a ledger entry
func (r *CreditRepository) GetTransaction(ctx context.Context, id int64) (*credit.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM credit_transactions WHERE id = $1`

	row := r.db.QueryRowContext(ctx, query, id)
	tx, err := scanTransaction(row.Scan)
	if err == sql.ErrNoRows {
		return nil, errors.NotFound("Transaction")
	}
	if err != nil {
		return nil, errors.DatabaseError("Failed to get transaction", err)
	}
	return tx, nil
}

// UpdateTransaction updates a ledger entry's status
func (r *CreditRepository) UpdateTransaction(ctx context.Context, tx *credit.Transaction) error {
	tx.UpdatedAt = time.Now()

	result, err := r.db.ExecContext(ctx,
		"UPDATE credit_transactions SET status = $1, updated_at = $2 WHERE id = $3",
		tx.Status, tx.UpdatedAt.Unix(), tx.ID,
	)
	if err != nil {
		return errors.DatabaseError("Failed to update transaction", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return errors.DatabaseError("Failed to get affected rows", err)
	}
	if rows == 0 {
		return errors.NotFound("Transaction")
	}
	return nil
}

// SettleTopup marks the pending transaction paid and credits the user's
// balance atomically. The status flip is guarded on pending, so a settled,
// cancelled or rejected top-up can never be credited again.
func (r *CreditRepository) SettleTopup(ctx context.Context, tx *credit.Transaction) error {
	dbTx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.DatabaseError("Failed to begin transaction", err)
	}
	defer dbTx.Rollback()

	now := time.Now()
	result, err := dbTx.ExecContext(ctx,
		"UPDATE credit_transactions SET status = $1, updated_at = $2 WHERE id = $3 AND status = $4",
		credit.StatusPaid, now.Unix(), tx.ID, credit.StatusPending,
	)
	if err != nil {
		return errors.DatabaseError("Failed to settle transaction", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return errors.DatabaseError("Failed to get affected rows", err)
	}
	if rows == 0 {
		return errors.InvalidState("Only pending top-ups can be settled")
	}

	if err := addBalance(ctx, dbTx, tx.UserID, tx.AmountIDR); err != nil {
		return err
	}

	if err := dbTx.Commit(); err != nil {
		return errors.DatabaseError("Failed to commit settlement", err)
	}

	tx.Status = credit.StatusPaid
	tx.UpdatedAt = now
	return nil
}

// ListTransactions retrieves ledger entries matching the filter
func (r *CreditRepository) ListTransactions(ctx context.Context, filter credit.Filter, limit, offset int) ([]*credit.Transaction, int64, error) {
	where := " WHERE 1=1"
	var args []interface{}

	if filter.UserID != 0 {
		args = append(args, filter.UserID)
		where += fmt.Sprintf(" AND user_id = $%d", len(args))
	}
	if filter.Type != "" {
		args = append(args, filter.Type)
		where += fmt.Sprintf(" AND type = $%d", len(args))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		where += fmt.Sprintf(" AND status = $%d", len(args))
	}

	var total int64
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM credit_transactions"+where, args...).Scan(&total); err != nil {
		return nil, 0, errors.DatabaseError("Failed to count transactions", err)
	}

	query := fmt.Sprintf("SELECT %s FROM credit_transactions%s ORDER BY id DESC LIMIT $%d OFFSET $%d",
		transactionColumns, where, len(args)+1, len(args)+2)
	rows, err := r.db.QueryContext(ctx, query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, errors.DatabaseError("Failed to list transactions", err)
	}
	defer rows.Close()

	var transactions []*credit.Transaction
	for rows.Next() {
		tx, err := scanTransaction(rows.Scan)
		if err != nil {
			return nil, 0, errors.DatabaseError("Failed to scan transaction", err)
		}
		transactions = append(transactions, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, errors.DatabaseError("Failed to iterate transactions", err)
	}

	return transactions, total, nil
}
