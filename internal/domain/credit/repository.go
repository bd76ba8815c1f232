package credit

import "context"

// Repository defines the interface for credit data access
type Repository interface {
	// GetBalance returns the user's current balance in IDR (zero if absent)
	GetBalance(ctx context.Context, userID int64) (int64, error)

	// AddBalance adjusts the user's balance by delta (may be negative)
	AddBalance(ctx context.Context, userID, delta int64) error

	// DeductBalance subtracts amountIDR only when the balance covers it,
	// returning an insufficient credit error otherwise. The check and the
	// write are a single guarded statement so concurrent deductions cannot
	// drive the balance negative.
	DeductBalance(ctx context.Context, userID, amountIDR int64) error

	CreateTransaction(ctx context.Context, tx *Transaction) error
	GetTransaction(ctx context.Context, id int64) (*Transaction, error)
	UpdateTransaction(ctx context.Context, tx *Transaction) error

	// SettleTopup marks the pending transaction paid and credits the user's
	// balance in one database transaction, so a paid ledger entry always
	// has its matching balance credit.
	SettleTopup(ctx context.Context, tx *Transaction) error
	ListTransactions(ctx context.Context, filter Filter, limit, offset int) ([]*Transaction, int64, error)
}
