package credit

import "context"

// Service defines the interface for credit business logic
type Service interface {
	// Balance returns the user's credit balance in IDR
	Balance(ctx context.Context, userID int64) (int64, error)

	// TopUp creates a pending top-up transaction
	TopUp(ctx context.Context, userID, amountIDR int64, method string) (*Transaction, error)

	// Cancel cancels a pending transaction owned by the user
	Cancel(ctx context.Context, userID, txID int64) error

	// List retrieves the user's transactions
	List(ctx context.Context, userID int64, limit, offset int) ([]*Transaction, int64, error)

	// Admin operations

	// ListAll retrieves transactions across users
	ListAll(ctx context.Context, filter Filter, limit, offset int) ([]*Transaction, int64, error)

	// Settle marks a pending top-up paid and credits the balance
	Settle(ctx context.Context, txID int64) error

	// Reject marks a pending top-up rejected
	Reject(ctx context.Context, txID int64) error
}
