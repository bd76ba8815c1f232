package order

import "context"

// Repository defines the interface for order data access
type Repository interface {
	Create(ctx context.Context, o *Order) error
	GetByID(ctx context.Context, id int64) (*Order, error)
	Update(ctx context.Context, o *Order) error
	List(ctx context.Context, filter Filter, limit, offset int) ([]*Order, int64, error)

	// ListDue returns active orders whose paid period has lapsed
	ListDue(ctx context.Context, limit int) ([]*Order, error)
}
