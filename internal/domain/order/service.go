package order

import "context"

// Service defines the interface for order business logic (admin back-office)
type Service interface {
	// Get retrieves a single order
	Get(ctx context.Context, id int64) (*Order, error)

	// List retrieves orders matching the filter
	List(ctx context.Context, filter Filter, limit, offset int) ([]*Order, int64, error)

	// UpdateStatus moves an order between pending/active/cancelled/expired
	UpdateStatus(ctx context.Context, id int64, status string) error

	// Fulfill completes provisioning for a pending order and activates it.
	// VPS orders require a non-empty IP address.
	Fulfill(ctx context.Context, id int64, input FulfillInput) (*Order, error)

	// MarkExpired expires an active order past its paid period
	MarkExpired(ctx context.Context, id int64) error
}
