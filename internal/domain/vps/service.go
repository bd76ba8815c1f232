package vps

import (
	"context"

	"github.com/belajarhosting/platform/internal/domain/order"
)

// Service defines the interface for VPS business logic
type Service interface {
	// Deploy validates a draft, prices it and creates the pending instance
	// plus its order
	Deploy(ctx context.Context, userID int64, input DeployInput) (*Instance, *order.Order, error)

	// Get retrieves an instance owned by the user
	Get(ctx context.Context, userID, id int64) (*Instance, error)

	// List retrieves the user's instances
	List(ctx context.Context, userID int64, limit, offset int) ([]*Instance, int64, error)

	// Lifecycle operations; only valid from specific states
	Start(ctx context.Context, userID, id int64) error
	Stop(ctx context.Context, userID, id int64) error
	Restart(ctx context.Context, userID, id int64) error
	Reinstall(ctx context.Context, userID, id int64, input ReinstallInput) error

	// Terminate removes the instance
	Terminate(ctx context.Context, userID, id int64) error
}
