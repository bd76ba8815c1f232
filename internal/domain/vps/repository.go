package vps

import "context"

// Repository defines the interface for VPS instance data access
type Repository interface {
	Create(ctx context.Context, inst *Instance) error
	GetByID(ctx context.Context, userID, id int64) (*Instance, error)
	Update(ctx context.Context, inst *Instance) error
	Delete(ctx context.Context, userID, id int64) error
	List(ctx context.Context, userID int64, limit, offset int) ([]*Instance, int64, error)

	// GetAnyByID fetches without an owner check, for admin fulfillment
	GetAnyByID(ctx context.Context, id int64) (*Instance, error)
}
