package hosting

import "context"

// Repository defines the interface for hosting site data access
type Repository interface {
	Create(ctx context.Context, site *Site) error
	GetByID(ctx context.Context, userID, id int64) (*Site, error)
	Update(ctx context.Context, site *Site) error
	Delete(ctx context.Context, userID, id int64) error
	List(ctx context.Context, userID int64, limit, offset int) ([]*Site, int64, error)
	GetAnyByID(ctx context.Context, id int64) (*Site, error)
}
