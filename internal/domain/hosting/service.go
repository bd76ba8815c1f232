package hosting

import (
	"context"

	"github.com/belajarhosting/platform/internal/domain/order"
)

// Service defines the interface for hosting business logic
type Service interface {
	Deploy(ctx context.Context, userID int64, input DeployInput) (*Site, *order.Order, error)
	Get(ctx context.Context, userID, id int64) (*Site, error)
	List(ctx context.Context, userID int64, limit, offset int) ([]*Site, int64, error)

	// SetSubdomains replaces the subdomain list, enforcing the plan limit
	SetSubdomains(ctx context.Context, userID, id int64, subdomains []string) (*Site, error)

	Delete(ctx context.Context, userID, id int64) error
}
