package automation

import (
	"context"

	"github.com/belajarhosting/platform/internal/domain/order"
)

// Service defines the interface for automation business logic
type Service interface {
	Deploy(ctx context.Context, userID int64, input DeployInput) (*Instance, *order.Order, error)
	Get(ctx context.Context, userID, id int64) (*Instance, error)
	List(ctx context.Context, userID int64, limit, offset int) ([]*Instance, int64, error)
	Delete(ctx context.Context, userID, id int64) error
}
