package repository

import (
	"context"
	"time"

	"github.com/oksasatya/go-cost-manager/internal/domain/entity"
)

// CostRepository defines the storage operations on cost items.
type CostRepository interface {
	// Create stores c and fills its ID.
	Create(ctx context.Context, c *entity.Cost) error
	// FindByUserInRange returns the user's costs whose date lies in [from, to].
	FindByUserInRange(ctx context.Context, userID string, from, to time.Time) ([]entity.Cost, error)
	// SumByUser returns the sum of every cost of the user, 0 when there are none.
	SumByUser(ctx context.Context, userID string) (float64, error)
}

// CostIndex is a full-text index over cost items.
type CostIndex interface {
	Index(ctx context.Context, c *entity.Cost) error
	Search(ctx context.Context, userID, query string, size int) ([]entity.Cost, error)
}
