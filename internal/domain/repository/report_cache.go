package repository

import (
	"context"

	"github.com/oksasatya/go-cost-manager/internal/domain/entity"
)

// ReportCache keeps computed reports keyed by (userid, year, month).
//
// Every period has a generation that Invalidate bumps. Readers fetch the
// generation before querying the store and pass it to Get and Set, so a
// report computed before an invalidation is never served after it.
type ReportCache interface {
	Generation(ctx context.Context, userID string, year, month int) (int64, error)
	Get(ctx context.Context, userID string, year, month int, gen int64) (*entity.Report, bool, error)
	Set(ctx context.Context, r *entity.Report, gen int64) error
	Invalidate(ctx context.Context, userID string, year, month int) error
}
