package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/oksasatya/go-cost-manager/internal/domain/entity"
	"github.com/oksasatya/go-cost-manager/internal/domain/repository"
	"github.com/oksasatya/go-cost-manager/pkg/helpers"
)

// ReportCache stores computed monthly reports in Redis as JSON. Report keys
// carry the period generation; Invalidate bumps it with INCR, which orphans
// older keys until their TTL runs out.
type ReportCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewReportCache(rdb *redis.Client, ttl time.Duration) *ReportCache {
	return &ReportCache{rdb: rdb, ttl: ttl}
}

func period(userID string, year, month int) string {
	return fmt.Sprintf("%s:%04d:%02d", userID, year, month)
}

func genKey(userID string, year, month int) string {
	return "report:gen:" + period(userID, year, month)
}

func reportKey(userID string, year, month int, gen int64) string {
	return fmt.Sprintf("report:%s:g%d", period(userID, year, month), gen)
}

func (c *ReportCache) Generation(ctx context.Context, userID string, year, month int) (int64, error) {
	gen, err := c.rdb.Get(ctx, genKey(userID, year, month)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}

func (c *ReportCache) Get(ctx context.Context, userID string, year, month int, gen int64) (*entity.Report, bool, error) {
	var r entity.Report
	ok, err := helpers.RedisGetJSON(ctx, c.rdb, reportKey(userID, year, month, gen), &r)
	if err != nil || !ok {
		return nil, false, err
	}
	return &r, true, nil
}

func (c *ReportCache) Set(ctx context.Context, r *entity.Report, gen int64) error {
	return helpers.RedisSetJSON(ctx, c.rdb, reportKey(r.UserID, r.Year, r.Month, gen), r, c.ttl)
}

func (c *ReportCache) Invalidate(ctx context.Context, userID string, year, month int) error {
	return c.rdb.Incr(ctx, genKey(userID, year, month)).Err()
}

var _ repository.ReportCache = (*ReportCache)(nil)
