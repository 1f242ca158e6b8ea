package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/oksasatya/go-cost-manager/internal/domain/entity"
	"github.com/oksasatya/go-cost-manager/internal/domain/repository"
)

type cachedReport struct {
	gen    int64
	report entity.Report
}

// ReportCache is a map-backed report cache without expiry.
type ReportCache struct {
	mu      sync.Mutex
	gens    map[string]int64
	reports map[string]cachedReport
}

func NewReportCache() *ReportCache {
	return &ReportCache{gens: make(map[string]int64), reports: make(map[string]cachedReport)}
}

func cacheKey(userID string, year, month int) string {
	return fmt.Sprintf("%s:%d:%d", userID, year, month)
}

func (c *ReportCache) Generation(ctx context.Context, userID string, year, month int) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gens[cacheKey(userID, year, month)], nil
}

func (c *ReportCache) Get(ctx context.Context, userID string, year, month int, gen int64) (*entity.Report, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	key := cacheKey(userID, year, month)
	e, ok := c.reports[key]
	if !ok || e.gen != gen || gen != c.gens[key] {
		return nil, false, nil
	}
	r := e.report
	return &r, true, nil
}

// Set drops reports computed under an older generation.
func (c *ReportCache) Set(ctx context.Context, r *entity.Report, gen int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	key := cacheKey(r.UserID, r.Year, r.Month)
	if gen != c.gens[key] {
		return nil
	}
	c.reports[key] = cachedReport{gen: gen, report: *r}
	return nil
}

func (c *ReportCache) Invalidate(ctx context.Context, userID string, year, month int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	key := cacheKey(userID, year, month)
	c.gens[key]++
	delete(c.reports, key)
	return nil
}

// Has reports whether a current report for the period is cached.
func (c *ReportCache) Has(userID string, year, month int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	key := cacheKey(userID, year, month)
	e, ok := c.reports[key]
	return ok && e.gen == c.gens[key]
}

var _ repository.ReportCache = (*ReportCache)(nil)
