package postgres

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/go-cost-manager/internal/domain/entity"
	"github.com/oksasatya/go-cost-manager/internal/domain/repository"
)

type CostRepository struct {
	pool *pgxpool.Pool
}

func NewCostRepository(pool *pgxpool.Pool) *CostRepository {
	return &CostRepository{pool: pool}
}

func insertCostQuery(c *entity.Cost) (string, []any, error) {
	return psql.Insert("costs").
		Columns("description", "category", "userid", "sum", "date").
		Values(c.Description, string(c.Category), c.UserID, c.Sum, c.Date).
		Suffix("RETURNING id").
		ToSql()
}

// Rows come back ordered by date then id so report buckets are stable.
func selectCostsInRangeQuery(userID string, from, to time.Time) (string, []any, error) {
	return psql.Select("id", "description", "category", "userid", "sum", "date").
		From("costs").
		Where(sq.Eq{"userid": userID}).
		Where(sq.GtOrEq{"date": from}).
		Where(sq.LtOrEq{"date": to}).
		OrderBy("date", "id").
		ToSql()
}

func sumByUserQuery(userID string) (string, []any, error) {
	return psql.Select("COALESCE(SUM(sum), 0)").
		From("costs").
		Where(sq.Eq{"userid": userID}).
		ToSql()
}

func (r *CostRepository) Create(ctx context.Context, c *entity.Cost) error {
	query, args, err := insertCostQuery(c)
	if err != nil {
		return err
	}
	return r.pool.QueryRow(ctx, query, args...).Scan(&c.ID)
}

func (r *CostRepository) FindByUserInRange(ctx context.Context, userID string, from, to time.Time) ([]entity.Cost, error) {
	query, args, err := selectCostsInRangeQuery(userID, from, to)
	if err != nil {
		return nil, err
	}
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entity.Cost, 0)
	for rows.Next() {
		var (
			c        entity.Cost
			category string
		)
		if err := rows.Scan(&c.ID, &c.Description, &category, &c.UserID, &c.Sum, &c.Date); err != nil {
			return nil, err
		}
		c.Category = entity.Category(category)
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *CostRepository) SumByUser(ctx context.Context, userID string) (float64, error) {
	query, args, err := sumByUserQuery(userID)
	if err != nil {
		return 0, err
	}
	var total float64
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

var _ repository.CostRepository = (*CostRepository)(nil)
