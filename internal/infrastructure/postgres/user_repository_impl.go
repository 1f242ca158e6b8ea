package postgres

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/go-cost-manager/internal/domain/entity"
	"github.com/oksasatya/go-cost-manager/internal/domain/repository"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func insertUserQuery(u *entity.User) (string, []any, error) {
	q := psql.Insert("users").
		Columns("id", "first_name", "last_name", "birthday", "marital_status")
	vals := []any{u.ID, u.FirstName, u.LastName, u.Birthday, string(u.MaritalStatus)}
	if !u.CreatedAt.IsZero() {
		q = q.Columns("created_at")
		vals = append(vals, u.CreatedAt)
	}
	return q.Values(vals...).Suffix("RETURNING created_at").ToSql()
}

func selectUserQuery(id string) (string, []any, error) {
	return psql.Select("id", "first_name", "last_name", "birthday", "marital_status", "created_at").
		From("users").
		Where(sq.Eq{"id": id}).
		ToSql()
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	query, args, err := insertUserQuery(u)
	if err != nil {
		return err
	}
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&u.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("users.id %q: %w", u.ID, repository.ErrDuplicate)
		}
		return err
	}
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	query, args, err := selectUserQuery(id)
	if err != nil {
		return nil, err
	}

	u := &entity.User{}
	var status string
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&u.ID, &u.FirstName, &u.LastName, &u.Birthday, &status, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	u.MaritalStatus = entity.MaritalStatus(status)
	return u, nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
