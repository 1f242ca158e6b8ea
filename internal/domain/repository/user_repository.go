package repository

import (
	"context"
	"errors"

	"github.com/oksasatya/go-cost-manager/internal/domain/entity"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("duplicate key")
)

// UserRepository defines the interface for user-related storage operations.
type UserRepository interface {
	// Create stores u and fills its CreatedAt. A taken ID yields ErrDuplicate.
	Create(ctx context.Context, u *entity.User) error
	// GetByID returns ErrNotFound when no user has the given external id.
	GetByID(ctx context.Context, id string) (*entity.User, error)
}
