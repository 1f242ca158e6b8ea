// Package memory is an in-process record store. It backs STORE_BACKEND=memory
// and the package tests of the layers above it.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/oksasatya/go-cost-manager/internal/domain/entity"
	"github.com/oksasatya/go-cost-manager/internal/domain/repository"
)

// Store holds users and costs. Costs are kept in insertion order.
type Store struct {
	mu     sync.RWMutex
	users  map[string]entity.User
	costs  []entity.Cost
	nextID int64
}

func NewStore() *Store {
	return &Store{users: make(map[string]entity.User)}
}

type UserRepository struct {
	s *Store
}

func NewUserRepository(s *Store) *UserRepository {
	return &UserRepository{s: s}
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[u.ID]; ok {
		return fmt.Errorf("users.id %q: %w", u.ID, repository.ErrDuplicate)
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
	r.s.users[u.ID] = *u
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

type CostRepository struct {
	s *Store
}

func NewCostRepository(s *Store) *CostRepository {
	return &CostRepository{s: s}
}

func (r *CostRepository) Create(ctx context.Context, c *entity.Cost) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.nextID++
	c.ID = r.s.nextID
	r.s.costs = append(r.s.costs, *c)
	return nil
}

func (r *CostRepository) FindByUserInRange(ctx context.Context, userID string, from, to time.Time) ([]entity.Cost, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]entity.Cost, 0)
	for _, c := range r.s.costs {
		if c.UserID != userID {
			continue
		}
		if c.Date.Before(from) || c.Date.After(to) {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (r *CostRepository) SumByUser(ctx context.Context, userID string) (float64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var total float64
	for _, c := range r.s.costs {
		if c.UserID == userID {
			total += c.Sum
		}
	}
	return total, nil
}

// Len returns the number of stored costs.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.costs)
}

var (
	_ repository.UserRepository = (*UserRepository)(nil)
	_ repository.CostRepository = (*CostRepository)(nil)
)
