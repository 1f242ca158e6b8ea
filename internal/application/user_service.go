package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-cost-manager/internal/domain/entity"
	repo "github.com/oksasatya/go-cost-manager/internal/domain/repository"
)

type UserService struct {
	Users  repo.UserRepository
	Costs  repo.CostRepository
	Logger *logrus.Logger
	Loc    *time.Location
	Now    func() time.Time
}

func NewUserService(users repo.UserRepository, costs repo.CostRepository, logger *logrus.Logger, loc *time.Location) *UserService {
	if loc == nil {
		loc = time.UTC
	}
	return &UserService{Users: users, Costs: costs, Logger: logger, Loc: loc, Now: time.Now}
}

type AddUserInput struct {
	ID            string
	FirstName     string
	LastName      string
	Birthday      string
	MaritalStatus string
}

// UserTotal is the public projection of a user with the sum of all their costs.
type UserTotal struct {
	ID        string  `json:"id"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Total     float64 `json:"total"`
}

func (in AddUserInput) validate(loc *time.Location) (*entity.User, error) {
	if strings.TrimSpace(in.ID) == "" || strings.TrimSpace(in.FirstName) == "" ||
		strings.TrimSpace(in.LastName) == "" || strings.TrimSpace(in.Birthday) == "" ||
		strings.TrimSpace(in.MaritalStatus) == "" {
		return nil, fmt.Errorf("%w: missing required fields", ErrInvalidInput)
	}
	if len([]rune(in.FirstName)) < 2 || len([]rune(in.LastName)) < 2 {
		return nil, fmt.Errorf("%w: first_name and last_name must be at least 2 characters long", ErrInvalidInput)
	}
	status := entity.MaritalStatus(in.MaritalStatus)
	if !status.Valid() {
		return nil, fmt.Errorf("%w: marital_status must be one of: single, married, divorced, widowed", ErrInvalidInput)
	}
	birthday, err := parseDate(in.Birthday, loc)
	if err != nil {
		return nil, err
	}
	return &entity.User{
		ID:            in.ID,
		FirstName:     in.FirstName,
		LastName:      in.LastName,
		Birthday:      birthday,
		MaritalStatus: status,
	}, nil
}

// AddUser registers a new user. A taken id is reported by the store, there is
// no lookup before the insert.
func (s *UserService) AddUser(ctx context.Context, in AddUserInput) (*entity.User, error) {
	u, err := in.validate(s.Loc)
	if err != nil {
		return nil, err
	}
	u.CreatedAt = s.Now()
	if err := s.Users.Create(ctx, u); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, ErrDuplicateID
		}
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", in.ID).Error("create user failed")
		}
		return nil, err
	}
	return u, nil
}

// GetUserWithTotal returns the user with the sum of all their costs. A user
// without costs has a total of 0.
func (s *UserService) GetUserWithTotal(ctx context.Context, id string) (*UserTotal, error) {
	if strings.TrimSpace(id) == "" {
		return nil, ErrUserNotFound
	}
	u, err := s.Users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	total, err := s.Costs.SumByUser(ctx, id)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", id).Error("sum costs failed")
		}
		return nil, err
	}
	return &UserTotal{ID: u.ID, FirstName: u.FirstName, LastName: u.LastName, Total: total}, nil
}
