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
	"github.com/oksasatya/go-cost-manager/pkg/events"
)

// Publisher sends JSON messages to a queue.
type Publisher interface {
	PublishJSON(ctx context.Context, body any) error
}

type CostService struct {
	Users     repo.UserRepository
	Costs     repo.CostRepository
	Cache     repo.ReportCache
	Index     repo.CostIndex
	Publisher Publisher
	Logger    *logrus.Logger
	Loc       *time.Location
	Now       func() time.Time
}

func NewCostService(users repo.UserRepository, costs repo.CostRepository, cache repo.ReportCache, index repo.CostIndex, pub Publisher, logger *logrus.Logger, loc *time.Location) *CostService {
	if loc == nil {
		loc = time.UTC
	}
	return &CostService{
		Users:     users,
		Costs:     costs,
		Cache:     cache,
		Index:     index,
		Publisher: pub,
		Logger:    logger,
		Loc:       loc,
		Now:       time.Now,
	}
}

type AddCostInput struct {
	Description string
	Category    string
	UserID      string
	Sum         *float64
	Date        string
}

// AddCost validates and stores a new cost item. Checks run in order and the
// first failure wins: presence, positive sum, known category, existing user,
// parseable date.
func (s *CostService) AddCost(ctx context.Context, in AddCostInput) (*entity.Cost, error) {
	if strings.TrimSpace(in.Description) == "" || strings.TrimSpace(in.Category) == "" ||
		strings.TrimSpace(in.UserID) == "" || in.Sum == nil {
		return nil, fmt.Errorf("%w: missing required fields", ErrInvalidInput)
	}
	if *in.Sum <= 0 {
		return nil, fmt.Errorf("%w: sum must be a positive number", ErrInvalidInput)
	}
	category := entity.Category(in.Category)
	if !category.Valid() {
		return nil, fmt.Errorf("%w: category must be one of: food, health, housing, sport, education", ErrInvalidInput)
	}

	if _, err := s.Users.GetByID(ctx, in.UserID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	date := s.Now()
	if strings.TrimSpace(in.Date) != "" {
		d, err := parseDate(in.Date, s.Loc)
		if err != nil {
			return nil, err
		}
		date = d
	}
	// Millisecond precision, matching the inclusive month end of reports.
	date = date.Truncate(time.Millisecond)

	c := &entity.Cost{
		Description: in.Description,
		Category:    category,
		UserID:      in.UserID,
		Sum:         *in.Sum,
		Date:        date,
	}
	if err := s.Costs.Create(ctx, c); err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", in.UserID).Error("create cost failed")
		}
		return nil, err
	}

	s.invalidateReport(ctx, c)
	s.publishCreated(ctx, c)
	return c, nil
}

func (s *CostService) invalidateReport(ctx context.Context, c *entity.Cost) {
	if s.Cache == nil {
		return
	}
	d := c.Date.In(s.Loc)
	if err := s.Cache.Invalidate(ctx, c.UserID, d.Year(), int(d.Month())); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("user_id", c.UserID).Warn("report cache invalidation failed")
	}
}

func (s *CostService) publishCreated(ctx context.Context, c *entity.Cost) {
	if s.Publisher == nil {
		return
	}
	ev := events.CostEvent{
		Type:        events.CostCreated,
		CostID:      c.ID,
		UserID:      c.UserID,
		Description: c.Description,
		Category:    string(c.Category),
		Sum:         c.Sum,
		Date:        c.Date,
		OccurredAt:  s.Now().UTC(),
	}
	if err := s.Publisher.PublishJSON(ctx, ev); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("cost_id", c.ID).Warn("failed to publish cost event")
	}
}

// SearchCosts runs a full-text query over the user's indexed costs.
func (s *CostService) SearchCosts(ctx context.Context, userID, q string, size int) ([]entity.Cost, error) {
	if strings.TrimSpace(userID) == "" || strings.TrimSpace(q) == "" {
		return nil, fmt.Errorf("%w: id and q are required", ErrInvalidInput)
	}
	if s.Index == nil {
		return []entity.Cost{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	return s.Index.Search(ctx, userID, q, size)
}
