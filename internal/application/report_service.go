package application

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-cost-manager/internal/domain/entity"
	repo "github.com/oksasatya/go-cost-manager/internal/domain/repository"
)

type ReportService struct {
	Costs  repo.CostRepository
	Cache  repo.ReportCache
	Logger *logrus.Logger
	Loc    *time.Location
}

func NewReportService(costs repo.CostRepository, cache repo.ReportCache, logger *logrus.Logger, loc *time.Location) *ReportService {
	if loc == nil {
		loc = time.UTC
	}
	return &ReportService{Costs: costs, Cache: cache, Logger: logger, Loc: loc}
}

// GenerateReport groups the user's costs of one calendar month by category.
// A month without costs is ErrNoReportData; user existence is not checked.
func (s *ReportService) GenerateReport(ctx context.Context, userID string, year, month int) (*entity.Report, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, ErrMissingReportParams
	}
	if err := validatePeriod(year, month); err != nil {
		return nil, err
	}

	gen, cacheable := s.generation(ctx, userID, year, month)
	if cacheable {
		if r, ok := s.cached(ctx, userID, year, month, gen); ok {
			return r, nil
		}
	}

	start, end := entity.MonthBounds(year, month, s.Loc)
	costs, err := s.Costs.FindByUserInRange(ctx, userID, start, end)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithFields(logrus.Fields{"user_id": userID, "year": year, "month": month}).Error("fetch report costs failed")
		}
		return nil, err
	}
	if len(costs) == 0 {
		return nil, ErrNoReportData
	}

	r := entity.NewReport(userID, year, month, costs, s.Loc)
	if cacheable {
		if err := s.Cache.Set(ctx, r, gen); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", userID).Warn("report cache set failed")
		}
	}
	return r, nil
}

// generation reads the cache generation of the period. It must be taken
// before the store query; without it the report is neither read nor written.
func (s *ReportService) generation(ctx context.Context, userID string, year, month int) (int64, bool) {
	if s.Cache == nil {
		return 0, false
	}
	gen, err := s.Cache.Generation(ctx, userID, year, month)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", userID).Warn("report cache generation failed")
		}
		return 0, false
	}
	return gen, true
}

func (s *ReportService) cached(ctx context.Context, userID string, year, month int, gen int64) (*entity.Report, bool) {
	r, ok, err := s.Cache.Get(ctx, userID, year, month, gen)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", userID).Warn("report cache get failed")
		}
		return nil, false
	}
	return r, ok
}
