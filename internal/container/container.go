// Package container builds the application object graph once at startup.
// Nothing here is global: main constructs a Container and hands it to the router.
package container

import (
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-cost-manager/config"
	"github.com/oksasatya/go-cost-manager/internal/application"
	repo "github.com/oksasatya/go-cost-manager/internal/domain/repository"
	"github.com/oksasatya/go-cost-manager/internal/infrastructure/cache"
	"github.com/oksasatya/go-cost-manager/internal/infrastructure/memory"
	pginfra "github.com/oksasatya/go-cost-manager/internal/infrastructure/postgres"
	"github.com/oksasatya/go-cost-manager/internal/infrastructure/search"
	"github.com/oksasatya/go-cost-manager/pkg/helpers"
)

// Deps are the opened infrastructure handles. Pool selects the Postgres
// repositories; without it an in-memory store is used. Redis, Publisher and
// ES are optional.
type Deps struct {
	Config    *config.Config
	Logger    *logrus.Logger
	Pool      *pgxpool.Pool
	Memory    *memory.Store
	Redis     *redis.Client
	Publisher *helpers.RabbitPublisher
	ES        *elasticsearch.Client
}

type Container struct {
	Config *config.Config
	Logger *logrus.Logger
	Redis  *redis.Client

	Users       repo.UserRepository
	Costs       repo.CostRepository
	ReportCache repo.ReportCache
	CostIndex   repo.CostIndex

	UserService   *application.UserService
	CostService   *application.CostService
	ReportService *application.ReportService
}

func New(d Deps) (*Container, error) {
	loc, err := d.Config.Location()
	if err != nil {
		return nil, err
	}

	c := &Container{Config: d.Config, Logger: d.Logger, Redis: d.Redis}

	if d.Pool != nil {
		c.Users = pginfra.NewUserRepository(d.Pool)
		c.Costs = pginfra.NewCostRepository(d.Pool)
	} else {
		store := d.Memory
		if store == nil {
			store = memory.NewStore()
		}
		c.Users = memory.NewUserRepository(store)
		c.Costs = memory.NewCostRepository(store)
	}

	// Interfaces are only assigned from non-nil values so that the services'
	// nil checks keep working.
	if d.Redis != nil {
		c.ReportCache = cache.NewReportCache(d.Redis, d.Config.ReportCacheTTL)
	}
	if d.ES != nil {
		c.CostIndex = search.NewCostIndex(d.ES, d.Config.ESCostsIndex)
	}
	var pub application.Publisher
	if d.Publisher != nil {
		pub = d.Publisher
	}

	c.UserService = application.NewUserService(c.Users, c.Costs, d.Logger, loc)
	c.CostService = application.NewCostService(c.Users, c.Costs, c.ReportCache, c.CostIndex, pub, d.Logger, loc)
	c.ReportService = application.NewReportService(c.Costs, c.ReportCache, d.Logger, loc)
	return c, nil
}
