package application

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/oksasatya/go-cost-manager/internal/domain/entity"
	"github.com/oksasatya/go-cost-manager/internal/domain/repository"
	"github.com/oksasatya/go-cost-manager/internal/infrastructure/memory"
)

var errStoreDown = errors.New("connection refused")

type fixture struct {
	store     *memory.Store
	users     *memory.UserRepository
	costs     *memory.CostRepository
	cache     *memory.ReportCache
	publisher *recordingPublisher
	userSvc   *UserService
	costSvc   *CostService
	reportSvc *ReportService
}

func newFixture() *fixture {
	store := memory.NewStore()
	f := &fixture{
		store:     store,
		users:     memory.NewUserRepository(store),
		costs:     memory.NewCostRepository(store),
		cache:     memory.NewReportCache(),
		publisher: &recordingPublisher{},
	}
	f.userSvc = NewUserService(f.users, f.costs, nil, time.UTC)
	f.costSvc = NewCostService(f.users, f.costs, f.cache, nil, f.publisher, nil, time.UTC)
	f.reportSvc = NewReportService(f.costs, f.cache, nil, time.UTC)
	return f
}

func (f *fixture) seedUser(id string) {
	_ = f.users.Create(context.Background(), &entity.User{
		ID:            id,
		FirstName:     "mosh",
		LastName:      "israeli",
		Birthday:      time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
		MaritalStatus: entity.Single,
	})
}

type recordingPublisher struct {
	mu       sync.Mutex
	messages []any
	err      error
}

func (p *recordingPublisher) PublishJSON(ctx context.Context, body any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.messages = append(p.messages, body)
	return nil
}

type failingCosts struct{}

func (failingCosts) Create(ctx context.Context, c *entity.Cost) error { return errStoreDown }
func (failingCosts) FindByUserInRange(ctx context.Context, userID string, from, to time.Time) ([]entity.Cost, error) {
	return nil, errStoreDown
}
func (failingCosts) SumByUser(ctx context.Context, userID string) (float64, error) {
	return 0, errStoreDown
}

// gatedCosts answers the first range query from the inner store, then holds
// the result until release is closed.
type gatedCosts struct {
	repository.CostRepository
	once    sync.Once
	entered chan struct{}
	release chan struct{}
}

func newGatedCosts(inner repository.CostRepository) *gatedCosts {
	return &gatedCosts{CostRepository: inner, entered: make(chan struct{}), release: make(chan struct{})}
}

func (g *gatedCosts) FindByUserInRange(ctx context.Context, userID string, from, to time.Time) ([]entity.Cost, error) {
	costs, err := g.CostRepository.FindByUserInRange(ctx, userID, from, to)
	g.once.Do(func() {
		close(g.entered)
		<-g.release
	})
	return costs, err
}

func ptr[T any](v T) *T { return &v }
