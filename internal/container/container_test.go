package container

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-cost-manager/config"
	"github.com/oksasatya/go-cost-manager/internal/infrastructure/memory"
)

func TestNew_MemoryBackendWithoutOptionalDeps(t *testing.T) {
	cfg := &config.Config{ReportTimezone: "UTC", StoreBackend: config.BackendMemory}

	c, err := New(Deps{Config: cfg})
	require.NoError(t, err)

	assert.IsType(t, &memory.UserRepository{}, c.Users)
	assert.IsType(t, &memory.CostRepository{}, c.Costs)
	assert.Nil(t, c.ReportCache)
	assert.Nil(t, c.CostIndex)
	assert.Nil(t, c.CostService.Publisher)
	assert.Nil(t, c.CostService.Cache)
	assert.Nil(t, c.ReportService.Cache)
}

func TestNew_SharesMemoryStore(t *testing.T) {
	store := memory.NewStore()
	c, err := New(Deps{Config: &config.Config{ReportTimezone: "UTC"}, Memory: store})
	require.NoError(t, err)

	assert.Same(t, c.CostService.Costs, c.ReportService.Costs)
}

func TestNew_BadTimezone(t *testing.T) {
	_, err := New(Deps{Config: &config.Config{ReportTimezone: "Nowhere/Land"}})
	assert.Error(t, err)
}
