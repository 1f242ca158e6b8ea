package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-cost-manager/internal/domain/entity"
	"github.com/oksasatya/go-cost-manager/pkg/events"
)

func TestAddCost_AssignsServerDate(t *testing.T) {
	f := newFixture()
	f.seedUser("123123")
	now := time.Date(2025, 2, 14, 10, 30, 0, 0, time.UTC)
	f.costSvc.Now = func() time.Time { return now }

	c, err := f.costSvc.AddCost(context.Background(), AddCostInput{
		Description: "test cost item",
		Category:    "food",
		UserID:      "123123",
		Sum:         ptr(15.0),
	})

	require.NoError(t, err)
	assert.NotZero(t, c.ID)
	assert.True(t, c.Date.Equal(now))
	assert.Equal(t, entity.Food, c.Category)
	assert.Equal(t, 1, f.store.Len())
}

func TestAddCost_TruncatesDateToMillisecond(t *testing.T) {
	f := newFixture()
	f.seedUser("u")
	f.costSvc.Now = func() time.Time { return time.Date(2025, 2, 28, 23, 59, 59, 999_999_999, time.UTC) }

	served, err := f.costSvc.AddCost(context.Background(), AddCostInput{
		Description: "late", Category: "food", UserID: "u", Sum: ptr(1.0),
	})
	require.NoError(t, err)
	supplied, err := f.costSvc.AddCost(context.Background(), AddCostInput{
		Description: "late", Category: "food", UserID: "u", Sum: ptr(1.0), Date: "2025-02-28T23:59:59.9995Z",
	})
	require.NoError(t, err)

	want := time.Date(2025, 2, 28, 23, 59, 59, 999_000_000, time.UTC)
	assert.True(t, served.Date.Equal(want), served.Date)
	assert.True(t, supplied.Date.Equal(want), supplied.Date)
}

func TestAddCost_ParsesSuppliedDate(t *testing.T) {
	f := newFixture()
	f.seedUser("u")

	c, err := f.costSvc.AddCost(context.Background(), AddCostInput{
		Description: "rent", Category: "housing", UserID: "u", Sum: ptr(1000.0), Date: "2025-02-03",
	})

	require.NoError(t, err)
	assert.True(t, c.Date.Equal(time.Date(2025, 2, 3, 0, 0, 0, 0, time.UTC)))
}

func TestAddCost_ValidationOrder(t *testing.T) {
	tests := []struct {
		name    string
		in      AddCostInput
		wantErr error
		wantMsg string
	}{
		{
			name:    "missing description",
			in:      AddCostInput{Category: "food", UserID: "u", Sum: ptr(1.0)},
			wantErr: ErrInvalidInput,
			wantMsg: "missing required fields",
		},
		{
			name:    "missing sum",
			in:      AddCostInput{Description: "d", Category: "food", UserID: "u"},
			wantErr: ErrInvalidInput,
			wantMsg: "missing required fields",
		},
		{
			name:    "zero sum",
			in:      AddCostInput{Description: "d", Category: "food", UserID: "u", Sum: ptr(0.0)},
			wantErr: ErrInvalidInput,
			wantMsg: "sum must be a positive number",
		},
		{
			name:    "negative sum beats unknown category and unknown user",
			in:      AddCostInput{Description: "d", Category: "travel", UserID: "ghost", Sum: ptr(-5.0)},
			wantErr: ErrInvalidInput,
			wantMsg: "sum must be a positive number",
		},
		{
			name:    "unknown category beats unknown user",
			in:      AddCostInput{Description: "d", Category: "travel", UserID: "ghost", Sum: ptr(5.0)},
			wantErr: ErrInvalidInput,
			wantMsg: "category must be one of",
		},
		{
			name:    "unknown user",
			in:      AddCostInput{Description: "d", Category: "food", UserID: "ghost", Sum: ptr(5.0)},
			wantErr: ErrUserNotFound,
		},
		{
			name:    "bad date",
			in:      AddCostInput{Description: "d", Category: "food", UserID: "u", Sum: ptr(5.0), Date: "yesterday"},
			wantErr: ErrInvalidInput,
			wantMsg: "cannot parse date",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			f.seedUser("u")

			c, err := f.costSvc.AddCost(context.Background(), tt.in)

			assert.Nil(t, c)
			require.ErrorIs(t, err, tt.wantErr)
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
			assert.Zero(t, f.store.Len(), "nothing must be persisted")
			assert.Empty(t, f.publisher.messages)
		})
	}
}

func TestAddCost_UnknownUserIsNotFound(t *testing.T) {
	f := newFixture()

	_, err := f.costSvc.AddCost(context.Background(), AddCostInput{
		Description: "d", Category: "food", UserID: "nobody", Sum: ptr(3.0),
	})

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Zero(t, f.store.Len())
}

func TestAddCost_PublishesEventAndInvalidatesReport(t *testing.T) {
	f := newFixture()
	f.seedUser("u")
	ctx := context.Background()

	_, err := f.costSvc.AddCost(ctx, AddCostInput{Description: "a", Category: "food", UserID: "u", Sum: ptr(10.0), Date: "2025-02-10"})
	require.NoError(t, err)
	_, err = f.reportSvc.GenerateReport(ctx, "u", 2025, 2)
	require.NoError(t, err)
	require.True(t, f.cache.Has("u", 2025, 2))

	// A cost in another month keeps the cached report.
	_, err = f.costSvc.AddCost(ctx, AddCostInput{Description: "b", Category: "food", UserID: "u", Sum: ptr(1.0), Date: "2025-03-01"})
	require.NoError(t, err)
	assert.True(t, f.cache.Has("u", 2025, 2))

	_, err = f.costSvc.AddCost(ctx, AddCostInput{Description: "c", Category: "food", UserID: "u", Sum: ptr(20.0), Date: "2025-02-11"})
	require.NoError(t, err)
	assert.False(t, f.cache.Has("u", 2025, 2))

	require.Len(t, f.publisher.messages, 3)
	ev, ok := f.publisher.messages[0].(events.CostEvent)
	require.True(t, ok)
	assert.Equal(t, events.CostCreated, ev.Type)
	assert.Equal(t, "u", ev.UserID)
	assert.Equal(t, 10.0, ev.Sum)
}

func TestAddCost_PublishFailureDoesNotFailRequest(t *testing.T) {
	f := newFixture()
	f.seedUser("u")
	f.publisher.err = errStoreDown

	c, err := f.costSvc.AddCost(context.Background(), AddCostInput{Description: "a", Category: "sport", UserID: "u", Sum: ptr(10.0)})

	require.NoError(t, err)
	assert.NotNil(t, c)
	assert.Equal(t, 1, f.store.Len())
}

func TestAddCost_StoreFailureSurfaces(t *testing.T) {
	f := newFixture()
	f.seedUser("u")
	f.costSvc.Costs = failingCosts{}

	_, err := f.costSvc.AddCost(context.Background(), AddCostInput{Description: "a", Category: "sport", UserID: "u", Sum: ptr(10.0)})

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidInput)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestSearchCosts_WithoutIndexReturnsEmpty(t *testing.T) {
	f := newFixture()

	got, err := f.costSvc.SearchCosts(context.Background(), "u", "bread", 0)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = f.costSvc.SearchCosts(context.Background(), "", "bread", 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
