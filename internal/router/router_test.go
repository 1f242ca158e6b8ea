package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-cost-manager/config"
	"github.com/oksasatya/go-cost-manager/internal/container"
	"github.com/oksasatya/go-cost-manager/internal/infrastructure/memory"
	"github.com/oksasatya/go-cost-manager/internal/interface/middleware"
)

func init() { gin.SetMode(gin.TestMode) }

type app struct {
	engine *gin.Engine
	store  *memory.Store
}

func newApp(t *testing.T, mutate func(*config.Config)) *app {
	t.Helper()
	cfg := &config.Config{
		StoreBackend:          config.BackendMemory,
		ReportTimezone:        "UTC",
		TeamMembers:           "Yuval Betito,Hen Ben Gigi",
		RateLimitWritesPerMin: 120,
	}
	if mutate != nil {
		mutate(cfg)
	}
	store := memory.NewStore()
	c, err := container.New(container.Deps{Config: cfg, Memory: store})
	require.NoError(t, err)

	engine := gin.New()
	engine.Use(middleware.RequestIDMiddleware(), middleware.Recovery(nil), middleware.RealIP())
	reg := NewRegistry(engine)
	InitModules(reg, c)
	reg.RegisterAll()
	return &app{engine: engine, store: store}
}

func (a *app) do(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	a.engine.ServeHTTP(w, req)
	return w
}

func (a *app) addDemoUser(t *testing.T) {
	t.Helper()
	w := a.do(http.MethodPost, "/api/users/add", map[string]any{
		"id": "123123", "first_name": "mosh", "last_name": "israeli",
		"birthday": "1990-01-01", "marital_status": "single",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func TestScenarioA_AddUserThenCost(t *testing.T) {
	a := newApp(t, nil)
	a.addDemoUser(t)

	w := a.do(http.MethodPost, "/api/add", map[string]any{
		"userid": "123123", "description": "test cost item", "category": "food", "sum": 15,
	})

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var cost map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cost))
	assert.NotEmpty(t, cost["date"])
	assert.EqualValues(t, 15, cost["sum"])

	w = a.do(http.MethodGet, "/api/users/123123", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":"123123","first_name":"mosh","last_name":"israeli","total":15}`, w.Body.String())
}

func TestScenarioB_MonthlyReport(t *testing.T) {
	a := newApp(t, nil)
	a.addDemoUser(t)
	for _, c := range []map[string]any{
		{"userid": "123123", "description": "bread", "category": "food", "sum": 10, "date": "2025-02-01T00:00:00Z"},
		{"userid": "123123", "description": "cheese", "category": "food", "sum": 20, "date": "2025-02-28T23:59:59Z"},
		{"userid": "123123", "description": "march", "category": "food", "sum": 99, "date": "2025-03-01T00:00:00Z"},
	} {
		require.Equal(t, http.StatusCreated, a.do(http.MethodPost, "/api/add", c).Code)
	}

	w := a.do(http.MethodGet, "/api/report?id=123123&year=2025&month=2", nil)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var report struct {
		Costs []map[string][]struct {
			Sum float64 `json:"sum"`
			Day int     `json:"day"`
		} `json:"costs"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	require.Len(t, report.Costs, 5)
	for i, name := range []string{"food", "health", "housing", "sport", "education"} {
		items, ok := report.Costs[i][name]
		require.True(t, ok, "bucket %d should be %s", i, name)
		if name != "food" {
			assert.Empty(t, items)
		}
	}
	food := report.Costs[0]["food"]
	require.Len(t, food, 2)
	assert.Equal(t, 30.0, food[0].Sum+food[1].Sum)
	assert.Equal(t, 1, food[0].Day)
	assert.Equal(t, 28, food[1].Day)
}

func TestScenarioC_EmptyPeriodIsNotFound(t *testing.T) {
	a := newApp(t, nil)
	a.addDemoUser(t)

	w := a.do(http.MethodGet, "/api/report?id=123123&year=2024&month=7", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestScenarioD_UnknownUserCostNotPersisted(t *testing.T) {
	a := newApp(t, nil)

	w := a.do(http.MethodPost, "/api/add", map[string]any{
		"userid": "ghost", "description": "x", "category": "food", "sum": 5,
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, 0, a.store.Len())
}

func TestHealthAndAbout(t *testing.T) {
	a := newApp(t, nil)

	w := a.do(http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	w = a.do(http.MethodGet, "/api/about", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"first_name":"Yuval"`)
}

func TestDebugVarsOnlyWhenEnabled(t *testing.T) {
	off := newApp(t, nil)
	assert.Equal(t, http.StatusNotFound, off.do(http.MethodGet, "/api/debug/vars", nil).Code)

	on := newApp(t, func(c *config.Config) { c.DebugMetricsEnabled = true })
	w := on.do(http.MethodGet, "/api/debug/vars", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "memstats")
}
