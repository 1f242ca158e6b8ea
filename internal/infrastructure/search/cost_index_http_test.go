package search

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-cost-manager/internal/domain/entity"
)

type recorded struct {
	method string
	path   string
	body   string
}

func newFakeES(t *testing.T, status int, reply string) (*CostIndex, *[]recorded) {
	t.Helper()
	var calls []recorded
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		calls = append(calls, recorded{method: r.Method, path: r.URL.Path, body: string(b)})
		w.Header().Set("X-Elastic-Product", "Elasticsearch")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(reply))
	}))
	t.Cleanup(srv.Close)

	es, err := elasticsearch.NewClient(elasticsearch.Config{Addresses: []string{srv.URL}})
	require.NoError(t, err)
	return NewCostIndex(es, "costs"), &calls
}

func TestCostIndex_IndexUsesCostID(t *testing.T) {
	idx, calls := newFakeES(t, http.StatusCreated, `{"result":"created"}`)

	err := idx.Index(context.Background(), &entity.Cost{
		ID: 42, UserID: "123123", Description: "milk", Category: entity.Food, Sum: 8,
		Date: time.Date(2025, 2, 3, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	require.Len(t, *calls, 1)
	assert.Equal(t, http.MethodPut, (*calls)[0].method)
	assert.Equal(t, "/costs/_doc/42", (*calls)[0].path)
	assert.Contains(t, (*calls)[0].body, `"userid":"123123"`)
}

func TestCostIndex_IndexReportsErrorStatus(t *testing.T) {
	idx, _ := newFakeES(t, http.StatusBadRequest, `{"error":"mapper_parsing_exception"}`)

	err := idx.Index(context.Background(), &entity.Cost{ID: 1})

	assert.Error(t, err)
}

func TestCostIndex_Search(t *testing.T) {
	idx, calls := newFakeES(t, http.StatusOK, `{"hits":{"hits":[{"_source":{"id":3,"userid":"u","description":"bread","category":"food","sum":4,"date":"2025-02-03T00:00:00Z"}}]}}`)

	got, err := idx.Search(context.Background(), "u", "bread", 10)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "bread", got[0].Description)
	assert.Equal(t, "/costs/_search", (*calls)[0].path)
}

func TestCostIndex_SearchMissingIndexIsEmpty(t *testing.T) {
	idx, _ := newFakeES(t, http.StatusNotFound, `{"error":{"type":"index_not_found_exception"}}`)

	got, err := idx.Search(context.Background(), "u", "bread", 10)

	require.NoError(t, err)
	assert.Empty(t, got)
}
