package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"

	"github.com/oksasatya/go-cost-manager/internal/domain/entity"
	"github.com/oksasatya/go-cost-manager/internal/domain/repository"
)

// CostIndex keeps cost items in an Elasticsearch index for full-text search.
type CostIndex struct {
	ES        *elasticsearch.Client
	IndexName string
	Timeout   time.Duration
}

func NewCostIndex(es *elasticsearch.Client, index string) *CostIndex {
	return &CostIndex{ES: es, IndexName: index, Timeout: 3 * time.Second}
}

type costDoc struct {
	ID          int64     `json:"id"`
	UserID      string    `json:"userid"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Sum         float64   `json:"sum"`
	Date        time.Time `json:"date"`
}

func toDoc(c *entity.Cost) costDoc {
	return costDoc{
		ID:          c.ID,
		UserID:      c.UserID,
		Description: c.Description,
		Category:    string(c.Category),
		Sum:         c.Sum,
		Date:        c.Date.UTC(),
	}
}

func (d costDoc) cost() entity.Cost {
	return entity.Cost{
		ID:          d.ID,
		UserID:      d.UserID,
		Description: d.Description,
		Category:    entity.Category(d.Category),
		Sum:         d.Sum,
		Date:        d.Date,
	}
}

// Index writes c under its store id, so redelivered events overwrite instead
// of duplicating.
func (x *CostIndex) Index(ctx context.Context, c *entity.Cost) error {
	b, err := json.Marshal(toDoc(c))
	if err != nil {
		return err
	}
	req := esapi.IndexRequest{
		Index:      x.IndexName,
		DocumentID: strconv.FormatInt(c.ID, 10),
		Body:       bytes.NewReader(b),
		Refresh:    "false",
	}
	ctx, cancel := context.WithTimeout(ctx, x.Timeout)
	defer cancel()
	res, err := req.Do(ctx, x.ES)
	if err != nil {
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		return fmt.Errorf("es index cost %d: %s", c.ID, res.Status())
	}
	return nil
}

func searchQuery(userID, q string, size int) map[string]any {
	return map[string]any{
		"query": map[string]any{
			"bool": map[string]any{
				"must": map[string]any{
					"multi_match": map[string]any{
						"query":  q,
						"fields": []string{"description^2", "category"},
					},
				},
				"filter": map[string]any{
					"term": map[string]any{"userid.keyword": userID},
				},
			},
		},
		"size": size,
	}
}

func decodeHits(r io.Reader) ([]entity.Cost, error) {
	var parsed struct {
		Hits struct {
			Hits []struct {
				Source costDoc `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(r).Decode(&parsed); err != nil {
		return nil, err
	}
	out := make([]entity.Cost, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source.cost())
	}
	return out, nil
}

// Search runs a multi_match over description and category restricted to userID.
func (x *CostIndex) Search(ctx context.Context, userID, q string, size int) ([]entity.Cost, error) {
	b, err := json.Marshal(searchQuery(userID, q, size))
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, x.Timeout)
	defer cancel()

	res, err := x.ES.Search(
		x.ES.Search.WithContext(ctx),
		x.ES.Search.WithIndex(x.IndexName),
		x.ES.Search.WithBody(bytes.NewReader(b)),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		if res.StatusCode == 404 {
			return []entity.Cost{}, nil
		}
		return nil, fmt.Errorf("es search: %s", res.Status())
	}
	return decodeHits(res.Body)
}

var _ repository.CostIndex = (*CostIndex)(nil)
