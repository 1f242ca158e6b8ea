package entity

import (
	"encoding/json"
	"fmt"
	"time"
)

// ReportItem is a cost as it appears inside a monthly report.
type ReportItem struct {
	Sum         float64 `json:"sum"`
	Description string  `json:"description"`
	Day         int     `json:"day"`
}

// CategoryBucket holds the items of one category. It encodes as a single-key
// object, e.g. {"food": [...]}.
type CategoryBucket struct {
	Category Category
	Items    []ReportItem
}

func (b CategoryBucket) MarshalJSON() ([]byte, error) {
	items := b.Items
	if items == nil {
		items = []ReportItem{}
	}
	return json.Marshal(map[Category][]ReportItem{b.Category: items})
}

func (b *CategoryBucket) UnmarshalJSON(data []byte) error {
	var m map[Category][]ReportItem
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	if len(m) != 1 {
		return fmt.Errorf("category bucket: expected exactly one key, got %d", len(m))
	}
	for k, v := range m {
		b.Category = k
		b.Items = v
	}
	if b.Items == nil {
		b.Items = []ReportItem{}
	}
	return nil
}

// Total sums every item in the bucket.
func (b CategoryBucket) Total() float64 {
	var t float64
	for _, it := range b.Items {
		t += it.Sum
	}
	return t
}

// Report is the computed monthly grouping of a user's costs.
// Costs always carries one bucket per category, in Categories order.
type Report struct {
	UserID string           `json:"userid"`
	Year   int              `json:"year"`
	Month  int              `json:"month"`
	Costs  []CategoryBucket `json:"costs"`
}

// NewReport groups costs into the fixed category buckets. Items keep the
// relative order they have in costs. Days are read in loc.
func NewReport(userID string, year, month int, costs []Cost, loc *time.Location) *Report {
	if loc == nil {
		loc = time.UTC
	}
	grouped := make(map[Category][]ReportItem, len(Categories))
	for _, c := range costs {
		grouped[c.Category] = append(grouped[c.Category], ReportItem{
			Sum:         c.Sum,
			Description: c.Description,
			Day:         c.Date.In(loc).Day(),
		})
	}

	r := &Report{UserID: userID, Year: year, Month: month, Costs: make([]CategoryBucket, 0, len(Categories))}
	for _, cat := range Categories {
		items := grouped[cat]
		if items == nil {
			items = []ReportItem{}
		}
		r.Costs = append(r.Costs, CategoryBucket{Category: cat, Items: items})
	}
	return r
}

// Bucket returns the bucket of the given category, or nil.
func (r *Report) Bucket(c Category) *CategoryBucket {
	for i := range r.Costs {
		if r.Costs[i].Category == c {
			return &r.Costs[i]
		}
	}
	return nil
}

// MonthBounds returns the first instant and the last millisecond of the given
// month in loc. The end is day 0 of the following month, so month lengths
// and leap years come from the calendar.
func MonthBounds(year, month int, loc *time.Location) (time.Time, time.Time) {
	if loc == nil {
		loc = time.UTC
	}
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
	end := time.Date(year, time.Month(month)+1, 0, 23, 59, 59, int(999*time.Millisecond), loc)
	return start, end
}
