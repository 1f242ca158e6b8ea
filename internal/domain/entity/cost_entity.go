package entity

import "time"

// Cost is a single expense entry. Costs are never updated once stored.
type Cost struct {
	ID          int64
	Description string
	Category    Category
	UserID      string
	Sum         float64
	Date        time.Time
}
