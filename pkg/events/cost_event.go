package events

import "time"

const CostCreated = "cost.created"

// CostEvent is the JSON payload put on the RabbitMQ queue after a cost is stored.
type CostEvent struct {
	Type        string    `json:"type"`
	CostID      int64     `json:"cost_id"`
	UserID      string    `json:"userid"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Sum         float64   `json:"sum"`
	Date        time.Time `json:"date"`
	OccurredAt  time.Time `json:"occurred_at"`
}
