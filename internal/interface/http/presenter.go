package handlers

import (
	"time"

	"github.com/oksasatya/go-cost-manager/internal/domain/entity"
)

type userResponse struct {
	ID            string    `json:"id"`
	FirstName     string    `json:"first_name"`
	LastName      string    `json:"last_name"`
	Birthday      string    `json:"birthday"`
	MaritalStatus string    `json:"marital_status"`
	Age           int       `json:"age"`
	CreatedAt     time.Time `json:"created_at"`
}

func toUserResponse(u *entity.User, now time.Time) userResponse {
	return userResponse{
		ID:            u.ID,
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		Birthday:      u.Birthday.Format("2006-01-02"),
		MaritalStatus: string(u.MaritalStatus),
		Age:           u.Age(now),
		CreatedAt:     u.CreatedAt,
	}
}

type costResponse struct {
	ID          int64     `json:"id"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	UserID      string    `json:"userid"`
	Sum         float64   `json:"sum"`
	Date        time.Time `json:"date"`
}

func toCostResponse(c *entity.Cost) costResponse {
	return costResponse{
		ID:          c.ID,
		Description: c.Description,
		Category:    string(c.Category),
		UserID:      c.UserID,
		Sum:         c.Sum,
		Date:        c.Date,
	}
}
