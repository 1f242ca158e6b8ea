package entity

import (
	"time"
)

// MaritalStatus is the closed set of marital states a user can register with.
type MaritalStatus string

const (
	Single   MaritalStatus = "single"
	Married  MaritalStatus = "married"
	Divorced MaritalStatus = "divorced"
	Widowed  MaritalStatus = "widowed"
)

// Valid reports whether s is one of the known marital states.
func (s MaritalStatus) Valid() bool {
	switch s {
	case Single, Married, Divorced, Widowed:
		return true
	}
	return false
}

// User is a registered cost owner.
//
// ID is the external identifier chosen by the client; the store keeps its own
// internal key which never leaves the infrastructure layer.
type User struct {
	ID            string
	FirstName     string
	LastName      string
	Birthday      time.Time
	MaritalStatus MaritalStatus
	CreatedAt     time.Time
}

// Age is the difference between the calendar year of now and of the birthday.
// It does not look at whether the birthday already happened this year.
func (u *User) Age(now time.Time) int {
	return now.Year() - u.Birthday.Year()
}
