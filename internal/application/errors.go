package application

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrDuplicateID  = errors.New("user id already exists")

	ErrUserNotFound = fmt.Errorf("user %w", ErrNotFound)
	ErrNoReportData = fmt.Errorf("report data %w", ErrNotFound)

	ErrMissingReportParams = fmt.Errorf("%w: missing parameters: id, year, month", ErrInvalidInput)
)
