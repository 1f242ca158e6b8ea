package application

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// parseDate accepts RFC3339 timestamps, zone-less timestamps and plain dates.
// Values without a zone are read in loc.
func parseDate(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, l := range dateLayouts {
		if t, err := time.ParseInLocation(l, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: cannot parse date %q", ErrInvalidInput, s)
}

// ParsePeriod validates raw year and month values of a report request.
func ParsePeriod(year, month string) (int, int, error) {
	if strings.TrimSpace(year) == "" || strings.TrimSpace(month) == "" {
		return 0, 0, ErrMissingReportParams
	}
	y, err := strconv.Atoi(strings.TrimSpace(year))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: invalid year or month", ErrInvalidInput)
	}
	m, err := strconv.Atoi(strings.TrimSpace(month))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: invalid year or month", ErrInvalidInput)
	}
	if err := validatePeriod(y, m); err != nil {
		return 0, 0, err
	}
	return y, m, nil
}

func validatePeriod(year, month int) error {
	if month < 1 || month > 12 {
		return fmt.Errorf("%w: invalid year or month", ErrInvalidInput)
	}
	if year < 1 || year > 9999 {
		return fmt.Errorf("%w: invalid year or month", ErrInvalidInput)
	}
	return nil
}
