// internal/core/domain/date.go
package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Date is a calendar date as entered by operators. Only field ranges are
// checked; 31-02-2025 is a valid Date.
type Date struct {
	Day   int `json:"day"`
	Month int `json:"month"`
	Year  int `json:"year"`
}

// NewDate builds a Date without validating it.
func NewDate(day, month, year int) Date {
	return Date{Day: day, Month: month, Year: year}
}

// ParseDate parses the DD-MM-YYYY form. Range checks are left to Validate.
func ParseDate(s string) (Date, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}

	var fields [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
		}
		fields[i] = n
	}

	return NewDate(fields[0], fields[1], fields[2]), nil
}

// Validate checks day in [1,31], month in [1,12] and year >= 0.
func (d Date) Validate() error {
	if d.Day < 1 || d.Day > 31 || d.Month < 1 || d.Month > 12 || d.Year < 0 {
		return ErrInvalidDate
	}
	return nil
}

// After reports whether d is strictly later than other, comparing year,
// then month, then day.
func (d Date) After(other Date) bool {
	if d.Year != other.Year {
		return d.Year > other.Year
	}
	if d.Month != other.Month {
		return d.Month > other.Month
	}
	return d.Day > other.Day
}

func (d Date) String() string {
	return fmt.Sprintf("%02d-%02d-%d", d.Day, d.Month, d.Year)
}
