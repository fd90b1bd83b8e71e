package logs

import (
	"fmt"
	"time"
)

const DateLayout = "2006-01-02"

// ParseDate checks the canonical zero-padded YYYY-MM-DD form.
func ParseDate(date string) (time.Time, error) {
	if date == "" {
		return time.Time{}, ErrEmptyDate
	}
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s", ErrInvalidDate, date)
	}
	// time.Parse accepts some non-canonical inputs, so compare the round trip
	if t.Format(DateLayout) != date {
		return time.Time{}, fmt.Errorf("%w: %s", ErrInvalidDate, date)
	}
	return t, nil
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// DateKey builds the storage key for a day; month is 1-based.
func DateKey(year int, month time.Month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)
}

// YearPrefix is the key prefix every date of the year shares.
func YearPrefix(year int) string {
	return fmt.Sprintf("%04d-", year)
}
