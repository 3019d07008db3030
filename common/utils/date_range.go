package utils

import (
	"time"

	"github.com/Laisky/errors/v2"
)

// NormalizeDateRange parses inclusive date strings (YYYY-MM-DD) and returns
// a half-open [start, endExclusive) range at UTC midnight boundaries.
// It validates that from <= to and enforces maxDays (inclusive day count) if >0.
func NormalizeDateRange(fromStr, toStr string, maxDays int) (time.Time, time.Time, error) {
	const layout = "2006-01-02"
	fromDate, err := time.Parse(layout, fromStr)
	if err != nil {
		return time.Time{}, time.Time{}, errors.Wrap(err, "invalid from date, expected YYYY-MM-DD")
	}
	toDate, err := time.Parse(layout, toStr)
	if err != nil {
		return time.Time{}, time.Time{}, errors.Wrap(err, "invalid to date, expected YYYY-MM-DD")
	}

	fromDay := time.Date(fromDate.Year(), fromDate.Month(), fromDate.Day(), 0, 0, 0, 0, time.UTC)
	toDay := time.Date(toDate.Year(), toDate.Month(), toDate.Day(), 0, 0, 0, 0, time.UTC)

	if toDay.Before(fromDay) {
		return time.Time{}, time.Time{}, errors.New("from date must not be after to date")
	}

	inclusiveDays := int(toDay.Sub(fromDay).Hours()/24) + 1
	if maxDays > 0 && inclusiveDays > maxDays {
		return time.Time{}, time.Time{}, errors.Errorf("date range too large, maximum allowed: %d days", maxDays)
	}

	return fromDay, toDay.Add(24 * time.Hour), nil
}
