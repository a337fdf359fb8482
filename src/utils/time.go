package utils

import (
	"fmt"
	"time"
)

const daysPerYear = 365.0

func GetMinTime(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}

	return b
}

func GetMaxTime(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}

	return b
}

// YearsUntil converts the span from now to expiration into year units
// for the pricing engine. Expirations in the past report an error
// rather than a negative time to expiry.
func YearsUntil(expiration time.Time, now time.Time) (float64, error) {
	if expiration.Before(now) {
		return 0, fmt.Errorf("YearsUntil: expiration %s is in the past", expiration.Format("2006-01-02"))
	}

	return expiration.Sub(now).Hours() / 24 / daysPerYear, nil
}

// YearsUntilExpirationDate parses a YYYY-MM-DD date and converts it to
// years from now, with expiry pinned to end of day so a chain queried
// on expiration day still carries a few hours of time value.
func YearsUntilExpirationDate(expirationDate string, now time.Time) (float64, error) {
	exp, err := time.Parse("2006-01-02", expirationDate)
	if err != nil {
		return 0, fmt.Errorf("YearsUntilExpirationDate: failed to parse %s: %w", expirationDate, err)
	}

	endOfDay := time.Date(exp.Year(), exp.Month(), exp.Day(), 23, 59, 59, 0, time.UTC)

	return YearsUntil(endOfDay, now)
}
