package models

import (
	"context"
	"time"
)

// AdultAge is the minimum age accepted at registration.
const AdultAge = 18

// IsAdult applies the registration age rule: the calendar-year difference must be
// at least AdultAge, and when it is exactly AdultAge the birthday for this year
// must not still be ahead of today.
func IsAdult(dob, now time.Time) bool {
	if dob.IsZero() {
		return false
	}
	age := now.Year() - dob.Year()
	if age < AdultAge {
		return false
	}
	if age == AdultAge {
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		birthday := time.Date(dob.Year(), dob.Month(), dob.Day(), 0, 0, 0, 0, time.UTC).AddDate(AdultAge, 0, 0)
		if today.Before(birthday) {
			return false
		}
	}
	return true
}

type referenceTimeKey struct{}

// WithReferenceTime carries the instant whose calendar date the age rule uses when
// the record is stored. Callers that already validated against now pass the same
// now so both checks agree on "today".
func WithReferenceTime(ctx context.Context, now time.Time) context.Context {
	return context.WithValue(ctx, referenceTimeKey{}, now)
}

// ReferenceTime returns the instant set by WithReferenceTime.
func ReferenceTime(ctx context.Context) (time.Time, bool) {
	if ctx == nil {
		return time.Time{}, false
	}
	now, ok := ctx.Value(referenceTimeKey{}).(time.Time)
	return now, ok
}
