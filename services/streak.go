package services

import "time"

// TruncateToDay returns the UTC calendar day containing t. Day boundaries
// are always computed in UTC: Mongo hands timestamps back in UTC while
// callers pass time.Now() in the server's local zone, and comparing each in
// its own location would never match on a non-UTC server.
func TruncateToDay(t time.Time) time.Time {
	year, month, day := t.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether a and b fall on the same UTC calendar day.
func SameDay(a, b time.Time) bool {
	return TruncateToDay(a).Equal(TruncateToDay(b))
}

// NextStreak computes the streak value for a first-of-day completion at now.
// lastActive is the user's previous last-active date, nil for a user who has
// never completed a problem. Streaks are recomputed lazily, only here; an
// inactive user keeps a stale streak until their next submission.
//
// lastActive on the same day as now means the stored state is inconsistent
// with the first-of-day check; the current streak is kept unchanged then.
func NextStreak(now time.Time, lastActive *time.Time, current int) int {
	if lastActive == nil {
		return 1
	}

	today := TruncateToDay(now)
	last := TruncateToDay(*lastActive)
	yesterday := today.AddDate(0, 0, -1)

	switch {
	case last.Equal(yesterday):
		return current + 1
	case last.Before(yesterday):
		return 1
	default:
		// last is today (or, with a skewed clock, in the future).
		return current
	}
}
