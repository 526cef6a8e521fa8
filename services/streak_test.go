package services

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 15, 30, 0, 0, time.UTC)
}

func TestNextStreakFirstEver(t *testing.T) {
	streak := NextStreak(date(2025, time.March, 10), nil, 0)
	if streak != 1 {
		t.Errorf("Expected streak 1 for first-ever completion, got %d", streak)
	}
}

func TestNextStreakConsecutiveDay(t *testing.T) {
	yesterday := date(2025, time.March, 9)
	streak := NextStreak(date(2025, time.March, 10), &yesterday, 4)
	if streak != 5 {
		t.Errorf("Expected streak 5 after consecutive day, got %d", streak)
	}
}

func TestNextStreakGapResets(t *testing.T) {
	lastWeek := date(2025, time.March, 3)
	streak := NextStreak(date(2025, time.March, 10), &lastWeek, 12)
	if streak != 1 {
		t.Errorf("Expected streak reset to 1 after gap, got %d", streak)
	}
}

func TestNextStreakSameDayKeepsStreak(t *testing.T) {
	earlierToday := time.Date(2025, time.March, 10, 1, 0, 0, 0, time.UTC)
	streak := NextStreak(date(2025, time.March, 10), &earlierToday, 3)
	if streak != 3 {
		t.Errorf("Expected streak unchanged when last active is today, got %d", streak)
	}
}

func TestNextStreakConsecutiveAcrossMonthBoundary(t *testing.T) {
	lastActive := date(2025, time.February, 28)
	streak := NextStreak(date(2025, time.March, 1), &lastActive, 7)
	if streak != 8 {
		t.Errorf("Expected streak 8 across month boundary, got %d", streak)
	}
}

func TestSameDayAcrossZones(t *testing.T) {
	// Stored timestamps come back from Mongo in UTC while now is local.
	est := time.FixedZone("EST", -5*60*60)
	stored := time.Date(2025, time.March, 10, 13, 0, 0, 0, time.UTC)
	localNow := time.Date(2025, time.March, 10, 10, 0, 0, 0, est) // 15:00 UTC

	if !SameDay(stored, localNow) {
		t.Error("Expected UTC-stored and local timestamps on the same date to match")
	}
}

func TestNextStreakConsecutiveAcrossZones(t *testing.T) {
	est := time.FixedZone("EST", -5*60*60)
	lastActive := time.Date(2025, time.March, 9, 18, 0, 0, 0, time.UTC)
	localNow := time.Date(2025, time.March, 10, 9, 0, 0, 0, est)

	streak := NextStreak(localNow, &lastActive, 4)
	if streak != 5 {
		t.Errorf("Expected streak 5 with UTC-stored yesterday and local now, got %d", streak)
	}
}

func TestSameDayIgnoresTimeOfDay(t *testing.T) {
	morning := time.Date(2025, time.March, 10, 0, 0, 1, 0, time.UTC)
	night := time.Date(2025, time.March, 10, 23, 59, 59, 0, time.UTC)
	if !SameDay(morning, night) {
		t.Error("Expected morning and night of the same date to be the same day")
	}
	if SameDay(night, night.Add(time.Second)) {
		t.Error("Expected midnight rollover to be a different day")
	}
}
