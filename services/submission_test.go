package services

import (
	"errors"
	"testing"
	"time"

	"codestreak/models"
)

func TestPlanSubmissionFirstEver(t *testing.T) {
	user := &models.User{}
	now := date(2025, time.March, 10)

	plan, err := PlanSubmission(user, "two-sum", now)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if plan.NewStreak != 1 {
		t.Errorf("Expected streak 1, got %d", plan.NewStreak)
	}
	if !plan.FirstToday || !plan.StampDay {
		t.Error("Expected first-of-day completion to stamp the day")
	}
	if plan.CoinsEarned != CoinBounty {
		t.Errorf("Expected %d coins, got %d", CoinBounty, plan.CoinsEarned)
	}
}

func TestPlanSubmissionSecondOfDay(t *testing.T) {
	now := date(2025, time.March, 10)
	earlier := now.Add(-2 * time.Hour)
	user := &models.User{
		Streak:            3,
		LastActiveDate:    &earlier,
		CompletedDates:    []time.Time{earlier},
		CompletedProblems: []string{"two-sum"},
	}

	plan, err := PlanSubmission(user, "valid-parentheses", now)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if plan.FirstToday {
		t.Error("Expected second completion of the day to not be first")
	}
	if plan.StampDay {
		t.Error("Expected no new day timestamp for second completion")
	}
	if plan.NewStreak != 3 {
		t.Errorf("Expected streak unchanged at 3, got %d", plan.NewStreak)
	}
	if plan.CoinsEarned != CoinBounty {
		t.Errorf("Expected coin bounty regardless of streak, got %d", plan.CoinsEarned)
	}
}

func TestPlanSubmissionSecondOfDayAcrossZones(t *testing.T) {
	// The day timestamp was stored in UTC; the server clock runs in a
	// non-UTC zone. The second submission of the day must still be
	// recognized as such.
	est := time.FixedZone("EST", -5*60*60)
	stored := time.Date(2025, time.March, 10, 13, 0, 0, 0, time.UTC)
	localNow := time.Date(2025, time.March, 10, 10, 0, 0, 0, est)
	user := &models.User{
		Streak:            3,
		LastActiveDate:    &stored,
		CompletedDates:    []time.Time{stored},
		CompletedProblems: []string{"two-sum"},
	}

	plan, err := PlanSubmission(user, "valid-parentheses", localNow)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if plan.FirstToday || plan.StampDay {
		t.Errorf("Expected second-of-day completion, got FirstToday=%v StampDay=%v", plan.FirstToday, plan.StampDay)
	}
	if plan.NewStreak != 3 {
		t.Errorf("Expected streak unchanged at 3, got %d", plan.NewStreak)
	}
	if plan.CoinsEarned != CoinBounty {
		t.Errorf("Expected coin bounty, got %d", plan.CoinsEarned)
	}
}

func TestPlanSubmissionConsecutiveDay(t *testing.T) {
	yesterday := date(2025, time.March, 9)
	user := &models.User{
		Streak:            3,
		LastActiveDate:    &yesterday,
		CompletedDates:    []time.Time{yesterday},
		CompletedProblems: []string{"two-sum"},
	}

	plan, err := PlanSubmission(user, "merge-intervals", date(2025, time.March, 10))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if plan.NewStreak != 4 {
		t.Errorf("Expected streak 4, got %d", plan.NewStreak)
	}
	if !plan.FirstToday {
		t.Error("Expected first completion of the day")
	}
}

func TestPlanSubmissionGapResets(t *testing.T) {
	lastWeek := date(2025, time.March, 1)
	user := &models.User{
		Streak:            9,
		LastActiveDate:    &lastWeek,
		CompletedDates:    []time.Time{lastWeek},
		CompletedProblems: []string{"two-sum"},
	}

	plan, err := PlanSubmission(user, "merge-intervals", date(2025, time.March, 10))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if plan.NewStreak != 1 {
		t.Errorf("Expected streak reset to 1, got %d", plan.NewStreak)
	}
}

func TestPlanSubmissionDuplicateRejected(t *testing.T) {
	user := &models.User{
		Coins:             50,
		Streak:            2,
		CompletedProblems: []string{"two-sum"},
	}

	_, err := PlanSubmission(user, "two-sum", date(2025, time.March, 10))
	if !errors.Is(err, ErrAlreadyCompleted) {
		t.Fatalf("Expected ErrAlreadyCompleted, got %v", err)
	}
}

func TestPlanSubmissionFlagsInconsistentState(t *testing.T) {
	// lastActiveDate says today but no completion timestamp exists for today.
	now := date(2025, time.March, 10)
	earlier := now.Add(-3 * time.Hour)
	user := &models.User{
		Streak:         5,
		LastActiveDate: &earlier,
	}

	plan, err := PlanSubmission(user, "two-sum", now)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !plan.Inconsistent {
		t.Error("Expected inconsistency flag")
	}
	if plan.NewStreak != 5 {
		t.Errorf("Expected streak kept at 5, got %d", plan.NewStreak)
	}
}
