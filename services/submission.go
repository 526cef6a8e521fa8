package services

import (
	"time"

	"codestreak/models"
)

// CoinBounty is awarded for every accepted submission.
const CoinBounty = 10

// SubmissionPlan is the outcome of validating a submission against the
// current user state. StampDay is true when this is the user's first
// completion of the calendar day, in which case lastActiveDate moves to now
// and a history timestamp is appended alongside the streak update.
type SubmissionPlan struct {
	ProblemID    string
	CoinsEarned  int
	NewStreak    int
	FirstToday   bool
	StampDay     bool
	Inconsistent bool // lastActiveDate says today but no timestamp for today
	Now          time.Time
}

// PlanSubmission decides how a completed problem changes the user's ledger.
// It performs no I/O; the caller persists the plan as a single atomic update.
func PlanSubmission(user *models.User, problemID string, now time.Time) (SubmissionPlan, error) {
	for _, id := range user.CompletedProblems {
		if id == problemID {
			return SubmissionPlan{}, ErrAlreadyCompleted
		}
	}

	hasCompletedToday := false
	for _, d := range user.CompletedDates {
		if SameDay(d, now) {
			hasCompletedToday = true
			break
		}
	}

	plan := SubmissionPlan{
		ProblemID:   problemID,
		CoinsEarned: CoinBounty,
		NewStreak:   user.Streak,
		Now:         now,
	}

	if hasCompletedToday {
		return plan, nil
	}

	plan.FirstToday = true
	plan.StampDay = true
	plan.NewStreak = NextStreak(now, user.LastActiveDate, user.Streak)
	if user.LastActiveDate != nil && SameDay(*user.LastActiveDate, now) {
		plan.Inconsistent = true
	}
	return plan, nil
}
