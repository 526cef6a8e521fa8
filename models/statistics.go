package models

// Statistics is the normalized snapshot of an external LeetCode profile.
// It is derived per request and never persisted.
type Statistics struct {
	TotalSolved        int            `json:"totalSolved"`
	TotalQuestions     int            `json:"totalQuestions"`
	EasySolved         int            `json:"easySolved"`
	TotalEasy          int            `json:"totalEasy"`
	MediumSolved       int            `json:"mediumSolved"`
	TotalMedium        int            `json:"totalMedium"`
	HardSolved         int            `json:"hardSolved"`
	TotalHard          int            `json:"totalHard"`
	Ranking            int            `json:"ranking"`
	ContributionPoint  int            `json:"contributionPoint"`
	Reputation         int            `json:"reputation"`
	SubmissionCalendar map[string]int `json:"submissionCalendar"`
	// CompletedDates lists one "YYYY-MM-DD" entry per solved submission,
	// expanded from SubmissionCalendar.
	CompletedDates []string `json:"completedDates"`
}
