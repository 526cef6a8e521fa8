package models

// ActivityCell is one day square of the activity grid.
type ActivityCell struct {
	Date          string `json:"date"` // YYYY-MM-DD
	Count         int    `json:"count"`
	Level         int    `json:"level"` // 0 none, 1 one, 2 two, 3 three or more
	IsToday       bool   `json:"isToday"`
	IsCurrentYear bool   `json:"isCurrentYear"`
}

// ActivityStats aggregates a grid's input dates.
type ActivityStats struct {
	TotalProblems int `json:"totalProblems"`
	ActiveDays    int `json:"activeDays"`
	MaxInDay      int `json:"maxInDay"`
}

// ActivityGrid is a fixed 53-week by 7-day grid anchored to the Sunday on or
// before January 1 of the target year.
type ActivityGrid struct {
	Weeks [][]ActivityCell `json:"weeks"`
	Stats ActivityStats    `json:"stats"`
}
