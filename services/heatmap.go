package services

import (
	"time"

	"codestreak/models"
)

const (
	gridWeeks = 53
	gridDays  = 7
)

// BuildActivityGrid buckets completion dates into a 53-week grid covering the
// calendar year of today. The grid starts on the Sunday on or before January
// 1 and runs 53 full weeks, spilling slightly into the next year. Duplicate
// dates are meaningful: each occurrence is one solved problem. The result is
// a pure function of the input dates and today.
func BuildActivityGrid(dates []string, today time.Time) models.ActivityGrid {
	year := today.Year()

	start := time.Date(year, time.January, 1, 0, 0, 0, 0, today.Location())
	start = start.AddDate(0, 0, -int(start.Weekday()))

	counts := make(map[string]int)
	for _, date := range dates {
		counts[date]++
	}

	todayKey := today.Format("2006-01-02")

	weeks := make([][]models.ActivityCell, 0, gridWeeks)
	day := start
	for week := 0; week < gridWeeks; week++ {
		row := make([]models.ActivityCell, 0, gridDays)
		for i := 0; i < gridDays; i++ {
			key := day.Format("2006-01-02")
			count := counts[key]
			row = append(row, models.ActivityCell{
				Date:          key,
				Count:         count,
				Level:         intensityLevel(count),
				IsToday:       key == todayKey,
				IsCurrentYear: day.Year() == year,
			})
			day = day.AddDate(0, 0, 1)
		}
		weeks = append(weeks, row)
	}

	maxInDay := 0
	for _, count := range counts {
		if count > maxInDay {
			maxInDay = count
		}
	}

	return models.ActivityGrid{
		Weeks: weeks,
		Stats: models.ActivityStats{
			TotalProblems: len(dates),
			ActiveDays:    len(counts),
			MaxInDay:      maxInDay,
		},
	}
}

func intensityLevel(count int) int {
	switch {
	case count <= 0:
		return 0
	case count == 1:
		return 1
	case count == 2:
		return 2
	default:
		return 3
	}
}
