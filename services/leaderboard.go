package services

import (
	"context"
	"log"
	"sort"
	"strings"
	"sync"

	"codestreak/models"
)

// BuildLeaderboard annotates users with their linked profile's solved count
// and ranking, fetching all profiles concurrently. A failed fetch is isolated
// to its own entry: that user stays on the board with zero solved and no
// ranking instead of failing the whole request. Entries are sorted by solved
// count descending; ties keep their input order.
func BuildLeaderboard(ctx context.Context, users []models.User, fetcher StatsFetcher) []models.LeaderboardEntry {
	entries := make([]models.LeaderboardEntry, len(users))

	var wg sync.WaitGroup
	for i, user := range users {
		name := user.Name
		if name == "" {
			name, _, _ = strings.Cut(user.Email, "@")
		}
		entries[i] = models.LeaderboardEntry{
			ID:               user.ID,
			Name:             name,
			Email:            user.Email,
			LeetcodeUsername: user.LeetcodeUsername,
		}

		wg.Add(1)
		go func(i int, username string) {
			defer wg.Done()
			stats, err := fetcher.FetchStats(ctx, username)
			if err != nil {
				log.Printf("leaderboard: stats fetch failed for %s: %v", username, err)
				return
			}
			entries[i].TotalSolved = stats.TotalSolved
			ranking := stats.Ranking
			entries[i].Ranking = &ranking
		}(i, user.LeetcodeUsername)
	}
	wg.Wait()

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].TotalSolved > entries[j].TotalSolved
	})
	return entries
}
