package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strconv"
	"time"

	"codestreak/internal/cache"
	"codestreak/models"
)

const userProfileQuery = `
query getUserProfile($username: String!) {
  allQuestionsCount {
    difficulty
    count
  }
  matchedUser(username: $username) {
    contributions {
      points
    }
    profile {
      reputation
      ranking
    }
    submissionCalendar
    submitStats {
      acSubmissionNum {
        difficulty
        count
        submissions
      }
      totalSubmissionNum {
        difficulty
        count
        submissions
      }
    }
  }
}`

type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type graphqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors json.RawMessage `json:"errors"`
}

type difficultyCount struct {
	Difficulty string `json:"difficulty"`
	Count      int    `json:"count"`
}

type rawProfile struct {
	AllQuestionsCount []difficultyCount `json:"allQuestionsCount"`
	MatchedUser       struct {
		Contributions struct {
			Points int `json:"points"`
		} `json:"contributions"`
		Profile struct {
			Reputation int `json:"reputation"`
			Ranking    int `json:"ranking"`
		} `json:"profile"`
		SubmissionCalendar string `json:"submissionCalendar"`
		SubmitStats        struct {
			AcSubmissionNum []difficultyCount `json:"acSubmissionNum"`
		} `json:"submitStats"`
	} `json:"matchedUser"`
}

// StatsFetcher resolves an external username to a normalized snapshot.
type StatsFetcher interface {
	FetchStats(ctx context.Context, username string) (*models.Statistics, error)
}

// LeetCodeClient fetches profiles from the LeetCode GraphQL endpoint,
// memoizing normalized snapshots in a TTL cache keyed by username.
type LeetCodeClient struct {
	url        string
	httpClient *http.Client
	cache      cache.Cache
	ttl        time.Duration
}

func NewLeetCodeClient(url string, store cache.Cache, ttl time.Duration) *LeetCodeClient {
	return &LeetCodeClient{
		url:        url,
		httpClient: &http.Client{},
		cache:      store,
		ttl:        ttl,
	}
}

// FetchStats returns the normalized statistics for username. Cache errors are
// ignored; they only cost an extra upstream round trip.
func (c *LeetCodeClient) FetchStats(ctx context.Context, username string) (*models.Statistics, error) {
	if cached, ok, err := c.cache.Get(ctx, "leetcode:"+username); err == nil && ok {
		var stats models.Statistics
		if err := json.Unmarshal(cached, &stats); err == nil {
			return &stats, nil
		}
	}

	data, err := c.sendQuery(ctx, userProfileQuery, map[string]any{"username": username})
	if err != nil {
		return nil, err
	}

	var raw rawProfile
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: failed to decode profile: %v", ErrUpstream, err)
	}

	stats := normalizeStats(&raw)

	if encoded, err := json.Marshal(stats); err == nil {
		c.cache.Set(ctx, "leetcode:"+username, encoded, c.ttl)
	}
	return stats, nil
}

func (c *LeetCodeClient) sendQuery(ctx context.Context, query string, variables map[string]any) (json.RawMessage, error) {
	body, err := json.Marshal(graphqlRequest{Query: query, Variables: variables})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal GraphQL request: %w", err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Referer", "https://leetcode.com")

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer response.Body.Close()

	responseBody, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %v", ErrUpstream, err)
	}
	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s: %s", ErrUpstream, response.Status, responseBody)
	}

	var decoded graphqlResponse
	if err := json.Unmarshal(responseBody, &decoded); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON response: %v", ErrUpstream, err)
	}
	if len(decoded.Errors) > 0 {
		return nil, fmt.Errorf("%w: GraphQL errors: %s", ErrUpstream, decoded.Errors)
	}
	return decoded.Data, nil
}

func normalizeStats(raw *rawProfile) *models.Statistics {
	stats := &models.Statistics{
		Ranking:           raw.MatchedUser.Profile.Ranking,
		Reputation:        raw.MatchedUser.Profile.Reputation,
		ContributionPoint: raw.MatchedUser.Contributions.Points,
	}

	for _, row := range raw.MatchedUser.SubmitStats.AcSubmissionNum {
		switch row.Difficulty {
		case "All":
			stats.TotalSolved = row.Count
		case "Easy":
			stats.EasySolved = row.Count
		case "Medium":
			stats.MediumSolved = row.Count
		case "Hard":
			stats.HardSolved = row.Count
		}
	}
	for _, row := range raw.AllQuestionsCount {
		switch row.Difficulty {
		case "All":
			stats.TotalQuestions = row.Count
		case "Easy":
			stats.TotalEasy = row.Count
		case "Medium":
			stats.TotalMedium = row.Count
		case "Hard":
			stats.TotalHard = row.Count
		}
	}

	stats.SubmissionCalendar = parseCalendar(raw.MatchedUser.SubmissionCalendar)
	stats.CompletedDates = ExpandCalendar(stats.SubmissionCalendar)
	return stats
}

// parseCalendar decodes LeetCode's submissionCalendar field, a JSON string
// mapping UNIX day timestamps to submission counts. Malformed input yields an
// empty map; the activity view degrades to blank instead of failing.
func parseCalendar(raw string) map[string]int {
	if raw == "" {
		return map[string]int{}
	}
	var calendar map[string]int
	if err := json.Unmarshal([]byte(raw), &calendar); err != nil {
		return map[string]int{}
	}
	return calendar
}

// ExpandCalendar flattens a day-timestamp to count map into date strings,
// one entry per submission. Keys are sorted numerically so the output is
// stable; keys that are not integers are skipped.
func ExpandCalendar(calendar map[string]int) []string {
	type dayCount struct {
		ts    int64
		count int
	}

	days := make([]dayCount, 0, len(calendar))
	for key, count := range calendar {
		ts, err := strconv.ParseInt(key, 10, 64)
		if err != nil || count <= 0 {
			continue
		}
		days = append(days, dayCount{ts: ts, count: count})
	}
	sort.Slice(days, func(i, j int) bool { return days[i].ts < days[j].ts })

	dates := []string{}
	for _, day := range days {
		date := time.Unix(day.ts, 0).UTC().Format("2006-01-02")
		for i := 0; i < day.count; i++ {
			dates = append(dates, date)
		}
	}
	return dates
}
