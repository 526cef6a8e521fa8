package services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"codestreak/internal/cache"
)

func TestExpandCalendar(t *testing.T) {
	dates := ExpandCalendar(map[string]int{"1700000000": 2})
	if len(dates) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(dates))
	}
	want := time.Unix(1700000000, 0).UTC().Format("2006-01-02")
	if dates[0] != want || dates[1] != want {
		t.Errorf("Expected both entries %q, got %v", want, dates)
	}
}

func TestExpandCalendarSortedAcrossDays(t *testing.T) {
	dates := ExpandCalendar(map[string]int{
		"1700086400": 1, // the later day
		"1700000000": 1,
	})
	if len(dates) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(dates))
	}
	if dates[0] >= dates[1] {
		t.Errorf("Expected chronological order, got %v", dates)
	}
}

func TestExpandCalendarSkipsBadKeys(t *testing.T) {
	dates := ExpandCalendar(map[string]int{"not-a-timestamp": 3, "1700000000": 1})
	if len(dates) != 1 {
		t.Errorf("Expected bad keys skipped, got %v", dates)
	}
}

func TestParseCalendarMalformedYieldsEmpty(t *testing.T) {
	calendar := parseCalendar("{not json")
	if len(calendar) != 0 {
		t.Errorf("Expected empty map for malformed input, got %v", calendar)
	}
	if dates := ExpandCalendar(calendar); len(dates) != 0 {
		t.Errorf("Expected empty expansion, got %v", dates)
	}
}

const profileResponse = `{
  "data": {
    "allQuestionsCount": [
      {"difficulty": "All", "count": 3000},
      {"difficulty": "Easy", "count": 700},
      {"difficulty": "Medium", "count": 1500},
      {"difficulty": "Hard", "count": 800}
    ],
    "matchedUser": {
      "contributions": {"points": 120},
      "profile": {"reputation": 15, "ranking": 54321},
      "submissionCalendar": "{\"1700000000\": 2}",
      "submitStats": {
        "acSubmissionNum": [
          {"difficulty": "All", "count": 250},
          {"difficulty": "Easy", "count": 120},
          {"difficulty": "Medium", "count": 100},
          {"difficulty": "Hard", "count": 30}
        ]
      }
    }
  }
}`

func TestFetchStatsNormalizes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(profileResponse))
	}))
	defer server.Close()

	client := NewLeetCodeClient(server.URL, cache.NewMemory(), time.Minute)
	stats, err := client.FetchStats(context.Background(), "someone")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if stats.TotalSolved != 250 || stats.EasySolved != 120 || stats.MediumSolved != 100 || stats.HardSolved != 30 {
		t.Errorf("Unexpected solved counts: %+v", stats)
	}
	if stats.TotalQuestions != 3000 || stats.TotalHard != 800 {
		t.Errorf("Unexpected question counts: %+v", stats)
	}
	if stats.Ranking != 54321 || stats.Reputation != 15 || stats.ContributionPoint != 120 {
		t.Errorf("Unexpected profile fields: %+v", stats)
	}
	if len(stats.CompletedDates) != 2 {
		t.Errorf("Expected 2 expanded dates, got %v", stats.CompletedDates)
	}
}

func TestFetchStatsUsesCache(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(profileResponse))
	}))
	defer server.Close()

	client := NewLeetCodeClient(server.URL, cache.NewMemory(), time.Minute)
	if _, err := client.FetchStats(context.Background(), "someone"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if _, err := client.FetchStats(context.Background(), "someone"); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if calls != 1 {
		t.Errorf("Expected 1 upstream call with warm cache, got %d", calls)
	}
}

func TestFetchStatsGraphQLErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"errors": [{"message": "user not found"}]}`))
	}))
	defer server.Close()

	client := NewLeetCodeClient(server.URL, cache.NewMemory(), time.Minute)
	_, err := client.FetchStats(context.Background(), "missing")
	if !errors.Is(err, ErrUpstream) {
		t.Fatalf("Expected ErrUpstream, got %v", err)
	}
}

func TestFetchStatsHTTPFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewLeetCodeClient(server.URL, cache.NewMemory(), time.Minute)
	_, err := client.FetchStats(context.Background(), "someone")
	if !errors.Is(err, ErrUpstream) {
		t.Fatalf("Expected ErrUpstream, got %v", err)
	}
}
