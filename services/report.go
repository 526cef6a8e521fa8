package services

import (
	"context"
	"encoding/json"
	"fmt"

	"codestreak/models"
)

const reportPromptFormat = `You are a coding mentor AI. Based on the following JSON statistics from a LeetCode user, analyze their performance and create a 30-day study plan.

Return ONLY a JSON object with the following exact structure:
{
  "analysis": string,
  "plan": [
    { "day": string, "tasks": string }
  ]
}
Do NOT wrap the JSON in markdown fences or any extra text.

UserStats:
%s`

// GenerateReport fetches the user's statistics and asks the model for an
// analysis plus study plan. When the model returns something that is not the
// requested JSON shape, the raw text is returned under Raw instead of
// failing; callers always get a report of some form once stats are in hand.
func GenerateReport(ctx context.Context, username string, fetcher StatsFetcher) (*models.Statistics, *models.ReportCard, error) {
	stats, err := fetcher.FetchStats(ctx, username)
	if err != nil {
		return nil, nil, err
	}

	encoded, err := json.Marshal(stats)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal stats: %w", err)
	}

	response, err := generateDefaultModelText(ctx, fmt.Sprintf(reportPromptFormat, encoded))
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	return stats, ParseReport(response), nil
}

// ParseReport decodes the model output, falling back to the raw text when it
// is not the expected structure.
func ParseReport(text string) *models.ReportCard {
	var report models.ReportCard
	if err := json.Unmarshal([]byte(text), &report); err != nil || report.Analysis == "" {
		return &models.ReportCard{Raw: text}
	}
	report.Raw = ""
	return &report
}
