package gamification

import (
	"testing"
	"time"

	"github.com/rakaarfi/vorsorge-guide-be/internal/models"
	"github.com/stretchr/testify/assert"
)

func completionsOnDays(now time.Time, daysAgo ...int) []models.TaskCompletion {
	history := make([]models.TaskCompletion, 0, len(daysAgo))
	for _, d := range daysAgo {
		history = append(history, models.TaskCompletion{
			CompletedAt:  now.AddDate(0, 0, -d),
			PointsEarned: 10,
		})
	}
	return history
}

func TestCalculateStreak_Daily(t *testing.T) {
	now := time.Date(2026, time.March, 15, 20, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		daysAgo  []int
		expected int
	}{
		{"Empty", nil, 0},
		{"CompletedTodayOnly", []int{0}, 1},
		{"ThreeConsecutiveEndingToday", []int{0, 1, 2}, 3},
		{"ThreeConsecutiveEndingYesterday", []int{1, 2, 3}, 3},
		{"GapBreaksStreak", []int{0, 1, 3, 4}, 2},
		{"TwoDayOldCompletionOnly", []int{2}, 0},
		{"SameDayDuplicateTolerated", []int{0, 0, 1}, 3},
		{"UnsortedInput", []int{2, 0, 1}, 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			history := completionsOnDays(now, tc.daysAgo...)
			assert.Equal(t, tc.expected, CalculateStreak(history, models.FrequencyDaily, now))
		})
	}
}

func TestCalculateStreak_NonDailyCountsCompletions(t *testing.T) {
	now := time.Date(2026, time.March, 15, 20, 0, 0, 0, time.UTC)

	// Non-daily cadence is not verified: the streak is simply the completion
	// count, including widely spaced completions.
	history := completionsOnDays(now, 7, 30, 200)
	assert.Equal(t, 3, CalculateStreak(history, models.FrequencyWeekly, now))
	assert.Equal(t, 3, CalculateStreak(history, models.FrequencyAnnual, now))
	assert.Equal(t, 0, CalculateStreak(nil, models.FrequencyWeekly, now))
}

func TestIsStreakInDanger(t *testing.T) {
	now := time.Date(2026, time.March, 15, 8, 0, 0, 0, time.UTC)
	yesterday := now.AddDate(0, 0, -1)
	today := now.Add(-2 * time.Hour)
	threeDaysAgo := now.AddDate(0, 0, -3)

	tests := []struct {
		name          string
		lastCompleted *time.Time
		frequency     models.TaskFrequency
		expected      bool
	}{
		{"NeverCompleted", nil, models.FrequencyDaily, false},
		{"CompletedToday", &today, models.FrequencyDaily, false},
		{"CompletedYesterday", &yesterday, models.FrequencyDaily, true},
		{"CompletedThreeDaysAgo", &threeDaysAgo, models.FrequencyDaily, true},
		{"NonDailyNeverAtRisk", &threeDaysAgo, models.FrequencyWeekly, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, IsStreakInDanger(tc.lastCompleted, tc.frequency, now))
		})
	}
}
