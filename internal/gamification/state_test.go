package gamification

import (
	"testing"
	"time"

	"github.com/rakaarfi/vorsorge-guide-be/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestInstanceState(t *testing.T) {
	now := time.Date(2026, time.March, 15, 10, 0, 0, 0, time.UTC)
	today := StartOfDay(now)
	tomorrow := today.AddDate(0, 0, 1)
	yesterday := today.AddDate(0, 0, -1)
	inThreeDays := today.AddDate(0, 0, 3)
	earlierToday := now.Add(-3 * time.Hour)

	tests := []struct {
		name     string
		instance models.UserTaskInstance
		expected models.InstanceState
	}{
		{"DueToday", models.UserTaskInstance{NextDue: today}, models.InstanceStateDueToday},
		{"Overdue", models.UserTaskInstance{NextDue: yesterday}, models.InstanceStateOverdue},
		{"Upcoming", models.UserTaskInstance{NextDue: inThreeDays}, models.InstanceStateUpcoming},
		{"CompletedToday", models.UserTaskInstance{NextDue: tomorrow, LastCompleted: &earlierToday}, models.InstanceStateCompletedToday},
		{"SnoozedWinsOverOverdue", models.UserTaskInstance{NextDue: yesterday, SnoozedUntil: &inThreeDays}, models.InstanceStateSnoozed},
		{"ExpiredSnoozeIgnored", models.UserTaskInstance{NextDue: today, SnoozedUntil: &yesterday}, models.InstanceStateDueToday},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, InstanceState(&tc.instance, now))
		})
	}
}

func TestCategoryProgress(t *testing.T) {
	now := time.Date(2026, time.March, 15, 18, 0, 0, 0, time.UTC)
	earlierToday := now.Add(-5 * time.Hour)
	yesterday := now.AddDate(0, 0, -1)

	templates := []models.TaskTemplate{
		{ID: "run", Category: models.CategoryFitness},
		{ID: "lift", Category: models.CategoryFitness},
		{ID: "meditate", Category: models.CategoryMentalHealth},
	}
	instances := []models.UserTaskInstance{
		{TaskID: "run", LastCompleted: &earlierToday},
		{TaskID: "lift", LastCompleted: &yesterday},
		{TaskID: "meditate"},
	}

	progress := CategoryProgress(instances, templates, now)

	assert.Equal(t, models.CategoryProgress{Completed: 1, Total: 2, Percentage: 50}, progress[models.CategoryFitness])
	assert.Equal(t, models.CategoryProgress{Completed: 0, Total: 1, Percentage: 0}, progress[models.CategoryMentalHealth])
	// Empty categories report total 1 so percentages stay well-defined.
	assert.Equal(t, models.CategoryProgress{Completed: 0, Total: 1, Percentage: 0}, progress[models.CategoryFinancial])
	assert.Len(t, progress, 6)
}
