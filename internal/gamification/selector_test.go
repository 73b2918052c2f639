package gamification

import (
	"testing"

	"github.com/rakaarfi/vorsorge-guide-be/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestFilterTasksForUser(t *testing.T) {
	catalog := []models.TaskTemplate{
		{ID: "any-adult", AgeMin: 18, AgeMax: 99},
		{ID: "over-fifty", AgeMin: 50, AgeMax: 99},
		{ID: "women-only", AgeMin: 18, AgeMax: 99, GenderSpecific: models.GenderFemale},
		{ID: "men-only", AgeMin: 18, AgeMax: 99, GenderSpecific: models.GenderMale},
		{ID: "young-adult", AgeMin: 18, AgeMax: 35},
	}

	tests := []struct {
		name     string
		user     models.User
		expected []string
	}{
		{
			name:     "YoungWoman",
			user:     models.User{Age: 28, Gender: models.GenderFemale},
			expected: []string{"any-adult", "women-only", "young-adult"},
		},
		{
			name:     "OlderMan",
			user:     models.User{Age: 52, Gender: models.GenderMale},
			expected: []string{"any-adult", "over-fifty", "men-only"},
		},
		{
			name:     "AgeBoundsInclusive",
			user:     models.User{Age: 35, Gender: models.GenderOther},
			expected: []string{"any-adult", "young-adult"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := FilterTasksForUser(catalog, &tc.user)
			ids := make([]string, 0, len(got))
			for _, task := range got {
				ids = append(ids, task.ID)
			}
			assert.Equal(t, tc.expected, ids)
		})
	}
}

func TestPrioritizeTasks(t *testing.T) {
	tasks := []models.TaskTemplate{
		{ID: "low-many-points", Priority: models.PriorityLow, Points: 500},
		{ID: "critical-few-points", Priority: models.PriorityCritical, Points: 10},
		{ID: "high-relevant", Priority: models.PriorityHigh, Points: 20,
			RiskFactorRelevant: []string{"hypertension"}},
		{ID: "high-irrelevant", Priority: models.PriorityHigh, Points: 80},
		{ID: "high-more-points", Priority: models.PriorityHigh, Points: 90},
	}
	user := models.User{RiskFactors: []string{"hypertension"}}

	got := PrioritizeTasks(tasks, &user)
	ids := make([]string, 0, len(got))
	for _, task := range got {
		ids = append(ids, task.ID)
	}

	// Priority first, then risk-factor relevance beats points within the same
	// priority, then points descending.
	assert.Equal(t, []string{
		"critical-few-points",
		"high-relevant",
		"high-more-points",
		"high-irrelevant",
		"low-many-points",
	}, ids)

	// Input order untouched.
	assert.Equal(t, "low-many-points", tasks[0].ID)
}
