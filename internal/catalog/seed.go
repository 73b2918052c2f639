// internal/catalog/seed.go
package catalog

import (
	"time"

	"github.com/rakaarfi/vorsorge-guide-be/internal/gamification"
	"github.com/rakaarfi/vorsorge-guide-be/internal/models"
)

// DemoUsers membangun tiga profil demo relatif terhadap now.
// Level selalu diturunkan dari TotalPoints, tidak pernah hardcoded.
func DemoUsers(now time.Time) []models.User {
	users := []models.User{
		{
			ID: "user-anna", Name: "Anna Müller", Age: 35,
			Gender:             models.GenderFemale,
			RiskFactors:        []string{},
			OnboardingComplete: true,
			TotalPoints:        2450,
			CurrentStreak:      12, LongestStreak: 28,
			JoinedDate:     now.AddDate(0, 0, -45),
			LastActiveDate: now,
			Preferences: models.UserPreferences{
				Theme: "system", NotificationsEnabled: true,
				ReminderTime: "19:00", Language: "de",
			},
		},
		{
			ID: "user-max", Name: "Max Weber", Age: 52,
			Gender:             models.GenderMale,
			RiskFactors:        []string{"hypertension", "diabetes_family"},
			OnboardingComplete: true,
			TotalPoints:        8200,
			CurrentStreak:      45, LongestStreak: 45,
			JoinedDate:     now.AddDate(0, 0, -120),
			LastActiveDate: now,
			Preferences: models.UserPreferences{
				Theme: "light", NotificationsEnabled: true,
				ReminderTime: "08:00", Language: "de",
			},
		},
		{
			ID: "user-lisa", Name: "Lisa Schmidt", Age: 28,
			Gender:             models.GenderFemale,
			RiskFactors:        []string{"smoker"},
			OnboardingComplete: true,
			TotalPoints:        450,
			CurrentStreak:      3, LongestStreak: 7,
			JoinedDate:     now.AddDate(0, 0, -14),
			LastActiveDate: now,
			Preferences: models.UserPreferences{
				Theme: "dark", NotificationsEnabled: false,
				ReminderTime: "20:00", Language: "de",
			},
		},
	}
	for i := range users {
		users[i].Level = gamification.CalculateLevel(users[i].TotalPoints)
	}
	return users
}

// DemoUnlocks membangun unlock awal untuk user demo, konsisten dengan
// statistik profilnya (Anna punya streak 12 -> streak-7 sudah terbuka, dst).
func DemoUnlocks(now time.Time) []models.UserAchievement {
	return []models.UserAchievement{
		{ID: "unlock-anna-first", UserID: "user-anna", AchievementID: "first-task",
			UnlockedAt: now.AddDate(0, 0, -44), Notified: true},
		{ID: "unlock-anna-streak7", UserID: "user-anna", AchievementID: "streak-7",
			UnlockedAt: now.AddDate(0, 0, -20), Notified: true},
		{ID: "unlock-anna-points1k", UserID: "user-anna", AchievementID: "points-1k",
			UnlockedAt: now.AddDate(0, 0, -15), Notified: true},

		{ID: "unlock-max-first", UserID: "user-max", AchievementID: "first-task",
			UnlockedAt: now.AddDate(0, 0, -119), Notified: true},
		{ID: "unlock-max-streak7", UserID: "user-max", AchievementID: "streak-7",
			UnlockedAt: now.AddDate(0, 0, -100), Notified: true},
		{ID: "unlock-max-streak30", UserID: "user-max", AchievementID: "streak-30",
			UnlockedAt: now.AddDate(0, 0, -60), Notified: true},
		{ID: "unlock-max-points5k", UserID: "user-max", AchievementID: "points-5k",
			UnlockedAt: now.AddDate(0, 0, -30), Notified: true},
		{ID: "unlock-max-level5", UserID: "user-max", AchievementID: "level-5",
			UnlockedAt: now.AddDate(0, 0, -80), Notified: true},

		{ID: "unlock-lisa-first", UserID: "user-lisa", AchievementID: "first-task",
			UnlockedAt: now.AddDate(0, 0, -13), Notified: true},
	}
}
