// internal/catalog/achievements.go
package catalog

import (
	"github.com/rakaarfi/vorsorge-guide-be/internal/models"
)

// achievements adalah katalog achievement. Mencakup semua varian kondisi,
// termasuk varian kategori/early-bird yang saat ini undecidable (tidak pernah
// unlock) -- tetap di katalog agar tampil sebagai badge locked.
var achievements = []models.Achievement{
	// --- Milestone dasar ---
	{
		ID: "first-task", Title: "Erster Schritt",
		Description: "Schliesse deine erste Aufgabe ab",
		BadgeIcon:   "🎯",
		UnlockCondition: models.AchievementCondition{
			Type: models.ConditionTotalTasks, Threshold: 1,
		},
		Points: 10, Rarity: models.RarityCommon,
	},
	{
		ID: "tasks-10", Title: "Dranbleiber",
		Description: "Schliesse 10 Aufgaben ab",
		BadgeIcon:   "✅",
		UnlockCondition: models.AchievementCondition{
			Type: models.ConditionTotalTasks, Threshold: 10,
		},
		Points: 25, Rarity: models.RarityCommon,
	},
	{
		ID: "tasks-50", Title: "Gesundheitsprofi",
		Description: "Schliesse 50 Aufgaben ab",
		BadgeIcon:   "🏅",
		UnlockCondition: models.AchievementCondition{
			Type: models.ConditionTotalTasks, Threshold: 50,
		},
		Points: 75, Rarity: models.RarityUncommon,
	},
	{
		ID: "tasks-100", Title: "Vorsorge-Veteran",
		Description: "Schliesse 100 Aufgaben ab",
		BadgeIcon:   "🎖️",
		UnlockCondition: models.AchievementCondition{
			Type: models.ConditionTotalTasks, Threshold: 100,
		},
		Points: 150, Rarity: models.RarityRare,
	},

	// --- Streaks ---
	{
		ID: "streak-7", Title: "Eine Woche stark",
		Description: "Halte einen 7-Tage-Streak",
		BadgeIcon:   "🔥",
		UnlockCondition: models.AchievementCondition{
			Type: models.ConditionStreak, Threshold: 7,
		},
		Points: 50, Rarity: models.RarityCommon,
	},
	{
		ID: "streak-14", Title: "Zwei Wochen Feuer",
		Description: "Halte einen 14-Tage-Streak",
		BadgeIcon:   "🔥",
		UnlockCondition: models.AchievementCondition{
			Type: models.ConditionStreak, Threshold: 14,
		},
		Points: 75, Rarity: models.RarityUncommon,
	},
	{
		ID: "streak-30", Title: "Ein Monat Disziplin",
		Description: "Halte einen 30-Tage-Streak",
		BadgeIcon:   "💪",
		UnlockCondition: models.AchievementCondition{
			Type: models.ConditionStreak, Threshold: 30,
		},
		Points: 150, Rarity: models.RarityRare,
	},
	{
		ID: "streak-100", Title: "Unaufhaltsam",
		Description: "Halte einen 100-Tage-Streak",
		BadgeIcon:   "⚡",
		UnlockCondition: models.AchievementCondition{
			Type: models.ConditionStreak, Threshold: 100,
		},
		Points: 500, Rarity: models.RarityLegendary,
	},

	// --- Punkte & Level ---
	{
		ID: "points-1k", Title: "Punktesammler",
		Description: "Erreiche 1'000 Punkte",
		BadgeIcon:   "⭐",
		UnlockCondition: models.AchievementCondition{
			Type: models.ConditionTotalPoints, Threshold: 1000,
		},
		Points: 50, Rarity: models.RarityCommon,
	},
	{
		ID: "points-5k", Title: "Punkte-Magnat",
		Description: "Erreiche 5'000 Punkte",
		BadgeIcon:   "🌟",
		UnlockCondition: models.AchievementCondition{
			Type: models.ConditionTotalPoints, Threshold: 5000,
		},
		Points: 150, Rarity: models.RarityRare,
	},
	{
		ID: "level-5", Title: "Aufsteiger",
		Description: "Erreiche Level 5",
		BadgeIcon:   "📈",
		UnlockCondition: models.AchievementCondition{
			Type: models.ConditionLevel, Threshold: 5,
		},
		Points: 100, Rarity: models.RarityUncommon,
	},
	{
		ID: "level-10", Title: "Gesundheits-Meister",
		Description: "Erreiche Level 10",
		BadgeIcon:   "👑",
		UnlockCondition: models.AchievementCondition{
			Type: models.ConditionLevel, Threshold: 10,
		},
		Points: 250, Rarity: models.RarityEpic,
	},

	// --- Perfekte Zeiträume ---
	{
		ID: "perfect-week", Title: "Perfekte Woche",
		Description: "Schliesse an 7 Tagen in Folge alle fälligen Aufgaben ab",
		BadgeIcon:   "🗓️",
		UnlockCondition: models.AchievementCondition{
			Type: models.ConditionPerfectWeek,
		},
		Points: 100, Rarity: models.RarityRare,
	},
	{
		ID: "perfect-month", Title: "Perfekter Monat",
		Description: "Schliesse an 30 Tagen in Folge alle fälligen Aufgaben ab",
		BadgeIcon:   "📅",
		UnlockCondition: models.AchievementCondition{
			Type: models.ConditionPerfectMonth,
		},
		Points: 300, Rarity: models.RarityEpic,
	},

	// --- Kategorie-spezifisch ---
	{
		ID: "fitness-fan", Title: "Fitness-Fan",
		Description: "Schliesse 25 Fitness-Aufgaben ab",
		BadgeIcon:   "🏃",
		UnlockCondition: models.AchievementCondition{
			Type: models.ConditionCategoryTasks, Threshold: 25,
			Category: models.CategoryFitness,
		},
		Points: 75, Rarity: models.RarityUncommon,
	},
	{
		ID: "mindfulness-master", Title: "Achtsamkeits-Meister",
		Description: "Halte einen 14-Tage-Streak bei Mental-Health-Aufgaben",
		BadgeIcon:   "🧘",
		UnlockCondition: models.AchievementCondition{
			Type: models.ConditionCategoryStreak, Threshold: 14,
			Category: models.CategoryMentalHealth,
		},
		Points: 100, Rarity: models.RarityRare,
	},
	{
		ID: "checkup-champion", Title: "Vorsorge-Champion",
		Description: "Schliesse 5 medizinische Aufgaben ab",
		BadgeIcon:   "🏥",
		UnlockCondition: models.AchievementCondition{
			Type: models.ConditionCategoryTasks, Threshold: 5,
			Category: models.CategoryMedical,
		},
		Points: 100, Rarity: models.RarityUncommon,
	},

	// --- Versteckte Achievements ---
	{
		ID: "early-bird", Title: "Früher Vogel",
		Description: "Schliesse 10 Aufgaben vor 9 Uhr morgens ab",
		BadgeIcon:   "🌅",
		UnlockCondition: models.AchievementCondition{
			Type: models.ConditionEarlyBird, Threshold: 10,
		},
		Points: 75, Rarity: models.RarityRare, Hidden: true,
	},
	{
		ID: "all-rounder", Title: "Allrounder",
		Description: "Schliesse an einem Tag Aufgaben aus allen Kategorien ab",
		BadgeIcon:   "🌈",
		UnlockCondition: models.AchievementCondition{
			Type: models.ConditionAllCategoriesDay,
		},
		Points: 200, Rarity: models.RarityEpic, Hidden: true,
	},
}

// Achievements mengembalikan salinan katalog achievement.
func Achievements() []models.Achievement {
	out := make([]models.Achievement, len(achievements))
	copy(out, achievements)
	return out
}

// AchievementByID mencari satu achievement; bool false bila ID tidak ada.
func AchievementByID(id string) (models.Achievement, bool) {
	for _, a := range achievements {
		if a.ID == id {
			return a, true
		}
	}
	return models.Achievement{}, false
}
