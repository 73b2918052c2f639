// internal/gamification/achievements.go
package gamification

import (
	"github.com/rakaarfi/vorsorge-guide-be/internal/models"
)

// CheckAchievementCondition mengevaluasi satu kondisi unlock terhadap state
// agregat pengguna.
//
// Varian category_tasks, category_streak, early_bird, dan all_categories_day
// selalu false: perilaku aplikasi aslinya memang begitu (butuh data per
// kategori / jam completion yang belum dilacak), dan kami mempertahankannya
// supaya urutan unlock tidak berubah diam-diam. Lihat DESIGN.md.
func CheckAchievementCondition(
	condition models.AchievementCondition,
	user *models.User,
	instances []models.UserTaskInstance,
) bool {
	switch condition.Type {
	case models.ConditionStreak:
		return user.CurrentStreak >= condition.Threshold

	case models.ConditionTotalTasks:
		return TotalCompletions(instances) >= condition.Threshold

	case models.ConditionTotalPoints:
		return user.TotalPoints >= condition.Threshold

	case models.ConditionLevel:
		return user.Level >= condition.Threshold

	case models.ConditionPerfectWeek:
		// Aproksimasi: streak 7 hari, bukan cek "semua task selesai 7 hari".
		return user.CurrentStreak >= 7

	case models.ConditionPerfectMonth:
		return user.CurrentStreak >= 30

	case models.ConditionCategoryTasks,
		models.ConditionCategoryStreak,
		models.ConditionEarlyBird,
		models.ConditionAllCategoriesDay:
		return false

	default:
		return false
	}
}

// NewlyUnlocked mengembalikan achievement dari katalog yang kondisinya baru
// terpenuhi dan belum ada di alreadyUnlocked. Idempotensi dijaga lewat set
// membership, bukan mutasi katalog: memanggil dua kali dengan set unlocked
// yang sama tidak pernah mengembalikan entri yang sudah di-unlock.
func NewlyUnlocked(
	catalog []models.Achievement,
	user *models.User,
	instances []models.UserTaskInstance,
	alreadyUnlocked []models.UserAchievement,
) []models.Achievement {
	unlockedIDs := make(map[string]struct{}, len(alreadyUnlocked))
	for _, ua := range alreadyUnlocked {
		unlockedIDs[ua.AchievementID] = struct{}{}
	}

	var unlocked []models.Achievement
	for _, achievement := range catalog {
		if _, done := unlockedIDs[achievement.ID]; done {
			continue
		}
		if CheckAchievementCondition(achievement.UnlockCondition, user, instances) {
			unlocked = append(unlocked, achievement)
		}
	}
	return unlocked
}

// AchievementProgress mengembalikan progress 0-100 menuju kondisi unlock
// untuk varian yang terukur (streak, total_tasks, total_points, level);
// varian lain mengembalikan 0.
func AchievementProgress(
	achievement models.Achievement,
	user *models.User,
	instances []models.UserTaskInstance,
) int {
	condition := achievement.UnlockCondition
	if condition.Threshold <= 0 {
		return 0
	}

	var current int
	switch condition.Type {
	case models.ConditionStreak:
		current = user.CurrentStreak
	case models.ConditionTotalPoints:
		current = user.TotalPoints
	case models.ConditionLevel:
		current = user.Level
	case models.ConditionTotalTasks:
		current = TotalCompletions(instances)
	default:
		return 0
	}

	// Dibulatkan ke bawah, konsisten dengan LevelProgress.
	progress := current * 100 / condition.Threshold
	if progress > 100 {
		return 100
	}
	if progress < 0 {
		return 0
	}
	return progress
}

// TotalCompletions menjumlahkan panjang riwayat completion semua instance.
func TotalCompletions(instances []models.UserTaskInstance) int {
	total := 0
	for i := range instances {
		total += len(instances[i].CompletionHistory)
	}
	return total
}
