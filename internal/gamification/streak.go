// internal/gamification/streak.go
package gamification

import (
	"sort"
	"time"

	"github.com/rakaarfi/vorsorge-guide-be/internal/models"
)

// CalculateStreak menurunkan streak berjalan dari riwayat completion.
//
// Untuk task daily: urutkan completion menurun, lalu jalan mundur dari hari
// ini. Sebuah completion memperpanjang streak bila jatuh pada hari yang
// diharapkan (selisih 0, menoleransi duplikat di hari yang sama) atau tepat
// satu hari sebelumnya. Gap lebih dari satu hari memutus streak.
//
// Untuk frequency non-daily: streak = jumlah total completion. Ini
// penyederhanaan yang disengaja (tidak ada pengecekan kadensi); lihat
// DESIGN.md.
func CalculateStreak(history []models.TaskCompletion, frequency models.TaskFrequency, now time.Time) int {
	if len(history) == 0 {
		return 0
	}

	if frequency != models.FrequencyDaily {
		return len(history)
	}

	sorted := make([]models.TaskCompletion, len(history))
	copy(sorted, history)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].CompletedAt.After(sorted[j].CompletedAt)
	})

	streak := 0
	expected := StartOfDay(now)
	for _, completion := range sorted {
		day := StartOfDay(completion.CompletedAt)
		diff := DaysBetween(expected, day)
		if diff == 0 || diff == 1 {
			streak++
			expected = day
		} else {
			break
		}
	}
	return streak
}

// IsStreakInDanger menandai streak yang terancam putus: hanya untuk task
// daily, bila sudah lewat minimal satu hari penuh sejak completion terakhir
// dan hari ini belum diselesaikan.
func IsStreakInDanger(lastCompleted *time.Time, frequency models.TaskFrequency, now time.Time) bool {
	if lastCompleted == nil || frequency != models.FrequencyDaily {
		return false
	}
	diff := DaysBetween(now, *lastCompleted)
	return diff >= 1
}
