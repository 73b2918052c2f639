// internal/gamification/state.go
package gamification

import (
	"time"

	"github.com/rakaarfi/vorsorge-guide-be/internal/models"
)

// InstanceState menurunkan status jadwal sebuah instance relatif terhadap
// `now`. Urutan pengecekan penting: snoozed menang atas segalanya, lalu
// completed_today, overdue, due_today, dan sisanya upcoming.
func InstanceState(inst *models.UserTaskInstance, now time.Time) models.InstanceState {
	today := StartOfDay(now)
	nextDue := StartOfDay(inst.NextDue)

	if inst.SnoozedUntil != nil && today.Before(StartOfDay(*inst.SnoozedUntil)) {
		return models.InstanceStateSnoozed
	}
	if inst.LastCompleted != nil && SameDay(*inst.LastCompleted, now) {
		return models.InstanceStateCompletedToday
	}
	if nextDue.Before(today) {
		return models.InstanceStateOverdue
	}
	if nextDue.Equal(today) {
		return models.InstanceStateDueToday
	}
	return models.InstanceStateUpcoming
}

// SameDay melaporkan apakah a dan b jatuh pada hari kalender yang sama.
func SameDay(a, b time.Time) bool {
	return StartOfDay(a).Equal(StartOfDay(b))
}

// CategoryProgress menghitung ringkasan harian per kategori: berapa instance
// di kategori itu yang selesai hari ini, dari berapa total. Total minimum 1
// supaya persentase tidak membagi nol (kategori kosong tampil 0/1 = 0%).
func CategoryProgress(
	instances []models.UserTaskInstance,
	templates []models.TaskTemplate,
	now time.Time,
) map[models.TaskCategory]models.CategoryProgress {
	byID := make(map[string]models.TaskTemplate, len(templates))
	for _, t := range templates {
		byID[t.ID] = t
	}

	result := make(map[models.TaskCategory]models.CategoryProgress, 6)
	for _, category := range models.AllCategories() {
		total := 0
		completed := 0
		for i := range instances {
			tmpl, ok := byID[instances[i].TaskID]
			if !ok || tmpl.Category != category {
				continue
			}
			total++
			if instances[i].LastCompleted != nil && SameDay(*instances[i].LastCompleted, now) {
				completed++
			}
		}
		denom := total
		if denom == 0 {
			denom = 1
		}
		result[category] = models.CategoryProgress{
			Completed:  completed,
			Total:      denom,
			Percentage: (completed*100 + denom/2) / denom, // dibulatkan ke persen terdekat
		}
	}
	return result
}
