// internal/gamification/selector.go
package gamification

import (
	"sort"

	"github.com/rakaarfi/vorsorge-guide-be/internal/models"
)

// FilterTasksForUser menyaring katalog template menjadi daftar yang berlaku
// untuk satu pengguna: umur di dalam rentang (inklusif) DAN restriksi gender
// (bila ada) cocok.
func FilterTasksForUser(catalog []models.TaskTemplate, user *models.User) []models.TaskTemplate {
	filtered := make([]models.TaskTemplate, 0, len(catalog))
	for _, task := range catalog {
		if user.Age < task.AgeMin || user.Age > task.AgeMax {
			continue
		}
		if task.GenderSpecific != "" && task.GenderSpecific != user.Gender {
			continue
		}
		filtered = append(filtered, task)
	}
	return filtered
}

// PrioritizeTasks mengurutkan template secara stabil:
//  1. rank prioritas menaik (critical dulu),
//  2. relevansi risk factor: task yang menyentuh salah satu risk factor
//     pengguna tampil sebelum task non-relevan dengan prioritas sama,
//  3. poin menurun sebagai tiebreak terakhir.
//
// Slice input tidak dimutasi.
func PrioritizeTasks(tasks []models.TaskTemplate, user *models.User) []models.TaskTemplate {
	ordered := make([]models.TaskTemplate, len(tasks))
	copy(ordered, tasks)

	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]

		if a.Priority.Rank() != b.Priority.Rank() {
			return a.Priority.Rank() < b.Priority.Rank()
		}

		aRelevant := isRiskRelevant(a, user)
		bRelevant := isRiskRelevant(b, user)
		if aRelevant != bRelevant {
			return aRelevant
		}

		return a.Points > b.Points
	})
	return ordered
}

func isRiskRelevant(task models.TaskTemplate, user *models.User) bool {
	for _, rf := range task.RiskFactorRelevant {
		for _, userRF := range user.RiskFactors {
			if rf == userRF {
				return true
			}
		}
	}
	return false
}
