// internal/gamification/risk.go
package gamification

import (
	"github.com/rakaarfi/vorsorge-guide-be/internal/models"
)

// MinimumRiskPercent adalah lantai risiko: akumulasi reduction sebesar apa pun
// tidak pernah menurunkan risiko di bawah angka ini.
const MinimumRiskPercent = 5

// RiskProfile menghitung profil risiko pengguna dari daftar task ID yang
// sudah diselesaikan.
//
// Setiap kategori diinisialisasi dari baseOverride (bila ada) atau baseline
// katalog, lalu reduction dari setiap task ID dijumlahkan per kategori.
// Penjumlahan TIDAK dideduplikasi: task ID yang muncul berkali-kali (task
// berulang yang sering diselesaikan) terus menurunkan risiko, hanya ditahan
// oleh lantai 5%. Itu perilaku sumber yang dipertahankan; lihat DESIGN.md.
func RiskProfile(
	risks []models.HealthRisk,
	reductions map[string][]models.RiskReduction,
	completedTaskIDs []string,
	baseOverride map[models.HealthRiskType]int,
) map[models.HealthRiskType]models.RiskStatus {
	profile := make(map[models.HealthRiskType]models.RiskStatus, len(risks))

	for _, risk := range risks {
		base := risk.BaseRisk
		if override, ok := baseOverride[risk.ID]; ok {
			base = override
		}
		profile[risk.ID] = models.RiskStatus{
			BaseRisk:    base,
			Reduction:   0,
			CurrentRisk: float64(base),
		}
	}

	for _, taskID := range completedTaskIDs {
		for _, reduction := range reductions[taskID] {
			status, ok := profile[reduction.RiskType]
			if !ok {
				// Reduction menunjuk kategori yang tidak ada di katalog risiko:
				// diabaikan, bukan error.
				continue
			}
			status.Reduction += reduction.ReductionPercent
			profile[reduction.RiskType] = status
		}
	}

	for riskType, status := range profile {
		current := float64(status.BaseRisk) - status.Reduction
		if current < MinimumRiskPercent {
			current = MinimumRiskPercent
		}
		status.CurrentRisk = current
		profile[riskType] = status
	}

	return profile
}
