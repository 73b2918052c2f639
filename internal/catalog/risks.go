// internal/catalog/risks.go
package catalog

import (
	"github.com/rakaarfi/vorsorge-guide-be/internal/models"
)

// Paket catalog menyediakan seluruh data statis aplikasi: baseline risiko,
// tabel reduksi risiko per task, katalog task template, katalog achievement,
// dan demo seed. Semua data dibuat sekali saat init dan tidak pernah dimutasi
// saat runtime; fungsi akses selalu mengembalikan salinan slice agar caller
// tidak bisa merusak katalog.

// healthRisks adalah baseline risiko per kategori. Angka ilustratif untuk
// demo, bukan model epidemiologi.
var healthRisks = []models.HealthRisk{
	{ID: models.RiskHeartDisease, Name: "Herzerkrankungen", Icon: "❤️", Color: "#EF4444", BaseRisk: 45,
		Description: "Koronare Herzkrankheit, Herzinfarkt, Herzinsuffizienz"},
	{ID: models.RiskStroke, Name: "Schlaganfall", Icon: "🧠", Color: "#8B5CF6", BaseRisk: 35,
		Description: "Hirninfarkt durch Durchblutungsstörung oder Blutung"},
	{ID: models.RiskDiabetes, Name: "Diabetes Typ 2", Icon: "🩸", Color: "#F59E0B", BaseRisk: 40,
		Description: "Stoffwechselerkrankung mit erhöhtem Blutzucker"},
	{ID: models.RiskCancer, Name: "Krebs", Icon: "🎗️", Color: "#EC4899", BaseRisk: 38,
		Description: "Verschiedene Krebsarten durch Vorsorge reduzierbar"},
	{ID: models.RiskDepression, Name: "Depression", Icon: "😔", Color: "#6366F1", BaseRisk: 32,
		Description: "Psychische Erkrankung mit anhaltender Niedergeschlagenheit"},
	{ID: models.RiskDementia, Name: "Demenz", Icon: "🧩", Color: "#14B8A6", BaseRisk: 28,
		Description: "Alzheimer und andere kognitive Einschränkungen"},
	{ID: models.RiskOsteoporosis, Name: "Osteoporose", Icon: "🦴", Color: "#78716C", BaseRisk: 25,
		Description: "Knochenschwund mit erhöhtem Frakturrisiko"},
	{ID: models.RiskObesity, Name: "Adipositas", Icon: "⚖️", Color: "#F97316", BaseRisk: 42,
		Description: "Starkes Übergewicht mit Folgeerkrankungen"},
}

// taskRiskReductions memetakan task ID ke daftar reduksi risikonya.
// Persentase mengacu pada literatur preventif, disederhanakan untuk demo.
var taskRiskReductions = map[string][]models.RiskReduction{
	"daily-exercise": {
		{RiskType: models.RiskHeartDisease, ReductionPercent: 3.5, Explanation: "Regelmässige Bewegung stärkt das Herz-Kreislauf-System"},
		{RiskType: models.RiskStroke, ReductionPercent: 2.7, Explanation: "Bewegung verbessert die Durchblutung des Gehirns"},
		{RiskType: models.RiskDiabetes, ReductionPercent: 4.2, Explanation: "Sport verbessert die Insulinsensitivität"},
		{RiskType: models.RiskDepression, ReductionPercent: 3.0, Explanation: "Endorphine verbessern die Stimmung"},
		{RiskType: models.RiskObesity, ReductionPercent: 5.0, Explanation: "Kalorienverbrennung hilft bei Gewichtskontrolle"},
	},
	"daily-meditation": {
		{RiskType: models.RiskDepression, ReductionPercent: 4.5, Explanation: "Achtsamkeit reduziert Stress und Angst"},
		{RiskType: models.RiskHeartDisease, ReductionPercent: 2.0, Explanation: "Stressreduktion senkt den Blutdruck"},
		{RiskType: models.RiskDementia, ReductionPercent: 1.8, Explanation: "Meditation fördert die Neuroplastizität"},
	},
	"daily-water": {
		{RiskType: models.RiskDiabetes, ReductionPercent: 1.5, Explanation: "Gute Hydration unterstützt den Stoffwechsel"},
		{RiskType: models.RiskObesity, ReductionPercent: 1.2, Explanation: "Wasser hilft bei Sättigung und Stoffwechsel"},
	},
	"daily-sleep-tracking": {
		{RiskType: models.RiskHeartDisease, ReductionPercent: 2.8, Explanation: "Erholsamer Schlaf regeneriert das Herz"},
		{RiskType: models.RiskDepression, ReductionPercent: 3.5, Explanation: "Guter Schlaf stabilisiert die Psyche"},
		{RiskType: models.RiskDementia, ReductionPercent: 2.2, Explanation: "Im Schlaf werden Giftstoffe aus dem Gehirn entfernt"},
		{RiskType: models.RiskObesity, ReductionPercent: 2.0, Explanation: "Schlafmangel erhöht Hungerhormone"},
	},
	"daily-gratitude": {
		{RiskType: models.RiskDepression, ReductionPercent: 3.2, Explanation: "Dankbarkeit fördert positive Gedanken"},
		{RiskType: models.RiskHeartDisease, ReductionPercent: 1.0, Explanation: "Positive Emotionen senken Stresshormone"},
	},
	"daily-breathing": {
		{RiskType: models.RiskDepression, ReductionPercent: 2.5, Explanation: "Atemübungen aktivieren den Parasympathikus"},
		{RiskType: models.RiskHeartDisease, ReductionPercent: 1.5, Explanation: "Tiefe Atmung senkt den Blutdruck"},
	},
	"daily-posture": {
		{RiskType: models.RiskOsteoporosis, ReductionPercent: 1.5, Explanation: "Gute Haltung stärkt die Wirbelsäule"},
	},
	"daily-social": {
		{RiskType: models.RiskDepression, ReductionPercent: 4.0, Explanation: "Soziale Kontakte stärken das Wohlbefinden"},
		{RiskType: models.RiskDementia, ReductionPercent: 2.5, Explanation: "Soziale Aktivität hält das Gehirn fit"},
		{RiskType: models.RiskHeartDisease, ReductionPercent: 1.5, Explanation: "Soziale Unterstützung reduziert Stress"},
	},
	"weekly-strength": {
		{RiskType: models.RiskOsteoporosis, ReductionPercent: 4.5, Explanation: "Krafttraining stärkt die Knochen"},
		{RiskType: models.RiskDiabetes, ReductionPercent: 3.0, Explanation: "Muskeln verbessern den Zuckerstoffwechsel"},
		{RiskType: models.RiskObesity, ReductionPercent: 3.5, Explanation: "Mehr Muskelmasse erhöht den Grundumsatz"},
	},
	"weekly-social-meetup": {
		{RiskType: models.RiskDepression, ReductionPercent: 5.0, Explanation: "Regelmässige Treffen stärken die Psyche"},
		{RiskType: models.RiskDementia, ReductionPercent: 3.0, Explanation: "Soziale Interaktion fördert kognitive Gesundheit"},
	},
	"weekly-meal-prep": {
		{RiskType: models.RiskObesity, ReductionPercent: 3.5, Explanation: "Geplante Mahlzeiten reduzieren Fastfood"},
		{RiskType: models.RiskDiabetes, ReductionPercent: 2.5, Explanation: "Gesunde Zubereitung kontrolliert Zucker"},
		{RiskType: models.RiskHeartDisease, ReductionPercent: 2.0, Explanation: "Weniger Salz und ungesunde Fette"},
	},
	"weekly-nature": {
		{RiskType: models.RiskDepression, ReductionPercent: 3.5, Explanation: "Natur reduziert Stress nachweislich"},
		{RiskType: models.RiskHeartDisease, ReductionPercent: 1.5, Explanation: "Frische Luft und Bewegung"},
	},
	"weekly-stretching": {
		{RiskType: models.RiskOsteoporosis, ReductionPercent: 1.5, Explanation: "Flexibilität unterstützt Knochengesundheit"},
	},
	"weekly-cooking": {
		{RiskType: models.RiskObesity, ReductionPercent: 2.5, Explanation: "Selbst kochen = weniger Kalorien"},
		{RiskType: models.RiskHeartDisease, ReductionPercent: 2.0, Explanation: "Kontrolle über Zutaten"},
	},
	"monthly-weight": {
		{RiskType: models.RiskObesity, ReductionPercent: 2.0, Explanation: "Bewusstsein hilft bei der Gewichtskontrolle"},
		{RiskType: models.RiskDiabetes, ReductionPercent: 1.5, Explanation: "Frühzeitige Erkennung von Gewichtszunahme"},
	},
	"annual-checkup": {
		{RiskType: models.RiskHeartDisease, ReductionPercent: 5.0, Explanation: "Früherkennung von Risikofaktoren"},
		{RiskType: models.RiskCancer, ReductionPercent: 4.0, Explanation: "Regelmässige Vorsorgeuntersuchungen"},
		{RiskType: models.RiskDiabetes, ReductionPercent: 4.5, Explanation: "Blutzuckerkontrolle ermöglicht frühe Intervention"},
	},
	"annual-dental": {
		{RiskType: models.RiskHeartDisease, ReductionPercent: 1.5, Explanation: "Zahngesundheit beeinflusst Herzgesundheit"},
	},
	"annual-eye": {
		{RiskType: models.RiskDiabetes, ReductionPercent: 1.0, Explanation: "Diabetische Retinopathie früh erkennen"},
	},
	"mammography": {
		{RiskType: models.RiskCancer, ReductionPercent: 6.0, Explanation: "Brustkrebs-Früherkennung rettet Leben"},
	},
	"colonoscopy": {
		{RiskType: models.RiskCancer, ReductionPercent: 7.0, Explanation: "Darmkrebs-Früherkennung und Prävention"},
	},
	"skin-check": {
		{RiskType: models.RiskCancer, ReductionPercent: 4.0, Explanation: "Hautkrebs ist früh erkannt gut behandelbar"},
	},
	"blood-pressure": {
		{RiskType: models.RiskHeartDisease, ReductionPercent: 3.0, Explanation: "Blutdruckkontrolle schützt das Herz"},
		{RiskType: models.RiskStroke, ReductionPercent: 4.0, Explanation: "Hoher Blutdruck ist Hauptrisikofaktor"},
	},
	"cholesterol": {
		{RiskType: models.RiskHeartDisease, ReductionPercent: 4.0, Explanation: "Cholesterinkontrolle beugt Arteriosklerose vor"},
		{RiskType: models.RiskStroke, ReductionPercent: 3.0, Explanation: "Weniger Ablagerungen in Gefässen"},
	},
}

// HealthRisks mengembalikan salinan katalog baseline risiko.
func HealthRisks() []models.HealthRisk {
	out := make([]models.HealthRisk, len(healthRisks))
	copy(out, healthRisks)
	return out
}

// TaskRiskReductions mengembalikan tabel reduksi task->risiko. Map yang
// dikembalikan dibangun ulang setiap pemanggilan agar katalog internal aman
// dari mutasi caller.
func TaskRiskReductions() map[string][]models.RiskReduction {
	out := make(map[string][]models.RiskReduction, len(taskRiskReductions))
	for taskID, reductions := range taskRiskReductions {
		entries := make([]models.RiskReduction, len(reductions))
		copy(entries, reductions)
		out[taskID] = entries
	}
	return out
}
