// internal/catalog/tasks.go
package catalog

import (
	"github.com/rakaarfi/vorsorge-guide-be/internal/models"
)

// taskTemplates adalah katalog task preventif. Setiap entri yang punya baris
// di taskRiskReductions mengambil reduksinya lewat withReductions saat init;
// entri finansial sengaja tanpa reduksi risiko.
var taskTemplates = []models.TaskTemplate{
	// --- Daily ---
	{
		ID: "daily-exercise", Title: "30 Minuten Bewegung",
		Category: models.CategoryFitness, Frequency: models.FrequencyDaily,
		Duration: "30min", Priority: models.PriorityHigh,
		AgeMin: 18, AgeMax: 99,
		Description:   "Täglich mindestens 30 Minuten moderate Bewegung: Spazieren, Velofahren, Joggen.",
		HowToComplete: "Zähle jede zusammenhängende Aktivität von mindestens 10 Minuten.",
		Points:        20, Icon: "🏃",
		Tips: []string{
			"Treppe statt Lift nehmen",
			"Eine Haltestelle früher aussteigen",
		},
	},
	{
		ID: "daily-meditation", Title: "10 Minuten Meditation",
		Category: models.CategoryMentalHealth, Frequency: models.FrequencyDaily,
		Duration: "10min", Priority: models.PriorityMedium,
		AgeMin: 18, AgeMax: 99,
		Description:   "Kurze Achtsamkeitsübung zur Stressreduktion.",
		HowToComplete: "Ruhiger Ort, Timer auf 10 Minuten, auf den Atem konzentrieren.",
		Points:        15, Icon: "🧘",
		Tips: []string{"Morgens direkt nach dem Aufstehen klappt am besten"},
	},
	{
		ID: "daily-water", Title: "2 Liter Wasser trinken",
		Category: models.CategoryNutrition, Frequency: models.FrequencyDaily,
		Duration: "5min", Priority: models.PriorityMedium,
		AgeMin: 18, AgeMax: 99,
		Description: "Ausreichend Flüssigkeit über den Tag verteilt.",
		Points:      10, Icon: "💧",
	},
	{
		ID: "daily-sleep-tracking", Title: "Schlaf erfassen",
		Category: models.CategoryMentalHealth, Frequency: models.FrequencyDaily,
		Duration: "2min", Priority: models.PriorityLow,
		AgeMin: 18, AgeMax: 99,
		Description: "Schlafdauer und -qualität der letzten Nacht notieren.",
		Points:      10, Icon: "😴",
	},
	{
		ID: "daily-gratitude", Title: "Dankbarkeitstagebuch",
		Category: models.CategoryMentalHealth, Frequency: models.FrequencyDaily,
		Duration: "5min", Priority: models.PriorityLow,
		AgeMin: 18, AgeMax: 99,
		Description: "Drei Dinge aufschreiben, für die du heute dankbar bist.",
		Points:      10, Icon: "📔",
	},
	{
		ID: "daily-breathing", Title: "Atemübung",
		Category: models.CategoryMentalHealth, Frequency: models.FrequencyDaily,
		Duration: "5min", Priority: models.PriorityLow,
		AgeMin: 18, AgeMax: 99,
		Description: "5 Minuten bewusste Bauchatmung, z.B. 4-7-8-Technik.",
		Points:      10, Icon: "🌬️",
	},
	{
		ID: "daily-posture", Title: "Haltungs-Check",
		Category: models.CategoryFitness, Frequency: models.FrequencyDaily,
		Duration: "5min", Priority: models.PriorityLow,
		AgeMin: 18, AgeMax: 99,
		Description: "Kurze Mobilisation für Rücken und Schultern, besonders bei Bildschirmarbeit.",
		Points:      10, Icon: "🪑",
	},
	{
		ID: "daily-social", Title: "Sozialer Kontakt",
		Category: models.CategorySocial, Frequency: models.FrequencyDaily,
		Duration: "15min", Priority: models.PriorityMedium,
		AgeMin: 18, AgeMax: 99,
		Description: "Ein echtes Gespräch führen: Anruf, Treffen oder Videocall.",
		Points:      15, Icon: "📞",
	},

	// --- Weekly ---
	{
		ID: "weekly-strength", Title: "Krafttraining",
		Category: models.CategoryFitness, Frequency: models.FrequencyWeekly,
		Duration: "45min", Priority: models.PriorityHigh,
		AgeMin: 18, AgeMax: 99,
		Description:   "Ganzkörper-Krafttraining mit Gewichten oder Eigengewicht.",
		HowToComplete: "Mindestens 30 Minuten, alle grossen Muskelgruppen.",
		Points:        30, Icon: "🏋️",
		RiskFactorRelevant: []string{"sedentary"},
	},
	{
		ID: "weekly-social-meetup", Title: "Freunde oder Familie treffen",
		Category: models.CategorySocial, Frequency: models.FrequencyWeekly,
		Duration: "2h", Priority: models.PriorityMedium,
		AgeMin: 18, AgeMax: 99,
		Description: "Persönliches Treffen, nicht nur digital.",
		Points:      25, Icon: "👥",
	},
	{
		ID: "weekly-meal-prep", Title: "Mahlzeiten vorbereiten",
		Category: models.CategoryNutrition, Frequency: models.FrequencyWeekly,
		Duration: "1h 30min", Priority: models.PriorityMedium,
		AgeMin: 18, AgeMax: 99,
		Description: "Gesunde Mahlzeiten für die Woche vorkochen.",
		Points:      25, Icon: "🥗",
	},
	{
		ID: "weekly-nature", Title: "Zeit in der Natur",
		Category: models.CategoryMentalHealth, Frequency: models.FrequencyWeekly,
		Duration: "1h", Priority: models.PriorityLow,
		AgeMin: 18, AgeMax: 99,
		Description: "Mindestens eine Stunde draussen im Grünen verbringen.",
		Points:      20, Icon: "🌳",
	},
	{
		ID: "weekly-stretching", Title: "Dehnprogramm",
		Category: models.CategoryFitness, Frequency: models.FrequencyWeekly,
		Duration: "20min", Priority: models.PriorityLow,
		AgeMin: 18, AgeMax: 99,
		Description: "Ganzkörper-Stretching für Beweglichkeit.",
		Points:      15, Icon: "🤸",
	},
	{
		ID: "weekly-cooking", Title: "Frisch kochen",
		Category: models.CategoryNutrition, Frequency: models.FrequencyWeekly,
		Duration: "1h", Priority: models.PriorityLow,
		AgeMin: 18, AgeMax: 99,
		Description: "Mindestens eine Mahlzeit komplett selbst aus frischen Zutaten kochen.",
		Points:      15, Icon: "🍳",
	},

	// --- Monthly ---
	{
		ID: "monthly-weight", Title: "Gewicht und Umfang messen",
		Category: models.CategoryMedical, Frequency: models.FrequencyMonthly,
		Duration: "10min", Priority: models.PriorityMedium,
		AgeMin: 18, AgeMax: 99,
		Description: "Gewicht und Bauchumfang erfassen und Trend beobachten.",
		Points:      20, Icon: "⚖️",
		RiskFactorRelevant: []string{"overweight"},
	},
	{
		ID: "monthly-budget", Title: "Budget-Check",
		Category: models.CategoryFinancial, Frequency: models.FrequencyMonthly,
		Duration: "30min", Priority: models.PriorityMedium,
		AgeMin: 18, AgeMax: 99,
		Description: "Einnahmen und Ausgaben des Monats durchgehen. Finanzieller Stress ist ein unterschätzter Gesundheitsfaktor.",
		Points:      20, Icon: "💰",
	},

	// --- Quarterly / Semi-annual ---
	{
		ID: "quarterly-savings", Title: "Sparziele überprüfen",
		Category: models.CategoryFinancial, Frequency: models.FrequencyQuarterly,
		Duration: "45min", Priority: models.PriorityLow,
		AgeMin: 18, AgeMax: 99,
		Description: "Notgroschen und Sparquote kontrollieren und anpassen.",
		Points:      30, Icon: "🏦",
	},
	{
		ID: "blood-pressure", Title: "Blutdruck messen",
		Category: models.CategoryMedical, Frequency: models.FrequencyQuarterly,
		Duration: "10min", Priority: models.PriorityHigh,
		AgeMin: 18, AgeMax: 99,
		Description:   "Blutdruck in der Apotheke oder zuhause messen lassen.",
		HowToComplete: "Morgens in Ruhe messen, Werte notieren.",
		Points:        35, Icon: "🩺",
		RiskFactorRelevant: []string{"hypertension", "smoker"},
	},
	{
		ID: "dental-hygiene", Title: "Dentalhygiene",
		Category: models.CategoryMedical, Frequency: models.FrequencySemiAnnual,
		Duration: "1h", Priority: models.PriorityMedium,
		AgeMin: 18, AgeMax: 99,
		Description: "Professionelle Zahnreinigung alle sechs Monate.",
		Points:      40, Icon: "🪥",
	},

	// --- Annual ---
	{
		ID: "annual-checkup", Title: "Gesundheits-Check beim Hausarzt",
		Category: models.CategoryMedical, Frequency: models.FrequencyAnnual,
		Duration: "1h", Priority: models.PriorityCritical,
		AgeMin: 18, AgeMax: 99,
		Description:   "Jährliche Vorsorgeuntersuchung: Blutbild, Blutdruck, Gespräch.",
		HowToComplete: "Termin beim Hausarzt vereinbaren, nüchtern erscheinen.",
		Points:        100, Icon: "🏥",
		Tips: []string{
			"Termin gleich für nächstes Jahr mitbuchen",
			"Fragen vorher notieren",
		},
		RiskFactorRelevant: []string{"hypertension", "diabetes_family", "smoker"},
	},
	{
		ID: "annual-dental", Title: "Zahnarzt-Kontrolle",
		Category: models.CategoryMedical, Frequency: models.FrequencyAnnual,
		Duration: "45min", Priority: models.PriorityHigh,
		AgeMin: 18, AgeMax: 99,
		Description: "Jährliche zahnärztliche Kontrolluntersuchung.",
		Points:      60, Icon: "🦷",
	},
	{
		ID: "annual-eye", Title: "Augenarzt-Kontrolle",
		Category: models.CategoryMedical, Frequency: models.FrequencyAnnual,
		Duration: "45min", Priority: models.PriorityMedium,
		AgeMin: 40, AgeMax: 99,
		Description: "Sehtest und Augendruck-Messung, ab 40 jährlich empfohlen.",
		Points:      50, Icon: "👁️",
		RiskFactorRelevant: []string{"diabetes_family"},
	},
	{
		ID: "cholesterol", Title: "Cholesterin-Test",
		Category: models.CategoryMedical, Frequency: models.FrequencyAnnual,
		Duration: "30min", Priority: models.PriorityHigh,
		AgeMin: 35, AgeMax: 99,
		Description: "Blutfettwerte bestimmen lassen.",
		Points:      50, Icon: "🧪",
		RiskFactorRelevant: []string{"hypertension", "overweight"},
	},
	{
		ID: "skin-check", Title: "Hautkrebs-Screening",
		Category: models.CategoryMedical, Frequency: models.FrequencyAnnual,
		Duration: "30min", Priority: models.PriorityHigh,
		AgeMin: 18, AgeMax: 99,
		Description: "Ganzkörper-Untersuchung der Haut beim Dermatologen.",
		Points:      60, Icon: "🔍",
	},
	{
		ID: "annual-pension-review", Title: "Vorsorge-Check (Säule 3a)",
		Category: models.CategoryFinancial, Frequency: models.FrequencyAnnual,
		Duration: "1h", Priority: models.PriorityMedium,
		AgeMin: 18, AgeMax: 99,
		Description: "Einzahlungen und Anlagestrategie der Altersvorsorge prüfen.",
		Points:      50, Icon: "📊",
	},

	// --- Multi-year / geschlechts- und altersspezifisch ---
	{
		ID: "mammography", Title: "Mammographie",
		Category: models.CategoryMedical, Frequency: models.FrequencyMultiYear,
		FrequencyValue: 2, Duration: "30min", Priority: models.PriorityCritical,
		AgeMin: 50, AgeMax: 74, GenderSpecific: models.GenderFemale,
		Description:   "Brustkrebs-Früherkennung, alle zwei Jahre empfohlen.",
		HowToComplete: "Termin im Screening-Programm des Kantons vereinbaren.",
		Points:        120, Icon: "🎗️",
	},
	{
		ID: "colonoscopy", Title: "Darmspiegelung",
		Category: models.CategoryMedical, Frequency: models.FrequencyMultiYear,
		FrequencyValue: 10, Duration: "2h", Priority: models.PriorityCritical,
		AgeMin: 50, AgeMax: 75,
		Description:   "Darmkrebs-Vorsorge, alle zehn Jahre bei unauffälligem Befund.",
		HowToComplete: "Überweisung vom Hausarzt, Vorbereitung am Vortag beachten.",
		Points:        150, Icon: "🔬",
		RiskFactorRelevant: []string{"colon_cancer_family"},
	},
}

// withReductions menyalin reduksi dari tabel ke template yang cocok.
func withReductions(templates []models.TaskTemplate) []models.TaskTemplate {
	for i := range templates {
		if reductions, ok := taskRiskReductions[templates[i].ID]; ok {
			templates[i].RiskReductions = reductions
		}
	}
	return templates
}

func init() {
	taskTemplates = withReductions(taskTemplates)
}

// TaskTemplates mengembalikan salinan katalog template.
func TaskTemplates() []models.TaskTemplate {
	out := make([]models.TaskTemplate, len(taskTemplates))
	copy(out, taskTemplates)
	return out
}

// TaskTemplateByID mencari satu template; bool false bila ID tidak ada.
func TaskTemplateByID(id string) (models.TaskTemplate, bool) {
	for _, t := range taskTemplates {
		if t.ID == id {
			return t, true
		}
	}
	return models.TaskTemplate{}, false
}
