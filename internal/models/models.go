package models

import (
	"time"
)

// ====================================================================================
// Enumerasi Domain
// ====================================================================================

// TaskCategory mengelompokkan task preventif ke dalam enam area kesehatan.
type TaskCategory string

const (
	CategoryMedical      TaskCategory = "medical"
	CategoryMentalHealth TaskCategory = "mental_health"
	CategoryFitness      TaskCategory = "fitness"
	CategorySocial       TaskCategory = "social"
	CategoryFinancial    TaskCategory = "financial"
	CategoryNutrition    TaskCategory = "nutrition"
)

// AllCategories mengembalikan seluruh kategori dalam urutan tetap.
// Urutan tetap dipakai agar agregasi per kategori menghasilkan output stabil.
func AllCategories() []TaskCategory {
	return []TaskCategory{
		CategoryMedical, CategoryMentalHealth, CategoryFitness,
		CategorySocial, CategoryFinancial, CategoryNutrition,
	}
}

func (c TaskCategory) IsValid() bool {
	switch c {
	case CategoryMedical, CategoryMentalHealth, CategoryFitness,
		CategorySocial, CategoryFinancial, CategoryNutrition:
		return true
	default:
		return false
	}
}

// TaskFrequency menentukan kadensi pengulangan sebuah task.
type TaskFrequency string

const (
	FrequencyDaily      TaskFrequency = "daily"
	FrequencyWeekly     TaskFrequency = "weekly"
	FrequencyMonthly    TaskFrequency = "monthly"
	FrequencyQuarterly  TaskFrequency = "quarterly"
	FrequencySemiAnnual TaskFrequency = "semi_annual"
	FrequencyAnnual     TaskFrequency = "annual"
	FrequencyMultiYear  TaskFrequency = "multi_year"
)

func (f TaskFrequency) IsValid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyQuarterly,
		FrequencySemiAnnual, FrequencyAnnual, FrequencyMultiYear:
		return true
	default:
		return false
	}
}

// TaskPriority menentukan urutan tampil task di daftar pengguna.
type TaskPriority string

const (
	PriorityLow      TaskPriority = "low"
	PriorityMedium   TaskPriority = "medium"
	PriorityHigh     TaskPriority = "high"
	PriorityCritical TaskPriority = "critical"
)

// Rank mengembalikan urutan sorting: critical=0 ... low=3.
// Prioritas tak dikenal diletakkan paling belakang.
func (p TaskPriority) Rank() int {
	switch p {
	case PriorityCritical:
		return 0
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 3
	default:
		return 4
	}
}

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// TaskStatus adalah status lifecycle sebuah UserTaskInstance.
type TaskStatus string

const (
	TaskStatusActive         TaskStatus = "active"
	TaskStatusPending        TaskStatus = "pending"
	TaskStatusCompletedToday TaskStatus = "completed_today"
	TaskStatusPaused         TaskStatus = "paused"
	TaskStatusArchived       TaskStatus = "archived"
)

func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusActive, TaskStatusPending, TaskStatusCompletedToday,
		TaskStatusPaused, TaskStatusArchived:
		return true
	default:
		return false
	}
}

// InstanceState adalah status turunan (derived) terhadap jadwal, bukan status
// lifecycle. Dihitung ulang dari nextDue/lastCompleted/snoozedUntil setiap saat.
type InstanceState string

const (
	InstanceStateCompletedToday InstanceState = "completed_today"
	InstanceStateDueToday       InstanceState = "due_today"
	InstanceStateOverdue        InstanceState = "overdue"
	InstanceStateUpcoming       InstanceState = "upcoming"
	InstanceStateSnoozed        InstanceState = "snoozed"
)

// ====================================================================================
// Health Risk
// ====================================================================================

// HealthRiskType adalah kategori risiko kesehatan yang dimodelkan.
type HealthRiskType string

const (
	RiskHeartDisease HealthRiskType = "heart_disease"
	RiskStroke       HealthRiskType = "stroke"
	RiskDiabetes     HealthRiskType = "diabetes"
	RiskCancer       HealthRiskType = "cancer"
	RiskDepression   HealthRiskType = "depression"
	RiskDementia     HealthRiskType = "dementia"
	RiskOsteoporosis HealthRiskType = "osteoporosis"
	RiskObesity      HealthRiskType = "obesity"
)

// HealthRisk adalah entri katalog: baseline risiko per kategori.
// Angka BaseRisk bersifat ilustratif, bukan model medis sungguhan.
type HealthRisk struct {
	ID          HealthRiskType `json:"id"`
	Name        string         `json:"name"`
	Icon        string         `json:"icon,omitempty"`
	Color       string         `json:"color,omitempty"`
	BaseRisk    int            `json:"base_risk"` // persen 0-100
	Description string         `json:"description,omitempty"`
}

// RiskReduction menyatakan berapa persen-poin sebuah task menurunkan satu risiko.
type RiskReduction struct {
	RiskType         HealthRiskType `json:"risk_type"`
	ReductionPercent float64        `json:"reduction_percent"`
	Explanation      string         `json:"explanation,omitempty"`
}

// RiskStatus adalah hasil agregasi risiko per kategori untuk satu pengguna.
type RiskStatus struct {
	BaseRisk    int     `json:"base_risk"`
	Reduction   float64 `json:"reduction"`
	CurrentRisk float64 `json:"current_risk"`
}

// ====================================================================================
// User
// ====================================================================================

type UserPreferences struct {
	Theme                string `json:"theme" validate:"omitempty,oneof=light dark system"`
	NotificationsEnabled bool   `json:"notifications_enabled"`
	ReminderTime         string `json:"reminder_time" validate:"omitempty,len=5"` // "19:00"
	Language             string `json:"language" validate:"omitempty,oneof=de fr it en"`
}

// User adalah profil agregat pengguna.
// Invariant: Level selalu fungsi murni dari TotalPoints (tidak pernah di-set bebas),
// dan CurrentStreak <= LongestStreak setiap saat.
type User struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name" validate:"required,min=2,max=100"`
	Age                int             `json:"age" validate:"required,gte=18,lte=99"`
	Gender             Gender          `json:"gender" validate:"required,oneof=male female other"`
	RiskFactors        []string        `json:"risk_factors"` // misal: "smoker", "hypertension"
	OnboardingComplete bool            `json:"onboarding_complete"`
	Level              int             `json:"level"`
	TotalPoints        int             `json:"total_points"`
	CurrentStreak      int             `json:"current_streak"`
	LongestStreak      int             `json:"longest_streak"`
	JoinedDate         time.Time       `json:"joined_date,omitzero"`
	LastActiveDate     time.Time       `json:"last_active_date,omitzero"`
	Preferences        UserPreferences `json:"preferences"`
}

// ====================================================================================
// Task Template & Instance
// ====================================================================================

// TaskTemplate adalah entri katalog task preventif. Immutable setelah init.
type TaskTemplate struct {
	ID                 string          `json:"id"`
	Title              string          `json:"title"`
	Category           TaskCategory    `json:"category"`
	Frequency          TaskFrequency   `json:"frequency"`
	FrequencyValue     int             `json:"frequency_value,omitempty"` // multi_year: 2 = tiap 2 tahun
	Duration           string          `json:"duration,omitempty"`        // "60min", "1h 30min"
	Priority           TaskPriority    `json:"priority"`
	AgeMin             int             `json:"age_min"`
	AgeMax             int             `json:"age_max"`
	GenderSpecific     Gender          `json:"gender_specific,omitempty"` // kosong = semua gender
	Description        string          `json:"description,omitempty"`
	HowToComplete      string          `json:"how_to_complete,omitempty"`
	Points             int             `json:"points"`
	Icon               string          `json:"icon,omitempty"`
	Tips               []string        `json:"tips,omitempty"`
	RiskFactorRelevant []string        `json:"risk_factor_relevant,omitempty"`
	RiskReductions     []RiskReduction `json:"risk_reductions,omitempty"`
}

// TaskCompletion adalah satu catatan penyelesaian dalam riwayat instance.
type TaskCompletion struct {
	CompletedAt  time.Time `json:"completed_at"`
	PointsEarned int       `json:"points_earned"`
	Notes        string    `json:"notes,omitempty"`
}

// UserTaskInstance mengikat satu pengguna ke satu TaskTemplate.
// Invariant: NextDue selalu diturunkan dari frequency + completion terakhir
// (atau hari ini bila belum pernah selesai); tidak pernah dimutasi terpisah
// dari event completion.
type UserTaskInstance struct {
	ID                string           `json:"id"`
	UserID            string           `json:"user_id"`
	TaskID            string           `json:"task_id"`
	LastCompleted     *time.Time       `json:"last_completed,omitzero"`
	NextDue           time.Time        `json:"next_due"`
	StreakCount       int              `json:"streak_count"`
	CompletionHistory []TaskCompletion `json:"completion_history"`
	Status            TaskStatus       `json:"status"`
	CustomReminder    string           `json:"custom_reminder,omitempty"`
	Notes             string           `json:"notes,omitempty"`
	SnoozedUntil      *time.Time       `json:"snoozed_until,omitzero"`
}

// ====================================================================================
// Achievement
// ====================================================================================

type AchievementRarity string

const (
	RarityCommon    AchievementRarity = "common"
	RarityUncommon  AchievementRarity = "uncommon"
	RarityRare      AchievementRarity = "rare"
	RarityEpic      AchievementRarity = "epic"
	RarityLegendary AchievementRarity = "legendary"
)

// ConditionType menandai varian kondisi unlock achievement.
type ConditionType string

const (
	ConditionStreak           ConditionType = "streak"
	ConditionTotalTasks       ConditionType = "total_tasks"
	ConditionTotalPoints      ConditionType = "total_points"
	ConditionLevel            ConditionType = "level"
	ConditionCategoryTasks    ConditionType = "category_tasks"
	ConditionCategoryStreak   ConditionType = "category_streak"
	ConditionPerfectWeek      ConditionType = "perfect_week"
	ConditionPerfectMonth     ConditionType = "perfect_month"
	ConditionEarlyBird        ConditionType = "early_bird"
	ConditionAllCategoriesDay ConditionType = "all_categories_day"
)

// AchievementCondition adalah tagged variant: field yang relevan tergantung Type.
// Threshold dipakai oleh streak/total_tasks/total_points/level/category_*/early_bird;
// Category hanya oleh category_tasks dan category_streak.
type AchievementCondition struct {
	Type      ConditionType `json:"type"`
	Threshold int           `json:"threshold,omitempty"`
	Category  TaskCategory  `json:"category,omitempty"`
}

// Achievement adalah entri katalog achievement. Immutable setelah init.
type Achievement struct {
	ID              string               `json:"id"`
	Title           string               `json:"title"`
	Description     string               `json:"description,omitempty"`
	BadgeIcon       string               `json:"badge_icon,omitempty"`
	UnlockCondition AchievementCondition `json:"unlock_condition"`
	Points          int                  `json:"points"`
	Rarity          AchievementRarity    `json:"rarity"`
	Hidden          bool                 `json:"hidden"` // disembunyikan dari daftar locked, tetap bisa di-unlock
}

// UserAchievement adalah catatan unlock: tepat satu per pasangan (user, achievement).
type UserAchievement struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	AchievementID string    `json:"achievement_id"`
	UnlockedAt    time.Time `json:"unlocked_at"`
	Notified      bool      `json:"notified"`
}

// ====================================================================================
// Statistik
// ====================================================================================

type DailyStats struct {
	Date             string               `json:"date"` // "2026-02-05"
	TasksCompleted   int                  `json:"tasks_completed"`
	PointsEarned     int                  `json:"points_earned"`
	CategoryCounts   map[TaskCategory]int `json:"category_counts"`
	StreakMaintained bool                 `json:"streak_maintained"`
}

type WeeklyStats struct {
	WeekStart         string               `json:"week_start"`
	TotalTasks        int                  `json:"total_tasks"`
	TotalPoints       int                  `json:"total_points"`
	CategoryBreakdown map[TaskCategory]int `json:"category_breakdown"`
	AverageDaily      float64              `json:"average_daily"`
}

// CategoryProgress adalah ringkasan harian per kategori (selesai hari ini vs total).
type CategoryProgress struct {
	Completed  int `json:"completed"`
	Total      int `json:"total"`
	Percentage int `json:"percentage"`
}

// ====================================================================================
// Input Structs untuk API
// ====================================================================================

// CreateUserInput berisi data onboarding pengguna baru.
type CreateUserInput struct {
	Name        string   `json:"name" validate:"required,min=2,max=100"`
	Age         int      `json:"age" validate:"required,gte=18,lte=99"`
	Gender      Gender   `json:"gender" validate:"required,oneof=male female other"`
	RiskFactors []string `json:"risk_factors,omitempty"`
}

type UpdateProfileInput struct {
	Name        string   `json:"name" validate:"required,min=2,max=100"`
	Age         int      `json:"age" validate:"required,gte=18,lte=99"`
	RiskFactors []string `json:"risk_factors,omitempty"`
}

// UpdatePreferencesInput memakai pointer agar field yang tidak dikirim
// tidak menimpa preferensi yang sudah ada (partial update).
type UpdatePreferencesInput struct {
	Theme                *string `json:"theme" validate:"omitempty,oneof=light dark system"`
	NotificationsEnabled *bool   `json:"notifications_enabled"`
	ReminderTime         *string `json:"reminder_time" validate:"omitempty,len=5"`
	Language             *string `json:"language" validate:"omitempty,oneof=de fr it en"`
}

// CompleteTaskInput adalah body opsional saat menyelesaikan task.
type CompleteTaskInput struct {
	Notes   string `json:"notes,omitempty" validate:"max=500"`
	IsEarly bool   `json:"is_early,omitempty"` // selesai sebelum jam 9 pagi
}

type SnoozeTaskInput struct {
	Days int `json:"days" validate:"required,gte=1,lte=30"`
}

type SetStatusInput struct {
	Status TaskStatus `json:"status" validate:"required,oneof=active pending completed_today paused archived"`
}

type UpdateNotesInput struct {
	Notes string `json:"notes" validate:"max=500"`
}

// Response standar untuk API
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}
