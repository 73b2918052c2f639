// internal/service/service.go
package service

import (
	"context"
	"errors"
	"time"

	"github.com/rakaarfi/vorsorge-guide-be/internal/models"
)

// Service Layer Interfaces define the business logic operations.
// Handlers will depend on these interfaces, not directly on stores.

var (
	// ErrTemplateNotFound: instance menunjuk template yang tidak ada di katalog.
	ErrTemplateNotFound = errors.New("task template not found in catalog")
)

// ====================================================================================
// DTO
// ====================================================================================

// TaskView menggabungkan instance dengan template katalognya plus status
// turunan terhadap jadwal. Bentuk ini yang dikirim ke klien.
type TaskView struct {
	Instance       models.UserTaskInstance `json:"instance"`
	Template       models.TaskTemplate     `json:"template"`
	State          models.InstanceState    `json:"state"`
	DaysUntilDue   int                     `json:"days_until_due"`
	StreakInDanger bool                    `json:"streak_in_danger"`
}

// TaskListFilter menyaring dan mempaginasi daftar task seorang pengguna.
type TaskListFilter struct {
	State    models.InstanceState // kosong = semua state
	Category models.TaskCategory  // kosong = semua kategori
	Search   string               // substring match pada judul template (case-insensitive)
	Page     int
	Limit    int
}

// CompletionResult adalah hasil lengkap satu penyelesaian task.
type CompletionResult struct {
	Points               int                  `json:"points"`
	BonusPoints          int                  `json:"bonus_points"`
	Breakdown            []string             `json:"breakdown"`
	NewLevel             int                  `json:"new_level"`
	LeveledUp            bool                 `json:"leveled_up"`
	NewStreak            int                  `json:"new_streak"`
	UnlockedAchievements []models.Achievement `json:"unlocked_achievements"`
}

// UserProfile adalah profil pengguna plus ringkasan progress level.
type UserProfile struct {
	User             models.User                                    `json:"user"`
	PointsToNext     int                                            `json:"points_to_next_level"`
	LevelProgress    int                                            `json:"level_progress"`
	CategoryProgress map[models.TaskCategory]models.CategoryProgress `json:"category_progress"`
}

// UnlockedAchievementView memasangkan entri katalog dengan catatan unlock-nya.
type UnlockedAchievementView struct {
	Achievement models.Achievement `json:"achievement"`
	UnlockedAt  time.Time          `json:"unlocked_at"`
	Notified    bool               `json:"notified"`
}

// LockedAchievementView adalah entri katalog yang belum terbuka plus progress.
type LockedAchievementView struct {
	Achievement models.Achievement `json:"achievement"`
	Progress    int                `json:"progress"`
}

// AchievementOverview adalah jawaban lengkap endpoint achievement.
type AchievementOverview struct {
	Unlocked          []UnlockedAchievementView `json:"unlocked"`
	Locked            []LockedAchievementView   `json:"locked"`
	AchievementPoints int                       `json:"achievement_points"`
}

// RiskContribution merinci sumbangan satu task pada satu kategori risiko.
type RiskContribution struct {
	TaskID           string  `json:"task_id"`
	Title            string  `json:"title"`
	Completions      int     `json:"completions"`
	ReductionPercent float64 `json:"reduction_percent"` // total: per-completion x jumlah completion
	Explanation      string  `json:"explanation,omitempty"`
}

// RiskEntry adalah satu kategori risiko beserta status dan kontribusinya.
type RiskEntry struct {
	Risk          models.HealthRisk  `json:"risk"`
	Status        models.RiskStatus  `json:"status"`
	Contributions []RiskContribution `json:"contributions"`
}

// ====================================================================================
// Interfaces
// ====================================================================================

// TaskService defines operations on a user's task instances, including the
// completion flow that drives points, streaks, and achievement unlocks.
type TaskService interface {
	// InitializeTasks membangun ulang instance pengguna dari katalog yang
	// sudah difilter usia/gender dan diprioritaskan.
	InitializeTasks(ctx context.Context, userID string) ([]TaskView, error)

	// ListTasks mengembalikan task pengguna (terfilter + terpaginasi) dan
	// total sebelum paginasi.
	ListTasks(ctx context.Context, userID string, filter TaskListFilter) ([]TaskView, int, error)

	// GetTask mengambil satu task view milik pengguna.
	GetTask(ctx context.Context, userID, instanceID string) (*TaskView, error)

	// CompleteTask handles the full completion flow atomically from the
	// caller's perspective: points (with streak/early bonuses), schedule
	// advance, streak updates, and achievement unlocking.
	CompleteTask(ctx context.Context, userID, instanceID string, input *models.CompleteTaskInput) (*CompletionResult, error)

	// UndoCompletion membatalkan penyelesaian terakhir dan menarik kembali
	// poinnya dari pengguna. Unlock achievement TIDAK dicabut.
	UndoCompletion(ctx context.Context, userID, instanceID string) (*TaskView, error)

	// SnoozeTask menunda task beberapa hari ke depan.
	SnoozeTask(ctx context.Context, userID, instanceID string, days int) (*TaskView, error)

	// SetStatus mengubah status lifecycle task.
	SetStatus(ctx context.Context, userID, instanceID string, status models.TaskStatus) (*TaskView, error)

	// UpdateNotes mengganti catatan pengguna pada task.
	UpdateNotes(ctx context.Context, userID, instanceID, notes string) (*TaskView, error)
}

// UserService defines operations related to user profiles and onboarding.
type UserService interface {
	// ListUsers mengembalikan semua pengguna terdaftar (pemilih demo user).
	ListUsers(ctx context.Context) ([]models.User, error)

	// GetProfile mengambil profil plus ringkasan level & progress kategori.
	GetProfile(ctx context.Context, userID string) (*UserProfile, error)

	// CreateUser menjalankan onboarding: buat profil baru (ID digenerate).
	CreateUser(ctx context.Context, input *models.CreateUserInput) (*models.User, error)

	// UpdateProfile memperbarui nama/usia/faktor risiko.
	UpdateProfile(ctx context.Context, userID string, input *models.UpdateProfileInput) (*models.User, error)

	// UpdatePreferences menerapkan partial update preferensi.
	UpdatePreferences(ctx context.Context, userID string, input *models.UpdatePreferencesInput) (*models.User, error)
}

// AchievementService defines read operations over the achievement catalog
// joined with a user's unlock records.
type AchievementService interface {
	// Overview mengembalikan unlocked + locked (tanpa hidden) + total poin
	// dari achievement yang terbuka.
	Overview(ctx context.Context, userID string) (*AchievementOverview, error)

	// AcknowledgeUnlocks menandai semua unlock yang belum dinotifikasi
	// sebagai sudah dilihat dan mengembalikan jumlahnya.
	AcknowledgeUnlocks(ctx context.Context, userID string) (int, error)
}

// RiskService defines the aggregated health risk calculation for a user.
type RiskService interface {
	// Profile menghitung profil risiko dari seluruh riwayat completion
	// pengguna, diurutkan risiko tertinggi dulu.
	Profile(ctx context.Context, userID string) ([]RiskEntry, error)
}

// StatsService defines daily/weekly aggregates over completion history.
type StatsService interface {
	// Daily mengembalikan statistik per hari untuk `days` hari terakhir
	// (termasuk hari ini), urut kronologis.
	Daily(ctx context.Context, userID string, days int) ([]models.DailyStats, error)

	// Weekly mengembalikan statistik per minggu (Senin-Minggu) untuk `weeks`
	// minggu terakhir, urut kronologis.
	Weekly(ctx context.Context, userID string, weeks int) ([]models.WeeklyStats, error)
}
