// internal/store/store.go
package store

import (
	"context"
	"errors"
	"time"

	"github.com/rakaarfi/vorsorge-guide-be/internal/models"
)

// File ini mendefinisikan **interfaces** untuk lapisan penyimpanan state.
// Interface ini berfungsi sebagai **kontrak** yang menentukan operasi data apa saja
// yang harus bisa dilakukan oleh implementasi konkret (misal: *_store.go in-memory).
// Penggunaan interface memungkinkan decoupling antara lapisan handler/service
// dengan implementasi penyimpanan spesifik.

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrInstanceNotFound = errors.New("task instance not found")
	ErrUnlockNotFound   = errors.New("achievement unlock not found")
	ErrAlreadyExists    = errors.New("record already exists")
	ErrNoCompletions    = errors.New("no completions to undo")
)

// ====================================================================================
// User Store
// ====================================================================================

// UserStore: Kontrak untuk operasi data terkait profil pengguna.
// Semua metode mutasi mengembalikan record hasil mutasi agar caller tidak
// perlu read-after-write terpisah.
type UserStore interface {
	// CreateUser menyimpan pengguna baru. ErrAlreadyExists bila ID terpakai.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUser mencari pengguna berdasarkan ID.
	// Mengembalikan ErrUserNotFound bila tidak ada.
	GetUser(ctx context.Context, id string) (*models.User, error)

	// ListUsers mengembalikan semua pengguna, urut JoinedDate lalu ID.
	ListUsers(ctx context.Context) ([]models.User, error)

	// UpdateUser menimpa seluruh record pengguna.
	UpdateUser(ctx context.Context, user *models.User) error

	// AddPoints menambah (atau mengurangi, delta negatif) total poin pengguna.
	// Total di-clamp minimal 0 dan Level dihitung ulang dari total baru --
	// invariant Level = f(TotalPoints) dijaga di sini, satu-satunya jalur
	// mutasi poin.
	AddPoints(ctx context.Context, id string, delta int) (*models.User, error)

	// UpdateStreak meng-set CurrentStreak (di-clamp minimal 0) dan menaikkan
	// LongestStreak bila streak baru melampauinya. LongestStreak tidak pernah
	// turun.
	UpdateStreak(ctx context.Context, id string, current int) (*models.User, error)

	// UpdatePreferences menerapkan partial update preferensi: hanya field
	// non-nil pada input yang menimpa nilai lama.
	UpdatePreferences(ctx context.Context, id string, input *models.UpdatePreferencesInput) (*models.User, error)
}

// ====================================================================================
// Instance Store
// ====================================================================================

// InstanceStore: Kontrak untuk operasi data terkait UserTaskInstance.
// Setiap mutasi berjalan atomik di bawah satu lock; kalkulasi (poin, jadwal,
// streak) dilakukan di lapisan service, store hanya menerapkan hasilnya.
type InstanceStore interface {
	// InitializeForUser membuat instance baru untuk setiap template yang
	// diberikan, semuanya due hari ini. Instance lama milik user dibuang dulu.
	InitializeForUser(ctx context.Context, userID string, templates []models.TaskTemplate, now time.Time) ([]models.UserTaskInstance, error)

	// GetInstance mencari instance berdasarkan ID.
	// Mengembalikan ErrInstanceNotFound bila tidak ada.
	GetInstance(ctx context.Context, id string) (*models.UserTaskInstance, error)

	// ListByUser mengembalikan semua instance milik satu pengguna, urut TaskID.
	ListByUser(ctx context.Context, userID string) ([]models.UserTaskInstance, error)

	// ApplyCompletion mencatat satu penyelesaian: append ke history, set
	// LastCompleted, geser NextDue, set StreakCount, dan hapus snooze aktif.
	ApplyCompletion(ctx context.Context, id string, completion models.TaskCompletion, nextDue time.Time, streakCount int) (*models.UserTaskInstance, error)

	// UndoCompletion membatalkan penyelesaian terakhir: pop history,
	// kembalikan LastCompleted ke entri sebelumnya (nil bila habis), set
	// NextDue ke restoredNextDue, dan turunkan StreakCount (floor 0).
	// Mengembalikan completion yang di-pop. ErrNoCompletions bila history kosong.
	UndoCompletion(ctx context.Context, id string, restoredNextDue time.Time) (*models.UserTaskInstance, *models.TaskCompletion, error)

	// Snooze menunda instance sampai until.
	Snooze(ctx context.Context, id string, until time.Time) (*models.UserTaskInstance, error)

	// SetStatus mengubah status lifecycle instance.
	SetStatus(ctx context.Context, id string, status models.TaskStatus) (*models.UserTaskInstance, error)

	// UpdateNotes mengganti catatan pengguna pada instance.
	UpdateNotes(ctx context.Context, id string, notes string) (*models.UserTaskInstance, error)
}

// ====================================================================================
// Unlock Store
// ====================================================================================

// UnlockStore: Kontrak untuk catatan unlock achievement per pengguna.
type UnlockStore interface {
	// Add menyimpan satu unlock. Idempotent per pasangan (user, achievement):
	// pemanggilan ulang untuk pasangan yang sama adalah no-op dan
	// mengembalikan created=false tanpa error.
	Add(ctx context.Context, unlock *models.UserAchievement) (created bool, err error)

	// ListByUser mengembalikan semua unlock milik satu pengguna, urut UnlockedAt.
	ListByUser(ctx context.Context, userID string) ([]models.UserAchievement, error)

	// IsUnlocked memeriksa apakah pasangan (user, achievement) sudah ter-unlock.
	IsUnlocked(ctx context.Context, userID, achievementID string) (bool, error)

	// MarkNotified menandai unlock sudah dinotifikasi ke pengguna.
	// Mengembalikan ErrUnlockNotFound bila tidak ada.
	MarkNotified(ctx context.Context, id string) error
}
