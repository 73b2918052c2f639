// internal/api/v1/routes.go
package v1

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rakaarfi/vorsorge-guide-be/internal/api/v1/handlers"
)

// File ini bertanggung jawab untuk mendefinisikan dan mendaftarkan semua rute
// (endpoints) untuk API versi 1 (/api/v1).

// SetupRoutes mengkonfigurasi dan mendaftarkan semua rute API v1 ke instance
// aplikasi Fiber. Semua handler diinjeksi sebagai dependensi.
func SetupRoutes(
	app *fiber.App,
	userHandler *handlers.UserHandler,
	taskHandler *handlers.TaskHandler,
	achievementHandler *handlers.AchievementHandler,
	riskHandler *handlers.RiskHandler,
	statsHandler *handlers.StatsHandler,
	catalogHandler *handlers.CatalogHandler,
	calendarHandler *handlers.CalendarHandler,
) {
	// Grup rute utama dengan prefix /api/v1.
	api := app.Group("/api/v1")

	// =========================================================================
	// Rute Katalog (Statis)
	// =========================================================================
	catalog := api.Group("/catalog")
	{
		// GET /api/v1/catalog/tasks - Daftar template task (filter: category)
		catalog.Get("/tasks", catalogHandler.GetTaskTemplates)
		// GET /api/v1/catalog/achievements - Katalog achievement (tanpa hidden)
		catalog.Get("/achievements", catalogHandler.GetAchievementCatalog)
		// GET /api/v1/catalog/risks - Risiko kesehatan dasar
		catalog.Get("/risks", catalogHandler.GetRiskCatalog)
	}

	// =========================================================================
	// Rute Pengguna
	// =========================================================================
	users := api.Group("/users")
	{
		// GET  /api/v1/users - Daftar pengguna (demo user picker)
		users.Get("/", userHandler.ListUsers)
		// POST /api/v1/users - Onboarding pengguna baru
		users.Post("/", userHandler.CreateUser)

		// GET   /api/v1/users/:userID - Profil plus progress level
		users.Get("/:userID", userHandler.GetProfile)
		// PATCH /api/v1/users/:userID - Update profil
		users.Patch("/:userID", userHandler.UpdateProfile)
		// PATCH /api/v1/users/:userID/preferences - Update preferensi (partial)
		users.Patch("/:userID/preferences", userHandler.UpdatePreferences)

		// --- Achievements, Risiko, Statistik ---
		// GET /api/v1/users/:userID/achievements - Unlocked + locked + progress
		users.Get("/:userID/achievements", achievementHandler.GetAchievements)
		// POST /api/v1/users/:userID/achievements/ack - Tandai notifikasi unlock sudah dilihat
		users.Post("/:userID/achievements/ack", achievementHandler.AcknowledgeUnlocks)
		// GET /api/v1/users/:userID/risk-profile - Profil risiko teragregasi
		users.Get("/:userID/risk-profile", riskHandler.GetRiskProfile)
		// GET /api/v1/users/:userID/stats/daily - Statistik harian
		users.Get("/:userID/stats/daily", statsHandler.GetDailyStats)
		// GET /api/v1/users/:userID/stats/weekly - Statistik mingguan
		users.Get("/:userID/stats/weekly", statsHandler.GetWeeklyStats)
	}

	// =========================================================================
	// Rute Task Instance
	// =========================================================================
	tasks := api.Group("/users/:userID/tasks")
	{
		// POST /api/v1/users/:userID/tasks/init - Bangun instance dari katalog
		tasks.Post("/init", taskHandler.InitializeTasks)
		// GET  /api/v1/users/:userID/tasks - Daftar task (filter + paginasi)
		tasks.Get("/", taskHandler.ListTasks)
		// GET  /api/v1/users/:userID/tasks/:instanceID - Detail satu task
		tasks.Get("/:instanceID", taskHandler.GetTask)

		// --- Completion Flow ---
		// POST /api/v1/users/:userID/tasks/:instanceID/complete - Selesaikan task
		tasks.Post("/:instanceID/complete", taskHandler.CompleteTask)
		// POST /api/v1/users/:userID/tasks/:instanceID/undo - Batalkan completion terakhir
		tasks.Post("/:instanceID/undo", taskHandler.UndoCompletion)
		// POST /api/v1/users/:userID/tasks/:instanceID/snooze - Tunda task
		tasks.Post("/:instanceID/snooze", taskHandler.SnoozeTask)

		// PATCH /api/v1/users/:userID/tasks/:instanceID/status - Ubah status lifecycle
		tasks.Patch("/:instanceID/status", taskHandler.SetStatus)
		// PATCH /api/v1/users/:userID/tasks/:instanceID/notes - Ganti catatan
		tasks.Patch("/:instanceID/notes", taskHandler.UpdateNotes)

		// --- Kalender ---
		// GET /api/v1/users/:userID/tasks/:instanceID/calendar.ics - Unduh file ICS
		tasks.Get("/:instanceID/calendar.ics", calendarHandler.DownloadICS)
		// GET /api/v1/users/:userID/tasks/:instanceID/calendar-links - Link Google/Outlook
		tasks.Get("/:instanceID/calendar-links", calendarHandler.GetCalendarLinks)
	}
}
