package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rakaarfi/vorsorge-guide-be/configs"
	v1 "github.com/rakaarfi/vorsorge-guide-be/internal/api/v1"
	"github.com/rakaarfi/vorsorge-guide-be/internal/api/v1/handlers"
	"github.com/rakaarfi/vorsorge-guide-be/internal/catalog"
	applogger "github.com/rakaarfi/vorsorge-guide-be/internal/logger"
	appmiddleware "github.com/rakaarfi/vorsorge-guide-be/internal/middleware"
	"github.com/rakaarfi/vorsorge-guide-be/internal/service"
	"github.com/rakaarfi/vorsorge-guide-be/internal/store"
	zlog "github.com/rs/zerolog/log"
)

// main adalah fungsi entry point aplikasi Go.
func main() {
	// --- Langkah 0: Load Konfigurasi dari .env ---
	// Harus dijalankan *sebelum* komponen lain yang bergantung pada env vars.
	configs.LoadConfig()

	// --- Langkah 1: Setup Logger (Zerolog) ---
	// Menginisialisasi logger global berdasarkan env vars (LOG_LEVEL, dll.).
	// Mengembalikan io.Closer jika file logging diaktifkan.
	logCloser := applogger.SetupLogger()
	if logCloser != nil {
		defer func() {
			zlog.Info().Msg("Closing log file...")
			if err := logCloser.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "[ERROR] Failed to close log file: %v\n", err)
			}
		}()
	}
	zlog.Info().Msg("Configuration loaded")

	// --- Langkah 2: Inisialisasi Lapisan Store (In-Memory) ---
	// Seluruh state aplikasi hidup di memori; tidak ada database eksternal.
	userStore := store.NewUserStore()
	instanceStore := store.NewInstanceStore()
	unlockStore := store.NewUnlockStore()
	zlog.Info().Msg("In-memory stores initialized")

	// --- Langkah 3: Muat Katalog Statis ---
	templates := catalog.TaskTemplates()
	achievements := catalog.Achievements()
	risks := catalog.HealthRisks()
	reductions := catalog.TaskRiskReductions()
	zlog.Info().
		Int("templates", len(templates)).
		Int("achievements", len(achievements)).
		Int("risks", len(risks)).
		Msg("Catalogs loaded")

	// --- Langkah 4: Inisialisasi Lapisan Service ---
	// nowFn nil berarti service memakai time.Now.
	taskService := service.NewTaskService(userStore, instanceStore, unlockStore, templates, achievements, nil)
	userService := service.NewUserService(userStore, instanceStore, templates, nil)
	achievementService := service.NewAchievementService(userStore, instanceStore, unlockStore, achievements)
	riskService := service.NewRiskService(userStore, instanceStore, risks, reductions, templates)
	statsService := service.NewStatsService(userStore, instanceStore, templates, nil)
	zlog.Info().Msg("Services initialized")

	// --- Langkah 5: Seed Data Demo ---
	seedDemoData(userStore, unlockStore, taskService)

	// --- Langkah 6: Inisialisasi Lapisan Handler ---
	userHandler := handlers.NewUserHandler(userService)
	taskHandler := handlers.NewTaskHandler(taskService)
	achievementHandler := handlers.NewAchievementHandler(achievementService)
	riskHandler := handlers.NewRiskHandler(riskService)
	statsHandler := handlers.NewStatsHandler(statsService)
	catalogHandler := handlers.NewCatalogHandler(templates, achievements, risks)
	calendarHandler := handlers.NewCalendarHandler(taskService, nil)
	zlog.Info().Msg("Handlers initialized")

	// --- Langkah 7: Setup Aplikasi Fiber ---
	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler,
	})
	zlog.Info().Msg("Fiber app initialized")

	// --- Langkah 8: Setup Middleware Global dan Rute ---
	appmiddleware.SetupGlobalMiddleware(app)

	v1.SetupRoutes(
		app,
		userHandler,
		taskHandler,
		achievementHandler,
		riskHandler,
		statsHandler,
		catalogHandler,
		calendarHandler,
	)
	zlog.Info().Msg("API v1 routes registered")

	// --- Langkah 9: Start Server HTTP ---
	appPort := os.Getenv("APP_PORT")
	if appPort == "" {
		appPort = "3000"
	}

	zlog.Info().Msgf("Server is starting on port %s...", appPort)
	// app.Listen bersifat blocking, berjalan terus sampai dihentikan atau error.
	startErr := app.Listen(fmt.Sprintf(":%s", appPort))
	if startErr != nil {
		zlog.Fatal().Err(startErr).Msg("Failed to start server")
	}
}

// seedDemoData mengisi store dengan pengguna demo, catatan achievement mereka,
// dan instance task awal dari katalog. Gagal seed bersifat fatal karena
// aplikasi demo tanpa data tidak berguna.
func seedDemoData(users store.UserStore, unlocks store.UnlockStore, tasks service.TaskService) {
	ctx := context.Background()
	now := time.Now()

	demoUsers := catalog.DemoUsers(now)
	for i := range demoUsers {
		if err := users.CreateUser(ctx, &demoUsers[i]); err != nil {
			zlog.Fatal().Err(err).Str("user_id", demoUsers[i].ID).Msg("Failed to seed demo user")
		}
		if _, err := tasks.InitializeTasks(ctx, demoUsers[i].ID); err != nil {
			zlog.Fatal().Err(err).Str("user_id", demoUsers[i].ID).Msg("Failed to initialize demo tasks")
		}
	}

	demoUnlocks := catalog.DemoUnlocks(now)
	for i := range demoUnlocks {
		if _, err := unlocks.Add(ctx, &demoUnlocks[i]); err != nil {
			zlog.Fatal().Err(err).Str("achievement_id", demoUnlocks[i].AchievementID).Msg("Failed to seed demo unlock")
		}
	}

	zlog.Info().
		Int("users", len(demoUsers)).
		Int("unlocks", len(demoUnlocks)).
		Msg("Demo data seeded")
}
