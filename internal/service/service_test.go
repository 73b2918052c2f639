package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rakaarfi/vorsorge-guide-be/internal/models"
	"github.com/rakaarfi/vorsorge-guide-be/internal/store"
)

func TestUserServiceCreateUser(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	svc := NewUserService(f.users, f.instances, testTemplates(), fixedNow)

	user, err := svc.CreateUser(ctx, &models.CreateUserInput{
		Name: "Neu Nutzer", Age: 40, Gender: models.GenderMale,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, 1, user.Level)
	assert.Equal(t, 0, user.TotalPoints)
	assert.True(t, user.OnboardingComplete)
	assert.True(t, user.JoinedDate.Equal(testNow))
	assert.NotNil(t, user.RiskFactors)
	assert.Equal(t, "de", user.Preferences.Language)

	stored, err := f.users.GetUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Neu Nutzer", stored.Name)
}

func TestUserServiceGetProfile(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	svc := NewUserService(f.users, f.instances, testTemplates(), fixedNow)

	user := defaultUser()
	user.TotalPoints = 2450
	user.Level = 5
	f.seedUser(t, user)

	_, err := f.tasks.InitializeTasks(ctx, "u1")
	require.NoError(t, err)

	profile, err := svc.GetProfile(ctx, "u1")
	require.NoError(t, err)
	// Level 5 butuh 1600, level 6 butuh 2500: sisa 50.
	assert.Equal(t, 50, profile.PointsToNext)
	assert.Greater(t, profile.LevelProgress, 90)
	require.Contains(t, profile.CategoryProgress, models.CategoryFitness)
	assert.Equal(t, 1, profile.CategoryProgress[models.CategoryFitness].Total)
	assert.Equal(t, 0, profile.CategoryProgress[models.CategoryFitness].Completed)

	_, err = svc.GetProfile(ctx, "missing")
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestUserServiceUpdateProfileAndPreferences(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	svc := NewUserService(f.users, f.instances, testTemplates(), fixedNow)
	f.seedUser(t, defaultUser())

	user, err := svc.UpdateProfile(ctx, "u1", &models.UpdateProfileInput{
		Name: "Anna M.", Age: 36, RiskFactors: []string{"hypertension"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Anna M.", user.Name)
	assert.Equal(t, 36, user.Age)
	assert.Equal(t, []string{"hypertension"}, user.RiskFactors)

	enabled := false
	user, err = svc.UpdatePreferences(ctx, "u1", &models.UpdatePreferencesInput{
		NotificationsEnabled: &enabled,
	})
	require.NoError(t, err)
	assert.False(t, user.Preferences.NotificationsEnabled)
}

func TestAchievementServiceOverview(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	svc := NewAchievementService(f.users, f.instances, f.unlocks, testAchievements())
	f.seedUser(t, defaultUser())

	views, err := f.tasks.InitializeTasks(ctx, "u1")
	require.NoError(t, err)
	moveID := instanceIDFor(t, views, "move")
	_, err = f.tasks.CompleteTask(ctx, "u1", moveID, nil)
	require.NoError(t, err)

	overview, err := svc.Overview(ctx, "u1")
	require.NoError(t, err)

	require.Len(t, overview.Unlocked, 1)
	assert.Equal(t, "first", overview.Unlocked[0].Achievement.ID)
	assert.Equal(t, 10, overview.AchievementPoints)

	// "points-30" masih terkunci dengan progress; "hidden-early" tidak tampil.
	require.Len(t, overview.Locked, 1)
	assert.Equal(t, "points-30", overview.Locked[0].Achievement.ID)
	assert.Equal(t, 100, overview.Locked[0].Progress) // 30/30 poin, belum ter-unlock ulang
}

func TestAchievementServiceAcknowledgeUnlocks(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	svc := NewAchievementService(f.users, f.instances, f.unlocks, testAchievements())
	f.seedUser(t, defaultUser())

	views, err := f.tasks.InitializeTasks(ctx, "u1")
	require.NoError(t, err)
	moveID := instanceIDFor(t, views, "move")
	_, err = f.tasks.CompleteTask(ctx, "u1", moveID, nil)
	require.NoError(t, err)

	count, err := svc.AcknowledgeUnlocks(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	overview, err := svc.Overview(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, overview.Unlocked, 1)
	assert.True(t, overview.Unlocked[0].Notified)

	// Panggilan kedua idempoten.
	count, err = svc.AcknowledgeUnlocks(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	_, err = svc.AcknowledgeUnlocks(ctx, "missing")
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestRiskServiceProfile(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	risks := []models.HealthRisk{
		{ID: models.RiskHeartDisease, Name: "Herz", BaseRisk: 45},
		{ID: models.RiskObesity, Name: "Adipositas", BaseRisk: 42},
	}
	reductions := map[string][]models.RiskReduction{
		"move": {
			{RiskType: models.RiskHeartDisease, ReductionPercent: 3.5},
			{RiskType: models.RiskObesity, ReductionPercent: 5.0},
		},
	}
	svc := NewRiskService(f.users, f.instances, risks, reductions, testTemplates())
	f.seedUser(t, defaultUser())

	views, err := f.tasks.InitializeTasks(ctx, "u1")
	require.NoError(t, err)
	moveID := instanceIDFor(t, views, "move")
	_, err = f.tasks.CompleteTask(ctx, "u1", moveID, nil)
	require.NoError(t, err)
	_, err = f.tasks.CompleteTask(ctx, "u1", moveID, nil)
	require.NoError(t, err)

	entries, err := svc.Profile(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// Urut risiko tertinggi dulu: Herz 45-7=38, Adipositas 42-10=32.
	assert.Equal(t, models.RiskHeartDisease, entries[0].Risk.ID)
	assert.InDelta(t, 7.0, entries[0].Status.Reduction, 1e-9)
	assert.InDelta(t, 38.0, entries[0].Status.CurrentRisk, 1e-9)
	require.Len(t, entries[0].Contributions, 1)
	assert.Equal(t, 2, entries[0].Contributions[0].Completions)
	assert.Equal(t, "Bewegung", entries[0].Contributions[0].Title)
	assert.InDelta(t, 7.0, entries[0].Contributions[0].ReductionPercent, 1e-9)

	assert.Equal(t, models.RiskObesity, entries[1].Risk.ID)
	assert.InDelta(t, 32.0, entries[1].Status.CurrentRisk, 1e-9)
}

func TestStatsServiceDaily(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	svc := NewStatsService(f.users, f.instances, testTemplates(), fixedNow)
	f.seedUser(t, defaultUser())

	views, err := f.tasks.InitializeTasks(ctx, "u1")
	require.NoError(t, err)
	moveID := instanceIDFor(t, views, "move")
	_, err = f.tasks.CompleteTask(ctx, "u1", moveID, nil)
	require.NoError(t, err)

	days, err := svc.Daily(ctx, "u1", 3)
	require.NoError(t, err)
	require.Len(t, days, 3)

	// Kronologis, hari ini terakhir.
	assert.Equal(t, "2026-02-03", days[0].Date)
	assert.Equal(t, "2026-02-05", days[2].Date)
	assert.Equal(t, 0, days[0].TasksCompleted)
	assert.False(t, days[0].StreakMaintained)
	assert.Equal(t, 1, days[2].TasksCompleted)
	assert.Equal(t, 20, days[2].PointsEarned)
	assert.True(t, days[2].StreakMaintained)
	assert.Equal(t, 1, days[2].CategoryCounts[models.CategoryFitness])

	// Default 7 hari.
	days, err = svc.Daily(ctx, "u1", 0)
	require.NoError(t, err)
	assert.Len(t, days, 7)
}

func TestStatsServiceWeekly(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	svc := NewStatsService(f.users, f.instances, testTemplates(), fixedNow)
	f.seedUser(t, defaultUser())

	views, err := f.tasks.InitializeTasks(ctx, "u1")
	require.NoError(t, err)
	moveID := instanceIDFor(t, views, "move")
	_, err = f.tasks.CompleteTask(ctx, "u1", moveID, nil)
	require.NoError(t, err)

	weeks, err := svc.Weekly(ctx, "u1", 2)
	require.NoError(t, err)
	require.Len(t, weeks, 2)

	// 2026-02-05 adalah Kamis; minggu berjalan mulai Senin 2026-02-02.
	assert.Equal(t, "2026-01-26", weeks[0].WeekStart)
	assert.Equal(t, "2026-02-02", weeks[1].WeekStart)
	assert.Equal(t, 0, weeks[0].TotalTasks)
	assert.Equal(t, 1, weeks[1].TotalTasks)
	assert.Equal(t, 20, weeks[1].TotalPoints)
	assert.InDelta(t, 1.0/7.0, weeks[1].AverageDaily, 1e-9)
	assert.Equal(t, 1, weeks[1].CategoryBreakdown[models.CategoryFitness])
}

func TestStartOfWeekMonday(t *testing.T) {
	cases := []struct {
		in   time.Time
		want time.Time
	}{
		{time.Date(2026, 2, 5, 12, 0, 0, 0, time.UTC), time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC)},  // Kamis
		{time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC), time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC)},   // Senin
		{time.Date(2026, 2, 8, 23, 0, 0, 0, time.UTC), time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC)},  // Minggu
		{time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC), time.Date(2025, 12, 29, 0, 0, 0, 0, time.UTC)}, // lintas tahun
	}
	for _, c := range cases {
		assert.True(t, startOfWeek(c.in).Equal(c.want), "startOfWeek(%v)", c.in)
	}
}
