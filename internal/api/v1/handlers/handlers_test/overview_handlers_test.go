package handlers_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rakaarfi/vorsorge-guide-be/internal/api/v1/handlers"
	"github.com/rakaarfi/vorsorge-guide-be/internal/models"
	"github.com/rakaarfi/vorsorge-guide-be/internal/service"
	serviceMocks "github.com/rakaarfi/vorsorge-guide-be/internal/service/mocks"
	"github.com/rakaarfi/vorsorge-guide-be/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAchievementHandler_GetAchievements(t *testing.T) {
	app := fiber.New()
	mockService := new(serviceMocks.MockAchievementService)
	handler := handlers.NewAchievementHandler(mockService)
	app.Get("/api/v1/users/:userID/achievements", handler.GetAchievements)

	overview := &service.AchievementOverview{
		Unlocked: []service.UnlockedAchievementView{
			{
				Achievement: models.Achievement{ID: "first-task", Title: "Erster Schritt", Points: 10},
				UnlockedAt:  time.Date(2026, 1, 10, 8, 0, 0, 0, time.UTC),
			},
		},
		Locked: []service.LockedAchievementView{
			{Achievement: models.Achievement{ID: "streak-7", Title: "Wochenkrieger", Points: 50}, Progress: 40},
		},
		AchievementPoints: 10,
	}
	mockService.On("Overview", mock.Anything, testUserID).Return(overview, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/"+testUserID+"/achievements", nil)
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var responseBody map[string]interface{}
	err = json.NewDecoder(resp.Body).Decode(&responseBody)
	assert.NoError(t, err)
	data, ok := responseBody["data"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(10), data["achievement_points"])

	mockService.AssertExpectations(t)
}

func TestAchievementHandler_AcknowledgeUnlocks(t *testing.T) {
	app := fiber.New()
	mockService := new(serviceMocks.MockAchievementService)
	handler := handlers.NewAchievementHandler(mockService)
	app.Post("/api/v1/users/:userID/achievements/ack", handler.AcknowledgeUnlocks)

	mockService.On("AcknowledgeUnlocks", mock.Anything, testUserID).Return(2, nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/users/"+testUserID+"/achievements/ack", nil)
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var responseBody map[string]interface{}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&responseBody))
	data, ok := responseBody["data"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(2), data["acknowledged"])

	mockService.AssertExpectations(t)
}

func TestRiskHandler_GetRiskProfile(t *testing.T) {
	app := fiber.New()
	mockService := new(serviceMocks.MockRiskService)
	handler := handlers.NewRiskHandler(mockService)
	app.Get("/api/v1/users/:userID/risk-profile", handler.GetRiskProfile)

	entries := []service.RiskEntry{
		{
			Risk:   models.HealthRisk{ID: models.RiskHeartDisease, Name: "Herz-Kreislauf-Erkrankungen", BaseRisk: 45},
			Status: models.RiskStatus{BaseRisk: 45, Reduction: 7, CurrentRisk: 38},
			Contributions: []service.RiskContribution{
				{TaskID: "daily-exercise", Title: "Bewegung", Completions: 2, ReductionPercent: 7},
			},
		},
	}
	mockService.On("Profile", mock.Anything, testUserID).Return(entries, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/"+testUserID+"/risk-profile", nil)
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	mockService.AssertExpectations(t)
}

func TestStatsHandler_GetDailyStats(t *testing.T) {
	t.Run("Success with explicit days", func(t *testing.T) {
		app := fiber.New()
		mockService := new(serviceMocks.MockStatsService)
		handler := handlers.NewStatsHandler(mockService)
		app.Get("/api/v1/users/:userID/stats/daily", handler.GetDailyStats)

		stats := []models.DailyStats{
			{Date: "2026-02-04", TasksCompleted: 2, PointsEarned: 40},
			{Date: "2026-02-05", TasksCompleted: 1, PointsEarned: 20},
		}
		mockService.On("Daily", mock.Anything, testUserID, 2).Return(stats, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/users/"+testUserID+"/stats/daily?days=2", nil)
		resp, err := app.Test(req, -1)
		assert.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockService.AssertExpectations(t)
	})

	t.Run("Default days when omitted", func(t *testing.T) {
		app := fiber.New()
		mockService := new(serviceMocks.MockStatsService)
		handler := handlers.NewStatsHandler(mockService)
		app.Get("/api/v1/users/:userID/stats/daily", handler.GetDailyStats)

		mockService.On("Daily", mock.Anything, testUserID, 0).Return([]models.DailyStats{}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/users/"+testUserID+"/stats/daily", nil)
		resp, err := app.Test(req, -1)
		assert.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		mockService.AssertExpectations(t)
	})

	t.Run("Invalid days parameter", func(t *testing.T) {
		app := fiber.New()
		mockService := new(serviceMocks.MockStatsService)
		handler := handlers.NewStatsHandler(mockService)
		app.Get("/api/v1/users/:userID/stats/daily", handler.GetDailyStats)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/users/"+testUserID+"/stats/daily?days=-3", nil)
		resp, err := app.Test(req, -1)
		assert.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		mockService.AssertExpectations(t)
	})
}

func TestStatsHandler_GetWeeklyStats(t *testing.T) {
	app := fiber.New()
	mockService := new(serviceMocks.MockStatsService)
	handler := handlers.NewStatsHandler(mockService)
	app.Get("/api/v1/users/:userID/stats/weekly", handler.GetWeeklyStats)

	stats := []models.WeeklyStats{
		{WeekStart: "2026-01-26", TotalTasks: 5, TotalPoints: 120},
		{WeekStart: "2026-02-02", TotalTasks: 3, TotalPoints: 60},
	}
	mockService.On("Weekly", mock.Anything, testUserID, 2).Return(stats, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/"+testUserID+"/stats/weekly?weeks=2", nil)
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	mockService.AssertExpectations(t)
}

func TestCatalogHandler(t *testing.T) {
	templates := []models.TaskTemplate{
		{ID: "daily-exercise", Title: "Bewegung", Category: models.CategoryFitness},
		{ID: "annual-checkup", Title: "Gesundheits-Check-up", Category: models.CategoryMedical},
	}
	achievements := []models.Achievement{
		{ID: "first-task", Title: "Erster Schritt"},
		{ID: "early-bird", Title: "Frühaufsteher", Hidden: true},
	}
	risks := []models.HealthRisk{
		{ID: models.RiskHeartDisease, Name: "Herz-Kreislauf-Erkrankungen", BaseRisk: 45},
	}

	newApp := func() *fiber.App {
		app := fiber.New()
		handler := handlers.NewCatalogHandler(templates, achievements, risks)
		app.Get("/api/v1/catalog/tasks", handler.GetTaskTemplates)
		app.Get("/api/v1/catalog/achievements", handler.GetAchievementCatalog)
		app.Get("/api/v1/catalog/risks", handler.GetRiskCatalog)
		return app
	}

	t.Run("Tasks filtered by category", func(t *testing.T) {
		app := newApp()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog/tasks?category=fitness", nil)
		resp, err := app.Test(req, -1)
		assert.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var body map[string]interface{}
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		data, ok := body["data"].([]interface{})
		require.True(t, ok)
		assert.Len(t, data, 1)
	})

	t.Run("Tasks with invalid category", func(t *testing.T) {
		app := newApp()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog/tasks?category=yoga", nil)
		resp, err := app.Test(req, -1)
		assert.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("Achievements exclude hidden", func(t *testing.T) {
		app := newApp()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog/achievements", nil)
		resp, err := app.Test(req, -1)
		assert.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var body map[string]interface{}
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		data, ok := body["data"].([]interface{})
		require.True(t, ok)
		assert.Len(t, data, 1)
	})

	t.Run("Risks", func(t *testing.T) {
		app := newApp()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/catalog/risks", nil)
		resp, err := app.Test(req, -1)
		assert.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}

func TestCalendarHandler(t *testing.T) {
	fixedNow := time.Date(2026, 2, 5, 12, 0, 0, 0, time.UTC)
	nowFn := func() time.Time { return fixedNow }

	t.Run("DownloadICS", func(t *testing.T) {
		app := fiber.New()
		mockTaskService := new(serviceMocks.MockTaskService)
		handler := handlers.NewCalendarHandler(mockTaskService, nowFn)
		app.Get("/api/v1/users/:userID/tasks/:instanceID/calendar.ics", handler.DownloadICS)

		mockTaskService.On("GetTask", mock.Anything, testUserID, testInstanceID).Return(sampleTaskView(), nil).Once()

		url := "/api/v1/users/" + testUserID + "/tasks/" + testInstanceID + "/calendar.ics"
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, url, nil), -1)
		assert.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), "text/calendar")
		assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "daily-exercise.ics")

		body, err := io.ReadAll(resp.Body)
		assert.NoError(t, err)
		ics := string(body)
		assert.Contains(t, ics, "BEGIN:VCALENDAR")
		assert.Contains(t, ics, "SUMMARY:Bewegung")
		// Mulai jam 9 pagi pada tanggal jatuh tempo.
		assert.Contains(t, ics, "DTSTART:20260206T090000")

		mockTaskService.AssertExpectations(t)
	})

	t.Run("GetCalendarLinks", func(t *testing.T) {
		app := fiber.New()
		mockTaskService := new(serviceMocks.MockTaskService)
		handler := handlers.NewCalendarHandler(mockTaskService, nowFn)
		app.Get("/api/v1/users/:userID/tasks/:instanceID/calendar-links", handler.GetCalendarLinks)

		mockTaskService.On("GetTask", mock.Anything, testUserID, testInstanceID).Return(sampleTaskView(), nil).Once()

		url := "/api/v1/users/" + testUserID + "/tasks/" + testInstanceID + "/calendar-links"
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, url, nil), -1)
		assert.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body map[string]interface{}
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		data, ok := body["data"].(map[string]interface{})
		require.True(t, ok)
		assert.True(t, strings.HasPrefix(data["google"].(string), "https://calendar.google.com/"))
		assert.True(t, strings.HasPrefix(data["outlook"].(string), "https://outlook.live.com/"))
		assert.Equal(t, "/api/v1/users/"+testUserID+"/tasks/"+testInstanceID+"/calendar.ics", data["ics"])

		mockTaskService.AssertExpectations(t)
	})

	t.Run("Task not found", func(t *testing.T) {
		app := fiber.New()
		mockTaskService := new(serviceMocks.MockTaskService)
		handler := handlers.NewCalendarHandler(mockTaskService, nowFn)
		app.Get("/api/v1/users/:userID/tasks/:instanceID/calendar.ics", handler.DownloadICS)

		mockTaskService.On("GetTask", mock.Anything, testUserID, testInstanceID).Return(nil, store.ErrInstanceNotFound).Once()

		url := "/api/v1/users/" + testUserID + "/tasks/" + testInstanceID + "/calendar.ics"
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, url, nil), -1)
		assert.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		mockTaskService.AssertExpectations(t)
	})
}
