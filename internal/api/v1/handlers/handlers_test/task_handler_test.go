package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
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
)

const testInstanceID = "inst-123"

func sampleTaskView() *service.TaskView {
	return &service.TaskView{
		Instance: models.UserTaskInstance{
			ID:      testInstanceID,
			UserID:  testUserID,
			TaskID:  "daily-exercise",
			NextDue: time.Date(2026, 2, 6, 0, 0, 0, 0, time.UTC),
			Status:  models.TaskStatusActive,
		},
		Template: models.TaskTemplate{
			ID:       "daily-exercise",
			Title:    "Bewegung",
			Category: models.CategoryFitness,
			Points:   20,
			Duration: "30min",
		},
		State:        models.InstanceStateUpcoming,
		DaysUntilDue: 1,
	}
}

func TestTaskHandler_CompleteTask(t *testing.T) {
	tests := []struct {
		name            string
		body            string // JSON mentah; kosong = tanpa body
		setupMock       func(m *serviceMocks.MockTaskService)
		expectedStatus  int
		expectedMessage string
	}{
		{
			name: "Success - With Body",
			body: `{"notes":"Joggen im Park","is_early":true}`,
			setupMock: func(m *serviceMocks.MockTaskService) {
				input := &models.CompleteTaskInput{Notes: "Joggen im Park", IsEarly: true}
				result := &service.CompletionResult{Points: 27, BonusPoints: 7, NewLevel: 5, NewStreak: 8}
				m.On("CompleteTask", mock.Anything, testUserID, testInstanceID, input).Return(result, nil).Once()
			},
			expectedStatus:  http.StatusOK,
			expectedMessage: "Task completed successfully",
		},
		{
			name: "Success - Empty Body",
			setupMock: func(m *serviceMocks.MockTaskService) {
				input := &models.CompleteTaskInput{}
				result := &service.CompletionResult{Points: 20, NewLevel: 5, NewStreak: 1}
				m.On("CompleteTask", mock.Anything, testUserID, testInstanceID, input).Return(result, nil).Once()
			},
			expectedStatus:  http.StatusOK,
			expectedMessage: "Task completed successfully",
		},
		{
			name:            "Bad Request - Invalid Body",
			body:            "{invalid",
			setupMock:       func(m *serviceMocks.MockTaskService) {},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Invalid request body",
		},
		{
			name: "Not Found - Unknown Instance",
			body: `{"notes":""}`,
			setupMock: func(m *serviceMocks.MockTaskService) {
				input := &models.CompleteTaskInput{}
				m.On("CompleteTask", mock.Anything, testUserID, testInstanceID, input).Return(nil, store.ErrInstanceNotFound).Once()
			},
			expectedStatus:  http.StatusNotFound,
			expectedMessage: "Task not found or not yours",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			mockTaskService := new(serviceMocks.MockTaskService)
			taskHandler := handlers.NewTaskHandler(mockTaskService)
			app.Post("/api/v1/users/:userID/tasks/:instanceID/complete", taskHandler.CompleteTask)

			tc.setupMock(mockTaskService)

			url := "/api/v1/users/" + testUserID + "/tasks/" + testInstanceID + "/complete"
			var req *http.Request
			if tc.body == "" {
				req = httptest.NewRequest(http.MethodPost, url, nil)
			} else {
				req = httptest.NewRequest(http.MethodPost, url, bytes.NewReader([]byte(tc.body)))
				req.Header.Set("Content-Type", "application/json")
			}

			resp, err := app.Test(req, -1)
			assert.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tc.expectedStatus, resp.StatusCode, "Status code mismatch")

			var responseBody map[string]interface{}
			err = json.NewDecoder(resp.Body).Decode(&responseBody)
			assert.NoError(t, err)
			assert.Equal(t, tc.expectedMessage, responseBody["message"])

			mockTaskService.AssertExpectations(t)
		})
	}
}

func TestTaskHandler_ListTasks(t *testing.T) {
	t.Run("Success with filter and pagination", func(t *testing.T) {
		app := fiber.New()
		mockTaskService := new(serviceMocks.MockTaskService)
		taskHandler := handlers.NewTaskHandler(mockTaskService)
		app.Get("/api/v1/users/:userID/tasks", taskHandler.ListTasks)

		expectedFilter := service.TaskListFilter{
			State:    models.InstanceStateDueToday,
			Category: models.CategoryFitness,
			Search:   "bewegung",
			Page:     2,
			Limit:    5,
		}
		views := []service.TaskView{*sampleTaskView()}
		mockTaskService.On("ListTasks", mock.Anything, testUserID, expectedFilter).Return(views, 11, nil).Once()

		url := "/api/v1/users/" + testUserID + "/tasks?state=due_today&category=fitness&search=bewegung&page=2&limit=5"
		req := httptest.NewRequest(http.MethodGet, url, nil)

		resp, err := app.Test(req, -1)
		assert.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var responseBody map[string]interface{}
		err = json.NewDecoder(resp.Body).Decode(&responseBody)
		assert.NoError(t, err)
		assert.Equal(t, true, responseBody["success"])

		meta, ok := responseBody["meta"].(map[string]interface{})
		assert.True(t, ok, "meta should be present")
		assert.Equal(t, float64(11), meta["total_items"])
		assert.Equal(t, float64(2), meta["current_page"])

		mockTaskService.AssertExpectations(t)
	})

	t.Run("Invalid state filter", func(t *testing.T) {
		app := fiber.New()
		mockTaskService := new(serviceMocks.MockTaskService)
		taskHandler := handlers.NewTaskHandler(mockTaskService)
		app.Get("/api/v1/users/:userID/tasks", taskHandler.ListTasks)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/users/"+testUserID+"/tasks?state=bogus", nil)
		resp, err := app.Test(req, -1)
		assert.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		mockTaskService.AssertExpectations(t)
	})

	t.Run("Invalid category filter", func(t *testing.T) {
		app := fiber.New()
		mockTaskService := new(serviceMocks.MockTaskService)
		taskHandler := handlers.NewTaskHandler(mockTaskService)
		app.Get("/api/v1/users/:userID/tasks", taskHandler.ListTasks)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/users/"+testUserID+"/tasks?category=sports", nil)
		resp, err := app.Test(req, -1)
		assert.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		mockTaskService.AssertExpectations(t)
	})
}

func TestTaskHandler_UndoCompletion(t *testing.T) {
	tests := []struct {
		name            string
		setupMock       func(m *serviceMocks.MockTaskService)
		expectedStatus  int
		expectedMessage string
	}{
		{
			name: "Success",
			setupMock: func(m *serviceMocks.MockTaskService) {
				m.On("UndoCompletion", mock.Anything, testUserID, testInstanceID).Return(sampleTaskView(), nil).Once()
			},
			expectedStatus:  http.StatusOK,
			expectedMessage: "Completion undone successfully",
		},
		{
			name: "Nothing To Undo",
			setupMock: func(m *serviceMocks.MockTaskService) {
				m.On("UndoCompletion", mock.Anything, testUserID, testInstanceID).Return(nil, store.ErrNoCompletions).Once()
			},
			expectedStatus:  http.StatusBadRequest,
			expectedMessage: "Task has no completion to undo",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			mockTaskService := new(serviceMocks.MockTaskService)
			taskHandler := handlers.NewTaskHandler(mockTaskService)
			app.Post("/api/v1/users/:userID/tasks/:instanceID/undo", taskHandler.UndoCompletion)

			tc.setupMock(mockTaskService)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/users/"+testUserID+"/tasks/"+testInstanceID+"/undo", nil)
			resp, err := app.Test(req, -1)
			assert.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tc.expectedStatus, resp.StatusCode)

			var responseBody map[string]interface{}
			err = json.NewDecoder(resp.Body).Decode(&responseBody)
			assert.NoError(t, err)
			assert.Equal(t, tc.expectedMessage, responseBody["message"])

			mockTaskService.AssertExpectations(t)
		})
	}
}

func TestTaskHandler_SnoozeTask(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMock      func(m *serviceMocks.MockTaskService)
		expectedStatus int
	}{
		{
			name: "Success",
			body: `{"days":3}`,
			setupMock: func(m *serviceMocks.MockTaskService) {
				m.On("SnoozeTask", mock.Anything, testUserID, testInstanceID, 3).Return(sampleTaskView(), nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Validation Error - Zero Days",
			body:           `{"days":0}`,
			setupMock:      func(m *serviceMocks.MockTaskService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Validation Error - Too Many Days",
			body:           `{"days":45}`,
			setupMock:      func(m *serviceMocks.MockTaskService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			mockTaskService := new(serviceMocks.MockTaskService)
			taskHandler := handlers.NewTaskHandler(mockTaskService)
			app.Post("/api/v1/users/:userID/tasks/:instanceID/snooze", taskHandler.SnoozeTask)

			tc.setupMock(mockTaskService)

			url := "/api/v1/users/" + testUserID + "/tasks/" + testInstanceID + "/snooze"
			req := httptest.NewRequest(http.MethodPost, url, bytes.NewReader([]byte(tc.body)))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req, -1)
			assert.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tc.expectedStatus, resp.StatusCode)
			mockTaskService.AssertExpectations(t)
		})
	}
}

func TestTaskHandler_SetStatus(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMock      func(m *serviceMocks.MockTaskService)
		expectedStatus int
	}{
		{
			name: "Success",
			body: `{"status":"paused"}`,
			setupMock: func(m *serviceMocks.MockTaskService) {
				m.On("SetStatus", mock.Anything, testUserID, testInstanceID, models.TaskStatusPaused).Return(sampleTaskView(), nil).Once()
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Validation Error - Unknown Status",
			body:           `{"status":"deleted"}`,
			setupMock:      func(m *serviceMocks.MockTaskService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			mockTaskService := new(serviceMocks.MockTaskService)
			taskHandler := handlers.NewTaskHandler(mockTaskService)
			app.Patch("/api/v1/users/:userID/tasks/:instanceID/status", taskHandler.SetStatus)

			tc.setupMock(mockTaskService)

			url := "/api/v1/users/" + testUserID + "/tasks/" + testInstanceID + "/status"
			req := httptest.NewRequest(http.MethodPatch, url, bytes.NewReader([]byte(tc.body)))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req, -1)
			assert.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tc.expectedStatus, resp.StatusCode)
			mockTaskService.AssertExpectations(t)
		})
	}
}

func TestTaskHandler_InitializeTasks(t *testing.T) {
	app := fiber.New()
	mockTaskService := new(serviceMocks.MockTaskService)
	taskHandler := handlers.NewTaskHandler(mockTaskService)
	app.Post("/api/v1/users/:userID/tasks/init", taskHandler.InitializeTasks)

	views := []service.TaskView{*sampleTaskView()}
	mockTaskService.On("InitializeTasks", mock.Anything, testUserID).Return(views, nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/users/"+testUserID+"/tasks/init", nil)
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	mockTaskService.AssertExpectations(t)
}
