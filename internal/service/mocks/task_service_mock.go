package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/rakaarfi/vorsorge-guide-be/internal/models"
	"github.com/rakaarfi/vorsorge-guide-be/internal/service"
)

// MockTaskService is a mock type for the TaskService type
type MockTaskService struct {
	mock.Mock
}

// InitializeTasks provides a mock function with given fields: ctx, userID
func (_m *MockTaskService) InitializeTasks(ctx context.Context, userID string) ([]service.TaskView, error) {
	ret := _m.Called(ctx, userID)

	var r0 []service.TaskView
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]service.TaskView)
	}
	return r0, ret.Error(1)
}

// ListTasks provides a mock function with given fields: ctx, userID, filter
func (_m *MockTaskService) ListTasks(ctx context.Context, userID string, filter service.TaskListFilter) ([]service.TaskView, int, error) {
	ret := _m.Called(ctx, userID, filter)

	var r0 []service.TaskView
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]service.TaskView)
	}
	return r0, ret.Int(1), ret.Error(2)
}

// GetTask provides a mock function with given fields: ctx, userID, instanceID
func (_m *MockTaskService) GetTask(ctx context.Context, userID string, instanceID string) (*service.TaskView, error) {
	ret := _m.Called(ctx, userID, instanceID)

	var r0 *service.TaskView
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*service.TaskView)
	}
	return r0, ret.Error(1)
}

// CompleteTask provides a mock function with given fields: ctx, userID, instanceID, input
func (_m *MockTaskService) CompleteTask(ctx context.Context, userID string, instanceID string, input *models.CompleteTaskInput) (*service.CompletionResult, error) {
	ret := _m.Called(ctx, userID, instanceID, input)

	var r0 *service.CompletionResult
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*service.CompletionResult)
	}
	return r0, ret.Error(1)
}

// UndoCompletion provides a mock function with given fields: ctx, userID, instanceID
func (_m *MockTaskService) UndoCompletion(ctx context.Context, userID string, instanceID string) (*service.TaskView, error) {
	ret := _m.Called(ctx, userID, instanceID)

	var r0 *service.TaskView
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*service.TaskView)
	}
	return r0, ret.Error(1)
}

// SnoozeTask provides a mock function with given fields: ctx, userID, instanceID, days
func (_m *MockTaskService) SnoozeTask(ctx context.Context, userID string, instanceID string, days int) (*service.TaskView, error) {
	ret := _m.Called(ctx, userID, instanceID, days)

	var r0 *service.TaskView
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*service.TaskView)
	}
	return r0, ret.Error(1)
}

// SetStatus provides a mock function with given fields: ctx, userID, instanceID, status
func (_m *MockTaskService) SetStatus(ctx context.Context, userID string, instanceID string, status models.TaskStatus) (*service.TaskView, error) {
	ret := _m.Called(ctx, userID, instanceID, status)

	var r0 *service.TaskView
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*service.TaskView)
	}
	return r0, ret.Error(1)
}

// UpdateNotes provides a mock function with given fields: ctx, userID, instanceID, notes
func (_m *MockTaskService) UpdateNotes(ctx context.Context, userID string, instanceID string, notes string) (*service.TaskView, error) {
	ret := _m.Called(ctx, userID, instanceID, notes)

	var r0 *service.TaskView
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*service.TaskView)
	}
	return r0, ret.Error(1)
}
