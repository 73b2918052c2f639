package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/rakaarfi/vorsorge-guide-be/internal/models"
)

// MockInstanceStore is a mock type for the InstanceStore type
type MockInstanceStore struct {
	mock.Mock
}

// InitializeForUser provides a mock function with given fields: ctx, userID, templates, now
func (_m *MockInstanceStore) InitializeForUser(ctx context.Context, userID string, templates []models.TaskTemplate, now time.Time) ([]models.UserTaskInstance, error) {
	ret := _m.Called(ctx, userID, templates, now)

	var r0 []models.UserTaskInstance
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.UserTaskInstance)
	}
	return r0, ret.Error(1)
}

// GetInstance provides a mock function with given fields: ctx, id
func (_m *MockInstanceStore) GetInstance(ctx context.Context, id string) (*models.UserTaskInstance, error) {
	ret := _m.Called(ctx, id)

	var r0 *models.UserTaskInstance
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.UserTaskInstance)
	}
	return r0, ret.Error(1)
}

// ListByUser provides a mock function with given fields: ctx, userID
func (_m *MockInstanceStore) ListByUser(ctx context.Context, userID string) ([]models.UserTaskInstance, error) {
	ret := _m.Called(ctx, userID)

	var r0 []models.UserTaskInstance
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.UserTaskInstance)
	}
	return r0, ret.Error(1)
}

// ApplyCompletion provides a mock function with given fields: ctx, id, completion, nextDue, streakCount
func (_m *MockInstanceStore) ApplyCompletion(ctx context.Context, id string, completion models.TaskCompletion, nextDue time.Time, streakCount int) (*models.UserTaskInstance, error) {
	ret := _m.Called(ctx, id, completion, nextDue, streakCount)

	var r0 *models.UserTaskInstance
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.UserTaskInstance)
	}
	return r0, ret.Error(1)
}

// UndoCompletion provides a mock function with given fields: ctx, id, restoredNextDue
func (_m *MockInstanceStore) UndoCompletion(ctx context.Context, id string, restoredNextDue time.Time) (*models.UserTaskInstance, *models.TaskCompletion, error) {
	ret := _m.Called(ctx, id, restoredNextDue)

	var r0 *models.UserTaskInstance
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.UserTaskInstance)
	}
	var r1 *models.TaskCompletion
	if ret.Get(1) != nil {
		r1 = ret.Get(1).(*models.TaskCompletion)
	}
	return r0, r1, ret.Error(2)
}

// Snooze provides a mock function with given fields: ctx, id, until
func (_m *MockInstanceStore) Snooze(ctx context.Context, id string, until time.Time) (*models.UserTaskInstance, error) {
	ret := _m.Called(ctx, id, until)

	var r0 *models.UserTaskInstance
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.UserTaskInstance)
	}
	return r0, ret.Error(1)
}

// SetStatus provides a mock function with given fields: ctx, id, status
func (_m *MockInstanceStore) SetStatus(ctx context.Context, id string, status models.TaskStatus) (*models.UserTaskInstance, error) {
	ret := _m.Called(ctx, id, status)

	var r0 *models.UserTaskInstance
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.UserTaskInstance)
	}
	return r0, ret.Error(1)
}

// UpdateNotes provides a mock function with given fields: ctx, id, notes
func (_m *MockInstanceStore) UpdateNotes(ctx context.Context, id string, notes string) (*models.UserTaskInstance, error) {
	ret := _m.Called(ctx, id, notes)

	var r0 *models.UserTaskInstance
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.UserTaskInstance)
	}
	return r0, ret.Error(1)
}
