package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/rakaarfi/vorsorge-guide-be/internal/models"
)

// MockUnlockStore is a mock type for the UnlockStore type
type MockUnlockStore struct {
	mock.Mock
}

// Add provides a mock function with given fields: ctx, unlock
func (_m *MockUnlockStore) Add(ctx context.Context, unlock *models.UserAchievement) (bool, error) {
	ret := _m.Called(ctx, unlock)
	return ret.Bool(0), ret.Error(1)
}

// ListByUser provides a mock function with given fields: ctx, userID
func (_m *MockUnlockStore) ListByUser(ctx context.Context, userID string) ([]models.UserAchievement, error) {
	ret := _m.Called(ctx, userID)

	var r0 []models.UserAchievement
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.UserAchievement)
	}
	return r0, ret.Error(1)
}

// IsUnlocked provides a mock function with given fields: ctx, userID, achievementID
func (_m *MockUnlockStore) IsUnlocked(ctx context.Context, userID string, achievementID string) (bool, error) {
	ret := _m.Called(ctx, userID, achievementID)
	return ret.Bool(0), ret.Error(1)
}

// MarkNotified provides a mock function with given fields: ctx, id
func (_m *MockUnlockStore) MarkNotified(ctx context.Context, id string) error {
	ret := _m.Called(ctx, id)
	return ret.Error(0)
}
