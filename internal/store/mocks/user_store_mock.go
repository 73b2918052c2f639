package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/rakaarfi/vorsorge-guide-be/internal/models"
)

// MockUserStore is a mock type for the UserStore type
type MockUserStore struct {
	mock.Mock
}

// CreateUser provides a mock function with given fields: ctx, user
func (_m *MockUserStore) CreateUser(ctx context.Context, user *models.User) error {
	ret := _m.Called(ctx, user)
	return ret.Error(0)
}

// GetUser provides a mock function with given fields: ctx, id
func (_m *MockUserStore) GetUser(ctx context.Context, id string) (*models.User, error) {
	ret := _m.Called(ctx, id)

	var r0 *models.User
	if rf, ok := ret.Get(0).(func(context.Context, string) *models.User); ok {
		r0 = rf(ctx, id)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*models.User)
		}
	}
	return r0, ret.Error(1)
}

// ListUsers provides a mock function with given fields: ctx
func (_m *MockUserStore) ListUsers(ctx context.Context) ([]models.User, error) {
	ret := _m.Called(ctx)

	var r0 []models.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.User)
	}
	return r0, ret.Error(1)
}

// UpdateUser provides a mock function with given fields: ctx, user
func (_m *MockUserStore) UpdateUser(ctx context.Context, user *models.User) error {
	ret := _m.Called(ctx, user)
	return ret.Error(0)
}

// AddPoints provides a mock function with given fields: ctx, id, delta
func (_m *MockUserStore) AddPoints(ctx context.Context, id string, delta int) (*models.User, error) {
	ret := _m.Called(ctx, id, delta)

	var r0 *models.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.User)
	}
	return r0, ret.Error(1)
}

// UpdateStreak provides a mock function with given fields: ctx, id, current
func (_m *MockUserStore) UpdateStreak(ctx context.Context, id string, current int) (*models.User, error) {
	ret := _m.Called(ctx, id, current)

	var r0 *models.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.User)
	}
	return r0, ret.Error(1)
}

// UpdatePreferences provides a mock function with given fields: ctx, id, input
func (_m *MockUserStore) UpdatePreferences(ctx context.Context, id string, input *models.UpdatePreferencesInput) (*models.User, error) {
	ret := _m.Called(ctx, id, input)

	var r0 *models.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.User)
	}
	return r0, ret.Error(1)
}
