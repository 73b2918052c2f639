package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/rakaarfi/vorsorge-guide-be/internal/models"
	"github.com/rakaarfi/vorsorge-guide-be/internal/service"
)

// MockUserService is a mock type for the UserService type
type MockUserService struct {
	mock.Mock
}

func (_m *MockUserService) ListUsers(ctx context.Context) ([]models.User, error) {
	ret := _m.Called(ctx)

	var r0 []models.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.User)
	}
	return r0, ret.Error(1)
}

func (_m *MockUserService) GetProfile(ctx context.Context, userID string) (*service.UserProfile, error) {
	ret := _m.Called(ctx, userID)

	var r0 *service.UserProfile
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*service.UserProfile)
	}
	return r0, ret.Error(1)
}

func (_m *MockUserService) CreateUser(ctx context.Context, input *models.CreateUserInput) (*models.User, error) {
	ret := _m.Called(ctx, input)

	var r0 *models.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.User)
	}
	return r0, ret.Error(1)
}

func (_m *MockUserService) UpdateProfile(ctx context.Context, userID string, input *models.UpdateProfileInput) (*models.User, error) {
	ret := _m.Called(ctx, userID, input)

	var r0 *models.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.User)
	}
	return r0, ret.Error(1)
}

func (_m *MockUserService) UpdatePreferences(ctx context.Context, userID string, input *models.UpdatePreferencesInput) (*models.User, error) {
	ret := _m.Called(ctx, userID, input)

	var r0 *models.User
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.User)
	}
	return r0, ret.Error(1)
}

// MockAchievementService is a mock type for the AchievementService type
type MockAchievementService struct {
	mock.Mock
}

func (_m *MockAchievementService) Overview(ctx context.Context, userID string) (*service.AchievementOverview, error) {
	ret := _m.Called(ctx, userID)

	var r0 *service.AchievementOverview
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*service.AchievementOverview)
	}
	return r0, ret.Error(1)
}

func (_m *MockAchievementService) AcknowledgeUnlocks(ctx context.Context, userID string) (int, error) {
	ret := _m.Called(ctx, userID)
	return ret.Int(0), ret.Error(1)
}

// MockRiskService is a mock type for the RiskService type
type MockRiskService struct {
	mock.Mock
}

func (_m *MockRiskService) Profile(ctx context.Context, userID string) ([]service.RiskEntry, error) {
	ret := _m.Called(ctx, userID)

	var r0 []service.RiskEntry
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]service.RiskEntry)
	}
	return r0, ret.Error(1)
}

// MockStatsService is a mock type for the StatsService type
type MockStatsService struct {
	mock.Mock
}

func (_m *MockStatsService) Daily(ctx context.Context, userID string, days int) ([]models.DailyStats, error) {
	ret := _m.Called(ctx, userID, days)

	var r0 []models.DailyStats
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.DailyStats)
	}
	return r0, ret.Error(1)
}

func (_m *MockStatsService) Weekly(ctx context.Context, userID string, weeks int) ([]models.WeeklyStats, error) {
	ret := _m.Called(ctx, userID, weeks)

	var r0 []models.WeeklyStats
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.WeeklyStats)
	}
	return r0, ret.Error(1)
}
