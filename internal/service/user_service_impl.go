// internal/service/user_service_impl.go
package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	zlog "github.com/rs/zerolog/log"

	"github.com/rakaarfi/vorsorge-guide-be/internal/gamification"
	"github.com/rakaarfi/vorsorge-guide-be/internal/models"
	"github.com/rakaarfi/vorsorge-guide-be/internal/store"
)

type userService struct {
	users     store.UserStore
	instances store.InstanceStore
	templates []models.TaskTemplate
	now       func() time.Time
}

// NewUserService membuat instance baru dari UserService.
func NewUserService(
	users store.UserStore,
	instances store.InstanceStore,
	templates []models.TaskTemplate,
	nowFn func() time.Time,
) UserService {
	if nowFn == nil {
		nowFn = time.Now
	}
	return &userService{users: users, instances: instances, templates: templates, now: nowFn}
}

func (s *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.users.ListUsers(ctx)
}

func (s *userService) GetProfile(ctx context.Context, userID string) (*UserProfile, error) {
	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	insts, err := s.instances.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &UserProfile{
		User:             *user,
		PointsToNext:     gamification.PointsToNextLevel(user.TotalPoints),
		LevelProgress:    gamification.LevelProgress(user.TotalPoints),
		CategoryProgress: gamification.CategoryProgress(insts, s.templates, s.now()),
	}, nil
}

func (s *userService) CreateUser(ctx context.Context, input *models.CreateUserInput) (*models.User, error) {
	now := s.now()
	user := &models.User{
		ID:                 uuid.NewString(),
		Name:               input.Name,
		Age:                input.Age,
		Gender:             input.Gender,
		RiskFactors:        input.RiskFactors,
		OnboardingComplete: true,
		Level:              gamification.CalculateLevel(0),
		JoinedDate:         now,
		LastActiveDate:     now,
		Preferences: models.UserPreferences{
			Theme:                "system",
			NotificationsEnabled: true,
			ReminderTime:         "19:00",
			Language:             "de",
		},
	}
	if user.RiskFactors == nil {
		user.RiskFactors = []string{}
	}
	if err := s.users.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	zlog.Info().Str("user_id", user.ID).Int("age", user.Age).Msg("Onboarding completed for new user")
	return user, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID string, input *models.UpdateProfileInput) (*models.User, error) {
	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.Name = input.Name
	user.Age = input.Age
	if input.RiskFactors != nil {
		user.RiskFactors = input.RiskFactors
	}
	if err := s.users.UpdateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *userService) UpdatePreferences(ctx context.Context, userID string, input *models.UpdatePreferencesInput) (*models.User, error) {
	return s.users.UpdatePreferences(ctx, userID, input)
}
