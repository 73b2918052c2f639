// internal/store/user_store.go
package store

import (
	"context"
	"fmt"
	"sort"
	"sync"

	zlog "github.com/rs/zerolog/log"

	"github.com/rakaarfi/vorsorge-guide-be/internal/gamification"
	"github.com/rakaarfi/vorsorge-guide-be/internal/models"
)

type userStore struct {
	mu    sync.RWMutex
	users map[string]models.User
}

// NewUserStore membuat instance baru dari UserStore (in-memory).
func NewUserStore() UserStore {
	return &userStore{users: make(map[string]models.User)}
}

// cloneUser menyalin record termasuk slice RiskFactors agar caller
// tidak bisa memutasi state internal store.
func cloneUser(u models.User) models.User {
	out := u
	if u.RiskFactors != nil {
		out.RiskFactors = make([]string, len(u.RiskFactors))
		copy(out.RiskFactors, u.RiskFactors)
	}
	return out
}

func (s *userStore) CreateUser(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[user.ID]; exists {
		zlog.Warn().Str("user_id", user.ID).Msg("Attempted to create duplicate user")
		return fmt.Errorf("creating user %s: %w", user.ID, ErrAlreadyExists)
	}
	s.users[user.ID] = cloneUser(*user)
	zlog.Info().Str("user_id", user.ID).Str("name", user.Name).Msg("User created successfully")
	return nil
}

func (s *userStore) GetUser(ctx context.Context, id string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, fmt.Errorf("getting user %s: %w", id, ErrUserNotFound)
	}
	out := cloneUser(u)
	return &out, nil
}

func (s *userStore) ListUsers(ctx context.Context) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, cloneUser(u))
	}
	// Urutan stabil: JoinedDate menaik, lalu ID sebagai tiebreaker.
	sort.Slice(out, func(i, j int) bool {
		if !out[i].JoinedDate.Equal(out[j].JoinedDate) {
			return out[i].JoinedDate.Before(out[j].JoinedDate)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *userStore) UpdateUser(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.ID]; !ok {
		zlog.Warn().Str("user_id", user.ID).Msg("Attempted to update non-existent user")
		return fmt.Errorf("updating user %s: %w", user.ID, ErrUserNotFound)
	}
	s.users[user.ID] = cloneUser(*user)
	return nil
}

func (s *userStore) AddPoints(ctx context.Context, id string, delta int) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, fmt.Errorf("adding points for user %s: %w", id, ErrUserNotFound)
	}

	u.TotalPoints += delta
	if u.TotalPoints < 0 {
		u.TotalPoints = 0
	}
	// Level selalu fungsi dari total poin; satu-satunya tempat level berubah.
	u.Level = gamification.CalculateLevel(u.TotalPoints)
	s.users[id] = u

	zlog.Debug().Str("user_id", id).Int("delta", delta).
		Int("total_points", u.TotalPoints).Int("level", u.Level).
		Msg("User points updated")
	out := cloneUser(u)
	return &out, nil
}

func (s *userStore) UpdateStreak(ctx context.Context, id string, current int) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, fmt.Errorf("updating streak for user %s: %w", id, ErrUserNotFound)
	}

	if current < 0 {
		current = 0
	}
	u.CurrentStreak = current
	if current > u.LongestStreak {
		u.LongestStreak = current
	}
	s.users[id] = u

	out := cloneUser(u)
	return &out, nil
}

func (s *userStore) UpdatePreferences(ctx context.Context, id string, input *models.UpdatePreferencesInput) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, fmt.Errorf("updating preferences for user %s: %w", id, ErrUserNotFound)
	}

	// Partial update: hanya field non-nil yang menimpa nilai lama.
	if input.Theme != nil {
		u.Preferences.Theme = *input.Theme
	}
	if input.NotificationsEnabled != nil {
		u.Preferences.NotificationsEnabled = *input.NotificationsEnabled
	}
	if input.ReminderTime != nil {
		u.Preferences.ReminderTime = *input.ReminderTime
	}
	if input.Language != nil {
		u.Preferences.Language = *input.Language
	}
	s.users[id] = u

	out := cloneUser(u)
	return &out, nil
}
