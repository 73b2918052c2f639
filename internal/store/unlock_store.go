// internal/store/unlock_store.go
package store

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
	zlog "github.com/rs/zerolog/log"

	"github.com/rakaarfi/vorsorge-guide-be/internal/models"
)

type unlockStore struct {
	mu      sync.RWMutex
	unlocks map[string]models.UserAchievement
	// pairs mengindeks (userID, achievementID) -> unlock ID untuk
	// menjaga idempotensi tanpa scan penuh.
	pairs map[string]string
}

// NewUnlockStore membuat instance baru dari UnlockStore (in-memory).
func NewUnlockStore() UnlockStore {
	return &unlockStore{
		unlocks: make(map[string]models.UserAchievement),
		pairs:   make(map[string]string),
	}
}

func pairKey(userID, achievementID string) string {
	return userID + "\x00" + achievementID
}

func (s *unlockStore) Add(ctx context.Context, unlock *models.UserAchievement) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := pairKey(unlock.UserID, unlock.AchievementID)
	if _, exists := s.pairs[key]; exists {
		// Unlock kedua untuk pasangan yang sama: no-op.
		return false, nil
	}

	record := *unlock
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	s.unlocks[record.ID] = record
	s.pairs[key] = record.ID
	// ID yang digenerate dikembalikan ke caller.
	unlock.ID = record.ID

	zlog.Info().
		Str("user_id", record.UserID).
		Str("achievement_id", record.AchievementID).
		Msg("Achievement unlocked")
	return true, nil
}

func (s *unlockStore) ListByUser(ctx context.Context, userID string) ([]models.UserAchievement, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.UserAchievement, 0)
	for _, ua := range s.unlocks {
		if ua.UserID == userID {
			out = append(out, ua)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].UnlockedAt.Equal(out[j].UnlockedAt) {
			return out[i].UnlockedAt.Before(out[j].UnlockedAt)
		}
		return out[i].AchievementID < out[j].AchievementID
	})
	return out, nil
}

func (s *unlockStore) IsUnlocked(ctx context.Context, userID, achievementID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.pairs[pairKey(userID, achievementID)]
	return ok, nil
}

func (s *unlockStore) MarkNotified(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ua, ok := s.unlocks[id]
	if !ok {
		return fmt.Errorf("marking unlock %s notified: %w", id, ErrUnlockNotFound)
	}
	ua.Notified = true
	s.unlocks[id] = ua
	return nil
}
