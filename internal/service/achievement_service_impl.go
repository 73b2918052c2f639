// internal/service/achievement_service_impl.go
package service

import (
	"context"

	"github.com/rakaarfi/vorsorge-guide-be/internal/gamification"
	"github.com/rakaarfi/vorsorge-guide-be/internal/models"
	"github.com/rakaarfi/vorsorge-guide-be/internal/store"
)

type achievementService struct {
	users        store.UserStore
	instances    store.InstanceStore
	unlocks      store.UnlockStore
	achievements []models.Achievement
}

// NewAchievementService membuat instance baru dari AchievementService.
func NewAchievementService(
	users store.UserStore,
	instances store.InstanceStore,
	unlocks store.UnlockStore,
	achievements []models.Achievement,
) AchievementService {
	return &achievementService{
		users:        users,
		instances:    instances,
		unlocks:      unlocks,
		achievements: achievements,
	}
}

func (s *achievementService) Overview(ctx context.Context, userID string) (*AchievementOverview, error) {
	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	insts, err := s.instances.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	unlockRecords, err := s.unlocks.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	unlockByID := make(map[string]models.UserAchievement, len(unlockRecords))
	for _, ua := range unlockRecords {
		unlockByID[ua.AchievementID] = ua
	}

	overview := &AchievementOverview{
		Unlocked: []UnlockedAchievementView{},
		Locked:   []LockedAchievementView{},
	}
	for _, a := range s.achievements {
		if ua, ok := unlockByID[a.ID]; ok {
			overview.Unlocked = append(overview.Unlocked, UnlockedAchievementView{
				Achievement: a,
				UnlockedAt:  ua.UnlockedAt,
				Notified:    ua.Notified,
			})
			overview.AchievementPoints += a.Points
			continue
		}
		// Hidden achievement tidak dibocorkan sebelum terbuka.
		if a.Hidden {
			continue
		}
		overview.Locked = append(overview.Locked, LockedAchievementView{
			Achievement: a,
			Progress:    gamification.AchievementProgress(a, user, insts),
		})
	}
	return overview, nil
}

func (s *achievementService) AcknowledgeUnlocks(ctx context.Context, userID string) (int, error) {
	if _, err := s.users.GetUser(ctx, userID); err != nil {
		return 0, err
	}
	unlockRecords, err := s.unlocks.ListByUser(ctx, userID)
	if err != nil {
		return 0, err
	}

	acknowledged := 0
	for _, ua := range unlockRecords {
		if ua.Notified {
			continue
		}
		if err := s.unlocks.MarkNotified(ctx, ua.ID); err != nil {
			return acknowledged, err
		}
		acknowledged++
	}
	return acknowledged, nil
}
