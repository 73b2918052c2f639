// internal/store/instance_store.go
package store

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	zlog "github.com/rs/zerolog/log"

	"github.com/rakaarfi/vorsorge-guide-be/internal/gamification"
	"github.com/rakaarfi/vorsorge-guide-be/internal/models"
)

type instanceStore struct {
	mu        sync.Mutex
	instances map[string]models.UserTaskInstance
}

// NewInstanceStore membuat instance baru dari InstanceStore (in-memory).
func NewInstanceStore() InstanceStore {
	return &instanceStore{instances: make(map[string]models.UserTaskInstance)}
}

func cloneInstance(inst models.UserTaskInstance) models.UserTaskInstance {
	out := inst
	if inst.LastCompleted != nil {
		t := *inst.LastCompleted
		out.LastCompleted = &t
	}
	if inst.SnoozedUntil != nil {
		t := *inst.SnoozedUntil
		out.SnoozedUntil = &t
	}
	if inst.CompletionHistory != nil {
		out.CompletionHistory = make([]models.TaskCompletion, len(inst.CompletionHistory))
		copy(out.CompletionHistory, inst.CompletionHistory)
	}
	return out
}

func (s *instanceStore) InitializeForUser(ctx context.Context, userID string, templates []models.TaskTemplate, now time.Time) ([]models.UserTaskInstance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Buang instance lama milik user agar inisialisasi ulang bersih.
	for id, inst := range s.instances {
		if inst.UserID == userID {
			delete(s.instances, id)
		}
	}

	created := make([]models.UserTaskInstance, 0, len(templates))
	for _, tpl := range templates {
		inst := models.UserTaskInstance{
			ID:                uuid.NewString(),
			UserID:            userID,
			TaskID:            tpl.ID,
			NextDue:           gamification.StartOfDay(now),
			CompletionHistory: []models.TaskCompletion{},
			Status:            models.TaskStatusActive,
		}
		s.instances[inst.ID] = inst
		created = append(created, cloneInstance(inst))
	}
	sort.Slice(created, func(i, j int) bool { return created[i].TaskID < created[j].TaskID })

	zlog.Info().Str("user_id", userID).Int("count", len(created)).Msg("Task instances initialized for user")
	return created, nil
}

func (s *instanceStore) GetInstance(ctx context.Context, id string) (*models.UserTaskInstance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	inst, ok := s.instances[id]
	if !ok {
		return nil, fmt.Errorf("getting task instance %s: %w", id, ErrInstanceNotFound)
	}
	out := cloneInstance(inst)
	return &out, nil
}

func (s *instanceStore) ListByUser(ctx context.Context, userID string) ([]models.UserTaskInstance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.UserTaskInstance, 0)
	for _, inst := range s.instances {
		if inst.UserID == userID {
			out = append(out, cloneInstance(inst))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TaskID < out[j].TaskID })
	return out, nil
}

func (s *instanceStore) ApplyCompletion(ctx context.Context, id string, completion models.TaskCompletion, nextDue time.Time, streakCount int) (*models.UserTaskInstance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	inst, ok := s.instances[id]
	if !ok {
		return nil, fmt.Errorf("completing task instance %s: %w", id, ErrInstanceNotFound)
	}

	completedAt := completion.CompletedAt
	inst.LastCompleted = &completedAt
	inst.CompletionHistory = append(inst.CompletionHistory, completion)
	inst.NextDue = nextDue
	inst.StreakCount = streakCount
	// Penyelesaian mengakhiri snooze yang sedang aktif.
	inst.SnoozedUntil = nil
	s.instances[id] = inst

	zlog.Debug().Str("instance_id", id).Str("task_id", inst.TaskID).
		Int("points", completion.PointsEarned).Time("next_due", nextDue).
		Msg("Completion applied")
	out := cloneInstance(inst)
	return &out, nil
}

func (s *instanceStore) UndoCompletion(ctx context.Context, id string, restoredNextDue time.Time) (*models.UserTaskInstance, *models.TaskCompletion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	inst, ok := s.instances[id]
	if !ok {
		return nil, nil, fmt.Errorf("undoing completion on instance %s: %w", id, ErrInstanceNotFound)
	}
	if len(inst.CompletionHistory) == 0 {
		return nil, nil, fmt.Errorf("undoing completion on instance %s: %w", id, ErrNoCompletions)
	}

	last := inst.CompletionHistory[len(inst.CompletionHistory)-1]
	inst.CompletionHistory = inst.CompletionHistory[:len(inst.CompletionHistory)-1]
	if n := len(inst.CompletionHistory); n > 0 {
		prev := inst.CompletionHistory[n-1].CompletedAt
		inst.LastCompleted = &prev
	} else {
		inst.LastCompleted = nil
	}
	inst.NextDue = restoredNextDue
	if inst.StreakCount > 0 {
		inst.StreakCount--
	}
	s.instances[id] = inst

	zlog.Debug().Str("instance_id", id).Str("task_id", inst.TaskID).
		Int("points_reverted", last.PointsEarned).Msg("Completion undone")
	out := cloneInstance(inst)
	popped := last
	return &out, &popped, nil
}

func (s *instanceStore) Snooze(ctx context.Context, id string, until time.Time) (*models.UserTaskInstance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	inst, ok := s.instances[id]
	if !ok {
		return nil, fmt.Errorf("snoozing task instance %s: %w", id, ErrInstanceNotFound)
	}
	inst.SnoozedUntil = &until
	s.instances[id] = inst

	out := cloneInstance(inst)
	return &out, nil
}

func (s *instanceStore) SetStatus(ctx context.Context, id string, status models.TaskStatus) (*models.UserTaskInstance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	inst, ok := s.instances[id]
	if !ok {
		return nil, fmt.Errorf("setting status on instance %s: %w", id, ErrInstanceNotFound)
	}
	inst.Status = status
	s.instances[id] = inst

	out := cloneInstance(inst)
	return &out, nil
}

func (s *instanceStore) UpdateNotes(ctx context.Context, id string, notes string) (*models.UserTaskInstance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	inst, ok := s.instances[id]
	if !ok {
		return nil, fmt.Errorf("updating notes on instance %s: %w", id, ErrInstanceNotFound)
	}
	inst.Notes = notes
	s.instances[id] = inst

	out := cloneInstance(inst)
	return &out, nil
}
