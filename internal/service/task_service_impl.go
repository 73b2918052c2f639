// internal/service/task_service_impl.go
package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	zlog "github.com/rs/zerolog/log"

	"github.com/rakaarfi/vorsorge-guide-be/internal/gamification"
	"github.com/rakaarfi/vorsorge-guide-be/internal/models"
	"github.com/rakaarfi/vorsorge-guide-be/internal/store"
)

type taskService struct {
	users        store.UserStore
	instances    store.InstanceStore
	unlocks      store.UnlockStore
	templates    []models.TaskTemplate
	templateByID map[string]models.TaskTemplate
	achievements []models.Achievement
	now          func() time.Time
}

// NewTaskService membuat instance baru dari TaskService. Katalog template dan
// achievement di-inject agar logika bisa diuji dengan katalog kecil; nowFn nil
// berarti pakai time.Now.
func NewTaskService(
	users store.UserStore,
	instances store.InstanceStore,
	unlocks store.UnlockStore,
	templates []models.TaskTemplate,
	achievements []models.Achievement,
	nowFn func() time.Time,
) TaskService {
	if nowFn == nil {
		nowFn = time.Now
	}
	byID := make(map[string]models.TaskTemplate, len(templates))
	for _, tpl := range templates {
		byID[tpl.ID] = tpl
	}
	return &taskService{
		users:        users,
		instances:    instances,
		unlocks:      unlocks,
		templates:    templates,
		templateByID: byID,
		achievements: achievements,
		now:          nowFn,
	}
}

func (s *taskService) view(inst models.UserTaskInstance, tpl models.TaskTemplate, now time.Time) TaskView {
	return TaskView{
		Instance:       inst,
		Template:       tpl,
		State:          gamification.InstanceState(&inst, now),
		DaysUntilDue:   gamification.DaysUntilDue(inst.NextDue, now),
		StreakInDanger: gamification.IsStreakInDanger(inst.LastCompleted, tpl.Frequency, now),
	}
}

// ownedInstance mengambil instance dan memastikan miliknya userID.
// Instance milik pengguna lain dilaporkan sebagai tidak ditemukan.
func (s *taskService) ownedInstance(ctx context.Context, userID, instanceID string) (*models.UserTaskInstance, *models.TaskTemplate, error) {
	inst, err := s.instances.GetInstance(ctx, instanceID)
	if err != nil {
		return nil, nil, err
	}
	if inst.UserID != userID {
		return nil, nil, fmt.Errorf("getting task instance %s: %w", instanceID, store.ErrInstanceNotFound)
	}
	tpl, ok := s.templateByID[inst.TaskID]
	if !ok {
		zlog.Error().Str("instance_id", instanceID).Str("task_id", inst.TaskID).
			Msg("Instance references unknown task template")
		return nil, nil, fmt.Errorf("resolving task %s: %w", inst.TaskID, ErrTemplateNotFound)
	}
	return inst, &tpl, nil
}

func (s *taskService) InitializeTasks(ctx context.Context, userID string) ([]TaskView, error) {
	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	now := s.now()

	// Katalog disaring usia/gender lalu diurutkan prioritas sebelum jadi instance.
	selected := gamification.PrioritizeTasks(gamification.FilterTasksForUser(s.templates, user), user)
	created, err := s.instances.InitializeForUser(ctx, userID, selected, now)
	if err != nil {
		return nil, err
	}

	views := make([]TaskView, 0, len(created))
	for _, inst := range created {
		tpl := s.templateByID[inst.TaskID]
		views = append(views, s.view(inst, tpl, now))
	}
	return views, nil
}

func (s *taskService) ListTasks(ctx context.Context, userID string, filter TaskListFilter) ([]TaskView, int, error) {
	if _, err := s.users.GetUser(ctx, userID); err != nil {
		return nil, 0, err
	}
	insts, err := s.instances.ListByUser(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	now := s.now()

	views := make([]TaskView, 0, len(insts))
	for _, inst := range insts {
		tpl, ok := s.templateByID[inst.TaskID]
		if !ok {
			zlog.Warn().Str("task_id", inst.TaskID).Msg("Skipping instance with unknown template")
			continue
		}
		v := s.view(inst, tpl, now)
		if filter.State != "" && v.State != filter.State {
			continue
		}
		if filter.Category != "" && tpl.Category != filter.Category {
			continue
		}
		if filter.Search != "" &&
			!strings.Contains(strings.ToLower(tpl.Title), strings.ToLower(filter.Search)) {
			continue
		}
		views = append(views, v)
	}

	// Urutan tampil: paling mendesak dulu, lalu prioritas template.
	sort.SliceStable(views, func(i, j int) bool {
		if views[i].DaysUntilDue != views[j].DaysUntilDue {
			return views[i].DaysUntilDue < views[j].DaysUntilDue
		}
		return views[i].Template.Priority.Rank() < views[j].Template.Priority.Rank()
	})

	total := len(views)
	if filter.Limit > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		start := (page - 1) * filter.Limit
		if start >= total {
			return []TaskView{}, total, nil
		}
		end := start + filter.Limit
		if end > total {
			end = total
		}
		views = views[start:end]
	}
	return views, total, nil
}

func (s *taskService) GetTask(ctx context.Context, userID, instanceID string) (*TaskView, error) {
	inst, tpl, err := s.ownedInstance(ctx, userID, instanceID)
	if err != nil {
		return nil, err
	}
	v := s.view(*inst, *tpl, s.now())
	return &v, nil
}

func (s *taskService) CompleteTask(ctx context.Context, userID, instanceID string, input *models.CompleteTaskInput) (*CompletionResult, error) {
	inst, tpl, err := s.ownedInstance(ctx, userID, instanceID)
	if err != nil {
		return nil, err
	}
	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if input == nil {
		input = &models.CompleteTaskInput{}
	}
	now := s.now()
	levelBefore := user.Level

	// 1. Poin: basis template + bonus streak (tier tertinggi) + bonus early.
	points := gamification.CalculateTaskPoints(tpl.Points, user.CurrentStreak, input.IsEarly)

	// 2. Streak instance dihitung dari riwayat termasuk completion baru.
	completion := models.TaskCompletion{
		CompletedAt:  now,
		PointsEarned: points.Total,
		Notes:        input.Notes,
	}
	newHistory := append(append([]models.TaskCompletion{}, inst.CompletionHistory...), completion)
	instStreak := gamification.CalculateStreak(newHistory, tpl.Frequency, now)

	// 3. Jadwal bergeser dari sekarang, bukan dari due lama: task yang
	// overdue tidak langsung jatuh tempo lagi besoknya.
	nextDue := gamification.NextDueDate(tpl.Frequency, now, tpl.FrequencyValue)

	if _, err := s.instances.ApplyCompletion(ctx, instanceID, completion, nextDue, instStreak); err != nil {
		return nil, err
	}

	// 4. Streak harian pengguna: lanjut bila aktivitas terakhir kemarin,
	// tetap bila sudah aktif hari ini, selain itu mulai dari 1.
	userStreak := 1
	if !user.LastActiveDate.IsZero() {
		switch gamification.DaysBetween(now, user.LastActiveDate) {
		case 0:
			userStreak = user.CurrentStreak
			if userStreak < 1 {
				userStreak = 1
			}
		case 1:
			userStreak = user.CurrentStreak + 1
		}
	}
	updated, err := s.users.UpdateStreak(ctx, userID, userStreak)
	if err != nil {
		return nil, err
	}

	updated, err = s.users.AddPoints(ctx, userID, points.Total)
	if err != nil {
		return nil, err
	}
	updated.LastActiveDate = now
	if err := s.users.UpdateUser(ctx, updated); err != nil {
		return nil, err
	}

	// 5. Re-check achievement dengan state terbaru; poin achievement hanya
	// diberikan saat unlock benar-benar baru tercatat.
	newlyUnlocked, err := s.evaluateUnlocks(ctx, updated, now)
	if err != nil {
		return nil, err
	}
	if len(newlyUnlocked) > 0 {
		bonus := 0
		for _, a := range newlyUnlocked {
			bonus += a.Points
		}
		if updated, err = s.users.AddPoints(ctx, userID, bonus); err != nil {
			return nil, err
		}
	}

	zlog.Info().Str("user_id", userID).Str("task_id", tpl.ID).
		Int("points", points.Total).Int("streak", userStreak).
		Int("unlocked", len(newlyUnlocked)).
		Msg("Task completed")

	return &CompletionResult{
		Points:               points.Total,
		BonusPoints:          points.Bonus,
		Breakdown:            points.Breakdown,
		NewLevel:             updated.Level,
		LeveledUp:            updated.Level > levelBefore,
		NewStreak:            updated.CurrentStreak,
		UnlockedAchievements: newlyUnlocked,
	}, nil
}

// evaluateUnlocks mengevaluasi katalog achievement terhadap state pengguna
// sekarang dan mencatat unlock yang baru. Store yang menjaga idempotensi.
func (s *taskService) evaluateUnlocks(ctx context.Context, user *models.User, now time.Time) ([]models.Achievement, error) {
	insts, err := s.instances.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	existing, err := s.unlocks.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	candidates := gamification.NewlyUnlocked(s.achievements, user, insts, existing)
	unlocked := make([]models.Achievement, 0, len(candidates))
	for _, a := range candidates {
		created, err := s.unlocks.Add(ctx, &models.UserAchievement{
			ID:            uuid.NewString(),
			UserID:        user.ID,
			AchievementID: a.ID,
			UnlockedAt:    now,
		})
		if err != nil {
			return nil, err
		}
		if created {
			unlocked = append(unlocked, a)
		}
	}
	return unlocked, nil
}

func (s *taskService) UndoCompletion(ctx context.Context, userID, instanceID string) (*TaskView, error) {
	inst, tpl, err := s.ownedInstance(ctx, userID, instanceID)
	if err != nil {
		return nil, err
	}
	now := s.now()

	// NextDue dikembalikan seolah completion terakhir tidak pernah terjadi:
	// diturunkan dari completion sebelumnya, atau due hari ini bila riwayat habis.
	restoredNextDue := gamification.StartOfDay(now)
	if n := len(inst.CompletionHistory); n >= 2 {
		prev := inst.CompletionHistory[n-2].CompletedAt
		restoredNextDue = gamification.NextDueDate(tpl.Frequency, prev, tpl.FrequencyValue)
	}

	updatedInst, popped, err := s.instances.UndoCompletion(ctx, instanceID, restoredNextDue)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if _, err := s.users.AddPoints(ctx, userID, -popped.PointsEarned); err != nil {
		return nil, err
	}
	if _, err := s.users.UpdateStreak(ctx, userID, user.CurrentStreak-1); err != nil {
		return nil, err
	}

	zlog.Info().Str("user_id", userID).Str("task_id", tpl.ID).
		Int("points_reverted", popped.PointsEarned).Msg("Completion undone")

	v := s.view(*updatedInst, *tpl, now)
	return &v, nil
}

func (s *taskService) SnoozeTask(ctx context.Context, userID, instanceID string, days int) (*TaskView, error) {
	_, tpl, err := s.ownedInstance(ctx, userID, instanceID)
	if err != nil {
		return nil, err
	}
	now := s.now()
	until := gamification.StartOfDay(now).AddDate(0, 0, days)

	updated, err := s.instances.Snooze(ctx, instanceID, until)
	if err != nil {
		return nil, err
	}
	v := s.view(*updated, *tpl, now)
	return &v, nil
}

func (s *taskService) SetStatus(ctx context.Context, userID, instanceID string, status models.TaskStatus) (*TaskView, error) {
	_, tpl, err := s.ownedInstance(ctx, userID, instanceID)
	if err != nil {
		return nil, err
	}
	updated, err := s.instances.SetStatus(ctx, instanceID, status)
	if err != nil {
		return nil, err
	}
	v := s.view(*updated, *tpl, s.now())
	return &v, nil
}

func (s *taskService) UpdateNotes(ctx context.Context, userID, instanceID, notes string) (*TaskView, error) {
	_, tpl, err := s.ownedInstance(ctx, userID, instanceID)
	if err != nil {
		return nil, err
	}
	updated, err := s.instances.UpdateNotes(ctx, instanceID, notes)
	if err != nil {
		return nil, err
	}
	v := s.view(*updated, *tpl, s.now())
	return &v, nil
}
