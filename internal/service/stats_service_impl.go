// internal/service/stats_service_impl.go
package service

import (
	"context"
	"time"

	"github.com/rakaarfi/vorsorge-guide-be/internal/gamification"
	"github.com/rakaarfi/vorsorge-guide-be/internal/models"
	"github.com/rakaarfi/vorsorge-guide-be/internal/store"
)

const statsDateLayout = "2006-01-02"

type statsService struct {
	users     store.UserStore
	instances store.InstanceStore
	templates map[string]models.TaskTemplate
	now       func() time.Time
}

// NewStatsService membuat instance baru dari StatsService.
func NewStatsService(
	users store.UserStore,
	instances store.InstanceStore,
	templates []models.TaskTemplate,
	nowFn func() time.Time,
) StatsService {
	if nowFn == nil {
		nowFn = time.Now
	}
	byID := make(map[string]models.TaskTemplate, len(templates))
	for _, tpl := range templates {
		byID[tpl.ID] = tpl
	}
	return &statsService{users: users, instances: instances, templates: byID, now: nowFn}
}

// completionsByDay mengelompokkan seluruh riwayat completion pengguna per
// tanggal lokal (yyyy-mm-dd).
func (s *statsService) completionsByDay(ctx context.Context, userID string) (map[string]*models.DailyStats, error) {
	if _, err := s.users.GetUser(ctx, userID); err != nil {
		return nil, err
	}
	insts, err := s.instances.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	byDay := make(map[string]*models.DailyStats)
	for _, inst := range insts {
		category := models.TaskCategory("")
		if tpl, ok := s.templates[inst.TaskID]; ok {
			category = tpl.Category
		}
		for _, c := range inst.CompletionHistory {
			key := c.CompletedAt.Format(statsDateLayout)
			day, ok := byDay[key]
			if !ok {
				day = &models.DailyStats{
					Date:           key,
					CategoryCounts: make(map[models.TaskCategory]int),
				}
				byDay[key] = day
			}
			day.TasksCompleted++
			day.PointsEarned += c.PointsEarned
			if category != "" {
				day.CategoryCounts[category]++
			}
		}
	}
	for _, day := range byDay {
		day.StreakMaintained = day.TasksCompleted > 0
	}
	return byDay, nil
}

func (s *statsService) Daily(ctx context.Context, userID string, days int) ([]models.DailyStats, error) {
	if days <= 0 {
		days = 7
	}
	byDay, err := s.completionsByDay(ctx, userID)
	if err != nil {
		return nil, err
	}

	today := gamification.StartOfDay(s.now())
	out := make([]models.DailyStats, 0, days)
	// Kronologis: hari tertua dulu, hari ini terakhir.
	for i := days - 1; i >= 0; i-- {
		date := today.AddDate(0, 0, -i)
		key := date.Format(statsDateLayout)
		if day, ok := byDay[key]; ok {
			out = append(out, *day)
			continue
		}
		out = append(out, models.DailyStats{
			Date:           key,
			CategoryCounts: map[models.TaskCategory]int{},
		})
	}
	return out, nil
}

// startOfWeek mengembalikan Senin 00:00 dari minggu yang memuat t.
func startOfWeek(t time.Time) time.Time {
	day := gamification.StartOfDay(t)
	// time.Weekday: Minggu=0; geser agar Senin jadi awal minggu.
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

func (s *statsService) Weekly(ctx context.Context, userID string, weeks int) ([]models.WeeklyStats, error) {
	if weeks <= 0 {
		weeks = 4
	}
	byDay, err := s.completionsByDay(ctx, userID)
	if err != nil {
		return nil, err
	}

	thisWeek := startOfWeek(s.now())
	out := make([]models.WeeklyStats, 0, weeks)
	for i := weeks - 1; i >= 0; i-- {
		weekStart := thisWeek.AddDate(0, 0, -7*i)
		ws := models.WeeklyStats{
			WeekStart:         weekStart.Format(statsDateLayout),
			CategoryBreakdown: map[models.TaskCategory]int{},
		}
		for d := 0; d < 7; d++ {
			key := weekStart.AddDate(0, 0, d).Format(statsDateLayout)
			day, ok := byDay[key]
			if !ok {
				continue
			}
			ws.TotalTasks += day.TasksCompleted
			ws.TotalPoints += day.PointsEarned
			for cat, n := range day.CategoryCounts {
				ws.CategoryBreakdown[cat] += n
			}
		}
		ws.AverageDaily = float64(ws.TotalTasks) / 7
		out = append(out, ws)
	}
	return out, nil
}
