// internal/service/risk_service_impl.go
package service

import (
	"context"
	"sort"

	"github.com/rakaarfi/vorsorge-guide-be/internal/gamification"
	"github.com/rakaarfi/vorsorge-guide-be/internal/models"
	"github.com/rakaarfi/vorsorge-guide-be/internal/store"
)

type riskService struct {
	users      store.UserStore
	instances  store.InstanceStore
	risks      []models.HealthRisk
	reductions map[string][]models.RiskReduction
	templates  map[string]models.TaskTemplate
}

// NewRiskService membuat instance baru dari RiskService.
func NewRiskService(
	users store.UserStore,
	instances store.InstanceStore,
	risks []models.HealthRisk,
	reductions map[string][]models.RiskReduction,
	templates []models.TaskTemplate,
) RiskService {
	byID := make(map[string]models.TaskTemplate, len(templates))
	for _, tpl := range templates {
		byID[tpl.ID] = tpl
	}
	return &riskService{
		users:      users,
		instances:  instances,
		risks:      risks,
		reductions: reductions,
		templates:  byID,
	}
}

func (s *riskService) Profile(ctx context.Context, userID string) ([]RiskEntry, error) {
	if _, err := s.users.GetUser(ctx, userID); err != nil {
		return nil, err
	}
	insts, err := s.instances.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Satu entri task ID per completion: pengulangan memang dihitung lagi.
	var completedTaskIDs []string
	completionCount := make(map[string]int)
	for _, inst := range insts {
		for range inst.CompletionHistory {
			completedTaskIDs = append(completedTaskIDs, inst.TaskID)
			completionCount[inst.TaskID]++
		}
	}

	profile := gamification.RiskProfile(s.risks, s.reductions, completedTaskIDs, nil)

	entries := make([]RiskEntry, 0, len(s.risks))
	for _, risk := range s.risks {
		status := profile[risk.ID]
		var contributions []RiskContribution
		for taskID, count := range completionCount {
			for _, red := range s.reductions[taskID] {
				if red.RiskType != risk.ID {
					continue
				}
				title := taskID
				if tpl, ok := s.templates[taskID]; ok {
					title = tpl.Title
				}
				contributions = append(contributions, RiskContribution{
					TaskID:           taskID,
					Title:            title,
					Completions:      count,
					ReductionPercent: red.ReductionPercent * float64(count),
					Explanation:      red.Explanation,
				})
			}
		}
		sort.Slice(contributions, func(i, j int) bool {
			if contributions[i].ReductionPercent != contributions[j].ReductionPercent {
				return contributions[i].ReductionPercent > contributions[j].ReductionPercent
			}
			return contributions[i].TaskID < contributions[j].TaskID
		})
		entries = append(entries, RiskEntry{Risk: risk, Status: status, Contributions: contributions})
	}

	// Risiko tertinggi dulu, katalog sebagai tiebreaker stabil.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Status.CurrentRisk > entries[j].Status.CurrentRisk
	})
	return entries, nil
}
