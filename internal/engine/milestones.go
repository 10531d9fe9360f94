package engine

import (
	"context"

	"github.com/girgvliani/usefulAPP/internal/storage"
)

type MilestoneResult struct {
	Key       string
	Milestone *storage.Milestone
	PerArea   int
	Awards    []*XPResult
}

// CompleteEpicMilestone marks a milestone terminal and spreads its reward
// evenly across every life area (integer division, remainder dropped).
func (s *Service) CompleteEpicMilestone(ctx context.Context, key string) (*MilestoneResult, error) {
	m, ok := s.profile.Milestones[key]
	if !ok {
		return nil, NotFoundError{Kind: "milestone", Key: key}
	}
	if m.Completed {
		return nil, AlreadyDoneError{Kind: "milestone", Key: key}
	}

	m.Completed = true
	res := &MilestoneResult{Key: key, Milestone: m}
	res.PerArea = m.XPReward / len(s.profile.LifeAreas)
	for _, name := range s.areaNames() {
		award, err := s.addXP(name, res.PerArea, "EPIC MILESTONE")
		if err != nil {
			return nil, err
		}
		res.Awards = append(res.Awards, award)
	}

	if err := s.save(ctx); err != nil {
		return nil, err
	}
	return res, nil
}
