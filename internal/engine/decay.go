package engine

import "context"

// DecayResult reports construction-time decay. AmountPerArea is the same flat
// amount for every area (floored at 0 individually).
type DecayResult struct {
	DaysPassed    int
	AmountPerArea int
}

// applyDailyDecay runs once per calendar-day transition, at load. The diff is
// calendar days between last_login and today, not elapsed hours.
func (s *Service) applyDailyDecay(ctx context.Context) (*DecayResult, error) {
	today := s.today()
	if s.profile.LastLogin == today {
		return nil, nil
	}

	days, err := DaysBetween(s.profile.LastLogin, today)
	if err != nil {
		return nil, err
	}
	if days <= 0 {
		return nil, nil
	}

	amount := DailyDecay * days
	for _, name := range s.areaNames() {
		a := s.profile.LifeAreas[name]
		a.XP = max(0, a.XP-amount)
		a.Level = CalculateLevel(a.XP)
	}
	s.profile.LastLogin = today

	if err := s.save(ctx); err != nil {
		return nil, err
	}
	return &DecayResult{DaysPassed: days, AmountPerArea: amount}, nil
}
