package engine

import (
	"context"
	"fmt"
)

// LogLearningSession awards study time at 20 XP per hour to any area.
func (s *Service) LogLearningSession(ctx context.Context, area string, hours float64, topic string) (*XPResult, error) {
	xp := int(hours * LearningXPPerHour)
	return s.AddXP(ctx, area, xp, fmt.Sprintf("%.1fh on %s", hours, topic))
}

// LogMemoryPractice awards 1 XP per 5 minutes to the memory techniques area.
func (s *Service) LogMemoryPractice(ctx context.Context, minutes int, technique string) (*XPResult, error) {
	xp := minutes / MemoryMinutesPerXP
	return s.AddXP(ctx, AreaMemory, xp, fmt.Sprintf("%dmin - %s", minutes, technique))
}

// AdjustXP is the manual escape hatch; negative deltas subtract.
func (s *Service) AdjustXP(ctx context.Context, area string, delta int, reason string) (*XPResult, error) {
	return s.AddXP(ctx, area, delta, reason)
}

// SetIncomeOverride replaces this month's earnings with a manually corrected
// amount and remembers the override.
func (s *Service) SetIncomeOverride(ctx context.Context, amount int) error {
	s.profile.Income.CurrentMonthEarnings = amount
	s.profile.Income.ManualOverride = &amount
	return s.save(ctx)
}
