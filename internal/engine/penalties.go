package engine

import "context"

// applyAreaPenalty subtracts total/len(areas) from every area, floored at 0
// per area. The integer-division remainder is dropped, not redistributed.
// Penalties bypass addXP: no last-active bump, no achievement checks.
func (s *Service) applyAreaPenalty(total int) int {
	per := total / len(s.profile.LifeAreas)
	for _, name := range s.areaNames() {
		a := s.profile.LifeAreas[name]
		a.XP = max(0, a.XP-per)
		a.Level = CalculateLevel(a.XP)
	}
	return per
}

type ScreenTimeResult struct {
	Hours    float64
	Limit    float64
	Exceeded bool
	Penalty  int
	PerArea  int
}

// TrackScreenTime logs today's hours (overwriting an earlier entry) and, past
// the daily limit, applies an across-the-board penalty.
func (s *Service) TrackScreenTime(ctx context.Context, hours float64) (*ScreenTimeResult, error) {
	today := s.today()
	s.profile.ScreenTime.DailyLog[today] = hours

	res := &ScreenTimeResult{Hours: hours, Limit: ScreenTimeLimit}
	if hours > ScreenTimeLimit {
		res.Exceeded = true
		res.Penalty = int((hours - ScreenTimeLimit) * 10)
		res.PerArea = s.applyAreaPenalty(res.Penalty)
	}

	if err := s.save(ctx); err != nil {
		return nil, err
	}
	return res, nil
}

type SocialResult struct {
	WeeklyCount int
	Limit       int
	WeekReset   bool
	Exceeded    bool
	Penalty     int
	PerArea     int
	Award       *XPResult // set when within the limit
}

// LogSocialInteraction counts one interaction against the weekly limit. The
// counter re-anchors to today once the anchor is 7 or more days old.
func (s *Service) LogSocialInteraction(ctx context.Context) (*SocialResult, error) {
	today := s.today()
	soc := &s.profile.Social

	res := &SocialResult{Limit: SocialLimit}
	if days, err := DaysBetween(soc.WeekStart, today); err != nil || days >= 7 {
		soc.WeeklyCount = 0
		soc.WeekStart = today
		res.WeekReset = true
	}

	soc.WeeklyCount++
	res.WeeklyCount = soc.WeeklyCount

	if soc.WeeklyCount > SocialLimit {
		res.Exceeded = true
		res.Penalty = (soc.WeeklyCount - SocialLimit) * 20
		res.PerArea = s.applyAreaPenalty(res.Penalty)
	} else {
		award, err := s.addXP(AreaSocialBalance, SocialXP, "Balanced interaction")
		if err != nil {
			return nil, err
		}
		res.Award = award
	}

	if err := s.save(ctx); err != nil {
		return nil, err
	}
	return res, nil
}
