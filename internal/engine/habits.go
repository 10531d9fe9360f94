package engine

import (
	"context"
	"fmt"

	"github.com/girgvliani/usefulAPP/internal/storage"
)

// updateStreak applies the calendar-day streak rule and records the completion
// date: gap of exactly 1 day continues the streak, a longer gap resets it to 1,
// a same-day repeat changes nothing but the (unchanged) date.
func updateStreak(h *storage.Habit, today string) {
	if h.LastDone == nil {
		h.Streak = 1
		h.LastDone = &today
		return
	}
	days, err := DaysBetween(*h.LastDone, today)
	switch {
	case err != nil:
		h.Streak = 1
	case days == 1:
		h.Streak++
	case days > 1:
		h.Streak = 1
	}
	h.LastDone = &today
}

type PushupResult struct {
	Count            int
	Streak           int
	MetRequirement   bool
	BaseXP           int
	Bonus            int
	ConsistencyBonus int
	Award            *XPResult // nil when the requirement was missed
}

// TrackPushups records a workout. The streak and history update before the
// requirement check: a session below the requirement earns no XP but still
// counts as an attempt.
func (s *Service) TrackPushups(ctx context.Context, count int) (*PushupResult, error) {
	today := s.today()
	h := s.profile.Habits.Workout

	updateStreak(h, today)
	h.PushupHistory = append(h.PushupHistory, storage.PushupRecord{Date: today, Count: count})

	res := &PushupResult{Count: count, Streak: h.Streak}
	if count >= PushupRequirement {
		res.MetRequirement = true
		res.BaseXP = DailyDecay
		xp := res.BaseXP
		if count > PushupRequirement {
			res.Bonus = min((count-PushupRequirement)/10, 10)
			xp += res.Bonus
		}
		if h.Streak >= 7 {
			res.ConsistencyBonus = h.Streak / 7 * 5
			xp += res.ConsistencyBonus
		}
		award, err := s.addXP(AreaExercise, xp, fmt.Sprintf("%d push-ups", count))
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

type ShowerResult struct {
	Streak int
	Award  *XPResult
}

// CheckShower marks the daily shower done. A second call on the same date is
// rejected without touching anything.
func (s *Service) CheckShower(ctx context.Context) (*ShowerResult, error) {
	today := s.today()
	h := s.profile.Habits.Shower
	if h.LastDone != nil && *h.LastDone == today {
		return nil, AlreadyDoneError{Kind: "shower", Key: today}
	}

	updateStreak(h, today)
	award, err := s.addXP(AreaHygiene, ShowerXP, "Daily shower")
	if err != nil {
		return nil, err
	}
	if err := s.save(ctx); err != nil {
		return nil, err
	}
	return &ShowerResult{Streak: h.Streak, Award: award}, nil
}

type SleepResult struct {
	Hours   float64
	Quality string
	Award   *XPResult
}

// LogSleep awards a flat tiered amount: 7-8h optimal, anything at 6h or above
// (including oversleeping) decent, less than 6h short. Always succeeds.
func (s *Service) LogSleep(ctx context.Context, hours float64) (*SleepResult, error) {
	var xp int
	var quality string
	switch {
	case hours >= 7 && hours <= 8:
		xp, quality = 20, "Optimal sleep!"
	case hours >= 6:
		xp, quality = 10, "Decent sleep"
	default:
		xp, quality = 5, "Need more sleep!"
	}

	award, err := s.addXP(AreaSleep, xp, fmt.Sprintf("%.1fh - %s", hours, quality))
	if err != nil {
		return nil, err
	}
	if err := s.save(ctx); err != nil {
		return nil, err
	}
	return &SleepResult{Hours: hours, Quality: quality, Award: award}, nil
}
