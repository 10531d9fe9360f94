package engine

import (
	"fmt"
	"time"
)

const (
	// XPPerLevel is the fixed level width: level = xp/150 + 1.
	XPPerLevel = 150

	// DailyDecay is the flat XP lost per calendar day away, per area. It
	// doubles as the base XP for a completed workout.
	DailyDecay = 5

	PushupRequirement = 100
	ScreenTimeLimit   = 2.0 // hours per day
	SocialLimit       = 3   // interactions per week

	ShowerXP           = 10
	SocialXP           = 5
	LearningXPPerHour  = 20
	MemoryMinutesPerXP = 5

	DefaultMonthlyGoal = 10000
)

const dateLayout = "2006-01-02"

// CalculateLevel is the only level formula in the program. Display layers must
// use it too; a level is never stored without being re-derived from xp first.
func CalculateLevel(xp int) int {
	return xp/XPPerLevel + 1
}

// XPToNextLevel returns how much XP is missing until the next level boundary.
func XPToNextLevel(xp int) int {
	return XPPerLevel - xp%XPPerLevel
}

// CalculateTimeMultiplier scales task XP by how a completion date compares to
// the deadline: on time or early 1.5x, up to a week late 1.0x, later 0.5x.
func CalculateTimeMultiplier(deadline, completed string) (float64, error) {
	days, err := DaysBetween(deadline, completed)
	if err != nil {
		return 0, err
	}
	switch {
	case days <= 0:
		return 1.5, nil
	case days <= 7:
		return 1.0, nil
	default:
		return 0.5, nil
	}
}

// ParseDay parses a YYYY-MM-DD calendar date.
func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return t, nil
}

// DaysBetween returns to-from in whole calendar days. Both arguments are
// day-granular, so the difference is exact.
func DaysBetween(from, to string) (int, error) {
	f, err := ParseDay(from)
	if err != nil {
		return 0, err
	}
	t, err := ParseDay(to)
	if err != nil {
		return 0, err
	}
	return int(t.Sub(f).Hours() / 24), nil
}
