package engine

import (
	"context"

	"github.com/girgvliani/usefulAPP/internal/storage"
)

var gradeThresholds = []struct {
	min   int
	grade string
}{
	{95, "SSS"},
	{90, "SS"},
	{85, "S"},
	{80, "A+"},
	{75, "A"},
	{70, "A-"},
	{60, "B"},
	{50, "C"},
	{40, "D"},
}

// GradeFor converts a 0-100 score into a letter grade.
func GradeFor(score int) string {
	for _, t := range gradeThresholds {
		if score >= t.min {
			return t.grade
		}
	}
	return "F"
}

// DailyScoreOf is the pure daily-performance derivation: shower today +20,
// workout today +20, up to 30 for todos completed today, +15 for screen time
// logged within the limit, +15 for a weekly social count within bounds.
// Display layers use this too, so their numbers always match the engine's.
func DailyScoreOf(p *storage.Profile, today string) (int, string) {
	score := 0

	if d := p.Habits.Shower.LastDone; d != nil && *d == today {
		score += 20
	}
	if d := p.Habits.Workout.LastDone; d != nil && *d == today {
		score += 20
	}

	completedToday := 0
	for _, t := range p.Todos {
		if t.CompletionDate != nil && *t.CompletionDate == today {
			completedToday++
		}
	}
	score += min(completedToday*10, 30)

	if hours, ok := p.ScreenTime.DailyLog[today]; ok && hours <= ScreenTimeLimit {
		score += 15
	}
	if p.Social.WeeklyCount <= SocialLimit {
		score += 15
	}

	return score, GradeFor(score)
}

// CalculateDailyScore derives today's score for the owned profile.
func (s *Service) CalculateDailyScore() (int, string) {
	return DailyScoreOf(s.profile, s.today())
}

// DailySummary appends today's (date, score, grade) record and persists.
// There is no dedup: running the summary twice in one day appends two rows.
func (s *Service) DailySummary(ctx context.Context) (*storage.DailyScore, error) {
	score, grade := s.CalculateDailyScore()
	rec := storage.DailyScore{Date: s.today(), Score: score, Grade: grade}
	s.profile.DailyScores = append(s.profile.DailyScores, rec)
	if err := s.save(ctx); err != nil {
		return nil, err
	}
	return &rec, nil
}
