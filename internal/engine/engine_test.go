package engine

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/girgvliani/usefulAPP/internal/storage"
)

func clockAt(day string) func() time.Time {
	t, err := time.Parse("2006-01-02", day)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return t }
}

func newTestService(t *testing.T, day string) (*Service, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	return reopenService(t, path, day), path
}

func reopenService(t *testing.T, path, day string) *Service {
	t.Helper()
	ctx := context.Background()

	db, err := storage.Open(ctx, path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	svc, err := NewService(ctx, storage.NewProfileStore(db), Options{Clock: clockAt(day)})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func TestCalculateLevelBoundaries(t *testing.T) {
	cases := []struct {
		xp, level int
	}{
		{0, 1}, {149, 1}, {150, 2}, {299, 2}, {300, 3}, {749, 5}, {750, 6},
	}
	for _, c := range cases {
		if got := CalculateLevel(c.xp); got != c.level {
			t.Fatalf("CalculateLevel(%d)=%d, want %d", c.xp, got, c.level)
		}
	}

	if got := XPToNextLevel(0); got != 150 {
		t.Fatalf("XPToNextLevel(0)=%d, want 150", got)
	}
	if got := XPToNextLevel(149); got != 1 {
		t.Fatalf("XPToNextLevel(149)=%d, want 1", got)
	}
	if got := XPToNextLevel(150); got != 150 {
		t.Fatalf("XPToNextLevel(150)=%d, want 150", got)
	}
}

func TestTimeMultiplier(t *testing.T) {
	cases := []struct {
		completed string
		want      float64
	}{
		{"2025-01-05", 1.5},
		{"2025-01-10", 1.5},
		{"2025-01-15", 1.0},
		{"2025-01-17", 1.0},
		{"2025-01-18", 0.5},
		{"2025-01-20", 0.5},
	}
	for _, c := range cases {
		got, err := CalculateTimeMultiplier("2025-01-10", c.completed)
		if err != nil {
			t.Fatalf("multiplier(%s): %v", c.completed, err)
		}
		if got != c.want {
			t.Fatalf("multiplier(%s)=%v, want %v", c.completed, got, c.want)
		}
	}

	if _, err := CalculateTimeMultiplier("not-a-date", "2025-01-10"); err == nil {
		t.Fatalf("expected error for malformed deadline")
	}
}

func TestTrackPushupsXPAndStreak(t *testing.T) {
	svc, path := newTestService(t, "2025-03-01")
	ctx := context.Background()

	// 120 reps: base 5 + overage bonus 2, streak too short for a bonus.
	res, err := svc.TrackPushups(ctx, 120)
	if err != nil {
		t.Fatalf("TrackPushups: %v", err)
	}
	if !res.MetRequirement || res.Streak != 1 {
		t.Fatalf("met=%v streak=%d, want true/1", res.MetRequirement, res.Streak)
	}
	if res.Award == nil || res.Award.Amount != 7 {
		t.Fatalf("award=%+v, want 7 XP", res.Award)
	}

	// Next day, exactly at the requirement: streak continues, no bonuses.
	svc = reopenService(t, path, "2025-03-02")
	res, err = svc.TrackPushups(ctx, 100)
	if err != nil {
		t.Fatalf("TrackPushups day 2: %v", err)
	}
	if res.Streak != 2 || res.Award == nil || res.Award.Amount != 5 {
		t.Fatalf("day 2: streak=%d award=%+v, want streak 2, 5 XP", res.Streak, res.Award)
	}

	// A failed session still counts as an attempt: streak and history advance.
	svc = reopenService(t, path, "2025-03-03")
	res, err = svc.TrackPushups(ctx, 60)
	if err != nil {
		t.Fatalf("TrackPushups day 3: %v", err)
	}
	if res.MetRequirement || res.Award != nil {
		t.Fatalf("day 3: expected no award below the requirement, got %+v", res)
	}
	if res.Streak != 3 {
		t.Fatalf("day 3: streak=%d, want 3", res.Streak)
	}
	if n := len(svc.Profile().Habits.Workout.PushupHistory); n != 3 {
		t.Fatalf("history len=%d, want 3", n)
	}

	// Two missed days reset the streak.
	svc = reopenService(t, path, "2025-03-06")
	res, err = svc.TrackPushups(ctx, 110)
	if err != nil {
		t.Fatalf("TrackPushups after gap: %v", err)
	}
	if res.Streak != 1 {
		t.Fatalf("after gap: streak=%d, want 1", res.Streak)
	}
}

func TestShowerOncePerDay(t *testing.T) {
	svc, path := newTestService(t, "2025-03-01")
	ctx := context.Background()

	res, err := svc.CheckShower(ctx)
	if err != nil {
		t.Fatalf("CheckShower: %v", err)
	}
	if res.Streak != 1 || res.Award.Amount != ShowerXP {
		t.Fatalf("shower: streak=%d xp=%d, want 1/%d", res.Streak, res.Award.Amount, ShowerXP)
	}

	var already AlreadyDoneError
	if _, err := svc.CheckShower(ctx); !errors.As(err, &already) {
		t.Fatalf("second shower: err=%v, want AlreadyDoneError", err)
	}

	svc = reopenService(t, path, "2025-03-02")
	res, err = svc.CheckShower(ctx)
	if err != nil {
		t.Fatalf("CheckShower day 2: %v", err)
	}
	if res.Streak != 2 {
		t.Fatalf("day 2: streak=%d, want 2", res.Streak)
	}
}

func TestLogSleepTiers(t *testing.T) {
	svc, _ := newTestService(t, "2025-03-01")
	ctx := context.Background()

	cases := []struct {
		hours float64
		xp    int
	}{
		{7.5, 20},
		{6.0, 10},
		{9.0, 10}, // oversleeping is only "decent", never optimal
		{4.0, 5},
	}
	for _, c := range cases {
		res, err := svc.LogSleep(ctx, c.hours)
		if err != nil {
			t.Fatalf("LogSleep(%v): %v", c.hours, err)
		}
		if res.Award.Amount != c.xp {
			t.Fatalf("LogSleep(%v)=%d XP, want %d", c.hours, res.Award.Amount, c.xp)
		}
	}
}

func TestDailyDecay(t *testing.T) {
	svc, path := newTestService(t, "2025-03-01")
	ctx := context.Background()

	if _, err := svc.AddXP(ctx, AreaExercise, 100, "seed"); err != nil {
		t.Fatalf("AddXP: %v", err)
	}

	// Same day: no decay.
	svc = reopenService(t, path, "2025-03-01")
	if svc.DecayReport() != nil {
		t.Fatalf("same-day reopen decayed: %+v", svc.DecayReport())
	}

	// Three days later: 3 x 5 flat per area, floored at zero.
	svc = reopenService(t, path, "2025-03-04")
	dec := svc.DecayReport()
	if dec == nil || dec.DaysPassed != 3 || dec.AmountPerArea != 15 {
		t.Fatalf("decay=%+v, want 3 days / 15 per area", dec)
	}
	p := svc.Profile()
	if got := p.LifeAreas[AreaExercise].XP; got != 85 {
		t.Fatalf("exercise xp=%d, want 85", got)
	}
	if got := p.LifeAreas[AreaSleep].XP; got != 0 {
		t.Fatalf("sleep xp=%d, want floor at 0", got)
	}
	if p.LastLogin != "2025-03-04" {
		t.Fatalf("last_login=%q, want 2025-03-04", p.LastLogin)
	}

	// Reopening again on the decayed day is a no-op.
	svc = reopenService(t, path, "2025-03-04")
	if svc.DecayReport() != nil {
		t.Fatalf("decay ran twice for one day")
	}
	if got := svc.Profile().LifeAreas[AreaExercise].XP; got != 85 {
		t.Fatalf("exercise xp after second reopen=%d, want 85", got)
	}
}

func TestScreenTimePenalty(t *testing.T) {
	svc, _ := newTestService(t, "2025-03-01")
	ctx := context.Background()

	if _, err := svc.AddXP(ctx, AreaExercise, 100, "seed"); err != nil {
		t.Fatalf("AddXP: %v", err)
	}

	res, err := svc.TrackScreenTime(ctx, 1.5)
	if err != nil {
		t.Fatalf("TrackScreenTime within limit: %v", err)
	}
	if res.Exceeded || res.Penalty != 0 {
		t.Fatalf("within limit: %+v", res)
	}

	// 4.5h is 2.5h over: penalty 25, split over 16 areas at 1 each.
	res, err = svc.TrackScreenTime(ctx, 4.5)
	if err != nil {
		t.Fatalf("TrackScreenTime over limit: %v", err)
	}
	if !res.Exceeded || res.Penalty != 25 || res.PerArea != 1 {
		t.Fatalf("over limit: %+v, want penalty 25 / 1 per area", res)
	}

	p := svc.Profile()
	if got := p.LifeAreas[AreaExercise].XP; got != 99 {
		t.Fatalf("exercise xp=%d, want 99", got)
	}
	if got := p.LifeAreas[AreaSleep].XP; got != 0 {
		t.Fatalf("sleep xp=%d, want floor at 0", got)
	}
	if got := p.ScreenTime.DailyLog["2025-03-01"]; got != 4.5 {
		t.Fatalf("daily log=%v, want the later entry to overwrite", got)
	}
}

func TestSocialWeeklyLimit(t *testing.T) {
	svc, path := newTestService(t, "2025-03-01")
	ctx := context.Background()

	for i := 1; i <= SocialLimit; i++ {
		res, err := svc.LogSocialInteraction(ctx)
		if err != nil {
			t.Fatalf("interaction %d: %v", i, err)
		}
		if res.Exceeded || res.Award == nil || res.Award.Amount != SocialXP {
			t.Fatalf("interaction %d: %+v, want %d XP award", i, res, SocialXP)
		}
	}

	res, err := svc.LogSocialInteraction(ctx)
	if err != nil {
		t.Fatalf("interaction 4: %v", err)
	}
	if !res.Exceeded || res.Penalty != 20 || res.Award != nil {
		t.Fatalf("interaction 4: %+v, want penalty 20 and no award", res)
	}

	// A week later the counter re-anchors to today.
	svc = reopenService(t, path, "2025-03-08")
	res, err = svc.LogSocialInteraction(ctx)
	if err != nil {
		t.Fatalf("interaction after a week: %v", err)
	}
	if !res.WeekReset || res.WeeklyCount != 1 || res.Exceeded {
		t.Fatalf("after a week: %+v, want a reset to count 1", res)
	}
	if svc.Profile().Social.WeekStart != "2025-03-08" {
		t.Fatalf("week start=%q, want 2025-03-08", svc.Profile().Social.WeekStart)
	}
}

func TestProjectCompletion(t *testing.T) {
	svc, _ := newTestService(t, "2025-03-01")
	ctx := context.Background()

	proj, err := svc.AddProject(ctx, "Client dashboard", 1000, "2025-03-01")
	if err != nil {
		t.Fatalf("AddProject: %v", err)
	}
	if proj.ID != 1 {
		t.Fatalf("project id=%d, want 1", proj.ID)
	}

	var notFound NotFoundError
	if _, err := svc.CompleteProject(ctx, 99); !errors.As(err, &notFound) {
		t.Fatalf("unknown project: err=%v, want NotFoundError", err)
	}

	// On the deadline: 1000/10 * 1.5 = 150 XP over the 4 work areas.
	res, err := svc.CompleteProject(ctx, proj.ID)
	if err != nil {
		t.Fatalf("CompleteProject: %v", err)
	}
	if res.Multiplier != 1.5 || res.XP != 150 || res.PerArea != 37 {
		t.Fatalf("result=%+v, want mult 1.5 / 150 XP / 37 per area", res)
	}
	if res.Earnings != 1000 {
		t.Fatalf("earnings=%d, want 1000", res.Earnings)
	}
	if len(res.Awards) != 4 {
		t.Fatalf("awards=%d, want one per work area", len(res.Awards))
	}
	for _, a := range res.Awards {
		if a.Amount != 37 {
			t.Fatalf("award %s=%d, want 37", a.Area, a.Amount)
		}
	}

	var already AlreadyDoneError
	if _, err := svc.CompleteProject(ctx, proj.ID); !errors.As(err, &already) {
		t.Fatalf("second completion: err=%v, want AlreadyDoneError", err)
	}
	if svc.Profile().Income.CurrentMonthEarnings != 1000 {
		t.Fatalf("earnings changed on rejected second completion")
	}
}

func TestTodoCompletion(t *testing.T) {
	svc, _ := newTestService(t, "2025-03-01")
	ctx := context.Background()

	var notFound NotFoundError
	if _, err := svc.AddTodo(ctx, "Essay", "No Such Area", 40, "2025-03-06"); !errors.As(err, &notFound) {
		t.Fatalf("unknown area: err=%v, want NotFoundError", err)
	}

	todo, err := svc.AddTodo(ctx, "Prep algorithms exam", "University - Algorithms", 40, "2025-03-06")
	if err != nil {
		t.Fatalf("AddTodo: %v", err)
	}

	// Five days early: 40 * 1.5 = 60, all to the bound area.
	res, err := svc.CompleteTodo(ctx, todo.ID)
	if err != nil {
		t.Fatalf("CompleteTodo: %v", err)
	}
	if res.Multiplier != 1.5 || res.XP != 60 {
		t.Fatalf("result=%+v, want mult 1.5 / 60 XP", res)
	}
	if got := svc.Profile().LifeAreas["University - Algorithms"].XP; got != 60 {
		t.Fatalf("area xp=%d, want 60", got)
	}
	if len(svc.PendingTodos()) != 0 {
		t.Fatalf("todo still pending after completion")
	}

	var already AlreadyDoneError
	if _, err := svc.CompleteTodo(ctx, todo.ID); !errors.As(err, &already) {
		t.Fatalf("second completion: err=%v, want AlreadyDoneError", err)
	}
}

func TestMilestoneOneShot(t *testing.T) {
	svc, _ := newTestService(t, "2025-03-01")
	ctx := context.Background()

	// 672 over 16 areas: 42 each.
	res, err := svc.CompleteEpicMilestone(ctx, "weight_goal")
	if err != nil {
		t.Fatalf("CompleteEpicMilestone: %v", err)
	}
	if res.PerArea != 42 || len(res.Awards) != 16 {
		t.Fatalf("result per=%d awards=%d, want 42/16", res.PerArea, len(res.Awards))
	}
	if got := svc.Profile().LifeAreas[AreaExercise].XP; got != 42 {
		t.Fatalf("exercise xp=%d, want 42", got)
	}

	var already AlreadyDoneError
	if _, err := svc.CompleteEpicMilestone(ctx, "weight_goal"); !errors.As(err, &already) {
		t.Fatalf("second completion: err=%v, want AlreadyDoneError", err)
	}

	var notFound NotFoundError
	if _, err := svc.CompleteEpicMilestone(ctx, "nope"); !errors.As(err, &notFound) {
		t.Fatalf("unknown milestone: err=%v, want NotFoundError", err)
	}
}

func TestDailyScoreScenario(t *testing.T) {
	svc, _ := newTestService(t, "2025-03-01")
	ctx := context.Background()

	// Shower done, no workout, two todos, screen time within limit, social
	// untouched: 20 + 0 + 20 + 15 + 15 = 70.
	if _, err := svc.CheckShower(ctx); err != nil {
		t.Fatalf("CheckShower: %v", err)
	}
	for i := 0; i < 2; i++ {
		todo, err := svc.AddTodo(ctx, "task", "Personal Sciences - Math", 10, "2025-03-05")
		if err != nil {
			t.Fatalf("AddTodo: %v", err)
		}
		if _, err := svc.CompleteTodo(ctx, todo.ID); err != nil {
			t.Fatalf("CompleteTodo: %v", err)
		}
	}
	if _, err := svc.TrackScreenTime(ctx, 1.0); err != nil {
		t.Fatalf("TrackScreenTime: %v", err)
	}

	score, grade := svc.CalculateDailyScore()
	if score != 70 || grade != "A-" {
		t.Fatalf("score=%d grade=%q, want 70 A-", score, grade)
	}

	// Summary appends without dedup: two runs, two records.
	if _, err := svc.DailySummary(ctx); err != nil {
		t.Fatalf("DailySummary: %v", err)
	}
	if _, err := svc.DailySummary(ctx); err != nil {
		t.Fatalf("DailySummary again: %v", err)
	}
	if n := len(svc.Profile().DailyScores); n != 2 {
		t.Fatalf("daily scores=%d, want 2", n)
	}
}

func TestGradeTable(t *testing.T) {
	cases := []struct {
		score int
		grade string
	}{
		{100, "SSS"}, {95, "SSS"}, {94, "SS"}, {85, "S"}, {80, "A+"},
		{75, "A"}, {70, "A-"}, {69, "B"}, {50, "C"}, {40, "D"}, {39, "F"}, {0, "F"},
	}
	for _, c := range cases {
		if got := GradeFor(c.score); got != c.grade {
			t.Fatalf("GradeFor(%d)=%q, want %q", c.score, got, c.grade)
		}
	}
}

func TestAchievementsOnLandedLevelOnly(t *testing.T) {
	svc, _ := newTestService(t, "2025-03-01")
	ctx := context.Background()

	// A jump straight past level 5 unlocks nothing.
	res, err := svc.AddXP(ctx, AreaSocialBalance, 800, "grind")
	if err != nil {
		t.Fatalf("AddXP: %v", err)
	}
	if res.LevelAfter != 6 || res.Achievement != "" {
		t.Fatalf("jump: level=%d achievement=%q, want 6 and none", res.LevelAfter, res.Achievement)
	}

	// Landing exactly on 5 unlocks Bronze.
	res, err = svc.AddXP(ctx, AreaMemory, 620, "grind")
	if err != nil {
		t.Fatalf("AddXP memory: %v", err)
	}
	want := AreaMemory + " - Bronze Tier"
	if res.LevelAfter != 5 || res.Achievement != want {
		t.Fatalf("landed: level=%d achievement=%q, want 5 / %q", res.LevelAfter, res.Achievement, want)
	}

	// Dropping back and re-landing must not duplicate it.
	if _, err := svc.AdjustXP(ctx, AreaMemory, -200, "correction"); err != nil {
		t.Fatalf("AdjustXP down: %v", err)
	}
	res, err = svc.AdjustXP(ctx, AreaMemory, 200, "correction")
	if err != nil {
		t.Fatalf("AdjustXP up: %v", err)
	}
	if res.Achievement != "" {
		t.Fatalf("re-landing reported %q, want none", res.Achievement)
	}

	count := 0
	for _, a := range svc.Profile().Achievements {
		if a == want {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("achievement stored %d times, want once", count)
	}
}

func TestLearningAndMemorySessions(t *testing.T) {
	svc, _ := newTestService(t, "2025-03-01")
	ctx := context.Background()

	res, err := svc.LogLearningSession(ctx, "Personal Sciences - Physics", 2.5, "mechanics")
	if err != nil {
		t.Fatalf("LogLearningSession: %v", err)
	}
	if res.Amount != 50 {
		t.Fatalf("learning xp=%d, want 50", res.Amount)
	}

	res, err = svc.LogMemoryPractice(ctx, 37, "major system")
	if err != nil {
		t.Fatalf("LogMemoryPractice: %v", err)
	}
	if res.Area != AreaMemory || res.Amount != 7 {
		t.Fatalf("memory award=%+v, want 7 XP to %s", res, AreaMemory)
	}
}

func TestSetIncomeOverride(t *testing.T) {
	svc, path := newTestService(t, "2025-03-01")
	ctx := context.Background()

	if _, err := svc.AddProject(ctx, "Gig", 500, "2025-03-10"); err != nil {
		t.Fatalf("AddProject: %v", err)
	}
	if _, err := svc.CompleteProject(ctx, 1); err != nil {
		t.Fatalf("CompleteProject: %v", err)
	}
	if err := svc.SetIncomeOverride(ctx, 1200); err != nil {
		t.Fatalf("SetIncomeOverride: %v", err)
	}

	svc = reopenService(t, path, "2025-03-01")
	inc := svc.Profile().Income
	if inc.CurrentMonthEarnings != 1200 {
		t.Fatalf("earnings=%d, want 1200", inc.CurrentMonthEarnings)
	}
	if inc.ManualOverride == nil || *inc.ManualOverride != 1200 {
		t.Fatalf("override=%v, want 1200", inc.ManualOverride)
	}
}
