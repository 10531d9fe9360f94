package storage

import (
	"context"
	"database/sql"
	"fmt"
)

const (
	MainProfileKey = "main"

	habitShower  = "shower"
	habitWorkout = "workout"
)

// ProfileStore loads and saves the entire profile document. Save always
// rewrites every table inside a single transaction: the document is the unit
// of persistence, and a concurrent second process would simply lose (last
// writer wins on the full overwrite).
type ProfileStore struct {
	db *sql.DB
}

func NewProfileStore(db *sql.DB) *ProfileStore {
	return &ProfileStore{db: db}
}

// Load reads the whole document. Returns (nil, nil) when no profile has been
// saved yet; seeding a fresh one is the engine's job.
func (s *ProfileStore) Load(ctx context.Context) (*Profile, error) {
	p := &Profile{
		LifeAreas:  map[string]*LifeArea{},
		Milestones: map[string]*Milestone{},
		ScreenTime: ScreenTime{DailyLog: map[string]float64{}},
		Habits: Habits{
			Shower:  &Habit{},
			Workout: &Habit{},
		},
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT last_login, social_weekly_count, social_week_start,
		       screen_weekly_violations, income_monthly_goal,
		       income_current_month, income_target_month, income_manual_override
		FROM profile WHERE key = ?`, MainProfileKey)
	var override sql.NullInt64
	err := row.Scan(
		&p.LastLogin, &p.Social.WeeklyCount, &p.Social.WeekStart,
		&p.ScreenTime.WeeklyViolations, &p.Income.MonthlyGoal,
		&p.Income.CurrentMonthEarnings, &p.Income.TargetMonth, &override,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}
	if override.Valid {
		v := int(override.Int64)
		p.Income.ManualOverride = &v
	}

	if err := s.loadAreas(ctx, p); err != nil {
		return nil, err
	}
	if err := s.loadProjects(ctx, p); err != nil {
		return nil, err
	}
	if err := s.loadTodos(ctx, p); err != nil {
		return nil, err
	}
	if err := s.loadHabits(ctx, p); err != nil {
		return nil, err
	}
	if err := s.loadMilestones(ctx, p); err != nil {
		return nil, err
	}
	if err := s.loadLogs(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *ProfileStore) loadAreas(ctx context.Context, p *Profile) error {
	rows, err := s.db.QueryContext(ctx, `SELECT name, category, subskill, level, xp, last_active FROM life_areas`)
	if err != nil {
		return fmt.Errorf("load life areas: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var name string
		a := &LifeArea{}
		if err := rows.Scan(&name, &a.Category, &a.Subskill, &a.Level, &a.XP, &a.LastActive); err != nil {
			return fmt.Errorf("scan life area: %w", err)
		}
		p.LifeAreas[name] = a
	}
	return rows.Err()
}

func (s *ProfileStore) loadProjects(ctx context.Context, p *Profile) error {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, value, deadline, completed, completion_date, created FROM projects ORDER BY id`)
	if err != nil {
		return fmt.Errorf("load projects: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		pr := &Project{}
		var done sql.NullString
		if err := rows.Scan(&pr.ID, &pr.Name, &pr.Value, &pr.Deadline, &pr.Completed, &done, &pr.Created); err != nil {
			return fmt.Errorf("scan project: %w", err)
		}
		if done.Valid {
			pr.CompletionDate = &done.String
		}
		p.Projects = append(p.Projects, pr)
	}
	return rows.Err()
}

func (s *ProfileStore) loadTodos(ctx context.Context, p *Profile) error {
	rows, err := s.db.QueryContext(ctx, `SELECT id, task, area, base_xp, deadline, completed, completion_date, created FROM todos ORDER BY id`)
	if err != nil {
		return fmt.Errorf("load todos: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		t := &Todo{}
		var done sql.NullString
		if err := rows.Scan(&t.ID, &t.Task, &t.Area, &t.BaseXP, &t.Deadline, &t.Completed, &done, &t.Created); err != nil {
			return fmt.Errorf("scan todo: %w", err)
		}
		if done.Valid {
			t.CompletionDate = &done.String
		}
		p.Todos = append(p.Todos, t)
	}
	return rows.Err()
}

func (s *ProfileStore) loadHabits(ctx context.Context, p *Profile) error {
	rows, err := s.db.QueryContext(ctx, `SELECT key, streak, last_done FROM habits`)
	if err != nil {
		return fmt.Errorf("load habits: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var key string
		h := &Habit{}
		var last sql.NullString
		if err := rows.Scan(&key, &h.Streak, &last); err != nil {
			return fmt.Errorf("scan habit: %w", err)
		}
		if last.Valid {
			h.LastDone = &last.String
		}
		switch key {
		case habitShower:
			p.Habits.Shower = h
		case habitWorkout:
			p.Habits.Workout = h
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	hist, err := s.db.QueryContext(ctx, `SELECT date, count FROM pushup_history ORDER BY id`)
	if err != nil {
		return fmt.Errorf("load pushup history: %w", err)
	}
	defer hist.Close()
	for hist.Next() {
		var rec PushupRecord
		if err := hist.Scan(&rec.Date, &rec.Count); err != nil {
			return fmt.Errorf("scan pushup record: %w", err)
		}
		p.Habits.Workout.PushupHistory = append(p.Habits.Workout.PushupHistory, rec)
	}
	return hist.Err()
}

func (s *ProfileStore) loadMilestones(ctx context.Context, p *Profile) error {
	rows, err := s.db.QueryContext(ctx, `SELECT key, completed, xp_reward, description FROM epic_milestones`)
	if err != nil {
		return fmt.Errorf("load milestones: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var key string
		m := &Milestone{}
		if err := rows.Scan(&key, &m.Completed, &m.XPReward, &m.Description); err != nil {
			return fmt.Errorf("scan milestone: %w", err)
		}
		p.Milestones[key] = m
	}
	return rows.Err()
}

func (s *ProfileStore) loadLogs(ctx context.Context, p *Profile) error {
	rows, err := s.db.QueryContext(ctx, `SELECT date, hours FROM screen_time_log`)
	if err != nil {
		return fmt.Errorf("load screen time: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var date string
		var hours float64
		if err := rows.Scan(&date, &hours); err != nil {
			return fmt.Errorf("scan screen time: %w", err)
		}
		p.ScreenTime.DailyLog[date] = hours
	}
	if err := rows.Err(); err != nil {
		return err
	}

	scores, err := s.db.QueryContext(ctx, `SELECT date, score, grade FROM daily_scores ORDER BY id`)
	if err != nil {
		return fmt.Errorf("load daily scores: %w", err)
	}
	defer scores.Close()
	for scores.Next() {
		var ds DailyScore
		if err := scores.Scan(&ds.Date, &ds.Score, &ds.Grade); err != nil {
			return fmt.Errorf("scan daily score: %w", err)
		}
		p.DailyScores = append(p.DailyScores, ds)
	}
	if err := scores.Err(); err != nil {
		return err
	}

	ach, err := s.db.QueryContext(ctx, `SELECT name FROM achievements ORDER BY rowid`)
	if err != nil {
		return fmt.Errorf("load achievements: %w", err)
	}
	defer ach.Close()
	for ach.Next() {
		var name string
		if err := ach.Scan(&name); err != nil {
			return fmt.Errorf("scan achievement: %w", err)
		}
		p.Achievements = append(p.Achievements, name)
	}
	return ach.Err()
}

// Save persists the full document atomically.
func (s *ProfileStore) Save(ctx context.Context, p *Profile) error {
	return WithTx(ctx, s.db, func(tx *sql.Tx) error {
		for _, table := range []string{
			"profile", "life_areas", "projects", "todos", "habits",
			"pushup_history", "epic_milestones", "screen_time_log",
			"daily_scores", "achievements",
		} {
			if _, err := tx.ExecContext(ctx, `DELETE FROM `+table); err != nil {
				return fmt.Errorf("clear %s: %w", table, err)
			}
		}

		var override sql.NullInt64
		if p.Income.ManualOverride != nil {
			override = sql.NullInt64{Int64: int64(*p.Income.ManualOverride), Valid: true}
		}
		_, err := tx.ExecContext(ctx, `
			INSERT INTO profile (key, last_login, social_weekly_count, social_week_start,
				screen_weekly_violations, income_monthly_goal, income_current_month,
				income_target_month, income_manual_override)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			MainProfileKey, p.LastLogin, p.Social.WeeklyCount, p.Social.WeekStart,
			p.ScreenTime.WeeklyViolations, p.Income.MonthlyGoal,
			p.Income.CurrentMonthEarnings, p.Income.TargetMonth, override,
		)
		if err != nil {
			return fmt.Errorf("save profile: %w", err)
		}

		for name, a := range p.LifeAreas {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO life_areas (name, category, subskill, level, xp, last_active) VALUES (?, ?, ?, ?, ?, ?)`,
				name, a.Category, a.Subskill, a.Level, a.XP, a.LastActive,
			); err != nil {
				return fmt.Errorf("save life area %q: %w", name, err)
			}
		}

		for _, pr := range p.Projects {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO projects (id, name, value, deadline, completed, completion_date, created) VALUES (?, ?, ?, ?, ?, ?, ?)`,
				pr.ID, pr.Name, pr.Value, pr.Deadline, pr.Completed, pr.CompletionDate, pr.Created,
			); err != nil {
				return fmt.Errorf("save project %d: %w", pr.ID, err)
			}
		}

		for _, t := range p.Todos {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO todos (id, task, area, base_xp, deadline, completed, completion_date, created) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
				t.ID, t.Task, t.Area, t.BaseXP, t.Deadline, t.Completed, t.CompletionDate, t.Created,
			); err != nil {
				return fmt.Errorf("save todo %d: %w", t.ID, err)
			}
		}

		for key, h := range map[string]*Habit{habitShower: p.Habits.Shower, habitWorkout: p.Habits.Workout} {
			if h == nil {
				continue
			}
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO habits (key, streak, last_done) VALUES (?, ?, ?)`,
				key, h.Streak, h.LastDone,
			); err != nil {
				return fmt.Errorf("save habit %q: %w", key, err)
			}
		}
		if p.Habits.Workout != nil {
			for _, rec := range p.Habits.Workout.PushupHistory {
				if _, err := tx.ExecContext(ctx,
					`INSERT INTO pushup_history (date, count) VALUES (?, ?)`,
					rec.Date, rec.Count,
				); err != nil {
					return fmt.Errorf("save pushup record: %w", err)
				}
			}
		}

		for key, m := range p.Milestones {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO epic_milestones (key, completed, xp_reward, description) VALUES (?, ?, ?, ?)`,
				key, m.Completed, m.XPReward, m.Description,
			); err != nil {
				return fmt.Errorf("save milestone %q: %w", key, err)
			}
		}

		for date, hours := range p.ScreenTime.DailyLog {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO screen_time_log (date, hours) VALUES (?, ?)`,
				date, hours,
			); err != nil {
				return fmt.Errorf("save screen time %q: %w", date, err)
			}
		}

		for _, ds := range p.DailyScores {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO daily_scores (date, score, grade) VALUES (?, ?, ?)`,
				ds.Date, ds.Score, ds.Grade,
			); err != nil {
				return fmt.Errorf("save daily score: %w", err)
			}
		}

		for _, name := range p.Achievements {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO achievements (name) VALUES (?)`,
				name,
			); err != nil {
				return fmt.Errorf("save achievement %q: %w", name, err)
			}
		}

		return nil
	})
}
