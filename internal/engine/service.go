package engine

import (
	"context"
	"sort"
	"time"

	"github.com/girgvliani/usefulAPP/internal/storage"
)

// Options tunes Service construction. The zero value is fine for normal use;
// tests inject a Clock to pin the calendar day.
type Options struct {
	Clock func() time.Time

	// Seed values, consulted only when no profile exists yet.
	MonthlyGoal int
	TargetMonth string
}

// Service is the progression engine. It owns the single in-memory profile
// document; every mutating operation edits the document and then persists it
// in full through the store.
type Service struct {
	store   *storage.ProfileStore
	profile *storage.Profile
	now     func() time.Time
	decay   *DecayResult
}

// NewService loads the profile (seeding a fresh one on first run) and applies
// daily decay for any calendar days elapsed since the last session.
func NewService(ctx context.Context, store *storage.ProfileStore, opts Options) (*Service, error) {
	now := opts.Clock
	if now == nil {
		now = time.Now
	}
	s := &Service{store: store, now: now}

	p, err := store.Load(ctx)
	if err != nil {
		return nil, err
	}
	if p == nil {
		goal := opts.MonthlyGoal
		if goal <= 0 {
			goal = DefaultMonthlyGoal
		}
		month := opts.TargetMonth
		if month == "" {
			month = now().Format("2006-01")
		}
		p = NewDefaultProfile(s.today(), goal, month)
		if err := store.Save(ctx, p); err != nil {
			return nil, err
		}
	}
	s.profile = p

	dec, err := s.applyDailyDecay(ctx)
	if err != nil {
		return nil, err
	}
	s.decay = dec
	return s, nil
}

// Profile exposes the live document for read-only consumers. Mutations must go
// through the named operations so level/streak invariants hold.
func (s *Service) Profile() *storage.Profile { return s.profile }

// DecayReport returns what construction-time decay did, or nil if none ran.
func (s *Service) DecayReport() *DecayResult { return s.decay }

func (s *Service) today() string { return s.now().Format(dateLayout) }

// Today is the engine's notion of the current calendar day.
func (s *Service) Today() string { return s.today() }

func (s *Service) save(ctx context.Context) error {
	return s.store.Save(ctx, s.profile)
}

// XPResult describes a single area award (or deduction, for negative amounts).
type XPResult struct {
	Area        string
	Amount      int
	Reason      string
	LevelBefore int
	LevelAfter  int
	LevelUp     bool
	Achievement string // unlocked tier, if any
}

// addXP is the core mutation behind every award. It does not persist; callers
// save once per operation.
func (s *Service) addXP(area string, amount int, reason string) (*XPResult, error) {
	a, ok := s.profile.LifeAreas[area]
	if !ok {
		return nil, NotFoundError{Kind: "area", Key: area}
	}

	res := &XPResult{Area: area, Amount: amount, Reason: reason, LevelBefore: a.Level}
	a.XP += amount
	a.LastActive = s.today()
	a.Level = CalculateLevel(a.XP)
	res.LevelAfter = a.Level

	if a.Level > res.LevelBefore {
		res.LevelUp = true
		// Only the level actually landed on is checked; a jump over a tier
		// threshold does not unlock it.
		res.Achievement = s.checkAchievements(area, a.Level)
	}
	return res, nil
}

// AddXP awards XP to an area and persists. Unknown areas are a reported no-op.
func (s *Service) AddXP(ctx context.Context, area string, amount int, reason string) (*XPResult, error) {
	res, err := s.addXP(area, amount, reason)
	if err != nil {
		return nil, err
	}
	if err := s.save(ctx); err != nil {
		return nil, err
	}
	return res, nil
}

// areaNames returns all area keys in a stable order.
func (s *Service) areaNames() []string {
	names := make([]string, 0, len(s.profile.LifeAreas))
	for name := range s.profile.LifeAreas {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// workAreaNames returns the areas project XP is spread over.
func (s *Service) workAreaNames() []string {
	var names []string
	for name, a := range s.profile.LifeAreas {
		if a.Category == CategoryWorkSkills {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
