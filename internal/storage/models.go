package storage

// Profile is the whole persisted document. Every engine operation mutates it
// in memory and then saves it back in full; json tags match the export layout
// consumed by the dashboard and chart tooling.
type Profile struct {
	LifeAreas    map[string]*LifeArea  `json:"life_areas"`
	Projects     []*Project            `json:"projects"`
	Todos        []*Todo               `json:"todos"`
	Habits       Habits                `json:"habits"`
	Milestones   map[string]*Milestone `json:"epic_milestones"`
	ScreenTime   ScreenTime            `json:"screen_time"`
	Social       Social                `json:"social_interactions"`
	Income       Income                `json:"income"`
	DailyScores  []DailyScore          `json:"daily_scores"`
	Achievements []string              `json:"achievements"`
	LastLogin    string                `json:"last_login"`
}

// LifeArea is one skill track. Category and Subskill are the canonical fields;
// the map key in Profile.LifeAreas is always DisplayName().
type LifeArea struct {
	Category   string `json:"-"`
	Subskill   string `json:"-"`
	Level      int    `json:"level"`
	XP         int    `json:"xp"`
	LastActive string `json:"last_active"`
}

// DisplayName derives the "Category - Subskill" key used for lookups,
// grouping, and the persisted document.
func (a *LifeArea) DisplayName() string {
	if a.Subskill == "" {
		return a.Category
	}
	return a.Category + " - " + a.Subskill
}

type Project struct {
	ID             int     `json:"id"`
	Name           string  `json:"name"`
	Value          int     `json:"value"`
	Deadline       string  `json:"deadline"`
	Completed      bool    `json:"completed"`
	CompletionDate *string `json:"completion_date"`
	Created        string  `json:"created"`
}

type Todo struct {
	ID             int     `json:"id"`
	Task           string  `json:"task"`
	Area           string  `json:"area"`
	BaseXP         int     `json:"base_xp"`
	Deadline       string  `json:"deadline"`
	Completed      bool    `json:"completed"`
	CompletionDate *string `json:"completion_date"`
	Created        string  `json:"created"`
}

type Habits struct {
	Shower  *Habit `json:"shower"`
	Workout *Habit `json:"workout"`
}

type Habit struct {
	Streak        int            `json:"streak"`
	LastDone      *string        `json:"last_done"`
	PushupHistory []PushupRecord `json:"pushup_history,omitempty"`
}

type PushupRecord struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type Milestone struct {
	Completed   bool   `json:"completed"`
	XPReward    int    `json:"xp_reward"`
	Description string `json:"description"`
}

type ScreenTime struct {
	DailyLog         map[string]float64 `json:"daily_log"`
	WeeklyViolations int                `json:"weekly_violations"`
}

type Social struct {
	WeeklyCount int    `json:"weekly_count"`
	WeekStart   string `json:"week_start"`
}

type Income struct {
	MonthlyGoal          int    `json:"monthly_goal"`
	CurrentMonthEarnings int    `json:"current_month_earnings"`
	TargetMonth          string `json:"target_month"`
	ManualOverride       *int   `json:"manual_override"`
}

type DailyScore struct {
	Date  string `json:"date"`
	Score int    `json:"score"`
	Grade string `json:"grade"`
}
