package engine

import "github.com/girgvliani/usefulAPP/internal/storage"

// Canonical areas the engine routes fixed awards to. They exist in every
// seeded profile.
const (
	AreaExercise      = "Health - Exercise"
	AreaSleep         = "Health - Sleep"
	AreaHygiene       = "Health - Hygiene"
	AreaMemory        = "Memory Techniques"
	AreaSocialBalance = "Social Balance"

	CategoryWorkSkills = "Work Skills"
)

// NewDefaultProfile builds the first-run document.
func NewDefaultProfile(today string, monthlyGoal int, targetMonth string) *storage.Profile {
	areas := map[string]*storage.LifeArea{}
	add := func(category, subskill string) {
		a := &storage.LifeArea{Category: category, Subskill: subskill, Level: 1, XP: 0, LastActive: today}
		areas[a.DisplayName()] = a
	}

	add("Health", "Exercise")
	add("Health", "Sleep")
	add("Health", "Hygiene")
	add("University", "Databases")
	add("University", "Software Engineering")
	add("University", "Algorithms")
	add("University", "Research Basics")
	add(CategoryWorkSkills, "Backend")
	add(CategoryWorkSkills, "Frontend")
	add(CategoryWorkSkills, "DevOps")
	add(CategoryWorkSkills, "Databases")
	add("Personal Sciences", "Math")
	add("Personal Sciences", "Physics")
	add("Personal Sciences", "Game Dev")
	add("Memory Techniques", "")
	add("Social Balance", "")

	return &storage.Profile{
		LifeAreas: areas,
		Habits: storage.Habits{
			Shower:  &storage.Habit{},
			Workout: &storage.Habit{},
		},
		Milestones: map[string]*storage.Milestone{
			"research_paper":     {XPReward: 847, Description: "Publish a research paper"},
			"codeforces_2000":    {XPReward: 1203, Description: "Reach 2000 Elo on Codeforces"},
			"weight_goal":        {XPReward: 672, Description: "Reach target body weight"},
			"masters_acceptance": {XPReward: 1847, Description: "Masters program acceptance"},
			"gold_medal":         {XPReward: 2341, Description: "Gold medal at an international championship"},
		},
		ScreenTime: storage.ScreenTime{DailyLog: map[string]float64{}},
		Social:     storage.Social{WeekStart: today},
		Income: storage.Income{
			MonthlyGoal: monthlyGoal,
			TargetMonth: targetMonth,
		},
		LastLogin: today,
	}
}
