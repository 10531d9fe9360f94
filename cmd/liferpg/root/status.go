package root

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/girgvliani/usefulAPP/internal/engine"
	"github.com/girgvliani/usefulAPP/internal/storage"
	"github.com/girgvliani/usefulAPP/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show all skill areas, habits, income and milestones",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()
			printDecay(cmd, svc)

			out := cmd.OutOrStdout()
			p := svc.Profile()

			fmt.Fprintln(out, ui.Heading(ui.IconGame, "Character status"))
			fmt.Fprintln(out)

			for _, cat := range sortedCategories(p) {
				fmt.Fprintln(out, ui.H2.Render(cat))
				for _, name := range areasInCategory(p, cat) {
					a := p.LifeAreas[name]
					label := a.Subskill
					if label == "" {
						label = a.Category
					}
					fmt.Fprintf(out, "  %-28s Lv %-3d %s %s\n",
						label, a.Level,
						ui.Bar(a.XP%engine.XPPerLevel, engine.XPPerLevel, 20),
						ui.Muted.Render(fmt.Sprintf("%d XP to next", engine.XPToNextLevel(a.XP))))
				}
				fmt.Fprintln(out)
			}

			today := svc.Today()
			fmt.Fprintln(out, ui.H2.Render("Habits"))
			fmt.Fprintf(out, "  %s Shower   %s streak %d\n", ui.IconShower, habitCheckbox(p.Habits.Shower, today), p.Habits.Shower.Streak)
			fmt.Fprintf(out, "  %s Workout  %s streak %d\n", ui.IconMuscle, habitCheckbox(p.Habits.Workout, today), p.Habits.Workout.Streak)
			fmt.Fprintln(out)

			fmt.Fprintln(out, ui.H2.Render("Income"))
			fmt.Fprintf(out, "  %s %d / %d (%s)\n", ui.Bar(p.Income.CurrentMonthEarnings, p.Income.MonthlyGoal, 30),
				p.Income.CurrentMonthEarnings, p.Income.MonthlyGoal, p.Income.TargetMonth)
			fmt.Fprintln(out)

			fmt.Fprintln(out, ui.H2.Render("Epic milestones"))
			for _, key := range sortedMilestoneKeys(p) {
				m := p.Milestones[key]
				fmt.Fprintf(out, "  %s %s %s\n", ui.Checkbox(m.Completed), m.Description,
					ui.Muted.Render(fmt.Sprintf("(%d XP)", m.XPReward)))
			}
			if len(p.Achievements) > 0 {
				fmt.Fprintln(out)
				fmt.Fprintln(out, ui.H2.Render("Achievements"))
				for _, a := range p.Achievements {
					fmt.Fprintf(out, "  %s %s\n", ui.IconMedal, a)
				}
			}
			return nil
		},
	}
	return cmd
}

func habitCheckbox(h *storage.Habit, today string) string {
	done := h.LastDone != nil && *h.LastDone == today
	return ui.Checkbox(done)
}

func sortedCategories(p *storage.Profile) []string {
	seen := map[string]bool{}
	var cats []string
	for _, a := range p.LifeAreas {
		if !seen[a.Category] {
			seen[a.Category] = true
			cats = append(cats, a.Category)
		}
	}
	sort.Strings(cats)
	return cats
}

func areasInCategory(p *storage.Profile, category string) []string {
	var names []string
	for name, a := range p.LifeAreas {
		if a.Category == category {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

func sortedMilestoneKeys(p *storage.Profile) []string {
	keys := make([]string, 0, len(p.Milestones))
	for k := range p.Milestones {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
