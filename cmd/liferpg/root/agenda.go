package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/girgvliani/usefulAPP/internal/engine"
	"github.com/girgvliani/usefulAPP/internal/ui"
)

func newAgendaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "agenda",
		Short: "Show today's checklist: urgent tasks, habits, daily score",
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
			today := svc.Today()

			fmt.Fprintln(out, ui.Heading(ui.IconPin, "Today's agenda"))
			fmt.Fprintln(out)

			fmt.Fprintln(out, ui.H2.Render("Tasks"))
			printed := 0
			for _, t := range svc.PendingTodos() {
				days, err := engine.DaysBetween(today, t.Deadline)
				if err != nil {
					continue
				}
				var due string
				switch {
				case days < 0:
					due = ui.Bad.Render(fmt.Sprintf("overdue %dd", -days))
				case days == 0:
					due = ui.Warn.Render("due today")
				case days <= 3:
					due = ui.Warn.Render(fmt.Sprintf("due in %dd", days))
				default:
					due = ui.Muted.Render(fmt.Sprintf("due in %dd", days))
				}
				fmt.Fprintf(out, "  #%-3d %-36s %s\n", t.ID, t.Task, due)
				printed++
			}
			for _, pr := range svc.PendingProjects() {
				days, err := engine.DaysBetween(today, pr.Deadline)
				if err != nil {
					continue
				}
				if days > 7 {
					continue
				}
				fmt.Fprintf(out, "  #%-3d %-36s %s\n", pr.ID, pr.Name,
					ui.Warn.Render(fmt.Sprintf("project, due in %dd", days)))
				printed++
			}
			if printed == 0 {
				fmt.Fprintln(out, ui.Muted.Render("  nothing pending"))
			}
			fmt.Fprintln(out)

			fmt.Fprintln(out, ui.H2.Render("Habits"))
			fmt.Fprintf(out, "  %s %s Shower\n", habitCheckbox(p.Habits.Shower, today), ui.IconShower)
			fmt.Fprintf(out, "  %s %s Workout\n", habitCheckbox(p.Habits.Workout, today), ui.IconMuscle)
			fmt.Fprintln(out)

			score, grade := svc.CalculateDailyScore()
			fmt.Fprintf(out, "%s %s %s\n", ui.Key.Render("Score so far:"),
				ui.Bar(score, 100, 25), ui.Gold.Render(fmt.Sprintf("%d/100 (%s)", score, grade)))
			return nil
		},
	}
	return cmd
}
