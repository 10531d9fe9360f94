package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/girgvliani/usefulAPP/internal/ui"
)

func newIncomeCmd() *cobra.Command {
	var set int

	cmd := &cobra.Command{
		Use:   "income",
		Short: "Show monthly income progress (use --set to correct it)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()
			printDecay(cmd, svc)

			out := cmd.OutOrStdout()
			if cmd.Flags().Changed("set") {
				if err := svc.SetIncomeOverride(ctx, set); err != nil {
					return err
				}
				fmt.Fprintln(out, ui.Good.Render(ui.IconDone+" Income updated."))
			}

			income := svc.Profile().Income
			fmt.Fprintln(out, ui.Heading(ui.IconMoney, "Income tracker"))
			fmt.Fprintln(out, ui.LabelValue("Current month earnings", income.CurrentMonthEarnings))
			fmt.Fprintln(out, ui.LabelValue("Monthly goal", income.MonthlyGoal))
			fmt.Fprintln(out, ui.LabelValue("Target month", income.TargetMonth))
			fmt.Fprintf(out, "%s %s\n", ui.Bar(income.CurrentMonthEarnings, income.MonthlyGoal, 40), progressPct(income.CurrentMonthEarnings, income.MonthlyGoal))
			return nil
		},
	}

	cmd.Flags().IntVar(&set, "set", 0, "Set corrected current-month earnings")
	return cmd
}

func progressPct(current, goal int) string {
	if goal <= 0 {
		return "0.0%"
	}
	return fmt.Sprintf("%.1f%%", float64(current)/float64(goal)*100)
}
