package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/girgvliani/usefulAPP/internal/ui"
)

func newSummaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show and record the daily performance report",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()
			printDecay(cmd, svc)

			rec, err := svc.DailySummary(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconChart, "Daily performance report"))
			fmt.Fprintln(out, ui.LabelValue("Score", fmt.Sprintf("%d/100", rec.Score)))
			fmt.Fprintln(out, ui.LabelValue("Grade", ui.Gold.Render(rec.Grade)))
			return nil
		},
	}
	return cmd
}
