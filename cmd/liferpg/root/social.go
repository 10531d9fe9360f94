package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/girgvliani/usefulAPP/internal/ui"
)

func newSocialCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "social",
		Short: "Log a social interaction (weekly limit applies)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()
			printDecay(cmd, svc)

			res, err := svc.LogSocialInteraction(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if res.WeekReset {
				fmt.Fprintln(out, ui.Muted.Render("New week started; counter reset."))
			}
			if res.Exceeded {
				fmt.Fprintln(out, ui.Warn.Render(fmt.Sprintf(
					"%s Social interaction limit exceeded (%d/%d)! -%d XP (-%d per area)",
					ui.IconPeople, res.WeeklyCount, res.Limit, res.Penalty, res.PerArea)))
				return nil
			}
			fmt.Fprintf(out, "%s Social balance maintained: %d/%d this week\n", ui.IconDone, res.WeeklyCount, res.Limit)
			printAward(out, res.Award)
			return nil
		},
	}
	return cmd
}
