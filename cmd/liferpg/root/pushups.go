package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/girgvliani/usefulAPP/internal/engine"
	"github.com/girgvliani/usefulAPP/internal/ui"
)

func newPushupsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pushups <count>",
		Short: "Log a workout (push-ups)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("count is required")
			}
			if _, err := strconv.Atoi(args[0]); err != nil {
				return errors.New("count must be an integer")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()
			printDecay(cmd, svc)

			count, _ := strconv.Atoi(args[0])
			res, err := svc.TrackPushups(ctx, count)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !res.MetRequirement {
				fmt.Fprintln(out, ui.Warn.Render(fmt.Sprintf(
					"%s Only %d/%d push-ups. Keep pushing!", ui.IconWarn, count, engine.PushupRequirement)))
				return nil
			}
			if res.Bonus > 0 {
				fmt.Fprintf(out, "%s Exceeded requirement! +%d bonus XP\n", ui.IconMuscle, res.Bonus)
			}
			if res.ConsistencyBonus > 0 {
				fmt.Fprintf(out, "%s %d day streak! +%d consistency XP\n", ui.IconFire, res.Streak, res.ConsistencyBonus)
			}
			printAward(out, res.Award)
			return nil
		},
	}
	return cmd
}
