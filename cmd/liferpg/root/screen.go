package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/girgvliani/usefulAPP/internal/ui"
)

func newScreenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "screen <hours>",
		Short: "Log today's screen time",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("hours is required")
			}
			if _, err := strconv.ParseFloat(args[0], 64); err != nil {
				return errors.New("hours must be a number")
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

			hours, _ := strconv.ParseFloat(args[0], 64)
			res, err := svc.TrackScreenTime(ctx, hours)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if res.Exceeded {
				fmt.Fprintln(out, ui.Warn.Render(fmt.Sprintf(
					"%s Screen time exceeded limit! -%d XP penalty (-%d per area)",
					ui.IconPhone, res.Penalty, res.PerArea)))
				return nil
			}
			fmt.Fprintf(out, "%s Screen time under control: %.1fh/%.0fh\n", ui.IconDone, res.Hours, res.Limit)
			return nil
		},
	}
	return cmd
}
