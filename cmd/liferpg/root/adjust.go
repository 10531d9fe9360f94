package root

import (
	"context"
	"errors"
	"strconv"

	"github.com/spf13/cobra"
)

func newAdjustCmd() *cobra.Command {
	var reason string

	cmd := &cobra.Command{
		Use:   "adjust <area> <xp>",
		Short: "Manually adjust an area's XP (negative to subtract)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("area and xp are required")
			}
			if _, err := strconv.Atoi(args[1]); err != nil {
				return errors.New("xp must be an integer")
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

			delta, _ := strconv.Atoi(args[1])
			res, err := svc.AdjustXP(ctx, args[0], delta, reason)
			if err != nil {
				return err
			}
			printAward(cmd.OutOrStdout(), res)
			return nil
		},
	}

	cmd.Flags().StringVarP(&reason, "reason", "r", "", "Why the adjustment is needed")
	return cmd
}
