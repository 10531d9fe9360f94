package root

import (
	"context"
	"errors"
	"strconv"

	"github.com/spf13/cobra"
)

func newLearnCmd() *cobra.Command {
	var topic string

	cmd := &cobra.Command{
		Use:   "learn <area> <hours>",
		Short: "Log a learning session (20 XP per hour)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("area and hours are required")
			}
			if _, err := strconv.ParseFloat(args[1], 64); err != nil {
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

			hours, _ := strconv.ParseFloat(args[1], 64)
			res, err := svc.LogLearningSession(ctx, args[0], hours, topic)
			if err != nil {
				return err
			}
			printAward(cmd.OutOrStdout(), res)
			return nil
		},
	}

	cmd.Flags().StringVarP(&topic, "topic", "t", "", "What was studied")
	return cmd
}
