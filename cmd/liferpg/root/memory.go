package root

import (
	"context"
	"errors"
	"strconv"

	"github.com/spf13/cobra"
)

func newMemoryCmd() *cobra.Command {
	var technique string

	cmd := &cobra.Command{
		Use:   "memory <minutes>",
		Short: "Log memory practice (1 XP per 5 minutes)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("minutes is required")
			}
			if _, err := strconv.Atoi(args[0]); err != nil {
				return errors.New("minutes must be an integer")
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

			minutes, _ := strconv.Atoi(args[0])
			res, err := svc.LogMemoryPractice(ctx, minutes, technique)
			if err != nil {
				return err
			}
			printAward(cmd.OutOrStdout(), res)
			return nil
		},
	}

	cmd.Flags().StringVarP(&technique, "technique", "t", "", "Technique used (e.g. palace, linking)")
	return cmd
}
