package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/girgvliani/usefulAPP/internal/ui"
)

func newShowerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shower",
		Short: "Mark the daily shower done",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()
			printDecay(cmd, svc)

			res, err := svc.CheckShower(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printAward(out, res.Award)
			if res.Streak >= 7 {
				fmt.Fprintf(out, "%s %d day shower streak!\n", ui.IconShower, res.Streak)
			}
			return nil
		},
	}
	return cmd
}
