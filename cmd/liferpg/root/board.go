package root

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/girgvliani/usefulAPP/internal/tui"
)

func newBoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Open the TUI dashboard (read-only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			store, cleanup, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			return tui.RunDashboard(ctx, store, cmd.OutOrStdout())
		},
	}
	return cmd
}
