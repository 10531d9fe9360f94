package root

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/girgvliani/usefulAPP/internal/ui"
)

func newMilestoneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "milestone",
		Short: "View and complete epic milestones",
	}
	cmd.AddCommand(newMilestoneListCmd(), newMilestoneDoneCmd())
	return cmd
}

func newMilestoneListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List epic milestones",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()
			printDecay(cmd, svc)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconTrophy, "Epic milestones"))

			milestones := svc.Profile().Milestones
			keys := make([]string, 0, len(milestones))
			for key := range milestones {
				keys = append(keys, key)
			}
			sort.Strings(keys)
			for _, key := range keys {
				m := milestones[key]
				status := "⏳"
				if m.Completed {
					status = ui.IconDone
				}
				fmt.Fprintf(out, "%s %-20s %s %s\n", status, key, m.Description, ui.Muted.Render(fmt.Sprintf("(+%d XP)", m.XPReward)))
			}
			return nil
		},
	}
	return cmd
}

func newMilestoneDoneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done <key>",
		Short: "Complete an epic milestone",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("milestone key is required")
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

			res, err := svc.CompleteEpicMilestone(ctx, args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Gold.Render(fmt.Sprintf("%s EPIC MILESTONE COMPLETED! %s", ui.IconTrophy, ui.IconTrophy)))
			fmt.Fprintln(out, res.Milestone.Description)
			fmt.Fprintf(out, "+%d total XP (+%d per area)\n", res.Milestone.XPReward, res.PerArea)
			for _, award := range res.Awards {
				if award.LevelUp {
					printAward(out, award)
				}
			}
			return nil
		},
	}
	return cmd
}
