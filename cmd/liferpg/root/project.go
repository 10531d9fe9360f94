package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/girgvliani/usefulAPP/internal/ui"
)

func newProjectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Manage paid projects",
	}
	cmd.AddCommand(newProjectAddCmd(), newProjectDoneCmd(), newProjectListCmd())
	return cmd
}

func newProjectAddCmd() *cobra.Command {
	var value int
	var deadline string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a project with a value and a deadline",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("name is required")
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

			p, err := svc.AddProject(ctx, args[0], value, deadline)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Project added: #%d %s (%d, due %s)\n",
				ui.IconPin, p.ID, p.Name, p.Value, p.Deadline)
			return nil
		},
	}

	cmd.Flags().IntVarP(&value, "value", "v", 0, "Project value (earnings on completion)")
	cmd.Flags().StringVarP(&deadline, "deadline", "d", "", "Deadline (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("deadline")
	return cmd
}

func newProjectDoneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done <id>",
		Short: "Complete a project",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("id is required")
			}
			if _, err := strconv.Atoi(args[0]); err != nil {
				return errors.New("id must be an integer")
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

			id, _ := strconv.Atoi(args[0])
			res, err := svc.CompleteProject(ctx, id)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s Project completed: %s (+%d)\n", ui.IconMoney, res.Project.Name, res.Project.Value)
			fmt.Fprintf(out, "%s Monthly progress: %d/%d\n", ui.IconChart, res.Earnings, res.Goal)
			for _, award := range res.Awards {
				printAward(out, award)
			}
			return nil
		},
	}
	return cmd
}

func newProjectListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List pending projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()
			printDecay(cmd, svc)

			out := cmd.OutOrStdout()
			pending := svc.PendingProjects()
			if len(pending) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("No active projects."))
				return nil
			}
			fmt.Fprintln(out, ui.Heading(ui.IconPin, "Active projects"))
			for _, p := range pending {
				fmt.Fprintf(out, "[%d] %s: %d (due %s)\n", p.ID, p.Name, p.Value, p.Deadline)
			}
			return nil
		},
	}
	return cmd
}
