package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/girgvliani/usefulAPP/internal/ui"
)

func newTodoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "todo",
		Short: "Manage todos with time-scaled XP",
	}
	cmd.AddCommand(newTodoAddCmd(), newTodoDoneCmd(), newTodoListCmd())
	return cmd
}

func newTodoAddCmd() *cobra.Command {
	var area string
	var baseXP int
	var deadline string

	cmd := &cobra.Command{
		Use:   "add <task>",
		Short: "Add a todo bound to a life area",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("task is required")
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

			t, err := svc.AddTodo(ctx, args[0], area, baseXP, deadline)
			if err != nil {
				return err
			}
			early := int(float64(t.BaseXP) * 1.5)
			fmt.Fprintf(cmd.OutOrStdout(), "%s Todo added: #%d %s (up to %d XP if early)\n",
				ui.IconDone, t.ID, t.Task, early)
			return nil
		},
	}

	cmd.Flags().StringVarP(&area, "area", "a", "", "Life area (e.g. \"University - Databases\")")
	cmd.Flags().IntVarP(&baseXP, "xp", "x", 10, "Base XP (scaled by completion time)")
	cmd.Flags().StringVarP(&deadline, "deadline", "d", "", "Deadline (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("area")
	_ = cmd.MarkFlagRequired("deadline")
	return cmd
}

func newTodoDoneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done <id>",
		Short: "Complete a todo",
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
			res, err := svc.CompleteTodo(ctx, id)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s Todo completed: %s (x%.1f)\n", ui.IconSparkle, res.Todo.Task, res.Multiplier)
			printAward(out, res.Award)
			return nil
		},
	}
	return cmd
}

func newTodoListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List pending todos",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()
			printDecay(cmd, svc)

			out := cmd.OutOrStdout()
			pending := svc.PendingTodos()
			if len(pending) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("No pending todos."))
				return nil
			}
			fmt.Fprintln(out, ui.Heading(ui.IconPin, "Pending todos"))
			for _, t := range pending {
				fmt.Fprintf(out, "[%d] %s (%s, due %s)\n", t.ID, t.Task, t.Area, t.Deadline)
			}
			return nil
		},
	}
	return cmd
}
