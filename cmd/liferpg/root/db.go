package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/girgvliani/usefulAPP/internal/config"
	"github.com/girgvliani/usefulAPP/internal/engine"
	"github.com/girgvliani/usefulAPP/internal/storage"
	"github.com/girgvliani/usefulAPP/internal/ui"
)

func openStore(ctx context.Context) (*storage.ProfileStore, func(), error) {
	cfg, err := config.Load("")
	if err != nil {
		return nil, nil, err
	}
	path := cfg.Data.Path
	if path == "" {
		path, err = storage.DefaultDBPath()
		if err != nil {
			return nil, nil, err
		}
	}
	db, err := storage.Open(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = db.Close()
	}
	return storage.NewProfileStore(db), cleanup, nil
}

func openService(ctx context.Context) (*engine.Service, func(), error) {
	cfg, err := config.Load("")
	if err != nil {
		return nil, nil, err
	}
	path := cfg.Data.Path
	if path == "" {
		path, err = storage.DefaultDBPath()
		if err != nil {
			return nil, nil, err
		}
	}
	db, err := storage.Open(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = db.Close()
	}

	svc, err := engine.NewService(ctx, storage.NewProfileStore(db), engine.Options{
		MonthlyGoal: cfg.Income.MonthlyGoal,
		TargetMonth: cfg.Income.TargetMonth,
	})
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return svc, cleanup, nil
}

// printDecay surfaces construction-time decay so days away are never silent.
func printDecay(cmd *cobra.Command, svc *engine.Service) {
	dec := svc.DecayReport()
	if dec == nil {
		return
	}
	fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render(fmt.Sprintf(
		"%s %d day(s) have passed. Every area lost %d XP.",
		ui.IconClock, dec.DaysPassed, dec.AmountPerArea)))
}
