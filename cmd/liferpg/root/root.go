package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/girgvliani/usefulAPP/internal/ui"
)

const Version = "1.0.0"

var rootCmd = &cobra.Command{
	Use:           "liferpg",
	Short:         "Personal Life RPG: turn daily life into XP and levels",
	Long:          "Life RPG converts workouts, sleep, study, projects, and habits into experience points across your life areas, with streaks, penalties, and epic milestones.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newStatusCmd(),
		newAgendaCmd(),
		newPushupsCmd(),
		newShowerCmd(),
		newSleepCmd(),
		newScreenCmd(),
		newSocialCmd(),
		newProjectCmd(),
		newTodoCmd(),
		newMilestoneCmd(),
		newLearnCmd(),
		newMemoryCmd(),
		newAdjustCmd(),
		newIncomeCmd(),
		newSummaryCmd(),
		newExportCmd(),
		newBoardCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
