package root

import (
	"fmt"
	"io"

	"github.com/girgvliani/usefulAPP/internal/engine"
	"github.com/girgvliani/usefulAPP/internal/ui"
)

// printAward renders one XP award the way every command reports it.
func printAward(out io.Writer, res *engine.XPResult) {
	if res == nil {
		return
	}
	msg := fmt.Sprintf("%+d XP → %s", res.Amount, res.Area)
	if res.Reason != "" {
		msg += ui.Muted.Render(" (" + res.Reason + ")")
	}
	fmt.Fprintln(out, msg)
	if res.LevelUp {
		fmt.Fprintf(out, "%s %s %s is now level %d!\n", ui.IconSparkle, ui.BadgeLevelUp, res.Area, res.LevelAfter)
	}
	if res.Achievement != "" {
		fmt.Fprintf(out, "%s %s\n", ui.IconMedal, ui.Gold.Render("Achievement unlocked: "+res.Achievement))
	}
}
