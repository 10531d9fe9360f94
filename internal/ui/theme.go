package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Life RPG theme (CLI + TUI).
// Kept intentionally small: reusable styles and a few emojis.

const (
	IconGame    = "🎮"
	IconSparkle = "✨"
	IconDone    = "✅"
	IconTrophy  = "🏆"
	IconMedal   = "🏅"
	IconInfo    = "ℹ️"
	IconWarn    = "⚠️"
	IconError   = "🧨"
	IconFire    = "🔥"
	IconMuscle  = "💪"
	IconShower  = "🚿"
	IconSleep   = "😴"
	IconPhone   = "📱"
	IconPeople  = "👥"
	IconMoney   = "💰"
	IconChart   = "📊"
	IconClock   = "⏰"
	IconBook    = "📚"
	IconBrain   = "🧠"
	IconPin     = "📋"
)

var (
	cPrimary = lipgloss.Color("75")  // dashboard blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("41")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("203") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)

	Panel      = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	PanelTitle = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)

	BadgeLevelUp = lipgloss.NewStyle().Bold(true).Foreground(cGold).Render("LEVEL UP")
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// Bar renders a fixed-width progress bar.
func Bar(value, total, width int) string {
	if total <= 0 {
		total = 1
	}
	if width < 1 {
		width = 1
	}
	if value < 0 {
		value = 0
	}
	if value > total {
		value = total
	}
	filled := value * width / total
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
}

// Checkbox renders a done/undone marker for habit checklists.
func Checkbox(done bool) string {
	if done {
		return IconDone
	}
	return "⬜"
}
