package tui

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/girgvliani/usefulAPP/internal/engine"
	"github.com/girgvliani/usefulAPP/internal/storage"
	"github.com/girgvliani/usefulAPP/internal/ui"
)

type view int

const (
	viewDashboard view = iota
	viewStats
	viewMilestones
)

var viewNames = []string{"Dashboard", "Stats", "Milestones"}

type dashboardModel struct {
	ctx   context.Context
	store *storage.ProfileStore

	width  int
	height int

	profile *storage.Profile
	view    view

	lastLog string
	loading bool
	err     error
}

type loadedMsg struct {
	profile *storage.Profile
	err     error
}

func newDashboardModel(ctx context.Context, store *storage.ProfileStore) dashboardModel {
	return dashboardModel{
		ctx:     ctx,
		store:   store,
		loading: true,
		lastLog: "Loading…",
	}
}

func (m dashboardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m dashboardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		p, err := m.store.Load(m.ctx)
		return loadedMsg{profile: p, err: err}
	}
}

func (m dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case loadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			m.lastLog = "Load failed: " + msg.err.Error()
			return m, nil
		}
		m.profile = msg.profile
		m.lastLog = fmt.Sprintf("Refreshed at %s.", time.Now().Format("15:04:05"))
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			m.lastLog = "Refreshing…"
			return m, m.loadCmd()
		case "tab":
			m.view = (m.view + 1) % view(len(viewNames))
			return m, nil
		case "1":
			m.view = viewDashboard
			return m, nil
		case "2":
			m.view = viewStats
			return m, nil
		case "3":
			m.view = viewMilestones
			return m, nil
		}
	}
	return m, nil
}

func (m dashboardModel) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit.\n"
	}
	if m.loading {
		return "Life RPG: loading…\n"
	}
	if m.profile == nil {
		return "No profile yet. Run any liferpg command first.\n\nPress q to quit.\n"
	}

	var body string
	switch m.view {
	case viewStats:
		body = m.renderStats()
	case viewMilestones:
		body = m.renderMilestones()
	default:
		body = m.renderDashboard()
	}

	return m.renderHeader() + "\n\n" + body + "\n" + m.renderFooter()
}

func (m dashboardModel) renderHeader() string {
	tabs := make([]string, len(viewNames))
	for i, name := range viewNames {
		if view(i) == m.view {
			tabs[i] = ui.Key.Render("[" + name + "]")
		} else {
			tabs[i] = ui.Muted.Render(" " + name + " ")
		}
	}
	return ui.Heading(ui.IconGame, "Life RPG Dashboard") + "  " + strings.Join(tabs, " ")
}

func (m dashboardModel) renderFooter() string {
	keys := ui.Muted.Render("tab/1/2/3: views · r: refresh · q: quit")
	return keys + "\n" + m.lastLog
}

func (m dashboardModel) renderDashboard() string {
	p := m.profile
	today := time.Now().Format("2006-01-02")

	totalXP := 0
	totalLevel := 0
	for _, a := range p.LifeAreas {
		totalXP += a.XP
		totalLevel += engine.CalculateLevel(a.XP)
	}
	avgLevel := 0
	if len(p.LifeAreas) > 0 {
		avgLevel = totalLevel / len(p.LifeAreas)
	}

	score, grade := engine.DailyScoreOf(p, today)

	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n",
		ui.LabelValue("Avg level", avgLevel),
		ui.LabelValue("Total XP", totalXP))
	fmt.Fprintf(&b, "%s %s %s\n\n",
		ui.LabelValue("Today", fmt.Sprintf("%d/100", score)),
		ui.Bar(score, 100, 20),
		ui.Gold.Render(grade))

	b.WriteString(ui.H2.Render(ui.IconDone+" Daily habits") + "\n")
	showerDone := p.Habits.Shower.LastDone != nil && *p.Habits.Shower.LastDone == today
	workoutDone := p.Habits.Workout.LastDone != nil && *p.Habits.Workout.LastDone == today
	fmt.Fprintf(&b, "  %s Shower   %s %d day streak\n", ui.Checkbox(showerDone), ui.IconFire, p.Habits.Shower.Streak)
	fmt.Fprintf(&b, "  %s Workout  %s %d day streak\n\n", ui.Checkbox(workoutDone), ui.IconFire, p.Habits.Workout.Streak)

	b.WriteString(ui.H2.Render(ui.IconMoney+" Income") + "\n")
	fmt.Fprintf(&b, "  %s %d / %d (%s)\n\n",
		ui.Bar(p.Income.CurrentMonthEarnings, p.Income.MonthlyGoal, 24),
		p.Income.CurrentMonthEarnings, p.Income.MonthlyGoal, p.Income.TargetMonth)

	b.WriteString(ui.H2.Render(ui.IconSparkle+" Top skills") + "\n")
	for _, a := range topAreas(p, 5) {
		fmt.Fprintf(&b, "  Lv %2d  %s\n", engine.CalculateLevel(a.XP), a.DisplayName())
	}
	return b.String()
}

func (m dashboardModel) renderStats() string {
	p := m.profile

	grouped := map[string][]*storage.LifeArea{}
	var categories []string
	for _, name := range sortedAreaNames(p) {
		a := p.LifeAreas[name]
		if _, ok := grouped[a.Category]; !ok {
			categories = append(categories, a.Category)
		}
		grouped[a.Category] = append(grouped[a.Category], a)
	}
	sort.Strings(categories)

	var b strings.Builder
	for _, cat := range categories {
		b.WriteString(ui.H2.Render(ui.IconBook+" "+strings.ToUpper(cat)) + "\n")
		for _, a := range grouped[cat] {
			name := a.Subskill
			if name == "" {
				name = a.Category
			}
			into := a.XP % engine.XPPerLevel
			fmt.Fprintf(&b, "  %-24s Lv %2d %s %3d XP to next\n",
				name, engine.CalculateLevel(a.XP), ui.Bar(into, engine.XPPerLevel, 10), engine.XPToNextLevel(a.XP))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m dashboardModel) renderMilestones() string {
	p := m.profile

	var keys []string
	for key := range p.Milestones {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(ui.H2.Render(ui.IconTrophy+" Epic milestones") + "\n")
	for _, key := range keys {
		ms := p.Milestones[key]
		status := ui.Warn.Render("⏳ in progress")
		if ms.Completed {
			status = ui.Good.Render(ui.IconDone + " completed")
		}
		fmt.Fprintf(&b, "  %-45s %s %s\n", ms.Description, status, ui.Muted.Render(fmt.Sprintf("(+%d XP)", ms.XPReward)))
	}

	b.WriteString("\n" + ui.H2.Render(ui.IconMedal+" Achievements") + "\n")
	if len(p.Achievements) == 0 {
		b.WriteString(ui.Muted.Render("  (none yet)") + "\n")
	}
	for _, a := range p.Achievements {
		fmt.Fprintf(&b, "  %s %s\n", ui.IconMedal, a)
	}
	return b.String()
}

func sortedAreaNames(p *storage.Profile) []string {
	names := make([]string, 0, len(p.LifeAreas))
	for name := range p.LifeAreas {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func topAreas(p *storage.Profile, n int) []*storage.LifeArea {
	areas := make([]*storage.LifeArea, 0, len(p.LifeAreas))
	for _, a := range p.LifeAreas {
		areas = append(areas, a)
	}
	sort.Slice(areas, func(i, j int) bool {
		if areas[i].XP != areas[j].XP {
			return areas[i].XP > areas[j].XP
		}
		return areas[i].DisplayName() < areas[j].DisplayName()
	})
	if len(areas) > n {
		areas = areas[:n]
	}
	return areas
}
