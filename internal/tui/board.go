package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/girgvliani/usefulAPP/internal/storage"
)

// RunDashboard starts the read-only dashboard. It loads its own snapshot of
// the profile document and never mutates it; refresh re-loads.
func RunDashboard(ctx context.Context, store *storage.ProfileStore, out io.Writer) error {
	m := newDashboardModel(ctx, store)
	p := tea.NewProgram(m, tea.WithOutput(out))
	_, err := p.Run()
	return err
}
