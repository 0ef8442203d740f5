package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermh/jornada/internal/models"
	"github.com/javiermh/jornada/internal/timeutil"
	"github.com/javiermh/jornada/internal/workday"
)

// RunWorkdayTUI runs the live workday timer for an already-loaded
// session manager.
func RunWorkdayTUI(manager *workday.Manager, user *models.Profile) error {
	model := NewWorkdayModel(manager, user)

	p := tea.NewProgram(model, tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	// Handle exit messages after the TUI closes
	m, ok := finalModel.(WorkdayModel)
	if !ok {
		return nil
	}

	if m.checkedOut && m.closedSession != nil {
		session := m.closedSession
		fmt.Printf("🔴 Checked out, %s\n", user.FullName)
		fmt.Printf("Worked %s net (%s on breaks)\n",
			timeutil.FormatMinutes(*session.NetMinutes),
			timeutil.FormatMinutes(session.PauseMinutes))
	} else if m.exiting {
		fmt.Printf("\n💡 Workday is still running. Use 'jornada status' to check it or 'jornada out' to finish.\n")
	}

	return nil
}
