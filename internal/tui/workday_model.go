package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermh/jornada/internal/models"
	"github.com/javiermh/jornada/internal/timeutil"
	"github.com/javiermh/jornada/internal/workday"
)

// WorkdayModel is the TUI model for the live workday timer. The clock
// value is recomputed from absolute timestamps on every tick, so the
// display stays correct after missed ticks or a backgrounded terminal.
type WorkdayModel struct {
	width  int
	height int

	manager *workday.Manager
	user    *models.Profile

	now       time.Time
	animation int

	// Checkout note typed via the textinput
	noteInput  textinput.Model
	noteActive bool
	note       string

	// Last operation error, shown inline until the next keypress
	opErr error

	// UI state
	checkedOut bool // True when the user checked out from the TUI
	exiting    bool // True when leaving with the workday still open

	closedSession *models.WorkSession
}

// workdayTickMsg is sent every second to refresh the timer
type workdayTickMsg struct{}

// pulseTickMsg drives the header animation
type pulseTickMsg struct{}

// NewWorkdayModel creates the timer model for an already-loaded manager.
func NewWorkdayModel(manager *workday.Manager, user *models.Profile) WorkdayModel {
	noteInput := textinput.New()
	noteInput.Placeholder = "note for today's session"
	noteInput.CharLimit = 120
	noteInput.Width = 40

	return WorkdayModel{
		manager:   manager,
		user:      user,
		now:       time.Now(),
		noteInput: noteInput,
	}
}

// Init starts the timer and animation tickers
func (m WorkdayModel) Init() tea.Cmd {
	return tea.Batch(
		tea.Tick(time.Second, func(t time.Time) tea.Msg {
			return workdayTickMsg{}
		}),
		tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
			return pulseTickMsg{}
		}),
	)
}

// Update handles messages
func (m WorkdayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case workdayTickMsg:
		m.now = time.Now()
		if !m.checkedOut && !m.exiting {
			return m, tea.Tick(time.Second, func(t time.Time) tea.Msg {
				return workdayTickMsg{}
			})
		}
		return m, nil

	case pulseTickMsg:
		m.animation = (m.animation + 1) % 2
		if !m.checkedOut && !m.exiting {
			return m, tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
				return pulseTickMsg{}
			})
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.noteActive {
			return m.updateNoteInput(msg)
		}
		return m.handleKey(msg)
	}

	return m, nil
}

func (m WorkdayModel) updateNoteInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.note = m.noteInput.Value()
		m.noteActive = false
		return m, nil
	case "esc":
		m.noteInput.SetValue(m.note)
		m.noteActive = false
		return m, nil
	}
	var cmd tea.Cmd
	m.noteInput, cmd = m.noteInput.Update(msg)
	return m, cmd
}

func (m WorkdayModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.opErr = nil

	switch msg.String() {
	case "r":
		return m.startBreak(models.BreakRest)
	case "l":
		return m.startBreak(models.BreakLunch)
	case "d":
		return m.startBreak(models.BreakMedical)
	case "t":
		return m.startBreak(models.BreakOther)
	case "e":
		_, err := m.manager.EndBreak()
		if err != nil {
			m.opErr = err
		}
		return m, nil
	case "n":
		m.noteActive = true
		m.noteInput.Focus()
		return m, textinput.Blink
	case "o":
		session, err := m.manager.CheckOut(m.note)
		if err != nil {
			m.opErr = err
			return m, nil
		}
		m.closedSession = session
		m.checkedOut = true
		return m, tea.Quit
	case "ctrl+c", "esc", "q":
		m.exiting = true
		return m, tea.Quit
	}

	return m, nil
}

func (m WorkdayModel) startBreak(breakType string) (tea.Model, tea.Cmd) {
	if _, err := m.manager.StartBreak(m.user.ID, breakType, ""); err != nil {
		m.opErr = err
	}
	return m, nil
}

// View renders the workday TUI
func (m WorkdayModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	helpBar := m.renderHelpBar()
	contentHeight := m.height - 2

	if m.width < 84 {
		// Narrow view: just the timer panel
		return lipgloss.JoinVertical(
			lipgloss.Left,
			m.renderTimerPanel(m.width, contentHeight),
			helpBar,
		)
	}

	// Wide view: timer on the left, workday details on the right
	leftWidth := m.width / 2
	rightWidth := m.width - leftWidth - 2

	content := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.renderTimerPanel(leftWidth, contentHeight),
		"  ",
		m.renderDetailsPanel(rightWidth, contentHeight),
	)

	return lipgloss.JoinVertical(lipgloss.Left, content, helpBar)
}

// renderTimerPanel renders the big clock and status header
func (m WorkdayModel) renderTimerPanel(width, height int) string {
	var components []string

	onBreak := m.manager.Status() == models.StatusOnBreak

	headerText := "● WORKING"
	headerColor := ColorSuccess
	if onBreak {
		headerText = "◌ ON BREAK"
		headerColor = ColorWarning
	}
	if m.animation == 1 {
		headerText = "  " + headerText
	}

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(headerColor)).
		Bold(true).
		Align(lipgloss.Center).
		Width(width)
	components = append(components, headerStyle.Render(headerText))

	nameStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentMain)).
		Bold(true).
		Align(lipgloss.Center).
		Width(width)
	components = append(components, nameStyle.Render(m.user.FullName))

	// Net worked time, recomputed from timestamps
	clock := renderBigClock(timeutil.FormatDuration(m.manager.NetElapsedSeconds(m.now)), width)
	components = append(components, clock)

	labelStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSecondaryText)).
		Italic(true).
		Align(lipgloss.Center).
		Width(width)
	components = append(components, labelStyle.Render("net worked time"))

	if onBreak {
		ab := m.manager.ActiveBreak()
		breakLine := fmt.Sprintf("%s break · %s",
			models.BreakTypeLabel(ab.BreakType),
			timeutil.FormatDuration(timeutil.ElapsedSeconds(ab.StartedAt, nil, m.now)))
		breakStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorWarning)).
			Align(lipgloss.Center).
			Width(width)
		components = append(components, breakStyle.Render(breakLine))
	}

	if m.noteActive {
		inputStyle := lipgloss.NewStyle().
			Align(lipgloss.Center).
			Width(width)
		components = append(components, inputStyle.Render(m.noteInput.View()))
	}

	if m.opErr != nil {
		errStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorError)).
			Align(lipgloss.Center).
			Width(width)
		components = append(components, errStyle.Render(m.opErr.Error()))
	}

	content := strings.Join(components, "\n\n")

	panelStyle := lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center)

	return panelStyle.Render(content)
}

// renderDetailsPanel renders the right panel with session details
func (m WorkdayModel) renderDetailsPanel(width, height int) string {
	session := m.manager.Current()
	var b strings.Builder

	b.WriteString("\n")

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorPrimaryText)).
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccentMain)).
		Width(width - 12).
		Padding(0, 1)
	b.WriteString(titleStyle.Render("Workday " + session.CheckIn.Format("Mon, 02 Jan")))
	b.WriteString("\n\n")

	lineStyle := lipgloss.NewStyle().
		Align(lipgloss.Center).
		Width(width - 8)
	value := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))

	b.WriteString(lineStyle.Render("🕘 Checked in: " + value.Render(timeutil.FormatClock(session.CheckIn))))
	b.WriteString("\n")

	totalSecs := timeutil.ElapsedSeconds(session.CheckIn, nil, m.now)
	b.WriteString(lineStyle.Render("⏳ Total elapsed: " + value.Render(timeutil.FormatDuration(totalSecs))))
	b.WriteString("\n")

	pause := 0
	for _, brk := range m.manager.Breaks() {
		if brk.DurationMinutes != nil {
			pause += *brk.DurationMinutes
		}
	}
	b.WriteString(lineStyle.Render("☕ Pause so far: " + value.Render(timeutil.FormatMinutes(pause))))
	b.WriteString("\n\n")

	breaks := m.manager.Breaks()
	if len(breaks) == 0 {
		b.WriteString(lineStyle.Render(muted.Render("No breaks yet")))
		b.WriteString("\n")
	} else {
		for _, brk := range breaks {
			var line string
			if brk.EndedAt != nil {
				line = fmt.Sprintf("%s  %s – %s (%s)",
					models.BreakTypeLabel(brk.BreakType),
					timeutil.FormatClock(brk.StartedAt),
					timeutil.FormatClock(*brk.EndedAt),
					timeutil.FormatMinutes(*brk.DurationMinutes))
			} else {
				line = fmt.Sprintf("%s  %s – ongoing",
					models.BreakTypeLabel(brk.BreakType),
					timeutil.FormatClock(brk.StartedAt))
			}
			b.WriteString(lineStyle.Render(muted.Render(line)))
			b.WriteString("\n")
		}
	}

	if m.note != "" {
		b.WriteString("\n")
		b.WriteString(lineStyle.Render("📝 " + muted.Render(m.note)))
		b.WriteString("\n")
	}

	panelStyle := lipgloss.NewStyle().
		Width(width).
		Height(height)

	return panelStyle.Render(b.String())
}

// renderHelpBar renders the key hints at the bottom
func (m WorkdayModel) renderHelpBar() string {
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true).
		Align(lipgloss.Center).
		Width(m.width)

	var helpText string
	if m.noteActive {
		helpText = "enter save note · esc cancel"
	} else if m.manager.Status() == models.StatusOnBreak {
		helpText = "e end break · o check out · n note · esc/q leave (keep running)"
	} else {
		helpText = "r/l/d/t break (rest/lunch/medical/other) · o check out · n note · esc/q leave (keep running)"
	}

	return helpStyle.Render(helpText)
}
