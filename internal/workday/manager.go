// Package workday owns the session lifecycle state machine: check-in,
// check-out, categorized breaks, and the derived workday status.
package workday

import (
	"fmt"
	"time"

	"github.com/javiermh/jornada/internal/models"
	"github.com/javiermh/jornada/internal/timeutil"
)

// RecordStore is the persistence contract the manager depends on.
// *db.Store satisfies it; tests may substitute their own.
type RecordStore interface {
	CreateSession(session *models.WorkSession) error
	UpdateSession(id string, fields map[string]any) (*models.WorkSession, error)
	FindActiveSession(userID string, since time.Time) (*models.WorkSession, error)
	FindCompletedSession(userID string, since time.Time) (*models.WorkSession, error)
	ListCompletedSessions(userID string, limit int) ([]models.WorkSession, error)
	CreateBreak(brk *models.Break) error
	UpdateBreak(id string, fields map[string]any) (*models.Break, error)
	ListBreaks(sessionID string) ([]models.Break, error)
}

// Manager tracks the signed-in user's current work session and breaks.
// The store is the source of truth across restarts; the manager only
// reconciles with it on explicit Load calls. Every mutation that fails
// at the store leaves the in-memory state at its last known good value.
type Manager struct {
	store RecordStore
	clock timeutil.Clock

	current *models.WorkSession
	breaks  []models.Break
	status  models.WorkdayStatus
}

// NewManager creates a manager with the given collaborators.
func NewManager(store RecordStore, clock timeutil.Clock) *Manager {
	return &Manager{
		store:  store,
		clock:  clock,
		status: models.StatusIdle,
	}
}

// LoadToday replaces the in-memory state with today's session for the
// user: the active one if it exists (with its breaks), else today's
// completed one, else nothing. On store error the prior state is kept.
func (m *Manager) LoadToday(userID string) error {
	todayStart := timeutil.StartOfDay(m.clock.Now())

	session, err := m.store.FindActiveSession(userID, todayStart)
	if err != nil {
		return fmt.Errorf("failed to load today's session: %w", err)
	}

	if session != nil {
		breaks, err := m.store.ListBreaks(session.ID)
		if err != nil {
			return fmt.Errorf("failed to load breaks: %w", err)
		}
		m.adopt(session, breaks)
		return nil
	}

	completed, err := m.store.FindCompletedSession(userID, todayStart)
	if err != nil {
		return fmt.Errorf("failed to load today's session: %w", err)
	}
	if completed != nil {
		m.adopt(completed, nil)
		return nil
	}

	m.adopt(nil, nil)
	return nil
}

// CheckIn opens a new active session for the user at the current time.
func (m *Manager) CheckIn(userID string) (*models.WorkSession, error) {
	if m.current != nil {
		if m.current.Status == models.SessionActive {
			return nil, ErrAlreadyCheckedIn
		}
		return nil, ErrDayCompleted
	}

	session := &models.WorkSession{
		UserID:       userID,
		CheckIn:      m.clock.Now(),
		Status:       models.SessionActive,
		PauseMinutes: 0,
	}
	if err := m.store.CreateSession(session); err != nil {
		return nil, err
	}

	m.adopt(session, nil)
	return session, nil
}

// CheckOut closes the current session. An open break is closed at the
// checkout instant and counted into pause minutes, so the persisted net
// minutes match what the live timer showed. Net minutes are the whole
// minutes between check-in and check-out minus pause minutes, floored
// at zero.
func (m *Manager) CheckOut(notes string) (*models.WorkSession, error) {
	if m.current == nil || m.current.Status != models.SessionActive {
		return nil, ErrNoActiveSession
	}

	now := m.clock.Now()

	closedBreaks := m.breaks
	if ab := m.ActiveBreak(); ab != nil {
		ended, err := m.closeBreak(ab, now)
		if err != nil {
			return nil, err
		}
		closedBreaks = replaceBreak(m.breaks, *ended)
	}

	totalMinutes := timeutil.ElapsedMinutes(m.current.CheckIn, now)
	pauseMinutes := 0
	for i := range closedBreaks {
		if closedBreaks[i].EndedAt != nil && closedBreaks[i].DurationMinutes != nil {
			pauseMinutes += *closedBreaks[i].DurationMinutes
		}
	}
	netMinutes := totalMinutes - pauseMinutes
	if netMinutes < 0 {
		netMinutes = 0
	}

	fields := map[string]any{
		"check_out":     now,
		"net_minutes":   netMinutes,
		"pause_minutes": pauseMinutes,
		"status":        models.SessionCompleted,
	}
	if notes != "" {
		fields["notes"] = notes
	}

	updated, err := m.store.UpdateSession(m.current.ID, fields)
	if err != nil {
		return nil, err
	}

	m.adopt(updated, closedBreaks)
	return updated, nil
}

// StartBreak opens a break of the given type on the current session.
func (m *Manager) StartBreak(userID, breakType, notes string) (*models.Break, error) {
	if m.current == nil || m.current.Status != models.SessionActive {
		return nil, ErrNoActiveSession
	}
	if m.ActiveBreak() != nil {
		return nil, ErrBreakAlreadyActive
	}

	brk := &models.Break{
		SessionID: m.current.ID,
		UserID:    userID,
		BreakType: breakType,
		StartedAt: m.clock.Now(),
		Notes:     notes,
	}
	if err := m.store.CreateBreak(brk); err != nil {
		return nil, err
	}

	m.adopt(m.current, append(m.breaks, *brk))
	return brk, nil
}

// EndBreak closes the open break and records its floored duration.
func (m *Manager) EndBreak() (*models.Break, error) {
	ab := m.ActiveBreak()
	if ab == nil {
		return nil, ErrNoOpenBreak
	}

	ended, err := m.closeBreak(ab, m.clock.Now())
	if err != nil {
		return nil, err
	}

	m.adopt(m.current, replaceBreak(m.breaks, *ended))
	return ended, nil
}

func (m *Manager) closeBreak(brk *models.Break, endedAt time.Time) (*models.Break, error) {
	duration := timeutil.ElapsedMinutes(brk.StartedAt, endedAt)
	return m.store.UpdateBreak(brk.ID, map[string]any{
		"ended_at":         endedAt,
		"duration_minutes": duration,
	})
}

// ActiveBreak returns the open break, or nil.
func (m *Manager) ActiveBreak() *models.Break {
	for i := range m.breaks {
		if m.breaks[i].Open() {
			return &m.breaks[i]
		}
	}
	return nil
}

// Current returns the tracked session, or nil.
func (m *Manager) Current() *models.WorkSession {
	return m.current
}

// Breaks returns the tracked breaks in chronological start order.
func (m *Manager) Breaks() []models.Break {
	return m.breaks
}

// Status returns the cached derived workday status.
func (m *Manager) Status() models.WorkdayStatus {
	return m.status
}

// CompletedSessions returns the user's closed sessions, most recent
// first.
func (m *Manager) CompletedSessions(userID string, limit int) ([]models.WorkSession, error) {
	return m.store.ListCompletedSessions(userID, limit)
}

// NetElapsedSeconds is the live-timer value: seconds since check-in
// minus completed break minutes minus the open break's elapsed time,
// floored at zero. For a closed session it reports the persisted net
// minutes.
func (m *Manager) NetElapsedSeconds(now time.Time) int {
	s := m.current
	if s == nil {
		return 0
	}
	if s.Status != models.SessionActive {
		if s.NetMinutes != nil {
			return *s.NetMinutes * 60
		}
		return 0
	}

	net := timeutil.ElapsedSeconds(s.CheckIn, nil, now)
	for i := range m.breaks {
		b := &m.breaks[i]
		if b.EndedAt != nil {
			if b.DurationMinutes != nil {
				net -= *b.DurationMinutes * 60
			}
		} else {
			net -= timeutil.ElapsedSeconds(b.StartedAt, nil, now)
		}
	}
	if net < 0 {
		return 0
	}
	return net
}

// adopt replaces the in-memory state wholesale and recomputes status.
func (m *Manager) adopt(session *models.WorkSession, breaks []models.Break) {
	m.current = session
	m.breaks = breaks
	m.status = DeriveStatus(session, breaks)
}

func replaceBreak(breaks []models.Break, updated models.Break) []models.Break {
	out := make([]models.Break, len(breaks))
	copy(out, breaks)
	for i := range out {
		if out[i].ID == updated.ID {
			out[i] = updated
			break
		}
	}
	return out
}
