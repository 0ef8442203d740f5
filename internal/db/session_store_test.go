package db

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/javiermh/jornada/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	store, err := NewStore(gdb)
	require.NoError(t, err)
	return store
}

func newSession(userID string, checkIn time.Time, status string) *models.WorkSession {
	return &models.WorkSession{
		UserID:  userID,
		CheckIn: checkIn,
		Status:  status,
	}
}

func TestCreateSession_AssignsID(t *testing.T) {
	store := newTestStore(t)

	session := newSession("u1", time.Date(2026, 2, 19, 8, 0, 0, 0, time.UTC), models.SessionActive)
	require.NoError(t, store.CreateSession(session))

	assert.NotEmpty(t, session.ID)

	reloaded, err := store.GetSessionByID(session.ID)
	require.NoError(t, err)
	assert.Equal(t, "u1", reloaded.UserID)
	assert.Equal(t, models.SessionActive, reloaded.Status)
}

func TestFindActiveSession(t *testing.T) {
	store := newTestStore(t)
	todayStart := time.Date(2026, 2, 19, 0, 0, 0, 0, time.UTC)

	found, err := store.FindActiveSession("u1", todayStart)
	require.NoError(t, err)
	assert.Nil(t, found, "no session is not an error")

	// Yesterday's active session is out of range
	require.NoError(t, store.CreateSession(newSession("u1", todayStart.Add(-10*time.Hour), models.SessionActive)))
	found, err = store.FindActiveSession("u1", todayStart)
	require.NoError(t, err)
	assert.Nil(t, found)

	session := newSession("u1", todayStart.Add(8*time.Hour), models.SessionActive)
	require.NoError(t, store.CreateSession(session))

	found, err = store.FindActiveSession("u1", todayStart)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, session.ID, found.ID)

	// Another user's sessions are invisible
	found, err = store.FindActiveSession("u2", todayStart)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestFindCompletedSession(t *testing.T) {
	store := newTestStore(t)
	todayStart := time.Date(2026, 2, 19, 0, 0, 0, 0, time.UTC)

	session := newSession("u1", todayStart.Add(8*time.Hour), models.SessionCompleted)
	require.NoError(t, store.CreateSession(session))

	found, err := store.FindCompletedSession("u1", todayStart)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, session.ID, found.ID)

	found, err = store.FindActiveSession("u1", todayStart)
	require.NoError(t, err)
	assert.Nil(t, found, "completed session must not match the active lookup")
}

func TestUpdateSession_PartialFields(t *testing.T) {
	store := newTestStore(t)
	checkIn := time.Date(2026, 2, 19, 8, 0, 0, 0, time.UTC)

	session := newSession("u1", checkIn, models.SessionActive)
	require.NoError(t, store.CreateSession(session))

	checkOut := checkIn.Add(8 * time.Hour)
	updated, err := store.UpdateSession(session.ID, map[string]any{
		"check_out":     checkOut,
		"net_minutes":   450,
		"pause_minutes": 30,
		"status":        models.SessionCompleted,
	})
	require.NoError(t, err)

	require.NotNil(t, updated.CheckOut)
	assert.True(t, updated.CheckOut.Equal(checkOut))
	require.NotNil(t, updated.NetMinutes)
	assert.Equal(t, 450, *updated.NetMinutes)
	assert.Equal(t, 30, updated.PauseMinutes)
	assert.Equal(t, models.SessionCompleted, updated.Status)
	assert.Equal(t, "u1", updated.UserID, "untouched fields survive a partial update")
}

func TestUpdateSession_MissingID(t *testing.T) {
	store := newTestStore(t)

	_, err := store.UpdateSession("missing", map[string]any{"status": models.SessionCompleted})
	assert.Error(t, err)
}

func TestListCompletedSessions_OrderAndLimit(t *testing.T) {
	store := newTestStore(t)
	base := time.Date(2026, 2, 16, 9, 0, 0, 0, time.UTC)

	for day := 0; day < 3; day++ {
		session := newSession("u1", base.AddDate(0, 0, day), models.SessionCompleted)
		require.NoError(t, store.CreateSession(session))
	}
	// Active and edited sessions
	require.NoError(t, store.CreateSession(newSession("u1", base.AddDate(0, 0, 3), models.SessionActive)))
	edited := newSession("u1", base.AddDate(0, 0, -1), models.SessionEdited)
	require.NoError(t, store.CreateSession(edited))

	sessions, err := store.ListCompletedSessions("u1", 10)
	require.NoError(t, err)
	require.Len(t, sessions, 4, "edited sessions appear in history, active ones do not")
	assert.Equal(t, 18, sessions[0].CheckIn.Day(), "most recent first")

	limited, err := store.ListCompletedSessions("u1", 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestListSessionsInRange(t *testing.T) {
	store := newTestStore(t)
	base := time.Date(2026, 2, 16, 9, 0, 0, 0, time.UTC)

	for day := 0; day < 4; day++ {
		checkIn := base.AddDate(0, 0, day)
		checkOut := checkIn.Add(8 * time.Hour)
		session := newSession("u1", checkIn, models.SessionCompleted)
		session.CheckOut = &checkOut
		require.NoError(t, store.CreateSession(session))
	}
	// Still-open session is excluded
	require.NoError(t, store.CreateSession(newSession("u1", base.AddDate(0, 0, 1).Add(time.Hour), models.SessionActive)))

	from := base.AddDate(0, 0, 1).Truncate(24 * time.Hour)
	to := base.AddDate(0, 0, 3).Truncate(24 * time.Hour)
	sessions, err := store.ListSessionsInRange("u1", from, to)
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.True(t, sessions[0].CheckIn.Before(sessions[1].CheckIn), "oldest first")
}

func TestBreaks_CreateUpdateList(t *testing.T) {
	store := newTestStore(t)
	checkIn := time.Date(2026, 2, 19, 8, 0, 0, 0, time.UTC)

	session := newSession("u1", checkIn, models.SessionActive)
	require.NoError(t, store.CreateSession(session))

	second := &models.Break{
		SessionID: session.ID,
		UserID:    "u1",
		BreakType: models.BreakLunch,
		StartedAt: checkIn.Add(4 * time.Hour),
	}
	first := &models.Break{
		SessionID: session.ID,
		UserID:    "u1",
		BreakType: models.BreakRest,
		StartedAt: checkIn.Add(2 * time.Hour),
	}
	// Inserted out of order on purpose
	require.NoError(t, store.CreateBreak(second))
	require.NoError(t, store.CreateBreak(first))
	assert.NotEmpty(t, first.ID)

	breaks, err := store.ListBreaks(session.ID)
	require.NoError(t, err)
	require.Len(t, breaks, 2)
	assert.Equal(t, models.BreakRest, breaks[0].BreakType, "chronological start order")
	assert.Equal(t, models.BreakLunch, breaks[1].BreakType)

	endedAt := first.StartedAt.Add(15 * time.Minute)
	updated, err := store.UpdateBreak(first.ID, map[string]any{
		"ended_at":         endedAt,
		"duration_minutes": 15,
	})
	require.NoError(t, err)
	require.NotNil(t, updated.EndedAt)
	require.NotNil(t, updated.DurationMinutes)
	assert.Equal(t, 15, *updated.DurationMinutes)

	// Breaks of other sessions stay invisible
	other, err := store.ListBreaks("other-session")
	require.NoError(t, err)
	assert.Empty(t, other)
}
