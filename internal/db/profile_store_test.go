package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/javiermh/jornada/internal/models"
)

func TestLoginProfile_CreatesAndActivates(t *testing.T) {
	store := newTestStore(t)

	active, err := store.ActiveProfile()
	require.NoError(t, err)
	assert.Nil(t, active, "fresh store has nobody logged in")

	profile, err := store.LoginProfile("Marta Ruiz", "Europe/Madrid")
	require.NoError(t, err)
	assert.NotEmpty(t, profile.ID)
	assert.True(t, profile.IsActive)
	assert.Equal(t, "employee", profile.Role)

	active, err = store.ActiveProfile()
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, profile.ID, active.ID)
}

func TestLoginProfile_SwitchKeepsSingleActive(t *testing.T) {
	store := newTestStore(t)

	first, err := store.LoginProfile("Marta Ruiz", "Europe/Madrid")
	require.NoError(t, err)
	second, err := store.LoginProfile("Iker Soler", "Europe/Madrid")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	active, err := store.ActiveProfile()
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, second.ID, active.ID, "switching must leave exactly one active profile")

	// Logging back in reuses the existing profile
	again, err := store.LoginProfile("Marta Ruiz", "Europe/Madrid")
	require.NoError(t, err)
	assert.Equal(t, first.ID, again.ID)
}

func TestLogoutProfiles(t *testing.T) {
	store := newTestStore(t)

	_, err := store.LoginProfile("Marta Ruiz", "Europe/Madrid")
	require.NoError(t, err)
	require.NoError(t, store.LogoutProfiles())

	active, err := store.ActiveProfile()
	require.NoError(t, err)
	assert.Nil(t, active)
}

func TestAuditLog_CreateAndList(t *testing.T) {
	store := newTestStore(t)

	entry := &models.AuditLog{
		EditorID:  "admin-1",
		TargetID:  "session-1",
		TableName: "work_sessions",
		Action:    models.AuditUpdate,
		OldData:   `{"net_minutes":480}`,
		NewData:   `{"net_minutes":450}`,
		Reason:    "forgot to log lunch",
	}
	require.NoError(t, store.CreateAuditLog(entry))
	assert.NotEmpty(t, entry.ID)

	entries, err := store.ListAuditLogs("session-1")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "forgot to log lunch", entries[0].Reason)

	none, err := store.ListAuditLogs("session-2")
	require.NoError(t, err)
	assert.Empty(t, none)
}
