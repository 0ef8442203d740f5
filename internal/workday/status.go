package workday

import (
	"github.com/javiermh/jornada/internal/models"
)

// DeriveStatus computes the workday status from the current session and
// its breaks. Status is never stored — every mutation recomputes it
// through here so the cached value cannot drift.
func DeriveStatus(session *models.WorkSession, breaks []models.Break) models.WorkdayStatus {
	if session == nil {
		return models.StatusIdle
	}
	if session.Status != models.SessionActive {
		return models.StatusCompleted
	}
	for i := range breaks {
		if breaks[i].Open() {
			return models.StatusOnBreak
		}
	}
	return models.StatusActive
}
