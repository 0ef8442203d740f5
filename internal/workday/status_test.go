package workday

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/javiermh/jornada/internal/models"
)

func TestDeriveStatus(t *testing.T) {
	now := time.Date(2026, 2, 19, 8, 0, 0, 0, time.UTC)
	active := &models.WorkSession{Status: models.SessionActive, CheckIn: now}
	completed := &models.WorkSession{Status: models.SessionCompleted, CheckIn: now}
	edited := &models.WorkSession{Status: models.SessionEdited, CheckIn: now}

	openBreak := models.Break{StartedAt: now}
	ended := now.Add(10 * time.Minute)
	closedBreak := models.Break{StartedAt: now, EndedAt: &ended}

	tests := []struct {
		name    string
		session *models.WorkSession
		breaks  []models.Break
		want    models.WorkdayStatus
	}{
		{"no session", nil, nil, models.StatusIdle},
		{"active without breaks", active, nil, models.StatusActive},
		{"active with closed break", active, []models.Break{closedBreak}, models.StatusActive},
		{"active with open break", active, []models.Break{openBreak}, models.StatusOnBreak},
		{"closed and open breaks", active, []models.Break{closedBreak, openBreak}, models.StatusOnBreak},
		{"completed session", completed, nil, models.StatusCompleted},
		{"edited session counts as completed", edited, nil, models.StatusCompleted},
		{"completed ignores breaks", completed, []models.Break{closedBreak}, models.StatusCompleted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveStatus(tt.session, tt.breaks))
		})
	}
}
