package models

import (
	"time"
)

// Session status values
const (
	SessionActive    = "active"
	SessionCompleted = "completed"
	SessionEdited    = "edited"
)

// Break type values
const (
	BreakRest    = "rest"
	BreakLunch   = "lunch"
	BreakMedical = "medical"
	BreakOther   = "other"
)

// WorkdayStatus is the derived UI-facing state of the current workday.
// It is never persisted — always recomputed from session and break rows.
type WorkdayStatus string

const (
	StatusIdle      WorkdayStatus = "idle"
	StatusActive    WorkdayStatus = "active"
	StatusOnBreak   WorkdayStatus = "on_break"
	StatusCompleted WorkdayStatus = "completed"
)

// WorkSession represents one check-in to check-out span of a workday
type WorkSession struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	UserID       string     `gorm:"not null;index" json:"user_id"`
	CheckIn      time.Time  `gorm:"not null" json:"check_in"`
	CheckOut     *time.Time `json:"check_out"`
	NetMinutes   *int       `json:"net_minutes"` // worked minutes excluding breaks, set on check-out
	PauseMinutes int        `gorm:"default:0" json:"pause_minutes"`
	Notes        string     `json:"notes"`
	Status       string     `gorm:"default:active;index" json:"status"` // active, completed, edited

	// Relationships
	Breaks []Break `gorm:"foreignKey:SessionID" json:"breaks"`
}

// Break is a timed pause within a work session, categorized by type
type Break struct {
	ID string `gorm:"primaryKey" json:"id"`

	SessionID       string     `gorm:"not null;index" json:"session_id"`
	UserID          string     `gorm:"not null" json:"user_id"`
	BreakType       string     `gorm:"not null" json:"break_type"` // rest, lunch, medical, other
	StartedAt       time.Time  `gorm:"not null" json:"started_at"`
	EndedAt         *time.Time `json:"ended_at"`
	DurationMinutes *int       `json:"duration_minutes"` // set once when the break ends
	Notes           string     `json:"notes"`
}

// Open reports whether the break is still running.
func (b *Break) Open() bool {
	return b.EndedAt == nil
}

// BreakTypeLabel returns the display label for a break type.
func BreakTypeLabel(breakType string) string {
	switch breakType {
	case BreakRest:
		return "Rest"
	case BreakLunch:
		return "Lunch"
	case BreakMedical:
		return "Medical"
	case BreakOther:
		return "Other"
	default:
		return breakType
	}
}

// ValidBreakType reports whether the given string is a known break type.
func ValidBreakType(breakType string) bool {
	switch breakType {
	case BreakRest, BreakLunch, BreakMedical, BreakOther:
		return true
	}
	return false
}
