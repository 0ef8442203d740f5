// Package timeutil holds the pure time calculations shared by the
// session manager, the commands, and the live timer. No side effects,
// no UI awareness.
package timeutil

import (
	"fmt"
	"time"
)

// ElapsedSeconds returns the whole seconds between start and end.
// If end is nil, now is used as the reference. Never negative, so a
// skewed clock cannot produce a negative timer.
func ElapsedSeconds(start time.Time, end *time.Time, now time.Time) int {
	ref := now
	if end != nil {
		ref = *end
	}
	secs := int(ref.Sub(start) / time.Second)
	if secs < 0 {
		return 0
	}
	return secs
}

// ElapsedMinutes returns the whole minutes between start and end,
// floored, never negative.
func ElapsedMinutes(start, end time.Time) int {
	mins := int(end.Sub(start) / time.Minute)
	if mins < 0 {
		return 0
	}
	return mins
}

// FormatDuration renders a number of seconds as zero-padded HH:MM:SS.
// Negative input renders as 00:00:00.
func FormatDuration(totalSeconds int) string {
	if totalSeconds < 0 {
		totalSeconds = 0
	}
	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	seconds := totalSeconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}

// FormatMinutes renders a number of minutes as "7h 30m" for history
// and report tables.
func FormatMinutes(totalMinutes int) string {
	if totalMinutes < 0 {
		totalMinutes = 0
	}
	if totalMinutes < 60 {
		return fmt.Sprintf("%dm", totalMinutes)
	}
	return fmt.Sprintf("%dh %02dm", totalMinutes/60, totalMinutes%60)
}

// FormatClock renders a timestamp as a short local time, e.g. "09:15".
func FormatClock(t time.Time) string {
	return t.Format("15:04")
}

// FormatDate renders a timestamp as a short date, e.g. "19 Feb".
func FormatDate(t time.Time) string {
	return t.Format("02 Jan")
}

// StartOfDay returns local midnight for the day containing t.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
