package workday

import "errors"

// Precondition errors returned by the session manager. Callers can
// distinguish "nothing to do" from "invalid transition" instead of the
// operations silently no-opping.
var (
	ErrNoActiveSession    = errors.New("no active work session")
	ErrAlreadyCheckedIn   = errors.New("already checked in")
	ErrDayCompleted       = errors.New("workday already completed")
	ErrBreakAlreadyActive = errors.New("a break is already active")
	ErrNoOpenBreak        = errors.New("no open break")
)
