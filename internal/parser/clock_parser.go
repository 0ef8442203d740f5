package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ParseClockTime parses a time-of-day override for check-in/check-out
// corrections.
// Supported formats:
// - HH:MM (e.g., "08:30") — today at that time
// - HH:MM:SS (e.g., "08:30:15")
// - dd/mm HH:MM (e.g., "19/02 08:30") — a day of the current year
func ParseClockTime(input string, now time.Time) (*time.Time, error) {
	if input == "" {
		return nil, nil
	}

	input = strings.TrimSpace(input)

	if t, err := parseTimeOfDay(input, now); err == nil {
		return t, nil
	}

	if t, err := parseDayAndTime(input, now); err == nil {
		return t, nil
	}

	return nil, fmt.Errorf("invalid time format. Use: HH:MM, HH:MM:SS, or dd/mm HH:MM")
}

// parseTimeOfDay parses HH:MM and HH:MM:SS on the current day
func parseTimeOfDay(input string, now time.Time) (*time.Time, error) {
	clockRegex := regexp.MustCompile(`^(\d{1,2}):(\d{2})(?::(\d{2}))?$`)
	matches := clockRegex.FindStringSubmatch(input)

	if matches == nil {
		return nil, fmt.Errorf("invalid clock format")
	}

	hour, _ := strconv.Atoi(matches[1])
	minute, _ := strconv.Atoi(matches[2])
	second := 0
	if matches[3] != "" {
		second, _ = strconv.Atoi(matches[3])
	}

	if hour > 23 {
		return nil, fmt.Errorf("hour must be between 0 and 23")
	}
	if minute > 59 {
		return nil, fmt.Errorf("minute must be between 0 and 59")
	}
	if second > 59 {
		return nil, fmt.Errorf("second must be between 0 and 59")
	}

	t := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, second, 0, now.Location())
	return &t, nil
}

// parseDayAndTime parses "dd/mm HH:MM" within the current year
func parseDayAndTime(input string, now time.Time) (*time.Time, error) {
	dayRegex := regexp.MustCompile(`^(\d{1,2})/(\d{1,2})\s+(\d{1,2}):(\d{2})$`)
	matches := dayRegex.FindStringSubmatch(input)

	if matches == nil {
		return nil, fmt.Errorf("invalid day format")
	}

	day, _ := strconv.Atoi(matches[1])
	month, _ := strconv.Atoi(matches[2])
	hour, _ := strconv.Atoi(matches[3])
	minute, _ := strconv.Atoi(matches[4])

	if day < 1 || day > 31 {
		return nil, fmt.Errorf("day must be between 1 and 31")
	}
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("month must be between 1 and 12")
	}
	if hour > 23 {
		return nil, fmt.Errorf("hour must be between 0 and 23")
	}
	if minute > 59 {
		return nil, fmt.Errorf("minute must be between 0 and 59")
	}

	t := time.Date(now.Year(), time.Month(month), day, hour, minute, 0, 0, now.Location())

	// Reject dates that normalized away (e.g. 31/02)
	if t.Day() != day || t.Month() != time.Month(month) {
		return nil, fmt.Errorf("invalid date")
	}

	return &t, nil
}
