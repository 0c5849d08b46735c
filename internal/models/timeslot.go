package models

import (
	"fmt"
	"strconv"
	"strings"
)

// ClockTime is a time of day expressed as minutes since midnight.
type ClockTime int

// ParseClock parses an "HH:MM" string into a ClockTime.
func ParseClock(raw string) (ClockTime, error) {
	parts := strings.SplitN(strings.TrimSpace(raw), ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q, expected HH:MM", raw)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("invalid hour in %q", raw)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("invalid minute in %q", raw)
	}
	return ClockTime(hour*60 + minute), nil
}

// MustClock is ParseClock for trusted literals; it panics on malformed input.
func MustClock(raw string) ClockTime {
	t, err := ParseClock(raw)
	if err != nil {
		panic(err)
	}
	return t
}

// String formats the time as "HH:MM".
func (t ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// TimeSlot is a single weekly class occurrence: a day plus a half-open
// [Start, End) time range. It is an immutable value type.
type TimeSlot struct {
	Day   Day
	Start ClockTime
	End   ClockTime
}

// NewTimeSlot validates and builds a TimeSlot. Start must precede End.
func NewTimeSlot(day Day, start, end ClockTime) (TimeSlot, error) {
	if day.Index() == 0 {
		return TimeSlot{}, fmt.Errorf("unknown day %q", string(day))
	}
	if start >= end {
		return TimeSlot{}, fmt.Errorf("slot start %s must precede end %s", start, end)
	}
	return TimeSlot{Day: day, Start: start, End: end}, nil
}

// Overlaps reports whether two slots share a day with intersecting ranges.
// Ranges are half-open, so back-to-back slots do not overlap.
func (s TimeSlot) Overlaps(other TimeSlot) bool {
	if s.Day != other.Day {
		return false
	}
	return !(s.End <= other.Start || s.Start >= other.End)
}

// Duration returns the slot length in minutes.
func (s TimeSlot) Duration() int {
	return int(s.End - s.Start)
}

// String renders the slot as "DAY HH:MM-HH:MM".
func (s TimeSlot) String() string {
	return fmt.Sprintf("%s %s-%s", s.Day, s.Start, s.End)
}
