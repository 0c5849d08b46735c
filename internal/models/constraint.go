package models

const (
	defaultMinBreakMinutes = 30
	defaultMaxDailyHours   = 8
)

// StudentConstraint bundles the hard and soft scheduling preferences a
// student supplies per optimization call. Read-only input.
type StudentConstraint struct {
	BlockedSlots      []TimeSlot
	MinBreakMinutes   int
	MaxDailyHours     int
	PreferredDays     map[Day]struct{}
	AvoidEarlyClasses bool
	AvoidLateClasses  bool
}

// DefaultConstraint returns a constraint with the standard break and
// daily-hour limits and no blocked slots or day preferences.
func DefaultConstraint() StudentConstraint {
	return StudentConstraint{
		MinBreakMinutes: defaultMinBreakMinutes,
		MaxDailyHours:   defaultMaxDailyHours,
		PreferredDays:   make(map[Day]struct{}),
	}
}

// Prefers reports whether the given day is among the preferred days.
func (c StudentConstraint) Prefers(day Day) bool {
	_, ok := c.PreferredDays[day]
	return ok
}
