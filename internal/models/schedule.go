package models

import "fmt"

// ScheduleSlot binds one subject to the single slot chosen for it.
type ScheduleSlot struct {
	Subject  Subject
	TimeSlot TimeSlot
}

// ConflictError reports two overlapping slots inside a schedule. Given
// correct slot selection this is unreachable and indicates a defect in the
// selector, not a runtime condition.
type ConflictError struct {
	First  TimeSlot
	Second TimeSlot
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("schedule conflict between %s and %s", e.First, e.Second)
}

// Schedule is a conflict-free collection of ScheduleSlots with derived
// total credits. The no-overlap invariant is enforced at construction.
type Schedule struct {
	Slots        []ScheduleSlot
	TotalCredits int
}

// NewSchedule validates the no-overlap invariant and derives total credits.
func NewSchedule(slots []ScheduleSlot) (*Schedule, error) {
	for i := range slots {
		for j := i + 1; j < len(slots); j++ {
			if slots[i].TimeSlot.Overlaps(slots[j].TimeSlot) {
				return nil, &ConflictError{First: slots[i].TimeSlot, Second: slots[j].TimeSlot}
			}
		}
	}

	total := 0
	for _, slot := range slots {
		total += slot.Subject.Credits
	}

	return &Schedule{Slots: slots, TotalCredits: total}, nil
}

// DailyMinutes sums the scheduled minutes on the given day.
func (s *Schedule) DailyMinutes(day Day) int {
	minutes := 0
	for _, slot := range s.Slots {
		if slot.TimeSlot.Day == day {
			minutes += slot.TimeSlot.Duration()
		}
	}
	return minutes
}

// DailyHours returns whole scheduled hours on the given day.
func (s *Schedule) DailyHours(day Day) int {
	return s.DailyMinutes(day) / 60
}

// SlotsOn returns the slots scheduled on the given day, in stored order.
func (s *Schedule) SlotsOn(day Day) []TimeSlot {
	var slots []TimeSlot
	for _, slot := range s.Slots {
		if slot.TimeSlot.Day == day {
			slots = append(slots, slot.TimeSlot)
		}
	}
	return slots
}
