package optimizer

import (
	"sort"

	"github.com/schedulewise/schedulewise-api/internal/models"
)

// Time-of-day boundaries for the hard early/late filters and the soft
// preference scoring, in minutes since midnight.
const (
	earliestAllowedStart = 9 * 60  // avoidEarlyClasses rejects starts before 09:00
	latestAllowedStart   = 18 * 60 // avoidLateClasses rejects starts after 18:00

	middayWindowStart = 10 * 60 // [10:00, 16:00] starts earn a bonus
	middayWindowEnd   = 16 * 60
	earlyStartPenalty = 8 * 60  // starts at or before 08:00 are penalized
	lateStartPenalty  = 19 * 60 // starts after 19:00 are penalized

	preferredDayBonus = 10.0
	middayBonus       = 5.0
	fringePenalty     = 3.0
)

// pickSlot returns the best available slot for the subject given the slots
// already committed in the schedule under construction, or false when the
// hard filters reject every candidate.
func pickSlot(subject models.Subject, committed []models.ScheduleSlot, constraint models.StudentConstraint) (models.TimeSlot, bool) {
	var valid []models.TimeSlot
	for _, slot := range subject.AvailableSlots {
		if slotAllowed(slot, committed, constraint) {
			valid = append(valid, slot)
		}
	}
	if len(valid) == 0 {
		return models.TimeSlot{}, false
	}

	// Stable sort keeps catalog order among equally scored slots.
	sort.SliceStable(valid, func(i, j int) bool {
		return slotPreference(valid[i], constraint) > slotPreference(valid[j], constraint)
	})
	return valid[0], true
}

// slotAllowed applies the hard constraints.
func slotAllowed(slot models.TimeSlot, committed []models.ScheduleSlot, constraint models.StudentConstraint) bool {
	for _, existing := range committed {
		if slot.Overlaps(existing.TimeSlot) {
			return false
		}
	}
	for _, blocked := range constraint.BlockedSlots {
		if slot.Overlaps(blocked) {
			return false
		}
	}
	if constraint.AvoidEarlyClasses && slot.Start < earliestAllowedStart {
		return false
	}
	if constraint.AvoidLateClasses && slot.Start > latestAllowedStart {
		return false
	}
	return true
}

// slotPreference computes the soft ranking score for a surviving candidate.
func slotPreference(slot models.TimeSlot, constraint models.StudentConstraint) float64 {
	score := 0.0
	if constraint.Prefers(slot.Day) {
		score += preferredDayBonus
	}
	if slot.Start >= middayWindowStart && slot.Start <= middayWindowEnd {
		score += middayBonus
	}
	if slot.Start <= earlyStartPenalty || slot.Start > lateStartPenalty {
		score -= fringePenalty
	}
	return score
}
