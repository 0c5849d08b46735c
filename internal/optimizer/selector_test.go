package optimizer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/schedulewise/schedulewise-api/internal/models"
)

func TestPickSlotAvoidsCommitted(t *testing.T) {
	subject := testSubject(t, "CC101", 8,
		testSlot(t, models.Monday, "10:00", "12:00"),
		testSlot(t, models.Tuesday, "10:00", "12:00"),
	)
	committed := []models.ScheduleSlot{{
		Subject:  testSubject(t, "MAT101", 8, testSlot(t, models.Monday, "11:00", "13:00")),
		TimeSlot: testSlot(t, models.Monday, "11:00", "13:00"),
	}}

	slot, ok := pickSlot(subject, committed, models.DefaultConstraint())
	require.True(t, ok)
	require.Equal(t, models.Tuesday, slot.Day)
}

func TestPickSlotHonorsBlockedSlots(t *testing.T) {
	subject := testSubject(t, "CC101", 8, testSlot(t, models.Monday, "10:00", "12:00"))
	constraint := models.DefaultConstraint()
	constraint.BlockedSlots = []models.TimeSlot{testSlot(t, models.Monday, "11:00", "12:00")}

	_, ok := pickSlot(subject, nil, constraint)
	require.False(t, ok)
}

func TestPickSlotAvoidEarly(t *testing.T) {
	subject := testSubject(t, "CC101", 8,
		testSlot(t, models.Monday, "07:00", "09:00"),
		testSlot(t, models.Tuesday, "10:00", "12:00"),
	)
	constraint := models.DefaultConstraint()
	constraint.AvoidEarlyClasses = true

	slot, ok := pickSlot(subject, nil, constraint)
	require.True(t, ok)
	require.Equal(t, models.Tuesday, slot.Day)

	// A 09:00 start is the earliest allowed.
	boundary := testSubject(t, "CC102", 8, testSlot(t, models.Monday, "09:00", "11:00"))
	_, ok = pickSlot(boundary, nil, constraint)
	require.True(t, ok)
}

func TestPickSlotAvoidLate(t *testing.T) {
	subject := testSubject(t, "CC101", 8,
		testSlot(t, models.Monday, "19:00", "21:00"),
		testSlot(t, models.Tuesday, "10:00", "12:00"),
	)
	constraint := models.DefaultConstraint()
	constraint.AvoidLateClasses = true

	slot, ok := pickSlot(subject, nil, constraint)
	require.True(t, ok)
	require.Equal(t, models.Tuesday, slot.Day)

	// An 18:00 start is the latest allowed.
	boundary := testSubject(t, "CC102", 8, testSlot(t, models.Monday, "18:00", "20:00"))
	_, ok = pickSlot(boundary, nil, constraint)
	require.True(t, ok)
}

func TestPickSlotPrefersMidday(t *testing.T) {
	subject := testSubject(t, "CC101", 8,
		testSlot(t, models.Monday, "08:00", "10:00"),
		testSlot(t, models.Monday, "12:00", "14:00"),
	)

	slot, ok := pickSlot(subject, nil, models.DefaultConstraint())
	require.True(t, ok)
	require.Equal(t, models.MustClock("12:00"), slot.Start)
}

func TestPickSlotPrefersPreferredDay(t *testing.T) {
	subject := testSubject(t, "CC101", 8,
		testSlot(t, models.Monday, "10:00", "12:00"),
		testSlot(t, models.Thursday, "10:00", "12:00"),
	)
	constraint := models.DefaultConstraint()
	constraint.PreferredDays[models.Thursday] = struct{}{}

	slot, ok := pickSlot(subject, nil, constraint)
	require.True(t, ok)
	require.Equal(t, models.Thursday, slot.Day)
}

func TestSlotPreference(t *testing.T) {
	constraint := models.DefaultConstraint()
	constraint.PreferredDays[models.Monday] = struct{}{}

	// Preferred day plus midday window.
	require.InDelta(t, 15.0, slotPreference(testSlot(t, models.Monday, "10:00", "12:00"), constraint), 1e-9)
	// Midday only.
	require.InDelta(t, 5.0, slotPreference(testSlot(t, models.Tuesday, "16:00", "18:00"), constraint), 1e-9)
	// Early fringe.
	require.InDelta(t, -3.0, slotPreference(testSlot(t, models.Tuesday, "08:00", "10:00"), constraint), 1e-9)
	// Late fringe.
	require.InDelta(t, -3.0, slotPreference(testSlot(t, models.Tuesday, "19:30", "21:00"), constraint), 1e-9)
	// Neutral.
	require.InDelta(t, 0.0, slotPreference(testSlot(t, models.Tuesday, "09:00", "10:00"), constraint), 1e-9)
}
