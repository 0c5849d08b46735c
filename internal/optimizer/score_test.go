package optimizer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/schedulewise/schedulewise-api/internal/models"
)

func buildSchedule(t *testing.T, slots ...models.ScheduleSlot) *models.Schedule {
	t.Helper()
	schedule, err := models.NewSchedule(slots)
	require.NoError(t, err)
	return schedule
}

func scheduleSlot(t *testing.T, code string, credits int, slot models.TimeSlot) models.ScheduleSlot {
	t.Helper()
	return models.ScheduleSlot{Subject: testSubject(t, code, credits, slot), TimeSlot: slot}
}

func TestScoreScheduleSingleSubject(t *testing.T) {
	schedule := buildSchedule(t, scheduleSlot(t, "CC101", 8, testSlot(t, models.Monday, "10:00", "12:00")))

	// 8 credits * 10, plus 10 - variance of [2,0,0,0,0,0] = 10 - 5/9.
	want := 80.0 + 10.0 - 5.0/9.0
	require.InDelta(t, want, scoreSchedule(schedule, models.DefaultConstraint()), 1e-9)
}

func TestScoreScheduleOverloadPenalty(t *testing.T) {
	schedule := buildSchedule(t, scheduleSlot(t, "CC101", 8, testSlot(t, models.Monday, "08:00", "18:00")))

	// 10 hours on one day: 2 hours over the 8-hour cap costs 10 points, and
	// the lopsided week forfeits the entire distribution bonus.
	require.InDelta(t, 70.0, scoreSchedule(schedule, models.DefaultConstraint()), 1e-9)
}

func TestBreakScore(t *testing.T) {
	constraint := models.DefaultConstraint() // 30 minute minimum break

	comfortable := buildSchedule(t,
		scheduleSlot(t, "A", 4, testSlot(t, models.Monday, "08:00", "10:00")),
		scheduleSlot(t, "B", 4, testSlot(t, models.Monday, "11:00", "13:00")),
	)
	require.InDelta(t, 2.0, breakScore(comfortable, constraint), 1e-9)

	rushed := buildSchedule(t,
		scheduleSlot(t, "A", 4, testSlot(t, models.Monday, "08:00", "10:00")),
		scheduleSlot(t, "B", 4, testSlot(t, models.Monday, "10:15", "12:00")),
	)
	require.InDelta(t, 1.0, breakScore(rushed, constraint), 1e-9)

	backToBack := buildSchedule(t,
		scheduleSlot(t, "A", 4, testSlot(t, models.Monday, "08:00", "10:00")),
		scheduleSlot(t, "B", 4, testSlot(t, models.Monday, "10:00", "12:00")),
	)
	require.InDelta(t, -5.0, breakScore(backToBack, constraint), 1e-9)

	// Single class days contribute nothing.
	lonely := buildSchedule(t, scheduleSlot(t, "A", 4, testSlot(t, models.Monday, "08:00", "10:00")))
	require.InDelta(t, 0.0, breakScore(lonely, constraint), 1e-9)
}

func TestScoreScheduleRewardsEvenWeek(t *testing.T) {
	packed := buildSchedule(t,
		scheduleSlot(t, "A", 4, testSlot(t, models.Monday, "08:00", "10:00")),
		scheduleSlot(t, "B", 4, testSlot(t, models.Monday, "11:00", "13:00")),
	)
	spread := buildSchedule(t,
		scheduleSlot(t, "A", 4, testSlot(t, models.Monday, "08:00", "10:00")),
		scheduleSlot(t, "B", 4, testSlot(t, models.Wednesday, "11:00", "13:00")),
	)

	constraint := models.DefaultConstraint()
	packedBase := scoreSchedule(packed, constraint) - breakScore(packed, constraint)
	spreadBase := scoreSchedule(spread, constraint) - breakScore(spread, constraint)
	require.Greater(t, spreadBase, packedBase)
}
