package optimizer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/schedulewise/schedulewise-api/internal/models"
)

func required(subjectCodes ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(subjectCodes))
	for _, code := range subjectCodes {
		set[code] = struct{}{}
	}
	return set
}

func scheduledCodes(result *Result) []string {
	out := make([]string, 0, len(result.Schedule.Slots))
	for _, slot := range result.Schedule.Slots {
		out = append(out, slot.Subject.Code)
	}
	return out
}

func TestOptimizeSchedulesAllRequired(t *testing.T) {
	subjects := []models.Subject{
		testSubject(t, "CC101", 8,
			testSlot(t, models.Monday, "08:00", "10:00"),
			testSlot(t, models.Wednesday, "08:00", "10:00"),
		),
		testSubject(t, "MAT101", 8,
			testSlot(t, models.Monday, "10:00", "12:00"),
			testSlot(t, models.Wednesday, "10:00", "12:00"),
		),
	}

	result, err := NewGreedy(Options{}, nil).Optimize(context.Background(), subjects, models.DefaultConstraint(), required("CC101", "MAT101"))
	require.NoError(t, err)
	require.NotNil(t, result)

	require.Len(t, result.Schedule.Slots, 2)
	require.ElementsMatch(t, []string{"CC101", "MAT101"}, scheduledCodes(result))
	require.Equal(t, 16, result.Schedule.TotalCredits)
	require.Greater(t, result.Score, 0.0)
	require.Equal(t, 3, result.Combinations)

	// No two chosen slots may overlap.
	slots := result.Schedule.Slots
	for i := range slots {
		for j := i + 1; j < len(slots); j++ {
			require.False(t, slots[i].TimeSlot.Overlaps(slots[j].TimeSlot))
		}
	}
}

func TestOptimizeIgnoresNonRequiredSubjects(t *testing.T) {
	subjects := []models.Subject{
		testSubject(t, "CC101", 8, testSlot(t, models.Monday, "10:00", "12:00")),
		testSubject(t, "ELECTIVE", 4, testSlot(t, models.Tuesday, "10:00", "12:00")),
	}

	result, err := NewGreedy(Options{}, nil).Optimize(context.Background(), subjects, models.DefaultConstraint(), required("CC101"))
	require.NoError(t, err)
	require.NotNil(t, result)
	require.Equal(t, []string{"CC101"}, scheduledCodes(result))
}

func TestOptimizeEmptyPool(t *testing.T) {
	subjects := []models.Subject{
		testSubject(t, "CC101", 8, testSlot(t, models.Monday, "10:00", "12:00")),
	}

	result, err := NewGreedy(Options{}, nil).Optimize(context.Background(), subjects, models.DefaultConstraint(), required("GHOST"))
	require.NoError(t, err)
	require.Nil(t, result)
}

func TestOptimizeAvoidsEarlySlots(t *testing.T) {
	subjects := []models.Subject{
		testSubject(t, "EARLY", 8,
			testSlot(t, models.Monday, "07:00", "09:00"),
			testSlot(t, models.Tuesday, "10:00", "12:00"),
		),
	}
	constraint := models.DefaultConstraint()
	constraint.AvoidEarlyClasses = true

	result, err := NewGreedy(Options{}, nil).Optimize(context.Background(), subjects, constraint, required("EARLY"))
	require.NoError(t, err)
	require.NotNil(t, result)
	require.Equal(t, models.Tuesday, result.Schedule.Slots[0].TimeSlot.Day)
}

func TestOptimizeAvoidsLateSlots(t *testing.T) {
	subjects := []models.Subject{
		testSubject(t, "LATE", 8,
			testSlot(t, models.Monday, "19:00", "21:00"),
			testSlot(t, models.Tuesday, "14:00", "16:00"),
		),
	}
	constraint := models.DefaultConstraint()
	constraint.AvoidLateClasses = true

	result, err := NewGreedy(Options{}, nil).Optimize(context.Background(), subjects, constraint, required("LATE"))
	require.NoError(t, err)
	require.NotNil(t, result)
	for _, slot := range result.Schedule.Slots {
		require.LessOrEqual(t, slot.TimeSlot.Start, models.MustClock("18:00"))
	}
}

func TestOptimizeNeverSchedulesOverlappingPair(t *testing.T) {
	subjects := []models.Subject{
		testSubject(t, "SUBJ1", 8, testSlot(t, models.Monday, "08:00", "10:00")),
		testSubject(t, "SUBJ2", 8, testSlot(t, models.Monday, "09:00", "11:00")),
	}

	result, err := NewGreedy(Options{}, nil).Optimize(context.Background(), subjects, models.DefaultConstraint(), required("SUBJ1", "SUBJ2"))
	require.NoError(t, err)
	require.NotNil(t, result)
	require.Len(t, result.Schedule.Slots, 1)
}

func TestOptimizeRequireFullCoverage(t *testing.T) {
	subjects := []models.Subject{
		testSubject(t, "SUBJ1", 8, testSlot(t, models.Monday, "08:00", "10:00")),
		testSubject(t, "SUBJ2", 8, testSlot(t, models.Monday, "09:00", "11:00")),
	}

	// The two subjects can never coexist, so full coverage is infeasible.
	result, err := NewGreedy(Options{RequireFullCoverage: true}, nil).Optimize(context.Background(), subjects, models.DefaultConstraint(), required("SUBJ1", "SUBJ2"))
	require.NoError(t, err)
	require.Nil(t, result)

	// Feasible full set still works.
	subjects[1] = testSubject(t, "SUBJ2", 8, testSlot(t, models.Tuesday, "09:00", "11:00"))
	result, err = NewGreedy(Options{RequireFullCoverage: true}, nil).Optimize(context.Background(), subjects, models.DefaultConstraint(), required("SUBJ1", "SUBJ2"))
	require.NoError(t, err)
	require.NotNil(t, result)
	require.Len(t, result.Schedule.Slots, 2)
}

func TestOptimizeInfeasibleWhenBlocked(t *testing.T) {
	subjects := []models.Subject{
		testSubject(t, "CC101", 8, testSlot(t, models.Monday, "10:00", "12:00")),
	}
	constraint := models.DefaultConstraint()
	constraint.BlockedSlots = []models.TimeSlot{testSlot(t, models.Monday, "09:00", "13:00")}

	result, err := NewGreedy(Options{}, nil).Optimize(context.Background(), subjects, constraint, required("CC101"))
	require.NoError(t, err)
	require.Nil(t, result)
}

func TestOptimizeFirstMaximumWins(t *testing.T) {
	// Identical structure on the same slot: every candidate scores the same,
	// so the first enumerated combination must win.
	subjects := []models.Subject{
		testSubject(t, "AAA1", 8, testSlot(t, models.Monday, "10:00", "12:00")),
		testSubject(t, "BBB1", 8, testSlot(t, models.Monday, "10:00", "12:00")),
	}

	result, err := NewGreedy(Options{}, nil).Optimize(context.Background(), subjects, models.DefaultConstraint(), required("AAA1", "BBB1"))
	require.NoError(t, err)
	require.NotNil(t, result)
	require.Equal(t, []string{"AAA1"}, scheduledCodes(result))
}

func TestOptimizeMaxCombinationSize(t *testing.T) {
	subjects := []models.Subject{
		testSubject(t, "A", 8, testSlot(t, models.Monday, "10:00", "12:00")),
		testSubject(t, "B", 8, testSlot(t, models.Tuesday, "10:00", "12:00")),
		testSubject(t, "C", 8, testSlot(t, models.Wednesday, "10:00", "12:00")),
	}

	result, err := NewGreedy(Options{MaxCombinationSize: 1}, nil).Optimize(context.Background(), subjects, models.DefaultConstraint(), required("A", "B", "C"))
	require.NoError(t, err)
	require.NotNil(t, result)
	require.Len(t, result.Schedule.Slots, 1)
	require.Equal(t, 3, result.Combinations)
}

func TestOptimizeParallelMatchesSequential(t *testing.T) {
	subjects := []models.Subject{
		testSubject(t, "CC101", 8,
			testSlot(t, models.Monday, "08:00", "10:00"),
			testSlot(t, models.Tuesday, "10:00", "12:00"),
		),
		testSubject(t, "CC102", 8,
			testSlot(t, models.Monday, "14:00", "16:00"),
			testSlot(t, models.Thursday, "16:00", "18:00"),
		),
		testSubject(t, "MAT101", 8,
			testSlot(t, models.Monday, "07:00", "09:00"),
			testSlot(t, models.Tuesday, "09:00", "11:00"),
		),
		testSubject(t, "FIS101", 8,
			testSlot(t, models.Wednesday, "12:00", "14:00"),
			testSlot(t, models.Friday, "14:00", "16:00"),
		),
		testSubject(t, "LAB101", 4,
			testSlot(t, models.Friday, "16:00", "18:00"),
			testSlot(t, models.Friday, "18:00", "20:00"),
		),
	}
	wanted := required("CC101", "CC102", "MAT101", "FIS101", "LAB101")
	constraint := models.DefaultConstraint()
	constraint.AvoidEarlyClasses = true

	sequential, err := NewGreedy(Options{Parallelism: 1}, nil).Optimize(context.Background(), subjects, constraint, wanted)
	require.NoError(t, err)
	require.NotNil(t, sequential)

	for _, workers := range []int{2, 4, 8} {
		parallel, err := NewGreedy(Options{Parallelism: workers}, nil).Optimize(context.Background(), subjects, constraint, wanted)
		require.NoError(t, err)
		require.NotNil(t, parallel)
		require.Equal(t, sequential.Score, parallel.Score)
		require.Equal(t, sequential.Combinations, parallel.Combinations)
		require.Equal(t, scheduledCodes(sequential), scheduledCodes(parallel))
	}
}

func TestOptimizeDeterministicAcrossRuns(t *testing.T) {
	subjects := []models.Subject{
		testSubject(t, "A", 8,
			testSlot(t, models.Monday, "10:00", "12:00"),
			testSlot(t, models.Wednesday, "10:00", "12:00"),
		),
		testSubject(t, "B", 6,
			testSlot(t, models.Tuesday, "10:00", "12:00"),
			testSlot(t, models.Thursday, "10:00", "12:00"),
		),
	}
	wanted := required("A", "B")

	first, err := NewGreedy(Options{}, nil).Optimize(context.Background(), subjects, models.DefaultConstraint(), wanted)
	require.NoError(t, err)
	require.NotNil(t, first)

	for i := 0; i < 10; i++ {
		again, err := NewGreedy(Options{}, nil).Optimize(context.Background(), subjects, models.DefaultConstraint(), wanted)
		require.NoError(t, err)
		require.NotNil(t, again)
		require.Equal(t, first.Score, again.Score)
		require.Equal(t, scheduledCodes(first), scheduledCodes(again))
		require.Equal(t, first.Schedule.Slots, again.Schedule.Slots)
	}
}

func TestOptimizeCanceledContext(t *testing.T) {
	subjects := []models.Subject{
		testSubject(t, "CC101", 8, testSlot(t, models.Monday, "10:00", "12:00")),
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewGreedy(Options{}, nil).Optimize(ctx, subjects, models.DefaultConstraint(), required("CC101"))
	require.ErrorIs(t, err, context.Canceled)
}
