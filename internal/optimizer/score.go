package optimizer

import (
	"sort"

	"github.com/schedulewise/schedulewise-api/internal/models"
)

const (
	creditWeight        = 10.0
	overloadPenalty     = 5.0
	distributionCeiling = 10.0
	goodBreakBonus      = 2.0
	shortBreakBonus     = 1.0
	noBreakPenalty      = 5.0
)

// scoreSchedule computes the quality score for a fully assembled schedule:
// credit weight plus distribution bonus and break quality, minus daily
// overload. Higher is better; the value is unbounded and may be negative.
func scoreSchedule(schedule *models.Schedule, constraint models.StudentConstraint) float64 {
	score := float64(schedule.TotalCredits) * creditWeight

	dailyHours := make([]int, 0, len(models.AcademicDays))
	for _, day := range models.AcademicDays {
		hours := schedule.DailyHours(day)
		dailyHours = append(dailyHours, hours)
		if hours > constraint.MaxDailyHours {
			score -= float64(hours-constraint.MaxDailyHours) * overloadPenalty
		}
	}

	// Lower variance of per-day hours means a more even week.
	mean := 0.0
	for _, hours := range dailyHours {
		mean += float64(hours)
	}
	mean /= float64(len(dailyHours))
	variance := 0.0
	for _, hours := range dailyHours {
		diff := float64(hours) - mean
		variance += diff * diff
	}
	variance /= float64(len(dailyHours))
	score += max(0, distributionCeiling-variance)

	return score + breakScore(schedule, constraint)
}

// breakScore rewards comfortable gaps between consecutive classes on the
// same day. A non-positive gap is back-to-back, not an overlap; overlapping
// slots cannot exist inside a constructed Schedule.
func breakScore(schedule *models.Schedule, constraint models.StudentConstraint) float64 {
	score := 0.0
	for _, day := range models.AcademicDays {
		slots := schedule.SlotsOn(day)
		if len(slots) < 2 {
			continue
		}
		sort.Slice(slots, func(i, j int) bool {
			return slots[i].Start < slots[j].Start
		})

		for i := 0; i < len(slots)-1; i++ {
			gap := int(slots[i+1].Start - slots[i].End)
			switch {
			case gap >= constraint.MinBreakMinutes:
				score += goodBreakBonus
			case gap > 0:
				score += shortBreakBonus
			default:
				score -= noBreakPenalty
			}
		}
	}
	return score
}
