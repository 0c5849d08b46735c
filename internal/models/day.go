package models

import (
	"fmt"
	"strings"
)

// Day identifies an academic day of the week.
type Day string

const (
	Monday    Day = "MONDAY"
	Tuesday   Day = "TUESDAY"
	Wednesday Day = "WEDNESDAY"
	Thursday  Day = "THURSDAY"
	Friday    Day = "FRIDAY"
	Saturday  Day = "SATURDAY"
)

// AcademicDays lists the days classes may be scheduled on, in week order.
var AcademicDays = []Day{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

var dayIndex = map[Day]int{
	Monday:    1,
	Tuesday:   2,
	Wednesday: 3,
	Thursday:  4,
	Friday:    5,
	Saturday:  6,
}

// ParseDay resolves a day name (case-insensitive) into a Day.
func ParseDay(raw string) (Day, error) {
	day := Day(strings.ToUpper(strings.TrimSpace(raw)))
	if _, ok := dayIndex[day]; !ok {
		return "", fmt.Errorf("unknown day %q", raw)
	}
	return day, nil
}

// Index returns the 1-based week position of the day, 0 if unknown.
func (d Day) Index() int {
	return dayIndex[d]
}
