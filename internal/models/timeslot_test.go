package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	cases := []struct {
		raw     string
		want    ClockTime
		wantErr bool
	}{
		{raw: "08:00", want: 480},
		{raw: "00:00", want: 0},
		{raw: "23:59", want: 23*60 + 59},
		{raw: " 10:30 ", want: 630},
		{raw: "8", wantErr: true},
		{raw: "24:00", wantErr: true},
		{raw: "12:60", wantErr: true},
		{raw: "ab:cd", wantErr: true},
		{raw: "", wantErr: true},
	}

	for _, tc := range cases {
		got, err := ParseClock(tc.raw)
		if tc.wantErr {
			require.Error(t, err, tc.raw)
			continue
		}
		require.NoError(t, err, tc.raw)
		require.Equal(t, tc.want, got, tc.raw)
	}
}

func TestClockTimeString(t *testing.T) {
	require.Equal(t, "08:05", ClockTime(485).String())
	require.Equal(t, "00:00", ClockTime(0).String())
	require.Equal(t, "18:30", MustClock("18:30").String())
}

func TestNewTimeSlotValidation(t *testing.T) {
	_, err := NewTimeSlot("FUNDAY", MustClock("08:00"), MustClock("10:00"))
	require.Error(t, err)

	_, err = NewTimeSlot(Monday, MustClock("10:00"), MustClock("10:00"))
	require.Error(t, err)

	_, err = NewTimeSlot(Monday, MustClock("12:00"), MustClock("10:00"))
	require.Error(t, err)

	slot, err := NewTimeSlot(Monday, MustClock("08:00"), MustClock("10:00"))
	require.NoError(t, err)
	require.Equal(t, 120, slot.Duration())
	require.Equal(t, "MONDAY 08:00-10:00", slot.String())
}

func TestTimeSlotOverlaps(t *testing.T) {
	base := mustSlot(t, Monday, "09:00", "11:00")

	// Different day never overlaps.
	require.False(t, base.Overlaps(mustSlot(t, Tuesday, "09:00", "11:00")))

	// Back-to-back slots do not overlap.
	require.False(t, base.Overlaps(mustSlot(t, Monday, "11:00", "13:00")))
	require.False(t, base.Overlaps(mustSlot(t, Monday, "07:00", "09:00")))

	// Partial and full intersections do.
	require.True(t, base.Overlaps(mustSlot(t, Monday, "10:00", "12:00")))
	require.True(t, base.Overlaps(mustSlot(t, Monday, "08:00", "10:00")))
	require.True(t, base.Overlaps(mustSlot(t, Monday, "09:30", "10:30")))
	require.True(t, base.Overlaps(mustSlot(t, Monday, "08:00", "12:00")))
	require.True(t, base.Overlaps(base))
}

func mustSlot(t *testing.T, day Day, start, end string) TimeSlot {
	t.Helper()
	slot, err := NewTimeSlot(day, MustClock(start), MustClock(end))
	require.NoError(t, err)
	return slot
}
