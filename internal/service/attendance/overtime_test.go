package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/wintararaj-cmd/Attendance/internal/domain/attendance"
)

func at(day, hour, minute int) time.Time {
	return time.Date(2025, time.March, day, hour, minute, 0, 0, time.UTC)
}

func TestAccrueOvertime_BreakDeduction(t *testing.T) {
	t.Parallel()

	// Monday 9:00-18:00 is 9h raw, 8.5h net after the break; only half an
	// hour beyond the shift, so no stepped overtime.
	acc := AccrueOvertime(at(3, 9, 0), at(3, 18, 0), attendance.StatusPresent, time.UTC, PolicyStepped)

	assert.Equal(t, "8.5", acc.TotalHours.String())
	assert.True(t, acc.OTHours.IsZero())
	assert.True(t, acc.OTWeekendHours.IsZero())
	assert.True(t, acc.OTHolidayHours.IsZero())
}

func TestAccrueOvertime_SteppedBlocks(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		checkOut time.Time
		wantOT   string
	}{
		{"under two extra hours", at(3, 19, 15), "0"}, // net 9.75, extra 1.75
		{"two extra hours", at(3, 19, 30), "2"},       // net 10, extra 2
		{"just under four", at(3, 21, 15), "2"},       // net 11.75, extra 3.75
		{"four or more", at(3, 21, 45), "4"},          // net 12.25, extra 4.25
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			acc := AccrueOvertime(at(3, 9, 0), tc.checkOut, attendance.StatusPresent, time.UTC, PolicyStepped)
			if tc.wantOT == "0" {
				assert.True(t, acc.OTHours.IsZero())
			} else {
				assert.Equal(t, tc.wantOT, acc.OTHours.String())
			}
		})
	}
}

func TestAccrueOvertime_ExactPolicy(t *testing.T) {
	t.Parallel()

	// Monday 9:00-19:45: net 10.25h, 2.25 beyond the shift.
	acc := AccrueOvertime(at(3, 9, 0), at(3, 19, 45), attendance.StatusPresent, time.UTC, PolicyExact)
	assert.Equal(t, "2.25", acc.OTHours.String())
}

func TestAccrueOvertime_WeekendAllHoursAreOvertime(t *testing.T) {
	t.Parallel()

	// Saturday 9:00-14:00: 4.5h net, all of it weekend overtime.
	acc := AccrueOvertime(at(1, 9, 0), at(1, 14, 0), attendance.StatusPresent, time.UTC, PolicyStepped)

	assert.Equal(t, "4.5", acc.TotalHours.String())
	assert.Equal(t, "4.5", acc.OTWeekendHours.String())
	assert.True(t, acc.OTHours.IsZero())
}

func TestAccrueOvertime_HolidayBucketWinsOverWeekday(t *testing.T) {
	t.Parallel()

	// A declared holiday on a Monday: the whole session lands in the
	// holiday bucket.
	acc := AccrueOvertime(at(3, 9, 0), at(3, 15, 0), attendance.StatusHoliday, time.UTC, PolicyStepped)

	assert.Equal(t, "5.5", acc.TotalHours.String())
	assert.Equal(t, "5.5", acc.OTHolidayHours.String())
	assert.True(t, acc.OTHours.IsZero())
	assert.True(t, acc.OTWeekendHours.IsZero())
}

func TestAccrueOvertime_ShortSession(t *testing.T) {
	t.Parallel()

	// A 10-minute session is shorter than the break; nothing accrues
	// negative.
	acc := AccrueOvertime(at(3, 9, 0), at(3, 9, 10), attendance.StatusPresent, time.UTC, PolicyStepped)
	assert.True(t, acc.TotalHours.IsZero())
}

func TestAccrueOvertime_InvertedSpan(t *testing.T) {
	t.Parallel()

	acc := AccrueOvertime(at(3, 18, 0), at(3, 9, 0), attendance.StatusPresent, time.UTC, PolicyStepped)
	assert.True(t, acc.TotalHours.IsZero())
	assert.True(t, acc.OTHours.IsZero())
}
