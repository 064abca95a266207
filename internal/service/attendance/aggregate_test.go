package attendance

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/wintararaj-cmd/Attendance/internal/domain/attendance"
	"github.com/wintararaj-cmd/Attendance/internal/domain/employee"
)

// March 2025: 31 days, the 1st is a Saturday. Weekend days are
// 1,2,8,9,15,16,22,23,29,30.
func marchDay(day int) time.Time {
	return time.Date(2025, time.March, day, 0, 0, 0, 0, time.UTC)
}

func presentLog(day int) attendance.Log {
	return attendance.Log{
		EmployeeID: "emp-1",
		Date:       marchDay(day),
		Status:     attendance.StatusPresent,
	}
}

func TestClassifyDay_PresentAndHalf(t *testing.T) {
	t.Parallel()

	log := presentLog(3)
	c := classifyDay(&log, marchDay(3), employee.PayBasisWorker)
	assert.Equal(t, "1", c.Present.String())
	assert.Equal(t, "1", c.Paid.String())

	log.Status = attendance.StatusHalfDay
	c = classifyDay(&log, marchDay(3), employee.PayBasisWorker)
	assert.Equal(t, "0.5", c.Present.String())
	assert.Equal(t, "0.5", c.Paid.String())
}

func TestClassifyDay_PaidUnworkedStatuses(t *testing.T) {
	t.Parallel()

	for _, status := range []attendance.Status{
		attendance.StatusLeavePaid,
		attendance.StatusHoliday,
		attendance.StatusWeeklyOff,
	} {
		log := presentLog(4)
		log.Status = status
		c := classifyDay(&log, marchDay(4), employee.PayBasisStaff)
		assert.True(t, c.Present.IsZero(), "status %s should not count as present", status)
		assert.Equal(t, "1", c.Paid.String(), "status %s should pay the day", status)
	}
}

func TestClassifyDay_MissingRecord(t *testing.T) {
	t.Parallel()

	// Staff get weekends paid by default.
	c := classifyDay(nil, marchDay(1), employee.PayBasisStaff)
	assert.Equal(t, "1", c.Paid.String())
	assert.True(t, c.Present.IsZero())

	// A staff weekday absence pays nothing.
	c = classifyDay(nil, marchDay(3), employee.PayBasisStaff)
	assert.True(t, c.Paid.IsZero())

	// Daily-paid employees never get the weekend default.
	for _, basis := range []employee.PayBasis{
		employee.PayBasisWorker,
		employee.PayBasisHourly,
		employee.PayBasisContract,
	} {
		c = classifyDay(nil, marchDay(1), basis)
		assert.True(t, c.Paid.IsZero(), "basis %s should not be paid for an unrecorded weekend", basis)
	}
}

func TestSummarize_StaffWeekendDefault(t *testing.T) {
	t.Parallel()

	// No records at all; month fully in the past. Only the ten weekend days
	// are paid.
	today := time.Date(2025, time.April, 10, 12, 0, 0, 0, time.UTC)
	s := Summarize(nil, employee.PayBasisStaff, 3, 2025, today, time.UTC)

	assert.Equal(t, 31, s.TotalDaysInMonth)
	assert.Equal(t, 31, s.DaysCounted)
	assert.True(t, s.PresentDays.IsZero())
	assert.Equal(t, "10", s.PaidDays.String())
}

func TestSummarize_FutureDaysExcluded(t *testing.T) {
	t.Parallel()

	// Mid-month run: the 15th is a Saturday, so weekends 1,2,8,9,15 are
	// paid for staff and days 16..31 contribute nothing yet.
	today := time.Date(2025, time.March, 15, 9, 30, 0, 0, time.UTC)
	logs := []attendance.Log{presentLog(3), presentLog(20)}

	s := Summarize(logs, employee.PayBasisStaff, 3, 2025, today, time.UTC)

	assert.Equal(t, 31, s.TotalDaysInMonth)
	assert.Equal(t, 15, s.DaysCounted)
	assert.Equal(t, "1", s.PresentDays.String(), "the log on the 20th is after today")
	assert.Equal(t, "6", s.PaidDays.String())
}

func TestSummarize_MonthEntirelyInFuture(t *testing.T) {
	t.Parallel()

	today := time.Date(2025, time.February, 20, 0, 0, 0, 0, time.UTC)
	s := Summarize(nil, employee.PayBasisStaff, 3, 2025, today, time.UTC)

	assert.Equal(t, 0, s.DaysCounted)
	assert.True(t, s.PaidDays.IsZero())
}

func TestSummarize_WorkerCountsOnlyRecordedDays(t *testing.T) {
	t.Parallel()

	today := time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)

	half := presentLog(5)
	half.Status = attendance.StatusHalfDay

	logs := []attendance.Log{presentLog(3), presentLog(4), half}
	s := Summarize(logs, employee.PayBasisWorker, 3, 2025, today, time.UTC)

	assert.Equal(t, "2.5", s.PresentDays.String())
	assert.Equal(t, "2.5", s.PaidDays.String())
}

func TestSummarize_AccumulatesHourFigures(t *testing.T) {
	t.Parallel()

	today := time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)

	a := presentLog(3)
	a.OTHours = decimal.RequireFromString("2")
	a.TotalHoursWorked = decimal.RequireFromString("10")

	b := presentLog(8)
	b.OTWeekendHours = decimal.RequireFromString("4.5")
	b.TotalHoursWorked = decimal.RequireFromString("4.5")

	s := Summarize([]attendance.Log{a, b}, employee.PayBasisWorker, 3, 2025, today, time.UTC)

	assert.Equal(t, "2", s.OTHours.String())
	assert.Equal(t, "4.5", s.OTWeekendHours.String())
	assert.Equal(t, "14.5", s.TotalHoursWorked.String())
}

func TestSummarize_IgnoresLogsFromOtherMonths(t *testing.T) {
	t.Parallel()

	today := time.Date(2025, time.April, 10, 0, 0, 0, 0, time.UTC)
	stray := attendance.Log{
		EmployeeID: "emp-1",
		Date:       time.Date(2025, time.February, 3, 0, 0, 0, 0, time.UTC),
		Status:     attendance.StatusPresent,
	}

	s := Summarize([]attendance.Log{stray}, employee.PayBasisWorker, 3, 2025, today, time.UTC)
	assert.True(t, s.PresentDays.IsZero())
}
