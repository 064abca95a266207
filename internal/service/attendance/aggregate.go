package attendance

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/wintararaj-cmd/Attendance/internal/domain/attendance"
	"github.com/wintararaj-cmd/Attendance/internal/domain/employee"
	"github.com/wintararaj-cmd/Attendance/internal/domain/payroll"
)

var (
	fullDay = decimal.NewFromInt(1)
	halfDay = decimal.New(5, -1)
)

// DayContribution is how much a single calendar day adds to the monthly
// present and paid counters.
type DayContribution struct {
	Present decimal.Decimal
	Paid    decimal.Decimal
}

// classifyDay weighs one day of the month. A missing record pays nothing,
// except weekends for monthly-salaried staff, which are paid by default.
// Daily-rated employees are only ever paid for recorded days.
func classifyDay(log *attendance.Log, date time.Time, basis employee.PayBasis) DayContribution {
	if log == nil {
		if !basis.IsDailyPaid() && isWeekend(date) {
			return DayContribution{Paid: fullDay}
		}
		return DayContribution{}
	}

	switch log.Status {
	case attendance.StatusPresent:
		return DayContribution{Present: fullDay, Paid: fullDay}
	case attendance.StatusHalfDay:
		return DayContribution{Present: halfDay, Paid: halfDay}
	}
	if log.Status.IsPaidUnworked() {
		return DayContribution{Paid: fullDay}
	}
	return DayContribution{}
}

func isWeekend(date time.Time) bool {
	wd := date.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// Summarize folds one employee's attendance logs for a month into the
// aggregate payroll generation consumes. For the in-progress month the count
// stops at today; days after today never contribute, so a mid-month run and
// an end-of-month run agree on every day both have seen. The logs slice may
// contain at most one record per date; extra months in the slice are ignored
// via the day index.
func Summarize(logs []attendance.Log, basis employee.PayBasis, month, year int, today time.Time, loc *time.Location) payroll.MonthlySummary {
	firstOfMonth := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
	totalDays := firstOfMonth.AddDate(0, 1, -1).Day()

	byDay := make(map[int]*attendance.Log, len(logs))
	for i := range logs {
		d := logs[i].Date.In(loc)
		if d.Year() == year && d.Month() == time.Month(month) {
			byDay[d.Day()] = &logs[i]
		}
	}

	todayLocal := today.In(loc)
	cutoff := totalDays
	if firstOfMonth.After(todayLocal) {
		cutoff = 0
	} else if todayLocal.Year() == year && todayLocal.Month() == time.Month(month) {
		cutoff = todayLocal.Day()
	}

	summary := payroll.MonthlySummary{
		TotalDaysInMonth: totalDays,
		DaysCounted:      cutoff,
	}

	for day := 1; day <= cutoff; day++ {
		log := byDay[day]
		date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc)

		c := classifyDay(log, date, basis)
		summary.PresentDays = summary.PresentDays.Add(c.Present)
		summary.PaidDays = summary.PaidDays.Add(c.Paid)

		if log != nil {
			summary.OTHours = summary.OTHours.Add(log.OTHours)
			summary.OTWeekendHours = summary.OTWeekendHours.Add(log.OTWeekendHours)
			summary.OTHolidayHours = summary.OTHolidayHours.Add(log.OTHolidayHours)
			summary.TotalHoursWorked = summary.TotalHoursWorked.Add(log.TotalHoursWorked)
		}
	}

	return summary
}
