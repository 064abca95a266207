package attendance

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/wintararaj-cmd/Attendance/internal/domain/attendance"
)

// OvertimePolicy selects how weekday overtime is granted.
type OvertimePolicy string

const (
	// PolicyStepped grants weekday overtime in blocks: under 2 extra hours
	// nothing, 2 up to 4 extra hours a flat 2, and 4 or more a flat 4.
	PolicyStepped OvertimePolicy = "stepped"
	// PolicyExact grants the exact extra hours beyond the standard shift.
	PolicyExact OvertimePolicy = "exact"
)

const standardShiftHours = 8

// breakDeduction is the unpaid lunch break removed from every session.
var breakDeduction = decimal.New(5, -1)

// Accrual is the hour figures written back onto a closed attendance record.
type Accrual struct {
	TotalHours     decimal.Decimal
	OTHours        decimal.Decimal
	OTWeekendHours decimal.Decimal
	OTHolidayHours decimal.Decimal
}

// AccrueOvertime derives the hour figures for one closed session. The raw
// span loses a half-hour break; what remains is the net worked time. On
// weekends and declared holidays the whole net time is overtime in the
// matching bucket. On weekdays, time beyond the 8-hour shift is granted per
// policy. Results are rounded to 2 decimals.
func AccrueOvertime(checkIn, checkOut time.Time, status attendance.Status, loc *time.Location, policy OvertimePolicy) Accrual {
	if !checkOut.After(checkIn) {
		return Accrual{}
	}

	rawMinutes := checkOut.Sub(checkIn) / time.Minute
	raw := decimal.NewFromInt(int64(rawMinutes)).Div(decimal.NewFromInt(60))

	net := raw.Sub(breakDeduction)
	if net.IsNegative() {
		net = decimal.Zero
	}
	net = net.Round(2)

	acc := Accrual{TotalHours: net}

	if status == attendance.StatusHoliday {
		acc.OTHolidayHours = net
		return acc
	}
	if isWeekend(checkIn.In(loc)) {
		acc.OTWeekendHours = net
		return acc
	}

	extra := net.Sub(decimal.NewFromInt(standardShiftHours))
	if !extra.IsPositive() {
		return acc
	}

	switch policy {
	case PolicyExact:
		acc.OTHours = extra
	default:
		switch {
		case extra.GreaterThanOrEqual(decimal.NewFromInt(4)):
			acc.OTHours = decimal.NewFromInt(4)
		case extra.GreaterThanOrEqual(decimal.NewFromInt(2)):
			acc.OTHours = decimal.NewFromInt(2)
		}
	}

	return acc
}
