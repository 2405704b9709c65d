package attendance

import "time"

// Fixed attendance policy. These are company-wide constants, not per-employee
// settings, so a future version can make them configurable without changing
// the computation shape.
const (
	workStartHour  = 8
	workEndHour    = 17
	breakAfterHour = 13
	breakHours     = 1.0
)

// HoursResult is what the engine derives from a time-in/time-out pair.
type HoursResult struct {
	WorkedHours   float64
	OvertimeHours float64
	IsLate        bool
	IsUndertime   bool
}

// ComputeHours converts a raw time-in/time-out pair into worked hours,
// overtime hours and the late/undertime flags.
//
// The effective start is clamped to 8:00 AM; early arrival earns no credit.
// Once the time-out hour reaches 5 PM its minutes are discarded for the base
// figure, with time past 5 PM counted separately as whole overtime hours. A
// one hour unpaid break is deducted whenever the time-out hour is past 1 PM.
func ComputeHours(timeIn, timeOut time.Time) HoursResult {
	var res HoursResult

	res.IsLate = timeIn.Hour() > workStartHour
	res.IsUndertime = timeOut.Hour() < workEndHour

	effectiveIn := timeIn
	dayStart := time.Date(timeIn.Year(), timeIn.Month(), timeIn.Day(),
		workStartHour, 0, 0, 0, timeIn.Location())
	if effectiveIn.Before(dayStart) {
		effectiveIn = dayStart
	}

	effectiveOut := timeOut
	if timeOut.Hour() >= workEndHour {
		effectiveOut = time.Date(timeOut.Year(), timeOut.Month(), timeOut.Day(),
			workEndHour, 0, 0, 0, timeOut.Location())
	}

	worked := effectiveOut.Sub(effectiveIn).Hours()
	if timeOut.Hour() > breakAfterHour {
		worked -= breakHours
	}
	if worked < 0 {
		worked = 0
	}
	res.WorkedHours = worked

	if timeOut.Hour() > workEndHour {
		res.OvertimeHours = float64(timeOut.Hour() - workEndHour)
	}

	return res
}
