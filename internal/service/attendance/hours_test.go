package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(hour, min int) time.Time {
	return time.Date(2024, time.June, 3, hour, min, 0, 0, time.UTC)
}

func TestComputeHours(t *testing.T) {
	tests := []struct {
		name     string
		timeIn   time.Time
		timeOut  time.Time
		expected HoursResult
	}{
		{
			name:    "early arrival clamped to 8am",
			timeIn:  at(7, 45),
			timeOut: at(17, 30),
			// 8:00 to 17:00 minus the break. The 30 minutes past 5 PM do
			// not reach a whole overtime hour.
			expected: HoursResult{WorkedHours: 8, OvertimeHours: 0, IsLate: false, IsUndertime: false},
		},
		{
			name:     "exact full day",
			timeIn:   at(8, 0),
			timeOut:  at(17, 0),
			expected: HoursResult{WorkedHours: 8, OvertimeHours: 0, IsLate: false, IsUndertime: false},
		},
		{
			name:     "late arrival",
			timeIn:   at(9, 15),
			timeOut:  at(17, 0),
			expected: HoursResult{WorkedHours: 6.75, OvertimeHours: 0, IsLate: true, IsUndertime: false},
		},
		{
			name:    "undertime keeps time-out minutes",
			timeIn:  at(8, 0),
			timeOut: at(16, 30),
			// Out before 5 PM, so minutes count; break still deducted.
			expected: HoursResult{WorkedHours: 7.5, OvertimeHours: 0, IsLate: false, IsUndertime: true},
		},
		{
			name:    "morning-only stint skips break",
			timeIn:  at(8, 0),
			timeOut: at(12, 0),
			// Out before 1 PM, no break deduction.
			expected: HoursResult{WorkedHours: 4, OvertimeHours: 0, IsLate: false, IsUndertime: true},
		},
		{
			name:    "whole-hour overtime",
			timeIn:  at(8, 0),
			timeOut: at(19, 45),
			// Base stops at 5 PM; two whole hours elapsed past it.
			expected: HoursResult{WorkedHours: 8, OvertimeHours: 2, IsLate: false, IsUndertime: false},
		},
		{
			name:     "late and overtime together",
			timeIn:   at(10, 0),
			timeOut:  at(18, 0),
			expected: HoursResult{WorkedHours: 6, OvertimeHours: 1, IsLate: true, IsUndertime: false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeHours(tt.timeIn, tt.timeOut)
			assert.InDelta(t, tt.expected.WorkedHours, got.WorkedHours, 0.0001, "worked hours")
			assert.InDelta(t, tt.expected.OvertimeHours, got.OvertimeHours, 0.0001, "overtime hours")
			assert.Equal(t, tt.expected.IsLate, got.IsLate, "late flag")
			assert.Equal(t, tt.expected.IsUndertime, got.IsUndertime, "undertime flag")
		})
	}
}
