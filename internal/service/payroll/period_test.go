package payroll

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tala-hr/payroll-backend-go/internal/domain/contribution"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestResolvePeriod(t *testing.T) {
	tests := []struct {
		name      string
		input     time.Time
		wantStart time.Time
		wantEnd   time.Time
	}{
		{"first of month", date(2024, time.March, 1), date(2024, time.March, 1), date(2024, time.March, 15)},
		{"day 15 stays in first half", date(2024, time.March, 15), date(2024, time.March, 1), date(2024, time.March, 15)},
		{"day 16 starts second half", date(2024, time.March, 16), date(2024, time.March, 16), date(2024, time.March, 31)},
		{"31-day month end", date(2024, time.January, 31), date(2024, time.January, 16), date(2024, time.January, 31)},
		{"30-day month end", date(2024, time.April, 20), date(2024, time.April, 16), date(2024, time.April, 30)},
		{"february leap year", date(2024, time.February, 29), date(2024, time.February, 16), date(2024, time.February, 29)},
		{"february non-leap year", date(2023, time.February, 20), date(2023, time.February, 16), date(2023, time.February, 28)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := ResolvePeriod(tt.input)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}

func TestResolvePeriodBounds(t *testing.T) {
	// Every day of a leap year resolves to a period starting on 1 or 16 and
	// ending on 15 or the last day of the month.
	d := date(2024, time.January, 1)
	for d.Year() == 2024 {
		start, end := ResolvePeriod(d)
		assert.Contains(t, []int{1, 16}, start.Day())
		lastDay := time.Date(d.Year(), d.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
		assert.Contains(t, []int{15, lastDay}, end.Day())
		assert.Equal(t, d.Month(), start.Month())
		assert.Equal(t, d.Month(), end.Month())
		d = d.AddDate(0, 0, 1)
	}
}

func TestCutoffHalf(t *testing.T) {
	assert.Equal(t, contribution.FirstHalf, CutoffHalf(date(2024, time.June, 1)))
	assert.Equal(t, contribution.FirstHalf, CutoffHalf(date(2024, time.June, 15)))
	assert.Equal(t, contribution.SecondHalf, CutoffHalf(date(2024, time.June, 16)))
	assert.Equal(t, contribution.SecondHalf, CutoffHalf(date(2024, time.June, 30)))
}
