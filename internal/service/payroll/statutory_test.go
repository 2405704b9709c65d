package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tala-hr/payroll-backend-go/internal/domain/contribution"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func sssTestTable() *contribution.Table {
	return &contribution.Table{
		Type: contribution.TableTypeSSS,
		Brackets: []contribution.Bracket{
			{
				RangeStart:  dec("0"),
				RangeEnd:    dec("4249.99"),
				RegularSSEE: dec("180"),
				RegularSSER: dec("390"),
				ECER:        dec("10"),
			},
			{
				RangeStart:  dec("4250"),
				RangeEnd:    dec("4749.99"),
				RegularSSEE: dec("202.50"),
				RegularSSER: dec("437.50"),
				ECER:        dec("10"),
			},
			{
				RangeStart:  dec("20250"),
				RangeEnd:    dec("20749.99"),
				RegularSSEE: dec("900"),
				RegularSSER: dec("1900"),
				ECER:        dec("30"),
				WISPEE:      dec("22.50"),
				WISPER:      dec("47.50"),
			},
		},
	}
}

func TestComputeSSS(t *testing.T) {
	table := sssTestTable()

	t.Run("bracket without wisp", func(t *testing.T) {
		shares, ok := ComputeSSS(dec("4500"), table)
		require.True(t, ok)
		assert.True(t, shares.Employee.Equal(dec("202.50")), "ee = %s", shares.Employee)
		assert.True(t, shares.Employer.Equal(dec("447.50")), "er = %s", shares.Employer)
	})

	t.Run("bracket with wisp adds both components", func(t *testing.T) {
		shares, ok := ComputeSSS(dec("20500"), table)
		require.True(t, ok)
		assert.True(t, shares.Employee.Equal(dec("922.50")), "ee = %s", shares.Employee)
		assert.True(t, shares.Employer.Equal(dec("1977.50")), "er = %s", shares.Employer)
	})

	t.Run("range bounds are inclusive", func(t *testing.T) {
		shares, ok := ComputeSSS(dec("4249.99"), table)
		require.True(t, ok)
		assert.True(t, shares.Employee.Equal(dec("180")))

		shares, ok = ComputeSSS(dec("4250"), table)
		require.True(t, ok)
		assert.True(t, shares.Employee.Equal(dec("202.50")))
	})

	t.Run("no bracket covers amount", func(t *testing.T) {
		shares, ok := ComputeSSS(dec("50000"), table)
		assert.False(t, ok)
		assert.True(t, shares.Employee.IsZero())
		assert.True(t, shares.Employer.IsZero())
	})

	t.Run("missing table yields zero", func(t *testing.T) {
		shares, ok := ComputeSSS(dec("4500"), nil)
		assert.False(t, ok)
		assert.True(t, shares.Total().IsZero())
	})
}

func TestComputePagIbig(t *testing.T) {
	t.Run("at threshold employee pays 1 percent", func(t *testing.T) {
		shares := ComputePagIbig(dec("1500"))
		assert.True(t, shares.Employee.Equal(dec("15")), "ee = %s", shares.Employee)
		assert.True(t, shares.Employer.Equal(dec("30")), "er = %s", shares.Employer)
	})

	t.Run("below threshold", func(t *testing.T) {
		shares := ComputePagIbig(dec("1000"))
		assert.True(t, shares.Employee.Equal(dec("10")))
		assert.True(t, shares.Employer.Equal(dec("20")))
	})

	t.Run("above threshold both pay 2 percent", func(t *testing.T) {
		shares := ComputePagIbig(dec("5000"))
		assert.True(t, shares.Employee.Equal(dec("100")))
		assert.True(t, shares.Employer.Equal(dec("100")))
	})

	t.Run("compensation capped at ceiling", func(t *testing.T) {
		shares := ComputePagIbig(dec("20000"))
		assert.True(t, shares.Employee.Equal(dec("200")), "ee = %s", shares.Employee)
		assert.True(t, shares.Employer.Equal(dec("200")), "er = %s", shares.Employer)
	})
}

func TestComputePhilHealth(t *testing.T) {
	table := &contribution.Table{
		Type:        contribution.TableTypePhilHealth,
		PremiumRate: dec("5"),
	}

	t.Run("floor at 10000", func(t *testing.T) {
		shares, ok := ComputePhilHealth(dec("10000"), table)
		require.True(t, ok)
		assert.True(t, shares.Employee.Equal(dec("250")), "ee = %s", shares.Employee)
		assert.True(t, shares.Employer.Equal(dec("250")), "er = %s", shares.Employer)
	})

	t.Run("below floor still pays floor premium", func(t *testing.T) {
		shares, ok := ComputePhilHealth(dec("8000"), table)
		require.True(t, ok)
		assert.True(t, shares.Employee.Equal(dec("250")))
	})

	t.Run("ceiling at 100000", func(t *testing.T) {
		shares, ok := ComputePhilHealth(dec("100000"), table)
		require.True(t, ok)
		assert.True(t, shares.Employee.Equal(dec("2500")))
		assert.True(t, shares.Employer.Equal(dec("2500")))
	})

	t.Run("above ceiling stays at ceiling premium", func(t *testing.T) {
		shares, ok := ComputePhilHealth(dec("250000"), table)
		require.True(t, ok)
		assert.True(t, shares.Employee.Equal(dec("2500")))
	})

	t.Run("between floor and ceiling uses table rate", func(t *testing.T) {
		shares, ok := ComputePhilHealth(dec("50000"), table)
		require.True(t, ok)
		assert.True(t, shares.Employee.Equal(dec("1250")), "ee = %s", shares.Employee)
		assert.True(t, shares.Employer.Equal(dec("1250")), "er = %s", shares.Employer)
	})

	t.Run("shares rounded to 2 decimal places", func(t *testing.T) {
		shares, ok := ComputePhilHealth(dec("33333"), table)
		require.True(t, ok)
		// 33333 * 5% = 1666.65, halved = 833.325, rounds half up.
		assert.True(t, shares.Employee.Equal(dec("833.33")), "ee = %s", shares.Employee)
	})

	t.Run("missing table in rate band yields zero", func(t *testing.T) {
		shares, ok := ComputePhilHealth(dec("50000"), nil)
		assert.False(t, ok)
		assert.True(t, shares.Total().IsZero())
	})

	t.Run("missing table outside rate band is fine", func(t *testing.T) {
		shares, ok := ComputePhilHealth(dec("9000"), nil)
		require.True(t, ok)
		assert.True(t, shares.Employee.Equal(dec("250")))
	})
}

func TestComputeWithholdingTax(t *testing.T) {
	tests := []struct {
		name  string
		gross string
		want  string
	}{
		{"zero gross", "0", "0"},
		{"exempt at first boundary", "20833", "0"},
		{"just above exemption", "20834", "0.20"},
		{"second tier top", "33332", "2499.80"},
		{"third tier bottom", "33333", "2500"},
		{"third tier", "50000", "6666.75"},
		{"third tier top", "66666", "10833.25"},
		{"fourth tier", "100000", "20833.20"},
		{"fifth tier bottom", "166666", "40833"},
		{"fifth tier", "200000", "51499.88"},
		{"top tier bottom", "666666", "200833"},
		{"top tier", "1000000", "317499.90"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeWithholdingTax(dec(tt.gross))
			assert.True(t, got.Equal(dec(tt.want)), "tax(%s) = %s, want %s", tt.gross, got, tt.want)
		})
	}
}

func TestComputeWithholdingTaxTierContinuity(t *testing.T) {
	// Crossing a tier boundary by one peso must not jump by more than the top
	// marginal rate, i.e. the piecewise formula has no discontinuities.
	boundaries := []string{"20833", "33332", "66666", "166666", "666666"}
	for _, b := range boundaries {
		at := ComputeWithholdingTax(dec(b))
		above := ComputeWithholdingTax(dec(b).Add(dec("1")))
		diff := above.Sub(at)
		assert.True(t, diff.GreaterThanOrEqual(decimal.Zero), "boundary %s", b)
		assert.True(t, diff.LessThanOrEqual(dec("0.35")), "boundary %s jumped by %s", b, diff)
	}
}

func TestMonthlyCompensation(t *testing.T) {
	assert.True(t, MonthlyCompensation(dec("1000")).Equal(dec("22000")))
	assert.True(t, MonthlyCompensation(dec("545.45")).Equal(dec("11999.90")))
}
