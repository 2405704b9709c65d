package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/tala-hr/payroll-backend-go/internal/domain/contribution"
)

// workingDaysPerMonth is the fixed working-day assumption used to derive
// monthly compensation from a daily rate. Every statutory computation in the
// system uses this same constant.
const workingDaysPerMonth = 22

var (
	pagibigThreshold = decimal.NewFromInt(1500)
	pagibigCeiling   = decimal.NewFromInt(10000)
	pagibigLowEERate = decimal.NewFromFloat(0.01)
	pagibigRate      = decimal.NewFromFloat(0.02)

	philhealthFloorSalary   = decimal.NewFromInt(10000)
	philhealthFloorPremium  = decimal.NewFromInt(500)
	philhealthCeilingSalary = decimal.NewFromInt(100000)
	philhealthCeilingPrem   = decimal.NewFromInt(5000)

	two     = decimal.NewFromInt(2)
	hundred = decimal.NewFromInt(100)
)

// Withholding tax tiers per the monthly revised withholding table. Each tier
// charges a fixed base plus a rate on the excess over its lower bound.
var taxTiers = []struct {
	upTo decimal.Decimal
	base decimal.Decimal
	rate decimal.Decimal
	over decimal.Decimal
}{
	{decimal.NewFromInt(20833), decimal.Zero, decimal.Zero, decimal.Zero},
	{decimal.NewFromInt(33332), decimal.Zero, decimal.NewFromFloat(0.20), decimal.NewFromInt(20833)},
	{decimal.NewFromInt(66666), decimal.NewFromInt(2500), decimal.NewFromFloat(0.25), decimal.NewFromInt(33333)},
	{decimal.NewFromInt(166666), decimal.NewFromInt(10833), decimal.NewFromFloat(0.30), decimal.NewFromInt(66666)},
	{decimal.NewFromInt(666666), decimal.NewFromInt(40833), decimal.NewFromFloat(0.32), decimal.NewFromInt(166666)},
	{decimal.Decimal{}, decimal.NewFromInt(200833), decimal.NewFromFloat(0.35), decimal.NewFromInt(666666)},
}

// Shares is the employee/employer split of a statutory contribution.
type Shares struct {
	Employee decimal.Decimal
	Employer decimal.Decimal
}

func (s Shares) Total() decimal.Decimal {
	return s.Employee.Add(s.Employer)
}

// MonthlyCompensation derives the monthly salary figure from a daily rate.
func MonthlyCompensation(ratePerDay decimal.Decimal) decimal.Decimal {
	return ratePerDay.Mul(decimal.NewFromInt(workingDaysPerMonth))
}

// ComputeSSS looks up the bracket covering monthlyCompensation and returns the
// published per-bracket amounts: regular SS plus WISP on both sides, EC on the
// employer side only. Returns ok = false when the table is missing or no
// bracket covers the amount; callers log and carry a zero contribution.
func ComputeSSS(monthlyCompensation decimal.Decimal, table *contribution.Table) (Shares, bool) {
	if table == nil {
		return Shares{Employee: decimal.Zero, Employer: decimal.Zero}, false
	}
	bracket, found := table.FindBracket(monthlyCompensation)
	if !found {
		return Shares{Employee: decimal.Zero, Employer: decimal.Zero}, false
	}
	return Shares{
		Employee: bracket.RegularSSEE.Add(bracket.WISPEE),
		Employer: bracket.RegularSSER.Add(bracket.ECER).Add(bracket.WISPER),
	}, true
}

// ComputePagIbig applies the percentage rule: at or below 1500 the employee
// pays 1% and the employer 2% of compensation; above 1500 both pay 2% of
// compensation capped at 10000. The legacy per-bracket rate columns are not
// consulted.
func ComputePagIbig(monthlyCompensation decimal.Decimal) Shares {
	if monthlyCompensation.LessThanOrEqual(pagibigThreshold) {
		return Shares{
			Employee: monthlyCompensation.Mul(pagibigLowEERate).Round(2),
			Employer: monthlyCompensation.Mul(pagibigRate).Round(2),
		}
	}
	capped := decimal.Min(monthlyCompensation, pagibigCeiling)
	share := capped.Mul(pagibigRate).Round(2)
	return Shares{Employee: share, Employer: share}
}

// ComputePhilHealth applies the premium floor at a 10000 salary (500 premium),
// the ceiling at 100000 (5000 premium), and the table's premium rate between
// them. The premium splits 50/50, each side rounded to 2 decimal places.
// Returns ok = false when the rate is needed but the table is missing.
func ComputePhilHealth(monthlyCompensation decimal.Decimal, table *contribution.Table) (Shares, bool) {
	var premium decimal.Decimal
	switch {
	case monthlyCompensation.LessThanOrEqual(philhealthFloorSalary):
		premium = philhealthFloorPremium
	case monthlyCompensation.GreaterThanOrEqual(philhealthCeilingSalary):
		premium = philhealthCeilingPrem
	default:
		if table == nil {
			return Shares{Employee: decimal.Zero, Employer: decimal.Zero}, false
		}
		premium = monthlyCompensation.Mul(table.PremiumRate.Div(hundred))
	}
	half := premium.Div(two).Round(2)
	return Shares{Employee: half, Employer: half}, true
}

// ComputeWithholdingTax computes monthly withholding tax on gross pay. Tier
// boundaries are exact literal thresholds; only the final amount is rounded.
func ComputeWithholdingTax(grossPay decimal.Decimal) decimal.Decimal {
	for i, tier := range taxTiers {
		if i == len(taxTiers)-1 || grossPay.LessThanOrEqual(tier.upTo) {
			return tier.base.Add(grossPay.Sub(tier.over).Mul(tier.rate)).Round(2)
		}
	}
	return decimal.Zero
}
