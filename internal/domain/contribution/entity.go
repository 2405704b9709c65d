package contribution

import (
	"time"

	"github.com/shopspring/decimal"
)

// TableType identifies which statutory program a contribution table belongs to.
type TableType string

const (
	TableTypeSSS        TableType = "SSS"
	TableTypePagIbig    TableType = "PAGIBIG"
	TableTypePhilHealth TableType = "PHILHEALTH"
)

func (t TableType) Valid() bool {
	switch t {
	case TableTypeSSS, TableTypePagIbig, TableTypePhilHealth:
		return true
	}
	return false
}

// Kind identifies a statutory deduction line on an employee's payroll.
// Unlike TableType it includes withholding tax, which is formula-based and
// has no stored bracket table.
type Kind string

const (
	KindSSS        Kind = "sss"
	KindPhilHealth Kind = "philhealth"
	KindPagIbig    Kind = "pagibig"
	KindTax        Kind = "tax"
)

// Kinds lists every statutory deduction in a stable order.
var Kinds = []Kind{KindSSS, KindPhilHealth, KindPagIbig, KindTax}

// HalfMonth is the semi-monthly cutoff bucket a deduction applies to.
type HalfMonth string

const (
	FirstHalf  HalfMonth = "1st half"
	SecondHalf HalfMonth = "2nd half"
)

func (h HalfMonth) Valid() bool {
	return h == FirstHalf || h == SecondHalf
}

// Bracket is one compensation interval of a contribution table. For SSS the
// per-bracket amounts are the published constants; the legacy EmployeeRate and
// EmployerRate columns on Pag-IBIG rows are kept for display only and are not
// used in computation.
type Bracket struct {
	RangeStart decimal.Decimal
	RangeEnd   decimal.Decimal

	// SSS columns
	RegularSSEE decimal.Decimal
	RegularSSER decimal.Decimal
	ECER        decimal.Decimal
	WISPEE      decimal.Decimal
	WISPER      decimal.Decimal

	// Legacy Pag-IBIG columns
	EmployeeRate decimal.Decimal
	EmployerRate decimal.Decimal
}

// Contains reports whether the bracket's inclusive range covers amount.
func (b Bracket) Contains(amount decimal.Decimal) bool {
	return amount.GreaterThanOrEqual(b.RangeStart) && amount.LessThanOrEqual(b.RangeEnd)
}

// Table is a dated, versioned statutory contribution table. At most one table
// per type is active at a time; activation deactivates siblings in the same
// transaction.
type Table struct {
	ID            string
	Type          TableType
	Name          string
	EffectiveDate time.Time
	IsActive      bool

	// PremiumRate is the PhilHealth premium percentage (e.g. 5 for 5%).
	// Zero for SSS and Pag-IBIG tables.
	PremiumRate decimal.Decimal

	Brackets []Bracket

	CreatedAt time.Time
	UpdatedAt time.Time
}

// FindBracket returns the bracket whose range contains amount. Lookup is by
// the explicit Contains predicate, not insertion order.
func (t *Table) FindBracket(amount decimal.Decimal) (Bracket, bool) {
	for _, b := range t.Brackets {
		if b.Contains(amount) {
			return b, true
		}
	}
	return Bracket{}, false
}
