package contribution

import "errors"

var (
	ErrTableNotFound    = errors.New("contribution table not found")
	ErrNoActiveTable    = errors.New("no active contribution table for type")
	ErrInvalidTableType = errors.New("invalid contribution table type")
	ErrTableInUse       = errors.New("contribution table is referenced by generated payroll")
)
