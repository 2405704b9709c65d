package contribution

import "context"

// TableRepository defines data access for statutory contribution tables.
type TableRepository interface {
	Create(ctx context.Context, table Table) (Table, error)
	GetByID(ctx context.Context, id string) (Table, error)
	ListByType(ctx context.Context, tableType TableType) ([]Table, error)
	List(ctx context.Context) ([]Table, error)

	// Activate marks the table active and deactivates every other table of
	// the same type inside a single transaction.
	Activate(ctx context.Context, id string) error

	// GetActive resolves the current table for a type: latest effective date
	// with is_active = true.
	GetActive(ctx context.Context, tableType TableType) (Table, error)

	Delete(ctx context.Context, id string) error
}

// Service is the admin-facing contribution table API.
type Service interface {
	CreateTable(ctx context.Context, req CreateTableRequest) (TableResponse, error)
	GetTable(ctx context.Context, id string) (TableResponse, error)
	ListTables(ctx context.Context, tableType string) ([]TableResponse, error)
	ActivateTable(ctx context.Context, id string) error
	DeleteTable(ctx context.Context, id string) error
}
