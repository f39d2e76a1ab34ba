package employee

import "context"

// TxStore opens the unit of work the creation workflow runs inside.
type TxStore interface {
	BeginTx(ctx context.Context) (Tx, error)
}

// Tx is the transactional slice of the store the creation workflow needs.
// Rollback after a successful Commit must be a no-op.
type Tx interface {
	InsertEmployee(ctx context.Context, e NewEmployee) (int64, error)
	InsertPayroll(ctx context.Context, employeeID int64, hoursWorked, leaveDeductions, finalSalary float64) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}
