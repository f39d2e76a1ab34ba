package leave

import (
	"context"
	"time"
)

// TxStore opens the unit of work the approval workflow runs inside.
type TxStore interface {
	BeginTx(ctx context.Context) (Tx, error)
}

// Tx is the transactional slice of the store the approval workflow needs.
// Rollback after a successful Commit must be a no-op.
type Tx interface {
	UpdateRequest(ctx context.Context, leaveID int64, p UpdateRequest) error
	GetRequest(ctx context.Context, leaveID int64) (*Request, error)
	InsertAttendance(ctx context.Context, employeeID int64, date time.Time, status string) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}
