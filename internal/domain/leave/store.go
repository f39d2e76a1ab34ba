package leave

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"hradmin/internal/domain/store"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) List(ctx context.Context) ([]Request, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT leave_id, employee_id, start_date, end_date, reason, status, leave_type, created_at
    FROM leave_requests
    ORDER BY leave_id
  `)
	if err != nil {
		return nil, store.Classify(err)
	}
	defer rows.Close()

	out := []Request{}
	for rows.Next() {
		var req Request
		if err := rows.Scan(&req.ID, &req.EmployeeID, &req.StartDate, &req.EndDate, &req.Reason, &req.Status, &req.LeaveType, &req.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, req)
	}
	return out, rows.Err()
}

func (s *Store) Insert(ctx context.Context, r NewRequest) (int64, error) {
	var id int64
	err := s.DB.QueryRow(ctx, `
    INSERT INTO leave_requests (employee_id, start_date, end_date, reason, status, leave_type)
    VALUES ($1,$2,$3,$4,$5,$6)
    RETURNING leave_id
  `, r.EmployeeID, r.StartDate, r.EndDate, r.Reason, r.Status, r.LeaveType).Scan(&id)
	if err != nil {
		return 0, store.Classify(err)
	}
	return id, nil
}

func (s *Store) Delete(ctx context.Context, leaveID int64) error {
	_, err := s.DB.Exec(ctx, "DELETE FROM leave_requests WHERE leave_id = $1", leaveID)
	return store.Classify(err)
}

func (s *Store) BeginTx(ctx context.Context) (Tx, error) {
	tx, err := s.DB.Begin(ctx)
	if err != nil {
		return nil, err
	}
	return &storeTx{tx: tx}, nil
}

type storeTx struct {
	tx pgx.Tx
}

func (t *storeTx) UpdateRequest(ctx context.Context, leaveID int64, p UpdateRequest) error {
	var fs store.FieldSet
	if p.StartDate != nil {
		fs.Set("start_date", *p.StartDate)
	}
	if p.EndDate != nil {
		fs.Set("end_date", *p.EndDate)
	}
	if p.Reason != nil {
		fs.Set("reason", *p.Reason)
	}
	if p.Status != nil {
		fs.Set("status", *p.Status)
	}
	if p.LeaveType != nil {
		fs.Set("leave_type", *p.LeaveType)
	}
	if fs.Empty() {
		return store.ErrNoFields
	}

	args := append(fs.Values(), leaveID)
	cmd, err := t.tx.Exec(ctx, fmt.Sprintf(
		"UPDATE leave_requests SET %s WHERE leave_id = $%d",
		fs.Assignments(1), fs.Len()+1,
	), args...)
	if err != nil {
		return store.Classify(err)
	}
	if cmd.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (t *storeTx) GetRequest(ctx context.Context, leaveID int64) (*Request, error) {
	var req Request
	err := t.tx.QueryRow(ctx, `
    SELECT leave_id, employee_id, start_date, end_date, reason, status, leave_type, created_at
    FROM leave_requests
    WHERE leave_id = $1
  `, leaveID).Scan(&req.ID, &req.EmployeeID, &req.StartDate, &req.EndDate, &req.Reason, &req.Status, &req.LeaveType, &req.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("leave request %d: %w", leaveID, store.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (t *storeTx) InsertAttendance(ctx context.Context, employeeID int64, date time.Time, status string) error {
	_, err := t.tx.Exec(ctx, `
    INSERT INTO attendance (employee_id, attendance_date, status)
    VALUES ($1,$2,$3)
  `, employeeID, date, status)
	return store.Classify(err)
}

func (t *storeTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

func (t *storeTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}
