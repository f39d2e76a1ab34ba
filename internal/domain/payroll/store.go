package payroll

import (
	"context"
	"errors"
	"fmt"

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

func (s *Store) List(ctx context.Context) ([]Entry, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, employee_id, hours_worked, leave_deductions, final_salary, month, created_at
    FROM payroll
    ORDER BY id
  `)
	if err != nil {
		return nil, store.Classify(err)
	}
	defer rows.Close()

	out := []Entry{}
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.EmployeeID, &e.HoursWorked, &e.LeaveDeductions, &e.FinalSalary, &e.Month, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *Store) Insert(ctx context.Context, e NewEntry) (int64, error) {
	var id int64
	err := s.DB.QueryRow(ctx, `
    INSERT INTO payroll (employee_id, hours_worked, leave_deductions, final_salary, month)
    VALUES ($1,$2,$3,$4,$5)
    RETURNING id
  `, e.EmployeeID, e.HoursWorked, e.LeaveDeductions, e.FinalSalary, e.Month).Scan(&id)
	if err != nil {
		return 0, store.Classify(err)
	}
	return id, nil
}

// Update applies the supplied fields to the row matching both the payroll
// id and the owning employee id. A mismatched employee id behaves like a
// missing row.
func (s *Store) Update(ctx context.Context, id, employeeID int64, p UpdateEntry) error {
	var fs store.FieldSet
	if p.HoursWorked != nil {
		fs.Set("hours_worked", *p.HoursWorked)
	}
	if p.LeaveDeductions != nil {
		fs.Set("leave_deductions", *p.LeaveDeductions)
	}
	if p.FinalSalary != nil {
		fs.Set("final_salary", *p.FinalSalary)
	}
	if fs.Empty() {
		return store.ErrNoFields
	}

	args := append(fs.Values(), id, employeeID)
	cmd, err := s.DB.Exec(ctx, fmt.Sprintf(
		"UPDATE payroll SET %s WHERE id = $%d AND employee_id = $%d",
		fs.Assignments(1), fs.Len()+1, fs.Len()+2,
	), args...)
	if err != nil {
		return store.Classify(err)
	}
	if cmd.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, id int64) error {
	_, err := s.DB.Exec(ctx, "DELETE FROM payroll WHERE id = $1", id)
	return store.Classify(err)
}

func (s *Store) Payslip(ctx context.Context, id int64) (Payslip, error) {
	var p Payslip
	err := s.DB.QueryRow(ctx, `
    SELECT p.id, p.employee_id, e.name, e.position, e.department,
           p.hours_worked, p.leave_deductions, p.final_salary, p.month, p.created_at
    FROM payroll p
    JOIN employee_info e ON e.employee_id = p.employee_id
    WHERE p.id = $1
  `, id).Scan(&p.EntryID, &p.EmployeeID, &p.EmployeeName, &p.Position, &p.Department,
		&p.HoursWorked, &p.LeaveDeductions, &p.FinalSalary, &p.Month, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Payslip{}, fmt.Errorf("payroll %d: %w", id, store.ErrNotFound)
	}
	if err != nil {
		return Payslip{}, err
	}
	return p, nil
}
