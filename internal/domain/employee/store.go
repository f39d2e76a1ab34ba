package employee

import (
	"context"
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

func (s *Store) List(ctx context.Context) ([]Employee, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT employee_id, name, position, department, salary, employment_history, contact, created_at
    FROM employee_info
    ORDER BY employee_id
  `)
	if err != nil {
		return nil, store.Classify(err)
	}
	defer rows.Close()

	out := []Employee{}
	for rows.Next() {
		var e Employee
		if err := rows.Scan(&e.ID, &e.Name, &e.Position, &e.Department, &e.Salary, &e.EmploymentHistory, &e.Contact, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (s *Store) Update(ctx context.Context, employeeID int64, p UpdateEmployee) error {
	var fs store.FieldSet
	if p.Name != nil {
		fs.Set("name", *p.Name)
	}
	if p.Position != nil {
		fs.Set("position", *p.Position)
	}
	if p.Department != nil {
		fs.Set("department", *p.Department)
	}
	if p.Salary != nil {
		fs.Set("salary", *p.Salary)
	}
	if p.EmploymentHistory != nil {
		fs.Set("employment_history", *p.EmploymentHistory)
	}
	if p.Contact != nil {
		fs.Set("contact", *p.Contact)
	}
	if fs.Empty() {
		return store.ErrNoFields
	}

	args := append(fs.Values(), employeeID)
	cmd, err := s.DB.Exec(ctx, fmt.Sprintf(
		"UPDATE employee_info SET %s WHERE employee_id = $%d",
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

// Delete removes the employee row. Dependent payroll, attendance and
// leave rows go with it via the schema's ON DELETE CASCADE. Deleting an
// absent id is not an error.
func (s *Store) Delete(ctx context.Context, employeeID int64) error {
	_, err := s.DB.Exec(ctx, "DELETE FROM employee_info WHERE employee_id = $1", employeeID)
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

func (t *storeTx) InsertEmployee(ctx context.Context, e NewEmployee) (int64, error) {
	var id int64
	err := t.tx.QueryRow(ctx, `
    INSERT INTO employee_info (name, position, department, salary, employment_history, contact)
    VALUES ($1,$2,$3,$4,$5,$6)
    RETURNING employee_id
  `, e.Name, e.Position, e.Department, e.Salary, e.EmploymentHistory, e.Contact).Scan(&id)
	if err != nil {
		return 0, store.Classify(err)
	}
	return id, nil
}

func (t *storeTx) InsertPayroll(ctx context.Context, employeeID int64, hoursWorked, leaveDeductions, finalSalary float64) error {
	_, err := t.tx.Exec(ctx, `
    INSERT INTO payroll (employee_id, hours_worked, leave_deductions, final_salary)
    VALUES ($1,$2,$3,$4)
  `, employeeID, hoursWorked, leaveDeductions, finalSalary)
	return store.Classify(err)
}

func (t *storeTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

func (t *storeTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}
