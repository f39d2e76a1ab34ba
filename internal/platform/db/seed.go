package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"hradmin/internal/platform/config"
)

// Seed inserts a small demo data set so the admin frontend has rows to
// render on a fresh database. It only runs when RUN_SEED is enabled and
// the employee table is empty.
func Seed(ctx context.Context, pool *pgxpool.Pool, cfg config.Config) error {
	if !cfg.RunSeed {
		return nil
	}

	var count int
	if err := pool.QueryRow(ctx, "SELECT COUNT(1) FROM employee_info").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var employeeID int64
	if err := tx.QueryRow(ctx, `
    INSERT INTO employee_info (name, position, department, salary, employment_history, contact)
    VALUES ('Jane Doe', 'HR Officer', 'Human Resources', 52000, 'Joined 2023', 'jane.doe@example.com')
    RETURNING employee_id
  `).Scan(&employeeID); err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, `
    INSERT INTO payroll (employee_id, hours_worked, leave_deductions, final_salary)
    VALUES ($1, 160, 0, 52000)
  `, employeeID); err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, `
    INSERT INTO attendance (employee_id, attendance_date, status)
    VALUES ($1, CURRENT_DATE, 'Present')
  `, employeeID); err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, `
    INSERT INTO leave_requests (employee_id, start_date, end_date, reason)
    VALUES ($1, CURRENT_DATE + 7, CURRENT_DATE + 9, 'Family event')
  `, employeeID); err != nil {
		return err
	}

	return tx.Commit(ctx)
}
