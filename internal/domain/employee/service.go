package employee

import (
	"context"
	"fmt"
)

// Defaults for the payroll row created alongside a new employee.
const (
	DefaultHoursWorked     = 160
	DefaultLeaveDeductions = 0
)

type Service struct {
	Store TxStore
}

func NewService(store TxStore) *Service {
	return &Service{Store: store}
}

// Create inserts the employee and its initial payroll row in one
// transaction. Either both rows exist afterwards or neither does. The
// payroll row starts at hours_worked=160, leave_deductions=0 and
// final_salary equal to the employee's salary (0 when no salary was
// supplied).
func (s *Service) Create(ctx context.Context, e NewEmployee) (int64, error) {
	tx, err := s.Store.BeginTx(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin employee create: %w", err)
	}
	defer tx.Rollback(ctx)

	id, err := tx.InsertEmployee(ctx, e)
	if err != nil {
		return 0, fmt.Errorf("insert employee: %w", err)
	}

	finalSalary := 0.0
	if e.Salary != nil {
		finalSalary = *e.Salary
	}
	if err := tx.InsertPayroll(ctx, id, DefaultHoursWorked, DefaultLeaveDeductions, finalSalary); err != nil {
		return 0, fmt.Errorf("insert initial payroll: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit employee create: %w", err)
	}
	return id, nil
}
