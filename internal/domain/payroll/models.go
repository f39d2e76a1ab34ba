package payroll

import "time"

type Entry struct {
	ID              int64     `json:"id"`
	EmployeeID      int64     `json:"employee_id"`
	HoursWorked     float64   `json:"hours_worked"`
	LeaveDeductions float64   `json:"leave_deductions"`
	FinalSalary     float64   `json:"final_salary"`
	Month           string    `json:"month"`
	CreatedAt       time.Time `json:"created_at"`
}

type NewEntry struct {
	EmployeeID      int64   `json:"employee_id"`
	HoursWorked     float64 `json:"hours_worked"`
	LeaveDeductions float64 `json:"leave_deductions"`
	FinalSalary     float64 `json:"final_salary"`
	Month           string  `json:"month"`
}

// UpdateEntry is a partial payload; nil fields keep their stored values.
// The owning employee_id is not updatable, it is part of the update key.
type UpdateEntry struct {
	HoursWorked     *float64 `json:"hours_worked"`
	LeaveDeductions *float64 `json:"leave_deductions"`
	FinalSalary     *float64 `json:"final_salary"`
}

// Payslip is the payroll row joined with its employee, as rendered on the
// PDF export.
type Payslip struct {
	EntryID         int64
	EmployeeID      int64
	EmployeeName    string
	Position        string
	Department      string
	HoursWorked     float64
	LeaveDeductions float64
	FinalSalary     float64
	Month           string
	CreatedAt       time.Time
}
