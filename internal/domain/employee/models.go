package employee

import "time"

type Employee struct {
	ID                int64     `json:"employee_id"`
	Name              string    `json:"name"`
	Position          string    `json:"position"`
	Department        string    `json:"department"`
	Salary            *float64  `json:"salary"`
	EmploymentHistory string    `json:"employment_history"`
	Contact           string    `json:"contact"`
	CreatedAt         time.Time `json:"created_at"`
}

// NewEmployee carries the fields accepted when creating an employee.
type NewEmployee struct {
	Name              string   `json:"name"`
	Position          string   `json:"position"`
	Department        string   `json:"department"`
	Salary            *float64 `json:"salary"`
	EmploymentHistory string   `json:"employment_history"`
	Contact           string   `json:"contact"`
}

// UpdateEmployee is a partial payload. A nil field was not supplied and
// keeps its stored value.
type UpdateEmployee struct {
	Name              *string  `json:"name"`
	Position          *string  `json:"position"`
	Department        *string  `json:"department"`
	Salary            *float64 `json:"salary"`
	EmploymentHistory *string  `json:"employment_history"`
	Contact           *string  `json:"contact"`
}
