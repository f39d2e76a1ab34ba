package attendance

import "time"

const (
	StatusPresent = "Present"
	StatusAbsent  = "Absent"
)

type Record struct {
	ID         int64     `json:"attendance_id"`
	EmployeeID int64     `json:"employee_id"`
	Date       time.Time `json:"date"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

// UpdateRecord is a partial payload; nil fields keep their stored values.
type UpdateRecord struct {
	Date   *time.Time
	Status *string
}
