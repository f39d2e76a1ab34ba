package leave

import "time"

const (
	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusRejected = "Rejected"

	DefaultLeaveType = "Annual"
)

type Request struct {
	ID         int64     `json:"leave_id"`
	EmployeeID int64     `json:"employee_id"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	Reason     string    `json:"reason"`
	Status     string    `json:"status"`
	LeaveType  string    `json:"leave_type"`
	CreatedAt  time.Time `json:"created_at"`
}

type NewRequest struct {
	EmployeeID int64
	StartDate  time.Time
	EndDate    time.Time
	Reason     string
	Status     string
	LeaveType  string
}

// UpdateRequest is a partial payload; nil fields keep their stored values.
type UpdateRequest struct {
	StartDate *time.Time
	EndDate   *time.Time
	Reason    *string
	Status    *string
	LeaveType *string
}
