package leave

import (
	"context"
	"fmt"
	"log/slog"

	"hradmin/internal/domain/attendance"
)

type Service struct {
	Store TxStore
}

func NewService(store TxStore) *Service {
	return &Service{Store: store}
}

// UpdateRequest applies the partial update and, when the new status is
// Approved, records an Absent attendance row for the request's employee
// on its start date. Update and attendance insert commit together.
func (s *Service) UpdateRequest(ctx context.Context, leaveID int64, p UpdateRequest) error {
	tx, err := s.Store.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("begin leave update: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := tx.UpdateRequest(ctx, leaveID, p); err != nil {
		return err
	}

	if p.Status != nil && *p.Status == StatusApproved {
		req, err := tx.GetRequest(ctx, leaveID)
		if err != nil {
			// The request can vanish between the update and the re-read;
			// skip the attendance side effect rather than fail the update.
			slog.Warn("leave request missing after approval update", "leaveId", leaveID, "err", err)
		} else if err := tx.InsertAttendance(ctx, req.EmployeeID, req.StartDate, attendance.StatusAbsent); err != nil {
			return fmt.Errorf("record absence for approved leave: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit leave update: %w", err)
	}
	return nil
}
