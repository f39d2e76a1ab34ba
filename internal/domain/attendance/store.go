package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"hradmin/internal/domain/store"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) List(ctx context.Context) ([]Record, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT attendance_id, employee_id, attendance_date, status, created_at
    FROM attendance
    ORDER BY attendance_id
  `)
	if err != nil {
		return nil, store.Classify(err)
	}
	defer rows.Close()

	out := []Record{}
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.ID, &rec.EmployeeID, &rec.Date, &rec.Status, &rec.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (s *Store) Insert(ctx context.Context, employeeID int64, date time.Time, status string) (int64, error) {
	var id int64
	err := s.DB.QueryRow(ctx, `
    INSERT INTO attendance (employee_id, attendance_date, status)
    VALUES ($1,$2,$3)
    RETURNING attendance_id
  `, employeeID, date, status).Scan(&id)
	if err != nil {
		return 0, store.Classify(err)
	}
	return id, nil
}

// Update applies the supplied fields to the row matching both the
// attendance id and the owning employee id.
func (s *Store) Update(ctx context.Context, id, employeeID int64, p UpdateRecord) error {
	var fs store.FieldSet
	if p.Date != nil {
		fs.Set("attendance_date", *p.Date)
	}
	if p.Status != nil {
		fs.Set("status", *p.Status)
	}
	if fs.Empty() {
		return store.ErrNoFields
	}

	args := append(fs.Values(), id, employeeID)
	cmd, err := s.DB.Exec(ctx, fmt.Sprintf(
		"UPDATE attendance SET %s WHERE attendance_id = $%d AND employee_id = $%d",
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
	_, err := s.DB.Exec(ctx, "DELETE FROM attendance WHERE attendance_id = $1", id)
	return store.Classify(err)
}
