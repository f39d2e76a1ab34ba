package store

import (
	"errors"
	"fmt"
	"net"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrNoFields reports an update payload carrying no recognized fields.
	ErrNoFields = errors.New("no fields to update")
	// ErrNotFound reports that no row matched the target id.
	ErrNotFound = errors.New("record not found")
	// ErrConstraint reports a foreign-key or uniqueness violation.
	ErrConstraint = errors.New("constraint violation")
	// ErrUnavailable reports that the database could not be reached.
	ErrUnavailable = errors.New("store unavailable")
)

const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
)

// Classify maps driver-level errors onto the store taxonomy. Errors it
// does not recognize pass through unchanged.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgForeignKeyViolation, pgUniqueViolation:
			return fmt.Errorf("%w: %s", ErrConstraint, pgErr.Message)
		}
	}
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return fmt.Errorf("%w: %v", ErrUnavailable, netErr)
	}
	return err
}
