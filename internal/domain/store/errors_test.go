package store

import (
	"errors"
	"fmt"
	"net"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestClassifyForeignKeyViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"}

	got := Classify(fmt.Errorf("exec: %w", pgErr))
	if !errors.Is(got, ErrConstraint) {
		t.Fatalf("expected ErrConstraint, got %v", got)
	}
}

func TestClassifyConnectionFailure(t *testing.T) {
	dialErr := &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}

	got := Classify(fmt.Errorf("query: %w", dialErr))
	if !errors.Is(got, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", got)
	}
}

func TestClassifyPassesThroughUnknownErrors(t *testing.T) {
	plain := errors.New("connection reset")

	if got := Classify(plain); got != plain {
		t.Fatalf("expected passthrough, got %v", got)
	}
	if Classify(nil) != nil {
		t.Fatal("nil should classify to nil")
	}
}
