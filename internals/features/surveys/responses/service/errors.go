// file: internals/features/surveys/responses/service/errors.go
package service

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

/* =========================================================
   ERROR TAXONOMY
   - ValidationError  → surfaced verbatim (400/422)
   - NotFoundError    → 404
   - SchemaError      → fatal config problem, generic 500, logged
   - TransientStoreError → bounded retry, then generic "try again"
   - CorruptDataError → recovered locally (row treated as empty), logged
========================================================= */

type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func NewValidationError(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

type NotFoundError struct {
	Resource string
	ID       int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Resource, e.ID)
}

// SchemaError: neither the legacy nor the shortened column exists on the
// table. This must fail loudly; silently defaulting to legacy names is the
// exact bug class the resolver is here to remove.
type SchemaError struct {
	Table   string
	Logical string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("table %q has no known physical column for logical field %q", e.Table, e.Logical)
}

type TransientStoreError struct {
	Err error
}

func (e *TransientStoreError) Error() string { return "transient store error: " + e.Err.Error() }
func (e *TransientStoreError) Unwrap() error { return e.Err }

type CorruptDataError struct {
	Table string
	Err   error
}

func (e *CorruptDataError) Error() string {
	return fmt.Sprintf("corrupt stored array in table %q: %v", e.Table, e.Err)
}
func (e *CorruptDataError) Unwrap() error { return e.Err }

// classifyStoreError separates retryable infrastructure failures from fatal
// ones. Postgres error classes here: 08 connection exceptions, 40001/40P01
// serialization failures and deadlocks, 57014 statement_timeout cancels,
// 53xxx resource exhaustion.
func classifyStoreError(err error) error {
	if err == nil {
		return nil
	}
	var ve *ValidationError
	var nf *NotFoundError
	var se *SchemaError
	var te *TransientStoreError
	var ce *CorruptDataError
	if errors.As(err, &ve) || errors.As(err, &nf) || errors.As(err, &se) ||
		errors.As(err, &te) || errors.As(err, &ce) {
		return err
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return &TransientStoreError{Err: err}
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &TransientStoreError{Err: err}
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		code := pgErr.Code
		if len(code) >= 2 {
			switch code[:2] {
			case "08", "53":
				return &TransientStoreError{Err: err}
			}
		}
		switch code {
		case "40001", "40P01", "57014":
			return &TransientStoreError{Err: err}
		}
	}
	return err
}
