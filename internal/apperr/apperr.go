// Package apperr holds the error taxonomy shared by every module.
package apperr

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
)

// ValidationError reports missing or malformed input. Nothing has been written.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Validation builds a ValidationError.
func Validation(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError reports a missing row.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

// NotFound builds a NotFoundError.
func NotFound(entity, id string) error { return &NotFoundError{Entity: entity, ID: id} }

// PersistenceError wraps a failed write that aborts the request.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string { return e.Op + ": " + e.Err.Error() }
func (e *PersistenceError) Unwrap() error { return e.Err }

// Persistence wraps err as a PersistenceError, or returns nil.
func Persistence(op string, err error) error {
	if err == nil {
		return nil
	}
	return &PersistenceError{Op: op, Err: err}
}

// DownstreamError wraps a failure of a best-effort side effect.
// It is recorded and logged, never returned to HTTP callers.
type DownstreamError struct {
	Step string
	Key  string
	Err  error
}

func (e *DownstreamError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Step, e.Key, e.Err)
}
func (e *DownstreamError) Unwrap() error { return e.Err }

// Downstream builds a DownstreamError.
func Downstream(step, key string, err error) error {
	return &DownstreamError{Step: step, Key: key, Err: err}
}

// IsUniqueViolation reports whether err is a PostgreSQL unique constraint violation (23505).
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}
