package store

import (
	"errors"
	"fmt"
)

// DBErrorKind classifies a storage failure for callers that must not inspect
// backend-specific details.
type DBErrorKind int

const (
	// KindOther covers every backend failure that is not the caller's fault:
	// connectivity loss, closed pools, unclassified query failures and constraint
	// violations other than referential ones.
	KindOther DBErrorKind = iota

	// KindInvalidUUID means the caller supplied an identifier that either failed to
	// parse or does not reference an existing row.
	KindInvalidUUID
)

// String returns a short, stable name for the kind, suitable for logs and metrics.
func (k DBErrorKind) String() string {
	switch k {
	case KindInvalidUUID:
		return "invalid_uuid"
	default:
		return "other"
	}
}

// ErrInvalidUUID is the sentinel matched by errors.Is for any DBError of kind
// KindInvalidUUID.
var ErrInvalidUUID = errors.New("invalid uuid")

// DBError is the only error type returned by store implementations.
type DBError struct {
	Kind    DBErrorKind
	Message string // Caller-safe for KindInvalidUUID; built only from caller input
	Err     error  // Underlying backend error, nil for parse failures
}

// Error implements the error interface for DBError.
func (e *DBError) Error() string {
	if e.Err != nil && e.Message != "" {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *DBError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrInvalidUUID and e is of that kind.
func (e *DBError) Is(target error) bool {
	return target == ErrInvalidUUID && e.Kind == KindInvalidUUID
}

// NewInvalidUUIDError creates a DBError for an identifier the caller got wrong.
func NewInvalidUUIDError(message string) *DBError {
	return &DBError{Kind: KindInvalidUUID, Message: message}
}

// NewOtherError wraps a backend failure that is not attributable to the caller.
func NewOtherError(err error) *DBError {
	return &DBError{Kind: KindOther, Err: err}
}

// AsDBError extracts a *DBError from err's chain.
func AsDBError(err error) (*DBError, bool) {
	var dbErr *DBError
	if errors.As(err, &dbErr) {
		return dbErr, true
	}
	return nil, false
}

// IsInvalidUUID checks if the error is a DBError of kind KindInvalidUUID.
func IsInvalidUUID(err error) bool {
	dbErr, ok := AsDBError(err)
	return ok && dbErr.Kind == KindInvalidUUID
}

// IsOther checks if the error is a DBError of kind KindOther.
func IsOther(err error) bool {
	dbErr, ok := AsDBError(err)
	return ok && dbErr.Kind == KindOther
}
