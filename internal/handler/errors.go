package handler

import (
	"errors"
	"fmt"
)

// InternalErrorMessage is the only message an Internal error ever carries.
const InternalErrorMessage = "Something went wrong! Please try again."

// Kind classifies an Error by how the caller should treat it.
type Kind int

const (
	// KindInternal means the request could not be served for reasons the caller
	// cannot fix.
	KindInternal Kind = iota
	// KindBadRequest means the caller supplied an identifier that is malformed
	// or does not resolve.
	KindBadRequest
)

// String returns the label used in logs and metrics.
func (k Kind) String() string {
	switch k {
	case KindBadRequest:
		return "bad_request"
	default:
		return "internal"
	}
}

// Error is the caller-facing failure returned by every handler operation.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// BadRequest returns an Error of kind KindBadRequest with the given message.
func BadRequest(message string) *Error {
	return &Error{Kind: KindBadRequest, Message: message}
}

// InternalError returns an Error of kind KindInternal with the fixed message.
func InternalError() *Error {
	return &Error{Kind: KindInternal, Message: InternalErrorMessage}
}

// AsError extracts a *Error from err.
func AsError(err error) (*Error, bool) {
	var hErr *Error
	if errors.As(err, &hErr) {
		return hErr, true
	}
	return nil, false
}

// IsBadRequest reports whether err is a handler Error of kind KindBadRequest.
func IsBadRequest(err error) bool {
	hErr, ok := AsError(err)
	return ok && hErr.Kind == KindBadRequest
}

// IsInternal reports whether err is a handler Error of kind KindInternal.
func IsInternal(err error) bool {
	hErr, ok := AsError(err)
	return ok && hErr.Kind == KindInternal
}
