package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a domain failure so callers can map it without string matching.
type ErrorKind string

const (
	KindUserNotFound    ErrorKind = "user_not_found"
	KindItemNotFound    ErrorKind = "item_not_found"
	KindBookingNotFound ErrorKind = "booking_not_found"
	KindRequestNotFound ErrorKind = "request_not_found"
	KindValidation      ErrorKind = "validation"
	KindUnknownState    ErrorKind = "unknown_state"
	KindConflict        ErrorKind = "conflict"
)

// Error is the typed error raised by the domain and application layers.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// NewUserNotFoundError reports a user id that does not resolve.
func NewUserNotFoundError(id int64) *Error {
	return &Error{Kind: KindUserNotFound, Message: fmt.Sprintf("user with id %d not found", id)}
}

// NewItemNotFoundError reports an item id that does not resolve, or an item the requester
// is not allowed to act on.
func NewItemNotFoundError(id int64) *Error {
	return &Error{Kind: KindItemNotFound, Message: fmt.Sprintf("item with id %d not found", id)}
}

// NewBookingNotFoundError reports a missing booking, or one the requester may not see.
func NewBookingNotFoundError(id int64) *Error {
	return &Error{Kind: KindBookingNotFound, Message: fmt.Sprintf("booking with id %d not found", id)}
}

// NewRequestNotFoundError reports a missing item request.
func NewRequestNotFoundError(id int64) *Error {
	return &Error{Kind: KindRequestNotFound, Message: fmt.Sprintf("request with id %d not found", id)}
}

// NewValidationError reports a rejected input or a disallowed transition.
func NewValidationError(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// NewUnknownStateError reports a booking state filter outside the supported set.
func NewUnknownStateError(value string) *Error {
	return &Error{Kind: KindUnknownState, Message: "Unknown state: " + value}
}

// NewConflictError reports a write that lost against a concurrent modification.
func NewConflictError(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

// KindOf returns the kind of a domain error anywhere in err's chain.
func KindOf(err error) (ErrorKind, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind, true
	}
	return "", false
}

// IsKind reports whether err carries a domain error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}
