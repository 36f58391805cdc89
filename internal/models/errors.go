package models

import (
	"errors"
	"fmt"
)

// ErrorKind classifies domain failures so the transport layer can map them.
type ErrorKind string

const (
	KindNotFound        ErrorKind = "NOT_FOUND"
	KindInvalidArgument ErrorKind = "INVALID_ARGUMENT"
	KindBusinessRule    ErrorKind = "BUSINESS_RULE"
	KindConflict        ErrorKind = "CONFLICT"
)

// DomainError is a failure raised by the services or the persistence layer
type DomainError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

// Error implements the error interface
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying cause, if any
func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewNotFoundError reports a lookup by id or code that yielded nothing
func NewNotFoundError(format string, args ...any) *DomainError {
	return &DomainError{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// NewInvalidArgumentError reports an identifier that the caller may not address
func NewInvalidArgumentError(format string, args ...any) *DomainError {
	return &DomainError{Kind: KindInvalidArgument, Message: fmt.Sprintf(format, args...)}
}

// NewBusinessRuleError reports a value that fails a domain rule
func NewBusinessRuleError(format string, args ...any) *DomainError {
	return &DomainError{Kind: KindBusinessRule, Message: fmt.Sprintf(format, args...)}
}

// NewConflictError reports a storage constraint violation
func NewConflictError(message string, cause error) *DomainError {
	return &DomainError{Kind: KindConflict, Message: message, Err: cause}
}

// KindOf returns the kind of the first DomainError in err's chain, or "" if there is none.
func KindOf(err error) ErrorKind {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Kind
	}
	return ""
}

// IsKind reports whether err carries a DomainError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	return KindOf(err) == kind
}
