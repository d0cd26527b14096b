package book

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrorKind tags a domain failure so callers can branch on the category
// instead of matching message text.
type ErrorKind int

const (
	KindMissingField ErrorKind = iota
	KindInvalidFormat
	KindOutOfBounds
	KindFutureDate
	KindNotFound
	KindStorageFailure
)

// Error is the domain error type. It carries the failure kind plus the
// field name and offending value where one exists.
type Error struct {
	Kind    ErrorKind
	Field   string
	Value   string
	Message string
	cause   error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

// IsKind reports whether err is, or wraps, a domain Error of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var de *Error
	return errors.As(err, &de) && de.Kind == kind
}

// IsNotFound reports whether err means the requested book does not exist.
func IsNotFound(err error) bool {
	return IsKind(err, KindNotFound)
}

// NotFoundError builds the not-found failure for the given id.
func NotFoundError(id int64) *Error {
	return &Error{
		Kind:    KindNotFound,
		Field:   "id",
		Value:   strconv.FormatInt(id, 10),
		Message: fmt.Sprintf("Livro com ID %d não encontrado", id),
	}
}

func missingField(field, message string) *Error {
	return &Error{Kind: KindMissingField, Field: field, Message: message}
}

func invalidFormat(field, value, message string) *Error {
	return &Error{Kind: KindInvalidFormat, Field: field, Value: value, Message: message}
}

func outOfBounds(field, value, message string) *Error {
	return &Error{Kind: KindOutOfBounds, Field: field, Value: value, Message: message}
}

func futureDate(field, value, message string) *Error {
	return &Error{Kind: KindFutureDate, Field: field, Value: value, Message: message}
}

func storageFailure(op string, cause error) *Error {
	return &Error{
		Kind:    KindStorageFailure,
		Message: fmt.Sprintf("falha de armazenamento em %s: %v", op, cause),
		cause:   cause,
	}
}
