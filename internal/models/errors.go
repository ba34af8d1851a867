package models

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind is a machine-readable error category.
type Kind string

const (
	KindNotFound          Kind = "NOT_FOUND"
	KindOwnershipMismatch Kind = "OWNERSHIP_MISMATCH"
	KindInvalidRequest    Kind = "INVALID_REQUEST"
	KindPersistence       Kind = "PERSISTENCE_ERROR"
)

// HTTPStatus maps a kind to the status code the transport answers with.
func (k Kind) HTTPStatus() int {
	switch k {
	case KindNotFound:
		return http.StatusNotFound
	case KindOwnershipMismatch:
		return http.StatusForbidden
	case KindInvalidRequest:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Error is the domain error carried out of the use cases.
type Error struct {
	Kind     Kind
	Message  string
	Metadata map[string]string
	Cause    error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches any *Error of the same kind, so sentinels work with errors.Is.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Kind == t.Kind
	}
	return false
}

var (
	ErrNotFound          = &Error{Kind: KindNotFound, Message: "not found"}
	ErrOwnershipMismatch = &Error{Kind: KindOwnershipMismatch, Message: "ownership mismatch"}
	ErrInvalidRequest    = &Error{Kind: KindInvalidRequest, Message: "invalid request"}
	ErrPersistence       = &Error{Kind: KindPersistence, Message: "persistence error"}
)

func NewError(kind Kind, message string, metadata map[string]string) *Error {
	return &Error{Kind: kind, Message: message, Metadata: metadata}
}

// Persistence wraps a backend or codec failure.
func Persistence(op string, cause error) *Error {
	return &Error{Kind: KindPersistence, Message: op, Cause: cause}
}

func UserNotFound(userID string) *Error {
	return NewError(KindNotFound, fmt.Sprintf("user with ID %s not found", userID), map[string]string{"user_id": userID})
}

func GameNotFound(gameID string) *Error {
	return NewError(KindNotFound, fmt.Sprintf("game with ID %s not found", gameID), map[string]string{"game_id": gameID})
}

// KindOf returns the kind of err, or KindPersistence for foreign errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindPersistence
}

// MetadataOf returns the metadata attached to err, if any.
func MetadataOf(err error) map[string]string {
	var e *Error
	if errors.As(err, &e) {
		return e.Metadata
	}
	return nil
}
