// Package errors provides the application error kinds and sentinel errors.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error for the HTTP layer.
type Kind int

// Error kinds, ordered from the least to the most specific fallback.
const (
	KindServerError Kind = iota
	KindNotFound
	KindUnauthorized
	KindUnauthenticated
	KindBadRequest
	KindConflict
	KindTooManyRequests
)

var kindNames = map[Kind]string{
	KindServerError:     "ServerError",
	KindNotFound:        "NotFound",
	KindUnauthorized:    "Unauthorized",
	KindUnauthenticated: "Unauthenticated",
	KindBadRequest:      "BadRequest",
	KindConflict:        "Conflict",
	KindTooManyRequests: "TooManyRequests",
}

// String returns the kind name used in response messages.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return kindNames[KindServerError]
}

// HTTPStatus maps the kind to a response status code.
func (k Kind) HTTPStatus() int {
	switch k {
	case KindNotFound:
		return http.StatusNotFound
	case KindUnauthorized:
		return http.StatusForbidden
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindBadRequest:
		return http.StatusBadRequest
	case KindConflict:
		return http.StatusConflict
	case KindTooManyRequests:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

var kindDescriptions = map[Kind]string{
	KindServerError:     "Server Error",
	KindNotFound:        "The requested resource does not exist",
	KindUnauthorized:    "You are not allowed to perform this action",
	KindUnauthenticated: "Authentication failed",
	KindBadRequest:      "The request is malformed or invalid",
	KindConflict:        "The request conflicts with existing data",
	KindTooManyRequests: "Rate limit exceeded",
}

// Description returns the generic description used when an error carries none.
func (k Kind) Description() string {
	if d, ok := kindDescriptions[k]; ok {
		return d
	}
	return kindDescriptions[KindServerError]
}

// Error is an application error carrying its kind.
type Error struct {
	Kind        Kind
	Message     string
	Description string
	Err         error
}

// New creates an error of the given kind.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error with the same kind and message.
// Descriptions and causes are ignored so described copies still match their sentinel.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && e.Message == t.Message
}

// Details returns the description, falling back to the kind's generic one.
func (e *Error) Details() string {
	if e.Description != "" {
		return e.Description
	}
	return e.Kind.Description()
}

// Describe returns a copy of e with a request-specific description.
func (e *Error) Describe(format string, args ...interface{}) *Error {
	cp := *e
	cp.Description = fmt.Sprintf(format, args...)
	return &cp
}

// Wrap returns a copy of e recording err as its cause.
func (e *Error) Wrap(err error) *Error {
	cp := *e
	cp.Err = err
	return &cp
}

// KindOf returns the kind of err. Errors that are not *Error are server errors.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindServerError
}

// BadRequest wraps a binding or parsing failure.
func BadRequest(err error) *Error {
	return &Error{Kind: KindBadRequest, Message: "invalid request", Description: err.Error(), Err: err}
}

// Session errors
var (
	ErrSignInRequired     = New(KindUnauthorized, "must sign in").Describe("Sign in to perform this action")
	ErrAdminRequired      = New(KindUnauthorized, "only admins may perform this action").Describe("Club admin role required")
	ErrInvalidCredentials = New(KindUnauthenticated, "invalid email or password").Describe("Email or password is incorrect")
	ErrInvalidToken       = New(KindUnauthenticated, "invalid or expired token").Describe("Access token is invalid or has expired")
	ErrRateLimited        = New(KindTooManyRequests, "too many requests, please try again later")
)

// User errors
var (
	ErrUserNotFound      = New(KindNotFound, "user not found").Describe("No user exists with this email")
	ErrUserAlreadyExists = New(KindConflict, "user with this email already exists").Describe("Email is already registered")
)

// Club errors
var (
	ErrClubNotFound  = New(KindNotFound, "club not found").Describe("Club does not exist")
	ErrClubNameTaken = New(KindConflict, "club name is already taken").Describe("Club names must be unique")
)

// Event errors
var (
	ErrEventNotFound = New(KindNotFound, "event not found").Describe("Event does not exist in this club")
)

// Membership errors
var (
	ErrNotClubMember  = New(KindNotFound, "you are not a member of this club").Describe("Join the club first")
	ErrMemberNotFound = New(KindNotFound, "membership not found").Describe("User is not a member of this club")
	ErrAlreadyMember  = New(KindConflict, "user is already a club member").Describe("Membership already exists")
	ErrLastAdmin      = New(KindConflict, "a club must keep at least one admin").Describe("Promote another member to admin first")
	ErrInvalidRole    = New(KindBadRequest, "invalid role, must be admin or member").Describe("Role must be admin or member")
)

// Store errors
var (
	ErrWriteNotAcknowledged = New(KindServerError, "write was not acknowledged")
)
