package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKind_HTTPStatus(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected int
		name     string
	}{
		{KindServerError, http.StatusInternalServerError, "ServerError"},
		{KindNotFound, http.StatusNotFound, "NotFound"},
		{KindUnauthorized, http.StatusForbidden, "Unauthorized"},
		{KindUnauthenticated, http.StatusUnauthorized, "Unauthenticated"},
		{KindBadRequest, http.StatusBadRequest, "BadRequest"},
		{KindConflict, http.StatusConflict, "Conflict"},
		{KindTooManyRequests, http.StatusTooManyRequests, "TooManyRequests"},
		{Kind(99), http.StatusInternalServerError, "ServerError"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.kind.HTTPStatus())
			assert.Equal(t, tt.name, tt.kind.String())
		})
	}
}

func TestError_Message(t *testing.T) {
	assert.Equal(t, "NotFound: club not found", ErrClubNotFound.Error())
	assert.Equal(t, "Unauthorized: must sign in", ErrSignInRequired.Error())

	wrapped := ErrWriteNotAcknowledged.Wrap(errors.New("boom"))
	assert.Equal(t, "ServerError: write was not acknowledged: boom", wrapped.Error())
}

func TestError_Is(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		target error
		match  bool
	}{
		{"same sentinel", ErrClubNotFound, ErrClubNotFound, true},
		{"described copy", ErrClubNotFound.Describe("club %q", "Chess"), ErrClubNotFound, true},
		{"wrapped by fmt", fmt.Errorf("lookup: %w", ErrEventNotFound), ErrEventNotFound, true},
		{"same kind different message", ErrClubNotFound, ErrEventNotFound, false},
		{"same message different kind", New(KindConflict, "club not found"), ErrClubNotFound, false},
		{"plain error", errors.New("club not found"), ErrClubNotFound, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.match, errors.Is(tt.err, tt.target))
		})
	}
}

func TestError_DescribeDoesNotMutateSentinel(t *testing.T) {
	described := ErrAdminRequired.Describe("admin of %s", "Chess")

	assert.Equal(t, "admin of Chess", described.Description)
	assert.Equal(t, "Club admin role required", ErrAdminRequired.Description)
}

func TestError_Details(t *testing.T) {
	assert.Equal(t, "Club does not exist", ErrClubNotFound.Details())
	assert.Equal(t, KindConflict.Description(), New(KindConflict, "taken").Details())
	assert.Equal(t, KindServerError.Description(), Kind(99).Description())
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := ErrWriteNotAcknowledged.Wrap(cause)

	assert.True(t, errors.Is(err, cause))
	assert.True(t, errors.Is(err, ErrWriteNotAcknowledged))
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Kind
	}{
		{"not found", ErrClubNotFound, KindNotFound},
		{"unauthorized", ErrAdminRequired, KindUnauthorized},
		{"wrapped conflict", fmt.Errorf("create: %w", ErrClubNameTaken), KindConflict},
		{"bad request", BadRequest(errors.New("name is required")), KindBadRequest},
		{"unknown error", errors.New("socket closed"), KindServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, KindOf(tt.err))
		})
	}
}

func TestSentinelKinds(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		kind Kind
	}{
		{"ErrSignInRequired", ErrSignInRequired, KindUnauthorized},
		{"ErrAdminRequired", ErrAdminRequired, KindUnauthorized},
		{"ErrInvalidCredentials", ErrInvalidCredentials, KindUnauthenticated},
		{"ErrClubNotFound", ErrClubNotFound, KindNotFound},
		{"ErrEventNotFound", ErrEventNotFound, KindNotFound},
		{"ErrClubNameTaken", ErrClubNameTaken, KindConflict},
		{"ErrLastAdmin", ErrLastAdmin, KindConflict},
		{"ErrInvalidRole", ErrInvalidRole, KindBadRequest},
		{"ErrRateLimited", ErrRateLimited, KindTooManyRequests},
		{"ErrWriteNotAcknowledged", ErrWriteNotAcknowledged, KindServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.err.Kind)
		})
	}
}
