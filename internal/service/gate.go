package service

import (
	"context"

	"clubhub/internal/authz"
	apperrors "clubhub/internal/errors"
	"clubhub/internal/session"
	"clubhub/internal/validator"
)

// AdminGate guards every mutating club and event operation.
// Callers resolve the target first; Authorize then checks the session and the role.
type AdminGate struct {
	authorizer authz.Authorizer
}

// NewAdminGate creates a new AdminGate.
func NewAdminGate(authorizer authz.Authorizer) *AdminGate {
	return &AdminGate{authorizer: authorizer}
}

// Authorize returns ErrSignInRequired for an anonymous session and
// ErrAdminRequired when the session's user may not perform action on the club.
func (g *AdminGate) Authorize(ctx context.Context, sess *session.Session, clubName, action string) error {
	if !sess.SignedIn() {
		return apperrors.ErrSignInRequired
	}

	allowed, err := g.authorizer.CanPerform(ctx, sess.Email, clubName, action)
	if err != nil {
		return err
	}
	if !allowed {
		return apperrors.ErrAdminRequired.Describe("admin role in %q required", clubName)
	}
	return nil
}

// requireSignIn is the gate for operations that need a user but no role.
func requireSignIn(sess *session.Session) error {
	if !sess.SignedIn() {
		return apperrors.ErrSignInRequired
	}
	return nil
}

// validateRequest checks a payload's binding tags. Mutating operations call it
// after the target is resolved and the caller has passed the gate.
func validateRequest(req interface{}) error {
	if err := validator.Struct(req); err != nil {
		return apperrors.BadRequest(err)
	}
	return nil
}
