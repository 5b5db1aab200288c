// Package session carries the caller's sign-in state through a request.
package session

import "context"

// Session is the request's sign-in state. It is passed explicitly to services.
type Session struct {
	ID       string
	LoggedIn bool
	Email    string
}

// Anonymous returns a session that is not signed in.
func Anonymous() *Session {
	return &Session{}
}

// SignedIn reports whether the session belongs to a signed-in user.
func (s *Session) SignedIn() bool {
	return s != nil && s.LoggedIn && s.Email != ""
}

type ctxKey struct{}

// NewContext returns a copy of ctx carrying s.
func NewContext(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext returns the session stored in ctx, or an anonymous session.
func FromContext(ctx context.Context) *Session {
	if s, ok := ctx.Value(ctxKey{}).(*Session); ok && s != nil {
		return s
	}
	return Anonymous()
}
