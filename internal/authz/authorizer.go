// Package authz resolves a user's role in a club and the actions that role allows.
package authz

import "context"

// Action constants define the gated club actions.
const (
	ActionClubUpdate       = "club:update"
	ActionClubDelete       = "club:delete"
	ActionClubImage        = "club:image"
	ActionEventCreate      = "event:create"
	ActionEventUpdate      = "event:update"
	ActionEventDelete      = "event:delete"
	ActionMemberList       = "member:list"
	ActionMemberUpdateRole = "member:update_role"
)

// Authorizer answers role questions for a (user email, club name) pair.
// A missing club or missing membership is never an error: it is simply not a role.
type Authorizer interface {
	// IsAdmin reports whether the user is an admin of the named club.
	IsAdmin(ctx context.Context, email, clubName string) (bool, error)

	// GetRole returns the user's role in the club, or empty string if not a member.
	GetRole(ctx context.Context, email, clubName string) (string, error)

	// CanPerform checks if the user's role in the club allows the action.
	CanPerform(ctx context.Context, email, clubName, action string) (bool, error)
}
