package authz

import (
	"context"
	"errors"

	apperrors "clubhub/internal/errors"
	"clubhub/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ClubFinder looks up a club by its name.
type ClubFinder interface {
	FindByName(ctx context.Context, name string) (*models.Club, error)
}

// RoleFinder looks up a user's membership in a club.
type RoleFinder interface {
	FindByClubAndEmail(ctx context.Context, clubID primitive.ObjectID, email string) (*models.ClubRole, error)
}

// LocalAuthorizer implements Authorizer with store lookups.
type LocalAuthorizer struct {
	clubFinder ClubFinder
	roleFinder RoleFinder
}

// NewLocalAuthorizer creates a new LocalAuthorizer.
func NewLocalAuthorizer(clubFinder ClubFinder, roleFinder RoleFinder) *LocalAuthorizer {
	return &LocalAuthorizer{
		clubFinder: clubFinder,
		roleFinder: roleFinder,
	}
}

// rolePermissions maps actions to the roles that can perform them.
var rolePermissions = map[string][]string{
	ActionClubUpdate:       {models.RoleAdmin},
	ActionClubDelete:       {models.RoleAdmin},
	ActionClubImage:        {models.RoleAdmin},
	ActionEventCreate:      {models.RoleAdmin},
	ActionEventUpdate:      {models.RoleAdmin},
	ActionEventDelete:      {models.RoleAdmin},
	ActionMemberList:       {models.RoleAdmin},
	ActionMemberUpdateRole: {models.RoleAdmin},
}

// GetRole returns the user's role in a club, or empty string if the club
// does not exist or the user is not a member.
func (a *LocalAuthorizer) GetRole(ctx context.Context, email, clubName string) (string, error) {
	if email == "" {
		return "", nil
	}

	club, err := a.clubFinder.FindByName(ctx, clubName)
	if err != nil {
		if errors.Is(err, apperrors.ErrClubNotFound) {
			return "", nil // Expected: no such club
		}
		return "", err
	}

	role, err := a.roleFinder.FindByClubAndEmail(ctx, club.ID, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotClubMember) {
			return "", nil // Expected: not a member
		}
		return "", err
	}
	return role.Role, nil
}

// IsAdmin reports whether the user is an admin of the named club.
func (a *LocalAuthorizer) IsAdmin(ctx context.Context, email, clubName string) (bool, error) {
	role, err := a.GetRole(ctx, email, clubName)
	if err != nil {
		return false, err
	}
	return role == models.RoleAdmin, nil
}

// CanPerform checks if the user's role in the club allows the action.
func (a *LocalAuthorizer) CanPerform(ctx context.Context, email, clubName, action string) (bool, error) {
	allowedRoles, exists := rolePermissions[action]
	if !exists {
		return false, nil // Unknown action
	}

	role, err := a.GetRole(ctx, email, clubName)
	if err != nil || role == "" {
		return false, err
	}

	for _, allowed := range allowedRoles {
		if role == allowed {
			return true, nil
		}
	}

	return false, nil
}

// Ensure LocalAuthorizer implements Authorizer
var _ Authorizer = (*LocalAuthorizer)(nil)
