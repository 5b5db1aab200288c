package service

import (
	"context"
	"errors"

	"clubhub/internal/authz"
	apperrors "clubhub/internal/errors"
	"clubhub/internal/models"
	"clubhub/internal/repository"
	"clubhub/internal/session"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MembershipService handles joining, leaving and role changes in clubs.
type MembershipService struct {
	clubRepo repository.ClubRepository
	roleRepo repository.ClubRoleRepository
	gate     *AdminGate
}

// NewMembershipService creates a new MembershipService.
func NewMembershipService(clubRepo repository.ClubRepository, roleRepo repository.ClubRoleRepository, gate *AdminGate) *MembershipService {
	return &MembershipService{
		clubRepo: clubRepo,
		roleRepo: roleRepo,
		gate:     gate,
	}
}

// JoinClub adds the session's user to the club as a member.
func (s *MembershipService) JoinClub(ctx context.Context, sess *session.Session, clubName string) (*models.ClubRole, error) {
	club, err := s.clubRepo.FindByName(ctx, clubName)
	if err != nil {
		return nil, err
	}

	if err := requireSignIn(sess); err != nil {
		return nil, err
	}

	role := &models.ClubRole{
		ClubID: club.ID,
		Email:  sess.Email,
		Role:   models.RoleMember,
	}
	if err := s.roleRepo.Create(ctx, role); err != nil {
		return nil, err
	}

	return role, nil
}

// LeaveClub removes the session's user from the club.
// The last admin of a club cannot leave it.
func (s *MembershipService) LeaveClub(ctx context.Context, sess *session.Session, clubName string) error {
	club, err := s.clubRepo.FindByName(ctx, clubName)
	if err != nil {
		return err
	}

	if err := requireSignIn(sess); err != nil {
		return err
	}

	role, err := s.roleRepo.FindByClubAndEmail(ctx, club.ID, sess.Email)
	if err != nil {
		return err
	}

	if role.Role == models.RoleAdmin {
		if err := s.ensureAnotherAdmin(ctx, club.ID); err != nil {
			return err
		}
	}

	return s.roleRepo.Delete(ctx, club.ID, sess.Email)
}

// GetMyRole returns the session user's role in the club.
func (s *MembershipService) GetMyRole(ctx context.Context, sess *session.Session, clubName string) (*models.RoleResponse, error) {
	club, err := s.clubRepo.FindByName(ctx, clubName)
	if err != nil {
		return nil, err
	}

	if err := requireSignIn(sess); err != nil {
		return nil, err
	}

	role, err := s.roleRepo.FindByClubAndEmail(ctx, club.ID, sess.Email)
	if err != nil {
		return nil, err
	}

	return &models.RoleResponse{Club: club.Name, Role: role.Role}, nil
}

// ListMembers lists the club's memberships. Admins only.
func (s *MembershipService) ListMembers(ctx context.Context, sess *session.Session, clubName string) (*models.MemberListResponse, error) {
	club, err := s.clubRepo.FindByName(ctx, clubName)
	if err != nil {
		return nil, err
	}

	if err := s.gate.Authorize(ctx, sess, club.Name, authz.ActionMemberList); err != nil {
		return nil, err
	}

	roles, err := s.roleRepo.FindByClubID(ctx, club.ID)
	if err != nil {
		return nil, err
	}

	return &models.MemberListResponse{Items: roles}, nil
}

// UpdateMemberRole changes a member's role. Admins only; the last admin
// cannot be demoted.
func (s *MembershipService) UpdateMemberRole(ctx context.Context, sess *session.Session, clubName, email string, req *models.UpdateRoleRequest) (*models.ClubRole, error) {
	club, err := s.clubRepo.FindByName(ctx, clubName)
	if err != nil {
		return nil, err
	}

	if err := s.gate.Authorize(ctx, sess, club.Name, authz.ActionMemberUpdateRole); err != nil {
		return nil, err
	}

	if !models.IsValidRole(req.Role) {
		return nil, apperrors.ErrInvalidRole
	}

	email = repository.NormalizeEmail(email)
	target, err := s.roleRepo.FindByClubAndEmail(ctx, club.ID, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotClubMember) {
			return nil, apperrors.ErrMemberNotFound.Describe("%s is not a member of %q", email, club.Name)
		}
		return nil, err
	}

	if target.Role == req.Role {
		return target, nil
	}

	if target.Role == models.RoleAdmin {
		if err := s.ensureAnotherAdmin(ctx, club.ID); err != nil {
			return nil, err
		}
	}

	if err := s.roleRepo.UpdateRole(ctx, club.ID, email, req.Role); err != nil {
		return nil, err
	}

	target.Role = req.Role
	return target, nil
}

// ListMyClubs returns the clubs the session's user belongs to, with their role.
func (s *MembershipService) ListMyClubs(ctx context.Context, sess *session.Session) ([]models.ClubWithRole, error) {
	if err := requireSignIn(sess); err != nil {
		return nil, err
	}

	roles, err := s.roleRepo.FindByEmail(ctx, sess.Email)
	if err != nil {
		return nil, err
	}
	if len(roles) == 0 {
		return []models.ClubWithRole{}, nil
	}

	ids := make([]primitive.ObjectID, 0, len(roles))
	roleByClub := make(map[primitive.ObjectID]string, len(roles))
	for _, r := range roles {
		ids = append(ids, r.ClubID)
		roleByClub[r.ClubID] = r.Role
	}

	clubs, err := s.clubRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	result := make([]models.ClubWithRole, 0, len(clubs))
	for _, club := range clubs {
		result = append(result, models.ClubWithRole{Club: club, Role: roleByClub[club.ID]})
	}
	return result, nil
}

func (s *MembershipService) ensureAnotherAdmin(ctx context.Context, clubID primitive.ObjectID) error {
	admins, err := s.roleRepo.CountByClubAndRole(ctx, clubID, models.RoleAdmin)
	if err != nil {
		return err
	}
	if admins <= 1 {
		return apperrors.ErrLastAdmin
	}
	return nil
}
