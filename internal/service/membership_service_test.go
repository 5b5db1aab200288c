package service

import (
	"context"
	"testing"

	apperrors "clubhub/internal/errors"
	"clubhub/internal/models"
	repomocks "clubhub/internal/repository/mocks"
	"clubhub/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
)

func newMembershipService(t *testing.T, gate *AdminGate) (*MembershipService, *repomocks.MockClubRepository, *repomocks.MockClubRoleRepository) {
	ctrl := gomock.NewController(t)
	clubs := repomocks.NewMockClubRepository(ctrl)
	roles := repomocks.NewMockClubRoleRepository(ctrl)
	return NewMembershipService(clubs, roles, gate), clubs, roles
}

func TestMembershipService_JoinClub(t *testing.T) {
	chess := &models.Club{ID: primitive.NewObjectID(), Name: "Chess"}

	t.Run("joins as member", func(t *testing.T) {
		svc, clubs, roles := newMembershipService(t, adminGate())
		clubs.EXPECT().FindByName(gomock.Any(), "Chess").Return(chess, nil)
		roles.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		role, err := svc.JoinClub(context.Background(), signedIn("ada@example.com"), "Chess")

		require.NoError(t, err)
		assert.Equal(t, models.RoleMember, role.Role)
		assert.Equal(t, chess.ID, role.ClubID)
	})

	t.Run("already a member", func(t *testing.T) {
		svc, clubs, roles := newMembershipService(t, adminGate())
		clubs.EXPECT().FindByName(gomock.Any(), "Chess").Return(chess, nil)
		roles.EXPECT().Create(gomock.Any(), gomock.Any()).Return(apperrors.ErrAlreadyMember)

		_, err := svc.JoinClub(context.Background(), signedIn("ada@example.com"), "Chess")

		assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))
	})

	t.Run("anonymous", func(t *testing.T) {
		svc, clubs, _ := newMembershipService(t, adminGate())
		clubs.EXPECT().FindByName(gomock.Any(), "Chess").Return(chess, nil)

		_, err := svc.JoinClub(context.Background(), session.Anonymous(), "Chess")

		assert.ErrorIs(t, err, apperrors.ErrSignInRequired)
	})
}

func TestMembershipService_LeaveClub(t *testing.T) {
	chess := &models.Club{ID: primitive.NewObjectID(), Name: "Chess"}

	t.Run("member leaves", func(t *testing.T) {
		svc, clubs, roles := newMembershipService(t, adminGate())
		clubs.EXPECT().FindByName(gomock.Any(), "Chess").Return(chess, nil)
		roles.EXPECT().FindByClubAndEmail(gomock.Any(), chess.ID, "ada@example.com").
			Return(&models.ClubRole{Role: models.RoleMember}, nil)
		roles.EXPECT().Delete(gomock.Any(), chess.ID, "ada@example.com").Return(nil)

		assert.NoError(t, svc.LeaveClub(context.Background(), signedIn("ada@example.com"), "Chess"))
	})

	t.Run("last admin cannot leave", func(t *testing.T) {
		svc, clubs, roles := newMembershipService(t, adminGate())
		clubs.EXPECT().FindByName(gomock.Any(), "Chess").Return(chess, nil)
		roles.EXPECT().FindByClubAndEmail(gomock.Any(), chess.ID, "ada@example.com").
			Return(&models.ClubRole{Role: models.RoleAdmin}, nil)
		roles.EXPECT().CountByClubAndRole(gomock.Any(), chess.ID, models.RoleAdmin).Return(1, nil)

		err := svc.LeaveClub(context.Background(), signedIn("ada@example.com"), "Chess")

		assert.ErrorIs(t, err, apperrors.ErrLastAdmin)
	})

	t.Run("non-member is not found", func(t *testing.T) {
		svc, clubs, roles := newMembershipService(t, adminGate())
		clubs.EXPECT().FindByName(gomock.Any(), "Chess").Return(chess, nil)
		roles.EXPECT().FindByClubAndEmail(gomock.Any(), chess.ID, "ada@example.com").Return(nil, apperrors.ErrNotClubMember)

		err := svc.LeaveClub(context.Background(), signedIn("ada@example.com"), "Chess")

		assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
	})
}

func TestMembershipService_GetMyRole(t *testing.T) {
	chess := &models.Club{ID: primitive.NewObjectID(), Name: "Chess"}
	svc, clubs, roles := newMembershipService(t, adminGate())
	clubs.EXPECT().FindByName(gomock.Any(), "Chess").Return(chess, nil)
	roles.EXPECT().FindByClubAndEmail(gomock.Any(), chess.ID, "ada@example.com").
		Return(&models.ClubRole{Role: models.RoleAdmin}, nil)

	resp, err := svc.GetMyRole(context.Background(), signedIn("ada@example.com"), "Chess")

	require.NoError(t, err)
	assert.Equal(t, &models.RoleResponse{Club: "Chess", Role: models.RoleAdmin}, resp)
}

func TestMembershipService_UpdateMemberRole(t *testing.T) {
	chess := &models.Club{ID: primitive.NewObjectID(), Name: "Chess"}
	promote := &models.UpdateRoleRequest{Role: models.RoleAdmin}
	demote := &models.UpdateRoleRequest{Role: models.RoleMember}

	t.Run("admin promotes member", func(t *testing.T) {
		svc, clubs, roles := newMembershipService(t, adminGate("admin@example.com"))
		clubs.EXPECT().FindByName(gomock.Any(), "Chess").Return(chess, nil)
		roles.EXPECT().FindByClubAndEmail(gomock.Any(), chess.ID, "ada@example.com").
			Return(&models.ClubRole{Email: "ada@example.com", Role: models.RoleMember}, nil)
		roles.EXPECT().UpdateRole(gomock.Any(), chess.ID, "ada@example.com", models.RoleAdmin).Return(nil)

		role, err := svc.UpdateMemberRole(context.Background(), signedIn("admin@example.com"), "Chess", " Ada@Example.com ", promote)

		require.NoError(t, err)
		assert.Equal(t, models.RoleAdmin, role.Role)
	})

	t.Run("member cannot change roles", func(t *testing.T) {
		svc, clubs, _ := newMembershipService(t, adminGate("admin@example.com"))
		clubs.EXPECT().FindByName(gomock.Any(), "Chess").Return(chess, nil)

		_, err := svc.UpdateMemberRole(context.Background(), signedIn("ada@example.com"), "Chess", "ada@example.com", promote)

		assert.ErrorIs(t, err, apperrors.ErrAdminRequired)
	})

	t.Run("invalid role", func(t *testing.T) {
		svc, clubs, _ := newMembershipService(t, adminGate("admin@example.com"))
		clubs.EXPECT().FindByName(gomock.Any(), "Chess").Return(chess, nil)

		_, err := svc.UpdateMemberRole(context.Background(), signedIn("admin@example.com"), "Chess", "ada@example.com",
			&models.UpdateRoleRequest{Role: "owner"})

		assert.ErrorIs(t, err, apperrors.ErrInvalidRole)
	})

	t.Run("unknown member", func(t *testing.T) {
		svc, clubs, roles := newMembershipService(t, adminGate("admin@example.com"))
		clubs.EXPECT().FindByName(gomock.Any(), "Chess").Return(chess, nil)
		roles.EXPECT().FindByClubAndEmail(gomock.Any(), chess.ID, "ghost@example.com").Return(nil, apperrors.ErrNotClubMember)

		_, err := svc.UpdateMemberRole(context.Background(), signedIn("admin@example.com"), "Chess", "ghost@example.com", promote)

		assert.ErrorIs(t, err, apperrors.ErrMemberNotFound)
	})

	t.Run("last admin cannot be demoted", func(t *testing.T) {
		svc, clubs, roles := newMembershipService(t, adminGate("admin@example.com"))
		clubs.EXPECT().FindByName(gomock.Any(), "Chess").Return(chess, nil)
		roles.EXPECT().FindByClubAndEmail(gomock.Any(), chess.ID, "admin@example.com").
			Return(&models.ClubRole{Email: "admin@example.com", Role: models.RoleAdmin}, nil)
		roles.EXPECT().CountByClubAndRole(gomock.Any(), chess.ID, models.RoleAdmin).Return(1, nil)

		_, err := svc.UpdateMemberRole(context.Background(), signedIn("admin@example.com"), "Chess", "admin@example.com", demote)

		assert.ErrorIs(t, err, apperrors.ErrLastAdmin)
	})

	t.Run("unchanged role is a no-op", func(t *testing.T) {
		svc, clubs, roles := newMembershipService(t, adminGate("admin@example.com"))
		clubs.EXPECT().FindByName(gomock.Any(), "Chess").Return(chess, nil)
		roles.EXPECT().FindByClubAndEmail(gomock.Any(), chess.ID, "ada@example.com").
			Return(&models.ClubRole{Email: "ada@example.com", Role: models.RoleMember}, nil)

		role, err := svc.UpdateMemberRole(context.Background(), signedIn("admin@example.com"), "Chess", "ada@example.com", demote)

		require.NoError(t, err)
		assert.Equal(t, models.RoleMember, role.Role)
	})
}

func TestMembershipService_ListMyClubs(t *testing.T) {
	chess := models.Club{ID: primitive.NewObjectID(), Name: "Chess"}
	robotics := models.Club{ID: primitive.NewObjectID(), Name: "Robotics"}

	t.Run("returns clubs with roles", func(t *testing.T) {
		svc, clubs, roles := newMembershipService(t, adminGate())
		roles.EXPECT().FindByEmail(gomock.Any(), "ada@example.com").Return([]models.ClubRole{
			{ClubID: chess.ID, Role: models.RoleAdmin},
			{ClubID: robotics.ID, Role: models.RoleMember},
		}, nil)
		clubs.EXPECT().FindByIDs(gomock.Any(), []primitive.ObjectID{chess.ID, robotics.ID}).
			Return([]models.Club{chess, robotics}, nil)

		result, err := svc.ListMyClubs(context.Background(), signedIn("ada@example.com"))

		require.NoError(t, err)
		require.Len(t, result, 2)
		assert.Equal(t, models.RoleAdmin, result[0].Role)
		assert.Equal(t, models.RoleMember, result[1].Role)
	})

	t.Run("no memberships", func(t *testing.T) {
		svc, _, roles := newMembershipService(t, adminGate())
		roles.EXPECT().FindByEmail(gomock.Any(), "ada@example.com").Return([]models.ClubRole{}, nil)

		result, err := svc.ListMyClubs(context.Background(), signedIn("ada@example.com"))

		require.NoError(t, err)
		assert.Empty(t, result)
	})

	t.Run("anonymous", func(t *testing.T) {
		svc, _, _ := newMembershipService(t, adminGate())

		_, err := svc.ListMyClubs(context.Background(), session.Anonymous())

		assert.ErrorIs(t, err, apperrors.ErrSignInRequired)
	})
}
