package repository

import (
	"context"
	"testing"

	"clubhub/internal/database"
	apperrors "clubhub/internal/errors"
	"clubhub/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestClubRoleRepository(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewClubRoleRepository(tdb.Database)
	ctx := context.Background()
	clubID := primitive.NewObjectID()

	t.Run("creates and finds membership case-insensitively", func(t *testing.T) {
		tdb.ClearCollection(t, database.ClubRolesCollection)

		role := &models.ClubRole{ClubID: clubID, Email: "Ada@Example.com", Role: models.RoleAdmin}
		require.NoError(t, repo.Create(ctx, role))
		assert.NotZero(t, role.JoinedAt)

		found, err := repo.FindByClubAndEmail(ctx, clubID, "ada@example.com")
		require.NoError(t, err)
		assert.Equal(t, models.RoleAdmin, found.Role)
	})

	t.Run("one role per club and email", func(t *testing.T) {
		tdb.ClearCollection(t, database.ClubRolesCollection)

		require.NoError(t, repo.Create(ctx, &models.ClubRole{ClubID: clubID, Email: "x@example.com", Role: models.RoleMember}))
		err := repo.Create(ctx, &models.ClubRole{ClubID: clubID, Email: "x@example.com", Role: models.RoleAdmin})

		assert.ErrorIs(t, err, apperrors.ErrAlreadyMember)
	})

	t.Run("missing membership is not a member", func(t *testing.T) {
		tdb.ClearCollection(t, database.ClubRolesCollection)

		_, err := repo.FindByClubAndEmail(ctx, clubID, "nobody@example.com")
		assert.ErrorIs(t, err, apperrors.ErrNotClubMember)
	})

	t.Run("lists, counts and updates roles", func(t *testing.T) {
		tdb.ClearCollection(t, database.ClubRolesCollection)

		otherClub := primitive.NewObjectID()
		require.NoError(t, repo.Create(ctx, &models.ClubRole{ClubID: clubID, Email: "a@example.com", Role: models.RoleAdmin}))
		require.NoError(t, repo.Create(ctx, &models.ClubRole{ClubID: clubID, Email: "b@example.com", Role: models.RoleMember}))
		require.NoError(t, repo.Create(ctx, &models.ClubRole{ClubID: otherClub, Email: "b@example.com", Role: models.RoleAdmin}))

		members, err := repo.FindByClubID(ctx, clubID)
		require.NoError(t, err)
		assert.Len(t, members, 2)

		mine, err := repo.FindByEmail(ctx, "b@example.com")
		require.NoError(t, err)
		assert.Len(t, mine, 2)

		admins, err := repo.CountByClubAndRole(ctx, clubID, models.RoleAdmin)
		require.NoError(t, err)
		assert.Equal(t, 1, admins)

		require.NoError(t, repo.UpdateRole(ctx, clubID, "b@example.com", models.RoleAdmin))
		admins, err = repo.CountByClubAndRole(ctx, clubID, models.RoleAdmin)
		require.NoError(t, err)
		assert.Equal(t, 2, admins)

		err = repo.UpdateRole(ctx, clubID, "nobody@example.com", models.RoleAdmin)
		assert.ErrorIs(t, err, apperrors.ErrMemberNotFound)
	})

	t.Run("deletes membership and all memberships of a club", func(t *testing.T) {
		tdb.ClearCollection(t, database.ClubRolesCollection)

		require.NoError(t, repo.Create(ctx, &models.ClubRole{ClubID: clubID, Email: "a@example.com", Role: models.RoleAdmin}))
		require.NoError(t, repo.Create(ctx, &models.ClubRole{ClubID: clubID, Email: "b@example.com", Role: models.RoleMember}))

		require.NoError(t, repo.Delete(ctx, clubID, "b@example.com"))
		assert.ErrorIs(t, repo.Delete(ctx, clubID, "b@example.com"), apperrors.ErrMemberNotFound)

		require.NoError(t, repo.DeleteAllByClubID(ctx, clubID))
		members, err := repo.FindByClubID(ctx, clubID)
		require.NoError(t, err)
		assert.Empty(t, members)
	})
}
