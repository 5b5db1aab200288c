package service

import (
	"context"
	"strings"
	"testing"
	"time"

	apperrors "clubhub/internal/errors"
	"clubhub/internal/models"
	"clubhub/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

const (
	adminEmail    = "admin@example.com"
	memberEmail   = "member@example.com"
	outsiderEmail = "outsider@example.com"
)

// mutation is one gated operation run against a club by name.
type mutation struct {
	name string
	run  func(ctx context.Context, a *app, sess *session.Session, club, eventID string) error
}

var mutations = []mutation{
	{"update club", func(ctx context.Context, a *app, sess *session.Session, club, _ string) error {
		desc := "updated"
		_, err := a.clubs.UpdateClub(ctx, sess, club, &models.UpdateClubRequest{Description: &desc})
		return err
	}},
	{"delete club", func(ctx context.Context, a *app, sess *session.Session, club, _ string) error {
		return a.clubs.DeleteClub(ctx, sess, club)
	}},
	{"request image upload", func(ctx context.Context, a *app, sess *session.Session, club, _ string) error {
		_, err := a.clubs.RequestImageUpload(ctx, sess, club, &models.ImageUploadRequest{ContentType: "image/png"})
		return err
	}},
	{"create event", func(ctx context.Context, a *app, sess *session.Session, club, _ string) error {
		_, err := a.events.CreateEvent(ctx, sess, club, &models.CreateEventRequest{Title: "Open Night", Date: time.Now()})
		return err
	}},
	{"update event", func(ctx context.Context, a *app, sess *session.Session, club, eventID string) error {
		title := "Renamed"
		_, err := a.events.UpdateEvent(ctx, sess, club, eventID, &models.UpdateEventRequest{Title: &title})
		return err
	}},
	{"delete event", func(ctx context.Context, a *app, sess *session.Session, club, eventID string) error {
		return a.events.DeleteEvent(ctx, sess, club, eventID)
	}},
	{"list members", func(ctx context.Context, a *app, sess *session.Session, club, _ string) error {
		_, err := a.membership.ListMembers(ctx, sess, club)
		return err
	}},
	{"promote member", func(ctx context.Context, a *app, sess *session.Session, club, _ string) error {
		_, err := a.membership.UpdateMemberRole(ctx, sess, club, memberEmail, &models.UpdateRoleRequest{Role: models.RoleAdmin})
		return err
	}},
}

// invalidPayloads run gated operations with payloads that fail validation.
var invalidPayloads = []mutation{
	{"update club", func(ctx context.Context, a *app, sess *session.Session, club, _ string) error {
		desc := strings.Repeat("x", 2001)
		_, err := a.clubs.UpdateClub(ctx, sess, club, &models.UpdateClubRequest{Description: &desc})
		return err
	}},
	{"request image upload", func(ctx context.Context, a *app, sess *session.Session, club, _ string) error {
		_, err := a.clubs.RequestImageUpload(ctx, sess, club, &models.ImageUploadRequest{})
		return err
	}},
	{"create event", func(ctx context.Context, a *app, sess *session.Session, club, _ string) error {
		_, err := a.events.CreateEvent(ctx, sess, club, &models.CreateEventRequest{})
		return err
	}},
	{"update event", func(ctx context.Context, a *app, sess *session.Session, club, eventID string) error {
		title := ""
		_, err := a.events.UpdateEvent(ctx, sess, club, eventID, &models.UpdateEventRequest{Title: &title})
		return err
	}},
	{"promote member", func(ctx context.Context, a *app, sess *session.Session, club, _ string) error {
		_, err := a.membership.UpdateMemberRole(ctx, sess, club, memberEmail, &models.UpdateRoleRequest{})
		return err
	}},
}

var callers = map[string]*session.Session{
	"anonymous": session.Anonymous(),
	"outsider":  signedIn(outsiderEmail),
	"member":    signedIn(memberEmail),
	"admin":     signedIn(adminEmail),
}

var callerNames = []string{"anonymous", "outsider", "member", "admin"}

// seedChess creates a club with one admin, one member and one event.
func seedChess(t require.TestingT, a *app, name string) string {
	_, err := a.seedClub(name, adminEmail, memberEmail)
	require.NoError(t, err)

	event, err := a.events.CreateEvent(context.Background(), signedIn(adminEmail), name,
		&models.CreateEventRequest{Title: "Spring Tournament", Date: time.Now().Add(24 * time.Hour)})
	require.NoError(t, err)
	return event.ID.Hex()
}

func clubNameGen() *rapid.Generator[string] {
	return rapid.StringMatching(`[A-Z][a-z]{2,12}( [A-Z][a-z]{2,8})?`)
}

func TestProperty_MissingClubIsNotFound(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := newApp()
		seedChess(t, a, "Chess")

		name := clubNameGen().Filter(func(s string) bool { return s != "Chess" }).Draw(t, "name")
		caller := rapid.SampledFrom(callerNames).Draw(t, "caller")
		op := rapid.SampledFrom(mutations).Draw(t, "op")

		_, err := a.clubs.GetClub(context.Background(), name)
		assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))

		err = op.run(context.Background(), a, callers[caller], name, "")
		assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err), "%s as %s", op.name, caller)
	})
}

func TestProperty_GateDecidesByRole(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := newApp()
		name := clubNameGen().Draw(t, "name")
		eventID := seedChess(t, a, name)

		caller := rapid.SampledFrom(callerNames).Draw(t, "caller")
		op := rapid.SampledFrom(mutations).Draw(t, "op")

		err := op.run(context.Background(), a, callers[caller], name, eventID)

		switch caller {
		case "anonymous":
			assert.ErrorIs(t, err, apperrors.ErrSignInRequired, op.name)
		case "outsider", "member":
			assert.ErrorIs(t, err, apperrors.ErrAdminRequired, op.name)
		case "admin":
			assert.NoError(t, err, op.name)
		}
	})
}

func TestProperty_InvalidPayloadIsCheckedAfterTheGate(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := newApp()
		eventID := seedChess(t, a, "Chess")

		caller := rapid.SampledFrom(callerNames).Draw(t, "caller")
		op := rapid.SampledFrom(invalidPayloads).Draw(t, "op")

		if rapid.Bool().Draw(t, "missingClub") {
			err := op.run(context.Background(), a, callers[caller], "Checkers", eventID)
			assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err), "%s as %s", op.name, caller)
			return
		}

		err := op.run(context.Background(), a, callers[caller], "Chess", eventID)

		switch caller {
		case "anonymous":
			assert.ErrorIs(t, err, apperrors.ErrSignInRequired, op.name)
		case "outsider", "member":
			assert.ErrorIs(t, err, apperrors.ErrAdminRequired, op.name)
		case "admin":
			assert.Equal(t, apperrors.KindBadRequest, apperrors.KindOf(err), op.name)
		}
		assert.Equal(t, 1, a.eventCount())
	})
}

func TestProperty_RejectedMutationLeavesStoreUnchanged(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := newApp()
		eventID := seedChess(t, a, "Chess")

		caller := rapid.SampledFrom([]string{"anonymous", "outsider", "member"}).Draw(t, "caller")
		op := rapid.SampledFrom(mutations).Draw(t, "op")

		before, err := a.clubs.GetClub(context.Background(), "Chess")
		require.NoError(t, err)

		require.Error(t, op.run(context.Background(), a, callers[caller], "Chess", eventID))

		after, err := a.clubs.GetClub(context.Background(), "Chess")
		require.NoError(t, err)
		assert.Equal(t, before.Description, after.Description)
		assert.Equal(t, before.ImageKey, after.ImageKey)
		assert.Equal(t, 1, a.eventCount())

		role, err := a.membership.GetMyRole(context.Background(), signedIn(memberEmail), "Chess")
		require.NoError(t, err)
		assert.Equal(t, models.RoleMember, role.Role)
	})
}

func TestProperty_RepeatedDeleteIsNotFound(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := newApp()
		name := clubNameGen().Draw(t, "name")
		eventID := seedChess(t, a, name)
		admin := signedIn(adminEmail)
		ctx := context.Background()

		if rapid.Bool().Draw(t, "deleteClub") {
			require.NoError(t, a.clubs.DeleteClub(ctx, admin, name))
			assert.ErrorIs(t, a.clubs.DeleteClub(ctx, admin, name), apperrors.ErrClubNotFound)
			return
		}

		require.NoError(t, a.events.DeleteEvent(ctx, admin, name, eventID))
		assert.ErrorIs(t, a.events.DeleteEvent(ctx, admin, name, eventID), apperrors.ErrEventNotFound)
	})
}

func TestProperty_RoleResolverNeverFailsForMissingClub(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := newApp()
		seedChess(t, a, "Chess")

		name := clubNameGen().Filter(func(s string) bool { return s != "Chess" }).Draw(t, "name")
		email := rapid.SampledFrom([]string{adminEmail, memberEmail, outsiderEmail, ""}).Draw(t, "email")

		isAdmin, err := a.clubs.gate.authorizer.IsAdmin(context.Background(), email, name)
		assert.NoError(t, err)
		assert.False(t, isAdmin)
	})
}

func TestScenario_ChessEvents(t *testing.T) {
	ctx := context.Background()
	a := newApp()
	founder := signedIn("founder@example.com")
	x := signedIn("x@example.com")

	club, err := a.clubs.CreateClub(ctx, founder, &models.CreateClubRequest{Name: "Chess"})
	require.NoError(t, err)

	req := &models.CreateEventRequest{Title: "Blitz Night", Date: time.Date(2025, 3, 1, 18, 0, 0, 0, time.UTC)}

	// Not a member yet
	_, err = a.events.CreateEvent(ctx, x, "Chess", req)
	assert.ErrorIs(t, err, apperrors.ErrAdminRequired)
	assert.Equal(t, 0, a.eventCount())

	_, err = a.membership.JoinClub(ctx, x, "Chess")
	require.NoError(t, err)
	_, err = a.membership.UpdateMemberRole(ctx, founder, "Chess", x.Email, &models.UpdateRoleRequest{Role: models.RoleAdmin})
	require.NoError(t, err)

	event, err := a.events.CreateEvent(ctx, x, "Chess", req)
	require.NoError(t, err)
	assert.Equal(t, club.ID, event.ClubID)

	list, err := a.events.ListEvents(ctx, "Chess")
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "Blitz Night", list.Items[0].Title)
	assert.Equal(t, club.ID, list.Items[0].ClubID)
}

func TestScenario_EventAuthorizationFollowsParentClub(t *testing.T) {
	ctx := context.Background()
	a := newApp()

	chessEvent := seedChess(t, a, "Chess")
	// The Go club admin is not an admin of Chess.
	_, err := a.seedClub("Go", "go-admin@example.com")
	require.NoError(t, err)
	goAdmin := signedIn("go-admin@example.com")

	title := "Hijacked"
	_, err = a.events.UpdateEvent(ctx, goAdmin, "Go", chessEvent, &models.UpdateEventRequest{Title: &title})
	assert.ErrorIs(t, err, apperrors.ErrEventNotFound)

	err = a.events.DeleteEvent(ctx, goAdmin, "Go", chessEvent)
	assert.ErrorIs(t, err, apperrors.ErrEventNotFound)

	_, err = a.events.UpdateEvent(ctx, goAdmin, "Chess", chessEvent, &models.UpdateEventRequest{Title: &title})
	assert.ErrorIs(t, err, apperrors.ErrAdminRequired)

	event, err := a.events.GetEvent(ctx, "Chess", chessEvent)
	require.NoError(t, err)
	assert.Equal(t, "Spring Tournament", event.Title)
}

func TestScenario_DeleteClubCascades(t *testing.T) {
	ctx := context.Background()
	a := newApp()
	seedChess(t, a, "Chess")
	admin := signedIn(adminEmail)

	require.NoError(t, a.clubs.DeleteClub(ctx, admin, "Chess"))

	assert.Equal(t, 0, a.eventCount())
	clubs, err := a.membership.ListMyClubs(ctx, signedIn(memberEmail))
	require.NoError(t, err)
	assert.Empty(t, clubs)

	// A new club with the same name starts without the old memberships.
	_, err = a.seedClub("Chess", "new-admin@example.com")
	require.NoError(t, err)
	_, err = a.membership.GetMyRole(ctx, signedIn(memberEmail), "Chess")
	assert.ErrorIs(t, err, apperrors.ErrNotClubMember)
}
