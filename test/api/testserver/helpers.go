//go:build api

package testserver

import (
	"net/http"
	"testing"

	"clubhub/internal/models"
	"clubhub/internal/session"
	"clubhub/test/fixtures"
	"clubhub/test/testutil"

	"github.com/stretchr/testify/require"
)

// DefaultPassword is used for every user created through the helpers.
const DefaultPassword = "password123"

// AuthHelper provides authentication helpers for API tests.
type AuthHelper struct {
	server *TestServer
}

// NewAuthHelper creates a new auth helper.
func NewAuthHelper(server *TestServer) *AuthHelper {
	return &AuthHelper{server: server}
}

// RegisterUser registers a new user through the API and returns the user data.
func (ah *AuthHelper) RegisterUser(t *testing.T, firstName, lastName, email string) map[string]interface{} {
	t.Helper()

	req := models.RegisterRequest{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Password:  DefaultPassword,
	}

	w := testutil.MakeRequest(t, ah.server.Router, http.MethodPost, "/api/v1/auth/register", req)
	require.Equal(t, http.StatusCreated, w.Code, "register should return 201, got: %s", w.Body.String())

	resp := testutil.ParseAPIResponse(t, w)
	require.True(t, resp.Success(), "register response should be successful")
	return resp.Data
}

// SignIn logs a browser in with the cookie session.
func (ah *AuthHelper) SignIn(t *testing.T, browser *testutil.Browser, email string) map[string]interface{} {
	t.Helper()

	req := models.LoginRequest{Email: email, Password: DefaultPassword}

	w := browser.Do(t, http.MethodPost, "/api/v1/auth/login", req)
	require.Equal(t, http.StatusOK, w.Code, "login should return 200, got: %s", w.Body.String())

	_, ok := browser.Cookie(session.CookieName)
	require.True(t, ok, "login should set the session cookie")

	return testutil.ParseAPIResponse(t, w).Data
}

// NewSignedInBrowser registers a user and returns a browser signed in as them.
func (ah *AuthHelper) NewSignedInBrowser(t *testing.T, email string) *testutil.Browser {
	t.Helper()

	ah.RegisterUser(t, "Test", "User", email)
	browser := testutil.NewBrowser(ah.server.Router)
	ah.SignIn(t, browser, email)
	return browser
}

// AccessToken registers a user and returns a bearer token for them.
func (ah *AuthHelper) AccessToken(t *testing.T, email string) string {
	t.Helper()

	ah.RegisterUser(t, "Token", "User", email)

	req := models.LoginRequest{Email: email, Password: DefaultPassword}
	w := testutil.MakeRequest(t, ah.server.Router, http.MethodPost, "/api/v1/auth/login", req)
	require.Equal(t, http.StatusOK, w.Code, "login should return 200, got: %s", w.Body.String())

	token, ok := testutil.ParseAPIResponse(t, w).Data["accessToken"].(string)
	require.True(t, ok, "accessToken should be a string")
	return token
}

// ClubHelper provides club-related helpers for API tests.
type ClubHelper struct {
	server *TestServer
}

// NewClubHelper creates a new club helper.
func NewClubHelper(server *TestServer) *ClubHelper {
	return &ClubHelper{server: server}
}

// CreateClub creates a club through the API as the browser's user.
func (ch *ClubHelper) CreateClub(t *testing.T, browser *testutil.Browser, name string) map[string]interface{} {
	t.Helper()

	req := models.CreateClubRequest{Name: name, Description: name + " club"}

	w := browser.Do(t, http.MethodPost, "/api/v1/clubs", req)
	require.Equal(t, http.StatusCreated, w.Code, "create club should return 201, got: %s", w.Body.String())

	return testutil.ParseAPIResponse(t, w).Data
}

// SeedClub inserts a club directly with admin as its only admin.
func (ch *ClubHelper) SeedClub(t *testing.T, name, admin string) *models.Club {
	t.Helper()
	ctx, cancel := testutil.TestContext()
	defer cancel()

	club := fixtures.NewClub().WithName(name).CreatedBy(admin).BuildPtr()
	require.NoError(t, ch.server.ClubRepo.Create(ctx, club), "failed to seed club")

	ch.SeedRole(t, club, admin, models.RoleAdmin)
	return club
}

// SeedRole inserts a membership directly.
func (ch *ClubHelper) SeedRole(t *testing.T, club *models.Club, email, role string) {
	t.Helper()
	ctx, cancel := testutil.TestContext()
	defer cancel()

	membership := fixtures.NewClubRole().ForClub(club.ID).WithEmail(email).BuildPtr()
	membership.Role = role
	require.NoError(t, ch.server.RoleRepo.Create(ctx, membership), "failed to seed club role")
}

// SeedEvent inserts an event for club directly.
func (ch *ClubHelper) SeedEvent(t *testing.T, club *models.Club, title string) *models.Event {
	t.Helper()
	ctx, cancel := testutil.TestContext()
	defer cancel()

	event := fixtures.NewEvent().ForClub(club.ID).WithTitle(title).BuildPtr()
	require.NoError(t, ch.server.EventRepo.Create(ctx, event), "failed to seed event")
	return event
}

// EventCount returns how many events the club has in the store.
func (ch *ClubHelper) EventCount(t *testing.T, club *models.Club) int {
	t.Helper()
	ctx, cancel := testutil.TestContext()
	defer cancel()

	events, err := ch.server.EventRepo.FindByClubID(ctx, club.ID)
	require.NoError(t, err)
	return len(events)
}
