package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"clubhub/pkg/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestManager() (*Manager, *auth.JWTManager) {
	tokens := auth.NewJWTManager("token-secret", time.Hour)
	return NewManager(newTestStore(newMemoryCache()), tokens, zap.NewNop()), tokens
}

func TestManager_LoadAnonymous(t *testing.T) {
	m, _ := newTestManager()

	sess := m.Load(httptest.NewRequest(http.MethodGet, "/", nil))

	assert.False(t, sess.SignedIn())
}

func TestManager_SignInAndLoad(t *testing.T) {
	m, _ := newTestManager()

	r := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
	w := httptest.NewRecorder()
	signed, err := m.SignIn(w, r, "ada@example.com")
	require.NoError(t, err)
	assert.True(t, signed.SignedIn())
	require.NotEmpty(t, signed.ID)

	loaded := m.Load(roundTrip(w))

	assert.True(t, loaded.SignedIn())
	assert.Equal(t, "ada@example.com", loaded.Email)
	assert.Equal(t, signed.ID, loaded.ID)
}

func TestManager_SignInRotatesID(t *testing.T) {
	m, _ := newTestManager()

	w1 := httptest.NewRecorder()
	first, err := m.SignIn(w1, httptest.NewRequest(http.MethodPost, "/", nil), "ada@example.com")
	require.NoError(t, err)

	w2 := httptest.NewRecorder()
	second, err := m.SignIn(w2, roundTrip(w1), "ada@example.com")
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestManager_SignOut(t *testing.T) {
	m, _ := newTestManager()

	w := httptest.NewRecorder()
	_, err := m.SignIn(w, httptest.NewRequest(http.MethodPost, "/", nil), "ada@example.com")
	require.NoError(t, err)

	r := roundTrip(w)
	require.NoError(t, m.SignOut(httptest.NewRecorder(), r))

	assert.False(t, m.Load(roundTrip(w)).SignedIn())
}

func TestManager_SignOutWithoutSession(t *testing.T) {
	m, _ := newTestManager()

	err := m.SignOut(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/", nil))

	assert.NoError(t, err)
}

func TestManager_BearerToken(t *testing.T) {
	m, tokens := newTestManager()
	token, err := tokens.GenerateToken("507f1f77bcf86cd799439011", "ada@example.com")
	require.NoError(t, err)

	tests := []struct {
		name     string
		header   string
		signedIn bool
	}{
		{"valid bearer token", "Bearer " + token, true},
		{"invalid token", "Bearer not-a-token", false},
		{"wrong scheme falls back to cookie", "Basic " + token, false},
		{"missing token", "Bearer ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.Header.Set("Authorization", tt.header)

			sess := m.Load(r)

			assert.Equal(t, tt.signedIn, sess.SignedIn())
			if tt.signedIn {
				assert.Equal(t, "ada@example.com", sess.Email)
			}
		})
	}
}

func TestManager_TamperedCookieIsAnonymous(t *testing.T) {
	m, _ := newTestManager()

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: CookieName, Value: "forged"})

	assert.False(t, m.Load(r).SignedIn())
}

func TestContext(t *testing.T) {
	ctx := context.Background()
	assert.False(t, FromContext(ctx).SignedIn())

	sess := &Session{LoggedIn: true, Email: "ada@example.com"}
	ctx = NewContext(ctx, sess)
	assert.Same(t, sess, FromContext(ctx))
}

func TestSession_SignedIn(t *testing.T) {
	var nilSession *Session
	assert.False(t, nilSession.SignedIn())
	assert.False(t, (&Session{LoggedIn: true}).SignedIn())
	assert.False(t, (&Session{Email: "ada@example.com"}).SignedIn())
	assert.True(t, (&Session{LoggedIn: true, Email: "ada@example.com"}).SignedIn())
}
