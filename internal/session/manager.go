package session

import (
	"errors"
	"net/http"
	"strings"

	"clubhub/pkg/auth"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

// CookieName is the name of the session cookie.
const CookieName = "clubhub-session"

const (
	loggedInKey = "isLoggedIn"
	emailKey    = "email"
)

// Manager resolves sessions from requests and signs users in and out.
type Manager struct {
	store  sessions.Store
	tokens auth.TokenManager
	log    *zap.Logger
}

// NewManager creates a new Manager.
func NewManager(store sessions.Store, tokens auth.TokenManager, log *zap.Logger) *Manager {
	return &Manager{
		store:  store,
		tokens: tokens,
		log:    log,
	}
}

// Load returns the caller's session. A bearer token takes precedence over the
// session cookie. Invalid credentials of either kind yield an anonymous session.
func (m *Manager) Load(r *http.Request) *Session {
	if token, ok := bearerToken(r); ok {
		claims, err := m.tokens.ValidateToken(token)
		if err != nil || claims.Email == "" {
			m.log.Debug("rejected bearer token", zap.Error(err))
			return Anonymous()
		}
		return &Session{LoggedIn: true, Email: claims.Email}
	}

	sess, err := m.store.Get(r, CookieName)
	if err != nil {
		var scErr securecookie.Error
		if errors.As(err, &scErr) && scErr.IsDecode() {
			m.log.Debug("ignored undecodable session cookie", zap.Error(err))
		} else {
			m.log.Warn("failed to load session", zap.Error(err))
		}
		return Anonymous()
	}

	loggedIn, _ := sess.Values[loggedInKey].(bool)
	email, _ := sess.Values[emailKey].(string)
	return &Session{ID: sess.ID, LoggedIn: loggedIn, Email: email}
}

// SignIn marks the request's session as signed in for email and writes the cookie.
// The session id is rotated on every sign-in.
func (m *Manager) SignIn(w http.ResponseWriter, r *http.Request, email string) (*Session, error) {
	sess, _ := m.store.Get(r, CookieName)

	sess.ID = ""
	sess.Values[loggedInKey] = true
	sess.Values[emailKey] = email

	if err := sess.Save(r, w); err != nil {
		return nil, err
	}
	return &Session{ID: sess.ID, LoggedIn: true, Email: email}, nil
}

// SignOut deletes the request's session and expires the cookie.
func (m *Manager) SignOut(w http.ResponseWriter, r *http.Request) error {
	sess, _ := m.store.Get(r, CookieName)

	sess.Values = make(map[interface{}]interface{})
	sess.Options.MaxAge = -1
	return sess.Save(r, w)
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
