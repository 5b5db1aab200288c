package session

import (
	"context"
	"encoding/base32"
	"fmt"
	"net/http"
	"strings"
	"time"

	"clubhub/internal/cache"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
)

// RedisStore is a sessions.Store that keeps session values in the cache
// and only a signed session id in the cookie.
type RedisStore struct {
	Codecs  []securecookie.Codec
	Options *sessions.Options
	cache   cache.Cache
}

// NewRedisStore creates a store. keyPairs are securecookie hash/block key pairs.
func NewRedisStore(c cache.Cache, ttl time.Duration, secure bool, keyPairs ...[]byte) *RedisStore {
	return &RedisStore{
		Codecs: securecookie.CodecsFromPairs(keyPairs...),
		Options: &sessions.Options{
			Path:     "/",
			MaxAge:   int(ttl.Seconds()),
			HttpOnly: true,
			Secure:   secure,
			SameSite: http.SameSiteLaxMode,
		},
		cache: c,
	}
}

// Get returns the session for this request, cached in the request registry.
func (s *RedisStore) Get(r *http.Request, name string) (*sessions.Session, error) {
	return sessions.GetRegistry(r).Get(s, name)
}

// New returns a session for name, loading its values when the request
// carries a valid session cookie.
func (s *RedisStore) New(r *http.Request, name string) (*sessions.Session, error) {
	sess := sessions.NewSession(s, name)
	opts := *s.Options
	sess.Options = &opts
	sess.IsNew = true

	c, err := r.Cookie(name)
	if err != nil {
		return sess, nil
	}

	if err := securecookie.DecodeMulti(name, c.Value, &sess.ID, s.Codecs...); err != nil {
		sess.ID = ""
		return sess, err
	}

	found, err := s.load(r.Context(), sess)
	if err != nil {
		return sess, err
	}
	sess.IsNew = !found
	if !found {
		sess.ID = ""
	}
	return sess, nil
}

// Save persists the session values and writes the signed id cookie.
// A negative MaxAge deletes the session.
func (s *RedisStore) Save(r *http.Request, w http.ResponseWriter, sess *sessions.Session) error {
	if sess.Options.MaxAge < 0 {
		if sess.ID != "" {
			if err := s.cache.Delete(r.Context(), cache.SessionKey(sess.ID)); err != nil {
				return err
			}
		}
		http.SetCookie(w, sessions.NewCookie(sess.Name(), "", sess.Options))
		return nil
	}

	if sess.ID == "" {
		sess.ID = newSessionID()
	}

	if err := s.save(r.Context(), sess); err != nil {
		return err
	}

	encoded, err := securecookie.EncodeMulti(sess.Name(), sess.ID, s.Codecs...)
	if err != nil {
		return err
	}
	http.SetCookie(w, sessions.NewCookie(sess.Name(), encoded, sess.Options))
	return nil
}

func (s *RedisStore) save(ctx context.Context, sess *sessions.Session) error {
	values := make(map[string]interface{}, len(sess.Values))
	for k, v := range sess.Values {
		key, ok := k.(string)
		if !ok {
			return fmt.Errorf("session value key %v is not a string", k)
		}
		values[key] = v
	}

	ttl := time.Duration(sess.Options.MaxAge) * time.Second
	return s.cache.Set(ctx, cache.SessionKey(sess.ID), values, ttl)
}

func (s *RedisStore) load(ctx context.Context, sess *sessions.Session) (bool, error) {
	var values map[string]interface{}
	found, err := s.cache.Get(ctx, cache.SessionKey(sess.ID), &values)
	if err != nil || !found {
		return false, err
	}

	for k, v := range values {
		sess.Values[k] = v
	}
	return true, nil
}

// newSessionID returns 32 random bytes encoded as unpadded base32.
func newSessionID() string {
	return strings.TrimRight(base32.StdEncoding.EncodeToString(securecookie.GenerateRandomKey(32)), "=")
}

// Ensure RedisStore implements sessions.Store
var _ sessions.Store = (*RedisStore)(nil)
