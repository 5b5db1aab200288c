package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"clubhub/internal/session"
	"clubhub/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLoader struct {
	sess *session.Session
}

func (s stubLoader) Load(*http.Request) *session.Session {
	return s.sess
}

func TestSession_StoresSessionOnContext(t *testing.T) {
	signedIn := &session.Session{LoggedIn: true, Email: "ada@example.com"}

	router := gin.New()
	router.Use(Session(stubLoader{sess: signedIn}))
	var got *session.Session
	router.GET("/test", func(c *gin.Context) {
		got = GetSession(c)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Same(t, signedIn, got)
}

func TestRequireSignIn(t *testing.T) {
	tests := []struct {
		name           string
		sess           *session.Session
		expectedStatus int
		handlerCalled  bool
	}{
		{
			name:           "signed-in session passes",
			sess:           &session.Session{LoggedIn: true, Email: "ada@example.com"},
			expectedStatus: http.StatusOK,
			handlerCalled:  true,
		},
		{
			name:           "anonymous session is rejected",
			sess:           session.Anonymous(),
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "logged-in flag without email is rejected",
			sess:           &session.Session{LoggedIn: true},
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(Session(stubLoader{sess: tt.sess}))
			called := false
			router.GET("/test", RequireSignIn(), func(c *gin.Context) {
				called = true
				c.Status(http.StatusOK)
			})

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.handlerCalled, called)
			if !tt.handlerCalled {
				var resp response.Response
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, "Unauthorized: must sign in", resp.Message)
			}
		})
	}
}
