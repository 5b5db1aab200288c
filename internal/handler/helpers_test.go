package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"clubhub/internal/session"
	"clubhub/internal/validator"
	"clubhub/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
	validator.RegisterCustomValidators()
}

// withSession is a helper middleware to put a session on the request context
func withSession(sess *session.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		if sess != nil {
			c.Request = c.Request.WithContext(session.NewContext(c.Request.Context(), sess))
		}
		c.Next()
	}
}

func signedIn(email string) *session.Session {
	return &session.Session{ID: "sid", LoggedIn: true, Email: email}
}

func performRequest(r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf []byte
	switch v := body.(type) {
	case nil:
	case string:
		buf = []byte(v)
	default:
		buf, _ = json.Marshal(v)
	}

	req := httptest.NewRequest(method, path, bytes.NewBuffer(buf))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func assertSuccess(t *testing.T, w *httptest.ResponseRecorder, message string) map[string]interface{} {
	t.Helper()
	resp := decodeResponse(t, w)
	require.Equal(t, response.StatusSuccess, resp["status"])
	require.Equal(t, message, resp["message"])
	return resp
}
