package middleware

import (
	"net/http"

	apperrors "clubhub/internal/errors"
	"clubhub/internal/session"
	"clubhub/pkg/response"

	"github.com/gin-gonic/gin"
)

// SessionLoader resolves the caller's session and stores it on the request context.
type SessionLoader interface {
	Load(r *http.Request) *session.Session
}

// Session returns a middleware that loads the session for every request.
// It never rejects a request; gated operations decide what a session may do.
func Session(loader SessionLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := loader.Load(c.Request)
		c.Request = c.Request.WithContext(session.NewContext(c.Request.Context(), sess))
		c.Next()
	}
}

// RequireSignIn rejects requests without a signed-in session.
func RequireSignIn() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !GetSession(c).SignedIn() {
			response.AbortWithError(c, apperrors.ErrSignInRequired)
			return
		}
		c.Next()
	}
}
