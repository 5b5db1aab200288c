// Package handler contains HTTP handlers for the API.
package handler

import (
	"net/http"

	apperrors "clubhub/internal/errors"
	"clubhub/internal/middleware"
	"clubhub/internal/models"
	"clubhub/internal/service"
	"clubhub/internal/session"
	"clubhub/pkg/response"

	"github.com/gin-gonic/gin"
)

// SessionWriter starts and ends cookie sessions.
type SessionWriter interface {
	SignIn(w http.ResponseWriter, r *http.Request, email string) (*session.Session, error)
	SignOut(w http.ResponseWriter, r *http.Request) error
}

// AuthHandler handles HTTP requests for authentication operations.
type AuthHandler struct {
	service  service.AuthServicer
	sessions SessionWriter
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(service service.AuthServicer, sessions SessionWriter) *AuthHandler {
	return &AuthHandler{service: service, sessions: sessions}
}

// Register godoc
// @Summary      Register a new user
// @Description  Create a new user account with name, email and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      models.RegisterRequest  true  "User registration details"
// @Success      201      {object}  response.Response{data=models.User}
// @Failure      400      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Failure      429      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, apperrors.BadRequest(err))
		return
	}

	user, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.Created(c, "User registered successfully", user)
}

// Login godoc
// @Summary      User login
// @Description  Authenticate the user, start a cookie session and return a bearer access token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      models.LoginRequest  true  "User credentials"
// @Success      200      {object}  response.Response{data=models.AuthResponse}
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Failure      429      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, apperrors.BadRequest(err))
		return
	}

	result, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		response.Fail(c, err)
		return
	}

	if _, err := h.sessions.SignIn(c.Writer, c.Request, result.User.Email); err != nil {
		response.Fail(c, err)
		return
	}

	response.Success(c, "Logged in successfully", result)
}

// Logout godoc
// @Summary      User logout
// @Description  End the cookie session. Succeeds even without a session.
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.sessions.SignOut(c.Writer, c.Request); err != nil {
		response.Fail(c, err)
		return
	}

	response.Success(c, "Logged out successfully", nil)
}

// Status godoc
// @Summary      Session status
// @Description  Report whether the caller is signed in
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response{data=models.SessionStatusResponse}
// @Router       /auth/status [get]
func (h *AuthHandler) Status(c *gin.Context) {
	sess := middleware.GetSession(c)

	status := models.SessionStatusResponse{LoggedInStatus: sess.SignedIn()}
	if status.LoggedInStatus {
		status.Email = sess.Email
	}

	response.Success(c, "Session status", status)
}
