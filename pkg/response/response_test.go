package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "clubhub/internal/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupTestContext() (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	return c, w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestSuccess(t *testing.T) {
	c, w := setupTestContext()

	Success(c, "Club found successfully", map[string]string{"name": "Chess"})

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	assert.Equal(t, StatusSuccess, resp.Status)
	assert.Equal(t, "Club found successfully", resp.Message)
	assert.NotNil(t, resp.Data)
	assert.Empty(t, resp.Description)
}

func TestCreated(t *testing.T) {
	c, w := setupTestContext()

	Created(c, "Event created successfully", map[string]string{"id": "123"})

	assert.Equal(t, http.StatusCreated, w.Code)
	resp := decode(t, w)
	assert.Equal(t, StatusSuccess, resp.Status)
	assert.Equal(t, "Event created successfully", resp.Message)
}

func TestFail(t *testing.T) {
	tests := []struct {
		name                string
		err                 error
		expectedStatus      int
		expectedMessage     string
		expectedDescription string
	}{
		{
			name:                "not found",
			err:                 apperrors.ErrClubNotFound,
			expectedStatus:      http.StatusNotFound,
			expectedMessage:     "NotFound: club not found",
			expectedDescription: "Club does not exist",
		},
		{
			name:                "unauthorized with description",
			err:                 apperrors.ErrAdminRequired.Describe("not an admin of Chess"),
			expectedStatus:      http.StatusForbidden,
			expectedMessage:     "Unauthorized: only admins may perform this action",
			expectedDescription: "not an admin of Chess",
		},
		{
			name:                "unauthenticated",
			err:                 apperrors.ErrInvalidCredentials,
			expectedStatus:      http.StatusUnauthorized,
			expectedMessage:     "Unauthenticated: invalid email or password",
			expectedDescription: "Email or password is incorrect",
		},
		{
			name:                "bad request",
			err:                 apperrors.BadRequest(errors.New("title is required")),
			expectedStatus:      http.StatusBadRequest,
			expectedMessage:     "BadRequest: invalid request",
			expectedDescription: "title is required",
		},
		{
			name:                "conflict",
			err:                 apperrors.ErrClubNameTaken,
			expectedStatus:      http.StatusConflict,
			expectedMessage:     "Conflict: club name is already taken",
			expectedDescription: "Club names must be unique",
		},
		{
			name:                "error without description falls back to kind",
			err:                 apperrors.New(apperrors.KindTooManyRequests, "slow down"),
			expectedStatus:      http.StatusTooManyRequests,
			expectedMessage:     "TooManyRequests: slow down",
			expectedDescription: apperrors.KindTooManyRequests.Description(),
		},
		{
			name:                "unclassified error hides details",
			err:                 errors.New("mongo: connection reset"),
			expectedStatus:      http.StatusInternalServerError,
			expectedMessage:     serverErrorMessage,
			expectedDescription: serverErrorDescription,
		},
		{
			name:                "unacknowledged write hides details",
			err:                 apperrors.ErrWriteNotAcknowledged,
			expectedStatus:      http.StatusInternalServerError,
			expectedMessage:     serverErrorMessage,
			expectedDescription: serverErrorDescription,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := setupTestContext()

			Fail(c, tt.err)

			assert.Equal(t, tt.expectedStatus, w.Code)
			resp := decode(t, w)
			assert.Equal(t, StatusFail, resp.Status)
			assert.Equal(t, tt.expectedMessage, resp.Message)
			assert.Equal(t, tt.expectedDescription, resp.Description)
			assert.Nil(t, resp.Data)
			assert.Len(t, c.Errors, 1)
		})
	}
}

func TestAbortWithError(t *testing.T) {
	router := gin.New()
	called := false
	router.GET("/test", func(c *gin.Context) {
		AbortWithError(c, apperrors.ErrSignInRequired)
	}, func(c *gin.Context) {
		called = true
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.False(t, called)
}

func TestFail_AlwaysDescribesFailures(t *testing.T) {
	sentinels := []error{
		apperrors.ErrSignInRequired,
		apperrors.ErrAdminRequired,
		apperrors.ErrInvalidCredentials,
		apperrors.ErrInvalidToken,
		apperrors.ErrRateLimited,
		apperrors.ErrUserNotFound,
		apperrors.ErrUserAlreadyExists,
		apperrors.ErrClubNotFound,
		apperrors.ErrClubNameTaken,
		apperrors.ErrEventNotFound,
		apperrors.ErrNotClubMember,
		apperrors.ErrMemberNotFound,
		apperrors.ErrAlreadyMember,
		apperrors.ErrLastAdmin,
		apperrors.ErrInvalidRole,
		apperrors.ErrWriteNotAcknowledged,
	}

	for _, err := range sentinels {
		t.Run(err.Error(), func(t *testing.T) {
			c, w := setupTestContext()

			Fail(c, err)

			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, StatusFail, body["status"])
			assert.NotEmpty(t, body["message"])
			assert.NotEmpty(t, body["description"])
		})
	}
}
