// Package response provides standard API response helpers.
package response

import (
	"errors"
	"net/http"

	apperrors "clubhub/internal/errors"

	"github.com/gin-gonic/gin"
)

// Response statuses.
const (
	StatusSuccess = "success"
	StatusFail    = "fail"
)

// Generic text returned for server errors; details only go to the log.
const (
	serverErrorMessage     = "An error occurred while processing your request"
	serverErrorDescription = "Server Error"
)

// Response is the standard API response format. Failure responses always
// carry a description.
type Response struct {
	Status      string      `json:"status" example:"success"`
	Message     string      `json:"message,omitempty" example:"Club found successfully"`
	Description string      `json:"description,omitempty"`
	Data        interface{} `json:"data,omitempty"`
}

// Success sends a 200 response with data.
func Success(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Status:  StatusSuccess,
		Message: message,
		Data:    data,
	})
}

// Created sends a 201 response with data.
func Created(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Status:  StatusSuccess,
		Message: message,
		Data:    data,
	})
}

// Fail sends an error response whose status is chosen by the error's kind.
// The error is attached to the gin context so the request logger records it.
func Fail(c *gin.Context, err error) {
	_ = c.Error(err)

	kind := apperrors.KindOf(err)
	if kind == apperrors.KindServerError {
		c.JSON(http.StatusInternalServerError, Response{
			Status:      StatusFail,
			Message:     serverErrorMessage,
			Description: serverErrorDescription,
		})
		return
	}

	resp := Response{Status: StatusFail, Message: err.Error(), Description: kind.Description()}
	var appErr *apperrors.Error
	if errors.As(err, &appErr) {
		resp.Message = appErr.Kind.String() + ": " + appErr.Message
		resp.Description = appErr.Details()
	}
	c.JSON(kind.HTTPStatus(), resp)
}

// AbortWithError sends an error response and stops the handler chain.
func AbortWithError(c *gin.Context, err error) {
	Fail(c, err)
	c.Abort()
}
