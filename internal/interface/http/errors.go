package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/inotebook/internal/application"
	"github.com/oksasatya/inotebook/pkg/response"
	"github.com/oksasatya/inotebook/pkg/validation"
)

const (
	msgInvalidPayload     = "invalid payload"
	msgValidationFailed   = "validation failed"
	msgDuplicateEmail     = "Sorry a user with this email already exists"
	msgInvalidCredentials = "Please try to login with correct credentials"
	msgUnauthenticated    = "Please authenticate using a valid token"
	msgNotAllowed         = "Not allowed"
	msgInternal           = "Internal Server Error"
	msgNotFound           = "Not Found"
)

// writeError maps a service error onto the HTTP contract. notFound is the
// message used for application.ErrNotFound on this route; empty means generic.
func writeError(c *gin.Context, err error, notFound string) {
	if notFound == "" {
		notFound = msgNotFound
	}
	switch {
	case errors.Is(err, application.ErrValidation):
		response.Error[any](c, http.StatusBadRequest, msgValidationFailed, validation.ToDetails(err))
	case errors.Is(err, application.ErrDuplicateEmail):
		response.Error[any](c, http.StatusBadRequest, msgDuplicateEmail, nil)
	case errors.Is(err, application.ErrInvalidCredentials):
		response.Error[any](c, http.StatusUnauthorized, msgInvalidCredentials, nil)
	case errors.Is(err, application.ErrUnauthenticated):
		response.Error[any](c, http.StatusUnauthorized, msgUnauthenticated, nil)
	case errors.Is(err, application.ErrForbidden):
		// existing clients expect 401 here
		response.Error[any](c, http.StatusUnauthorized, msgNotAllowed, nil)
	case errors.Is(err, application.ErrNotFound):
		response.Error[any](c, http.StatusNotFound, notFound, nil)
	default:
		response.Error[any](c, http.StatusInternalServerError, msgInternal, nil)
	}
}

// bindJSON decodes the body and writes a 400 on failure.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		response.Error[any](c, http.StatusBadRequest, msgInvalidPayload, validation.ToDetails(err))
		return false
	}
	return true
}
