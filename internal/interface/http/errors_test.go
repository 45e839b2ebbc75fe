package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/inotebook/internal/application"
	"github.com/oksasatya/inotebook/pkg/validation"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestWriteError(t *testing.T) {
	violations := validation.Violations{{Field: "title", Tag: "title", Message: "title must be at least 3 characters long"}}

	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"validation", fmt.Errorf("%w: %w", application.ErrValidation, violations), http.StatusBadRequest, msgValidationFailed},
		{"duplicate email", application.ErrDuplicateEmail, http.StatusBadRequest, msgDuplicateEmail},
		{"invalid credentials", application.ErrInvalidCredentials, http.StatusUnauthorized, msgInvalidCredentials},
		{"unauthenticated", application.ErrUnauthenticated, http.StatusUnauthorized, msgUnauthenticated},
		{"forbidden", application.ErrForbidden, http.StatusUnauthorized, msgNotAllowed},
		{"not found", application.ErrNotFound, http.StatusNotFound, "Note not found"},
		{"internal", application.ErrInternal, http.StatusInternalServerError, msgInternal},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, msgInternal},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			writeError(c, tc.err, "Note not found")

			assert.Equal(t, tc.status, w.Code)
			var body map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tc.message, body["message"])
			assert.NotContains(t, w.Body.String(), "boom")
		})
	}
}

func TestWriteError_GenericNotFound(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	writeError(c, application.ErrNotFound, "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, msgNotFound, body["message"])
}

func TestWriteError_ValidationDetails(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	violations := validation.Violations{{Field: "title", Tag: "title", Message: "title must be at least 3 characters long"}}

	writeError(c, fmt.Errorf("%w: %w", application.ErrValidation, violations), "")

	var body struct {
		Error []validation.Violation `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, []validation.Violation(violations), body.Error)
}

func TestBindJSON(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"title": 5}`))
	c.Request.Header.Set("Content-Type", "application/json")

	var req application.NoteInput
	assert.False(t, bindJSON(c, &req))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), msgInvalidPayload)
}

type stubPinger struct{ err error }

func (p stubPinger) Ping(_ context.Context) error { return p.err }
