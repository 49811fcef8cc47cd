package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/owlconnect/owlconnect/internal/pkg/apperrors"
)

func handleError(err error) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	HandleAPIError(c, err)
	return w
}

func TestHandleAPIErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"department in use", apperrors.ErrDepartmentInUse, http.StatusBadRequest},
		{"validation failed", apperrors.ErrValidationFailed, http.StatusBadRequest},
		{"bad request helper", apperrors.NewBadRequestError("identifier must be positive"), http.StatusBadRequest},
		{"invalid credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized},
		{"expired token", apperrors.ErrTokenExpired, http.StatusUnauthorized},
		{"permission denied", apperrors.ErrPermissionDenied, http.StatusForbidden},
		{"attendee not found", apperrors.ErrAttendeeNotFound, http.StatusNotFound},
		{"department not found", apperrors.ErrDepartmentNotFound, http.StatusNotFound},
		{"duplicate department", apperrors.ErrDepartmentAlreadyExists, http.StatusConflict},
		{"unknown error", fmt.Errorf("connection refused"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := handleError(tt.err)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

// CustomError carries a contextual message but still unwraps to its sentinel,
// so the mapping keys off the sentinel while the message reaches the client.
func TestHandleAPIErrorUnwrapsCustomError(t *testing.T) {
	err := apperrors.NewCustomError(apperrors.ErrAttendeeNotFound, "attendee 42 not found")

	w := handleError(err)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "attendee 42 not found")
}

func TestHandleAPIErrorInUseMessageSurfaced(t *testing.T) {
	err := fmt.Errorf("%w: 3 attendee(s) still assigned", apperrors.ErrDepartmentInUse)

	w := handleError(err)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "3 attendee(s) still assigned")
}

func TestHandleAPIErrorHidesInternalDetail(t *testing.T) {
	w := handleError(fmt.Errorf("dial tcp 10.0.0.4:5432: connect: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "10.0.0.4")
	assert.Contains(t, w.Body.String(), "Internal server error")
}
