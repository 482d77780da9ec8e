package errors

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIErrorError(t *testing.T) {
	err := New(http.StatusNotFound, "NOT_FOUND", "Resource not found")
	assert.Equal(t, "Resource not found", err.Error())
}

func TestAPIErrorRender(t *testing.T) {
	apiErr := NewWithDetails(http.StatusBadRequest, "INVALID_REQUEST", "Invalid request format", "bad field")

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	require.NoError(t, render.Render(w, r, apiErr))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_REQUEST")
	assert.Contains(t, w.Body.String(), "bad field")
}

func TestNotFoundError(t *testing.T) {
	err := NotFoundError("field_scores.csv")
	assert.Equal(t, http.StatusNotFound, err.StatusCode)
	assert.Contains(t, err.Message, "field_scores.csv")
}

func TestPredefinedErrors(t *testing.T) {
	assert.Equal(t, http.StatusTooManyRequests, ErrRateLimitExceeded.StatusCode)
	assert.Equal(t, http.StatusInternalServerError, ErrInternalServer.StatusCode)
	assert.Equal(t, "REPORT_NOT_FOUND", ErrReportNotFound.ErrorCode)
}
