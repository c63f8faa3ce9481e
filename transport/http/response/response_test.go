package response_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"risecheckout/shared/failure"
	"risecheckout/transport/http/response"

	"github.com/stretchr/testify/assert"
)

func TestWithError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{
			name:     "failure",
			err:      failure.NotFound("order not found"),
			wantCode: http.StatusNotFound,
			wantBody: `{"error":"order not found"}`,
		},
		{
			name:     "wrapped failure",
			err:      fmt.Errorf("list: %w", failure.InvalidDateParam),
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"invalid date parameter, expected RFC 3339 or YYYY-MM-DD"}`,
		},
		{
			name:     "internal details are hidden",
			err:      errors.New("pq: password authentication failed"),
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			response.WithError(rec, tt.err)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestWithJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithJSON(rec, http.StatusCreated, map[string]int{"rows": 3})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"data":{"rows":3}}`, rec.Body.String())
}

func TestWithRequestLimitExceeded(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithRequestLimitExceeded(rec)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "Too many requests")
}
