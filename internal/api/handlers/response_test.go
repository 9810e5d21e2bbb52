package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/curbside-pickup/internal/domain"
)

func TestDecodeJSON(t *testing.T) {
	var v struct {
		Name string `json:"name"`
	}

	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Jane"}`))
	require.NoError(t, DecodeJSON(r, &v))
	assert.Equal(t, "Jane", v.Name)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Jane","extra":1}`))
	assert.Error(t, DecodeJSON(r, &v))

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`not json`))
	assert.Error(t, DecodeJSON(r, &v))
}

func TestRespondDomainError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		handled   bool
		wantError string
	}{
		{
			name:      "validation",
			err:       domain.NewValidationError("customerEmail", "must be a valid email address"),
			handled:   true,
			wantError: "Validation failed",
		},
		{
			name:      "date",
			err:       &domain.DateError{Reason: "We are closed on Sundays"},
			handled:   true,
			wantError: "We are closed on Sundays",
		},
		{
			name:      "transition",
			err:       &domain.TransitionError{Action: domain.ActionAccept, From: domain.StatusConfirmed, Reason: "Booking is already confirmed", Already: true},
			handled:   true,
			wantError: "Booking is already confirmed",
		},
		{name: "not found", err: domain.ErrNotFound, handled: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			handled := RespondDomainError(rec, tt.err)

			assert.Equal(t, tt.handled, handled)
			if !tt.handled {
				return
			}
			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var body ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantError, body.Error)
		})
	}
}

func TestRespondValidationError_Fields(t *testing.T) {
	rec := httptest.NewRecorder()
	err := domain.NewValidationError("customerName", "is required")
	err.Add("customerPhone", "is required")

	RespondValidationError(rec, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Validation failed","errors":[
		{"field":"customerName","message":"is required"},
		{"field":"customerPhone","message":"is required"}]}`, rec.Body.String())
}

func TestRespondInternalError_HidesDetails(t *testing.T) {
	rec := httptest.NewRecorder()

	RespondInternalError(rec)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"Something went wrong. Please try again."}`, rec.Body.String())
}
