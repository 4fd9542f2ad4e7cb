package response_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"tripavail/shared/failure"
	"tripavail/transport/http/response"

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
			name:     "failure keeps its code and message",
			err:      failure.StateConflict("QUOTE", "HOLD"),
			wantCode: http.StatusBadRequest,
			wantBody: `{"error":"Booking must be in HOLD state (current: QUOTE)"}`,
		},
		{
			name:     "wrapped failure drops the wrapping text",
			err:      fmt.Errorf("confirm b-1: %w", failure.PaymentDeclined("card declined")),
			wantCode: http.StatusPaymentRequired,
			wantBody: `{"error":"card declined"}`,
		},
		{
			name:     "plain error is hidden",
			err:      errors.New("pq: relation bookings does not exist"),
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()

			response.WithError(recorder, tt.err)

			assert.Equal(t, tt.wantCode, recorder.Code)
			assert.JSONEq(t, tt.wantBody, recorder.Body.String())
			assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))
		})
	}
}

func TestWithJSON(t *testing.T) {
	recorder := httptest.NewRecorder()

	response.WithJSON(recorder, http.StatusCreated, map[string]string{"status": "QUOTE"})

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.JSONEq(t, `{"data":{"status":"QUOTE"}}`, recorder.Body.String())
}

func TestWithPreparingShutdown(t *testing.T) {
	recorder := httptest.NewRecorder()

	response.WithPreparingShutdown(recorder)

	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
	assert.JSONEq(t, `{"message":"SERVER PREPARING TO SHUT DOWN"}`, recorder.Body.String())
}
