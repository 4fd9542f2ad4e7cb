package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"tripavail/shared/failure"

	"github.com/stretchr/testify/assert"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantCode    int
		wantMessage string
	}{
		{
			name:        "bad request from error",
			err:         failure.BadRequest(errors.New("checkOut must be after checkIn")),
			wantCode:    http.StatusBadRequest,
			wantMessage: "checkOut must be after checkIn",
		},
		{
			name:        "bad request from string",
			err:         failure.BadRequestFromString("Quote has expired"),
			wantCode:    http.StatusBadRequest,
			wantMessage: "Quote has expired",
		},
		{
			name:        "unauthorized",
			err:         failure.Unauthorized("Token has expired"),
			wantCode:    http.StatusUnauthorized,
			wantMessage: "Token has expired",
		},
		{
			name:        "forbidden",
			err:         failure.Forbidden("You can only cancel your own bookings"),
			wantCode:    http.StatusForbidden,
			wantMessage: "You can only cancel your own bookings",
		},
		{
			name:        "not found",
			err:         failure.NotFound("booking not found"),
			wantCode:    http.StatusNotFound,
			wantMessage: "booking not found",
		},
		{
			name:        "conflict",
			err:         failure.Conflict("Not enough availability for 2026-12-01"),
			wantCode:    http.StatusConflict,
			wantMessage: "Not enough availability for 2026-12-01",
		},
		{
			name:        "state conflict names both statuses",
			err:         failure.StateConflict("CONFIRMED", "PAYMENT_PENDING"),
			wantCode:    http.StatusBadRequest,
			wantMessage: "Booking must be in PAYMENT_PENDING state (current: CONFIRMED)",
		},
		{
			name:        "payment declined",
			err:         failure.PaymentDeclined("insufficient funds"),
			wantCode:    http.StatusPaymentRequired,
			wantMessage: "insufficient funds",
		},
		{
			name:        "internal",
			err:         failure.Internal("ledger is unbalanced"),
			wantCode:    http.StatusInternalServerError,
			wantMessage: "ledger is unbalanced",
		},
		{
			name:        "forbidden sentinel",
			err:         failure.ForbiddenError,
			wantCode:    http.StatusForbidden,
			wantMessage: "You don't have the required permissions",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var fail *failure.Failure

			assert.ErrorAs(t, tt.err, &fail)
			assert.Equal(t, tt.wantCode, fail.Code)
			assert.Equal(t, tt.wantMessage, tt.err.Error())
		})
	}
}

func TestBadRequest_Nil(t *testing.T) {
	assert.NoError(t, failure.BadRequest(nil))
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "failure", err: failure.NotFound("payment not found"), want: http.StatusNotFound},
		{name: "wrapped failure", err: fmt.Errorf("hold: %w", failure.Conflict("sold out")), want: http.StatusConflict},
		{name: "plain error", err: errors.New("connection refused"), want: http.StatusInternalServerError},
		{name: "nil", err: nil, want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, failure.GetCode(tt.err))
		})
	}
}
