package dto

import (
	"time"
	"tripavail/internal/domains/payment/model"
	"tripavail/shared/constant"
	"tripavail/shared/timezone"
)

const moneyPlaces = 2

type PreAuthorizeRequest struct {
	BookingID       string `json:"bookingId"       validate:"required,uuid"`
	PaymentMethodID string `json:"paymentMethodId" validate:"required,max=255"`
	IdempotencyKey  string `json:"idempotencyKey"  validate:"omitempty,idempotencykey"`
}

type PaymentResponse struct {
	ID              string  `json:"id"`
	BookingID       string  `json:"bookingId"`
	Status          string  `json:"status"`
	Amount          string  `json:"amount"`
	Currency        string  `json:"currency"`
	PaymentMethodID string  `json:"paymentMethodId"`
	PaymentIntentID string  `json:"paymentIntentId"`
	RefundAmount    string  `json:"refundAmount"`
	FailureReason   string  `json:"failureReason,omitempty"`
	AuthorizedAt    *string `json:"authorizedAt"`
	CapturedAt      *string `json:"capturedAt"`
	RefundedAt      *string `json:"refundedAt"`
}

func (r *PaymentResponse) FromModel(payment model.Payment) {
	r.ID = payment.ID
	r.BookingID = payment.BookingID
	r.Status = string(payment.Status)
	r.Amount = payment.Amount.StringFixed(moneyPlaces)
	r.Currency = payment.Currency
	r.PaymentMethodID = payment.PaymentMethodID
	r.PaymentIntentID = payment.PaymentIntentID
	r.RefundAmount = payment.RefundAmount.StringFixed(moneyPlaces)
	r.FailureReason = payment.FailureReason
	r.AuthorizedAt = formatTime(payment.AuthorizedAt)
	r.CapturedAt = formatTime(payment.CapturedAt)
	r.RefundedAt = formatTime(payment.RefundedAt)
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}

	formatted := timezone.Format(*t, constant.DateFormat)

	return &formatted
}
